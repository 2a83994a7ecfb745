package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "bankroll"))

	_, ok, err := store.LoadStack("hero")
	require.NoError(t, err)
	assert.False(t, ok, "missing file means no saved stack")

	require.NoError(t, store.SaveStack("hero", 1250))
	require.NoError(t, store.SaveStack("villain", 40))
	require.NoError(t, store.SaveStack("hero", 900))

	chips, ok, err := store.LoadStack("hero")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 900, chips)

	chips, ok, err = store.LoadStack("villain")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 40, chips)
}

func TestFileStoreRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bankroll")
	require.NoError(t, os.WriteFile(path, []byte("not a number=abc\n"), 0o644))

	_, _, err := NewFileStore(path).LoadStack("hero")
	assert.Error(t, err)
}
