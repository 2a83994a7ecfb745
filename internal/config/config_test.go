package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullConfig(t *testing.T) {
	t.Parallel()

	src := []byte(`
table {
  small_blind     = 25
  big_blind       = 50
  starting_chips  = 5000
  max_hands       = 100
  player_name     = "Hero"
}

opponent "Nit" {
  tightness       = 0.9
  aggression      = 0.1
  bluff_frequency = 0.01
}

opponent "Maniac" {
  tightness       = 0.1
  aggression      = 0.9
  bluff_frequency = 0.3
}
`)

	cfg, err := Parse(src, "test.hcl")
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Table.SmallBlind)
	assert.Equal(t, 50, cfg.Table.BigBlind)
	assert.Equal(t, 5000, cfg.Table.StartingChips)
	assert.Equal(t, 100, cfg.Table.MaxHands)
	assert.Equal(t, "Hero", cfg.Table.PlayerName)

	require.Len(t, cfg.Opponents, 2)
	assert.Equal(t, "Nit", cfg.Opponents[0].Name)
	assert.Equal(t, 0.9, cfg.Opponents[0].Tightness)
	assert.Equal(t, "Maniac", cfg.Opponents[1].Name)
	assert.Equal(t, 0.3, cfg.Opponents[1].BluffFrequency)
}

func TestParseAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
table {
  small_blind = 1
  big_blind   = 2
}
`), "test.hcl")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Table.SmallBlind)
	assert.Equal(t, 2, cfg.Table.BigBlind)
	assert.Equal(t, 1000, cfg.Table.StartingChips)
	assert.Equal(t, "You", cfg.Table.PlayerName)
	assert.Len(t, cfg.Opponents, 3, "default opponents fill an empty roster")
}

func TestParseRejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
	}{
		{"malformed", `table {`},
		{"blind order", `table {
  small_blind = 10
  big_blind   = 5
}`},
		{"trait range", `opponent "Wild" {
  aggression = 1.5
}`},
		{"short stack", `table {
  small_blind    = 5
  big_blind      = 10
  starting_chips = 5
}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tc.src), "test.hcl")
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestBuildPlayers(t *testing.T) {
	t.Parallel()

	cfg := Default()
	players := cfg.BuildPlayers()

	require.Len(t, players, 4)
	assert.True(t, players[0].Controlled)
	assert.Equal(t, "You", players[0].Name)
	for i, p := range players {
		assert.Equal(t, i, p.Seat)
		assert.Equal(t, cfg.Table.StartingChips, p.Chips)
	}
	assert.Equal(t, 0.8, players[1].Traits.Tightness)
	assert.False(t, players[1].Controlled)
}
