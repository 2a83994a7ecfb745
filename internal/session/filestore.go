package session

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FileStore persists stacks as "name=chips" lines in a single file. It is
// the simplest useful Store: hosts with real storage supply their own.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given path. The file is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) LoadStack(name string) (int, bool, error) {
	entries, err := f.read()
	if err != nil {
		return 0, false, err
	}
	chips, ok := entries[name]
	return chips, ok, nil
}

func (f *FileStore) SaveStack(name string, chips int) error {
	entries, err := f.read()
	if err != nil {
		return err
	}
	entries[name] = chips

	var b strings.Builder
	for k, v := range entries {
		fmt.Fprintf(&b, "%s=%d\n", k, v)
	}
	if err := os.WriteFile(f.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	return nil
}

func (f *FileStore) read() (map[string]int, error) {
	entries := make(map[string]int)
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%s: malformed line %q", f.path, line)
		}
		chips, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%s: bad chip count in %q", f.path, line)
		}
		entries[name] = chips
	}
	return entries, nil
}
