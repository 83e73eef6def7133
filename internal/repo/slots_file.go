package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSlots stores each slot as one file under a data directory. Writes go
// through a temp file followed by a rename so a crash mid-write never leaves
// a half-written slot behind.
type FileSlots struct {
	dir string
}

// NewFileSlots returns a FileSlots rooted at dir, creating dir if needed.
func NewFileSlots(dir string) (*FileSlots, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("repo.NewFileSlots: %w", err)
	}
	return &FileSlots{dir: dir}, nil
}

// Read returns the slot's contents, or ok=false when the file does not exist.
func (s *FileSlots) Read(_ context.Context, key string) (string, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("repo.FileSlots.Read: %w", err)
	}
	return string(b), true, nil
}

// Write replaces the slot's contents atomically.
func (s *FileSlots) Write(_ context.Context, key, value string) error {
	tmp, err := os.CreateTemp(s.dir, key+".*")
	if err != nil {
		return fmt.Errorf("repo.FileSlots.Write: %w", err)
	}
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("repo.FileSlots.Write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("repo.FileSlots.Write: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("repo.FileSlots.Write: %w", err)
	}
	return nil
}

func (s *FileSlots) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
