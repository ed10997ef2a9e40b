package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Saver stores rendered bytes under name and returns where they went.
type Saver interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(ctx context.Context, name string, data []byte) (string, error)

// Save calls f.
func (f SaverFunc) Save(ctx context.Context, name string, data []byte) (string, error) {
	return f(ctx, name, data)
}

// DirSaver writes files into Dir. Files appear atomically: data goes to a
// temporary file that is renamed into place.
type DirSaver struct {
	Dir string
}

// Save writes data to Dir/name, replacing an existing file.
func (s DirSaver) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return "", fmt.Errorf("export: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("export: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("export: close temp file: %w", err)
	}

	target := filepath.Join(dir, filepath.Base(name))
	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return "", fmt.Errorf("export: move into place: %w", err)
	}
	return target, nil
}
