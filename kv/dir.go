package kv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir stores each key in its own file "<key>.json" in a directory.
//
// Files stay human readable and writes are atomic: the value is written to a
// temporary file and renamed.
type Dir struct {
	path string
}

// NewDir returns a Dir backend, creating the directory if needed.
func NewDir(path string) (*Dir, error) {
	if path == "" {
		return nil, errors.New("dir backend requires a path")
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create storage directory %q: %w", path, err)
	}
	return &Dir{path: path}, nil
}

func (d *Dir) file(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	return filepath.Join(d.path, key+".json"), nil
}

func (d *Dir) Get(key string) ([]byte, bool, error) {
	file, err := d.file(key)
	if err != nil {
		return nil, false, err
	}
	content, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot read %q: %w", file, err)
	}
	return content, true, nil
}

func (d *Dir) Set(key string, value []byte) error {
	file, err := d.file(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(d.path, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("cannot create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), file); err != nil {
		return fmt.Errorf("cannot replace %q: %w", file, err)
	}
	return nil
}

func (d *Dir) Delete(key string) error {
	file, err := d.file(key)
	if err != nil {
		return err
	}
	if err := os.Remove(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot remove %q: %w", file, err)
	}
	return nil
}

func (d *Dir) Close() error { return nil }
