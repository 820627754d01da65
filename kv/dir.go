package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Dir is a store that keeps each key in its own file, "<key>.json", in a folder.
// The folder is human readable and git friendly.
type Dir struct {
	root string
}

// NewDir returns a store rooted at path. The folder is created on first write.
func NewDir(path string) *Dir { return &Dir{root: path} }

func (d *Dir) filename(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(d.root, key+".json"), nil
}

func (d *Dir) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	filename, err := d.filename(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return data, true, nil
}

// Set replaces the key's file atomically: the value is written to a temporary
// file in the same folder, then renamed.
func (d *Dir) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	filename, err := d.filename(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d.root, 0755); err != nil {
		return fmt.Errorf("cannot create folder %q: %w", d.root, err)
	}
	tmp, err := os.CreateTemp(d.root, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %q: %w", filename, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("cannot replace %q: %w", filename, err)
	}
	return nil
}
