package upload

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Storage persists uploaded bytes under a relative path and resolves the
// public URL for it.
type Storage interface {
	Save(ctx context.Context, relPath string, content []byte) error
	Remove(ctx context.Context, relPath string) error
	URL(relPath string) string
}

// DiskStorage writes files below Root. Files are served from BaseURL.
type DiskStorage struct {
	Root    string
	BaseURL string
}

func NewDiskStorage(root, baseURL string) *DiskStorage {
	return &DiskStorage{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (d *DiskStorage) Save(ctx context.Context, relPath string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full := filepath.Join(d.Root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}

	// write to a temp file first so a reader never sees a partial upload
	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), full)
}

// Remove deletes relPath. A file that is already gone is not an error.
func (d *DiskStorage) Remove(ctx context.Context, relPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(d.Root, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (d *DiskStorage) URL(relPath string) string {
	return d.BaseURL + "/" + strings.TrimLeft(relPath, "/")
}
