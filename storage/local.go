package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage keeps blobs on disk under a single directory. Meant
// for development and tests, the router serves the directory under
// /uploads when this backend is active.
type LocalStorage struct {
	Dir string
}

func NewLocal(dir string) (*LocalStorage, error) {
	if dir == "" {
		return nil, errors.New("no storage.local_path provided")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &LocalStorage{Dir: dir}, nil
}

func (l *LocalStorage) Save(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	f, err := os.Create(filepath.Join(l.Dir, filepath.Base(key)))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, r)
	return err
}

func (l *LocalStorage) URL(key string) string {
	return "/uploads/" + key
}

func (l *LocalStorage) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(l.Dir, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
