// Package storage is the blob store behind document uploads. The
// rest of the app only ever sees opaque keys.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/viper"
)

type Storage interface {
	// Save writes the blob under key. Keys are caller-generated and
	// never reused.
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// URL returns a retrievable handle for a stored key
	URL(key string) string
	Delete(ctx context.Context, key string) error
}

// New picks the backend from the storage.type config key.
func New() (Storage, error) {
	switch t := viper.GetString("storage.type"); t {
	case "s3":
		return NewS3()
	case "local":
		return NewLocal(viper.GetString("storage.local_path"))
	default:
		return nil, fmt.Errorf("invalid storage type %q", t)
	}
}
