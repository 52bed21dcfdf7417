// Package storage persists uploaded images and returns their public URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/food-ordering/internal/config"
)

// Store writes an object under key and returns the URL clients should use.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// New picks S3 when a bucket is configured and the local upload dir otherwise.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.S3Bucket != "" {
		return NewS3Store(ctx, S3Options{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.S3Region,
			Key:      cfg.S3Key,
			Secret:   cfg.S3Secret,
			Endpoint: cfg.S3Endpoint,
			BaseURL:  cfg.S3URL,
		})
	}
	return NewLocalStore(cfg.UploadDir, "/uploads")
}

// Images transcodes uploads to webp before storing them.
type Images struct {
	store Store
}

func NewImages(store Store) *Images {
	return &Images{store: store}
}

// Save stores r as <folder>/<uuid>.webp.
func (i *Images) Save(ctx context.Context, folder string, r io.Reader) (string, error) {
	data, err := ToWebP(r)
	if err != nil {
		return "", err
	}

	key := path.Join(folder, uuid.NewString()+".webp")
	url, err := i.store.Put(ctx, key, data, "image/webp")
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}
	return url, nil
}
