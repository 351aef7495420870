package service

import "context"

// FileStorage stores uploaded files by key.
type FileStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get returns the stored bytes, or ErrNotFound when the key is unknown.
	Get(ctx context.Context, key string) ([]byte, error)

	Delete(ctx context.Context, key string) error
}
