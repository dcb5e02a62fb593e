package service

import "context"

// FileStorage stores supporting files attached to applications.
type FileStorage interface {
	// Put writes data under key.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get reads the data stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
