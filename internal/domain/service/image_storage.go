package service

import (
	"context"
	"io"

	"storefront/internal/errors"
)

// ErrBlobNotFound is returned when no blob exists under a key.
var ErrBlobNotFound = errors.New("blob not found")

// ImageStorage stores product image blobs.
type ImageStorage interface {
	// Put writes the blob under key, replacing any existing blob.
	Put(ctx context.Context, key string, r io.Reader, contentType string) error

	// Open returns a reader for the blob and its content type.
	// It returns ErrBlobNotFound when the key does not exist.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes the blob. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns a public or signed URL for the key.
	URL(ctx context.Context, key string) (string, error)
}
