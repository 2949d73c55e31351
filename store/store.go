package store

import "context"

// BlobStore reads and writes opaque blobs addressed by bucket and key.
type BlobStore interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, data []byte) error
}

// SecretStore retrieves named secrets.
type SecretStore interface {
	Get(ctx context.Context, name string) (string, error)
}
