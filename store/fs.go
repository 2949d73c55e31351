package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS is a BlobStore rooted at a directory: buckets are subdirectories, keys
// are relative paths below them.
type FS struct {
	root string
}

// NewFS creates a directory-backed blob store rooted at root.
func NewFS(root string) *FS {
	return &FS{root: root}
}

// Get reads a blob.
func (f *FS) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	path, err := f.resolve(bucket, key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blob %s/%s: %w", bucket, key, err)
	}
	return data, nil
}

// Put writes a blob, creating parent directories as needed.
func (f *FS) Put(ctx context.Context, bucket, key string, data []byte) error {
	path, err := f.resolve(bucket, key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create blob directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write blob %s/%s: %w", bucket, key, err)
	}
	return nil
}

// resolve maps a bucket/key pair to a filesystem path, rejecting traversal
// outside the store root.
func (f *FS) resolve(bucket, key string) (string, error) {
	if bucket == "" || key == "" {
		return "", fmt.Errorf("blob address must have bucket and key")
	}
	if strings.Contains(bucket, "..") || strings.Contains(key, "..") {
		return "", fmt.Errorf("path traversal not allowed in blob address")
	}
	return filepath.Join(f.root, bucket, filepath.FromSlash(key)), nil
}
