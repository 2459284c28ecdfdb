package service

import "context"

// ObjectStore is the object storage surface the log backup job needs.
type ObjectStore interface {
	// Upload stores the local file under the given key.
	Upload(ctx context.Context, key, localPath string) error
	// Exists reports whether an object with the given key is present.
	Exists(ctx context.Context, key string) (bool, error)
}
