package store

import (
	"context"

	"nocheckin/internal/domain"
)

// Backend is a bucket -> payload key/value store. Payloads are opaque bytes;
// State decides their encoding.
type Backend interface {
	// Get returns the payload for bucket; ok is false when nothing is stored.
	Get(ctx context.Context, bucket domain.Bucket) (payload []byte, ok bool, err error)
	// Put replaces the payload for bucket.
	Put(ctx context.Context, bucket domain.Bucket, payload []byte) error
	// Delete removes the given buckets together.
	Delete(ctx context.Context, buckets ...domain.Bucket) error
	Close() error
}

// Backend kinds accepted by Open.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
)
