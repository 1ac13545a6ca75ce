package store

import (
	"context"

	"nocheckin/internal/domain"
)

// SealedBackend encrypts selected buckets before handing them to an inner
// Backend. Other buckets pass through untouched. With an empty passphrase
// writes stay plaintext and sealed payloads fail to read.
type SealedBackend struct {
	inner      Backend
	passphrase string
	sealed     map[domain.Bucket]bool
	kdf        kdfParams
}

// NewSealedBackend wraps inner, sealing buckets with passphrase.
func NewSealedBackend(inner Backend, passphrase string, buckets ...domain.Bucket) *SealedBackend {
	m := make(map[domain.Bucket]bool, len(buckets))
	for _, b := range buckets {
		m[b] = true
	}
	return &SealedBackend{inner: inner, passphrase: passphrase, sealed: m, kdf: defaultKDFParams()}
}

// Get reads and, for sealed buckets, decrypts.
func (s *SealedBackend) Get(ctx context.Context, bucket domain.Bucket) ([]byte, bool, error) {
	b, ok, err := s.inner.Get(ctx, bucket)
	if err != nil || !ok || !s.sealed[bucket] {
		return b, ok, err
	}
	pt, err := open(s.passphrase, b, string(bucket))
	if err != nil {
		return nil, false, err
	}
	return pt, true, nil
}

// Put encrypts sealed buckets and writes through.
func (s *SealedBackend) Put(ctx context.Context, bucket domain.Bucket, payload []byte) error {
	if !s.sealed[bucket] || s.passphrase == "" {
		return s.inner.Put(ctx, bucket, payload)
	}
	ct, err := seal(s.passphrase, payload, string(bucket), s.kdf)
	if err != nil {
		return err
	}
	return s.inner.Put(ctx, bucket, ct)
}

// Delete passes through.
func (s *SealedBackend) Delete(ctx context.Context, buckets ...domain.Bucket) error {
	return s.inner.Delete(ctx, buckets...)
}

// Close closes the inner backend.
func (s *SealedBackend) Close() error { return s.inner.Close() }

// Compile-time assertion that SealedBackend implements Backend.
var _ Backend = (*SealedBackend)(nil)
