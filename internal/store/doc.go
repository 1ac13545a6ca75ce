// Package store provides local persistence for the kiosk's state.
//
// State implements the domain storage interfaces on top of a Backend, a plain
// bucket -> payload store. Each persisted state category (settings, user
// venues, guests, last check-in, history) is one bucket holding JSON.
//
// Backends:
//   - FileBackend: one <bucket>.json file per bucket, replaced atomically
//   - SQLiteBackend: a single state(bucket, payload) table
//   - SealedBackend: encrypts chosen buckets (scrypt + ChaCha20-Poly1305)
//     before delegating to another backend
//
// Reset removes every bucket together.
package store
