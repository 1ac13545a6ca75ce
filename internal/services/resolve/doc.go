// Package resolve decides which venue a scanned or typed code refers to.
//
// The override store is always consulted first and, when it has the short
// code, the directory is not queried at all. Scanned codes then use the exact
// (prefix, short code) lookup; typed codes scan every prefix and may come back
// ambiguous. Malformed input never errors: it resolves to domain.NoLookup.
//
// Overrides are keyed by short code alone, so one user-entered name shadows
// every directory venue sharing that short code under any prefix.
package resolve
