// Package overrides holds the venues the user has typed in themselves.
//
// Entries are keyed by short code only and always win over the bundled
// directory, whichever prefix a scanned code carries. Mutation is in memory;
// persisting is an explicit Flush so the resolver can be exercised without a
// backing store. AddAndFlush is what the kiosk uses: every add is followed by
// a flush of the whole map.
package overrides
