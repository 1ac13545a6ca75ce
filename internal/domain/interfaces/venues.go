package interfaces

import (
	"context"

	domaintypes "nocheckin/internal/domain/types"
)

// VenueDirectory is the read-only, region-scoped set of known venues.
type VenueDirectory interface {
	Region() domaintypes.Region
	LookupByPrefixAndShortCode(prefix domaintypes.Prefix, code domaintypes.ShortCode) (string, bool)
	LookupByShortCode(code domaintypes.ShortCode) []string
}

// Overrides is the in-memory view of user-entered venues.
type Overrides interface {
	Lookup(code domaintypes.ShortCode) (string, bool)
	AddAndFlush(ctx context.Context, code domaintypes.ShortCode, name string) error
}
