package domain

import (
	interfaces "nocheckin/internal/domain/interfaces"
	types "nocheckin/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Region      = types.Region
	Prefix      = types.Prefix
	ShortCode   = types.ShortCode
	VenueCode   = types.VenueCode
	Bucket      = types.Bucket
	OutcomeKind = types.OutcomeKind
	Outcome     = types.Outcome
	Patron      = types.Patron
	Guest       = types.Guest
	Settings    = types.Settings
	Skin        = types.Skin
	LastCheckIn = types.LastCheckIn
	CheckIn     = types.CheckIn
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	OverrideStore   = interfaces.OverrideStore
	SettingsStore   = interfaces.SettingsStore
	GuestStore      = interfaces.GuestStore
	CheckInStore    = interfaces.CheckInStore
	Resetter        = interfaces.Resetter
	VenueDirectory  = interfaces.VenueDirectory
	Overrides       = interfaces.Overrides
	Resolver        = interfaces.Resolver
	CheckInService  = interfaces.CheckInService
	SettingsService = interfaces.SettingsService
	GuestService    = interfaces.GuestService
)

// Outcome kinds.
const (
	NoLookup  = types.NoLookup
	Resolved  = types.Resolved
	Ambiguous = types.Ambiguous
	NotFound  = types.NotFound
)

// Persisted buckets.
const (
	BucketSettings       = types.BucketSettings
	BucketLocalLocations = types.BucketLocalLocations
	BucketFrequentGuests = types.BucketFrequentGuests
	BucketLastCheckIn    = types.BucketLastCheckIn
	BucketHistory        = types.BucketHistory
)

// Code lengths and layouts.
const (
	PrefixLength    = types.PrefixLength
	ShortCodeLength = types.ShortCodeLength
	VenueCodeLength = types.VenueCodeLength
	DateLayout      = types.DateLayout
)

// Validation errors.
var (
	ErrInvalidVenueCode = types.ErrInvalidVenueCode
	ErrInvalidShortCode = types.ErrInvalidShortCode
	ErrInvalidPrefix    = types.ErrInvalidPrefix
	ErrInvalidRegion    = types.ErrInvalidRegion
	ErrInvalidDate      = types.ErrInvalidDate
)

// Parsers and helpers re-exported from the types subpackage.
var (
	ParseVenueCode = types.ParseVenueCode
	ParseShortCode = types.ParseShortCode
	ParsePrefix    = types.ParsePrefix
	ParseRegion    = types.ParseRegion
	ValidateDate   = types.ValidateDate
	AllBuckets     = types.AllBuckets
)
