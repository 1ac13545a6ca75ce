package types

import (
	"errors"
	"fmt"
)

const (
	// PrefixLength is the number of digits in a Prefix.
	PrefixLength = 7
	// ShortCodeLength is the number of digits in a ShortCode.
	ShortCodeLength = 6
	// VenueCodeLength is the number of digits in a full scanned code.
	VenueCodeLength = PrefixLength + ShortCodeLength

	minRegionLength = 2
	maxRegionLength = 8
)

var (
	// ErrInvalidVenueCode is returned when a scanned code is not exactly 13 digits.
	ErrInvalidVenueCode = fmt.Errorf("venue code must be exactly %d digits", VenueCodeLength)
	// ErrInvalidShortCode is returned when a short code is not exactly 6 digits.
	ErrInvalidShortCode = fmt.Errorf("short code must be exactly %d digits", ShortCodeLength)
	// ErrInvalidPrefix is returned when a prefix is not exactly 7 digits.
	ErrInvalidPrefix = fmt.Errorf("prefix must be exactly %d digits", PrefixLength)
	// ErrInvalidRegion is returned for region identifiers that are not 2-8 lowercase letters.
	ErrInvalidRegion = errors.New("region must be 2-8 lowercase letters")
)

// VenueCode is a scanned 13-digit code split into its prefix and short code.
type VenueCode struct {
	Prefix    Prefix
	ShortCode ShortCode
}

// ParseVenueCode validates s as a 13-digit code and splits it.
func ParseVenueCode(s string) (VenueCode, error) {
	if !isDigits(s, VenueCodeLength) {
		return VenueCode{}, ErrInvalidVenueCode
	}
	return VenueCode{
		Prefix:    Prefix(s[:PrefixLength]),
		ShortCode: ShortCode(s[PrefixLength:]),
	}, nil
}

// ParseShortCode validates s as a 6-digit short code.
func ParseShortCode(s string) (ShortCode, error) {
	if !isDigits(s, ShortCodeLength) {
		return "", ErrInvalidShortCode
	}
	return ShortCode(s), nil
}

// ParsePrefix validates s as a 7-digit prefix.
func ParsePrefix(s string) (Prefix, error) {
	if !isDigits(s, PrefixLength) {
		return "", ErrInvalidPrefix
	}
	return Prefix(s), nil
}

// ParseRegion validates s as a region identifier.
func ParseRegion(s string) (Region, error) {
	if len(s) < minRegionLength || len(s) > maxRegionLength {
		return "", ErrInvalidRegion
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return "", ErrInvalidRegion
		}
	}
	return Region(s), nil
}

// isDigits reports whether s is exactly n ASCII digits.
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
