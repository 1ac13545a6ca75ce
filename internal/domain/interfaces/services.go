package interfaces

import (
	"context"
	"time"

	domaintypes "nocheckin/internal/domain/types"
)

// Resolver turns scanned or typed codes into venue names.
type Resolver interface {
	ResolveScan(ctx context.Context, payload string) domaintypes.Outcome
	ResolveManual(ctx context.Context, fields ...string) domaintypes.Outcome
	Choose(outcome domaintypes.Outcome, index int) (domaintypes.Outcome, error)
	CreateVenue(ctx context.Context, code string, name string) (domaintypes.Outcome, error)
}

// CheckInService records check-ins and describes the last one.
type CheckInService interface {
	CheckIn(ctx context.Context, venueName string, guests []domaintypes.Guest) (domaintypes.CheckIn, bool, error)
	LastCheckInLine(ctx context.Context, now time.Time) (string, error)
	History(ctx context.Context, limit int) ([]domaintypes.CheckIn, error)
}

// SettingsService loads and saves the patron's settings.
type SettingsService interface {
	Load(ctx context.Context) (domaintypes.Settings, bool, error)
	Save(ctx context.Context, settings domaintypes.Settings) error
	Skin(region domaintypes.Region) domaintypes.Skin
}

// GuestService manages the frequent guest list.
type GuestService interface {
	Add(ctx context.Context, guest domaintypes.Guest) error
	List(ctx context.Context) ([]domaintypes.Guest, error)
	Select(ctx context.Context, indices []int) ([]domaintypes.Guest, error)
}
