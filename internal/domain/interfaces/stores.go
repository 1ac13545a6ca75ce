package interfaces

import (
	"context"

	domaintypes "nocheckin/internal/domain/types"
)

// OverrideStore persists the user-entered venues keyed by short code.
type OverrideStore interface {
	SaveOverrides(ctx context.Context, entries map[domaintypes.ShortCode]string) error
	LoadOverrides(ctx context.Context) (map[domaintypes.ShortCode]string, error)
}

// SettingsStore persists the patron's profile and kiosk preferences.
type SettingsStore interface {
	SaveSettings(ctx context.Context, settings domaintypes.Settings) error
	LoadSettings(ctx context.Context) (domaintypes.Settings, bool, error)
}

// GuestStore persists the frequent guest list.
type GuestStore interface {
	SaveGuests(ctx context.Context, guests []domaintypes.Guest) error
	LoadGuests(ctx context.Context) ([]domaintypes.Guest, error)
}

// CheckInStore keeps the last check-in and the check-in history.
type CheckInStore interface {
	SaveLastCheckIn(ctx context.Context, last domaintypes.LastCheckIn) error
	LoadLastCheckIn(ctx context.Context) (domaintypes.LastCheckIn, bool, error)
	AppendCheckIn(ctx context.Context, entry domaintypes.CheckIn) error
	ListCheckIns(ctx context.Context, limit int) ([]domaintypes.CheckIn, error)
}

// Resetter erases every persisted state category together.
type Resetter interface {
	Reset(ctx context.Context) error
}
