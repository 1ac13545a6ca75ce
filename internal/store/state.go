package store

import (
	"context"
	"encoding/json"
	"fmt"

	"nocheckin/internal/domain"
)

// State implements every domain store on top of a Backend, one bucket per
// state category, each encoded as JSON.
type State struct {
	backend Backend
}

// NewState returns a State over backend.
func NewState(backend Backend) *State {
	return &State{backend: backend}
}

// ---------- Overrides ----------

// SaveOverrides writes the flat short code -> name object.
func (s *State) SaveOverrides(ctx context.Context, entries map[domain.ShortCode]string) error {
	return s.putJSON(ctx, domain.BucketLocalLocations, entries)
}

// LoadOverrides returns the stored overrides; never nil.
func (s *State) LoadOverrides(ctx context.Context) (map[domain.ShortCode]string, error) {
	m := map[domain.ShortCode]string{}
	if _, err := s.getJSON(ctx, domain.BucketLocalLocations, &m); err != nil {
		return nil, err
	}
	if m == nil { // stored "null"
		m = map[domain.ShortCode]string{}
	}
	return m, nil
}

// ---------- Settings ----------

// SaveSettings writes the settings object.
func (s *State) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.putJSON(ctx, domain.BucketSettings, settings)
}

// LoadSettings returns the stored settings and whether any were stored.
// A missing use_scanner key reads as true.
func (s *State) LoadSettings(ctx context.Context) (domain.Settings, bool, error) {
	var stored *struct {
		domain.Settings
		UseScanner *bool `json:"use_scanner"`
	}
	if _, err := s.getJSON(ctx, domain.BucketSettings, &stored); err != nil {
		return domain.Settings{}, false, err
	}
	if stored == nil {
		return domain.Settings{}, false, nil
	}
	settings := stored.Settings
	settings.UseScanner = stored.UseScanner == nil || *stored.UseScanner
	return settings, true, nil
}

// ---------- Guests ----------

// SaveGuests writes the whole guest list.
func (s *State) SaveGuests(ctx context.Context, guests []domain.Guest) error {
	return s.putJSON(ctx, domain.BucketFrequentGuests, guests)
}

// LoadGuests returns the stored guest list.
func (s *State) LoadGuests(ctx context.Context) ([]domain.Guest, error) {
	var guests []domain.Guest
	if _, err := s.getJSON(ctx, domain.BucketFrequentGuests, &guests); err != nil {
		return nil, err
	}
	return guests, nil
}

// ---------- Check-ins ----------

// SaveLastCheckIn writes the last check-in.
func (s *State) SaveLastCheckIn(ctx context.Context, last domain.LastCheckIn) error {
	return s.putJSON(ctx, domain.BucketLastCheckIn, last)
}

// LoadLastCheckIn returns the last check-in if one with a name and time is stored.
func (s *State) LoadLastCheckIn(ctx context.Context) (domain.LastCheckIn, bool, error) {
	var last domain.LastCheckIn
	ok, err := s.getJSON(ctx, domain.BucketLastCheckIn, &last)
	if err != nil || !ok {
		return domain.LastCheckIn{}, false, err
	}
	if last.Name == "" || last.Time == 0 {
		return domain.LastCheckIn{}, false, nil
	}
	return last, true, nil
}

// AppendCheckIn adds entry to the end of the history.
func (s *State) AppendCheckIn(ctx context.Context, entry domain.CheckIn) error {
	var history []domain.CheckIn
	if _, err := s.getJSON(ctx, domain.BucketHistory, &history); err != nil {
		return err
	}
	history = append(history, entry)
	return s.putJSON(ctx, domain.BucketHistory, history)
}

// ListCheckIns returns up to limit entries, most recent first. limit <= 0
// returns everything.
func (s *State) ListCheckIns(ctx context.Context, limit int) ([]domain.CheckIn, error) {
	var history []domain.CheckIn
	if _, err := s.getJSON(ctx, domain.BucketHistory, &history); err != nil {
		return nil, err
	}
	n := len(history)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.CheckIn, 0, n)
	for i := len(history) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, history[i])
	}
	return out, nil
}

// ---------- Reset ----------

// Reset erases every state category together.
func (s *State) Reset(ctx context.Context) error {
	if err := s.backend.Delete(ctx, domain.AllBuckets()...); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

// Close closes the backend.
func (s *State) Close() error { return s.backend.Close() }

// ---------- helpers ----------

func (s *State) getJSON(ctx context.Context, bucket domain.Bucket, out any) (bool, error) {
	b, ok, err := s.backend.Get(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", bucket, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", bucket, err)
	}
	return true, nil
}

func (s *State) putJSON(ctx context.Context, bucket domain.Bucket, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", bucket, err)
	}
	if err := s.backend.Put(ctx, bucket, b); err != nil {
		return fmt.Errorf("write %s: %w", bucket, err)
	}
	return nil
}

// Compile-time assertions that State implements the domain stores.
var (
	_ domain.OverrideStore = (*State)(nil)
	_ domain.SettingsStore = (*State)(nil)
	_ domain.GuestStore    = (*State)(nil)
	_ domain.CheckInStore  = (*State)(nil)
	_ domain.Resetter      = (*State)(nil)
)
