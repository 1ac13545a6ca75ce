package overrides

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"nocheckin/internal/domain"
)

// Store is the in-memory override map plus the persister it flushes to.
type Store struct {
	mu        sync.Mutex
	entries   map[domain.ShortCode]string
	persister domain.OverrideStore
	log       *slog.Logger
}

// New returns a Store seeded with entries (copied verbatim). persister may be
// nil, in which case Flush is a no-op.
func New(entries map[domain.ShortCode]string, persister domain.OverrideStore, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := make(map[domain.ShortCode]string, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &Store{entries: m, persister: persister, log: log}
}

// Load reads the persisted entries from persister and returns a Store over them.
func Load(ctx context.Context, persister domain.OverrideStore, log *slog.Logger) (*Store, error) {
	entries, err := persister.LoadOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("load overrides: %w", err)
	}
	return New(entries, persister, log), nil
}

// Lookup returns the user-entered name for code. An entry stored with an
// empty name is a miss.
func (s *Store) Lookup(code domain.ShortCode) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := s.entries[code]
	return name, name != ""
}

// Add inserts or replaces the entry for code. It does not persist.
func (s *Store) Add(code domain.ShortCode, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[code] = name
}

// Flush writes the whole map to the persister.
func (s *Store) Flush(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	snap := s.Snapshot()
	if err := s.persister.SaveOverrides(ctx, snap); err != nil {
		return fmt.Errorf("flush overrides: %w", err)
	}
	s.log.Debug("overrides flushed", "entries", len(snap))
	return nil
}

// AddAndFlush adds the entry then flushes.
func (s *Store) AddAndFlush(ctx context.Context, code domain.ShortCode, name string) error {
	s.Add(code, name)
	s.log.Info("override added", "short_code", code)
	return s.Flush(ctx)
}

// Snapshot returns a copy of the entries.
func (s *Store) Snapshot() map[domain.ShortCode]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[domain.ShortCode]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// Codes returns the stored short codes in ascending order.
func (s *Store) Codes() []domain.ShortCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ShortCode, 0, len(s.entries))
	for k := range s.entries {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Compile-time assertion that Store implements domain.Overrides.
var _ domain.Overrides = (*Store)(nil)
