package checkin

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"nocheckin/internal/domain"
	"nocheckin/internal/metrics"
)

// Service records check-ins in a CheckInStore.
type Service struct {
	store   domain.CheckInStore
	metrics *metrics.Metrics
	log     *slog.Logger
	now     func() time.Time
}

// New returns a check-in service. m and log may be nil.
func New(store domain.CheckInStore, m *metrics.Metrics, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{store: store, metrics: m, log: log, now: time.Now}
}

// WithClock replaces the clock used to stamp check-ins.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CheckIn stores venueName as the last check-in and appends it to the
// history. An empty venue name is not recorded and reports false.
func (s *Service) CheckIn(ctx context.Context, venueName string, guests []domain.Guest) (domain.CheckIn, bool, error) {
	if venueName == "" {
		return domain.CheckIn{}, false, nil
	}
	at := s.now()

	last := domain.LastCheckIn{Name: venueName, Time: at.Unix()}
	if err := s.store.SaveLastCheckIn(ctx, last); err != nil {
		return domain.CheckIn{}, false, fmt.Errorf("save last check-in: %w", err)
	}

	entry := domain.CheckIn{
		ID:        uuid.NewString(),
		VenueName: venueName,
		At:        at.UTC().Truncate(time.Second),
	}
	for _, g := range guests {
		entry.Guests = append(entry.Guests, strings.TrimSpace(g.FirstName+" "+g.LastName))
	}
	if err := s.store.AppendCheckIn(ctx, entry); err != nil {
		return domain.CheckIn{}, false, fmt.Errorf("append check-in: %w", err)
	}

	s.metrics.ObserveCheckIn()
	s.log.Info("checked in", "id", entry.ID, "guests", len(entry.Guests))
	return entry, true, nil
}

// LastCheckInLine returns "Last Check In: <name> <duration> ago", or "" when
// nothing has been recorded.
func (s *Service) LastCheckInLine(ctx context.Context, now time.Time) (string, error) {
	last, ok, err := s.store.LoadLastCheckIn(ctx)
	if err != nil {
		return "", fmt.Errorf("load last check-in: %w", err)
	}
	if !ok {
		return "", nil
	}
	name := strings.Replace(last.Name, "\n", " ", 1)
	return fmt.Sprintf("Last Check In: %s %s ago", name, HumanizeSince(now.Unix()-last.Time)), nil
}

// History returns up to limit check-ins, most recent first. limit <= 0 means
// all of them.
func (s *Service) History(ctx context.Context, limit int) ([]domain.CheckIn, error) {
	entries, err := s.store.ListCheckIns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	return entries, nil
}

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	month  = 30 * day
)

// HumanizeSince describes an elapsed number of seconds in rough words.
func HumanizeSince(seconds int64) string {
	switch {
	case seconds < minute:
		return "less than a minute"
	case seconds < hour:
		return about(seconds/minute, "minute")
	case seconds < day:
		return about(seconds/hour, "hour")
	case seconds < month:
		return about(seconds/day, "day")
	default:
		return about(seconds/month, "month")
	}
}

func about(n int64, unit string) string {
	if n > 1 {
		unit += "s"
	}
	return fmt.Sprintf("about %d %s", n, unit)
}

// Compile-time assertion that Service implements domain.CheckInService.
var _ domain.CheckInService = (*Service)(nil)
