package guests

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"nocheckin/internal/domain"
)

// ErrNoSuchGuest is returned when a selection index is outside the list.
var ErrNoSuchGuest = errors.New("no such guest")

// Service stores frequent guests in a GuestStore.
type Service struct {
	store domain.GuestStore
	log   *slog.Logger
}

// New returns a guest service. log may be nil.
func New(store domain.GuestStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{store: store, log: log}
}

// Add appends guest to the list.
func (s *Service) Add(ctx context.Context, guest domain.Guest) error {
	if err := domain.ValidateDate(guest.DOB); err != nil {
		return fmt.Errorf("dob: %w", err)
	}
	if err := domain.ValidateDate(guest.VaxxedDate); err != nil {
		return fmt.Errorf("vaxxed_date: %w", err)
	}
	list, err := s.List(ctx)
	if err != nil {
		return err
	}
	list = append(list, guest)
	if err := s.store.SaveGuests(ctx, list); err != nil {
		return fmt.Errorf("save guests: %w", err)
	}
	s.log.Info("guest added", "guests", len(list))
	return nil
}

// List returns the guests in the order they were added.
func (s *Service) List(ctx context.Context) ([]domain.Guest, error) {
	list, err := s.store.LoadGuests(ctx)
	if err != nil {
		return nil, fmt.Errorf("load guests: %w", err)
	}
	return list, nil
}

// Select returns the guests at indices (0-based). Repeated indices count
// once and the result follows list order.
func (s *Service) Select(ctx context.Context, indices []int) ([]domain.Guest, error) {
	if len(indices) == 0 {
		return nil, nil
	}
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]bool, len(indices))
	picked := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(list) {
			return nil, fmt.Errorf("%w: %d", ErrNoSuchGuest, i)
		}
		if !seen[i] {
			seen[i] = true
			picked = append(picked, i)
		}
	}
	sort.Ints(picked)

	out := make([]domain.Guest, 0, len(picked))
	for _, i := range picked {
		out = append(out, list[i])
	}
	return out, nil
}

// CheckInLabel is the check-in button text for n selected guests.
func CheckInLabel(n int) string {
	switch {
	case n == 1:
		return "Check In with 1 guest"
	case n > 1:
		return fmt.Sprintf("Check In with %d guests", n)
	default:
		return "Check In"
	}
}

// Compile-time assertion that Service implements domain.GuestService.
var _ domain.GuestService = (*Service)(nil)
