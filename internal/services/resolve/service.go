package resolve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"nocheckin/internal/domain"
	"nocheckin/internal/metrics"
)

var (
	// ErrEmptyVenueName is returned when creating a venue without a name.
	ErrEmptyVenueName = errors.New("venue name is required")
	// ErrNoCandidate is returned when Choose is given a non-ambiguous outcome or
	// an index outside the candidate list.
	ErrNoCandidate = errors.New("no such candidate")
)

// Service resolves codes against the override store and the venue directory.
type Service struct {
	dir       domain.VenueDirectory
	overrides domain.Overrides
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// New returns a resolver. m and log may be nil.
func New(dir domain.VenueDirectory, overrides domain.Overrides, m *metrics.Metrics, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{dir: dir, overrides: overrides, metrics: m, log: log}
}

// ResolveScan resolves a decoded scan payload. The code is whatever follows the
// last '/'; anything but 13 digits is ignored so scanning can continue.
func (s *Service) ResolveScan(_ context.Context, payload string) domain.Outcome {
	out := s.resolveScan(payload)
	s.observe(metrics.SourceScan, out)
	return out
}

func (s *Service) resolveScan(payload string) domain.Outcome {
	raw := payload[strings.LastIndex(payload, "/")+1:]
	code, err := domain.ParseVenueCode(raw)
	if err != nil {
		return domain.Outcome{Kind: domain.NoLookup}
	}
	if name, ok := s.overrides.Lookup(code.ShortCode); ok {
		return domain.Outcome{Kind: domain.Resolved, Name: name, ShortCode: code.ShortCode, Overridden: true}
	}
	if name, ok := s.dir.LookupByPrefixAndShortCode(code.Prefix, code.ShortCode); ok {
		return domain.Outcome{Kind: domain.Resolved, Name: name, ShortCode: code.ShortCode}
	}
	return domain.Outcome{Kind: domain.NotFound, ShortCode: code.ShortCode}
}

// ResolveManual resolves a typed short code. fields are the six single-digit
// inputs in order; a single field holding all six digits is accepted too.
func (s *Service) ResolveManual(_ context.Context, fields ...string) domain.Outcome {
	out := s.resolveManual(strings.Join(fields, ""))
	s.observe(metrics.SourceManual, out)
	return out
}

func (s *Service) resolveManual(raw string) domain.Outcome {
	code, err := domain.ParseShortCode(raw)
	if err != nil {
		return domain.Outcome{Kind: domain.NoLookup}
	}
	if name, ok := s.overrides.Lookup(code); ok {
		return domain.Outcome{Kind: domain.Resolved, Name: name, ShortCode: code, Overridden: true}
	}
	switch names := s.dir.LookupByShortCode(code); len(names) {
	case 0:
		return domain.Outcome{Kind: domain.NotFound, ShortCode: code}
	case 1:
		return domain.Outcome{Kind: domain.Resolved, Name: names[0], ShortCode: code}
	default:
		return domain.Outcome{Kind: domain.Ambiguous, Candidates: names, ShortCode: code}
	}
}

// Choose resolves an ambiguous outcome to the candidate at index (0-based).
func (s *Service) Choose(outcome domain.Outcome, index int) (domain.Outcome, error) {
	if outcome.Kind != domain.Ambiguous || index < 0 || index >= len(outcome.Candidates) {
		return domain.Outcome{}, ErrNoCandidate
	}
	return domain.Outcome{
		Kind:      domain.Resolved,
		Name:      outcome.Candidates[index],
		ShortCode: outcome.ShortCode,
	}, nil
}

// CreateVenue accepts a user-entered venue name. With a short code the name is
// added to the override store and flushed; with no code it is resolved without
// being persisted.
func (s *Service) CreateVenue(ctx context.Context, code string, name string) (domain.Outcome, error) {
	if name == "" {
		return domain.Outcome{}, ErrEmptyVenueName
	}
	if code == "" {
		s.observe(metrics.SourceCreate, domain.Outcome{Kind: domain.Resolved})
		return domain.Outcome{Kind: domain.Resolved, Name: name}, nil
	}
	sc, err := domain.ParseShortCode(code)
	if err != nil {
		return domain.Outcome{}, err
	}
	if err := s.overrides.AddAndFlush(ctx, sc, name); err != nil {
		return domain.Outcome{}, fmt.Errorf("save venue %s: %w", sc, err)
	}
	s.metrics.ObserveOverrideAdded()
	out := domain.Outcome{Kind: domain.Resolved, Name: name, ShortCode: sc, Overridden: true}
	s.observe(metrics.SourceCreate, out)
	return out, nil
}

func (s *Service) observe(source string, out domain.Outcome) {
	s.metrics.ObserveResolution(source, out.Kind.String())
	s.log.Debug("resolved",
		"source", source,
		"region", s.dir.Region(),
		"short_code", out.ShortCode,
		"outcome", out.Kind.String(),
		"overridden", out.Overridden,
	)
}

// Compile-time assertion that Service implements domain.Resolver.
var _ domain.Resolver = (*Service)(nil)
