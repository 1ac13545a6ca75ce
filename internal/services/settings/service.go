package settings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"nocheckin/internal/domain"
)

var (
	// ErrNotConfigured is returned by Require before any settings were saved.
	ErrNotConfigured = errors.New("settings not configured; run `nocheckin settings set` first")
	// ErrUnknownRegion is returned when saving a well-formed region that has
	// neither a skin nor venues in the loaded dataset.
	ErrUnknownRegion = errors.New("region has no skin and no venues in the dataset")
)

// DefaultRegion is used until the patron picks one.
const DefaultRegion domain.Region = "qld"

// Vaccination dates are made up within this many days before today.
const (
	minVaxxedDays = 7
	maxVaxxedDays = 60
)

var skins = map[domain.Region]domain.Skin{
	"act": {Title: "Check In CBR", Accent: "#1d4f91"},
	"qld": {Title: "Check In Qld", ThankYouFolks: "Queenslanders", Accent: "#7b1c2e"},
	"nt":  {Title: "The Territory Check In", ThankYouFolks: "Territorians", Accent: "#e56a1a"},
	"tas": {Title: "Check In TAS", ThankYouFolks: "Tasmanians", Accent: "#006a4e"},
}

// Regions lists the skinned regions in display order.
func Regions() []domain.Region { return []domain.Region{"act", "nt", "qld", "tas"} }

// Defaults returns the settings used before anything is saved.
func Defaults() domain.Settings {
	return domain.Settings{Region: DefaultRegion, UseScanner: true}
}

// Service reads and writes settings through a SettingsStore.
type Service struct {
	store domain.SettingsStore
	log   *slog.Logger
	now   func() time.Time
	intn  func(n int) int
	extra []domain.Region // dataset regions without a skin
}

// New returns a settings service. log may be nil.
func New(store domain.SettingsStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{store: store, log: log, now: time.Now, intn: rand.Intn}
}

// WithRand replaces the clock and random source used to make up a
// vaccination date.
func (s *Service) WithRand(now func() time.Time, intn func(n int) int) *Service {
	s.now = now
	s.intn = intn
	return s
}

// AllowRegions adds regions, typically those of the loaded dataset, to the
// ones Save accepts. Regions without a skin get the default region's.
func (s *Service) AllowRegions(regions ...domain.Region) *Service {
	for _, r := range regions {
		if !s.known(r) {
			s.extra = append(s.extra, r)
		}
	}
	return s
}

// Known returns the regions Save accepts: the skinned ones, then any added
// with AllowRegions in the order given.
func (s *Service) Known() []domain.Region {
	return append(Regions(), s.extra...)
}

func (s *Service) known(r domain.Region) bool {
	if _, ok := skins[r]; ok {
		return true
	}
	for _, e := range s.extra {
		if e == r {
			return true
		}
	}
	return false
}

// Load merges the stored settings over the defaults and reports whether any
// were stored. An empty vaccination date is filled with a random day 7 to 60
// days ago; the made-up date is not persisted.
func (s *Service) Load(ctx context.Context) (domain.Settings, bool, error) {
	stored, ok, err := s.store.LoadSettings(ctx)
	if err != nil {
		return domain.Settings{}, false, fmt.Errorf("load settings: %w", err)
	}

	out := Defaults()
	if ok {
		if stored.Region != "" {
			out.Region = stored.Region
		}
		out.UseScanner = stored.UseScanner
		overlay(&out.FirstName, stored.FirstName)
		overlay(&out.LastName, stored.LastName)
		overlay(&out.Email, stored.Email)
		overlay(&out.Phone, stored.Phone)
		overlay(&out.DOB, stored.DOB)
		overlay(&out.VaxxedDate, stored.VaxxedDate)
	}
	if out.VaxxedDate == "" {
		out.VaxxedDate = s.randomVaxxedDate()
	}
	return out, ok, nil
}

// Require is Load that fails with ErrNotConfigured when nothing is stored.
func (s *Service) Require(ctx context.Context) (domain.Settings, error) {
	out, ok, err := s.Load(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if !ok {
		return domain.Settings{}, ErrNotConfigured
	}
	return out, nil
}

// Save validates and persists settings.
func (s *Service) Save(ctx context.Context, settings domain.Settings) error {
	if _, err := domain.ParseRegion(settings.Region.String()); err != nil {
		return fmt.Errorf("%w: %q", err, settings.Region)
	}
	if !s.known(settings.Region) {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, settings.Region)
	}
	if err := domain.ValidateDate(settings.DOB); err != nil {
		return fmt.Errorf("dob: %w", err)
	}
	if err := domain.ValidateDate(settings.VaxxedDate); err != nil {
		return fmt.Errorf("vaxxed_date: %w", err)
	}
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.log.Info("settings saved", "region", settings.Region, "use_scanner", settings.UseScanner)
	return nil
}

// Skin returns the wording and accent colour for region. Unknown regions get
// the default region's skin.
func (s *Service) Skin(region domain.Region) domain.Skin {
	if skin, ok := skins[region]; ok {
		return skin
	}
	return skins[DefaultRegion]
}

func (s *Service) randomVaxxedDate() string {
	days := s.intn(maxVaxxedDays-minVaxxedDays+1) + minVaxxedDays
	return s.now().AddDate(0, 0, -days).Format(domain.DateLayout)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Compile-time assertion that Service implements domain.SettingsService.
var _ domain.SettingsService = (*Service)(nil)
