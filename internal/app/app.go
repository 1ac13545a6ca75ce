package app

import (
	"context"
	"fmt"

	"nocheckin/internal/directory"
	"nocheckin/internal/domain"
	"nocheckin/internal/overrides"
	checkinsvc "nocheckin/internal/services/checkin"
	certsvc "nocheckin/internal/services/cert"
	guestsvc "nocheckin/internal/services/guests"
	resolvesvc "nocheckin/internal/services/resolve"
	settingssvc "nocheckin/internal/services/settings"
)

// App is the service graph for the patron's current region.
type App struct {
	*Wire

	Profile    domain.Settings
	Configured bool
	Skin       domain.Skin
	Directory  *directory.Directory

	Settings  *settingssvc.Service
	Overrides *overrides.Store
	Resolver  *resolvesvc.Service
	CheckIns  *checkinsvc.Service
	Guests    *guestsvc.Service
}

// New loads the settings and overrides and builds the services.
func New(ctx context.Context, w *Wire) (*App, error) {
	settings := settingssvc.New(w.State, w.Log).AllowRegions(w.Dataset.Regions()...)
	profile, configured, err := settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	dir, ok := w.Dataset.Narrow(profile.Region)
	if !ok {
		w.Log.Warn("no venues for region", "region", profile.Region)
	}

	ov, err := overrides.Load(ctx, w.State, w.Log)
	if err != nil {
		return nil, err
	}

	return &App{
		Wire:       w,
		Profile:    profile,
		Configured: configured,
		Skin:       settings.Skin(profile.Region),
		Directory:  dir,
		Settings:   settings,
		Overrides:  ov,
		Resolver:   resolvesvc.New(dir, ov, w.Metrics, w.Log),
		CheckIns:   checkinsvc.New(w.State, w.Metrics, w.Log),
		Guests:     guestsvc.New(w.State, w.Log),
	}, nil
}

// VenueTerms lists venue names for typed-name completion: the region's
// directory in dataset order, then user-entered venues by code.
func (a *App) VenueTerms() []string {
	names := a.Directory.Names()
	terms := make([]string, 0, len(names)+a.Overrides.Len())
	for _, name := range names {
		terms = append(terms, directory.SearchTerm(name))
	}
	for _, code := range a.Overrides.Codes() {
		if name, ok := a.Overrides.Lookup(code); ok {
			terms = append(terms, directory.SearchTerm(name))
		}
	}
	return terms
}

// CompleteVenue returns the first venue name starting with typed.
func (a *App) CompleteVenue(typed string) (string, bool) {
	return directory.Complete(typed, a.VenueTerms())
}

// Certificate returns the certificate of the patron (index < 0) or of the
// guest at index. The patron's needs saved settings.
func (a *App) Certificate(ctx context.Context, index int) (certsvc.Certificate, error) {
	if index < 0 {
		profile, err := a.Settings.Require(ctx)
		if err != nil {
			return certsvc.Certificate{}, err
		}
		return certsvc.For(profile.Patron), nil
	}
	picked, err := a.Guests.Select(ctx, []int{index})
	if err != nil {
		return certsvc.Certificate{}, err
	}
	if len(picked) == 0 {
		return certsvc.Certificate{}, fmt.Errorf("%w: %d", guestsvc.ErrNoSuchGuest, index)
	}
	return certsvc.For(picked[0]), nil
}

// Reset erases all persisted state and forgets the in-memory overrides.
func (a *App) Reset(ctx context.Context) error {
	if err := a.State.Reset(ctx); err != nil {
		return err
	}
	a.Overrides = overrides.New(nil, a.State, a.Log)
	a.Resolver = resolvesvc.New(a.Directory, a.Overrides, a.Metrics, a.Log)
	a.Log.Info("state reset")
	return nil
}
