package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"nocheckin/internal/directory"
	"nocheckin/internal/metrics"
	"nocheckin/internal/store"
)

// ErrPassphraseRequired is returned when seal_profile is set and no
// passphrase was given.
var ErrPassphraseRequired = errors.New("seal_profile is set; pass --passphrase")

// Wire bundles the infrastructure every command needs.
type Wire struct {
	Log     *slog.Logger
	State   *store.State
	Dataset *directory.Dataset
	Metrics *metrics.Metrics

	metricsPath string
}

// NewWire builds the logger, opens the state store and loads the dataset.
func NewWire(ctx context.Context, cfg Config, logOut io.Writer) (*Wire, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: lvl}))

	if cfg.SealProfile && cfg.Passphrase == "" {
		return nil, ErrPassphraseRequired
	}

	st, err := store.Open(ctx, store.Options{Kind: cfg.Backend, Dir: cfg.Home, Passphrase: cfg.Passphrase})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	ds, err := loadDataset(cfg.Dataset)
	if err != nil {
		st.Close()
		return nil, err
	}
	log.Debug("dataset loaded", "path", cfg.Dataset, "regions", len(ds.Regions()), "venues", ds.Len())

	return &Wire{
		Log:         log,
		State:       st,
		Dataset:     ds,
		Metrics:     metrics.New(),
		metricsPath: cfg.MetricsTextfile,
	}, nil
}

func loadDataset(path string) (*directory.Dataset, error) {
	if path == "" {
		return directory.Embedded()
	}
	ds, err := directory.OpenDataset(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	return ds, nil
}

// Close writes the metrics textfile, if configured, and closes the store.
func (w *Wire) Close() error {
	mErr := w.Metrics.WriteTextfile(w.metricsPath)
	if mErr != nil {
		mErr = fmt.Errorf("write metrics: %w", mErr)
	}
	return errors.Join(mErr, w.State.Close())
}
