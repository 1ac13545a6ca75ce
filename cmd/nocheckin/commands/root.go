package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nocheckin/internal/app"
	"nocheckin/internal/directory"
	"nocheckin/internal/printer"
	"nocheckin/internal/store"
)

var (
	home       string
	configPath string
	passphrase string
	verbose    bool

	appCtx *app.App
	out    *printer.Printer
)

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if appCtx != nil {
		err = errors.Join(err, appCtx.Close())
		appCtx = nil
	}
	if err != nil && !printer.Reported(err) {
		out.Error("Error", err.Error())
	}
	return err
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	out = printer.New(stdout, stderr)

	root := &cobra.Command{
		Use:           "nocheckin",
		Short:         "Venue check-in kiosk",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == cobra.ShellCompNoDescRequestCmd {
				return nil
			}
			return setup(cmd.Context())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.nocheckin)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yml)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase sealing the patron profile")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging on stderr")

	root.AddCommand(
		scanCmd(), enterCmd(), venueCmd(), checkinCmd(), lastCmd(), historyCmd(),
		settingsCmd(), guestsCmd(), certCmd(), resetCmd(), datasetCmd(),
	)
	return root
}

// setup loads the config and builds appCtx.
func setup(ctx context.Context) error {
	if home == "" {
		dir, err := app.DefaultHome()
		if err != nil {
			return err
		}
		home = dir
	}
	if configPath == "" {
		configPath = filepath.Join(home, app.ConfigFilename)
	}
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return out.Error("Invalid configuration", err.Error(), "Fix or remove "+configPath)
	}
	cfg.Home = home
	cfg.Passphrase = passphrase
	cfg.Verbose = verbose

	w, err := app.NewWire(ctx, cfg, out.ErrOut)
	if errors.Is(err, app.ErrPassphraseRequired) {
		return out.Error("Passphrase required", err.Error(), "Pass it with -p <passphrase>")
	}
	if err != nil {
		return err
	}
	a, err := app.New(ctx, w)
	if err != nil {
		_ = w.Close()
		switch {
		case errors.Is(err, store.ErrPassphraseRequired):
			return out.Error("Profile is sealed", err.Error(), "Pass the passphrase with -p <passphrase>")
		case errors.Is(err, store.ErrWrongPassphrase):
			return out.Error("Wrong passphrase", err.Error())
		}
		return err
	}
	appCtx = a
	return nil
}

// completeVenue completes the first argument from the region's venue names
// and the user's own venues.
func completeVenue(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if appCtx == nil {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := setup(ctx); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	return directory.Suggest(toComplete, appCtx.VenueTerms(), 0), cobra.ShellCompDirectiveNoFileComp
}
