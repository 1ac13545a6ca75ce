package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"nocheckin/internal/directory"
	"nocheckin/internal/domain"
	"nocheckin/internal/services/resolve"
)

// venue add|list|search: manage user-entered venues.
func venueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venue",
		Short: "Manage venues you have entered by hand",
	}
	cmd.AddCommand(venueAddCmd(), venueListCmd(), venueSearchCmd())
	return cmd
}

func venueAddCmd() *cobra.Command {
	var (
		code     string
		saveOnly bool
	)
	cmd := &cobra.Command{
		Use:               "add <name>",
		Short:             "Check in to a venue by name; with --code the name is remembered for that code",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeVenue,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := appCtx.Resolver.CreateVenue(cmd.Context(), code, args[0])
			switch {
			case errors.Is(err, resolve.ErrEmptyVenueName):
				return out.Error("Venue name is required", "")
			case errors.Is(err, domain.ErrInvalidShortCode):
				return out.Error("Invalid venue code", err.Error(), "Venue codes are exactly 6 digits")
			case err != nil:
				return err
			}
			if outcome.ShortCode != "" {
				out.Success("Saved %q for code %s", oneLine(outcome.Name), outcome.ShortCode)
			}
			if saveOnly {
				return nil
			}
			return checkIn(cmd.Context(), outcome.Name, nil)
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "6-digit venue code to remember the name for")
	cmd.Flags().BoolVar(&saveOnly, "save-only", false, "remember the name without checking in")
	return cmd
}

func venueListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List venues you have entered by hand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := appCtx.Overrides.Codes()
			if len(codes) == 0 {
				out.Info("No venues entered yet.")
				return nil
			}
			rows := make([][]string, 0, len(codes))
			for _, c := range codes {
				name, _ := appCtx.Overrides.Lookup(c)
				rows = append(rows, []string{c.String(), oneLine(name)})
			}
			return out.Table([]string{"Code", "Venue"}, rows)
		},
	}
}

func venueSearchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <start of name>",
		Short: "List venue names starting with the given text; the first is what typing completes to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches := directory.Suggest(args[0], appCtx.VenueTerms(), limit)
			if len(matches) == 0 {
				out.Info("No venues start with %q.", args[0])
				return nil
			}
			for _, name := range matches {
				out.Info("%s", name)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "most names to list; 0 lists all")
	return cmd
}
