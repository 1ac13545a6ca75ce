package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"nocheckin/internal/domain"
	"nocheckin/internal/services/cert"
	"nocheckin/internal/services/guests"
)

// scan <payload>: resolve a scanned code and check in.
func scanCmd() *cobra.Command {
	var guestIdx []int
	cmd := &cobra.Command{
		Use:   "scan <payload>",
		Short: "Resolve a scanned venue code and check in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !appCtx.Profile.UseScanner {
				return out.Error("Scanner is turned off",
					"Scanning is disabled in your settings.",
					"Type the 6-digit code with `nocheckin enter`",
					"Turn it back on with `nocheckin settings set --scanner=true`")
			}
			outcome := appCtx.Resolver.ResolveScan(cmd.Context(), args[0])
			return finish(cmd.Context(), outcome, guestIdx)
		},
	}
	cmd.Flags().IntSliceVar(&guestIdx, "guest", nil, "frequent guest number to check in too (repeatable)")
	return cmd
}

// enter <digits...>: resolve a typed short code and check in.
func enterCmd() *cobra.Command {
	var (
		pick     int
		guestIdx []int
	)
	cmd := &cobra.Command{
		Use:   "enter <d1> [d2 ... d6]",
		Short: "Resolve a typed 6-digit venue code and check in",
		Args:  cobra.RangeArgs(1, domain.ShortCodeLength),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome := appCtx.Resolver.ResolveManual(cmd.Context(), args...)
			if outcome.Kind == domain.Ambiguous && pick > 0 {
				chosen, err := appCtx.Resolver.Choose(outcome, pick-1)
				if err != nil {
					return out.Error("No such venue", fmt.Sprintf("Pick a number from 1 to %d.", len(outcome.Candidates)))
				}
				outcome = chosen
			}
			return finish(cmd.Context(), outcome, guestIdx)
		},
	}
	cmd.Flags().IntVar(&pick, "pick", 0, "venue number to use when several match")
	cmd.Flags().IntSliceVar(&guestIdx, "guest", nil, "frequent guest number to check in too (repeatable)")
	return cmd
}

// finish reports an outcome and checks in when it resolved. Unknown and
// ambiguous codes are answers, not failures; they print what to do next.
func finish(ctx context.Context, outcome domain.Outcome, guestIdx []int) error {
	switch outcome.Kind {
	case domain.NoLookup:
		out.Warning("Not a venue code; nothing looked up.")
		return nil
	case domain.NotFound:
		out.Warning("Location Not Found: no venue in %s uses code %s.", appCtx.Directory.Region(), outcome.ShortCode)
		out.Step("Add it with `nocheckin venue add --code %s \"<venue name>\"`", outcome.ShortCode)
		return nil
	case domain.Ambiguous:
		out.Title("Several venues use code %s:", outcome.ShortCode)
		for i, name := range outcome.Candidates {
			out.Info("  %d. %s", i+1, oneLine(name))
		}
		out.Step("Run the same command again with --pick <number>")
		return nil
	}
	return checkIn(ctx, outcome.Name, guestIdx)
}

// checkIn records the check-in and prints the success screen.
func checkIn(ctx context.Context, venue string, guestIdx []int) error {
	selected, err := appCtx.Guests.Select(ctx, toZeroBased(guestIdx))
	if err != nil {
		return out.Error("Unknown guest", err.Error(), "List guests with `nocheckin guests list`")
	}
	entry, ok, err := appCtx.CheckIns.CheckIn(ctx, venue, selected)
	if err != nil {
		return err
	}
	if !ok {
		return out.Error("No venue name", "Nothing was checked in.")
	}

	skin := appCtx.Skin
	out.Title("%s", skin.Title)
	for _, line := range strings.Split(venue, "\n") {
		out.Info("  %s", line)
	}
	out.Info("  %s", cert.Clock(entry.At.Local()))
	out.Success("%s", guests.CheckInLabel(len(selected))+" - done")
	patrons := selected
	if appCtx.Configured {
		patrons = append([]domain.Patron{appCtx.Profile.Patron}, selected...)
	}
	for _, p := range patrons {
		out.Info("  %s", patronLine(p))
	}
	if skin.ThankYouFolks != "" {
		out.Info("Thank you for checking in, %s!", skin.ThankYouFolks)
	}
	return nil
}

func patronLine(p domain.Patron) string {
	c := cert.For(p)
	if !c.HasCert {
		return fmt.Sprintf("[%s] %s", c.Initials, c.Name)
	}
	return "✓ " + c.Name + " (certificate)"
}

func toZeroBased(nums []int) []int {
	idx := make([]int, len(nums))
	for i, n := range nums {
		idx[i] = n - 1
	}
	return idx
}

func oneLine(name string) string { return strings.ReplaceAll(name, "\n", " ") }

func itoa(n int) string { return strconv.Itoa(n) }
