package commands

import (
	"time"

	"github.com/spf13/cobra"
)

// checkin <venue>: check in to a venue by name.
func checkinCmd() *cobra.Command {
	var guestIdx []int
	cmd := &cobra.Command{
		Use:               "checkin <venue>",
		Short:             "Check in to a venue by name",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeVenue,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkIn(cmd.Context(), args[0], guestIdx)
		},
	}
	cmd.Flags().IntSliceVar(&guestIdx, "guest", nil, "frequent guest number to check in too (repeatable)")
	return cmd
}

// last: show the last check-in.
func lastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Show the last check-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := appCtx.CheckIns.LastCheckInLine(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			if line == "" {
				out.Info("No check-ins yet.")
				return nil
			}
			out.Info("%s", line)
			return nil
		},
	}
}

// history: list past check-ins.
func historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past check-ins, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := appCtx.CheckIns.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				out.Info("No check-ins yet.")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.At.Local().Format("2006-01-02 15:04"),
					oneLine(e.VenueName),
					itoa(len(e.Guests)),
				})
			}
			return out.Table([]string{"When", "Venue", "Guests"}, rows)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show (0 for all)")
	return cmd
}
