package commands

import (
	"github.com/spf13/cobra"
)

// reset: erase all stored state.
func resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase settings, entered venues, guests and check-ins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return out.Error("Reset not confirmed",
					"This erases your settings, entered venues, frequent guests and check-in history.",
					"Run `nocheckin reset --yes` to continue")
			}
			if err := appCtx.Reset(cmd.Context()); err != nil {
				return err
			}
			out.Success("All stored data erased")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
