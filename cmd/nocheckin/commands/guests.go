package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"nocheckin/internal/domain"
)

// guests add|list: frequent guests.
func guestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guests",
		Short: "Manage frequent guests",
	}
	cmd.AddCommand(guestsAddCmd(), guestsListCmd())
	return cmd
}

func guestsAddCmd() *cobra.Command {
	var g domain.Guest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a frequent guest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := appCtx.Guests.Add(cmd.Context(), g)
			if errors.Is(err, domain.ErrInvalidDate) {
				return out.Error("Invalid date", err.Error(), "Dates are written YYYY-MM-DD")
			}
			if err != nil {
				return err
			}
			out.Success("Added %s %s", g.FirstName, g.LastName)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&g.FirstName, "first-name", "", "first name")
	f.StringVar(&g.LastName, "last-name", "", "last name")
	f.StringVar(&g.DOB, "dob", "", "date of birth (YYYY-MM-DD)")
	f.StringVar(&g.VaxxedDate, "vaxxed-date", "", "vaccination date (YYYY-MM-DD); empty shows initials only")
	return cmd
}

func guestsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List frequent guests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := appCtx.Guests.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				out.Info("No guest added yet")
				return nil
			}
			rows := make([][]string, 0, len(list))
			for i, g := range list {
				rows = append(rows, []string{itoa(i + 1), g.FirstName, g.LastName, g.DOB, g.VaxxedDate})
			}
			return out.Table([]string{"#", "First name", "Last name", "DOB", "Vaccinated"}, rows)
		},
	}
}
