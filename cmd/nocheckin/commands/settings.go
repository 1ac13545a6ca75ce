package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"nocheckin/internal/domain"
	settingssvc "nocheckin/internal/services/settings"
)

// settings show|set: the patron profile and kiosk preferences.
func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change your profile and region",
	}
	cmd.AddCommand(settingsShowCmd(), settingsSetCmd())
	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := appCtx.Profile
			if !appCtx.Configured {
				out.Warning("Not set up yet; showing defaults. Run `nocheckin settings set`.")
			}
			scanner := "off"
			if p.UseScanner {
				scanner = "on"
			}
			return out.Table([]string{"Setting", "Value"}, [][]string{
				{"state", p.Region.String() + " (" + appCtx.Skin.Title + ")"},
				{"use_scanner", scanner},
				{"first_name", p.FirstName},
				{"last_name", p.LastName},
				{"dob", p.DOB},
				{"vaxxed_date", p.VaxxedDate},
				{"phone", p.Phone},
				{"email", p.Email},
			})
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var (
		region     string
		useScanner bool
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings; only the flags given are updated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, ok, err := appCtx.State.LoadSettings(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				stored = settingssvc.Defaults()
			}

			f := cmd.Flags()
			if f.Changed("region") {
				stored.Region = domain.Region(strings.ToLower(region))
			}
			if f.Changed("scanner") {
				stored.UseScanner = useScanner
			}
			for flag, dst := range map[string]*string{
				"first-name":  &stored.FirstName,
				"last-name":   &stored.LastName,
				"dob":         &stored.DOB,
				"vaxxed-date": &stored.VaxxedDate,
				"phone":       &stored.Phone,
				"email":       &stored.Email,
			} {
				if f.Changed(flag) {
					v, _ := f.GetString(flag)
					*dst = v
				}
			}

			err = appCtx.Settings.Save(cmd.Context(), stored)
			switch {
			case errors.Is(err, domain.ErrInvalidRegion), errors.Is(err, settingssvc.ErrUnknownRegion):
				return out.Error("Unknown region", err.Error(), "Use one of: "+regionList())
			case errors.Is(err, domain.ErrInvalidDate):
				return out.Error("Invalid date", err.Error(), "Dates are written YYYY-MM-DD")
			case err != nil:
				return err
			}
			out.Success("Settings saved")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&region, "region", "", "region skin and venue set (see `nocheckin dataset regions`)")
	f.BoolVar(&useScanner, "scanner", true, "scan codes (false to type them)")
	f.String("first-name", "", "first name")
	f.String("last-name", "", "last name")
	f.String("dob", "", "date of birth (YYYY-MM-DD)")
	f.String("vaxxed-date", "", "vaccination date (YYYY-MM-DD)")
	f.String("phone", "", "phone number")
	f.String("email", "", "email address")
	return cmd
}

func regionList() string {
	known := appCtx.Settings.Known()
	names := make([]string, 0, len(known))
	for _, r := range known {
		names = append(names, r.String())
	}
	return strings.Join(names, ", ")
}
