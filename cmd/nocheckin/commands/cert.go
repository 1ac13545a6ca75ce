package commands

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"nocheckin/internal/services/cert"
	"nocheckin/internal/services/guests"
	settingssvc "nocheckin/internal/services/settings"
)

// cert: show the patron's or a guest's certificate.
func certCmd() *cobra.Command {
	var (
		guest   int
		pngPath string
	)
	cmd := &cobra.Command{
		Use:   "cert",
		Short: "Show a vaccination certificate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.Certificate(cmd.Context(), guest-1)
			if errors.Is(err, guests.ErrNoSuchGuest) {
				return out.Error("Unknown guest", err.Error(), "List guests with `nocheckin guests list`")
			}
			if errors.Is(err, settingssvc.ErrNotConfigured) {
				return out.Error("Get started first", "Your details are not set up yet.",
					"Run `nocheckin settings set --first-name <name> --last-name <name> --dob YYYY-MM-DD`")
			}
			if err != nil {
				return err
			}
			if !c.HasCert {
				out.Info("[%s] %s", c.Initials, c.Name)
				out.Warning("No vaccination date recorded; no certificate to show.")
				return nil
			}

			now := time.Now()
			out.Title("%s - COVID-19 digital certificate", appCtx.Skin.Title)
			if err := out.Table(nil, [][]string{
				{"Name", c.Name},
				{"Date of birth", c.DOB},
				{"Valid from", c.ValidFrom},
			}); err != nil {
				return err
			}
			out.Info("%s", cert.Clock(now))

			if pngPath == "" {
				return nil
			}
			f, err := os.Create(pngPath)
			if err != nil {
				return err
			}
			if err := cert.RenderPNG(f, c, appCtx.Skin, now); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			out.Success("Wrote %s", pngPath)
			return nil
		},
	}
	cmd.Flags().IntVar(&guest, "guest", 0, "frequent guest number (default: you)")
	cmd.Flags().StringVar(&pngPath, "png", "", "also write the certificate as a PNG")
	return cmd
}
