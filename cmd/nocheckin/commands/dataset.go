package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"nocheckin/internal/directory"
)

// dataset import|regions: build and inspect venue datasets.
func datasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Build or inspect venue datasets",
	}
	cmd.AddCommand(datasetImportCmd(), datasetRegionsCmd())
	return cmd
}

func datasetImportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "import <sheet.xlsx|sheet.xls>",
		Short: "Convert a venue spreadsheet (region, prefix, short_code, name) to a dataset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			rows, err := directory.ReadSpreadsheet(in, args[0])
			in.Close()
			if err != nil {
				return out.Error("Could not read spreadsheet", err.Error())
			}
			ds, err := directory.Import(rows)
			if err != nil {
				return out.Error("Could not import spreadsheet", err.Error(),
					"The first row must name the columns region, prefix, short_code and name")
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			compress := strings.EqualFold(filepath.Ext(output), ".xz")
			if err := directory.WriteDataset(f, ds, compress); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			out.Success("Wrote %d venues in %d regions to %s", ds.Len(), len(ds.Regions()), output)
			out.Step("Use it with `dataset: %s` in %s", output, configPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "venues.json.xz", "dataset file to write (.xz compresses)")
	return cmd
}

func datasetRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the regions in the loaded dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{}
			for _, r := range appCtx.Dataset.Regions() {
				dir, _ := appCtx.Dataset.Narrow(r)
				mark := ""
				if r == appCtx.Directory.Region() {
					mark = "*"
				}
				rows = append(rows, []string{r.String() + mark, fmt.Sprint(dir.Len())})
			}
			return out.Table([]string{"Region", "Venues"}, rows)
		},
	}
}
