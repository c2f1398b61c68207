package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/gridpad/internal/export"
	"github.com/andyrewlee/gridpad/internal/grid"
)

func buildExportCommand() *cobra.Command {
	var (
		dataPath string
		dir      string
		ranges   []string
		stdout   bool
	)
	cmd := &cobra.Command{
		Use:   "export --range A1:B3 [--range D2]",
		Short: "Write a selection of the sheet as raw JSON",
		Long: `Select one or more ranges of the sheet and write the raw cells, nulls
included, to selectedCells.json in the export directory. Extra --range flags
add ranges the way ctrl-click does in the TUI. Existing files are never
overwritten; a " (n)" suffix is added instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if len(ranges) == 0 {
				return fmt.Errorf("at least one --range is required")
			}
			if dataPath == "" {
				dataPath = cfg.DataPath
			}
			sheet := grid.SampleSheet()
			if dataPath != "" {
				if sheet, err = grid.LoadFile(dataPath); err != nil {
					return err
				}
			}

			parsed := make([]grid.Range, 0, len(ranges))
			for _, ref := range ranges {
				r, err := grid.ParseRange(ref)
				if err != nil {
					return err
				}
				parsed = append(parsed, r)
			}
			cells := grid.Select(sheet, parsed...)

			if stdout {
				data, err := export.Raw(cells)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if dir == "" {
				dir = cfg.Paths.ExportDir
			}
			path, err := export.WriteRaw(dir, cells)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataPath, "data", "", "Data file (.json, .yaml, .csv); defaults to the sample sheet")
	cmd.Flags().StringVar(&dir, "dir", "", "Export directory (default from config)")
	cmd.Flags().StringArrayVar(&ranges, "range", nil, "Cell range in A1 notation; repeat to add ranges")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the JSON instead of writing a file")
	return cmd
}
