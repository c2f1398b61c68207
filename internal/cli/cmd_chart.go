package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/gridpad/internal/chart"
)

func buildChartCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "chart --out chart.png",
		Short: "Render the sample line chart as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := chart.WritePNG(f, chart.Default()); err != nil {
				_ = f.Close()
				_ = os.Remove(out)
				return fmt.Errorf("render chart: %w", err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output PNG path")
	return cmd
}
