package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/andyrewlee/gridpad/internal/grid"
	"github.com/andyrewlee/gridpad/internal/selection"
)

func buildKeyCommand() *cobra.Command {
	var indent bool
	cmd := &cobra.Command{
		Use:   "key [file]",
		Short: "Key a raw selection array, read from file or stdin",
		Long: `Key a raw selection.

The input is a JSON array of cell values with null for empty cells, as
written by export. The first populated cell takes the key after the leading
empties; later empties are dropped and do not consume keys.

  echo '[null,null,"X",null,"Y"]' | gridpad key      # {"3":"X","4":"Y"}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			sel, err := parseSelection(data)
			if err != nil {
				return err
			}
			keyed := selection.Key(sel)
			out, err := keyed.Compact()
			if indent {
				out, err = keyed.Indented()
			}
			if err != nil {
				return fmt.Errorf("encode keyed selection: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&indent, "indent", false, "Pretty-print with two-space indent")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// parseSelection decodes a JSON array of cell values. null marks an empty
// cell; every other value, including "" and 0, is populated.
func parseSelection(data []byte) (selection.Selection, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("input is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, errors.New("expected a JSON array of cell values")
	}
	var sel selection.Selection
	root.ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.Null {
			sel = append(sel, selection.Empty())
		} else {
			sel = append(sel, selection.Populated(grid.ScalarOf(v)))
		}
		return true
	})
	return sel, nil
}
