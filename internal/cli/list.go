package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourgen/internal/colour"
)

type listOptions struct {
	format    string
	preview   bool
	noPreview bool
}

func newListCmd(a *app) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in colours",
		Long: `List the built-in colour table as it will be emitted: constant name, sRGB hex,
linear channel values, alpha, and the nearest SVG colour keyword.

Colour swatches are drawn when stdout is a terminal.

Examples:
  colourgen list
  colourgen list --no-preview
  colourgen list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runList(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format (table, json)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "always draw colour swatches")
	cmd.Flags().BoolVar(&opts.noPreview, "no-preview", false, "never draw colour swatches")
	cmd.MarkFlagsMutuallyExclusive("preview", "no-preview")

	return cmd
}

func (a *app) runList(cmd *cobra.Command, opts *listOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	colours := colour.Builtin()
	out := cmd.OutOrStdout()

	switch opts.format {
	case "json":
		return writeColoursJSON(out, colours, cfg.Prefix)
	case "table":
		preview := opts.preview
		if !opts.preview && !opts.noPreview {
			f, _ := out.(*os.File)
			preview = colour.IsTerminal(f)
		}
		fmt.Fprint(out, colourTable(colours, cfg.Prefix, preview).Render())
		return nil
	default:
		return fmt.Errorf("unknown format: %s (available: table, json)", opts.format)
	}
}

// colourTable lays out one row per colour, optionally led by a swatch.
func colourTable(colours colour.List, prefix string, preview bool) *Table {
	headers := []string{"CONSTANT", "HEX", "R", "G", "B", "A", "NEAREST"}
	if preview {
		headers = append([]string{""}, headers...)
	}

	table := NewTable(headers)
	first := len(headers) - 5
	for i := first; i < first+4; i++ {
		table.AlignRight(i)
	}

	for _, c := range colours {
		nearest, _ := colour.Nearest(c)
		row := []string{
			c.Ident(prefix),
			c.Hex(),
			formatChannel(c.R),
			formatChannel(c.G),
			formatChannel(c.B),
			formatChannel(c.A),
			nearest,
		}
		if preview {
			row = append([]string{colour.Swatch(c, 4)}, row...)
		}
		table.AddRow(row)
	}

	return table
}

func formatChannel(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// colourJSON is the JSON shape of one listed colour.
type colourJSON struct {
	colour.Colour
	Constant string `json:"constant"`
	Hex      string `json:"hex"`
	Nearest  string `json:"nearest"`
}

func writeColoursJSON(w io.Writer, colours colour.List, prefix string) error {
	items := make([]colourJSON, 0, len(colours))
	for _, c := range colours {
		nearest, _ := colour.Nearest(c)
		items = append(items, colourJSON{
			Colour:   c,
			Constant: c.Ident(prefix),
			Hex:      c.Hex(),
			Nearest:  nearest,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("failed to encode colours: %w", err)
	}
	return nil
}
