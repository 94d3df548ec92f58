package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourgen/internal/colour"
)

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name>",
		Short: "Resolve a colour name the way the generated lookup does",
		Long: `Resolve a colour name against the built-in table using the same rules as the
generated lookup function: names are compared case-insensitively and the first
match wins. An unknown name logs a warning and exits non-zero.

Examples:
  colourgen lookup red
  colourgen lookup FontGreen`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			name := args[0]
			c, ok := colour.Builtin().Lookup(name)
			if !ok {
				a.logger.Warn("colour not found", "name", name)
				return fmt.Errorf("colour %q not found", name)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s r=%g g=%g b=%g a=%g (%s)\n",
				c.Ident(cfg.Prefix), c.R, c.G, c.B, c.A, c.Hex())
			return nil
		},
	}
}
