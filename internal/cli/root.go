// Package cli provides the command-line interface for colourgen.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourgen/internal/config"
	"github.com/jmylchreest/colourgen/internal/version"
)

// app carries state shared by every command of one invocation.
type app struct {
	verbose    bool
	quiet      bool
	configPath string
	logger     hclog.Logger
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand generates the colour files.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}
	gen := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:   "colourgen",
		Short: "Generate C colour constants from the built-in colour table",
		Long: `colourgen emits colours.gen.h and colours.gen.c from the built-in table of
named colours. RGB channels are converted from sRGB to linear space; alpha is
written unchanged. The definitions file also provides a case-insensitive
lookup from colour name to constant.

Run without a subcommand to generate into the current directory.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, gen)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (YAML or JSON, default: $"+config.EnvConfig+")")
	bindGenerateFlags(rootCmd.Flags(), gen)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newLookupCmd(a))
	rootCmd.AddCommand(newTemplatesCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup creates the logger once flags are parsed.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.verbose && a.quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	level := hclog.Info
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:        "colourgen",
		Output:      cmd.ErrOrStderr(),
		Level:       level,
		DisableTime: true,
	})
	return nil
}

// loadConfig resolves configuration: defaults, then the config file, then
// the environment. Command flags are applied by the caller.
func (a *app) loadConfig() (*config.Config, error) {
	path := a.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("loaded config", "path", path)
		cfg = loaded
	}

	return cfg.FromEnv(), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
