package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/colourgen/internal/codegen"
	"github.com/jmylchreest/colourgen/internal/colour"
)

// generateOptions holds the flags shared by the root and generate commands.
type generateOptions struct {
	outputDir    string
	templatesDir string
	dryRun       bool
}

func bindGenerateFlags(fs *pflag.FlagSet, opts *generateOptions) {
	fs.StringVarP(&opts.outputDir, "output-dir", "o", "", "directory to write the generated files into (default: current directory)")
	fs.StringVar(&opts.templatesDir, "templates-dir", "", "directory checked for template overrides")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "render the files without writing them")
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write colours.gen.h and colours.gen.c",
		Long: `Write the declarations file and the definitions file for the built-in colour
table, replacing any existing files.

Examples:
  # Generate into the current directory
  colourgen generate

  # Generate into the source tree
  colourgen generate --output-dir src

  # Check what would be written
  colourgen generate --dry-run

  # Use customised templates (see 'colourgen templates dump')
  colourgen generate --templates-dir ./templates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, opts)
		},
	}

	bindGenerateFlags(cmd.Flags(), opts)
	return cmd
}

// runGenerate renders and writes both artifacts.
func (a *app) runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}
	if opts.templatesDir != "" {
		cfg.TemplatesDir = opts.templatesDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	colours := colour.Builtin()
	gen := codegen.New(colours, cfg.Options(), a.logger)

	if opts.dryRun {
		files, err := gen.Files()
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Would write: %s (%d bytes)\n", codegen.OutputPath(cfg.OutputDir, f.Path), len(f.Content))
		}
		return nil
	}

	written, err := gen.Write(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to generate colour files: %w", err)
	}

	a.logger.Debug("generation complete", "colours", len(colours), "files", len(written))
	return nil
}
