package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourgen/internal/codegen"
	"github.com/jmylchreest/colourgen/internal/template"
)

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage the templates used to render the colour files",
		Long: `Manage the templates used to render colours.gen.h and colours.gen.c.

Templates can be customised by dumping them to a directory, editing them, and
pointing 'generate' at that directory with --templates-dir (or templates_dir
in the config file). A template missing from the directory falls back to the
embedded one.

Examples:
  colourgen templates list --templates-dir ./templates
  colourgen templates dump -l ./templates
  colourgen templates dump -l ./templates --force`,
	}

	cmd.AddCommand(newTemplatesListCmd(a))
	cmd.AddCommand(newTemplatesDumpCmd(a))
	return cmd
}

func newTemplatesListCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates and their overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader, err := a.templateLoader(dir)
			if err != nil {
				return err
			}

			names, err := loader.List()
			if err != nil {
				return err
			}

			table := NewTable([]string{"TEMPLATE", "SOURCE"})
			for _, name := range names {
				info := loader.Info(name)
				source := "embedded"
				if info.CustomExists {
					source = info.CustomPath
				}
				table.AddRow([]string{name, source})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "templates-dir", "", "directory checked for template overrides")
	return cmd
}

func newTemplatesDumpCmd(a *app) *cobra.Command {
	var (
		location string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the embedded templates to a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader, err := a.templateLoader(location)
			if err != nil {
				return err
			}

			target := location
			if target == "" {
				cfg, err := a.loadConfig()
				if err != nil {
					return err
				}
				target = cfg.TemplatesDir
			}
			if target == "" {
				return errors.New("no template directory given (use --location or templates_dir in the config)")
			}

			dumped, err := loader.DumpAll(target, force)
			for _, p := range dumped {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
			}
			if err != nil {
				return fmt.Errorf("failed to dump templates: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "directory to write templates into (default: templates_dir from config)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing templates")
	return cmd
}

// templateLoader returns a loader over the generator's embedded templates with
// overrides from dir, or from the configured templates directory.
func (a *app) templateLoader(dir string) (*template.Loader, error) {
	if dir == "" {
		cfg, err := a.loadConfig()
		if err != nil {
			return nil, err
		}
		dir = cfg.TemplatesDir
	}

	return template.New(codegen.EmbeddedTemplates()).
		WithCustomDir(dir).
		WithLogger(a.logger.Named("template")), nil
}
