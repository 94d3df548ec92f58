// Package codegen renders the colour table into a C declarations file and a
// C definitions file.
package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"text/template"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colourgen/internal/colour"
	tmplloader "github.com/jmylchreest/colourgen/internal/template"
)

//go:embed *.tmpl
var templates embed.FS

// Template names of the two artifacts.
const (
	HeaderTemplate = "colours.gen.h.tmpl"
	SourceTemplate = "colours.gen.c.tmpl"
)

// EmbeddedTemplates returns the embedded template filesystem.
func EmbeddedTemplates() embed.FS {
	return templates
}

// Options controls the names used in, and the location of, the generated
// files.
type Options struct {
	// HeaderPath and SourcePath are the artifact file names, relative to the
	// directory passed to Write unless absolute.
	HeaderPath string
	SourcePath string

	// Prefix is prepended to each colour name to form its constant identifier.
	Prefix string
	// TypeName is the C aggregate type with r, g, b and a fields.
	TypeName string
	// LookupFunc is the name of the generated name-to-constant function.
	LookupFunc string
	// Guard is the include-guard sentinel of the header.
	Guard string
	// Includes are the collaborator headers included by the definitions file.
	Includes []string
	// WarnMacro is the logging call used when a lookup fails.
	WarnMacro string

	// Generator is written into the banner of both files. Empty means the
	// main package path of the running binary.
	Generator string
	// TemplatesDir, when set, is checked for template overrides.
	TemplatesDir string
}

// DefaultOptions returns the options that produce colours.gen.h and
// colours.gen.c.
func DefaultOptions() Options {
	return Options{
		HeaderPath: "colours.gen.h",
		SourcePath: "colours.gen.c",
		Prefix:     "c",
		TypeName:   "glColour",
		LookupFunc: "colour_from_name",
		Guard:      "COLOURS_GEN_C_H",
		Includes:   []string{"colour.h", "log.h"},
		WarnMacro:  "WARN",
	}
}

// File is a rendered artifact.
type File struct {
	Path    string
	Content []byte
}

// Generator renders a fixed colour list into the two artifacts.
type Generator struct {
	colours colour.List
	opts    Options
	logger  hclog.Logger
	loader  *tmplloader.Loader
}

// New creates a generator for colours. A nil logger discards output.
func New(colours colour.List, opts Options, logger hclog.Logger) *Generator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.Generator == "" {
		opts.Generator = generatorPath()
	}

	loader := tmplloader.New(templates).
		WithCustomDir(opts.TemplatesDir).
		WithLogger(logger.Named("template"))

	return &Generator{
		colours: colours,
		opts:    opts,
		logger:  logger,
		loader:  loader,
	}
}

// templateData is the value both templates execute against.
type templateData struct {
	Generator  string
	Guard      string
	TypeName   string
	LookupFunc string
	WarnMacro  string
	Includes   []string
	Colours    colour.List
}

func (g *Generator) data() templateData {
	return templateData{
		Generator:  g.opts.Generator,
		Guard:      g.opts.Guard,
		TypeName:   g.opts.TypeName,
		LookupFunc: g.opts.LookupFunc,
		WarnMacro:  g.opts.WarnMacro,
		Includes:   g.opts.Includes,
		Colours:    g.colours,
	}
}

// RenderHeader renders the declarations file.
func (g *Generator) RenderHeader() ([]byte, error) {
	return g.render(HeaderTemplate)
}

// RenderSource renders the definitions file, including the lookup function.
func (g *Generator) RenderSource() ([]byte, error) {
	return g.render(SourceTemplate)
}

func (g *Generator) render(name string) ([]byte, error) {
	content, fromCustom, err := g.loader.Load(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(templateFuncs(g.opts.Prefix)).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, g.data()); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	g.logger.Debug("rendered artifact", "template", name, "custom", fromCustom, "colours", len(g.colours), "bytes", buf.Len())
	return buf.Bytes(), nil
}

// artifact pairs an output path with the template that renders it.
type artifact struct {
	path     string
	template string
}

// artifacts lists the outputs in write order.
func (g *Generator) artifacts() []artifact {
	return []artifact{
		{path: g.opts.HeaderPath, template: HeaderTemplate},
		{path: g.opts.SourcePath, template: SourceTemplate},
	}
}

// Files renders both artifacts without touching the filesystem.
func (g *Generator) Files() ([]File, error) {
	files := make([]File, 0, 2)
	for _, a := range g.artifacts() {
		content, err := g.render(a.template)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: a.path, Content: content})
	}
	return files, nil
}

// Write renders and writes the declarations file, then the definitions file,
// into dir, replacing any existing files. It stops at the first failure and
// returns the paths written so far.
func (g *Generator) Write(dir string) ([]string, error) {
	written := make([]string, 0, 2)

	for _, a := range g.artifacts() {
		content, err := g.render(a.template)
		if err != nil {
			return written, err
		}

		p := OutputPath(dir, a.path)
		if err := writeFile(p, content); err != nil {
			return written, err
		}

		g.logger.Info("wrote file", "path", p, "bytes", len(content))
		written = append(written, p)
	}

	return written, nil
}

// OutputPath returns where an artifact named p is written for dir: p joined
// onto dir, or p itself when it is absolute.
func OutputPath(dir, p string) string {
	if filepath.IsAbs(p) || dir == "" {
		return p
	}
	return filepath.Join(dir, p)
}

// writeFile creates or truncates path and writes content to it. The file is
// always closed, and a failed close is reported.
func writeFile(path string, content []byte) (err error) {
	f, err := os.Create(path) // #nosec G304 - output path comes from the generator options
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// generatorPath names the running program for the banner.
func generatorPath() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Path != "" {
		return info.Path
	}
	return filepath.Base(os.Args[0])
}
