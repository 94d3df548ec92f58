// Package template loads text templates from an embedded filesystem, with
// optional overrides from a directory on disk.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-hclog"
)

// ErrExists is returned by Dump when the target already exists and force is
// not set.
var ErrExists = errors.New("template already exists")

// Loader reads templates, preferring a file of the same name in the custom
// directory (when one is configured) over the embedded copy.
type Loader struct {
	embedFS   fs.FS
	customDir string
	logger    hclog.Logger
}

// New creates a loader over the given embedded templates. Overrides are
// disabled until WithCustomDir is called with a non-empty directory.
func New(embedFS fs.FS) *Loader {
	return &Loader{
		embedFS: embedFS,
		logger:  hclog.NewNullLogger(),
	}
}

// WithCustomDir sets the directory checked for template overrides.
func (l *Loader) WithCustomDir(dir string) *Loader {
	l.customDir = dir
	return l
}

// WithLogger sets the logger used to report which template source is used.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Load reads a template, checking for a custom override first.
// It reports whether the content came from the override directory.
func (l *Loader) Load(name string) (content []byte, fromCustom bool, err error) {
	if l.customDir != "" {
		customPath := l.CustomPath(name)
		content, err := os.ReadFile(customPath) // #nosec G304 - user-selected template directory
		if err == nil {
			l.logger.Debug("using custom template", "template", name, "path", customPath)
			return content, true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("failed to read custom template %q: %w", customPath, err)
		}
	}

	l.logger.Debug("using embedded template", "template", name)

	content, err = fs.ReadFile(l.embedFS, name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", name, err)
	}

	return content, false, nil
}

// CustomPath returns where an override for name would live, or "" when no
// custom directory is configured.
func (l *Loader) CustomPath(name string) string {
	if l.customDir == "" {
		return ""
	}
	return filepath.Join(l.customDir, filepath.FromSlash(name))
}

// HasCustomTemplate reports whether an override exists for name.
func (l *Loader) HasCustomTemplate(name string) bool {
	p := l.CustomPath(name)
	if p == "" {
		return false
	}
	_, err := os.Stat(p)
	return err == nil
}

// List returns the names of all embedded .tmpl files, sorted.
func (l *Loader) List() ([]string, error) {
	var names []string

	err := fs.WalkDir(l.embedFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".tmpl" {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

// Dump writes the embedded copy of name into dir and returns the written path.
// An existing file is only replaced when force is set.
func (l *Loader) Dump(dir, name string, force bool) (string, error) {
	content, err := fs.ReadFile(l.embedFS, name)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template %q: %w", name, err)
	}

	outputPath := filepath.Join(dir, filepath.FromSlash(name))

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, outputPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil { // #nosec G301 - template directory needs standard permissions
		return "", fmt.Errorf("failed to create directory %q: %w", filepath.Dir(outputPath), err)
	}

	if err := os.WriteFile(outputPath, content, 0o644); err != nil { // #nosec G306 - templates are not secret
		return "", fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}

	l.logger.Debug("dumped template", "template", name, "path", outputPath)
	return outputPath, nil
}

// DumpAll writes every embedded template into dir. Templates that already
// exist are skipped (without force) and reported together in the returned
// error; other failures stop immediately.
func (l *Loader) DumpAll(dir string, force bool) ([]string, error) {
	names, err := l.List()
	if err != nil {
		return nil, err
	}

	var (
		dumped  []string
		skipped []error
	)
	for _, name := range names {
		p, err := l.Dump(dir, name, force)
		if err != nil {
			if errors.Is(err, ErrExists) {
				skipped = append(skipped, err)
				continue
			}
			return dumped, err
		}
		dumped = append(dumped, p)
	}

	return dumped, errors.Join(skipped...)
}

// Info describes where a template would be loaded from.
type Info struct {
	Name         string
	CustomPath   string
	CustomExists bool
}

// Info returns the override state of a template.
func (l *Loader) Info(name string) Info {
	return Info{
		Name:         name,
		CustomPath:   l.CustomPath(name),
		CustomExists: l.HasCustomTemplate(name),
	}
}
