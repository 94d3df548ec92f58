// Package config loads generator settings from defaults, an optional YAML or
// JSON file, and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/colourgen/internal/codegen"
)

// Environment variables read by FromEnv.
const (
	EnvConfig       = "COLOURGEN_CONFIG"
	EnvOutputDir    = "COLOURGEN_OUTPUT_DIR"
	EnvTemplatesDir = "COLOURGEN_TEMPLATES_DIR"
)

// Config holds everything that controls a generator run.
type Config struct {
	OutputDir    string   `yaml:"output_dir" json:"output_dir"`
	Header       string   `yaml:"header" json:"header"`
	Source       string   `yaml:"source" json:"source"`
	Prefix       string   `yaml:"prefix" json:"prefix"`
	Type         string   `yaml:"type" json:"type"`
	Lookup       string   `yaml:"lookup" json:"lookup"`
	Guard        string   `yaml:"guard" json:"guard"`
	Includes     []string `yaml:"includes" json:"includes"`
	WarnMacro    string   `yaml:"warn_macro" json:"warn_macro"`
	TemplatesDir string   `yaml:"templates_dir" json:"templates_dir"`
}

// Default returns the configuration that writes colours.gen.h and
// colours.gen.c into the working directory.
func Default() *Config {
	opts := codegen.DefaultOptions()
	return &Config{
		OutputDir: ".",
		Header:    opts.HeaderPath,
		Source:    opts.SourcePath,
		Prefix:    opts.Prefix,
		Type:      opts.TypeName,
		Lookup:    opts.LookupFunc,
		Guard:     opts.Guard,
		Includes:  opts.Includes,
		WarnMacro: opts.WarnMacro,
	}
}

// Load reads path over the defaults. Fields missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(expandPath(path)) // #nosec G304 - user-specified config file
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		// YAML is a superset of JSON, so anything else goes through yaml.v3.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	return cfg, nil
}

// FromEnv applies environment overrides.
func (c *Config) FromEnv() *Config {
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		c.OutputDir = expandPath(dir)
	}
	if dir := os.Getenv(EnvTemplatesDir); dir != "" {
		c.TemplatesDir = expandPath(dir)
	}
	return c
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks that the configuration produces compilable output.
func (c *Config) Validate() error {
	var errs []error

	if c.Header == "" {
		errs = append(errs, errors.New("header path is empty"))
	}
	if c.Source == "" {
		errs = append(errs, errors.New("source path is empty"))
	}
	if c.Header != "" && filepath.Clean(c.Header) == filepath.Clean(c.Source) {
		errs = append(errs, fmt.Errorf("header and source both write %q", c.Header))
	}

	idents := []struct {
		field, value string
	}{
		{"type", c.Type},
		{"lookup", c.Lookup},
		{"guard", c.Guard},
		{"warn_macro", c.WarnMacro},
	}
	for _, id := range idents {
		if !identRe.MatchString(id.value) {
			errs = append(errs, fmt.Errorf("%s %q is not a C identifier", id.field, id.value))
		}
	}
	// The prefix only has to start an identifier; colour names complete it.
	if c.Prefix != "" && !identRe.MatchString(c.Prefix) {
		errs = append(errs, fmt.Errorf("prefix %q is not a C identifier", c.Prefix))
	}

	for _, inc := range c.Includes {
		if inc == "" || strings.ContainsAny(inc, "\"\n") {
			errs = append(errs, fmt.Errorf("invalid include %q", inc))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Options converts the configuration into generator options.
func (c *Config) Options() codegen.Options {
	return codegen.Options{
		HeaderPath:   c.Header,
		SourcePath:   c.Source,
		Prefix:       c.Prefix,
		TypeName:     c.Type,
		LookupFunc:   c.Lookup,
		Guard:        c.Guard,
		Includes:     c.Includes,
		WarnMacro:    c.WarnMacro,
		TemplatesDir: c.TemplatesDir,
	}
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
