package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/colourgen/internal/codegen"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultMatchesGeneratorDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	if diff := cmp.Diff(codegen.DefaultOptions(), cfg.Options()); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want .", cfg.OutputDir)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "colourgen.yaml", `
header: gen/colours.h
lookup: col_fromName
includes:
  - colour.h
  - log.h
  - nstring.h
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Header != "gen/colours.h" {
		t.Errorf("Header = %q", cfg.Header)
	}
	if cfg.Lookup != "col_fromName" {
		t.Errorf("Lookup = %q", cfg.Lookup)
	}
	if diff := cmp.Diff([]string{"colour.h", "log.h", "nstring.h"}, cfg.Includes); diff != "" {
		t.Errorf("Includes mismatch (-want +got):\n%s", diff)
	}
	// Unset fields keep their defaults.
	if cfg.Source != "colours.gen.c" || cfg.Guard != "COLOURS_GEN_C_H" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "colourgen.json", `{"prefix": "col_", "type": "Colour"}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Prefix != "col_" || cfg.Type != "Colour" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "bad.yaml", "header: [unterminated\n")
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeConfig(t, "bad.json", "{")
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvOutputDir, "/tmp/out")
	t.Setenv(EnvTemplatesDir, "/tmp/templates")

	cfg := Default().FromEnv()
	if cfg.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.TemplatesDir != "/tmp/templates" {
		t.Errorf("TemplatesDir = %q", cfg.TemplatesDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty header", func(c *Config) { c.Header = "" }, "header path is empty"},
		{"empty source", func(c *Config) { c.Source = "" }, "source path is empty"},
		{"same paths", func(c *Config) { c.Source = "./" + c.Header }, "both write"},
		{"bad guard", func(c *Config) { c.Guard = "COLOURS-GEN" }, "guard"},
		{"bad type", func(c *Config) { c.Type = "1Colour" }, "type"},
		{"bad lookup", func(c *Config) { c.Lookup = "" }, "lookup"},
		{"bad prefix", func(c *Config) { c.Prefix = "c-" }, "prefix"},
		{"bad include", func(c *Config) { c.Includes = []string{`a"b.h`} }, "include"},
		{"empty prefix is fine", func(c *Config) { c.Prefix = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
