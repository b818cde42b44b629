package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/initializ/loaddotenv/dotenv"
)

func TestParseConfig_Full(t *testing.T) {
	data := []byte(`
files:
  - path: .env
  - path: .env.local
    optional: true
override: true
require: [DATABASE_URL, API_KEY]
generate:
  output: env_gen.go
  package: settings
  prefix: Env
  keys: [DATABASE_URL]
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if len(cfg.Files) != 2 || cfg.Files[1].Path != ".env.local" || !cfg.Files[1].Optional {
		t.Errorf("files: got %+v", cfg.Files)
	}
	if !cfg.Override {
		t.Error("override should be true")
	}
	if strings.Join(cfg.Require, ",") != "DATABASE_URL,API_KEY" {
		t.Errorf("require: got %v", cfg.Require)
	}
	if cfg.Generate.Output != "env_gen.go" || cfg.Generate.Package != "settings" || cfg.Generate.Prefix != "Env" {
		t.Errorf("generate: got %+v", cfg.Generate)
	}

	sources := cfg.Sources()
	if sources[0].Policy != dotenv.Strict || sources[1].Policy != dotenv.BestEffort {
		t.Errorf("sources: got %+v", sources)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	for _, data := range []string{"", "override: false\n"} {
		cfg, err := ParseConfig([]byte(data))
		if err != nil {
			t.Fatalf("ParseConfig(%q): %v", data, err)
		}
		if len(cfg.Files) != 1 || cfg.Files[0].Path != ".env" || cfg.Files[0].Optional {
			t.Errorf("files: got %+v", cfg.Files)
		}
		if cfg.Generate.Output != DefaultOutput {
			t.Errorf("output: got %q", cfg.Generate.Output)
		}
	}
}

func TestParseConfig_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown field", "unknown: 1\n"},
		{"file without path", "files:\n  - optional: true\n"},
		{"override not bool", "override: sometimes\n"},
		{"empty required key", "require: ['']\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseConfig_InvalidYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("files: [\n")); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, DefaultPath)

	cfg, err := LoadConfig(missing, false)
	if err != nil {
		t.Fatalf("missing optional config: %v", err)
	}
	if cfg.Files[0].Path != ".env" {
		t.Errorf("expected default config, got %+v", cfg)
	}

	if _, err := LoadConfig(missing, true); err == nil {
		t.Error("expected error for missing explicit config")
	}

	os.WriteFile(missing, []byte("files:\n  - path: .env.ci\n"), 0644) //nolint:errcheck
	cfg, err = LoadConfig(missing, true)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Files[0].Path != ".env.ci" {
		t.Errorf("files: got %+v", cfg.Files)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		wantErrors   int
		wantWarnings int
	}{
		{"default", *Default(), 0, 0},
		{
			name:       "empty and duplicate paths",
			cfg:        Config{Files: []FileRef{{Path: ""}, {Path: `""`}, {Path: ".env"}, {Path: ".env"}}},
			wantErrors: 3,
		},
		{
			name:         "all optional",
			cfg:          Config{Files: []FileRef{{Path: ".env", Optional: true}}},
			wantWarnings: 1,
		},
		{
			name:       "bad require key",
			cfg:        Config{Files: Default().Files, Require: []string{"OK_KEY", "BAD-KEY"}},
			wantErrors: 1,
		},
		{
			name: "bad generate settings",
			cfg: Config{
				Files:    Default().Files,
				Generate: GenerateRef{Package: "my-pkg", Prefix: "1x", Keys: []string{"9KEY"}},
			},
			wantErrors: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Validate(&tt.cfg)
			if len(r.Errors) != tt.wantErrors {
				t.Errorf("errors: got %v, want %d", r.Errors, tt.wantErrors)
			}
			if len(r.Warnings) != tt.wantWarnings {
				t.Errorf("warnings: got %v, want %d", r.Warnings, tt.wantWarnings)
			}
			if r.IsValid() != (tt.wantErrors == 0) {
				t.Errorf("IsValid: got %v", r.IsValid())
			}
		})
	}
}
