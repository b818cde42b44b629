// Package config holds the loaddotenv.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/initializ/loaddotenv/dotenv"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "loaddotenv.yaml"

// DefaultOutput is the file written by generate.
const DefaultOutput = "dotenv_gen.go"

// Config represents the top-level loaddotenv.yaml configuration.
type Config struct {
	Files    []FileRef   `yaml:"files,omitempty"`
	Override bool        `yaml:"override,omitempty"`
	Require  []string    `yaml:"require,omitempty"`
	Generate GenerateRef `yaml:"generate,omitempty"`
}

// FileRef references one .env file.
type FileRef struct {
	Path     string `yaml:"path"`
	Optional bool   `yaml:"optional,omitempty"` // best-effort when true
}

// GenerateRef configures the constants file written by generate.
type GenerateRef struct {
	Output  string   `yaml:"output,omitempty"`
	Package string   `yaml:"package,omitempty"` // default: $GOPACKAGE, then "main"
	Prefix  string   `yaml:"prefix,omitempty"`
	Keys    []string `yaml:"keys,omitempty"` // default: every key read
}

// Source is a resolved file plus the policy it is loaded with.
type Source struct {
	Path   string
	Policy dotenv.Policy
}

// Default returns the configuration used when no config file exists: a
// single strict .env.
func Default() *Config {
	return &Config{
		Files:    []FileRef{{Path: dotenv.DefaultFilename}},
		Generate: GenerateRef{Output: DefaultOutput},
	}
}

// Sources returns the configured files in load order.
func (c *Config) Sources() []Source {
	out := make([]Source, 0, len(c.Files))
	for _, f := range c.Files {
		p := dotenv.Strict
		if f.Optional {
			p = dotenv.BestEffort
		}
		out = append(out, Source{Path: f.Path, Policy: p})
	}
	return out
}

// ParseConfig parses raw YAML bytes into a Config, checking it against the
// config schema and filling defaults.
func ParseConfig(data []byte) (*Config, error) {
	if strings.TrimSpace(string(data)) == "" {
		return Default(), nil
	}

	errs, err := ValidateSchema(data)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("loaddotenv config: %s", strings.Join(errs, "; "))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing loaddotenv config: %w", err)
	}
	if len(cfg.Files) == 0 {
		cfg.Files = Default().Files
	}
	if cfg.Generate.Output == "" {
		cfg.Generate.Output = DefaultOutput
	}
	return &cfg, nil
}

// LoadConfig reads and parses the config at path. When mustExist is false a
// missing file yields Default().
func LoadConfig(path string, mustExist bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !mustExist && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading loaddotenv config %s: %w", path, err)
	}
	return ParseConfig(data)
}
