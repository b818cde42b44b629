package config

import (
	"fmt"
	"go/token"
	"regexp"
	"strings"
)

var envKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// ValidationResult holds errors and warnings from config validation.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// IsValid returns true if there are no validation errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Validate checks a Config for errors and warnings.
func Validate(cfg *Config) *ValidationResult {
	r := &ValidationResult{}

	seen := make(map[string]bool, len(cfg.Files))
	strict := false
	for i, f := range cfg.Files {
		if strings.Trim(strings.TrimSpace(f.Path), `"`) == "" {
			r.Errors = append(r.Errors, fmt.Sprintf("files[%d]: path is required", i))
			continue
		}
		if seen[f.Path] {
			r.Errors = append(r.Errors, fmt.Sprintf("files[%d]: duplicate path %q", i, f.Path))
		}
		seen[f.Path] = true
		if !f.Optional {
			strict = true
		}
	}
	if len(cfg.Files) > 0 && !strict {
		r.Warnings = append(r.Warnings, "every file is optional; a missing .env will not fail the build")
	}

	for i, k := range cfg.Require {
		if !envKeyPattern.MatchString(k) {
			r.Errors = append(r.Errors, fmt.Sprintf("require[%d]: %q is not a valid variable name", i, k))
		}
	}

	g := cfg.Generate
	if g.Package != "" && !token.IsIdentifier(g.Package) {
		r.Errors = append(r.Errors, fmt.Sprintf("generate.package %q is not a valid Go identifier", g.Package))
	}
	if g.Prefix != "" && !token.IsIdentifier(g.Prefix) {
		r.Errors = append(r.Errors, fmt.Sprintf("generate.prefix %q is not a valid Go identifier", g.Prefix))
	}
	for i, k := range g.Keys {
		if !envKeyPattern.MatchString(k) {
			r.Errors = append(r.Errors, fmt.Sprintf("generate.keys[%d]: %q is not a valid variable name", i, k))
		}
	}

	return r
}
