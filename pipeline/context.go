package pipeline

import (
	"io"
	"os"
	"sort"

	"github.com/initializ/loaddotenv/config"
	"github.com/initializ/loaddotenv/dotenv"
	"github.com/initializ/loaddotenv/internal/logging"
)

// BuildContext carries all state through the pipeline.
type BuildContext struct {
	Opts           PipelineOptions
	Config         *config.Config
	Sources        []config.Source
	Env            dotenv.Environment
	Logger         logging.Logger
	Results        []*dotenv.Result
	GeneratedFiles map[string]string // relPath -> absPath
	Warnings       []string
	Verbose        bool

	Stdout io.Writer
	Stderr io.Writer
}

// NewBuildContext creates a BuildContext targeting the process environment.
func NewBuildContext(opts PipelineOptions, cfg *config.Config) *BuildContext {
	return &BuildContext{
		Opts:           opts,
		Config:         cfg,
		Sources:        cfg.Sources(),
		Env:            dotenv.OSEnvironment{},
		Logger:         logging.Nop(),
		GeneratedFiles: make(map[string]string),
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
	}
}

// AddFile records a generated file in the build context.
func (bc *BuildContext) AddFile(relPath, absPath string) {
	bc.GeneratedFiles[relPath] = absPath
}

// AddWarning appends a warning message to the build context.
func (bc *BuildContext) AddWarning(msg string) {
	bc.Warnings = append(bc.Warnings, msg)
}

// LoadedKeys returns every key read from the loaded files, sorted and
// without duplicates.
func (bc *BuildContext) LoadedKeys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, r := range bc.Results {
		for _, p := range r.Pairs {
			if !seen[p.Key] {
				seen[p.Key] = true
				keys = append(keys, p.Key)
			}
		}
	}
	sort.Strings(keys)
	return keys
}
