package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/initializ/loaddotenv/config"
	"github.com/initializ/loaddotenv/dotenv"
	"github.com/initializ/loaddotenv/internal/logging"
	"github.com/initializ/loaddotenv/internal/ui"
	"github.com/initializ/loaddotenv/pipeline"
)

// prepareBuild resolves the config and flags into a BuildContext.
func prepareBuild(command []string) (*pipeline.BuildContext, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	cfgPath := cfgFile
	if !filepath.IsAbs(cfgPath) {
		cfgPath = filepath.Join(wd, cfgPath)
	}

	cfg, err := config.LoadConfig(cfgPath, rootCmd.PersistentFlags().Changed("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// -f replaces the configured files; paths stay relative to the caller.
	if len(envFiles) > 0 {
		cfg.Files = cfg.Files[:0]
		for _, f := range envFiles {
			path := dotenv.Resolve(wd, f)
			if path == "" {
				return nil, fmt.Errorf("--file %q: %w", f, dotenv.ErrEmptyFilename)
			}
			cfg.Files = append(cfg.Files, config.FileRef{Path: path})
		}
	}
	if tryLoad {
		for i := range cfg.Files {
			cfg.Files[i].Optional = true
		}
	}

	printer := ui.NewPrinter(os.Stderr, ui.DetectTheme(themeOverride))
	result := config.Validate(cfg)
	// --try makes every file optional on purpose.
	if !tryLoad {
		for _, w := range result.Warnings {
			printer.Warn("%s", w)
		}
	}
	if !result.IsValid() {
		for _, e := range result.Errors {
			printer.Error("%s", e)
		}
		return nil, fmt.Errorf("config validation failed: %d error(s)", len(result.Errors))
	}

	bc := pipeline.NewBuildContext(pipeline.PipelineOptions{
		WorkDir:    filepath.Dir(cfgPath),
		ConfigPath: cfgPath,
		Override:   override || cfg.Override,
		Command:    command,
	}, cfg)
	bc.Verbose = verbose
	if verbose {
		bc.Logger = logging.New(os.Stderr, true)
	} else {
		bc.Logger = logging.Nop()
	}
	return bc, nil
}
