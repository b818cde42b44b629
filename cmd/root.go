// Package cmd implements the loaddotenv CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/initializ/loaddotenv/config"
	"github.com/initializ/loaddotenv/internal/ui"
)

var (
	cfgFile       string
	envFiles      []string
	tryLoad       bool
	override      bool
	verbose       bool
	themeOverride string

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "loaddotenv",
	Short: "Load a .env file into the environment of a build",
	Long: `loaddotenv loads KEY=VALUE pairs from a .env file before a build step runs,
so that environment lookups during the build succeed or fail deterministically.

  loaddotenv exec -- go build ./...          # default .env, fail if missing
  loaddotenv exec -f .env.ci -- go test ./...  # only the named file
  loaddotenv exec --try -- go build ./...      # continue without .env
  //go:generate loaddotenv generate            # emit constants for go build`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().StringArrayVarP(&envFiles, "file", "f", nil, "load only this .env file (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&tryLoad, "try", false, "continue when a .env file is missing or malformed")
	rootCmd.PersistentFlags().BoolVar(&override, "override", false, "let .env values replace variables already set")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&themeOverride, "theme", "", "color theme: dark, light, or auto")

	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("loaddotenv %s (commit: %s)\n", version, commit))
}

// Execute runs the root command. A failed wrapped command passes its exit
// status through.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		os.Exit(exitErr.ExitCode())
	}
	ui.NewPrinter(os.Stderr, ui.DetectTheme(themeOverride)).Error("%v", err)
	os.Exit(1)
}
