package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/initializ/loaddotenv/build"
	"github.com/initializ/loaddotenv/internal/ui"
	"github.com/initializ/loaddotenv/pipeline"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load .env and report which variables it sets",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	bc, err := prepareBuild(nil)
	if err != nil {
		return err
	}

	p := pipeline.New(
		&build.LoadEnvStage{},
		&build.RequireStage{},
	)
	runErr := p.Run(context.Background(), bc)

	printer := ui.NewPrinter(os.Stdout, ui.DetectTheme(themeOverride))
	for _, r := range bc.Results {
		if r.Err != nil {
			printer.Warn("skipped %s: %v", r.File, r.Err)
			continue
		}
		printer.Success("%s", r.File)
		printer.Field("applied", joinOrNone(r.Applied))
		printer.Field("kept", joinOrNone(r.Kept))
	}
	if runErr != nil {
		return fmt.Errorf("check failed: %w", runErr)
	}
	return nil
}

func joinOrNone(keys []string) string {
	if len(keys) == 0 {
		return "-"
	}
	return strings.Join(keys, ", ")
}
