package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/initializ/loaddotenv/build"
	"github.com/initializ/loaddotenv/internal/ui"
	"github.com/initializ/loaddotenv/pipeline"
)

var (
	genOutput  string
	genPackage string
	genPrefix  string
	genKeys    []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Load .env and write a Go file of constants (for go:generate)",
	Long: `generate loads the .env file(s) and writes a Go source file declaring one
string constant per variable. Referencing a variable that is not defined
then fails compilation. Intended for use as:

  //go:generate go run github.com/initializ/loaddotenv/cmd/loaddotenv generate --key API_URL`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genOutput, "output", "", "output file (default dotenv_gen.go)")
	generateCmd.Flags().StringVar(&genPackage, "package", "", "package name (default $GOPACKAGE, then main)")
	generateCmd.Flags().StringVar(&genPrefix, "prefix", "", "prefix for every constant name")
	generateCmd.Flags().StringSliceVar(&genKeys, "key", nil, "variable to emit (repeatable; default every key read)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	bc, err := prepareBuild(nil)
	if err != nil {
		return err
	}

	g := &bc.Config.Generate
	if genOutput != "" {
		// Relative to the caller, like go generate expects.
		out, err := filepath.Abs(genOutput)
		if err != nil {
			return fmt.Errorf("resolving output path: %w", err)
		}
		g.Output = out
	}
	if genPackage != "" {
		g.Package = genPackage
	}
	if genPrefix != "" {
		g.Prefix = genPrefix
	}
	if len(genKeys) > 0 {
		g.Keys = genKeys
	}

	p := pipeline.New(
		&build.LoadEnvStage{},
		&build.RequireStage{},
		&build.GenerateStage{},
	)
	if err := p.Run(context.Background(), bc); err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	printer := ui.NewPrinter(os.Stdout, ui.DetectTheme(themeOverride))
	for rel := range bc.GeneratedFiles {
		printer.Success("wrote %s", rel)
	}
	return nil
}
