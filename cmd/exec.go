package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/initializ/loaddotenv/build"
	"github.com/initializ/loaddotenv/pipeline"
)

var execCmd = &cobra.Command{
	Use:   "exec -- <command> [args...]",
	Short: "Load .env and run a build command with the populated environment",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExec,
}

func init() {
	execCmd.Flags().SetInterspersed(false)
}

func runExec(cmd *cobra.Command, args []string) error {
	bc, err := prepareBuild(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := pipeline.New(
		&build.LoadEnvStage{},
		&build.RequireStage{},
		&build.ExecStage{},
	)
	return p.Run(ctx, bc)
}
