package build

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/initializ/loaddotenv/dotenv"
	"github.com/initializ/loaddotenv/pipeline"
)

// ExecStage runs the wrapped build command. The command inherits the
// process environment populated by LoadEnvStage, plus the variables of an
// in-memory environment when one is used.
type ExecStage struct{}

func (s *ExecStage) Name() string { return "exec-command" }

func (s *ExecStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	args := bc.Opts.Command
	if len(args) == 0 {
		return fmt.Errorf("no command given")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = bc.Opts.WorkDir
	cmd.Env = os.Environ()
	if me, ok := bc.Env.(*dotenv.MapEnvironment); ok {
		cmd.Env = append(cmd.Env, me.Environ()...)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = bc.Stdout
	cmd.Stderr = bc.Stderr

	bc.Logger.Debug("running command", map[string]any{"command": args[0], "args": len(args) - 1})
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", args[0], err)
	}
	return nil
}
