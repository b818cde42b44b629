package build

import (
	"context"

	"github.com/initializ/loaddotenv/dotenv"
	"github.com/initializ/loaddotenv/pipeline"
)

// RequireStage fails when a variable listed under require is not defined
// after loading.
type RequireStage struct{}

func (s *RequireStage) Name() string { return "require-env" }

func (s *RequireStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	if bc.Config == nil || len(bc.Config.Require) == 0 {
		return nil
	}
	return dotenv.Require(bc.Env, bc.Config.Require...)
}
