// Package build holds the pipeline stages run by the loaddotenv commands.
package build

import (
	"context"
	"path/filepath"

	"github.com/initializ/loaddotenv/dotenv"
	"github.com/initializ/loaddotenv/pipeline"
)

// LoadEnvStage loads every configured .env file in order. Bare file names are
// also looked up in the parents of the work directory. A strict source that
// is missing or malformed halts the pipeline.
type LoadEnvStage struct{}

func (s *LoadEnvStage) Name() string { return "load-env" }

func (s *LoadEnvStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	for _, src := range bc.Sources {
		loader := &dotenv.Loader{
			Filename: dotenv.Resolve(bc.Opts.WorkDir, src.Path),
			Policy:   src.Policy,
			Override: bc.Opts.Override,
			Env:      bc.Env,
			Logger:   bc.Logger,
		}
		res, err := loader.Load()
		if err != nil {
			return err
		}
		bc.Results = append(bc.Results, res)
		if res.Err == nil {
			bc.Logger.Info("loaded env file", map[string]any{
				"file":    res.File,
				"applied": len(res.Applied),
				"kept":    len(res.Kept),
			})
		}
	}
	return nil
}

// outputPath places a generated file relative to workDir.
func outputPath(workDir, path string) string {
	if workDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}
