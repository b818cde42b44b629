package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/initializ/loaddotenv/config"
	"github.com/initializ/loaddotenv/dotenv"
)

type recordStage struct {
	name string
	err  error
	ran  *[]string
}

func (s *recordStage) Name() string { return s.name }

func (s *recordStage) Execute(ctx context.Context, bc *BuildContext) error {
	*s.ran = append(*s.ran, s.name)
	return s.err
}

func TestPipeline_RunsInOrderAndStopsOnError(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	p := New(
		&recordStage{name: "a", ran: &ran},
		&recordStage{name: "b", err: boom, ran: &ran},
		&recordStage{name: "c", ran: &ran},
	)

	err := p.Run(context.Background(), NewBuildContext(PipelineOptions{}, config.Default()))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "stage b:") {
		t.Errorf("error should name the stage: %q", err.Error())
	}
	if strings.Join(ran, ",") != "a,b" {
		t.Errorf("ran: got %v", ran)
	}
}

func TestPipeline_Cancelled(t *testing.T) {
	var ran []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(&recordStage{name: "a", ran: &ran}).Run(ctx, NewBuildContext(PipelineOptions{}, config.Default()))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(ran) != 0 {
		t.Errorf("no stage should run, got %v", ran)
	}
}

func TestBuildContext_LoadedKeys(t *testing.T) {
	bc := NewBuildContext(PipelineOptions{}, config.Default())
	bc.Results = []*dotenv.Result{
		{Pairs: dotenv.Pairs{{Key: "B"}, {Key: "C"}}},
		{Pairs: dotenv.Pairs{{Key: "A"}, {Key: "B"}}},
		{Missing: true},
	}
	if got := strings.Join(bc.LoadedKeys(), ","); got != "A,B,C" {
		t.Errorf("LoadedKeys: got %q", got)
	}

	bc.AddFile("dotenv_gen.go", "/tmp/dotenv_gen.go")
	bc.AddWarning("w")
	if len(bc.GeneratedFiles) != 1 || len(bc.Warnings) != 1 {
		t.Errorf("unexpected context state: %+v", bc)
	}
}
