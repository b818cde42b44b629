package build

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/initializ/loaddotenv/dotenv"
	"github.com/initializ/loaddotenv/pipeline"
)

var genTemplate = template.Must(template.New("dotenv_gen").Parse(`// Code generated by loaddotenv; DO NOT EDIT.
{{- if .Sources}}
// Sources: {{.Sources}}
{{- end}}

package {{.Package}}
{{if .Consts}}
const (
{{- range .Consts}}
	{{.Name}} = {{.Value}}
{{- end}}
)
{{end}}`))

type genConst struct {
	Name  string
	Value string
}

// GenerateStage writes a Go file declaring one string constant per variable,
// so code that references an undefined variable does not compile.
type GenerateStage struct{}

func (s *GenerateStage) Name() string { return "generate-constants" }

func (s *GenerateStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	g := bc.Config.Generate

	pkg := g.Package
	if pkg == "" {
		pkg = os.Getenv("GOPACKAGE")
	}
	if pkg == "" {
		pkg = "main"
	}

	keys := g.Keys
	if len(keys) == 0 {
		keys = bc.LoadedKeys()
	}
	if err := dotenv.Require(bc.Env, keys...); err != nil {
		return err
	}

	consts := make([]genConst, 0, len(keys))
	names := make(map[string]string, len(keys))
	for _, k := range keys {
		name := constName(g.Prefix, k)
		if prev, dup := names[name]; dup && prev != k {
			return fmt.Errorf("variables %s and %s both map to constant %s", prev, k, name)
		} else if dup {
			continue
		}
		names[name] = k
		v, _ := bc.Env.LookupEnv(k)
		consts = append(consts, genConst{Name: name, Value: strconv.Quote(v)})
	}

	var sources []string
	for _, r := range bc.Results {
		if r.Err == nil {
			sources = append(sources, filepath.Base(r.File))
		}
	}

	var buf bytes.Buffer
	err := genTemplate.Execute(&buf, map[string]any{
		"Package": pkg,
		"Sources": strings.Join(sources, ", "),
		"Consts":  consts,
	})
	if err != nil {
		return fmt.Errorf("rendering constants: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}

	out := g.Output
	if out == "" {
		return fmt.Errorf("generate output path is empty")
	}
	outPath := outputPath(bc.Opts.WorkDir, out)
	if err := writeFileAtomic(outPath, src); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	bc.AddFile(out, outPath)
	bc.Logger.Info("generated constants", map[string]any{"file": outPath, "constants": len(consts)})
	return nil
}

// constName maps an environment variable name to a Go identifier.
func constName(prefix, key string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, r := range key {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	name := b.String()
	if !token.IsIdentifier(name) {
		name = "_" + name
	}
	return name
}
