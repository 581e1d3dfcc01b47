// Package generator drives the prompt, completion, parse and write steps
// of one generation.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/iPascal619/python-project-generator/internal/errs"
	"github.com/iPascal619/python-project-generator/internal/gitrepo"
	"github.com/iPascal619/python-project-generator/internal/llm"
	"github.com/iPascal619/python-project-generator/internal/parser"
	"github.com/iPascal619/python-project-generator/internal/project"
	"github.com/iPascal619/python-project-generator/internal/prompt"
	"github.com/iPascal619/python-project-generator/internal/run"
)

// debugFileName is where the raw model response lands before parsing.
// Always written, always overwritten: when a response refuses to parse,
// the evidence is already on disk.
const debugFileName = "debug_response.txt"

// Params selects what one run should generate.
type Params struct {
	ProjectType string
	Difficulty  string
	Name        string // optional override for the generated project name
	MaxTokens   int
	Temperature float32
	GitInit     bool
}

// Generator owns one configured pipeline.
type Generator struct {
	client    llm.Client
	mat       *project.Materializer
	logger    *slog.Logger
	debugPath string
}

// Option adjusts generator construction.
type Option func(*Generator)

// WithDebugPath overrides where the raw model response is dumped.
func WithDebugPath(path string) Option {
	return func(g *Generator) { g.debugPath = path }
}

// NewGenerator wires the pipeline components together.
func NewGenerator(client llm.Client, mat *project.Materializer, logger *slog.Logger, opts ...Option) *Generator {
	g := &Generator{
		client:    client,
		mat:       mat,
		logger:    logger,
		debugPath: debugFileName,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run executes the full pipeline once. The returned run always reflects
// the terminal state, also when err is non-nil.
func (g *Generator) Run(ctx context.Context, p Params) (*run.Run, error) {
	if p.ProjectType == "" {
		p.ProjectType = prompt.TypeGeneral
	}
	if p.Difficulty == "" {
		p.Difficulty = prompt.DifficultyIntermediate
	}

	r := run.New(p.ProjectType, p.Difficulty)
	logger := g.logger.With("run_id", r.ID)

	r.Update(run.StatusBuildingPrompt, "building prompt")
	logger.Info("building prompt", "type", p.ProjectType, "difficulty", p.Difficulty)
	promptText := prompt.Build(p.ProjectType, p.Difficulty)

	r.Update(run.StatusCallingModel, "requesting completion")
	logger.Info("requesting completion",
		"model", g.client.ModelName(), "max_tokens", p.MaxTokens, "temperature", p.Temperature)
	content, err := g.client.Complete(ctx, llm.CompletionRequest{
		Prompt:      promptText,
		MaxTokens:   p.MaxTokens,
		Temperature: &p.Temperature,
	})
	if err != nil {
		r.Fail(err)
		return r, err
	}

	if err := g.dumpResponse(content); err != nil {
		r.Fail(err)
		return r, err
	}

	r.Update(run.StatusParsing, "parsing response")
	logger.Info("parsing response", "bytes", len(content))
	proj, err := parser.Parse(content)
	if err != nil {
		r.Fail(err)
		return r, err
	}

	r.Update(run.StatusWritingFiles, "writing project files")
	logger.Info("writing project files", "project", proj.Name)
	res, err := g.mat.Materialize(proj, p.Name)
	if err != nil {
		r.Fail(err)
		return r, err
	}

	if p.GitInit {
		message := fmt.Sprintf("Initial commit: %s", proj.Description)
		if err := gitrepo.InitAndCommit(res.Dir, message); err != nil {
			r.Fail(err)
			return r, err
		}
		logger.Info("initialized git repository", "dir", res.Dir)
	}

	r.Complete(res.Name, res.Dir, res.Files)
	logger.Info("run completed", "dir", res.Dir, "files", len(res.Files))
	return r, nil
}

// dumpResponse persists the raw content for post-mortem inspection.
func (g *Generator) dumpResponse(content string) error {
	if err := os.WriteFile(g.debugPath, []byte(content), 0644); err != nil {
		return errs.Newf(errs.KindFilesystem, "writing %s: %w", g.debugPath, err)
	}
	return nil
}
