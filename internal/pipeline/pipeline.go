package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"textsummarizer/internal/document"
	"textsummarizer/internal/model"
	"textsummarizer/internal/presenter"
	"textsummarizer/internal/summarizer"
)

type State int

const (
	StateStart State = iota
	StateModelLoaded
	StateTextLoaded
	StateErrorReported
	StateSummarized
	StatePrinted
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateModelLoaded:
		return "model_loaded"
	case StateTextLoaded:
		return "text_loaded"
	case StateErrorReported:
		return "error_reported"
	case StateSummarized:
		return "summarized"
	case StatePrinted:
		return "printed"
	case StateReleased:
		return "released"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Opener constructs the summarization capability. It is called once per run.
type Opener func(ctx context.Context) (summarizer.Summarizer, error)

type Options struct {
	InputPath   string
	Format      document.Format
	StripURLs   bool
	EchoArticle bool
	Bounds      model.Bounds
	ModelName   string
}

// Pipeline runs load model -> load text -> summarize -> print -> release for a
// single document.
type Pipeline struct {
	opts   Options
	open   Opener
	out    io.Writer
	log    *slog.Logger
	states []State
}

func New(opts Options, open Opener, out io.Writer, log *slog.Logger) *Pipeline {
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = slog.Default()
	}

	return &Pipeline{
		opts: opts,
		open: open,
		out:  out,
		log:  log,
	}
}

// States returns the transitions taken by the last Run.
func (p *Pipeline) States() []State {
	return append([]State(nil), p.states...)
}

// Run processes the configured document. A missing input file is reported on
// the output writer and is not an error. The model is released on every path
// once it has been loaded.
func (p *Pipeline) Run(ctx context.Context) error {
	p.states = []State{StateStart}

	p.log.InfoContext(ctx, "Loading summarization model",
		"model", p.opts.ModelName)

	if p.open == nil {
		return errors.New("model opener is nil")
	}

	s, err := p.open(ctx)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	h, err := model.Load(ctx, p.opts.ModelName, s, p.log)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	p.enter(StateModelLoaded)

	defer func() {
		h.Release(context.WithoutCancel(ctx))
		p.enter(StateReleased)
	}()

	return p.process(ctx, h)
}

func (p *Pipeline) process(ctx context.Context, h *model.Handle) error {
	p.log.InfoContext(ctx, "Loading article text",
		"path", p.opts.InputPath)

	article, err := document.Load(p.opts.InputPath)
	if errors.Is(err, document.ErrNotFound) {
		p.log.WarnContext(ctx, "Article is missing so summarization is skipped",
			"error", err,
			"path", p.opts.InputPath)

		if err = presenter.Diagnostic(p.out, err); err != nil {
			return err
		}
		p.enter(StateErrorReported)

		return nil
	}
	if err != nil {
		return fmt.Errorf("load article: %w", err)
	}
	p.enter(StateTextLoaded)

	p.log.InfoContext(ctx, "Article is loaded",
		"path", p.opts.InputPath,
		"bytes", len(article))

	if p.opts.EchoArticle {
		if err = presenter.Article(p.out, article); err != nil {
			return err
		}
	}

	input, err := document.Prepare(article, document.PrepareOptions{
		Format:    p.opts.Format,
		StripURLs: p.opts.StripURLs,
	})
	if err != nil {
		return fmt.Errorf("prepare article: %w", err)
	}

	p.log.InfoContext(ctx, "Summarizing article",
		"model", h.Name(),
		"maxLength", p.opts.Bounds.MaxLength,
		"minLength", p.opts.Bounds.MinLength,
		"inputBytes", len(input))

	results, err := h.Summarize(ctx, input, p.opts.Bounds)
	if err != nil {
		return err
	}
	p.enter(StateSummarized)

	p.log.InfoContext(ctx, "Summary is generated",
		"model", h.Name(),
		"results", len(results))

	if err = presenter.Summary(p.out, results); err != nil {
		return err
	}
	p.enter(StatePrinted)

	return nil
}

func (p *Pipeline) enter(s State) {
	p.states = append(p.states, s)
}
