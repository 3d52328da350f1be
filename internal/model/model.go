package model

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"runtime/debug"

	"textsummarizer/internal/summarizer"
)

var ErrReleased = errors.New("model handle is released")

// Bounds limit the summary size in model output tokens. Both ends are
// inclusive and are passed to the model without validation.
type Bounds struct {
	MaxLength int
	MinLength int
}

// Handle owns a loaded summarization capability for the duration of one run.
// It is not safe for concurrent use.
type Handle struct {
	s        summarizer.Summarizer
	name     string
	log      *slog.Logger
	released bool

	// reclaim runs after the capability is dropped.
	reclaim func()
}

// Load acquires a handle over an already constructed capability.
func Load(ctx context.Context, name string, s summarizer.Summarizer, log *slog.Logger) (*Handle, error) {
	if s == nil {
		return nil, errors.New("summarizer is nil")
	}
	if log == nil {
		log = slog.Default()
	}

	log.InfoContext(ctx, "Model is loaded",
		"model", name)

	return &Handle{
		s:       s,
		name:    name,
		log:     log,
		reclaim: reclaimMemory,
	}, nil
}

func (h *Handle) Name() string { return h.name }

// Released reports whether Release has been called.
func (h *Handle) Released() bool { return h.released }

// Summarize runs the model once in deterministic mode and returns its result
// structure unchanged.
func (h *Handle) Summarize(
	ctx context.Context,
	text string,
	bounds Bounds,
) ([]summarizer.Result, error) {
	if h == nil || h.released {
		return nil, ErrReleased
	}

	results, err := h.s.Summarize(ctx, summarizer.Request{
		Text:      text,
		MaxLength: bounds.MaxLength,
		MinLength: bounds.MinLength,
		DoSample:  false,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize with %s: %w", h.name, err)
	}

	return results, nil
}

// Release drops the capability and asks the runtime to return freed memory.
// Calling it more than once is a no-op.
func (h *Handle) Release(ctx context.Context) {
	if h == nil || h.released {
		return
	}

	if closer, ok := h.s.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			h.log.ErrorContext(ctx, "Failed to close model",
				"error", err,
				"model", h.name)
		}
	}

	h.s = nil
	h.released = true

	if h.reclaim != nil {
		h.reclaim()
	}

	h.log.InfoContext(ctx, "Model is released",
		"model", h.name)
}

func reclaimMemory() {
	runtime.GC()
	debug.FreeOSMemory()
}
