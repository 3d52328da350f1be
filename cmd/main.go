package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"textsummarizer/internal/config"
	"textsummarizer/internal/document"
	"textsummarizer/internal/model"
	"textsummarizer/internal/pipeline"
	"textsummarizer/internal/summarizer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit status: 0 on success or a reported missing
// input, 1 on any other failure.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(stderr, nil)).Error("Failed to load config",
			"error", err)

		return 1
	}

	log := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	flags := flag.NewFlagSet("textsummarizer", flag.ContinueOnError)
	flags.SetOutput(stderr)
	if err = flags.Parse(args); err != nil {
		log.Error("Failed to parse arguments",
			"error", err)

		return 1
	}
	if path := flags.Arg(0); path != "" {
		cfg.InputPath = path
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()
	}

	start := time.Now()

	opts := pipeline.Options{
		InputPath:   cfg.InputPath,
		Format:      resolveFormat(cfg),
		StripURLs:   cfg.StripURLs,
		EchoArticle: cfg.EchoArticle,
		Bounds: model.Bounds{
			MaxLength: cfg.MaxLength,
			MinLength: cfg.MinLength,
		},
		ModelName: modelName(cfg),
	}

	p := pipeline.New(opts, newOpener(cfg), stdout, log)
	if err = p.Run(ctx); err != nil {
		log.ErrorContext(ctx, "Failed to summarize article",
			"error", err,
			"path", cfg.InputPath,
			"provider", cfg.Provider,
			"canceled", errors.Is(err, context.Canceled),
			"timedOut", errors.Is(err, context.DeadlineExceeded))

		return 1
	}

	log.InfoContext(ctx, "Exiting...",
		"path", cfg.InputPath,
		"elapsedSeconds", time.Since(start).Seconds())

	return 0
}

func newOpener(cfg config.Config) pipeline.Opener {
	return func(ctx context.Context) (summarizer.Summarizer, error) {
		return summarizer.New(ctx, summarizer.Options{
			Provider:      cfg.Provider,
			Model:         cfg.Model,
			HTTPClient:    &http.Client{},
			HFBaseURL:     cfg.HFBaseURL,
			HFAPIToken:    cfg.HFAPIToken,
			OpenAIAPIKey:  cfg.OpenAIAPIKey,
			OpenAIBaseURL: cfg.OpenAIBaseURL,
			GeminiAPIKey:  cfg.GeminiAPIKey,
		})
	}
}

func resolveFormat(cfg config.Config) document.Format {
	switch cfg.InputFormat {
	case config.FormatHTML:
		return document.FormatHTML
	case config.FormatText:
		return document.FormatText
	default:
		if document.IsHTMLPath(cfg.InputPath) {
			return document.FormatHTML
		}

		return document.FormatText
	}
}

func modelName(cfg config.Config) string {
	if cfg.Model != "" {
		return cfg.Provider + "/" + cfg.Model
	}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return cfg.Provider + "/" + summarizer.OpenAIDefaultModel
	case config.ProviderGemini:
		return cfg.Provider + "/" + summarizer.GeminiDefaultModel
	default:
		return cfg.Provider + "/" + summarizer.HuggingFaceDefaultModel
	}
}
