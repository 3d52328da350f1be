package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
	ProviderGemini      = "gemini"

	FormatAuto = "auto"
	FormatText = "text"
	FormatHTML = "html"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	InputPath   string `env:"INPUT_PATH"   envDefault:"article.txt"`
	InputFormat string `env:"INPUT_FORMAT" envDefault:"auto"`
	StripURLs   bool   `env:"STRIP_URLS"   envDefault:"false"`
	EchoArticle bool   `env:"ECHO_ARTICLE" envDefault:"true"`

	MaxLength int `env:"SUMMARY_MAX_LENGTH" envDefault:"130"`
	MinLength int `env:"SUMMARY_MIN_LENGTH" envDefault:"30"`

	Provider       string        `env:"SUMMARIZER_PROVIDER" envDefault:"huggingface"`
	Model          string        `env:"SUMMARIZER_MODEL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"     envDefault:"2m"`

	HFAPIToken string `env:"HF_API_TOKEN"`
	HFBaseURL  string `env:"HF_BASE_URL"  envDefault:"https://router.huggingface.co/hf-inference"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the optional .env file and then the process environment.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles seeds the environment from the given dotenv files. Missing files
// are skipped.
func LoadFiles(files ...string) (Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	return Parse(env.Options{})
}

// Parse builds a Config from the environment described by opts.
func Parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	cfg.InputFormat = strings.ToLower(strings.TrimSpace(cfg.InputFormat))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks provider selection and credentials. Length bounds are
// passed to the model unchecked.
func (c Config) Validate() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return fmt.Errorf("%w: INPUT_PATH is empty", ErrInvalid)
	}

	switch c.InputFormat {
	case FormatAuto, FormatText, FormatHTML:
	default:
		return fmt.Errorf("%w: unknown INPUT_FORMAT %q", ErrInvalid, c.InputFormat)
	}

	switch c.Provider {
	case ProviderHuggingFace:
		if strings.TrimSpace(c.HFBaseURL) == "" {
			return fmt.Errorf("%w: HF_BASE_URL is empty", ErrInvalid)
		}
	case ProviderOpenAI:
		if strings.TrimSpace(c.OpenAIAPIKey) == "" {
			return fmt.Errorf("%w: OPENAI_API_KEY is required for provider %q", ErrInvalid, c.Provider)
		}
	case ProviderGemini:
		if strings.TrimSpace(c.GeminiAPIKey) == "" {
			return fmt.Errorf("%w: GEMINI_API_KEY is required for provider %q", ErrInvalid, c.Provider)
		}
	default:
		return fmt.Errorf("%w: unknown SUMMARIZER_PROVIDER %q", ErrInvalid, c.Provider)
	}

	return nil
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}

	return level
}
