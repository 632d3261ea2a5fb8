package llamaparse

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production endpoint root of the parsing API.
	DefaultBaseURL = "https://api.cloud.llamaindex.ai"

	// EnvAPIKey supplies the API key when Config.APIKey is empty.
	EnvAPIKey = "LLAMA_CLOUD_API_KEY"

	// EnvBaseURL overrides the base URL whenever it is set, including over an
	// explicitly configured value.
	EnvBaseURL = "LLAMA_CLOUD_BASE_URL"

	defaultCheckInterval = 1 * time.Second
	defaultMaxTimeout    = 2000 * time.Second
)

// ResultType is the caller-selected shape of extracted content.
type ResultType string

const (
	ResultText     ResultType = "text"
	ResultMarkdown ResultType = "markdown"
)

// Config holds settings for a Client. The zero value plus an API key in the
// environment is usable.
type Config struct {
	// APIKey authenticates against the parsing API. Falls back to the
	// LLAMA_CLOUD_API_KEY environment variable when empty.
	APIKey string

	// BaseURL is the endpoint root. The LLAMA_CLOUD_BASE_URL environment
	// variable wins over this value whenever it is set.
	BaseURL string

	// ResultType selects the result format to fetch. Defaults to ResultText.
	ResultType ResultType

	// CheckInterval is the delay between job status checks. Defaults to 1s.
	CheckInterval time.Duration

	// MaxTimeout bounds both each network call and the total time spent
	// polling a job. Defaults to 2000s.
	MaxTimeout time.Duration

	// Verbose enables progress lines on Logger.
	Verbose bool

	// Logger receives verbose progress output. Defaults to log.Default().
	Logger *log.Logger

	// LookupEnv overrides environment lookups so tests can inject values
	// without mutating process state. Defaults to os.Getenv.
	LookupEnv func(string) string
}

// resolveConfig applies environment fallbacks and defaults, and validates the
// result. It reads the environment once and performs no other I/O.
func resolveConfig(cfg Config) (Config, error) {
	lookup := cfg.LookupEnv
	if lookup == nil {
		lookup = os.Getenv
	}

	if cfg.APIKey == "" {
		cfg.APIKey = lookup(EnvAPIKey)
	}
	if cfg.APIKey == "" {
		return cfg, ErrMissingAPIKey
	}

	// Environment wins over an explicit base URL, not just over the default.
	if url := lookup(EnvBaseURL); url != "" {
		cfg.BaseURL = url
	} else if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	switch cfg.ResultType {
	case "":
		cfg.ResultType = ResultText
	case ResultText, ResultMarkdown:
	default:
		return cfg, fmt.Errorf("%w: %q", ErrInvalidResultType, cfg.ResultType)
	}

	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = defaultCheckInterval
	}
	if cfg.MaxTimeout <= 0 {
		cfg.MaxTimeout = defaultMaxTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	return cfg, nil
}
