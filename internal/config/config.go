package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Logging    LoggingConfig
	Feed       FeedConfig
	Enrichment EnrichmentConfig
	Pipeline   PipelineConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// FeedConfig holds RSS/Atom feed retrieval configuration
type FeedConfig struct {
	// Relays are HTTP relay URL templates; the URL-encoded target feed
	// address is appended to each. Tried in order, first success wins.
	Relays       []string
	MaxItems     int
	FetchTimeout time.Duration
	RateLimitDur time.Duration
}

// EnrichmentConfig holds the external language-model client configuration
type EnrichmentConfig struct {
	APIKey     string
	Endpoint   string
	Model      string
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
}

// PipelineConfig holds processing orchestrator configuration
type PipelineConfig struct {
	// CompletionDelay is how long the processing screen lingers at 100%
	// before the feed transition fires.
	CompletionDelay time.Duration
}

// DefaultRelays are the public relay templates tried in order when a feed
// document cannot be fetched directly by the browser-facing client.
var DefaultRelays = []string{
	"https://api.allorigins.win/raw?url=",
	"https://corsproxy.io/?",
	"https://api.codetabs.com/v1/proxy?quest=",
}

// Load parses flags and environment variables to build configuration
func Load() *Config {
	httpAddr := flag.String("http", ":8080", "HTTP server address")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	feedMaxItems := flag.Int("feed-max-items", 10, "Maximum articles taken from one feed")
	feedTimeout := flag.Duration("feed-timeout", 15*time.Second, "Timeout per relay fetch attempt")
	rateLimitDur := flag.Duration("rate-limit", time.Second, "Minimum delay between requests to same host")
	llmEndpoint := flag.String("llm-endpoint", "https://api.groq.com/openai/v1/chat/completions", "Chat-completions endpoint for enrichment")
	llmModel := flag.String("llm-model", "gemma2-9b-it", "Model identifier for enrichment requests")
	llmTimeout := flag.Duration("llm-timeout", 30*time.Second, "Timeout per enrichment request")
	llmRetries := flag.Int("llm-retries", 3, "Maximum retries for transient enrichment failures")
	llmBaseDelay := flag.Duration("llm-base-delay", time.Second, "Base backoff delay, doubled per retry")
	completionDelay := flag.Duration("completion-delay", 1500*time.Millisecond, "Pause at 100% before the feed transition")
	flag.Parse()

	applyEnvOverrides(httpAddr, logLevel, feedMaxItems, feedTimeout, rateLimitDur,
		llmEndpoint, llmModel, llmTimeout, llmRetries, llmBaseDelay, completionDelay)

	relays := DefaultRelays
	if v := os.Getenv("FEED_RELAYS"); v != "" {
		relays = splitAndTrim(v)
	}

	return &Config{
		Server: ServerConfig{
			HTTPAddr:        *httpAddr,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level: *logLevel,
		},
		Feed: FeedConfig{
			Relays:       relays,
			MaxItems:     *feedMaxItems,
			FetchTimeout: *feedTimeout,
			RateLimitDur: *rateLimitDur,
		},
		Enrichment: EnrichmentConfig{
			APIKey:     os.Getenv("GROQ_API_KEY"),
			Endpoint:   *llmEndpoint,
			Model:      *llmModel,
			Timeout:    *llmTimeout,
			MaxRetries: *llmRetries,
			BaseDelay:  *llmBaseDelay,
		},
		Pipeline: PipelineConfig{
			CompletionDelay: *completionDelay,
		},
	}
}

func applyEnvOverrides(
	httpAddr *string,
	logLevel *string,
	feedMaxItems *int,
	feedTimeout *time.Duration,
	rateLimitDur *time.Duration,
	llmEndpoint *string,
	llmModel *string,
	llmTimeout *time.Duration,
	llmRetries *int,
	llmBaseDelay *time.Duration,
	completionDelay *time.Duration,
) {
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		*httpAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		*logLevel = v
	}
	if v := os.Getenv("FEED_MAX_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*feedMaxItems = n
		}
	}
	if v := os.Getenv("FEED_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*feedTimeout = d
		}
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*rateLimitDur = d
		}
	}
	if v := os.Getenv("LLM_ENDPOINT"); v != "" {
		*llmEndpoint = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		*llmModel = v
	}
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*llmTimeout = d
		}
	}
	if v := os.Getenv("LLM_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			*llmRetries = n
		}
	}
	if v := os.Getenv("LLM_BASE_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*llmBaseDelay = d
		}
	}
	if v := os.Getenv("COMPLETION_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*completionDelay = d
		}
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
