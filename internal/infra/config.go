package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"enhancer/internal/catalog"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv string
	Port   string

	OpenAIAPIKey     string
	GeminiAPIKey     string
	StabilityAPIKey  string
	ReplicateAPIKey  string
	OpenRouterAPIKey string
	GroqAPIKey       string
	XAIAPIKey        string

	// KeyProbeURL points at an optional remote key-management endpoint
	// consulted for credential availability. Blank disables the probe.
	KeyProbeURL string

	ReplicatePollInterval time.Duration
	ReplicatePollAttempts int

	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. Provider keys are all optional: a missing key just
// makes that provider unavailable until a per-request key is supplied.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		StabilityAPIKey:  os.Getenv("STABILITY_API_KEY"),
		ReplicateAPIKey:  os.Getenv("REPLICATE_API_KEY"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		GroqAPIKey:       os.Getenv("GROQ_API_KEY"),
		XAIAPIKey:        os.Getenv("XAI_API_KEY"),

		KeyProbeURL: os.Getenv("KEY_PROBE_URL"),

		ReplicatePollInterval: time.Second * time.Duration(getEnvInt("REPLICATE_POLL_INTERVAL_SECONDS", 1)),
		ReplicatePollAttempts: getEnvInt("REPLICATE_POLL_MAX_ATTEMPTS", 60),

		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if cfg.ReplicatePollAttempts < 1 {
		return nil, fmt.Errorf("REPLICATE_POLL_MAX_ATTEMPTS must be at least 1")
	}
	if cfg.RateLimitPerMin < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be at least 1")
	}

	return cfg, nil
}

// ProviderKeys returns the configured server-side keys by provider,
// omitting blanks.
func (c *Config) ProviderKeys() map[catalog.Provider]string {
	keys := map[catalog.Provider]string{
		catalog.ProviderOpenAI:     c.OpenAIAPIKey,
		catalog.ProviderGemini:     c.GeminiAPIKey,
		catalog.ProviderStability:  c.StabilityAPIKey,
		catalog.ProviderReplicate:  c.ReplicateAPIKey,
		catalog.ProviderOpenRouter: c.OpenRouterAPIKey,
		catalog.ProviderGroq:       c.GroqAPIKey,
		catalog.ProviderXAI:        c.XAIAPIKey,
	}
	for p, k := range keys {
		if strings.TrimSpace(k) == "" {
			delete(keys, p)
		}
	}
	return keys
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
