package infra

import (
	"testing"
	"time"

	"enhancer/internal/catalog"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.ReplicatePollInterval != time.Second {
		t.Fatalf("ReplicatePollInterval = %v, want 1s", cfg.ReplicatePollInterval)
	}
	if cfg.ReplicatePollAttempts != 60 {
		t.Fatalf("ReplicatePollAttempts = %d, want 60", cfg.ReplicatePollAttempts)
	}
	if cfg.RateLimitPerMin != 100 {
		t.Fatalf("RateLimitPerMin = %d, want 100", cfg.RateLimitPerMin)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("GROQ_API_KEY", "  ")
	t.Setenv("REPLICATE_POLL_MAX_ATTEMPTS", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.ReplicatePollAttempts != 10 {
		t.Fatalf("ReplicatePollAttempts = %d", cfg.ReplicatePollAttempts)
	}
	if got := cfg.CORSAllowedOrigins; len(got) != 2 || got[0] != "https://a.test" || got[1] != "https://b.test" {
		t.Fatalf("CORSAllowedOrigins = %v", got)
	}

	keys := cfg.ProviderKeys()
	if keys[catalog.ProviderOpenAI] != "sk-env" {
		t.Fatalf("openai key = %q", keys[catalog.ProviderOpenAI])
	}
	if _, ok := keys[catalog.ProviderGroq]; ok {
		t.Fatal("blank groq key should be omitted")
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("REPLICATE_POLL_MAX_ATTEMPTS", "0")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for zero poll attempts")
	}
}
