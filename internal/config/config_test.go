package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "LOG_LEVEL", "LOG_FORMAT", "SITE_BRAND", "CORS_ALLOWED_ORIGINS",
		"COMPRESS_LEVEL", "SHUTDOWN_TIMEOUT", "SERVICE_CATALOG", "RELAY_BASE_URL",
		"RELAY_SERVICE_ID", "RELAY_NOTIFY_TEMPLATE_ID", "RELAY_AUTOREPLY_TEMPLATE_ID",
		"RELAY_PUBLIC_KEY", "RELAY_ACCESS_TOKEN", "RELAY_TIMEOUT", "QUOTE_OPERATOR_EMAIL",
		"QUOTE_SESSION_TTL", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_TLS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected json log format, got %s", cfg.LogFormat)
	}
	if cfg.RelayBaseURL != "https://api.emailjs.com" {
		t.Fatalf("expected default relay base url, got %s", cfg.RelayBaseURL)
	}
	if cfg.RelayTimeout != 10*time.Second {
		t.Fatalf("expected default relay timeout, got %s", cfg.RelayTimeout)
	}
	if cfg.QuoteSessionTTL != 30*time.Minute {
		t.Fatalf("expected default session ttl, got %s", cfg.QuoteSessionTTL)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected redis disabled by default, got %s", cfg.RedisAddr)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no cors origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CompressLevel != 5 {
		t.Fatalf("expected default compress level, got %d", cfg.CompressLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_FORMAT", "TEXT")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://mgagency.example, ,https://www.mgagency.example")
	t.Setenv("RELAY_SERVICE_ID", "service_123")
	t.Setenv("RELAY_TIMEOUT", "3s")
	t.Setenv("QUOTE_SESSION_TTL", "5m")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("SERVICE_CATALOG", "Branding,Hosting")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.LogFormat != "text" {
		t.Fatalf("expected lowercased log format, got %s", cfg.LogFormat)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://www.mgagency.example" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.RelayServiceID != "service_123" {
		t.Fatalf("expected relay service override, got %s", cfg.RelayServiceID)
	}
	if cfg.RelayTimeout != 3*time.Second {
		t.Fatalf("expected relay timeout override, got %s", cfg.RelayTimeout)
	}
	if cfg.QuoteSessionTTL != 5*time.Minute {
		t.Fatalf("expected session ttl override, got %s", cfg.QuoteSessionTTL)
	}
	if cfg.RedisAddr != "localhost:6379" || !cfg.RedisTLS {
		t.Fatalf("expected redis overrides, got %s tls=%v", cfg.RedisAddr, cfg.RedisTLS)
	}
	if cfg.ServiceCatalog != "Branding,Hosting" {
		t.Fatalf("expected catalog override, got %s", cfg.ServiceCatalog)
	}
}

func TestLoadIgnoresMalformedDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("RELAY_TIMEOUT", "soon")
	if got := Load().RelayTimeout; got != 10*time.Second {
		t.Fatalf("expected fallback timeout, got %s", got)
	}
}

func validConfig() *Config {
	return &Config{
		Port:                     "8080",
		Env:                      "production",
		CompressLevel:            5,
		RelayServiceID:           "service_123",
		RelayPublicKey:           "public_123",
		RelayNotifyTemplateID:    "template_notify",
		RelayAutoReplyTemplateID: "template_autoreply",
		QuoteOperatorEmail:       "hello@mgagency.example",
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg := validConfig()
	cfg.RelayPublicKey = ""
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "RELAY_PUBLIC_KEY") {
		t.Fatalf("expected missing relay key error, got %v", err)
	}

	cfg.Env = "development"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected development to tolerate missing relay keys, got %v", err)
	}

	cfg.QuoteOperatorEmail = ""
	cfg.CompressLevel = 0
	err = cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "QUOTE_OPERATOR_EMAIL") || !strings.Contains(err.Error(), "COMPRESS_LEVEL") {
		t.Fatalf("expected both errors reported, got %v", err)
	}
}
