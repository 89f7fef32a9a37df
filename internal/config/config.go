package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	LogFormat          string
	SiteBrand          string
	CORSAllowedOrigins []string
	CompressLevel      int
	ShutdownTimeout    time.Duration

	// ServiceCatalog overrides the default service tags (comma separated).
	ServiceCatalog string

	// Email relay (EmailJS compatible)
	RelayBaseURL             string
	RelayServiceID           string
	RelayNotifyTemplateID    string
	RelayAutoReplyTemplateID string
	RelayPublicKey           string
	RelayAccessToken         string
	RelayTimeout             time.Duration

	QuoteOperatorEmail string
	QuoteSessionTTL    time.Duration

	// Redis backs quote sessions when set; otherwise sessions stay in memory.
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
}

// Load reads configuration from environment variables, after an optional
// .env file in the working directory.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "json")),
		SiteBrand:          getEnv("SITE_BRAND", ""),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		CompressLevel:      getEnvAsInt("COMPRESS_LEVEL", 5),
		ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		ServiceCatalog:     getEnv("SERVICE_CATALOG", ""),

		RelayBaseURL:             getEnv("RELAY_BASE_URL", "https://api.emailjs.com"),
		RelayServiceID:           getEnv("RELAY_SERVICE_ID", ""),
		RelayNotifyTemplateID:    getEnv("RELAY_NOTIFY_TEMPLATE_ID", ""),
		RelayAutoReplyTemplateID: getEnv("RELAY_AUTOREPLY_TEMPLATE_ID", ""),
		RelayPublicKey:           getEnv("RELAY_PUBLIC_KEY", ""),
		RelayAccessToken:         getEnv("RELAY_ACCESS_TOKEN", ""),
		RelayTimeout:             getEnvAsDuration("RELAY_TIMEOUT", 10*time.Second),

		QuoteOperatorEmail: getEnv("QUOTE_OPERATOR_EMAIL", ""),
		QuoteSessionTTL:    getEnvAsDuration("QUOTE_SESSION_TTL", 30*time.Minute),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),
	}
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development" || c.Env == "dev"
}

// RelayConfigured reports whether every relay credential is present.
func (c *Config) RelayConfigured() bool {
	return c.RelayServiceID != "" && c.RelayPublicKey != ""
}

// Validate reports settings the service cannot run without. Relay
// credentials may be omitted in development, where sends are stubbed.
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.RelayNotifyTemplateID == "" {
		errs = append(errs, errors.New("RELAY_NOTIFY_TEMPLATE_ID is required"))
	}
	if c.RelayAutoReplyTemplateID == "" {
		errs = append(errs, errors.New("RELAY_AUTOREPLY_TEMPLATE_ID is required"))
	}
	if c.QuoteOperatorEmail == "" {
		errs = append(errs, errors.New("QUOTE_OPERATOR_EMAIL is required"))
	}
	if !c.IsDevelopment() && !c.RelayConfigured() {
		errs = append(errs, errors.New("RELAY_SERVICE_ID and RELAY_PUBLIC_KEY are required outside development"))
	}
	if c.CompressLevel < 1 || c.CompressLevel > 9 {
		errs = append(errs, fmt.Errorf("COMPRESS_LEVEL must be between 1 and 9, got %d", c.CompressLevel))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w", errors.Join(errs...))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
