package bootstrap

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	appconfig "github.com/wolfman30/mgagency-site/internal/config"
	"github.com/wolfman30/mgagency-site/internal/observability/metrics"
	"github.com/wolfman30/mgagency-site/internal/quote"
	"github.com/wolfman30/mgagency-site/internal/relay"
	"github.com/wolfman30/mgagency-site/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// BuildSessionStore keeps quote sessions in Redis when a client is available
// and in process memory otherwise.
func BuildSessionStore(redisClient *redis.Client, cfg *appconfig.Config, logger *logging.Logger) quote.Store {
	if logger == nil {
		logger = logging.Default()
	}
	ttl := quote.DefaultSessionTTL
	if cfg != nil && cfg.QuoteSessionTTL > 0 {
		ttl = cfg.QuoteSessionTTL
	}
	if redisClient == nil {
		logger.Info("quote sessions stored in memory", "ttl", ttl.String())
		return quote.NewInMemoryStore(ttl)
	}
	logger.Info("quote sessions stored in redis", "ttl", ttl.String())
	return quote.NewRedisStore(redisClient, ttl)
}

// BuildRelaySender returns the email relay client. Without credentials in
// development a stub is used so the quote flow can be exercised locally.
func BuildRelaySender(cfg *appconfig.Config, logger *logging.Logger) (relay.Sender, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap: config is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if !cfg.RelayConfigured() {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("bootstrap: relay credentials are required in %s", cfg.Env)
		}
		logger.Warn("relay credentials missing; using stub relay")
		return relay.NewStubSender(logger), nil
	}
	client, err := relay.New(relay.Config{
		BaseURL:     cfg.RelayBaseURL,
		ServiceID:   cfg.RelayServiceID,
		PublicKey:   cfg.RelayPublicKey,
		AccessToken: cfg.RelayAccessToken,
		Timeout:     cfg.RelayTimeout,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap: relay client: %w", err)
	}
	return client, nil
}

// BuildDispatcher wires the submission dispatcher to the relay.
func BuildDispatcher(cfg *appconfig.Config, sender relay.Sender, m *metrics.QuoteMetrics, logger *logging.Logger) (*quote.Dispatcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap: config is required")
	}
	d, err := quote.NewDispatcher(sender, quote.DispatcherConfig{
		NotifyTemplateID:    cfg.RelayNotifyTemplateID,
		AutoReplyTemplateID: cfg.RelayAutoReplyTemplateID,
		OperatorEmail:       cfg.QuoteOperatorEmail,
	}, m, logger)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: dispatcher: %w", err)
	}
	return d, nil
}
