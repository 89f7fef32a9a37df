package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/wolfman30/mgagency-site/pkg/logging"
)

const (
	defaultBaseURL   = "https://api.emailjs.com"
	defaultUserAgent = "mgagency-site/0.1"
	sendPath         = "/api/v1.0/email/send"
	maxErrorBody     = 4 << 10
)

var relayTracer = otel.Tracer("mgagency.internal.relay")

// Sender delivers one templated email through the relay.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a single template render request. Params becomes the
// template_params object and must marshal to a JSON object.
type Message struct {
	TemplateID string
	Params     any
}

// Config controls how the relay client behaves.
type Config struct {
	BaseURL     string
	ServiceID   string
	PublicKey   string
	AccessToken string
	Timeout     time.Duration
	HTTPClient  *http.Client
	Logger      *logging.Logger
	UserAgent   string
}

// Client posts template sends to an EmailJS-compatible REST endpoint.
type Client struct {
	baseURL     string
	serviceID   string
	publicKey   string
	accessToken string
	httpClient  *http.Client
	logger      *logging.Logger
	userAgent   string
}

var _ Sender = (*Client)(nil)

// New creates a configured Client with sane defaults.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.ServiceID) == "" {
		return nil, errors.New("relay: service id is required")
	}
	if strings.TrimSpace(cfg.PublicKey) == "" {
		return nil, errors.New("relay: public key is required")
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		baseURL:     baseURL,
		serviceID:   cfg.ServiceID,
		publicKey:   cfg.PublicKey,
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
		logger:      logger,
		userAgent:   userAgent,
	}, nil
}

type sendRequest struct {
	ServiceID      string `json:"service_id"`
	TemplateID     string `json:"template_id"`
	UserID         string `json:"user_id"`
	AccessToken    string `json:"accessToken,omitempty"`
	TemplateParams any    `json:"template_params"`
}

// Send renders msg.TemplateID with msg.Params and asks the relay to deliver it.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.TemplateID) == "" {
		return ErrTemplateRequired
	}

	ctx, span := relayTracer.Start(ctx, "relay.send")
	defer span.End()
	span.SetAttributes(
		attribute.String("relay.service_id", c.serviceID),
		attribute.String("relay.template_id", msg.TemplateID),
	)

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     msg.TemplateID,
		UserID:         c.publicKey,
		AccessToken:    c.accessToken,
		TemplateParams: msg.Params,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "marshal")
		return fmt.Errorf("relay: marshal send body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("relay: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		c.logger.Error("relay send failed", "error", err, "template_id", msg.TemplateID)
		return fmt.Errorf("relay: send: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Debug("relay send accepted", "template_id", msg.TemplateID, "status", resp.StatusCode)
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	span.RecordError(apiErr)
	span.SetStatus(codes.Error, "rejected")
	c.logger.Error("relay rejected send", "status", resp.StatusCode, "body", apiErr.Body, "template_id", msg.TemplateID)
	return apiErr
}
