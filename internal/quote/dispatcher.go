package quote

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/wolfman30/mgagency-site/internal/observability/metrics"
	"github.com/wolfman30/mgagency-site/internal/relay"
	"github.com/wolfman30/mgagency-site/pkg/logging"
)

var dispatchTracer = otel.Tracer("mgagency.internal.quote.dispatcher")

const (
	defaultSuccessMessage = "Thanks! Your quote request has been sent. We'll get back to you shortly."
	defaultFailureMessage = "Sorry, we couldn't send your request. Please try again."
)

// Copy identifies which of the two relay sends is being made.
type Copy string

const (
	CopyNotification Copy = "notification"
	CopyAutoReply    Copy = "auto_reply"
)

// NoticeKind distinguishes success from failure notices.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeFailure NoticeKind = "failure"
)

// Notice is the user-visible outcome of a submission.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// Reporter receives the signals a submission emits toward the UI.
type Reporter interface {
	StatusChanged(s Status)
	Notify(n Notice)
	CloseModal()
}

// DispatcherConfig holds the deployment-specific relay targets.
type DispatcherConfig struct {
	NotifyTemplateID    string
	AutoReplyTemplateID string
	OperatorEmail       string
	SuccessMessage      string
	FailureMessage      string
}

// Dispatcher turns a draft into the operator notification and the visitor
// auto-reply, sent one after the other.
type Dispatcher struct {
	relay   relay.Sender
	cfg     DispatcherConfig
	metrics *metrics.QuoteMetrics
	logger  *logging.Logger
}

// NewDispatcher validates cfg and builds a dispatcher.
func NewDispatcher(sender relay.Sender, cfg DispatcherConfig, m *metrics.QuoteMetrics, logger *logging.Logger) (*Dispatcher, error) {
	if sender == nil {
		return nil, errors.New("quote: relay sender required")
	}
	if strings.TrimSpace(cfg.NotifyTemplateID) == "" {
		return nil, errors.New("quote: notification template id required")
	}
	if strings.TrimSpace(cfg.AutoReplyTemplateID) == "" {
		return nil, errors.New("quote: auto-reply template id required")
	}
	if strings.TrimSpace(cfg.OperatorEmail) == "" {
		return nil, errors.New("quote: operator email required")
	}
	if cfg.SuccessMessage == "" {
		cfg.SuccessMessage = defaultSuccessMessage
	}
	if cfg.FailureMessage == "" {
		cfg.FailureMessage = defaultFailureMessage
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{
		relay:   sender,
		cfg:     cfg,
		metrics: m,
		logger:  logger,
	}, nil
}

// Submit sends the form's draft and drives its status to Succeeded or
// Failed. The caller must have checked the required fields. The auto-reply
// is only attempted once the notification send has returned without error.
// Cancellation of ctx is ignored so an in-flight submission always settles.
func (d *Dispatcher) Submit(ctx context.Context, form *Form, rep Reporter) {
	if rep == nil {
		rep = nopReporter{}
	}
	ctx = context.WithoutCancel(ctx)
	ctx, span := dispatchTracer.Start(ctx, "quote.submit")
	defer span.End()

	form.setStatus(StatusSending)
	rep.StatusChanged(StatusSending)

	draft := form.Draft()
	span.SetAttributes(attribute.Int("quote.services", len(draft.Services)))

	notification := BuildPayload(draft, d.cfg.OperatorEmail)
	if err := d.send(ctx, CopyNotification, d.cfg.NotifyTemplateID, notification); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "notification")
		d.fail(form, rep, CopyNotification, err)
		return
	}

	autoReply := BuildPayload(draft, draft.Email)
	if err := d.send(ctx, CopyAutoReply, d.cfg.AutoReplyTemplateID, autoReply); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "auto_reply")
		d.fail(form, rep, CopyAutoReply, err)
		return
	}

	form.setStatus(StatusSucceeded)
	rep.StatusChanged(StatusSucceeded)
	d.metrics.ObserveSubmission(StatusSucceeded.String())
	d.logger.Info("quote request sent", "services", notification.Services)
	rep.Notify(Notice{Kind: NoticeSuccess, Message: d.cfg.SuccessMessage})
	rep.CloseModal()
}

func (d *Dispatcher) send(ctx context.Context, kind Copy, templateID string, payload Payload) error {
	start := time.Now()
	err := d.relay.Send(ctx, relay.Message{TemplateID: templateID, Params: payload})
	d.metrics.ObserveRelaySend(string(kind), err == nil, time.Since(start).Seconds())
	return err
}

func (d *Dispatcher) fail(form *Form, rep Reporter, kind Copy, err error) {
	form.setStatus(StatusFailed)
	rep.StatusChanged(StatusFailed)
	d.metrics.ObserveSubmission(StatusFailed.String())
	d.logger.Error("quote request failed", "copy", string(kind), "error", err)
	rep.Notify(Notice{Kind: NoticeFailure, Message: d.cfg.FailureMessage})
}

type nopReporter struct{}

func (nopReporter) StatusChanged(Status) {}
func (nopReporter) Notify(Notice)        {}
func (nopReporter) CloseModal()          {}
