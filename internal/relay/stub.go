package relay

import (
	"context"

	"github.com/wolfman30/mgagency-site/pkg/logging"
)

// StubSender is a no-op sender for local runs without relay credentials.
type StubSender struct {
	logger *logging.Logger
}

// NewStubSender creates a sender that logs but doesn't send.
func NewStubSender(logger *logging.Logger) *StubSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubSender{logger: logger}
}

// Send logs the message and reports success.
func (s *StubSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info("stub relay: would send email", "template_id", msg.TemplateID)
	return nil
}
