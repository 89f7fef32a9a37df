package quote

import (
	"context"

	"github.com/wolfman30/mgagency-site/pkg/logging"
)

// collectingReporter remembers the notice and close signal for the HTTP
// response. When a store is set, the Sending state is persisted so other
// readers of the session see the submission in flight.
type collectingReporter struct {
	ctx    context.Context
	id     string
	form   *Form
	store  Store
	logger *logging.Logger

	notice *Notice
	closed int
}

func (r *collectingReporter) StatusChanged(s Status) {
	if r.store == nil || s != StatusSending {
		return
	}
	if err := r.store.Save(r.ctx, r.id, r.form.Snapshot()); err != nil {
		r.logger.Warn("failed to persist sending status", "session_id", r.id, "error", err)
	}
}

func (r *collectingReporter) Notify(n Notice) {
	r.notice = &n
}

func (r *collectingReporter) CloseModal() {
	r.closed++
}
