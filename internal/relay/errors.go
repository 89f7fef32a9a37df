package relay

import (
	"errors"
	"fmt"
)

// ErrTemplateRequired is returned when a message has no template id
var ErrTemplateRequired = errors.New("relay: template id is required")

// APIError is returned when the relay answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("relay: status %d", e.StatusCode)
	}
	return fmt.Sprintf("relay: status %d: %s", e.StatusCode, e.Body)
}
