package quote

import "errors"

var (
	// ErrUnknownField is returned when a field name is not name, email or phone
	ErrUnknownField = errors.New("quote: unknown field")

	// ErrUnknownStatus is returned when a status string cannot be parsed
	ErrUnknownStatus = errors.New("quote: unknown status")

	// ErrSessionNotFound is returned when a modal session is missing or expired
	ErrSessionNotFound = errors.New("quote: session not found")
)
