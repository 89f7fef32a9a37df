package quote

import (
	"fmt"
	"strings"
)

// Field names one editable text input of the quote form.
type Field int

const (
	FieldName Field = iota + 1
	FieldEmail
	FieldPhone
)

// ParseField maps a form input name to a Field.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "name":
		return FieldName, nil
	case "email":
		return FieldEmail, nil
	case "phone":
		return FieldPhone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldPhone:
		return "phone"
	default:
		return "unknown"
	}
}

// Status is the lifecycle of one submission attempt.
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSucceeded
	StatusFailed
)

var statusNames = map[Status]string{
	StatusIdle:      "idle",
	StatusSending:   "sending",
	StatusSucceeded: "succeeded",
	StatusFailed:    "failed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Settled reports whether the submit control can be used again.
func (s Status) Settled() bool {
	return s != StatusSending
}

// MarshalText encodes the status as its lowercase name.
func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a lowercase status name.
func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownStatus, string(text))
}

// LeadDraft is the in-progress quote request. Services keeps selection order.
type LeadDraft struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Services []string `json:"services"`
}

func (d LeadDraft) clone() LeadDraft {
	out := d
	out.Services = make([]string, len(d.Services))
	copy(out.Services, d.Services)
	return out
}

// Snapshot is the storable state of a Form.
type Snapshot struct {
	Draft  LeadDraft `json:"draft"`
	Status Status    `json:"status"`
}
