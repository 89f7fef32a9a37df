package quote

import (
	"slices"
	"strings"
	"sync"

	"github.com/wolfman30/mgagency-site/internal/catalog"
)

// Form holds the draft and submission status of one open quote modal.
// Services is always a subset of the form's catalog.
type Form struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	draft   LeadDraft
	status  Status
}

// NewForm returns an empty, idle form bound to c.
func NewForm(c *catalog.Catalog) *Form {
	if c == nil {
		c = catalog.Default()
	}
	return &Form{
		catalog: c,
		draft:   LeadDraft{Services: []string{}},
	}
}

// RestoreForm rebuilds a form from a stored snapshot. Stored services that
// are no longer in c are dropped.
func RestoreForm(c *catalog.Catalog, snap Snapshot) *Form {
	f := NewForm(c)
	f.draft.Name = snap.Draft.Name
	f.draft.Email = snap.Draft.Email
	f.draft.Phone = snap.Draft.Phone
	for _, tag := range snap.Draft.Services {
		if f.catalog.Contains(tag) && !slices.Contains(f.draft.Services, tag) {
			f.draft.Services = append(f.draft.Services, tag)
		}
	}
	f.status = snap.Status
	return f
}

// Catalog returns the catalog the form toggles against.
func (f *Form) Catalog() *catalog.Catalog {
	return f.catalog
}

// SetField replaces one text field of the draft. Surrounding whitespace is
// dropped, as a browser does for email inputs; values are not validated.
func (f *Form) SetField(field Field, value string) {
	value = strings.TrimSpace(value)

	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldName:
		f.draft.Name = value
	case FieldEmail:
		f.draft.Email = value
	case FieldPhone:
		f.draft.Phone = value
	}
}

// ToggleService removes tag when selected and appends it otherwise. Tags
// outside the catalog are ignored.
func (f *Form) ToggleService(tag string) {
	if !f.catalog.Contains(tag) {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if i := slices.Index(f.draft.Services, tag); i >= 0 {
		f.draft.Services = slices.Delete(f.draft.Services, i, i+1)
		return
	}
	f.draft.Services = append(f.draft.Services, tag)
}

// HasService reports whether tag is currently selected.
func (f *Form) HasService(tag string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Contains(f.draft.Services, tag)
}

// Reset clears the draft and returns the status to idle.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = LeadDraft{Services: []string{}}
	f.status = StatusIdle
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() LeadDraft {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.draft.clone()
}

// Status returns the current submission status.
func (f *Form) Status() Status {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status
}

// Snapshot captures the draft and status for storage.
func (f *Form) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return Snapshot{Draft: f.draft.clone(), Status: f.status}
}

func (f *Form) setStatus(s Status) {
	f.mu.Lock()
	f.status = s
	f.mu.Unlock()
}
