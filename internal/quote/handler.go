package quote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/wolfman30/mgagency-site/internal/catalog"
	"github.com/wolfman30/mgagency-site/pkg/logging"
)

// Handler exposes the quote modal over HTTP.
type Handler struct {
	store      Store
	dispatcher *Dispatcher
	catalog    *catalog.Catalog
	validate   *validator.Validate
	logger     *logging.Logger
}

// NewHandler creates a quote handler
func NewHandler(store Store, dispatcher *Dispatcher, c *catalog.Catalog, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if c == nil {
		c = catalog.Default()
	}
	return &Handler{
		store:      store,
		dispatcher: dispatcher,
		catalog:    c,
		validate:   newValidator(),
		logger:     logger,
	}
}

// SessionResponse describes an open modal.
type SessionResponse struct {
	ID      string    `json:"id"`
	Draft   LeadDraft `json:"draft"`
	Status  Status    `json:"status"`
	Catalog []string  `json:"catalog"`
}

// SubmitResponse is the settled result of a submit call.
type SubmitResponse struct {
	Status     Status  `json:"status"`
	Notice     *Notice `json:"notice,omitempty"`
	CloseModal bool    `json:"close_modal"`
}

type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

type fieldRequest struct {
	Value string `json:"value"`
}

type toggleRequest struct {
	Tag string `json:"tag"`
}

// Routes returns the session API, meant to be mounted under /api/quote.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/sessions", h.OpenSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Delete("/", h.CloseSession)
		r.Put("/fields/{field}", h.SetField)
		r.Post("/services/toggle", h.ToggleService)
		r.Post("/submit", h.Submit)
	})
	return r
}

// OpenSession handles POST /api/quote/sessions. Every open starts from an
// empty, idle draft.
func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	form := NewForm(h.catalog)
	if err := h.store.Save(r.Context(), id, form.Snapshot()); err != nil {
		h.logger.Error("failed to open quote session", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to open session"})
		return
	}
	h.logger.Debug("quote session opened", "session_id", id)
	writeJSON(w, http.StatusCreated, h.sessionResponse(id, form))
}

// GetSession handles GET /api/quote/sessions/{sessionID}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, form, ok := h.loadForm(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.sessionResponse(id, form))
}

// CloseSession handles DELETE /api/quote/sessions/{sessionID}. The draft is
// discarded whatever its status.
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.logger.Error("failed to close quote session", "session_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to close session"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetField handles PUT /api/quote/sessions/{sessionID}/fields/{field}
func (h *Handler) SetField(w http.ResponseWriter, r *http.Request) {
	field, err := ParseField(chi.URLParam(r, "field"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	var req fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	id, form, ok := h.loadForm(w, r)
	if !ok {
		return
	}
	form.SetField(field, req.Value)
	h.saveAndRespond(w, r, id, form)
}

// ToggleService handles POST /api/quote/sessions/{sessionID}/services/toggle
func (h *Handler) ToggleService(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	id, form, ok := h.loadForm(w, r)
	if !ok {
		return
	}
	form.ToggleService(req.Tag)
	h.saveAndRespond(w, r, id, form)
}

// Submit handles POST /api/quote/sessions/{sessionID}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id, form, ok := h.loadForm(w, r)
	if !ok {
		return
	}
	if form.Status() == StatusSending {
		writeJSON(w, http.StatusConflict, errorResponse{Error: "submission already in progress"})
		return
	}
	if details := checkRequired(h.validate, form.Draft()); details != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation error", Details: details})
		return
	}

	// The session must settle even when the visitor drops the request.
	persistCtx := context.WithoutCancel(r.Context())
	rep := &collectingReporter{ctx: persistCtx, id: id, form: form, store: h.store, logger: h.logger}
	h.dispatcher.Submit(r.Context(), form, rep)

	resp := SubmitResponse{Status: form.Status(), Notice: rep.notice, CloseModal: rep.closed > 0}
	if form.Status() == StatusSucceeded {
		if err := h.store.Delete(persistCtx, id); err != nil {
			h.logger.Warn("failed to discard sent quote session", "session_id", id, "error", err)
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	// A modal closed mid-submit stays closed.
	if _, err := h.store.Load(persistCtx, id); errors.Is(err, ErrSessionNotFound) {
		h.logger.Debug("quote session closed during submit", "session_id", id)
	} else if err := h.store.Save(persistCtx, id, form.Snapshot()); err != nil {
		h.logger.Warn("failed to keep failed quote session", "session_id", id, "error", err)
	}
	writeJSON(w, http.StatusBadGateway, resp)
}

// SubmitForm handles POST /quote, the native form post used without
// JavaScript. It answers with a redirect back to the contact section.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	form := NewForm(h.catalog)
	form.SetField(FieldName, r.PostForm.Get("name"))
	form.SetField(FieldEmail, r.PostForm.Get("email"))
	form.SetField(FieldPhone, r.PostForm.Get("phone"))
	for _, tag := range r.PostForm["services"] {
		if !form.HasService(tag) {
			form.ToggleService(tag)
		}
	}

	if details := checkRequired(h.validate, form.Draft()); details != nil {
		redirectToContact(w, r, "invalid")
		return
	}

	h.dispatcher.Submit(r.Context(), form, nil)
	if form.Status() == StatusSucceeded {
		redirectToContact(w, r, "sent")
		return
	}
	redirectToContact(w, r, "failed")
}

func redirectToContact(w http.ResponseWriter, r *http.Request, outcome string) {
	q := url.Values{}
	q.Set("quote", outcome)
	http.Redirect(w, r, "/?"+q.Encode()+"#contact", http.StatusSeeOther)
}

func (h *Handler) loadForm(w http.ResponseWriter, r *http.Request) (string, *Form, bool) {
	id := chi.URLParam(r, "sessionID")
	snap, err := h.store.Load(r.Context(), id)
	if errors.Is(err, ErrSessionNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return "", nil, false
	}
	if err != nil {
		h.logger.Error("failed to load quote session", "session_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load session"})
		return "", nil, false
	}
	return id, RestoreForm(h.catalog, snap), true
}

func (h *Handler) saveAndRespond(w http.ResponseWriter, r *http.Request, id string, form *Form) {
	if err := h.store.Save(r.Context(), id, form.Snapshot()); err != nil {
		h.logger.Error("failed to save quote session", "session_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save session"})
		return
	}
	writeJSON(w, http.StatusOK, h.sessionResponse(id, form))
}

func (h *Handler) sessionResponse(id string, form *Form) SessionResponse {
	return SessionResponse{
		ID:      id,
		Draft:   form.Draft(),
		Status:  form.Status(),
		Catalog: h.catalog.Tags(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
