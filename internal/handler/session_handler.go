package handler

import (
	"encoding/json"
	"net/http"

	"travelkart/internal/model"
	"travelkart/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionHandler handles bundle-session HTTP requests.
type SessionHandler struct {
	service service.SessionService
	logger  zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(service service.SessionService, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger.With().Str("handler", "session").Logger(),
	}
}

// Create handles POST /api/sessions requests.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	switch req.Type {
	case model.SessionDynamic:
		if req.Preferences == nil {
			writeError(w, http.StatusBadRequest, "preferences are required for a dynamic session", h.logger)
			return
		}
		view, err := h.service.StartDynamic(r.Context(), *req.Preferences)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), h.logger)
			return
		}
		writeJSON(w, http.StatusCreated, view)

	case model.SessionThematic:
		if req.ThemeID == "" {
			writeError(w, http.StatusBadRequest, "themeId is required for a thematic session", h.logger)
			return
		}
		view, err := h.service.StartThematic(r.Context(), req.ThemeID)
		if err != nil {
			writeDomainError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusCreated, view)

	default:
		writeError(w, http.StatusBadRequest, "type must be dynamic or thematic", h.logger)
	}
}

// Get handles GET /api/sessions/{id} requests.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// ConfigureItem handles PUT /api/sessions/{id}/items/{productId} requests.
func (h *SessionHandler) ConfigureItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	productID := r.PathValue("productId")

	var req model.ConfigureItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	view, err := h.service.ConfigureItem(r.Context(), id, productID, req.OptionID, req.Quantity)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// DeselectItem handles DELETE /api/sessions/{id}/items/{productId} requests.
func (h *SessionHandler) DeselectItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	productID := r.PathValue("productId")

	view, err := h.service.DeselectItem(r.Context(), id, productID)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// AssignDate handles PUT /api/sessions/{id}/items/{productId}/date requests.
func (h *SessionHandler) AssignDate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	productID := r.PathValue("productId")

	var req model.AssignDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	view, err := h.service.AssignDate(r.Context(), id, productID, req.Date, req.ChooseLater)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Checkout handles POST /api/sessions/{id}/checkout requests.
func (h *SessionHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.service.Checkout(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// Purchase handles POST /api/sessions/{id}/purchase requests.
func (h *SessionHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	purchased, err := h.service.CompletePurchase(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, purchased)
}

func (h *SessionHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session ID format", h.logger)
		return uuid.Nil, false
	}
	return id, true
}
