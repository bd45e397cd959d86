package handler

import (
	"encoding/json"
	"net/http"

	"travelkart/internal/model"
	"travelkart/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BookingHandler handles purchased-bundle HTTP requests.
type BookingHandler struct {
	service service.BookingService
	logger  zerolog.Logger
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(service service.BookingService, logger zerolog.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		logger:  logger.With().Str("handler", "booking").Logger(),
	}
}

// GetAll handles GET /api/bookings requests.
func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// GetByID handles GET /api/bookings/{id} requests.
func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookingID(w, r)
	if !ok {
		return
	}

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

// UpdateItemDate handles PUT /api/bookings/{id}/items/{productId}/date requests.
func (h *BookingHandler) UpdateItemDate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookingID(w, r)
	if !ok {
		return
	}
	productID := r.PathValue("productId")

	var req model.UpdateBookingDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Date == "" {
		writeError(w, http.StatusBadRequest, "date is required", h.logger)
		return
	}

	booking, err := h.service.UpdateItemDate(r.Context(), id, productID, req.Date)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) bookingID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking ID format", h.logger)
		return uuid.Nil, false
	}
	return id, true
}
