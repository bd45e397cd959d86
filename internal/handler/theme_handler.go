package handler

import (
	"net/http"

	"travelkart/internal/catalog"

	"github.com/rs/zerolog"
)

// ThemeHandler serves the curated thematic catalog.
type ThemeHandler struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewThemeHandler creates a new theme handler.
func NewThemeHandler(cat *catalog.Catalog, logger zerolog.Logger) *ThemeHandler {
	return &ThemeHandler{
		catalog: cat,
		logger:  logger.With().Str("handler", "theme").Logger(),
	}
}

// GetAll handles GET /api/themes requests.
func (h *ThemeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Themes())
}

// GetByID handles GET /api/themes/{id} requests.
func (h *ThemeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	theme, err := h.catalog.Theme(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, theme)
}
