package router

import (
	"net/http"

	"travelkart/internal/handler"
	"travelkart/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	sessionHandler *handler.SessionHandler,
	themeHandler *handler.ThemeHandler,
	bookingHandler *handler.BookingHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Bundle-building sessions
	mux.HandleFunc("POST /api/sessions", sessionHandler.Create)
	mux.HandleFunc("GET /api/sessions/{id}", sessionHandler.Get)
	mux.HandleFunc("PUT /api/sessions/{id}/items/{productId}", sessionHandler.ConfigureItem)
	mux.HandleFunc("DELETE /api/sessions/{id}/items/{productId}", sessionHandler.DeselectItem)
	mux.HandleFunc("PUT /api/sessions/{id}/items/{productId}/date", sessionHandler.AssignDate)
	mux.HandleFunc("POST /api/sessions/{id}/checkout", sessionHandler.Checkout)
	mux.HandleFunc("POST /api/sessions/{id}/purchase", sessionHandler.Purchase)

	// Thematic catalog
	mux.HandleFunc("GET /api/themes", themeHandler.GetAll)
	mux.HandleFunc("GET /api/themes/{id}", themeHandler.GetByID)

	// Purchased bundles
	mux.HandleFunc("GET /api/bookings", bookingHandler.GetAll)
	mux.HandleFunc("GET /api/bookings/{id}", bookingHandler.GetByID)
	mux.HandleFunc("PUT /api/bookings/{id}/items/{productId}/date", bookingHandler.UpdateItemDate)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
