package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"travelkart/internal/catalog"
	"travelkart/internal/generator"
	"travelkart/internal/handler"
	"travelkart/internal/model"
	"travelkart/internal/repository"
	"travelkart/internal/router"
	"travelkart/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

// sessionView mirrors the session read model returned by the API.
type sessionView struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Title       string          `json:"title"`
	Stage       string          `json:"stage"`
	Products    []model.Product `json:"products"`
	SelectedIDs []string        `json:"selectedIds"`
	Quote       struct {
		Count          int     `json:"count"`
		OriginalTotal  float64 `json:"originalTotal"`
		DiscountRate   float64 `json:"discountRate"`
		DiscountAmount float64 `json:"discountAmount"`
		FinalTotal     float64 `json:"finalTotal"`
	} `json:"quote"`
	Progress struct {
		Percentage int    `json:"percentage"`
		Message    string `json:"message"`
	} `json:"progress"`
}

func setupTestServer(t *testing.T) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	themes, err := catalog.EmbeddedThemes()
	require.NoError(t, err)
	themeCatalog := catalog.NewCatalog(themes)

	sessionRepo := repository.NewSessionRepository(logger)
	bookingRepo := repository.NewBookingRepository(logger)

	// No generation backend in tests: dynamic sessions always take the
	// fallback bundle path.
	gen := generator.NewDisabled()
	t.Cleanup(func() {
		gen.Close()
	})

	sessionService := service.NewSessionService(sessionRepo, bookingRepo, themeCatalog, gen, logger)
	bookingService := service.NewBookingService(bookingRepo, logger)

	sessionHandler := handler.NewSessionHandler(sessionService, logger)
	themeHandler := handler.NewThemeHandler(themeCatalog, logger)
	bookingHandler := handler.NewBookingHandler(bookingService, logger)

	return router.New(sessionHandler, themeHandler, bookingHandler, testAPIKey, logger)
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("X-API-Key", testAPIKey)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if out != nil && w.Code < 300 {
		require.NoError(t, json.NewDecoder(w.Body).Decode(out))
	}
	return w
}

func TestAPI_HealthAndAuth(t *testing.T) {
	srv := setupTestServer(t)

	t.Run("Health check without API key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("API routes require key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/themes", nil)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/themes", nil)
		req.Header.Set("X-API-Key", "wrong")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAPI_ThemeCatalog(t *testing.T) {
	srv := setupTestServer(t)

	var themes []model.Theme
	w := doJSON(t, srv, http.MethodGet, "/api/themes", nil, &themes)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, themes)

	var theme model.Theme
	w = doJSON(t, srv, http.MethodGet, "/api/themes/"+themes[0].ID, nil, &theme)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, themes[0].ID, theme.ID)

	w = doJSON(t, srv, http.MethodGet, "/api/themes/theme-nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_DynamicSessionFallback(t *testing.T) {
	srv := setupTestServer(t)

	var view sessionView
	w := doJSON(t, srv, http.MethodPost, "/api/sessions", model.StartSessionRequest{
		Type:        model.SessionDynamic,
		Preferences: &model.Preferences{Destination: "Lisbon", Companions: "solo", Interests: []string{"culture"}},
	}, &view)
	require.Equal(t, http.StatusCreated, w.Code)

	// Generation is disabled, so the fallback bundle backs the session.
	assert.Equal(t, "dynamic", view.Kind)
	assert.Contains(t, view.Title, "Lisbon")
	require.Len(t, view.Products, 2)

	// The first two option-bearing products arrive pre-selected.
	assert.Len(t, view.SelectedIDs, 2)
	assert.Equal(t, 2, view.Quote.Count)
	assert.InDelta(t, 0.05, view.Quote.DiscountRate, 1e-9)
	assert.Equal(t, 35, view.Progress.Percentage)
}

func TestAPI_ThematicBundleLifecycle(t *testing.T) {
	srv := setupTestServer(t)

	// Open a session on the curated Singapore theme.
	var view sessionView
	w := doJSON(t, srv, http.MethodPost, "/api/sessions", model.StartSessionRequest{
		Type:    model.SessionThematic,
		ThemeID: "theme-singapore",
	}, &view)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "thematic", view.Kind)
	assert.Empty(t, view.SelectedIDs)
	assert.Equal(t, 2, view.Progress.Percentage)

	base := "/api/sessions/" + view.ID

	// Checkout with an empty selection is refused.
	w = doJSON(t, srv, http.MethodPost, base+"/checkout", nil, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Select and configure two items.
	w = doJSON(t, srv, http.MethodPut, base+"/items/sg-1", model.ConfigureItemRequest{OptionID: "sg-1-a", Quantity: 2}, &view)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"sg-1"}, view.SelectedIDs)

	w = doJSON(t, srv, http.MethodPut, base+"/items/sg-2", model.ConfigureItemRequest{OptionID: "sg-2-b", Quantity: 1}, &view)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, view.Quote.Count)

	// sg-1-a at 53 x2 plus sg-2-b at 40 x1, 5% off.
	assert.InDelta(t, 146, view.Quote.OriginalTotal, 1e-9)
	assert.InDelta(t, 138.7, view.Quote.FinalTotal, 1e-9)

	// Both Singapore headliners are open-dated; a date assignment is refused.
	date := "2026-10-01"
	w = doJSON(t, srv, http.MethodPut, base+"/items/sg-1/date", model.AssignDateRequest{Date: &date}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Capture the checkout snapshot.
	var snap model.Snapshot
	w = doJSON(t, srv, http.MethodPost, base+"/checkout", nil, &snap)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, snap.Items, 2)
	assert.InDelta(t, 138.7, snap.FinalTotal, 1e-9)

	// Later edits never reach the captured snapshot.
	w = doJSON(t, srv, http.MethodPut, base+"/items/sg-1", model.ConfigureItemRequest{OptionID: "sg-1-b", Quantity: 1}, &view)
	require.Equal(t, http.StatusOK, w.Code)

	// Complete the purchase.
	var booking model.PurchasedBundle
	w = doJSON(t, srv, http.MethodPost, base+"/purchase", nil, &booking)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.InDelta(t, 138.7, booking.Total, 1e-9)
	require.Len(t, booking.Items, 2)

	// The session is consumed by the purchase.
	w = doJSON(t, srv, http.MethodGet, base, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The booking is now retrievable.
	var bookings []model.PurchasedBundle
	w = doJSON(t, srv, http.MethodGet, "/api/bookings", nil, &bookings)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, bookings, 1)
	assert.Equal(t, booking.ID, bookings[0].ID)

	// Post-purchase date edits are refused for open-dated items.
	bookingBase := fmt.Sprintf("/api/bookings/%s", booking.ID)
	w = doJSON(t, srv, http.MethodPut, bookingBase+"/items/sg-1/date", model.UpdateBookingDateRequest{Date: date}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAPI_BookingDateUpdate(t *testing.T) {
	srv := setupTestServer(t)

	// Build and purchase a bundle from the food theme, which is dated.
	var view sessionView
	w := doJSON(t, srv, http.MethodPost, "/api/sessions", model.StartSessionRequest{
		Type:    model.SessionThematic,
		ThemeID: "theme-food",
	}, &view)
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/api/sessions/" + view.ID

	w = doJSON(t, srv, http.MethodPut, base+"/items/food-1", model.ConfigureItemRequest{OptionID: "f1-a", Quantity: 2}, &view)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, srv, http.MethodPut, base+"/items/food-2", model.ConfigureItemRequest{OptionID: "f2-a", Quantity: 2}, &view)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodPost, base+"/checkout", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var booking model.PurchasedBundle
	w = doJSON(t, srv, http.MethodPost, base+"/purchase", nil, &booking)
	require.Equal(t, http.StatusCreated, w.Code)

	// A dated item accepts a post-purchase visit date.
	bookingBase := fmt.Sprintf("/api/bookings/%s", booking.ID)
	var updated model.PurchasedBundle
	w = doJSON(t, srv, http.MethodPut, bookingBase+"/items/food-1/date", model.UpdateBookingDateRequest{Date: "2026-11-20"}, &updated)
	require.Equal(t, http.StatusOK, w.Code)

	var found bool
	for _, item := range updated.Items {
		if item.ID == "food-1" {
			found = true
			require.NotNil(t, item.SelectedDate)
			assert.Equal(t, "2026-11-20", *item.SelectedDate)
		}
	}
	assert.True(t, found)

	// Unknown item in the booking.
	w = doJSON(t, srv, http.MethodPut, bookingBase+"/items/ghost/date", model.UpdateBookingDateRequest{Date: "2026-11-20"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
