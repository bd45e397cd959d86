package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travelkart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBookingService is a mock implementation of BookingService.
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetAll(ctx context.Context) ([]model.PurchasedBundle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PurchasedBundle), args.Error(1)
}

func (m *MockBookingService) GetByID(ctx context.Context, id uuid.UUID) (*model.PurchasedBundle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PurchasedBundle), args.Error(1)
}

func (m *MockBookingService) UpdateItemDate(ctx context.Context, id uuid.UUID, productID, date string) (*model.PurchasedBundle, error) {
	args := m.Called(ctx, id, productID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PurchasedBundle), args.Error(1)
}

func testBooking(id uuid.UUID) *model.PurchasedBundle {
	return &model.PurchasedBundle{
		ID:    id,
		Title: "Singapore Must-Sees",
		Items: []model.Product{
			{ID: "sg-1", Title: "Gardens by the Bay"},
			{ID: "sg-2", Title: "Night Safari"},
		},
		Total:       142.5,
		PurchasedAt: time.Now(),
	}
}

func TestBookingHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	bookingID := uuid.New()

	mockService := new(MockBookingService)
	handler := NewBookingHandler(mockService, logger)
	mockService.On("GetAll", mock.Anything).Return([]model.PurchasedBundle{*testBooking(bookingID)}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	w := httptest.NewRecorder()

	handler.GetAll(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var bookings []model.PurchasedBundle
	require.NoError(t, json.NewDecoder(w.Body).Decode(&bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, bookingID, bookings[0].ID)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	bookingID := uuid.New()

	tests := []struct {
		name           string
		pathID         string
		mockReturn     *model.PurchasedBundle
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			pathID:         bookingID.String(),
			mockReturn:     testBooking(bookingID),
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Booking not found",
			pathID:         bookingID.String(),
			mockError:      model.ErrBookingNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid booking ID",
			pathID:         "nope",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockBookingService)
			handler := NewBookingHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetByID", mock.Anything, bookingID).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+tt.pathID, nil)
			req.SetPathValue("id", tt.pathID)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestBookingHandler_UpdateItemDate(t *testing.T) {
	logger := zerolog.Nop()
	bookingID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			body:           `{"date":"2026-10-01"}`,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Open-dated item",
			body:           `{"date":"2026-10-01"}`,
			mockError:      model.ErrOpenDated,
			expectedStatus: http.StatusConflict,
			expectService:  true,
		},
		{
			name:           "Item not in booking",
			body:           `{"date":"2026-10-01"}`,
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Missing date",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Malformed body",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockBookingService)
			handler := NewBookingHandler(mockService, logger)

			if tt.expectService {
				mockReturn := testBooking(bookingID)
				if tt.mockError != nil {
					mockReturn = nil
				}
				mockService.On("UpdateItemDate", mock.Anything, bookingID, "sg-1", "2026-10-01").
					Return(mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/bookings/"+bookingID.String()+"/items/sg-1/date", bytes.NewBufferString(tt.body))
			req.SetPathValue("id", bookingID.String())
			req.SetPathValue("productId", "sg-1")
			w := httptest.NewRecorder()

			handler.UpdateItemDate(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
