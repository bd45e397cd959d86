package service

import (
	"context"

	"travelkart/internal/model"
	"travelkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// bookingService implements BookingService.
type bookingService struct {
	bookings repository.BookingRepository
	logger   zerolog.Logger
}

// NewBookingService creates a new booking service.
func NewBookingService(bookings repository.BookingRepository, logger zerolog.Logger) BookingService {
	return &bookingService{
		bookings: bookings,
		logger:   logger.With().Str("service", "booking").Logger(),
	}
}

// GetAll retrieves all purchased bundles, most recent first.
func (s *bookingService) GetAll(ctx context.Context) ([]model.PurchasedBundle, error) {
	return s.bookings.GetAll(ctx)
}

// GetByID retrieves a purchased bundle by its ID.
func (s *bookingService) GetByID(ctx context.Context, id uuid.UUID) (*model.PurchasedBundle, error) {
	return s.bookings.GetByID(ctx, id)
}

// UpdateItemDate sets the visit date on one item of a purchased bundle.
// This is the post-purchase date edit path; it never touches the checkout
// snapshot the bundle was priced from.
func (s *bookingService) UpdateItemDate(ctx context.Context, id uuid.UUID, productID, date string) (*model.PurchasedBundle, error) {
	updated, err := s.bookings.UpdateItemDate(ctx, id, productID, date)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("booking_id", id.String()).
			Str("product_id", productID).
			Msg("booking date update rejected")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", id.String()).
		Str("product_id", productID).
		Str("date", date).
		Msg("booking item date updated")

	return updated, nil
}
