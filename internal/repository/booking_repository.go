package repository

import (
	"context"
	"sort"
	"sync"

	"travelkart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// bookingRepository implements BookingRepository in memory. It stores deep
// copies on the way in and out, so callers never share item slices with the
// repository's own records.
type bookingRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]*model.PurchasedBundle
	logger   zerolog.Logger
}

// NewBookingRepository creates an in-memory booking repository.
func NewBookingRepository(logger zerolog.Logger) BookingRepository {
	return &bookingRepository{
		bookings: make(map[uuid.UUID]*model.PurchasedBundle),
		logger:   logger.With().Str("repository", "booking").Logger(),
	}
}

// Save stores a purchased bundle.
func (r *bookingRepository) Save(ctx context.Context, purchased *model.PurchasedBundle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *purchased
	stored.Items = model.CloneProducts(purchased.Items)
	r.bookings[purchased.ID] = &stored

	r.logger.Debug().
		Str("booking_id", purchased.ID.String()).
		Int("item_count", len(purchased.Items)).
		Msg("booking saved")
	return nil
}

// GetByID retrieves a purchased bundle by its ID.
func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PurchasedBundle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.bookings[id]
	if !ok {
		return nil, model.ErrBookingNotFound
	}
	return copyBooking(stored), nil
}

// GetAll retrieves all purchased bundles, most recent first.
func (r *bookingRepository) GetAll(ctx context.Context) ([]model.PurchasedBundle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.PurchasedBundle, 0, len(r.bookings))
	for _, stored := range r.bookings {
		out = append(out, *copyBooking(stored))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PurchasedAt.After(out[j].PurchasedAt)
	})
	return out, nil
}

// UpdateItemDate sets the visit date on one item of a purchased bundle and
// clears its "decide later" flag. The update happens atomically under the
// repository lock so concurrent date edits cannot interleave.
func (r *bookingRepository) UpdateItemDate(ctx context.Context, id uuid.UUID, productID, date string) (*model.PurchasedBundle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bookings[id]
	if !ok {
		return nil, model.ErrBookingNotFound
	}

	for i := range stored.Items {
		if stored.Items[i].ID != productID {
			continue
		}
		if stored.Items[i].IsOpenDated {
			return nil, model.ErrOpenDated
		}
		d := date
		stored.Items[i].SelectedDate = &d
		stored.Items[i].ChooseLater = false

		r.logger.Debug().
			Str("booking_id", id.String()).
			Str("product_id", productID).
			Str("date", date).
			Msg("booking item date updated")
		return copyBooking(stored), nil
	}

	return nil, model.ErrProductNotFound
}

func copyBooking(stored *model.PurchasedBundle) *model.PurchasedBundle {
	out := *stored
	out.Items = model.CloneProducts(stored.Items)
	return &out
}
