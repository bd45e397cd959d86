package service

import (
	"context"

	"travelkart/internal/model"

	"github.com/google/uuid"
)

// SessionService defines operations over live bundle-building sessions.
type SessionService interface {
	// StartDynamic generates a personalized bundle for the given preferences
	// and opens a session around it. Generation failures are absorbed by
	// substituting the deterministic fallback bundle.
	StartDynamic(ctx context.Context, prefs model.Preferences) (*SessionView, error)

	// StartThematic opens a session around a curated catalog theme.
	StartThematic(ctx context.Context, themeID string) (*SessionView, error)

	// Get retrieves the current view of a session.
	Get(ctx context.Context, id uuid.UUID) (*SessionView, error)

	// ConfigureItem sets a product's option and quantity and selects it.
	ConfigureItem(ctx context.Context, id uuid.UUID, productID, optionID string, quantity int) (*SessionView, error)

	// DeselectItem removes a product from the selection.
	DeselectItem(ctx context.Context, id uuid.UUID, productID string) (*SessionView, error)

	// AssignDate sets or defers the visit date for a date-specific product.
	AssignDate(ctx context.Context, id uuid.UUID, productID string, date *string, chooseLater bool) (*SessionView, error)

	// Checkout captures the immutable checkout snapshot for the session.
	Checkout(ctx context.Context, id uuid.UUID) (*model.Snapshot, error)

	// CompletePurchase turns the captured snapshot into a purchased bundle
	// and consumes the session.
	CompletePurchase(ctx context.Context, id uuid.UUID) (*model.PurchasedBundle, error)
}

// BookingService defines operations over purchased bundles.
type BookingService interface {
	// GetAll retrieves all purchased bundles, most recent first.
	GetAll(ctx context.Context) ([]model.PurchasedBundle, error)

	// GetByID retrieves a purchased bundle by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.PurchasedBundle, error)

	// UpdateItemDate sets the visit date on one item of a purchased bundle.
	UpdateItemDate(ctx context.Context, id uuid.UUID, productID, date string) (*model.PurchasedBundle, error)
}
