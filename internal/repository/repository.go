package repository

import (
	"context"

	"travelkart/internal/bundle"
	"travelkart/internal/model"

	"github.com/google/uuid"
)

// SessionRepository defines storage for live bundle-building sessions.
// Sessions are in-memory only; nothing survives a restart.
type SessionRepository interface {
	// Save stores a session, overwriting any previous state for its ID.
	Save(ctx context.Context, session *bundle.Session) error

	// GetByID retrieves a session by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*bundle.Session, error)

	// Delete removes a session.
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingRepository defines storage for purchased bundles.
type BookingRepository interface {
	// Save stores a purchased bundle.
	Save(ctx context.Context, purchased *model.PurchasedBundle) error

	// GetByID retrieves a purchased bundle by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.PurchasedBundle, error)

	// GetAll retrieves all purchased bundles, most recent first.
	GetAll(ctx context.Context) ([]model.PurchasedBundle, error)

	// UpdateItemDate sets the visit date on one item of a purchased bundle.
	// Open-dated items reject the update. Returns the updated bundle.
	UpdateItemDate(ctx context.Context, id uuid.UUID, productID, date string) (*model.PurchasedBundle, error)
}
