// Package generator produces personalized travel bundles from user
// preferences by calling a generative completion service. Responses are
// untrusted input: they are schema-validated, defaulted and assigned
// synthetic identifiers before entering a session store.
package generator

import (
	"context"
	"errors"

	"travelkart/internal/model"
)

// Generator defines the interface for dynamic bundle generation.
type Generator interface {
	// Generate produces a validated, ID-assigned bundle for the given
	// preferences. Any failure (auth, network, malformed response) is
	// returned as an error; callers substitute the fallback bundle.
	Generate(ctx context.Context, prefs model.Preferences) (*model.GeneratedBundle, error)

	// Close releases resources held by the generator.
	Close() error
}

// disabled is a Generator used when no API key is configured. Every call
// fails, which routes sessions onto the fallback bundle.
type disabled struct{}

// NewDisabled creates a generator that always reports itself unavailable.
func NewDisabled() Generator {
	return disabled{}
}

func (disabled) Generate(ctx context.Context, prefs model.Preferences) (*model.GeneratedBundle, error) {
	return nil, errors.New("bundle generation is not configured")
}

func (disabled) Close() error { return nil }

// rawBundle mirrors the completion service's response contract before
// validation. Field presence is enforced here, shape sanity in Normalize.
type rawBundle struct {
	Title    string       `json:"title" validate:"required"`
	Reason   string       `json:"reason" validate:"required"`
	Products []rawProduct `json:"products" validate:"required,min=1,dive"`
}

type rawProduct struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Price       float64     `json:"price" validate:"gte=0"`
	Badge       string      `json:"badge"`
	Rating      float64     `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int         `json:"reviewCount" validate:"gte=0"`
	IsOpenDated bool        `json:"isOpenDated"`
	Options     []rawOption `json:"options" validate:"omitempty,dive"`
}

type rawOption struct {
	Title    string  `json:"title" validate:"required"`
	Price    float64 `json:"price" validate:"gt=0"`
	UnitName string  `json:"unitName"`
}
