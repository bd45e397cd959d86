package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionKind distinguishes how a bundle-building session was started.
type SessionKind string

const (
	// SessionDynamic is a personalized bundle generated from user preferences.
	SessionDynamic SessionKind = "dynamic"
	// SessionThematic is a pre-curated bundle from the static catalog.
	SessionThematic SessionKind = "thematic"
)

// Preferences is the user input driving dynamic bundle generation.
type Preferences struct {
	Destination string   `json:"destination"`
	Companions  string   `json:"companions"`
	Interests   []string `json:"interests"`
}

// GeneratedBundle is a validated, ID-assigned bundle produced by the
// generation service (or the deterministic fallback).
type GeneratedBundle struct {
	Title    string    `json:"title"`
	Reason   string    `json:"reason"`
	Products []Product `json:"products"`
}

// Theme is a curated bundle from the thematic catalog. Product IDs are
// pre-populated; no generation call is involved.
type Theme struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	HeroImage   string    `json:"heroImage"`
	SavingsText string    `json:"savingsText"`
	Products    []Product `json:"products"`
}

// Snapshot is the immutable checkout record captured on "add to cart".
// Items carry their resolved option, quantity and date state at capture time;
// later edits to the live session never reach a snapshot.
type Snapshot struct {
	Items         []Product `json:"items"`
	OriginalTotal float64   `json:"originalTotal"`
	FinalTotal    float64   `json:"finalTotal"`
	CapturedAt    time.Time `json:"capturedAt"`
}

// PurchasedBundle replaces a snapshot once payment completes. Post-purchase
// date updates mutate this record, never the snapshot it came from.
type PurchasedBundle struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	Items       []Product `json:"items"`
	Total       float64   `json:"total"`
	PurchasedAt time.Time `json:"purchasedAt"`
}
