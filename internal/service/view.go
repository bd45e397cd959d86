package service

import (
	"travelkart/internal/bundle"
	"travelkart/internal/model"

	"github.com/google/uuid"
)

// SessionView is the read model handed to the HTTP layer: the live candidate
// list, the selection, and the always-recomputed quote and progress signals.
type SessionView struct {
	ID          uuid.UUID         `json:"id"`
	Kind        model.SessionKind `json:"kind"`
	Title       string            `json:"title"`
	Reason      string            `json:"reason,omitempty"`
	HeroImage   string            `json:"heroImage,omitempty"`
	Stage       bundle.Stage      `json:"stage"`
	Products    []model.Product   `json:"products"`
	SelectedIDs []string          `json:"selectedIds"`
	Quote       bundle.Quote      `json:"quote"`
	Progress    bundle.Progress   `json:"progress"`
}

func newSessionView(s *bundle.Session) *SessionView {
	return &SessionView{
		ID:          s.ID,
		Kind:        s.Kind,
		Title:       s.Title,
		Reason:      s.Reason,
		HeroImage:   s.HeroImage,
		Stage:       s.Stage(),
		Products:    s.Products(),
		SelectedIDs: s.SelectedIDs(),
		Quote:       s.Quote(),
		Progress:    s.Progress(),
	}
}
