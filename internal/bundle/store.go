package bundle

import (
	"time"

	"travelkart/internal/model"
)

// Quantity bounds enforced at configuration time. Quantities outside the
// range are rejected, never clamped.
const (
	MinQuantity     = 1
	MaxQuantity     = 20
	DefaultQuantity = 2
)

// MinCheckoutItems gates snapshot capture: below two items no discount path
// exists and bundle checkout is intentionally disabled.
const MinCheckoutItems = 2

// seedCount is how many option-bearing products a dynamic session
// pre-selects to demonstrate the discount mechanic immediately.
const seedCount = 2

// Store is the single source of truth for one bundle-building session: the
// live candidate list (a mutable working copy of the supplied products) and
// the selection set. It is not safe for concurrent use; callers serialize
// access per session.
type Store struct {
	products []model.Product
	selected map[string]struct{}
}

// NewStore clones the candidate products into a working copy. The caller's
// slice stays untouched as the configuration baseline.
func NewStore(candidates []model.Product) *Store {
	return &Store{
		products: model.CloneProducts(candidates),
		selected: make(map[string]struct{}),
	}
}

// Products returns a copy of the candidate list in its original order.
func (s *Store) Products() []model.Product {
	return model.CloneProducts(s.products)
}

// Count returns the number of selected products.
func (s *Store) Count() int {
	return len(s.selected)
}

// IsSelected reports whether a product is part of the current selection.
func (s *Store) IsSelected(productID string) bool {
	_, ok := s.selected[productID]
	return ok
}

// SelectedProducts returns copies of the selected products in candidate-list
// order.
func (s *Store) SelectedProducts() []model.Product {
	out := make([]model.Product, 0, len(s.selected))
	for i := range s.products {
		if _, ok := s.selected[s.products[i].ID]; ok {
			out = append(out, s.products[i].Clone())
		}
	}
	return out
}

// ConfigureAndSelect updates a product's option and quantity and adds it to
// the selection set if not already present. Re-invoking with a different
// option or quantity overwrites the configuration without toggling
// membership. An empty optionID selects the base-price degenerate case.
// Validation failures leave the store unchanged.
func (s *Store) ConfigureAndSelect(productID, optionID string, quantity int) error {
	p := s.find(productID)
	if p == nil {
		return model.ErrProductNotFound
	}

	if quantity < MinQuantity || quantity > MaxQuantity {
		return model.ErrInvalidQuantity
	}

	if optionID != "" && p.Option(optionID) == nil {
		return model.ErrInvalidOption
	}

	p.SelectedOptionID = optionID
	p.Quantity = quantity
	s.selected[productID] = struct{}{}
	return nil
}

// Deselect removes a product from the selection set. Configuration fields
// are preserved so a later re-selection restores the prior option and
// quantity. Deselecting an unselected product is a no-op.
func (s *Store) Deselect(productID string) error {
	if s.find(productID) == nil {
		return model.ErrProductNotFound
	}
	delete(s.selected, productID)
	return nil
}

// AssignDate sets the visit date or the explicit "decide later" flag for a
// date-specific product. The two are mutually exclusive: setting a date
// clears ChooseLater and vice versa. Open-dated products reject the call.
func (s *Store) AssignDate(productID string, date *string, chooseLater bool) error {
	p := s.find(productID)
	if p == nil {
		return model.ErrProductNotFound
	}

	if p.IsOpenDated {
		return model.ErrOpenDated
	}

	if date != nil {
		d := *date
		p.SelectedDate = &d
		p.ChooseLater = false
		return nil
	}

	p.SelectedDate = nil
	p.ChooseLater = chooseLater
	return nil
}

// SeedDefaults pre-selects the first two option-bearing candidates with
// their first option and the default quantity. It runs only when the
// selection set is empty, and only dynamic sessions invoke it. Returns the
// seeded product IDs.
func (s *Store) SeedDefaults() []string {
	if len(s.selected) > 0 {
		return nil
	}

	var seeded []string
	for i := range s.products {
		if len(seeded) == seedCount {
			break
		}
		p := &s.products[i]
		if len(p.Options) == 0 {
			continue
		}
		p.SelectedOptionID = p.Options[0].ID
		p.Quantity = DefaultQuantity
		s.selected[p.ID] = struct{}{}
		seeded = append(seeded, p.ID)
	}
	return seeded
}

// Quote prices the current selection from scratch.
func (s *Store) Quote() Quote {
	return PriceSelection(s.SelectedProducts())
}

// Progress derives the tier-progress signal for the current selection count.
func (s *Store) Progress() Progress {
	return ProgressFor(s.Count())
}

// CaptureSnapshot freezes the selected, configured items and their totals
// into an immutable checkout record. Rejected below MinCheckoutItems with
// the store left unchanged. The snapshot owns deep copies, so later store
// mutations never reach it.
func (s *Store) CaptureSnapshot(now time.Time) (*model.Snapshot, error) {
	if s.Count() < MinCheckoutItems {
		return nil, model.ErrBundleTooSmall
	}

	items := s.SelectedProducts()
	quote := PriceSelection(items)

	return &model.Snapshot{
		Items:         items,
		OriginalTotal: quote.OriginalTotal,
		FinalTotal:    quote.FinalTotal,
		CapturedAt:    now,
	}, nil
}

func (s *Store) find(productID string) *model.Product {
	for i := range s.products {
		if s.products[i].ID == productID {
			return &s.products[i]
		}
	}
	return nil
}
