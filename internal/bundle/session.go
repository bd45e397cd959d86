package bundle

import (
	"sync"
	"time"

	"travelkart/internal/model"

	"github.com/google/uuid"
)

// Stage tracks where a session sits in the build -> checkout -> purchased
// flow.
type Stage string

const (
	// StageBuilding: the selection set is live and editable.
	StageBuilding Stage = "building"
	// StageCheckout: a snapshot has been captured and handed to checkout.
	StageCheckout Stage = "checkout"
	// StagePurchased: the purchase completed; the session is consumed.
	StagePurchased Stage = "purchased"
)

// Session is one bundle-building session: a store plus its display metadata,
// stage, and the checkout snapshot once captured. Mutating methods serialize
// through an internal mutex, the server-side equivalent of the UI's single
// event queue.
type Session struct {
	ID        uuid.UUID
	Kind      model.SessionKind
	Title     string
	Reason    string
	HeroImage string
	ThemeID   string
	CreatedAt time.Time

	mu       sync.Mutex
	store    *Store
	stage    Stage
	snapshot *model.Snapshot
}

// NewDynamicSession builds a session from a generated bundle and seeds the
// first two option-bearing products to demonstrate the discount mechanic.
func NewDynamicSession(generated *model.GeneratedBundle, now time.Time) *Session {
	s := &Session{
		ID:        uuid.New(),
		Kind:      model.SessionDynamic,
		Title:     generated.Title,
		Reason:    generated.Reason,
		CreatedAt: now,
		store:     NewStore(generated.Products),
		stage:     StageBuilding,
	}
	s.store.SeedDefaults()
	return s
}

// NewThematicSession builds a session from a curated theme. No seeding: the
// user starts from an empty selection.
func NewThematicSession(theme *model.Theme, now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Kind:      model.SessionThematic,
		Title:     theme.Title,
		Reason:    theme.Subtitle,
		HeroImage: theme.HeroImage,
		ThemeID:   theme.ID,
		CreatedAt: now,
		store:     NewStore(theme.Products),
		stage:     StageBuilding,
	}
}

// ConfigureAndSelect configures a product and adds it to the selection.
func (s *Session) ConfigureAndSelect(productID, optionID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ConfigureAndSelect(productID, optionID, quantity)
}

// Deselect removes a product from the selection, keeping its configuration.
func (s *Session) Deselect(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Deselect(productID)
}

// AssignDate sets or defers the visit date for a date-specific product.
func (s *Session) AssignDate(productID string, date *string, chooseLater bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.AssignDate(productID, date, chooseLater)
}

// Checkout captures the checkout snapshot and advances to StageCheckout.
// Fails below MinCheckoutItems; the selection stays editable afterwards, but
// the captured snapshot is frozen.
func (s *Session) Checkout(now time.Time) (*model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.CaptureSnapshot(now)
	if err != nil {
		return nil, err
	}

	s.snapshot = snap
	s.stage = StageCheckout
	return snap, nil
}

// CompletePurchase converts the captured snapshot into a purchased bundle
// and consumes the session. Title and image come from the theme for curated
// sessions, or the generated title and first item image for dynamic ones.
func (s *Session) CompletePurchase(now time.Time) (*model.PurchasedBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return nil, model.ErrNoSnapshot
	}

	image := s.HeroImage
	if image == "" && len(s.snapshot.Items) > 0 {
		image = s.snapshot.Items[0].Image
	}

	purchased := &model.PurchasedBundle{
		ID:          uuid.New(),
		Title:       s.Title,
		Image:       image,
		Items:       model.CloneProducts(s.snapshot.Items),
		Total:       s.snapshot.FinalTotal,
		PurchasedAt: now,
	}

	s.stage = StagePurchased
	return purchased, nil
}

// Stage returns the session's current stage.
func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Snapshot returns the captured checkout snapshot, nil before checkout.
func (s *Session) Snapshot() *model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Products returns the live candidate list.
func (s *Session) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Products()
}

// SelectedIDs returns the IDs of the selected products in candidate order.
func (s *Session) SelectedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := s.store.SelectedProducts()
	ids := make([]string, len(selected))
	for i, p := range selected {
		ids[i] = p.ID
	}
	return ids
}

// Quote prices the current selection.
func (s *Session) Quote() Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Quote()
}

// Progress derives the tier-progress signal for the current selection.
func (s *Session) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Progress()
}
