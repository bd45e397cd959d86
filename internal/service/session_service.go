package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelkart/internal/bundle"
	"travelkart/internal/catalog"
	"travelkart/internal/generator"
	"travelkart/internal/model"
	"travelkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// sessionService implements SessionService.
type sessionService struct {
	sessions  repository.SessionRepository
	bookings  repository.BookingRepository
	catalog   *catalog.Catalog
	generator generator.Generator
	logger    zerolog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(
	sessions repository.SessionRepository,
	bookings repository.BookingRepository,
	cat *catalog.Catalog,
	gen generator.Generator,
	logger zerolog.Logger,
) SessionService {
	return &sessionService{
		sessions:  sessions,
		bookings:  bookings,
		catalog:   cat,
		generator: gen,
		logger:    logger.With().Str("service", "session").Logger(),
	}
}

// StartDynamic generates a personalized bundle and opens a session around
// it. Any generation failure is swallowed here: the fallback bundle keeps
// the selection and pricing flow alive, and the session never knows.
func (s *sessionService) StartDynamic(ctx context.Context, prefs model.Preferences) (*SessionView, error) {
	if err := validatePreferences(&prefs); err != nil {
		return nil, err
	}

	generated, err := s.generator.Generate(ctx, prefs)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("destination", prefs.Destination).
			Msg("bundle generation failed, substituting fallback bundle")
		generated = catalog.FallbackBundle(prefs.Destination)
	}

	session := bundle.NewDynamicSession(generated, time.Now())

	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error().Err(err).Msg("failed to save session")
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info().
		Str("session_id", session.ID.String()).
		Str("title", session.Title).
		Int("product_count", len(generated.Products)).
		Msg("dynamic session started")

	return newSessionView(session), nil
}

// StartThematic opens a session around a curated catalog theme.
func (s *sessionService) StartThematic(ctx context.Context, themeID string) (*SessionView, error) {
	theme, err := s.catalog.Theme(themeID)
	if err != nil {
		s.logger.Warn().Str("theme_id", themeID).Msg("theme not found")
		return nil, err
	}

	session := bundle.NewThematicSession(theme, time.Now())

	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error().Err(err).Msg("failed to save session")
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info().
		Str("session_id", session.ID.String()).
		Str("theme_id", themeID).
		Msg("thematic session started")

	return newSessionView(session), nil
}

// Get retrieves the current view of a session.
func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newSessionView(session), nil
}

// ConfigureItem sets a product's option and quantity and selects it.
func (s *sessionService) ConfigureItem(ctx context.Context, id uuid.UUID, productID, optionID string, quantity int) (*SessionView, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := session.ConfigureAndSelect(productID, optionID, quantity); err != nil {
		s.logger.Warn().
			Err(err).
			Str("session_id", id.String()).
			Str("product_id", productID).
			Str("option_id", optionID).
			Int("quantity", quantity).
			Msg("item configuration rejected")
		return nil, err
	}

	return newSessionView(session), nil
}

// DeselectItem removes a product from the selection.
func (s *sessionService) DeselectItem(ctx context.Context, id uuid.UUID, productID string) (*SessionView, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := session.Deselect(productID); err != nil {
		return nil, err
	}

	return newSessionView(session), nil
}

// AssignDate sets or defers the visit date for a date-specific product.
func (s *sessionService) AssignDate(ctx context.Context, id uuid.UUID, productID string, date *string, chooseLater bool) (*SessionView, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := session.AssignDate(productID, date, chooseLater); err != nil {
		s.logger.Warn().
			Err(err).
			Str("session_id", id.String()).
			Str("product_id", productID).
			Msg("date assignment rejected")
		return nil, err
	}

	return newSessionView(session), nil
}

// Checkout captures the immutable checkout snapshot for the session.
func (s *sessionService) Checkout(ctx context.Context, id uuid.UUID) (*model.Snapshot, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snap, err := session.Checkout(time.Now())
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("session_id", id.String()).
			Msg("checkout rejected")
		return nil, err
	}

	s.logger.Info().
		Str("session_id", id.String()).
		Int("item_count", len(snap.Items)).
		Float64("final_total", snap.FinalTotal).
		Msg("checkout snapshot captured")

	return snap, nil
}

// CompletePurchase turns the captured snapshot into a purchased bundle,
// records it, and consumes the session.
func (s *sessionService) CompletePurchase(ctx context.Context, id uuid.UUID) (*model.PurchasedBundle, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	purchased, err := session.CompletePurchase(time.Now())
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("session_id", id.String()).
			Msg("purchase rejected")
		return nil, err
	}

	if err := s.bookings.Save(ctx, purchased); err != nil {
		s.logger.Error().Err(err).Msg("failed to save booking")
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	if err := s.sessions.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("session_id", id.String()).Msg("failed to delete consumed session")
	}

	s.logger.Info().
		Str("session_id", id.String()).
		Str("booking_id", purchased.ID.String()).
		Float64("total", purchased.Total).
		Msg("purchase completed")

	return purchased, nil
}

func validatePreferences(prefs *model.Preferences) error {
	if strings.TrimSpace(prefs.Destination) == "" {
		return fmt.Errorf("destination is required")
	}
	return nil
}
