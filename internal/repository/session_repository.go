package repository

import (
	"context"
	"sync"

	"travelkart/internal/bundle"
	"travelkart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// sessionRepository implements SessionRepository in memory. The map guards
// membership only; per-session mutation safety lives inside bundle.Session.
type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*bundle.Session
	logger   zerolog.Logger
}

// NewSessionRepository creates an in-memory session repository.
func NewSessionRepository(logger zerolog.Logger) SessionRepository {
	return &sessionRepository{
		sessions: make(map[uuid.UUID]*bundle.Session),
		logger:   logger.With().Str("repository", "session").Logger(),
	}
}

// Save stores a session, overwriting any previous state for its ID.
func (r *sessionRepository) Save(ctx context.Context, session *bundle.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = session
	r.logger.Debug().
		Str("session_id", session.ID.String()).
		Str("kind", string(session.Kind)).
		Msg("session saved")
	return nil
}

// GetByID retrieves a session by its ID.
func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*bundle.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

// Delete removes a session.
func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return model.ErrSessionNotFound
	}
	delete(r.sessions, id)
	r.logger.Debug().Str("session_id", id.String()).Msg("session deleted")
	return nil
}
