package pairing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lifeline/internal/errors"

	"github.com/google/uuid"
)

// Session lives from app launch to app exit and carries the state that
// must not outlive it.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time

	backend Backend
	logger  *slog.Logger
	now     func() time.Time

	mu               sync.Mutex
	baselineRecorded bool
}

// NewSession starts a session
func NewSession(backend Backend, logger *slog.Logger) *Session {
	id := uuid.New()

	return &Session{
		ID:        id,
		StartedAt: time.Now(),
		backend:   backend,
		logger:    logger.With(slog.String("session_id", id.String())),
		now:       time.Now,
	}
}

// Logger is tagged with the session ID.
func (s *Session) Logger() *slog.Logger {
	return s.logger
}

// EnsureBaseline records one activity signal for familyID the first time it
// is called in this session. It reports whether this call recorded it. A
// failed attempt leaves the flag unset so the next call retries.
func (s *Session) EnsureBaseline(ctx context.Context, familyID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.baselineRecorded {
		return false, nil
	}

	if err := s.backend.RecordActivity(ctx, familyID, s.now()); err != nil {
		return false, errors.Wrap(err, "record startup baseline")
	}
	s.baselineRecorded = true
	s.logger.Info("Startup baseline recorded", slog.String("family_id", familyID.String()))

	return true, nil
}

// BaselineRecorded reports whether EnsureBaseline has succeeded.
func (s *Session) BaselineRecorded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.baselineRecorded
}

// NewHandshake creates a handshake that logs under this session.
func (s *Session) NewHandshake(opts Options) *Handshake {
	if opts.Logger == nil {
		opts.Logger = s.logger
	}

	return NewHandshake(s.backend, opts)
}
