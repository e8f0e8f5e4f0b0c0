package service

import (
	"context"
	"log/slog"

	"github.com/mfinch/screenings/internal/session"
)

// AuthRemote is the credential-exchange slice of the movie service
type AuthRemote interface {
	SignIn(ctx context.Context, username, password string) (string, error)
}

// SessionService orchestrates sign-in and sign-out: the credential
// exchange, the in-memory session, and the persisted copy move together.
type SessionService struct {
	remote  AuthRemote
	session *session.Session
	store   *session.Store
	logger  *slog.Logger
}

// NewSessionService creates a session service
func NewSessionService(remote AuthRemote, sess *session.Session, store *session.Store, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{remote: remote, session: sess, store: store, logger: logger}
}

// SignIn exchanges credentials for a session, establishes it in memory,
// and persists it for the next start
func (s *SessionService) SignIn(ctx context.Context, username, password string) error {
	sessionID, err := s.remote.SignIn(ctx, username, password)
	if err != nil {
		return err
	}

	s.session.Establish(sessionID, username)
	if err := s.store.Save(sessionID, username); err != nil {
		// The session is usable for this run even if persistence failed
		s.logger.Warn("failed to persist session", "error", err)
	}

	s.logger.Info("signed in", "username", username)
	return nil
}

// SignOut clears the in-memory session and the persisted credential
func (s *SessionService) SignOut() error {
	s.session.Clear()
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.logger.Info("signed out")
	return nil
}
