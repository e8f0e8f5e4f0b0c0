package service

import (
	"context"
	"log/slog"

	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/session"
)

// RatingsRemote is the slice of the movie service the ratings page needs
type RatingsRemote interface {
	RatedMovies(ctx context.Context, sessionID string, page int) (*domain.RatedPage, error)
}

// RatingsService fetches the user's rated-movies pages. Mutations go
// through the rating gateway, not this service; membership maintenance
// on the accumulated list is the pager's job.
type RatingsService struct {
	remote  RatingsRemote
	session *session.Session
	logger  *slog.Logger
}

// NewRatingsService creates a ratings service
func NewRatingsService(remote RatingsRemote, sess *session.Session, logger *slog.Logger) *RatingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RatingsService{remote: remote, session: sess, logger: logger}
}

// FetchPage fetches one page of the user's rated movies
func (s *RatingsService) FetchPage(ctx context.Context, page int) (*domain.RatedPage, error) {
	if !s.session.SignedIn() {
		return nil, domain.ErrNotSignedIn
	}
	return s.remote.RatedMovies(ctx, s.session.ID(), page)
}
