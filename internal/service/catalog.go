package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/session"
)

// CatalogRemote is the slice of the movie service the catalog needs
type CatalogRemote interface {
	DiscoverMovies(ctx context.Context, listType domain.ListType, genreID, page int) (*domain.Page, error)
	SearchMovies(ctx context.Context, query string, page int) (*domain.Page, error)
	Genres(ctx context.Context) (domain.GenreTable, error)
	MovieDetails(ctx context.Context, movieID int) (*domain.MovieDetails, error)
	AccountRating(ctx context.Context, movieID int, sessionID string) (*domain.Rating, error)
}

// MovieDetailView is the full detail record plus the account-specific
// rating state fetched alongside it. MyRating is nil when the movie is
// unrated or the user is signed out.
type MovieDetailView struct {
	Details  *domain.MovieDetails
	MyRating *domain.Rating
}

// CatalogService fetches catalog pages and movie details. It is
// stateless request plumbing; accumulation lives in the pager.
type CatalogService struct {
	remote  CatalogRemote
	session *session.Session
	logger  *slog.Logger
}

// NewCatalogService creates a catalog service
func NewCatalogService(remote CatalogRemote, sess *session.Session, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{remote: remote, session: sess, logger: logger}
}

// FetchPage fetches one page for a listing context: search results when
// the context carries a query, discover results otherwise
func (s *CatalogService) FetchPage(ctx context.Context, listCtx domain.ListContext, page int) (*domain.Page, error) {
	if listCtx.Query != "" {
		return s.remote.SearchMovies(ctx, listCtx.Query, page)
	}
	return s.remote.DiscoverMovies(ctx, listCtx.Type, listCtx.GenreID, page)
}

// Genres loads the global genre reference table
func (s *CatalogService) Genres(ctx context.Context) (domain.GenreTable, error) {
	return s.remote.Genres(ctx)
}

// FetchDetail fetches the full movie record and, when signed in, the
// account rating state for the detail surface. A rating-state failure is
// degraded to "unrated" rather than failing the whole detail load; the
// detail surface still renders.
func (s *CatalogService) FetchDetail(ctx context.Context, movieID int) (*MovieDetailView, error) {
	details, err := s.remote.MovieDetails(ctx, movieID)
	if err != nil {
		return nil, err
	}

	view := &MovieDetailView{Details: details}

	if s.session.SignedIn() {
		myRating, err := s.remote.AccountRating(ctx, movieID, s.session.ID())
		switch {
		case err == nil:
			view.MyRating = myRating
		case errors.Is(err, domain.ErrAuthFailed):
			s.logger.Warn("account rating fetch unauthorized", "movieID", movieID)
		default:
			s.logger.Warn("account rating fetch failed", "movieID", movieID, "error", err)
		}
	}

	return view, nil
}
