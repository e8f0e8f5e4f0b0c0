package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/log"
	"github.com/mfinch/screenings/internal/session"
)

type fakeCatalogRemote struct {
	discoverType  domain.ListType
	discoverGenre int
	discoverPage  int
	searchQuery   string
	searchCalls   int
	discoverCalls int

	details    *domain.MovieDetails
	rating     *domain.Rating
	ratingErr  error
	ratingSeen string
}

func (f *fakeCatalogRemote) DiscoverMovies(_ context.Context, listType domain.ListType, genreID, page int) (*domain.Page, error) {
	f.discoverCalls++
	f.discoverType = listType
	f.discoverGenre = genreID
	f.discoverPage = page
	return &domain.Page{Number: page}, nil
}

func (f *fakeCatalogRemote) SearchMovies(_ context.Context, query string, page int) (*domain.Page, error) {
	f.searchCalls++
	f.searchQuery = query
	return &domain.Page{Number: page}, nil
}

func (f *fakeCatalogRemote) Genres(_ context.Context) (domain.GenreTable, error) {
	return domain.GenreTable{18: {ID: 18, Name: "Drama"}}, nil
}

func (f *fakeCatalogRemote) MovieDetails(_ context.Context, movieID int) (*domain.MovieDetails, error) {
	if f.details == nil {
		return nil, domain.ErrMovieNotFound
	}
	return f.details, nil
}

func (f *fakeCatalogRemote) AccountRating(_ context.Context, movieID int, sessionID string) (*domain.Rating, error) {
	f.ratingSeen = sessionID
	return f.rating, f.ratingErr
}

func TestFetchPageRoutesByContext(t *testing.T) {
	remote := &fakeCatalogRemote{}
	svc := NewCatalogService(remote, session.New("", ""), log.NullLogger())

	_, err := svc.FetchPage(context.Background(), domain.ListContext{Type: domain.ListTypeTopRated, GenreID: 18}, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, remote.discoverCalls)
	assert.Equal(t, domain.ListTypeTopRated, remote.discoverType)
	assert.Equal(t, 18, remote.discoverGenre)
	assert.Equal(t, 2, remote.discoverPage)
	assert.Zero(t, remote.searchCalls)

	_, err = svc.FetchPage(context.Background(), domain.ListContext{Query: "heat"}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, remote.searchCalls)
	assert.Equal(t, "heat", remote.searchQuery)
}

func TestFetchDetailWithRating(t *testing.T) {
	remote := &fakeCatalogRemote{
		details: &domain.MovieDetails{Movie: domain.Movie{ID: 550}},
		rating:  ratingPtrOf(4),
	}
	svc := NewCatalogService(remote, session.New("sess-1", "franny"), log.NullLogger())

	view, err := svc.FetchDetail(context.Background(), 550)
	require.NoError(t, err)
	require.NotNil(t, view.MyRating)
	assert.Equal(t, 4.0, view.MyRating.Value)
	assert.Equal(t, "sess-1", remote.ratingSeen)
}

func TestFetchDetailSignedOutSkipsRating(t *testing.T) {
	remote := &fakeCatalogRemote{
		details: &domain.MovieDetails{Movie: domain.Movie{ID: 550}},
	}
	svc := NewCatalogService(remote, session.New("", ""), log.NullLogger())

	view, err := svc.FetchDetail(context.Background(), 550)
	require.NoError(t, err)
	assert.Nil(t, view.MyRating)
	assert.Empty(t, remote.ratingSeen)
}

func TestFetchDetailDegradesRatingFailure(t *testing.T) {
	remote := &fakeCatalogRemote{
		details:   &domain.MovieDetails{Movie: domain.Movie{ID: 550}},
		ratingErr: domain.ErrServiceUnreachable,
	}
	svc := NewCatalogService(remote, session.New("sess-1", "franny"), log.NullLogger())

	// The detail surface still renders; rating state degrades to unrated
	view, err := svc.FetchDetail(context.Background(), 550)
	require.NoError(t, err)
	require.NotNil(t, view.Details)
	assert.Nil(t, view.MyRating)
}

func ratingPtrOf(v float64) *domain.Rating {
	r := domain.Rating{Value: v}
	return &r
}
