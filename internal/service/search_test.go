package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/log"
)

type fakeSearchRemote struct {
	movies []domain.Movie
	err    error
	query  string
	calls  int
}

func (f *fakeSearchRemote) MovieSuggestions(_ context.Context, query string) ([]domain.Movie, error) {
	f.calls++
	f.query = query
	return f.movies, f.err
}

func TestSuggestionsRanking(t *testing.T) {
	remote := &fakeSearchRemote{movies: []domain.Movie{
		{ID: 1, Title: "Heathers"},
		{ID: 2, Title: "Dead Heat"},
		{ID: 3, Title: "Heat"},
	}}
	svc := NewSearchService(remote, log.NullLogger())

	got, err := svc.Suggestions(context.Background(), "heat")
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Exact title first, then prefix, then substring
	assert.Equal(t, "Heat", got[0].Title)
	assert.Equal(t, "Heathers", got[1].Title)
	assert.Equal(t, "Dead Heat", got[2].Title)
}

func TestSuggestionsTrimsQuery(t *testing.T) {
	remote := &fakeSearchRemote{}
	svc := NewSearchService(remote, log.NullLogger())

	got, err := svc.Suggestions(context.Background(), "  heat  ")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "heat", remote.query)
}

func TestSuggestionsEmptyQuerySkipsRemote(t *testing.T) {
	remote := &fakeSearchRemote{}
	svc := NewSearchService(remote, log.NullLogger())

	got, err := svc.Suggestions(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, remote.calls)
}

func TestFilterMovies(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Title: "The Godfather"},
		{ID: 2, Title: "Goodfellas"},
		{ID: 3, Title: "Alien"},
	}

	indexes := FilterMovies("godfat", movies)
	require.NotEmpty(t, indexes)
	assert.Contains(t, indexes, 0)
	assert.NotContains(t, indexes, 2)

	// Empty query means no filter
	assert.Nil(t, FilterMovies("", movies))
	assert.Nil(t, FilterMovies("   ", movies))
}
