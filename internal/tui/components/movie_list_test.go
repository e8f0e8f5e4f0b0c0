package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfinch/screenings/internal/domain"
)

func sampleMovies(ids ...int) []domain.Movie {
	movies := make([]domain.Movie, len(ids))
	for i, id := range ids {
		movies[i] = domain.Movie{ID: id, Title: "Movie"}
	}
	return movies
}

func TestMovieListHoldsLocalRatings(t *testing.T) {
	l := NewMovieList("Popular")
	l.SetMovies(sampleMovies(10, 11, 12))

	// Catalog surfaces start with no rating knowledge
	assert.Nil(t, l.MyRating(10))

	l.ApplyRating(10, ratingPtr(t, 4))
	r := l.MyRating(10)
	require.NotNil(t, r)
	assert.Equal(t, 4.0, r.Value)

	// Other movies are untouched
	assert.Nil(t, l.MyRating(11))

	l.ApplyRating(10, nil)
	assert.Nil(t, l.MyRating(10))
}

func TestMovieListResetRatings(t *testing.T) {
	l := NewMovieList("My Ratings")
	l.SetMovies(sampleMovies(10, 11))

	l.ResetRatings(map[int]domain.Rating{10: {Value: 4}, 11: {Value: 2.5}})
	require.NotNil(t, l.MyRating(11))
	assert.Equal(t, 2.5, l.MyRating(11).Value)

	l.ResetRatings(nil)
	assert.Nil(t, l.MyRating(10))
}

func TestMovieListClearDropsRatings(t *testing.T) {
	l := NewMovieList("Popular")
	l.SetMovies(sampleMovies(10))
	l.ApplyRating(10, ratingPtr(t, 4))

	l.Clear()

	assert.Zero(t, l.Len())
	assert.Nil(t, l.MyRating(10))
	assert.Nil(t, l.Selected())
}

func TestMovieListCursorAndSelection(t *testing.T) {
	l := NewMovieList("Popular")
	l.SetSize(40, 20)
	l.SetMovies(sampleMovies(10, 11, 12))

	require.NotNil(t, l.Selected())
	assert.Equal(t, 10, l.Selected().ID)

	l.CursorDown()
	l.CursorDown()
	assert.Equal(t, 12, l.Selected().ID)

	// Cursor clamps at the last row
	l.CursorDown()
	assert.Equal(t, 12, l.Selected().ID)

	l.CursorUp()
	assert.Equal(t, 11, l.Selected().ID)
}

func TestMovieListCursorClampsOnShrink(t *testing.T) {
	l := NewMovieList("Popular")
	l.SetMovies(sampleMovies(10, 11, 12))
	l.CursorDown()
	l.CursorDown()

	l.SetMovies(sampleMovies(10))
	require.NotNil(t, l.Selected())
	assert.Equal(t, 10, l.Selected().ID)
}

func TestMovieListFilter(t *testing.T) {
	l := NewMovieList("Popular")
	l.SetMovies(sampleMovies(10, 11, 12))
	l.CursorDown()

	l.ApplyFilter([]int{2, 0})
	assert.True(t, l.Filtering())
	assert.Equal(t, 2, l.Len())

	// Cursor restarts at the top of the filtered view
	require.NotNil(t, l.Selected())
	assert.Equal(t, 12, l.Selected().ID)

	l.CursorDown()
	assert.Equal(t, 10, l.Selected().ID)

	l.ClearFilter()
	assert.False(t, l.Filtering())
	assert.Equal(t, 3, l.Len())
}

func TestMovieListMetricsSuppressedWhileFiltering(t *testing.T) {
	l := NewMovieList("Popular")
	l.SetMovies(sampleMovies(10, 11, 12))

	m := l.Metrics(5)
	assert.Equal(t, 3, m.ItemCount)
	assert.Equal(t, 5, m.Threshold)

	l.ApplyFilter([]int{0})
	assert.Zero(t, l.Metrics(5).ItemCount)
}
