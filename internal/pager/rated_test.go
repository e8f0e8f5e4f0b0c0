package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfinch/screenings/internal/domain"
)

func mustRating(t *testing.T, v float64) domain.Rating {
	t.Helper()
	r, err := domain.NewRating(v)
	require.NoError(t, err)
	return r
}

func makeRatedPage(t *testing.T, number, totalPages int, entries map[int]float64, order ...int) *domain.RatedPage {
	t.Helper()
	movies := make([]domain.RatedMovie, 0, len(order))
	for _, id := range order {
		movies = append(movies, domain.RatedMovie{
			Movie:  domain.Movie{ID: id},
			Rating: mustRating(t, entries[id]),
		})
	}
	return &domain.RatedPage{
		Number:     number,
		TotalPages: totalPages,
		Results:    movies,
	}
}

func TestRatedListAccumulatesAndDeduplicates(t *testing.T) {
	l := NewRatedList()

	require.True(t, l.Begin())
	l.Complete(makeRatedPage(t, 1, 2, map[int]float64{10: 4, 11: 3.5}, 10, 11))

	// The remote shifted a page boundary: movie 11 appears again on page 2
	require.True(t, l.Begin())
	l.Complete(makeRatedPage(t, 2, 2, map[int]float64{11: 3.5, 12: 5}, 11, 12))

	require.Equal(t, 3, l.Len())
	ids := make([]int, 0, l.Len())
	for _, m := range l.Movies() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{10, 11, 12}, ids)
}

func TestRatedListRemoveOnClear(t *testing.T) {
	l := NewRatedList()
	l.Complete(makeRatedPage(t, 1, 1, map[int]float64{10: 4, 11: 3.5, 12: 5}, 10, 11, 12))

	l.Remove(11)

	assert.Equal(t, 2, l.Len())
	_, ok := l.Rating(11)
	assert.False(t, ok)

	// Removing an absent movie is a no-op
	l.Remove(99)
	assert.Equal(t, 2, l.Len())
}

func TestRatedListUpdateRatingInPlace(t *testing.T) {
	l := NewRatedList()
	l.Complete(makeRatedPage(t, 1, 1, map[int]float64{10: 4, 11: 3.5}, 10, 11))

	l.UpdateRating(10, mustRating(t, 2.5))

	r, ok := l.Rating(10)
	require.True(t, ok)
	assert.Equal(t, 2.5, r.Value)

	// Position is preserved, no re-sort on update
	assert.Equal(t, 10, l.Movies()[0].ID)

	// Updating a movie not in the list leaves it out until the next fetch
	l.UpdateRating(99, mustRating(t, 5))
	_, ok = l.Rating(99)
	assert.False(t, ok)
	assert.Equal(t, 2, l.Len())
}

func TestRatedListReset(t *testing.T) {
	l := NewRatedList()
	l.Complete(makeRatedPage(t, 1, 3, map[int]float64{10: 4}, 10))
	require.True(t, l.Begin())

	l.Reset()

	assert.Zero(t, l.Len())
	assert.Equal(t, 1, l.NextPage())
	assert.False(t, l.Loading())
	assert.True(t, l.HasMore())
}

func TestRatedListResetAdvancesGeneration(t *testing.T) {
	l := NewRatedList()
	l.Complete(makeRatedPage(t, 1, 3, map[int]float64{10: 4}, 10))

	// Re-entering the ratings page resets while a fetch is still out
	require.True(t, l.Begin())
	stale := l.Gen()

	l.Reset()

	assert.NotEqual(t, stale, l.Gen())
}
