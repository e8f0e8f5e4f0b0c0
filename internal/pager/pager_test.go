package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfinch/screenings/internal/domain"
)

func makePage(number, totalPages int, ids ...int) *domain.Page {
	movies := make([]domain.Movie, len(ids))
	for i, id := range ids {
		movies[i] = domain.Movie{ID: id}
	}
	return &domain.Page{
		Number:     number,
		TotalPages: totalPages,
		Results:    movies,
	}
}

func movieIDs(movies []domain.Movie) []int {
	ids := make([]int, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}

func TestPagerAccumulatesInFetchOrder(t *testing.T) {
	p := New(domain.ListContext{Type: domain.ListTypePopular})

	require.True(t, p.Begin())
	p.Complete(makePage(1, 3, 10, 11))

	require.True(t, p.Begin())
	p.Complete(makePage(2, 3, 12, 13))

	assert.Equal(t, []int{10, 11, 12, 13}, movieIDs(p.Movies()))
	assert.Equal(t, 3, p.NextPage())
	assert.True(t, p.HasMore())
}

func TestPagerPageOneReplaces(t *testing.T) {
	p := New(domain.ListContext{Type: domain.ListTypePopular})

	p.Complete(makePage(1, 2, 10, 11))
	p.Complete(makePage(2, 2, 12))
	require.Equal(t, 3, p.Len())

	// A fresh page 1 replaces everything accumulated so far
	p.Complete(makePage(1, 2, 20, 21))
	assert.Equal(t, []int{20, 21}, movieIDs(p.Movies()))
	assert.Equal(t, 2, p.NextPage())
}

func TestPagerHasMore(t *testing.T) {
	p := New(domain.ListContext{Type: domain.ListTypeTopRated})

	// Before the first fetch, page 1 must be requestable
	assert.True(t, p.HasMore())
	assert.Equal(t, 1, p.NextPage())

	p.Complete(makePage(1, 2, 10))
	assert.True(t, p.HasMore())

	p.Complete(makePage(2, 2, 11))
	assert.False(t, p.HasMore())
	assert.False(t, p.Begin())
}

func TestPagerInFlightGuard(t *testing.T) {
	p := New(domain.ListContext{Type: domain.ListTypePopular})

	require.True(t, p.Begin())
	assert.True(t, p.Loading())

	// Rapid scroll triggers while a fetch is pending coalesce to one
	assert.False(t, p.Begin())
	assert.False(t, p.Begin())

	p.Complete(makePage(1, 3, 10))
	assert.False(t, p.Loading())
	assert.True(t, p.Begin())
}

func TestPagerFailKeepsAccumulatedState(t *testing.T) {
	p := New(domain.ListContext{Type: domain.ListTypePopular})

	p.Complete(makePage(1, 3, 10, 11))

	require.True(t, p.Begin())
	p.Fail()

	assert.False(t, p.Loading())
	assert.Equal(t, []int{10, 11}, movieIDs(p.Movies()))
	// Retry requests the same page the failure lost
	assert.Equal(t, 2, p.NextPage())
	assert.True(t, p.Begin())
}

func TestPagerReset(t *testing.T) {
	p := New(domain.ListContext{Type: domain.ListTypePopular})
	p.Complete(makePage(1, 3, 10, 11))

	next := domain.ListContext{Query: "heat"}
	p.Reset(next)

	assert.Equal(t, next, p.Context())
	assert.Zero(t, p.Len())
	assert.Equal(t, 1, p.NextPage())
	assert.False(t, p.Loading())
}

func TestPagerResetAdvancesGeneration(t *testing.T) {
	first := domain.ListContext{Type: domain.ListTypePopular}
	p := New(first)
	p.Complete(makePage(1, 3, 10, 11))

	// Fetch for page 2 goes out, then the user switches away and back
	require.True(t, p.Begin())
	stale := p.Gen()

	p.Reset(domain.ListContext{Query: "heat"})
	p.Reset(first)

	// The context is equal again, but the in-flight fetch's generation
	// is not, so its result can be recognized as stale
	assert.True(t, first.Equal(p.Context()))
	assert.NotEqual(t, stale, p.Gen())
}
