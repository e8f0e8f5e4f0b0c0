// Package pager holds the client-side accumulation state for paginated
// movie listings. Each listing context (catalog list type + genre filter,
// a search query, or the ratings page) owns one independent pager; pages
// are accumulated in fetch order with no client-side re-sort.
package pager

import "github.com/mfinch/screenings/internal/domain"

// Pager accumulates movie summaries across successive page fetches for
// one listing context. It is confined to the UI event loop and needs no
// locking.
type Pager struct {
	ctx        domain.ListContext
	gen        int // bumped on every Reset; stale fetch results carry an older value
	movies     []domain.Movie
	lastPage   int
	totalPages int
	inFlight   bool
}

// New creates a pager for a listing context
func New(ctx domain.ListContext) *Pager {
	return &Pager{ctx: ctx}
}

// Context returns the listing context this pager accumulates for
func (p *Pager) Context() domain.ListContext {
	return p.ctx
}

// Reset discards all accumulated movies and restarts pagination at page 1
// for a new listing context. It advances the generation so any in-flight
// fetch started before the reset can be recognized as stale and dropped,
// even when the user switches away and back to an equal context before
// the old result lands.
func (p *Pager) Reset(ctx domain.ListContext) {
	p.ctx = ctx
	p.gen++
	p.movies = nil
	p.lastPage = 0
	p.totalPages = 0
	p.inFlight = false
}

// Gen returns the current fetch generation. Callers stamp each fetch
// with it and compare on completion; a mismatch means the pager was
// reset while the fetch was in flight.
func (p *Pager) Gen() int {
	return p.gen
}

// NextPage returns the page number the next fetch should request
func (p *Pager) NextPage() int {
	return p.lastPage + 1
}

// HasMore reports whether pages beyond the last fetched one exist.
// Before the first fetch it is true so page 1 gets requested.
func (p *Pager) HasMore() bool {
	return p.lastPage == 0 || p.lastPage < p.totalPages
}

// Loading reports whether a fetch is currently in flight
func (p *Pager) Loading() bool {
	return p.inFlight
}

// Begin marks a fetch as in flight. It returns false when a fetch is
// already pending for this context or no further pages exist; callers
// treat that as a no-op, which coalesces rapid scroll triggers.
func (p *Pager) Begin() bool {
	if p.inFlight || !p.HasMore() {
		return false
	}
	p.inFlight = true
	return true
}

// Complete applies a fetched page and clears the in-flight flag. Page 1
// replaces the accumulated sequence; later pages append in fetch order.
func (p *Pager) Complete(page *domain.Page) {
	p.inFlight = false
	if page.Number <= 1 {
		p.movies = append([]domain.Movie(nil), page.Results...)
	} else {
		p.movies = append(p.movies, page.Results...)
	}
	p.lastPage = page.Number
	p.totalPages = page.TotalPages
}

// Fail clears the in-flight flag after a failed fetch, keeping the
// last-known-good accumulated state. A resolved failure never leaves the
// pager stuck loading.
func (p *Pager) Fail() {
	p.inFlight = false
}

// Movies returns the accumulated sequence in fetch order
func (p *Pager) Movies() []domain.Movie {
	return p.movies
}

// Len returns the accumulated movie count
func (p *Pager) Len() int {
	return len(p.movies)
}
