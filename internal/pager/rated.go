package pager

import "github.com/mfinch/screenings/internal/domain"

// RatedList accumulates the user's rated movies. Unlike the catalog
// pager, list membership is defined by "has a committed rating": a
// successful clear removes the movie immediately, and re-rating an
// already-listed movie updates its entry in place.
type RatedList struct {
	movies     []domain.RatedMovie
	gen        int
	lastPage   int
	totalPages int
	inFlight   bool
}

// NewRatedList creates an empty rated-movies accumulator
func NewRatedList() *RatedList {
	return &RatedList{}
}

// Reset discards accumulated movies and restarts at page 1. It advances
// the generation so a fetch started before the reset is dropped on
// arrival instead of landing on top of the fresh sequence.
func (l *RatedList) Reset() {
	l.gen++
	l.movies = nil
	l.lastPage = 0
	l.totalPages = 0
	l.inFlight = false
}

// Gen returns the current fetch generation
func (l *RatedList) Gen() int {
	return l.gen
}

// NextPage returns the page number the next fetch should request
func (l *RatedList) NextPage() int {
	return l.lastPage + 1
}

// HasMore reports whether pages beyond the last fetched one exist
func (l *RatedList) HasMore() bool {
	return l.lastPage == 0 || l.lastPage < l.totalPages
}

// Loading reports whether a fetch is currently in flight
func (l *RatedList) Loading() bool {
	return l.inFlight
}

// Begin marks a fetch as in flight; false means the trigger is a no-op
func (l *RatedList) Begin() bool {
	if l.inFlight || !l.HasMore() {
		return false
	}
	l.inFlight = true
	return true
}

// Complete applies a fetched page, deduplicating by movie id so a movie
// appears at most once even if the remote shifts page boundaries between
// fetches
func (l *RatedList) Complete(page *domain.RatedPage) {
	l.inFlight = false
	if page.Number <= 1 {
		l.movies = nil
	}
	seen := make(map[int]bool, len(l.movies))
	for _, m := range l.movies {
		seen[m.ID] = true
	}
	for _, m := range page.Results {
		if !seen[m.ID] {
			l.movies = append(l.movies, m)
		}
	}
	l.lastPage = page.Number
	l.totalPages = page.TotalPages
}

// Fail clears the in-flight flag after a failed fetch
func (l *RatedList) Fail() {
	l.inFlight = false
}

// Remove drops a movie whose rating was cleared. Membership here IS
// "has a rating", so removal follows a confirmed clear immediately.
func (l *RatedList) Remove(movieID int) {
	for i, m := range l.movies {
		if m.ID == movieID {
			l.movies = append(l.movies[:i], l.movies[i+1:]...)
			return
		}
	}
}

// UpdateRating replaces the committed rating on an already-listed movie
// after a confirmed re-rate. Movies not in the list are left alone; they
// join it on the next page-1 fetch.
func (l *RatedList) UpdateRating(movieID int, r domain.Rating) {
	for i := range l.movies {
		if l.movies[i].ID == movieID {
			l.movies[i].Rating = r
			return
		}
	}
}

// Rating returns the committed rating for a listed movie
func (l *RatedList) Rating(movieID int) (domain.Rating, bool) {
	for _, m := range l.movies {
		if m.ID == movieID {
			return m.Rating, true
		}
	}
	return domain.Rating{}, false
}

// Movies returns the accumulated sequence in fetch order
func (l *RatedList) Movies() []domain.RatedMovie {
	return l.movies
}

// Len returns the accumulated movie count
func (l *RatedList) Len() int {
	return len(l.movies)
}
