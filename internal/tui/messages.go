package tui

import (
	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/service"
)

// Message types for the TUI

// ErrMsg represents an error with its originating operation
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// GenresLoadedMsg signals the genre reference table is ready
type GenresLoadedMsg struct {
	Table domain.GenreTable
}

// CatalogPageMsg carries a fetched catalog/search page together with the
// listing context and fetch generation it was issued for, so results
// from a superseded stream can be dropped on arrival
type CatalogPageMsg struct {
	Ctx  domain.ListContext
	Gen  int
	Page *domain.Page
}

// CatalogPageFailedMsg signals a failed page fetch for a context
type CatalogPageFailedMsg struct {
	Ctx domain.ListContext
	Gen int
	Err error
}

// RatedPageMsg carries a fetched rated-movies page
type RatedPageMsg struct {
	Gen  int
	Page *domain.RatedPage
}

// RatedPageFailedMsg signals a failed rated-movies fetch
type RatedPageFailedMsg struct {
	Gen int
	Err error
}

// DetailLoadedMsg carries a fetched movie detail view
type DetailLoadedMsg struct {
	MovieID int
	View    *service.MovieDetailView
}

// DetailFailedMsg signals a failed detail fetch
type DetailFailedMsg struct {
	MovieID int
	Err     error
}

// SuggestDebounceMsg fires when the suggestion debounce timer elapses;
// Gen identifies which armed dispatch it belongs to
type SuggestDebounceMsg struct {
	Gen int
}

// SuggestionsMsg carries fetched search suggestions
type SuggestionsMsg struct {
	Query  string
	Movies []domain.Movie
}

// RatingSavedMsg signals the gateway confirmed a rating submit
type RatingSavedMsg struct {
	MovieID int
	Value   domain.Rating
}

// RatingClearedMsg signals the gateway confirmed a rating clear
type RatingClearedMsg struct {
	MovieID int
}

// RatingFailedMsg signals a failed rating mutation; Err is the gateway's
// normalized MutationError
type RatingFailedMsg struct {
	MovieID int
	Err     error
}

// SignedOutMsg signals sign-out finished (Err non-nil if teardown failed)
type SignedOutMsg struct {
	Err error
}

// StatusMsg sets a temporary status bar message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
