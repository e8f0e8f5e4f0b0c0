package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/rating"
	"github.com/mfinch/screenings/internal/service"
)

// Command factories for async operations. Every remote call carries a
// timeout so a hung request still resolves and the surface that issued
// it leaves its loading state.

const (
	fetchTimeout    = 30 * time.Second
	mutationTimeout = 10 * time.Second
)

// LoadGenresCmd loads the genre reference table
func LoadGenresCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		table, err := svc.Genres(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading genres"}
		}
		return GenresLoadedMsg{Table: table}
	}
}

// FetchCatalogPageCmd fetches one page for a listing context. The fetch
// generation stamps the result so the model can drop it if the stream
// was reset while the request was in flight.
func FetchCatalogPageCmd(svc *service.CatalogService, listCtx domain.ListContext, gen, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		result, err := svc.FetchPage(ctx, listCtx, page)
		if err != nil {
			return CatalogPageFailedMsg{Ctx: listCtx, Gen: gen, Err: err}
		}
		return CatalogPageMsg{Ctx: listCtx, Gen: gen, Page: result}
	}
}

// FetchRatedPageCmd fetches one page of the user's rated movies
func FetchRatedPageCmd(svc *service.RatingsService, gen, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		result, err := svc.FetchPage(ctx, page)
		if err != nil {
			return RatedPageFailedMsg{Gen: gen, Err: err}
		}
		return RatedPageMsg{Gen: gen, Page: result}
	}
}

// FetchDetailCmd fetches the full record plus account rating state
func FetchDetailCmd(svc *service.CatalogService, movieID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		view, err := svc.FetchDetail(ctx, movieID)
		if err != nil {
			return DetailFailedMsg{MovieID: movieID, Err: err}
		}
		return DetailLoadedMsg{MovieID: movieID, View: view}
	}
}

// SubmitRatingCmd commits a rating through the mutation gateway
func SubmitRatingCmd(gw *rating.Gateway, movieID int, value domain.Rating) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
		defer cancel()

		if err := gw.Submit(ctx, movieID, value); err != nil {
			return RatingFailedMsg{MovieID: movieID, Err: err}
		}
		return RatingSavedMsg{MovieID: movieID, Value: value}
	}
}

// ClearRatingCmd removes a rating through the mutation gateway
func ClearRatingCmd(gw *rating.Gateway, movieID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
		defer cancel()

		if err := gw.Clear(ctx, movieID); err != nil {
			return RatingFailedMsg{MovieID: movieID, Err: err}
		}
		return RatingClearedMsg{MovieID: movieID}
	}
}

// SuggestDebounceCmd fires the debounce tick for an armed suggestion
// dispatch
func SuggestDebounceCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SuggestDebounceMsg{Gen: gen}
	})
}

// FetchSuggestionsCmd fetches ranked search suggestions
func FetchSuggestionsCmd(svc *service.SearchService, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		movies, err := svc.Suggestions(ctx, query)
		if err != nil {
			// Suggestions are best-effort; an empty dropdown is the
			// failure surface
			return SuggestionsMsg{Query: query, Movies: nil}
		}
		return SuggestionsMsg{Query: query, Movies: movies}
	}
}

// SignOutCmd tears down the session
func SignOutCmd(svc *service.SessionService) tea.Cmd {
	return func() tea.Msg {
		return SignedOutMsg{Err: svc.SignOut()}
	}
}

// ClearStatusCmd clears the status bar after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
