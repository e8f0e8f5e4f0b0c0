package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/mfinch/screenings/internal/domain"
)

// SearchRemote is the slice of the movie service search needs
type SearchRemote interface {
	MovieSuggestions(ctx context.Context, query string) ([]domain.Movie, error)
}

// SearchService provides remote search suggestions and local fuzzy
// filtering over already-accumulated lists
type SearchService struct {
	remote SearchRemote
	logger *slog.Logger
}

// NewSearchService creates a search service
func NewSearchService(remote SearchRemote, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{remote: remote, logger: logger}
}

// Suggestions fetches first-page results for the suggestion dropdown and
// ranks them locally so near-exact title matches surface first
func (s *SearchService) Suggestions(ctx context.Context, query string) ([]domain.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	movies, err := s.remote.MovieSuggestions(ctx, query)
	if err != nil {
		return nil, err
	}

	ranked := rankSuggestions(movies, query)
	s.logger.Debug("suggestions", "query", query, "results", len(ranked))
	return ranked, nil
}

// rankSuggestions orders remote results by local match quality
// (lower score = better)
func rankSuggestions(movies []domain.Movie, query string) []domain.Movie {
	if len(movies) == 0 {
		return movies
	}

	query = strings.ToLower(query)

	type scored struct {
		movie domain.Movie
		score int
	}

	ranked := make([]scored, len(movies))
	for i, m := range movies {
		ranked[i] = scored{movie: m, score: suggestionScore(strings.ToLower(m.Title), query)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score < ranked[j].score
	})

	results := make([]domain.Movie, len(ranked))
	for i, r := range ranked {
		results[i] = r.movie
	}
	return results
}

func suggestionScore(title, query string) int {
	switch {
	case title == query:
		return 0
	case strings.HasPrefix(title, query):
		return 10
	case strings.Contains(title, query):
		return 50
	}
	return 100 + lfuzzy.LevenshteinDistance(query, title)
}

// FilterMovies fuzzy-filters an accumulated movie list by title,
// returning indexes into the source slice in match order. An empty query
// returns nil (no filter active).
func FilterMovies(query string, movies []domain.Movie) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = strings.ToLower(m.Title)
	}

	matches := fuzzy.Find(strings.ToLower(query), titles)

	indexes := make([]int, len(matches))
	for i, match := range matches {
		indexes[i] = match.Index
	}
	return indexes
}
