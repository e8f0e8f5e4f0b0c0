package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mfinch/screenings/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "Screenings/1.0"

	// Top-rated listings exclude thinly voted movies
	topRatedMinVotes = 100
)

// Client is an HTTP client for the TMDB v3 API. Account-scoped methods
// take the session credential explicitly; the client itself holds no
// session state.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new TMDB API client
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated HTTP request and maps failure
// classes onto domain sentinel errors
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL = reqURL + "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("tmdb request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("tmdb request failed", "error", err)
		return nil, domain.ErrServiceUnreachable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrAuthFailed
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrMovieNotFound
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		c.logger.Error("tmdb request rejected", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrRejected, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		c.logger.Error("tmdb request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// DiscoverMovies fetches one catalog page for a list type and optional
// genre filter. Ordering follows the list type: popularity for popular,
// community score for top rated.
func (c *Client) DiscoverMovies(ctx context.Context, listType domain.ListType, genreID, page int) (*domain.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	if genreID > 0 {
		query.Set("with_genres", strconv.Itoa(genreID))
	}
	switch listType {
	case domain.ListTypeTopRated:
		query.Set("sort_by", "vote_average.desc")
		query.Set("vote_count.gte", strconv.Itoa(topRatedMinVotes))
	default:
		query.Set("sort_by", "popularity.desc")
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/discover/movie", query, nil)
	if err != nil {
		return nil, err
	}

	var resp pageResponse
	if err := c.parse(body, &resp); err != nil {
		return nil, err
	}
	return mapPage(resp), nil
}

// SearchMovies fetches one page of title search results
func (c *Client) SearchMovies(ctx context.Context, queryText string, page int) (*domain.Page, error) {
	query := url.Values{}
	query.Set("query", queryText)
	query.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, http.MethodGet, "/search/movie", query, nil)
	if err != nil {
		return nil, err
	}

	var resp pageResponse
	if err := c.parse(body, &resp); err != nil {
		return nil, err
	}
	return mapPage(resp), nil
}

// MovieSuggestions fetches first-page search results for suggestion
// dropdowns (adult titles excluded)
func (c *Client) MovieSuggestions(ctx context.Context, queryText string) ([]domain.Movie, error) {
	query := url.Values{}
	query.Set("query", queryText)
	query.Set("page", "1")
	query.Set("include_adult", "false")

	body, err := c.doRequest(ctx, http.MethodGet, "/search/movie", query, nil)
	if err != nil {
		return nil, err
	}

	var resp pageResponse
	if err := c.parse(body, &resp); err != nil {
		return nil, err
	}
	return mapMovies(resp.Results), nil
}

// Genres fetches the global genre reference table
func (c *Client) Genres(ctx context.Context) (domain.GenreTable, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/genre/movie/list", nil, nil)
	if err != nil {
		return nil, err
	}

	var resp genreListResponse
	if err := c.parse(body, &resp); err != nil {
		return nil, err
	}
	return mapGenreTable(resp.Genres), nil
}

// MovieDetails fetches the full movie record with credits, reviews, and
// recommendations appended in a single call
func (c *Client) MovieDetails(ctx context.Context, movieID int) (*domain.MovieDetails, error) {
	query := url.Values{}
	query.Set("append_to_response", "credits,reviews,recommendations")

	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/movie/%d", movieID), query, nil)
	if err != nil {
		return nil, err
	}

	var resp movieDetailsDTO
	if err := c.parse(body, &resp); err != nil {
		return nil, err
	}
	return mapMovieDetails(resp), nil
}

// AccountRating fetches the signed-in user's rating for one movie.
// Returns nil when the movie is unrated.
func (c *Client) AccountRating(ctx context.Context, movieID int, sessionID string) (*domain.Rating, error) {
	if sessionID == "" {
		return nil, domain.ErrNotSignedIn
	}
	query := url.Values{}
	query.Set("session_id", sessionID)

	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/movie/%d/account_states", movieID), query, nil)
	if err != nil {
		return nil, err
	}

	var resp accountStatesDTO
	if err := c.parse(body, &resp); err != nil {
		return nil, err
	}
	return mapAccountRating(resp), nil
}

// RatedMovies fetches one page of the user's rated movies, each carrying
// the committed rating value
func (c *Client) RatedMovies(ctx context.Context, sessionID string, page int) (*domain.RatedPage, error) {
	if sessionID == "" {
		return nil, domain.ErrNotSignedIn
	}
	query := url.Values{}
	query.Set("session_id", sessionID)
	query.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, http.MethodGet, "/account/0/rated/movies", query, nil)
	if err != nil {
		return nil, err
	}

	var resp ratedPageResponse
	if err := c.parse(body, &resp); err != nil {
		return nil, err
	}
	return mapRatedPage(resp), nil
}

// RateMovie submits a rating value on the service's 1-10 scale.
// Re-submitting the same value is safe.
func (c *Client) RateMovie(ctx context.Context, movieID int, sessionID string, serviceValue float64) error {
	if sessionID == "" {
		return domain.ErrNotSignedIn
	}
	query := url.Values{}
	query.Set("session_id", sessionID)

	payload := rateRequest{Value: serviceValue}
	_, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/movie/%d/rating", movieID), query, payload)
	return err
}

// DeleteRating removes the user's rating for a movie. Clearing an
// already-absent rating is safe.
func (c *Client) DeleteRating(ctx context.Context, movieID int, sessionID string) error {
	if sessionID == "" {
		return domain.ErrNotSignedIn
	}
	query := url.Values{}
	query.Set("session_id", sessionID)

	_, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/movie/%d/rating", movieID), query, nil)
	return err
}

// parse decodes a JSON response body
func (c *Client) parse(body []byte, dest any) error {
	if err := json.Unmarshal(body, dest); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
