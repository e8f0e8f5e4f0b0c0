package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/log"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", 0, log.NullLogger())
}

func TestDiscoverMoviesQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"page":1,"total_pages":10,"total_results":200,"results":[{"id":550,"title":"Fight Club"}]}`))
	})

	page, err := client.DiscoverMovies(context.Background(), domain.ListTypeTopRated, 18, 2)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, []string{"vote_average.desc"}, gotQuery["sort_by"])
	assert.Equal(t, []string{"100"}, gotQuery["vote_count.gte"])
	assert.Equal(t, []string{"18"}, gotQuery["with_genres"])
	assert.Equal(t, []string{"2"}, gotQuery["page"])

	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 10, page.TotalPages)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Fight Club", page.Results[0].Title)
}

func TestDiscoverMoviesPopularSort(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"page":1,"total_pages":1,"total_results":0,"results":[]}`))
	})

	_, err := client.DiscoverMovies(context.Background(), domain.ListTypePopular, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"popularity.desc"}, gotQuery["sort_by"])
	assert.NotContains(t, gotQuery, "vote_count.gte")
	assert.NotContains(t, gotQuery, "with_genres")
}

func TestAccountRatingUnrated(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// TMDB sends a boolean false when the movie is unrated
		w.Write([]byte(`{"id":550,"rated":false}`))
	})

	r, err := client.AccountRating(context.Background(), 550, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestAccountRatingRated(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":550,"rated":{"value":8.0}}`))
	})

	r, err := client.AccountRating(context.Background(), 550, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, r)
	// Service scale halves to the user-facing scale
	assert.Equal(t, 4.0, r.Value)
}

func TestAccountRatingRequiresSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("remote must not be contacted without a session")
	})

	_, err := client.AccountRating(context.Background(), 550, "")
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
}

func TestRatedMoviesMapping(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"page":1,"total_pages":2,"total_results":21,"results":[
			{"id":550,"title":"Fight Club","rating":9.0},
			{"id":603,"title":"The Matrix","rating":7.0}
		]}`))
	})

	page, err := client.RatedMovies(context.Background(), "sess-1", 1)
	require.NoError(t, err)

	assert.Equal(t, "/account/0/rated/movies", gotPath)
	require.Len(t, page.Results, 2)
	assert.Equal(t, 4.5, page.Results[0].Rating.Value)
	assert.Equal(t, 3.5, page.Results[1].Rating.Value)
	assert.Equal(t, 2, page.TotalPages)
}

func TestRateMoviePayload(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]float64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"status_code":1}`))
	})

	err := client.RateMovie(context.Background(), 550, "sess-1", 8.0)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/movie/550/rating", gotPath)
	assert.Equal(t, 8.0, gotBody["value"])
}

func TestDeleteRating(t *testing.T) {
	var gotMethod string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Write([]byte(`{"success":true,"status_code":13}`))
	})

	require.NoError(t, client.DeleteRating(context.Background(), 550, "sess-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, domain.ErrAuthFailed},
		{"not found", http.StatusNotFound, domain.ErrMovieNotFound},
		{"client error", http.StatusUnprocessableEntity, domain.ErrRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"status_message":"nope"}`))
			})

			_, err := client.DiscoverMovies(context.Background(), domain.ListTypePopular, 0, 1)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	client := NewClient(srv.URL, "test-key", 0, log.NullLogger())

	_, err := client.DiscoverMovies(context.Background(), domain.ListTypePopular, 0, 1)
	assert.ErrorIs(t, err, domain.ErrServiceUnreachable)
}

func TestMovieDetailsAppendToResponse(t *testing.T) {
	var gotAppend string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAppend = r.URL.Query().Get("append_to_response")
		w.Write([]byte(`{
			"id":550,"title":"Fight Club","runtime":139,
			"genres":[{"id":18,"name":"Drama"}],
			"credits":{"cast":[{"id":819,"name":"Edward Norton","character":"The Narrator","order":0}],
				"crew":[{"id":7467,"name":"David Fincher","job":"Director"}]},
			"reviews":{"results":[{"id":"r1","author":"goddard","content":"ok"}]},
			"recommendations":{"results":[{"id":680,"title":"Pulp Fiction"}]}
		}`))
	})

	details, err := client.MovieDetails(context.Background(), 550)
	require.NoError(t, err)

	assert.Equal(t, "credits,reviews,recommendations", gotAppend)
	assert.Equal(t, 139, details.Runtime)
	require.Len(t, details.Crew, 1)
	assert.Equal(t, []string{"David Fincher"}, details.Directors())
	require.Len(t, details.Reviews, 1)
	require.Len(t, details.Recommendations, 1)
	assert.Equal(t, "Pulp Fiction", details.Recommendations[0].Title)
}

func TestSignInHandshake(t *testing.T) {
	var paths []string
	var loginBody map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/authentication/token/new":
			w.Write([]byte(`{"success":true,"request_token":"tok-1"}`))
		case "/authentication/token/validate_with_login":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&loginBody))
			w.Write([]byte(`{"success":true,"request_token":"tok-1"}`))
		case "/authentication/session/new":
			w.Write([]byte(`{"success":true,"session_id":"sess-9"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	sessionID, err := client.SignIn(context.Background(), "franny", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "sess-9", sessionID)
	assert.Equal(t, []string{
		"/authentication/token/new",
		"/authentication/token/validate_with_login",
		"/authentication/session/new",
	}, paths)
	assert.Equal(t, "franny", loginBody["username"])
	assert.Equal(t, "tok-1", loginBody["request_token"])
}
