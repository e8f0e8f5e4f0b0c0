package domain

import (
	"fmt"
	"strings"
)

// ListType selects the discover ordering for catalog browsing
type ListType string

const (
	ListTypePopular  ListType = "popular"
	ListTypeTopRated ListType = "top_rated"
)

// Genre is an entry in the global genre reference table
type Genre struct {
	ID   int
	Name string
}

// GenreTable resolves genre IDs carried by movie summaries.
// Loaded once per session; lookups on unknown IDs return ok=false.
type GenreTable map[int]Genre

// Resolve maps a list of genre IDs to their genre records, skipping unknowns
func (t GenreTable) Resolve(ids []int) []Genre {
	genres := make([]Genre, 0, len(ids))
	for _, id := range ids {
		if g, ok := t[id]; ok {
			genres = append(genres, g)
		}
	}
	return genres
}

// Movie is the lightweight summary record used in list contexts.
// Immutable once fetched; the rating layer does not own it.
type Movie struct {
	ID          int     // TMDB movie identifier
	Title       string  // Display title
	Overview    string  // Plot synopsis
	ReleaseDate string  // "2024-03-01" (may be empty)
	VoteAverage float64 // Community score, 0-10 scale
	PosterPath  string  // Poster image reference (may be empty)
	GenreIDs    []int   // Unresolved genre references
}

// Year returns the release year portion of the release date
func (m Movie) Year() string {
	if len(m.ReleaseDate) >= 4 {
		return m.ReleaseDate[:4]
	}
	return ""
}

// DisplayTitle returns "Title (Year)" when the year is known
func (m Movie) DisplayTitle() string {
	if y := m.Year(); y != "" {
		return fmt.Sprintf("%s (%s)", m.Title, y)
	}
	return m.Title
}

// CastMember is a credited actor on a movie detail record
type CastMember struct {
	ID        int
	Name      string
	Character string
}

// CrewMember is a credited crew role on a movie detail record
type CrewMember struct {
	ID   int
	Name string
	Job  string
}

// Review is a community review attached to a movie detail record
type Review struct {
	ID        string
	Author    string
	Content   string
	CreatedAt string
}

// MovieDetails is the full movie record for the detail surface.
// Immutable once fetched.
type MovieDetails struct {
	Movie
	Runtime         int // minutes, 0 if unknown
	Homepage        string
	IMDBID          string
	Genres          []Genre // resolved, unlike Movie.GenreIDs
	Cast            []CastMember
	Crew            []CrewMember
	Reviews         []Review
	Recommendations []Movie
}

// Directors returns the names of crew members credited as Director
func (d MovieDetails) Directors() []string {
	var names []string
	for _, c := range d.Crew {
		if c.Job == "Director" {
			names = append(names, c.Name)
		}
	}
	return names
}

// FormattedRuntime returns the runtime as "2h 14m"
func (d MovieDetails) FormattedRuntime() string {
	if d.Runtime <= 0 {
		return ""
	}
	h := d.Runtime / 60
	m := d.Runtime % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// GenreNames returns the resolved genre names joined for display
func (d MovieDetails) GenreNames() string {
	names := make([]string, len(d.Genres))
	for i, g := range d.Genres {
		names[i] = g.Name
	}
	return strings.Join(names, ", ")
}
