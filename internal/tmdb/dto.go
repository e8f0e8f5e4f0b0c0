package tmdb

import "encoding/json"

// Wire types for TMDB v3 API responses

type movieDTO struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	PosterPath  string  `json:"poster_path"`
	GenreIDs    []int   `json:"genre_ids"`
}

type pageResponse struct {
	Page         int        `json:"page"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
	Results      []movieDTO `json:"results"`
}

type ratedMovieDTO struct {
	movieDTO
	Rating float64 `json:"rating"` // user's rating, service 1-10 scale
}

type ratedPageResponse struct {
	Page         int             `json:"page"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
	Results      []ratedMovieDTO `json:"results"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genreListResponse struct {
	Genres []genreDTO `json:"genres"`
}

type castDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
}

type crewDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

type reviewDTO struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type movieDetailsDTO struct {
	movieDTO
	Runtime  int        `json:"runtime"`
	Homepage string     `json:"homepage"`
	IMDBID   string     `json:"imdb_id"`
	Genres   []genreDTO `json:"genres"`
	Credits  struct {
		Cast []castDTO `json:"cast"`
		Crew []crewDTO `json:"crew"`
	} `json:"credits"`
	Reviews struct {
		Results []reviewDTO `json:"results"`
	} `json:"reviews"`
	Recommendations struct {
		Results []movieDTO `json:"results"`
	} `json:"recommendations"`
}

// accountStatesDTO carries the per-movie account state; rated is either
// false or an object holding the value, so it needs a custom decode
type accountStatesDTO struct {
	ID    int        `json:"id"`
	Rated ratedField `json:"rated"`
}

type ratedField struct {
	Present bool
	Value   float64 // service 1-10 scale
}

func (r *ratedField) UnmarshalJSON(data []byte) error {
	// TMDB sends `"rated": false` for unrated movies and
	// `"rated": {"value": 8.0}` for rated ones
	if string(data) == "false" || string(data) == "null" {
		r.Present = false
		return nil
	}
	var obj struct {
		Value float64 `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.Present = true
	r.Value = obj.Value
	return nil
}

type rateRequest struct {
	Value float64 `json:"value"`
}
