package tmdb

import "github.com/mfinch/screenings/internal/domain"

// Mapping from TMDB wire types to domain entities

func mapMovie(dto movieDTO) domain.Movie {
	return domain.Movie{
		ID:          dto.ID,
		Title:       dto.Title,
		Overview:    dto.Overview,
		ReleaseDate: dto.ReleaseDate,
		VoteAverage: dto.VoteAverage,
		PosterPath:  dto.PosterPath,
		GenreIDs:    dto.GenreIDs,
	}
}

func mapMovies(dtos []movieDTO) []domain.Movie {
	movies := make([]domain.Movie, len(dtos))
	for i, dto := range dtos {
		movies[i] = mapMovie(dto)
	}
	return movies
}

func mapPage(resp pageResponse) *domain.Page {
	return &domain.Page{
		Number:       resp.Page,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
		Results:      mapMovies(resp.Results),
	}
}

func mapRatedPage(resp ratedPageResponse) *domain.RatedPage {
	results := make([]domain.RatedMovie, len(resp.Results))
	for i, dto := range resp.Results {
		results[i] = domain.RatedMovie{
			Movie:  mapMovie(dto.movieDTO),
			Rating: domain.RatingFromServiceScale(dto.Rating),
		}
	}
	return &domain.RatedPage{
		Number:       resp.Page,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
		Results:      results,
	}
}

func mapGenreTable(dtos []genreDTO) domain.GenreTable {
	table := make(domain.GenreTable, len(dtos))
	for _, dto := range dtos {
		table[dto.ID] = domain.Genre{ID: dto.ID, Name: dto.Name}
	}
	return table
}

func mapMovieDetails(dto movieDetailsDTO) *domain.MovieDetails {
	details := &domain.MovieDetails{
		Movie:    mapMovie(dto.movieDTO),
		Runtime:  dto.Runtime,
		Homepage: dto.Homepage,
		IMDBID:   dto.IMDBID,
	}

	details.Genres = make([]domain.Genre, len(dto.Genres))
	for i, g := range dto.Genres {
		details.Genres[i] = domain.Genre{ID: g.ID, Name: g.Name}
	}

	details.Cast = make([]domain.CastMember, len(dto.Credits.Cast))
	for i, c := range dto.Credits.Cast {
		details.Cast[i] = domain.CastMember{ID: c.ID, Name: c.Name, Character: c.Character}
	}

	details.Crew = make([]domain.CrewMember, len(dto.Credits.Crew))
	for i, c := range dto.Credits.Crew {
		details.Crew[i] = domain.CrewMember{ID: c.ID, Name: c.Name, Job: c.Job}
	}

	details.Reviews = make([]domain.Review, len(dto.Reviews.Results))
	for i, r := range dto.Reviews.Results {
		details.Reviews[i] = domain.Review{ID: r.ID, Author: r.Author, Content: r.Content, CreatedAt: r.CreatedAt}
	}

	details.Recommendations = mapMovies(dto.Recommendations.Results)

	return details
}

func mapAccountRating(dto accountStatesDTO) *domain.Rating {
	if !dto.Rated.Present {
		return nil
	}
	r := domain.RatingFromServiceScale(dto.Rated.Value)
	return &r
}
