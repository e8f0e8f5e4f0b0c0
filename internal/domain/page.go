package domain

// Page is one page of an ordered movie listing as reported by the remote
// service. Order within Results is the service's relevance/popularity
// ordering and is preserved as-is.
type Page struct {
	Number       int
	TotalPages   int
	TotalResults int
	Results      []Movie
}

// RatedPage is one page of the user's rated-movies listing
type RatedPage struct {
	Number       int
	TotalPages   int
	TotalResults int
	Results      []RatedMovie
}

// ListContext identifies one independent pagination stream: a catalog
// listing (list type + optional genre filter) or a search query. The
// ratings page is its own stream and carries no ListContext.
type ListContext struct {
	Type    ListType
	GenreID int    // 0 = no genre filter
	Query   string // non-empty for search contexts
}

func (c ListContext) Equal(other ListContext) bool {
	return c == other
}
