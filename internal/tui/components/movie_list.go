package components

import (
	"fmt"
	"strings"

	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/pager"
	"github.com/mfinch/screenings/internal/tui/styles"
)

// MovieList is a scrollable column of movie summaries. It is also the
// per-surface rating state holder for whichever surface owns it: each
// list keeps its own local copy of "my rating" per movie, seeded from
// whatever its surface knows (nothing for catalog cards, the committed
// value for the ratings page) and updated only from a confirmed dialog
// result. It never re-fetches after a mutation.
type MovieList struct {
	title   string
	movies  []domain.Movie
	ratings map[int]domain.Rating // movieID -> my rating (absent = unrated)

	cursor  int
	offset  int
	width   int
	height  int
	focused bool

	filterIdx []int // indexes into movies when a local filter is active
	filtering bool
}

// NewMovieList creates an empty movie list
func NewMovieList(title string) MovieList {
	return MovieList{
		title:   title,
		ratings: make(map[int]domain.Rating),
	}
}

// Title returns the surface title
func (l MovieList) Title() string {
	return l.title
}

// SetMovies replaces the rendered sequence, clamping the cursor
func (l *MovieList) SetMovies(movies []domain.Movie) {
	l.movies = movies
	l.clampCursor()
}

// Clear resets movies, local ratings, and scroll position (used when the
// listing context changes)
func (l *MovieList) Clear() {
	l.movies = nil
	l.ratings = make(map[int]domain.Rating)
	l.cursor = 0
	l.offset = 0
	l.ClearFilter()
}

// ResetRatings replaces all local rating copies (ratings-page seed, where
// every listed movie carries its committed rating)
func (l *MovieList) ResetRatings(ratings map[int]domain.Rating) {
	l.ratings = ratings
	if l.ratings == nil {
		l.ratings = make(map[int]domain.Rating)
	}
}

// ApplyRating updates this surface's local copy from a confirmed dialog
// result; nil means the rating was removed
func (l *MovieList) ApplyRating(movieID int, r *domain.Rating) {
	if r == nil {
		delete(l.ratings, movieID)
		return
	}
	l.ratings[movieID] = *r
}

// MyRating returns this surface's local copy for a movie
func (l *MovieList) MyRating(movieID int) *domain.Rating {
	if r, ok := l.ratings[movieID]; ok {
		return &r
	}
	return nil
}

// SetSize updates the component dimensions
func (l *MovieList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.clampScroll()
}

// SetFocused toggles the focus highlight
func (l *MovieList) SetFocused(focused bool) {
	l.focused = focused
}

// ApplyFilter restricts rendering to the given source indexes
func (l *MovieList) ApplyFilter(indexes []int) {
	l.filterIdx = indexes
	l.filtering = true
	l.cursor = 0
	l.offset = 0
}

// ClearFilter removes any active local filter
func (l *MovieList) ClearFilter() {
	l.filterIdx = nil
	l.filtering = false
	l.clampCursor()
}

// Filtering reports whether a local filter is active
func (l MovieList) Filtering() bool {
	return l.filtering
}

// visible returns the indexes currently rendered, in order
func (l MovieList) visible() []int {
	if l.filtering {
		return l.filterIdx
	}
	indexes := make([]int, len(l.movies))
	for i := range l.movies {
		indexes[i] = i
	}
	return indexes
}

// Len returns the rendered row count
func (l MovieList) Len() int {
	if l.filtering {
		return len(l.filterIdx)
	}
	return len(l.movies)
}

// Selected returns the movie under the cursor
func (l MovieList) Selected() *domain.Movie {
	rows := l.visible()
	if l.cursor < 0 || l.cursor >= len(rows) {
		return nil
	}
	return &l.movies[rows[l.cursor]]
}

// CursorUp moves the selection up one row
func (l *MovieList) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.clampScroll()
}

// CursorDown moves the selection down one row
func (l *MovieList) CursorDown() {
	if l.cursor < l.Len()-1 {
		l.cursor++
	}
	l.clampScroll()
}

// Metrics captures the scroll state for the next-page predicate. The
// trigger is suppressed while a local filter narrows the view, since the
// cursor position no longer reflects the accumulated sequence.
func (l MovieList) Metrics(threshold int) pager.ScrollMetrics {
	if l.filtering {
		return pager.ScrollMetrics{}
	}
	return pager.ScrollMetrics{
		Cursor:    l.cursor,
		ItemCount: len(l.movies),
		Threshold: threshold,
	}
}

func (l *MovieList) clampCursor() {
	if l.cursor >= l.Len() {
		l.cursor = l.Len() - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampScroll()
}

func (l *MovieList) clampScroll() {
	rows := l.rowsVisible()
	if rows <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// rowsVisible returns how many movie rows fit (minus border and header)
func (l MovieList) rowsVisible() int {
	return l.height - 4
}

// View renders the list column
func (l MovieList) View() string {
	var b strings.Builder

	header := styles.TitleStyle.Render(l.title)
	if n := l.Len(); n > 0 {
		header += styles.DimStyle.Render(fmt.Sprintf("  %d", n))
	}
	b.WriteString(header)
	b.WriteString("\n")

	rows := l.visible()
	visibleRows := l.rowsVisible()
	end := l.offset + visibleRows
	if end > len(rows) {
		end = len(rows)
	}

	if len(rows) == 0 {
		b.WriteString(styles.DimStyle.Render("  No movies"))
	}

	innerWidth := l.width - 4
	if innerWidth < 10 {
		innerWidth = 10
	}

	for i := l.offset; i < end; i++ {
		m := l.movies[rows[i]]
		line := l.renderRow(m, innerWidth)
		if i == l.cursor && l.focused {
			line = styles.HighlightStyle.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	border := styles.InactiveBorder
	if l.focused {
		border = styles.ActiveBorder
	}

	return border.Width(l.width - 2).Height(l.height - 2).Render(b.String())
}

// renderRow renders one movie row: title, year, community score, and this
// surface's copy of my rating when one is held
func (l MovieList) renderRow(m domain.Movie, width int) string {
	score := fmt.Sprintf("%.1f", m.VoteAverage)

	mine := ""
	if r, ok := l.ratings[m.ID]; ok {
		mine = " " + styles.StarStyle.Render(r.Stars())
	}

	title := m.DisplayTitle()
	suffixLen := len(score) + 1
	if maxTitle := width - suffixLen; len(title) > maxTitle && maxTitle > 3 {
		title = title[:maxTitle-1] + "…"
	}

	return fmt.Sprintf("%s %s%s", styles.Pad(title, width-suffixLen), styles.DimStyle.Render(score), mine)
}
