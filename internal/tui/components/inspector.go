package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/tui/styles"
)

// Inspector is the movie detail surface (the hero pane). Like every
// surface it holds its own copy of "my rating", seeded from the
// account-state read that arrives with the detail record and updated only
// from a confirmed dialog result.
type Inspector struct {
	details  *domain.MovieDetails
	myRating *domain.Rating

	loading bool
	errMsg  string

	width      int
	height     int
	maxReviews int
}

// NewInspector creates an empty detail pane
func NewInspector(maxReviews int) Inspector {
	if maxReviews <= 0 {
		maxReviews = 3
	}
	return Inspector{maxReviews: maxReviews}
}

// SetSize updates the component dimensions
func (in *Inspector) SetSize(width, height int) {
	in.width = width
	in.height = height
}

// SetLoading puts the pane into its loading state
func (in *Inspector) SetLoading() {
	in.loading = true
	in.errMsg = ""
	in.details = nil
	in.myRating = nil
}

// SetDetails seeds the pane with a fetched detail record and the
// account's rating state for that movie
func (in *Inspector) SetDetails(details *domain.MovieDetails, myRating *domain.Rating) {
	in.details = details
	in.myRating = myRating
	in.loading = false
	in.errMsg = ""
}

// SetError replaces the content area with an error banner; no stale data
// renders alongside it
func (in *Inspector) SetError(msg string) {
	in.errMsg = msg
	in.loading = false
	in.details = nil
	in.myRating = nil
}

// Details returns the displayed record, nil when none is loaded
func (in Inspector) Details() *domain.MovieDetails {
	return in.details
}

// MyRating returns this surface's local rating copy
func (in Inspector) MyRating() *domain.Rating {
	return in.myRating
}

// ApplyRating updates the local copy from a confirmed dialog result;
// nil means removed
func (in *Inspector) ApplyRating(r *domain.Rating) {
	in.myRating = r
}

// View renders the detail pane
func (in Inspector) View() string {
	innerWidth := in.width - 6
	if innerWidth < 20 {
		innerWidth = 20
	}

	var b strings.Builder

	switch {
	case in.loading:
		b.WriteString(styles.DimStyle.Render("Loading..."))
	case in.errMsg != "":
		b.WriteString(styles.ErrorStyle.Render("Failed to load: " + in.errMsg))
	case in.details == nil:
		b.WriteString(styles.DimStyle.Render("Select a movie"))
	default:
		in.renderDetails(&b, innerWidth)
	}

	return styles.InactiveBorder.Width(in.width - 2).Height(in.height - 2).Render(b.String())
}

func (in Inspector) renderDetails(b *strings.Builder, width int) {
	d := in.details

	b.WriteString(styles.TitleStyle.Render(d.DisplayTitle()))
	b.WriteString("\n")

	var meta []string
	if rt := d.FormattedRuntime(); rt != "" {
		meta = append(meta, rt)
	}
	if g := d.GenreNames(); g != "" {
		meta = append(meta, g)
	}
	meta = append(meta, fmt.Sprintf("score %.1f", d.VoteAverage))
	b.WriteString(styles.SubtitleStyle.Render(strings.Join(meta, " · ")))
	b.WriteString("\n")

	if in.myRating != nil {
		b.WriteString(styles.StarStyle.Render(in.myRating.Stars()))
		b.WriteString(styles.AccentStyle.Render(fmt.Sprintf("  %s · Your rating", in.myRating)))
	} else {
		b.WriteString(styles.DimStyle.Render("Not rated · press r to rate"))
	}
	b.WriteString("\n\n")

	if d.Overview != "" {
		b.WriteString(wrap(d.Overview, width))
		b.WriteString("\n\n")
	}

	if dirs := d.Directors(); len(dirs) > 0 {
		b.WriteString(styles.SubtitleStyle.Render("Directed by "))
		b.WriteString(strings.Join(dirs, ", "))
		b.WriteString("\n")
	}

	if len(d.Cast) > 0 {
		n := len(d.Cast)
		if n > 5 {
			n = 5
		}
		names := make([]string, n)
		for i := 0; i < n; i++ {
			names[i] = d.Cast[i].Name
		}
		b.WriteString(styles.SubtitleStyle.Render("Starring "))
		b.WriteString(strings.Join(names, ", "))
		b.WriteString("\n")
	}

	if len(d.Reviews) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.TitleStyle.Render("Reviews"))
		b.WriteString("\n")
		n := len(d.Reviews)
		if n > in.maxReviews {
			n = in.maxReviews
		}
		for i := 0; i < n; i++ {
			r := d.Reviews[i]
			b.WriteString(styles.AccentStyle.Render(r.Author))
			b.WriteString("\n")
			b.WriteString(wrap(excerpt(r.Content, 200), width))
			b.WriteString("\n")
		}
	}

	if len(d.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.TitleStyle.Render("You might also like"))
		b.WriteString("\n")
		n := len(d.Recommendations)
		if n > 5 {
			n = 5
		}
		for i := 0; i < n; i++ {
			b.WriteString("  " + d.Recommendations[i].DisplayTitle())
			b.WriteString("\n")
		}
	}
}

// excerpt truncates review content at a rune boundary
func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

// wrap does simple word wrapping to the given width
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
