package components

import (
	"sort"
	"strings"

	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/tui/styles"
)

// SidebarEntry is one selectable row in the navigation sidebar
type SidebarEntry struct {
	Label    string
	ListType domain.ListType
	GenreID  int  // 0 = no genre filter
	Ratings  bool // true for the "My Ratings" page
	header   bool
}

// Sidebar selects the listing context: list type, genre filter, or the
// ratings page
type Sidebar struct {
	entries []SidebarEntry
	cursor  int
	active  int
	focused bool
	width   int
	height  int
}

// NewSidebar creates the sidebar with list types only; genres arrive
// after the reference table loads
func NewSidebar() Sidebar {
	s := Sidebar{cursor: 1, active: 1} // Popular
	s.entries = baseEntries()
	return s
}

func baseEntries() []SidebarEntry {
	return []SidebarEntry{
		{Label: "Browse", header: true},
		{Label: "Popular", ListType: domain.ListTypePopular},
		{Label: "Top Rated", ListType: domain.ListTypeTopRated},
		{Label: "My Ratings", Ratings: true},
	}
}

// SetGenres populates the genre filter section from the loaded reference
// table. Selecting a genre keeps the currently active list type.
func (s *Sidebar) SetGenres(table domain.GenreTable) {
	genres := make([]domain.Genre, 0, len(table))
	for _, g := range table {
		genres = append(genres, g)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].Name < genres[j].Name })

	entries := baseEntries()
	if len(genres) > 0 {
		entries = append(entries, SidebarEntry{Label: "Genres", header: true})
		for _, g := range genres {
			entries = append(entries, SidebarEntry{Label: g.Name, GenreID: g.ID})
		}
	}
	s.entries = entries
	if s.cursor >= len(entries) {
		s.cursor = 1
	}
}

// SetFocused toggles the focus highlight
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// SetSize updates the component dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// CursorUp moves the selection up, skipping headers
func (s *Sidebar) CursorUp() {
	for i := s.cursor - 1; i >= 0; i-- {
		if !s.entries[i].header {
			s.cursor = i
			return
		}
	}
}

// CursorDown moves the selection down, skipping headers
func (s *Sidebar) CursorDown() {
	for i := s.cursor + 1; i < len(s.entries); i++ {
		if !s.entries[i].header {
			s.cursor = i
			return
		}
	}
}

// Selected returns the entry under the cursor
func (s Sidebar) Selected() *SidebarEntry {
	if s.cursor < 0 || s.cursor >= len(s.entries) {
		return nil
	}
	e := s.entries[s.cursor]
	if e.header {
		return nil
	}
	return &e
}

// Activate marks the cursor entry as the active context
func (s *Sidebar) Activate() {
	s.active = s.cursor
}

// View renders the sidebar
func (s Sidebar) View() string {
	var lines []string

	maxRows := s.height - 2
	for i, e := range s.entries {
		if maxRows > 0 && i >= maxRows {
			break
		}
		switch {
		case e.header:
			lines = append(lines, styles.DimStyle.Render(e.Label))
		case i == s.cursor && s.focused:
			lines = append(lines, styles.HighlightStyle.Render(styles.Pad(e.Label, s.width-6)))
		case i == s.active:
			lines = append(lines, styles.AccentStyle.Render("  "+e.Label))
		default:
			lines = append(lines, "  "+e.Label)
		}
	}

	border := styles.InactiveBorder
	if s.focused {
		border = styles.ActiveBorder
	}

	return border.Width(s.width - 2).Height(s.height - 2).Render(strings.Join(lines, "\n"))
}
