package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/tui/styles"
)

// Omnibar is the search modal: a text input with a debounce-fed
// suggestion dropdown. Committing the query (enter) opens a full search
// listing context; choosing a suggestion jumps straight to that movie.
type Omnibar struct {
	input       textinput.Model
	suggestions []domain.Movie
	cursor      int
	navigated   bool // user moved into the dropdown
	visible     bool
	loading     bool
	width       int
	prevQuery   string
}

// NewOmnibar creates a new search omnibar
func NewOmnibar() Omnibar {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return Omnibar{input: ti}
}

// Show makes the omnibar visible and focuses the input
func (o *Omnibar) Show() {
	o.visible = true
	o.input.Focus()
	o.input.SetValue("")
	o.suggestions = nil
	o.cursor = 0
	o.loading = false
	o.prevQuery = ""
}

// Hide hides the omnibar
func (o *Omnibar) Hide() {
	o.visible = false
	o.input.Blur()
	o.suggestions = nil
	o.loading = false
}

// IsVisible returns true if the omnibar is visible
func (o Omnibar) IsVisible() bool {
	return o.visible
}

// Query returns the current search query
func (o Omnibar) Query() string {
	return strings.TrimSpace(o.input.Value())
}

// QueryChanged reports whether the query changed since the last check
func (o *Omnibar) QueryChanged() bool {
	current := o.input.Value()
	if current != o.prevQuery {
		o.prevQuery = current
		return true
	}
	return false
}

// SetSuggestions sets the suggestion dropdown contents
func (o *Omnibar) SetSuggestions(suggestions []domain.Movie) {
	o.suggestions = suggestions
	o.cursor = 0
	o.navigated = false
	o.loading = false
}

// SetLoading marks a suggestion fetch as pending
func (o *Omnibar) SetLoading(loading bool) {
	o.loading = loading
}

// Selected returns the highlighted suggestion, or nil when the user has
// not moved into the dropdown (enter then commits the full search)
func (o Omnibar) Selected() *domain.Movie {
	if !o.navigated || o.cursor < 0 || o.cursor >= len(o.suggestions) {
		return nil
	}
	return &o.suggestions[o.cursor]
}

// SetSize updates the component dimensions
func (o *Omnibar) SetSize(width int) {
	o.width = width
	o.input.Width = width - 10
}

// Update handles input events
func (o Omnibar) Update(msg tea.Msg) (Omnibar, tea.Cmd) {
	if !o.visible {
		return o, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "down", "ctrl+n":
			if len(o.suggestions) > 0 {
				o.navigated = true
				if o.cursor < len(o.suggestions)-1 {
					o.cursor++
				}
			}
			return o, nil
		case "up", "ctrl+p":
			o.navigated = true
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

// View renders the omnibar with its suggestion dropdown
func (o Omnibar) View() string {
	if !o.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(o.input.View())

	if o.loading {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("  searching..."))
	}

	for i, s := range o.suggestions {
		b.WriteString("\n")
		line := fmt.Sprintf("%s %s", s.DisplayTitle(), styles.DimStyle.Render(fmt.Sprintf("%.1f", s.VoteAverage)))
		if o.navigated && i == o.cursor {
			line = styles.HighlightStyle.Render(s.DisplayTitle())
		}
		b.WriteString("  " + line)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Teal).
		Padding(0, 1).
		Render(b.String())
}
