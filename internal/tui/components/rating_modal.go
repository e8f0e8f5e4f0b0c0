package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/tui/styles"
)

// RatingAction is the user's confirmed choice in the rating modal
type RatingAction struct {
	MovieID int
	Remove  bool          // true: clear the rating
	Value   domain.Rating // submit value when Remove is false
}

// RatingModal captures a pending rating value before commit. It is modal
// and single-instance, which serializes mutations per movie: while a
// commit is in flight the modal consumes all input, and it never reports
// a new value to the caller before the gateway confirms success. On
// failure it stays open with the pending value intact.
type RatingModal struct {
	visible    bool
	movieID    int
	movieTitle string
	committed  *domain.Rating // rating at open time, nil = unrated
	pending    *domain.Rating // candidate value, nil = unset
	saving     bool
	errMsg     string
}

// NewRatingModal creates a new rating modal
func NewRatingModal() RatingModal {
	return RatingModal{}
}

// Open displays the modal seeded with the movie's current rating, if any
func (m *RatingModal) Open(movieID int, title string, current *domain.Rating) {
	m.visible = true
	m.movieID = movieID
	m.movieTitle = title
	m.committed = current
	m.pending = nil
	if current != nil {
		v := *current
		m.pending = &v
	}
	m.saving = false
	m.errMsg = ""
}

// Close discards the pending value without any mutation
func (m *RatingModal) Close() {
	m.visible = false
	m.pending = nil
	m.saving = false
	m.errMsg = ""
}

// IsVisible returns whether the modal is shown
func (m RatingModal) IsVisible() bool {
	return m.visible
}

// MovieID returns the movie the open modal is rating
func (m RatingModal) MovieID() int {
	return m.movieID
}

// Pending returns the current candidate value (nil while unset)
func (m RatingModal) Pending() *domain.Rating {
	return m.pending
}

// Saving reports whether a mutation is in flight
func (m RatingModal) Saving() bool {
	return m.saving
}

// CanConfirm reports whether confirm would do anything: a candidate must
// exist and differ from the committed rating. Confirming the committed
// value is a disabled no-op.
func (m RatingModal) CanConfirm() bool {
	if m.pending == nil || m.saving {
		return false
	}
	return m.committed == nil || m.committed.Value != m.pending.Value
}

// CanRemove reports whether a prior rating exists to remove
func (m RatingModal) CanRemove() bool {
	return m.committed != nil && !m.saving
}

// BeginSave marks a mutation as in flight; input is consumed until the
// gateway resolves
func (m *RatingModal) BeginSave() {
	m.saving = true
	m.errMsg = ""
}

// SaveFailed re-opens for input after a failed mutation. The pending
// value is intact and the error shows inline so the user can correct and
// retry immediately.
func (m *RatingModal) SaveFailed(msg string) {
	m.saving = false
	m.errMsg = msg
}

// HandleKey processes a key press, returning whether it was consumed and,
// on confirm or remove, the action for the caller to run through the
// gateway. The modal stays open until the caller reports the outcome.
func (m *RatingModal) HandleKey(key string) (handled bool, action *RatingAction) {
	if !m.visible {
		return false, nil
	}
	if m.saving {
		return true, nil
	}

	switch key {
	case "left", "h":
		m.adjust(-domain.RatingStep)
		return true, nil
	case "right", "l":
		m.adjust(domain.RatingStep)
		return true, nil
	case "1", "2", "3", "4", "5":
		if r, err := domain.NewRating(float64(key[0] - '0')); err == nil {
			m.pending = &r
			m.errMsg = ""
		}
		return true, nil
	case "enter":
		if !m.CanConfirm() {
			return true, nil
		}
		return true, &RatingAction{MovieID: m.movieID, Value: *m.pending}
	case "x", "delete":
		if !m.CanRemove() {
			return true, nil
		}
		return true, &RatingAction{MovieID: m.movieID, Remove: true}
	case "esc", "q":
		m.Close()
		return true, nil
	}

	return true, nil // consume all keys while visible
}

// adjust nudges the pending value by one half step, seeding from the
// committed rating or the middle of the scale on first touch
func (m *RatingModal) adjust(delta float64) {
	v := (domain.RatingMin + domain.RatingMax) / 2
	if m.pending != nil {
		v = m.pending.Value + delta
	} else if m.committed != nil {
		v = m.committed.Value + delta
	}
	if v < domain.RatingMin {
		v = domain.RatingMin
	}
	if v > domain.RatingMax {
		v = domain.RatingMax
	}
	r, err := domain.NewRating(v)
	if err != nil {
		return
	}
	m.pending = &r
	m.errMsg = ""
}

// View renders the rating modal
func (m RatingModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 40

	var lines []string
	lines = append(lines, styles.ModalTitleStyle.Render(styles.Pad("Rate: "+m.movieTitle, modalWidth)))
	lines = append(lines, "")

	if m.pending != nil {
		stars := styles.StarStyle.Render(m.pending.Stars())
		lines = append(lines, fmt.Sprintf("%s  %s / 5", stars, m.pending))
	} else {
		lines = append(lines, styles.DimStyle.Render("No rating yet · ←/→ or 1-5 to choose"))
	}

	if m.committed != nil {
		lines = append(lines, styles.DimStyle.Render(fmt.Sprintf("Your rating: %s", m.committed)))
	}

	lines = append(lines, "")

	switch {
	case m.saving:
		lines = append(lines, styles.AccentStyle.Render("Saving..."))
	case m.errMsg != "":
		lines = append(lines, styles.ErrorStyle.Render(m.errMsg))
	default:
		hints := "←/→ adjust · enter confirm"
		if m.CanRemove() {
			hints += " · x remove"
		}
		hints += " · esc cancel"
		lines = append(lines, styles.DimStyle.Render(hints))
	}

	content := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Teal).
		Padding(1, 2).
		Render(content)
}
