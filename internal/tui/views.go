package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfinch/screenings/internal/tui/styles"
)

const (
	sidebarWidth  = 26
	minPaneWidth  = 30
	chromeHeight  = 2 // header + footer
	inspectorPct  = 42
	omnibarMargin = 8
)

// layout applies the current window size to every visible component
func (m *Model) layout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := m.Height - chromeHeight
	m.Omnibar.SetSize(min(m.Width-omnibarMargin, 72))

	if m.Screen == ScreenRatings {
		inspectorWidth := max(m.Width*inspectorPct/100, minPaneWidth)
		listWidth := max(m.Width-inspectorWidth, minPaneWidth)
		m.Rated.SetSize(listWidth, contentHeight)
		m.Inspector.SetSize(inspectorWidth, contentHeight)
	} else {
		inspectorWidth := max((m.Width-sidebarWidth)*inspectorPct/100, minPaneWidth)
		listWidth := max(m.Width-sidebarWidth-inspectorWidth, minPaneWidth)
		m.Sidebar.SetSize(sidebarWidth, contentHeight)
		m.Catalog.SetSize(listWidth, contentHeight)
		m.Inspector.SetSize(inspectorWidth, contentHeight)
	}

	m.applyFocus()
}

// View renders the full frame
func (m *Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}

	var content string
	if m.Screen == ScreenRatings {
		left := m.Rated.View()
		if m.ratedErr != "" && m.RatedList.Len() == 0 {
			left = m.renderBanner(m.ratedErr, m.Width-m.Width*inspectorPct/100)
		}
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, m.Inspector.View())
	} else {
		list := m.Catalog.View()
		if m.catalogErr != "" && m.CatalogPager.Len() == 0 {
			list = m.renderBanner(m.catalogErr, m.Width-sidebarWidth-(m.Width-sidebarWidth)*inspectorPct/100)
		}
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.Sidebar.View(), list, m.Inspector.View())
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)

	// Overlays
	if m.Omnibar.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Omnibar.View())
	}
	if m.RatingModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.RatingModal.View())
	}

	return view
}

// renderHeader renders the single-line title bar
func (m *Model) renderHeader() string {
	left := styles.AccentStyle.Bold(true).Render("screenings")

	var context string
	if m.Screen == ScreenRatings {
		context = "My Ratings"
	} else {
		context = m.Catalog.Title()
	}
	center := styles.SubtitleStyle.Render(context)

	var right string
	if m.Session.SignedIn() {
		right = styles.DimStyle.Render(m.Session.Username())
	} else {
		right = styles.DimStyle.Render("not signed in")
	}

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	gapLeft := (m.Width-centerWidth)/2 - leftWidth
	if gapLeft < 1 {
		gapLeft = 1
	}
	gapRight := m.Width - leftWidth - gapLeft - centerWidth - rightWidth
	if gapRight < 1 {
		gapRight = 1
	}

	return left + strings.Repeat(" ", gapLeft) + center + strings.Repeat(" ", gapRight) + right
}

// renderFooter renders status on the left and key hints on the right
func (m *Model) renderFooter() string {
	var left string
	switch {
	case m.filterActive:
		left = styles.AccentStyle.Render("filter: ") + styles.TitleStyle.Render(m.filterQuery)
	case m.StatusText != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusText)
	case m.StatusText != "":
		left = styles.SuccessStyle.Render(m.StatusText)
	case m.Screen == ScreenRatings && m.RatedList.Loading():
		left = styles.DimStyle.Render("Loading...")
	case m.Screen == ScreenBrowse && m.CatalogPager.Loading():
		left = styles.DimStyle.Render("Loading...")
	}

	right := footerHints(m.Screen, m.filterActive)

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := m.Width - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func footerHints(screen Screen, filtering bool) string {
	hint := func(key, label string) string {
		return styles.AccentStyle.Render(key) + styles.DimStyle.Render(" "+label)
	}
	if filtering {
		return hint("esc", "clear") + "  " + hint("enter", "keep")
	}
	parts := []string{
		hint("/", "search"),
		hint("r", "rate"),
	}
	if screen == ScreenBrowse {
		parts = append(parts, hint("f", "filter"))
	} else {
		parts = append(parts, hint("esc", "back"))
	}
	parts = append(parts, hint("q", "quit"))
	return strings.Join(parts, "  ")
}

// renderBanner centers a page-level error message in an empty pane
func (m *Model) renderBanner(text string, width int) string {
	if width < minPaneWidth {
		width = minPaneWidth
	}
	height := m.Height - chromeHeight
	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		styles.ErrorStyle.Render(text))
}
