package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfinch/screenings/internal/domain"
	"github.com/mfinch/screenings/internal/pager"
	"github.com/mfinch/screenings/internal/rating"
	"github.com/mfinch/screenings/internal/service"
	"github.com/mfinch/screenings/internal/session"
	"github.com/mfinch/screenings/internal/tui/components"
)

// Screen identifies the page-level surface being shown
type Screen int

const (
	ScreenBrowse  Screen = iota // catalog / search results
	ScreenRatings               // the user's rated movies
)

// Pane identifies which pane has keyboard focus
type Pane int

const (
	PaneSidebar Pane = iota
	PaneList
	PaneDetail
)

// origin identifies which surface opened the rating dialog; the
// confirmed result updates that surface's local rating copy
type origin int

const (
	originNone origin = iota
	originCatalog
	originDetail
	originRated
)

// Options carries tunables from configuration
type Options struct {
	PrefetchRows    int
	SuggestDebounce time.Duration
	ReviewsShown    int
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Services
	CatalogSvc *service.CatalogService
	RatingsSvc *service.RatingsService
	SearchSvc  *service.SearchService
	SessionSvc *service.SessionService
	Gateway    *rating.Gateway
	Session    *session.Session

	// Reference data
	Genres domain.GenreTable

	// Surfaces
	Sidebar     components.Sidebar
	Catalog     components.MovieList // catalog grid / search results
	Rated       components.MovieList // ratings page
	Inspector   components.Inspector // detail hero
	Omnibar     components.Omnibar
	RatingModal components.RatingModal

	// Accumulation state, one per listing stream
	CatalogPager *pager.Pager
	RatedList    *pager.RatedList

	// Suggestion debounce
	Debounce service.Debounce

	// UI state
	Screen      Screen
	Focus       Pane
	modalOrigin origin

	filterActive bool
	filterQuery  string

	catalogErr string // page-level error banner, browse screen
	ratedErr   string // page-level error banner, ratings screen

	StatusText  string
	StatusIsErr bool

	Width  int
	Height int

	opts Options
}

// NewModel creates the application model
func NewModel(
	catalogSvc *service.CatalogService,
	ratingsSvc *service.RatingsService,
	searchSvc *service.SearchService,
	sessionSvc *service.SessionService,
	gateway *rating.Gateway,
	sess *session.Session,
	opts Options,
) *Model {
	if opts.PrefetchRows <= 0 {
		opts.PrefetchRows = 5
	}
	if opts.SuggestDebounce <= 0 {
		opts.SuggestDebounce = 300 * time.Millisecond
	}

	return &Model{
		CatalogSvc:   catalogSvc,
		RatingsSvc:   ratingsSvc,
		SearchSvc:    searchSvc,
		SessionSvc:   sessionSvc,
		Gateway:      gateway,
		Session:      sess,
		Sidebar:      components.NewSidebar(),
		Catalog:      components.NewMovieList("Popular"),
		Rated:        components.NewMovieList("My Ratings"),
		Inspector:    components.NewInspector(opts.ReviewsShown),
		Omnibar:      components.NewOmnibar(),
		RatingModal:  components.NewRatingModal(),
		CatalogPager: pager.New(domain.ListContext{Type: domain.ListTypePopular}),
		RatedList:    pager.NewRatedList(),
		Focus:        PaneList,
		opts:         opts,
	}
}

// Init starts the genre load and the first catalog page fetch
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{LoadGenresCmd(m.CatalogSvc)}
	if m.CatalogPager.Begin() {
		cmds = append(cmds, FetchCatalogPageCmd(m.CatalogSvc, m.CatalogPager.Context(), m.CatalogPager.Gen(), m.CatalogPager.NextPage()))
	}
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case GenresLoadedMsg:
		m.Genres = msg.Table
		m.Sidebar.SetGenres(msg.Table)
		return m, nil

	case CatalogPageMsg:
		return m.handleCatalogPage(msg)

	case CatalogPageFailedMsg:
		return m.handleCatalogPageFailed(msg)

	case RatedPageMsg:
		if msg.Gen != m.RatedList.Gen() {
			return m, nil
		}
		m.RatedList.Complete(msg.Page)
		m.ratedErr = ""
		m.syncRatedSurface()
		return m, nil

	case RatedPageFailedMsg:
		if msg.Gen != m.RatedList.Gen() {
			return m, nil
		}
		m.RatedList.Fail()
		if m.RatedList.Len() == 0 {
			m.ratedErr = userMessage(msg.Err, "Failed to load your ratings")
		}
		return m, m.setStatus(userMessage(msg.Err, "Failed to load your ratings"), true)

	case DetailLoadedMsg:
		m.Inspector.SetDetails(msg.View.Details, msg.View.MyRating)
		return m, nil

	case DetailFailedMsg:
		m.Inspector.SetError(userMessage(msg.Err, "Failed to load movie"))
		return m, nil

	case SuggestDebounceMsg:
		if query, ok := m.Debounce.Fire(msg.Gen); ok && m.Omnibar.IsVisible() {
			return m, FetchSuggestionsCmd(m.SearchSvc, query)
		}
		return m, nil

	case SuggestionsMsg:
		if m.Omnibar.IsVisible() && msg.Query == m.Omnibar.Query() {
			m.Omnibar.SetSuggestions(msg.Movies)
		}
		return m, nil

	case RatingSavedMsg:
		return m.handleRatingSaved(msg)

	case RatingClearedMsg:
		return m.handleRatingCleared(msg)

	case RatingFailedMsg:
		m.RatingModal.SaveFailed(mutationMessage(msg.Err))
		return m, nil

	case SignedOutMsg:
		if msg.Err != nil {
			return m, m.setStatus("Sign-out failed: "+msg.Err.Error(), true)
		}
		m.RatedList.Reset()
		m.Rated.Clear()
		return m, m.setStatus("Signed out", false)

	case ErrMsg:
		return m, m.setStatus(msg.Error(), true)

	case StatusMsg:
		m.StatusText = msg.Message
		m.StatusIsErr = msg.IsError
		return m, nil

	case ClearStatusMsg:
		m.StatusText = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

// handleKey routes key input by priority: modal, omnibar, filter, panes
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Rating dialog consumes everything while open
	if m.RatingModal.IsVisible() {
		handled, action := m.RatingModal.HandleKey(key)
		if action != nil {
			m.RatingModal.BeginSave()
			if action.Remove {
				return m, ClearRatingCmd(m.Gateway, action.MovieID)
			}
			return m, SubmitRatingCmd(m.Gateway, action.MovieID, action.Value)
		}
		if handled {
			return m, nil
		}
	}

	if m.Omnibar.IsVisible() {
		return m.handleOmnibarKey(msg)
	}

	if m.filterActive {
		return m.handleFilterKey(msg)
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/":
		m.Omnibar.Show()
		return m, nil
	case "f":
		if m.Screen == ScreenBrowse && m.Focus == PaneList {
			m.filterActive = true
			m.filterQuery = ""
		}
		return m, nil
	case "S":
		if m.Session.SignedIn() {
			return m, SignOutCmd(m.SessionSvc)
		}
		return m, m.setStatus("Not signed in", false)
	case "tab":
		m.cycleFocus()
		return m, nil
	case "r":
		return m.openRatingDialog()
	case "up", "k":
		return m.moveCursor(-1)
	case "down", "j":
		return m.moveCursor(1)
	case "enter":
		return m.activate()
	case "esc":
		if m.Screen == ScreenRatings {
			m.Screen = ScreenBrowse
			m.Focus = PaneList
			m.layout()
		}
		return m, nil
	}

	return m, nil
}

// handleOmnibarKey drives the search modal
func (m *Model) handleOmnibarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Omnibar.Hide()
		m.Debounce.Cancel()
		return m, nil
	case "enter":
		if movie := m.Omnibar.Selected(); movie != nil {
			m.Omnibar.Hide()
			m.Debounce.Cancel()
			m.Inspector.SetLoading()
			m.Focus = PaneDetail
			return m, FetchDetailCmd(m.CatalogSvc, movie.ID)
		}
		if query := m.Omnibar.Query(); query != "" {
			m.Omnibar.Hide()
			m.Debounce.Cancel()
			return m, m.switchContext(domain.ListContext{Query: query})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Omnibar, cmd = m.Omnibar.Update(msg)

	cmds := []tea.Cmd{cmd}
	if m.Omnibar.QueryChanged() {
		query := m.Omnibar.Query()
		gen := m.Debounce.Arm(query)
		if query == "" {
			m.Omnibar.SetSuggestions(nil)
		} else {
			m.Omnibar.SetLoading(true)
			cmds = append(cmds, SuggestDebounceCmd(gen, m.opts.SuggestDebounce))
		}
	}
	return m, tea.Batch(cmds...)
}

// handleFilterKey drives the local quick-filter over the accumulated list
func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterActive = false
		m.filterQuery = ""
		m.Catalog.ClearFilter()
		return m, nil
	case "enter":
		m.filterActive = false
		return m, nil
	case "backspace":
		if len(m.filterQuery) > 0 {
			m.filterQuery = m.filterQuery[:len(m.filterQuery)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.filterQuery += string(msg.Runes)
		} else {
			return m, nil
		}
	}

	if m.filterQuery == "" {
		m.Catalog.ClearFilter()
	} else {
		m.Catalog.ApplyFilter(service.FilterMovies(m.filterQuery, m.CatalogPager.Movies()))
	}
	return m, nil
}

// moveCursor moves the selection in the focused pane and triggers the
// next-page fetch when the cursor nears the bottom
func (m *Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	switch m.Focus {
	case PaneSidebar:
		if delta < 0 {
			m.Sidebar.CursorUp()
		} else {
			m.Sidebar.CursorDown()
		}
		return m, nil

	case PaneList:
		if m.Screen == ScreenRatings {
			if delta < 0 {
				m.Rated.CursorUp()
			} else {
				m.Rated.CursorDown()
			}
			if pager.ShouldFetchNextPage(m.Rated.Metrics(m.opts.PrefetchRows)) && m.RatedList.Begin() {
				return m, FetchRatedPageCmd(m.RatingsSvc, m.RatedList.Gen(), m.RatedList.NextPage())
			}
			return m, nil
		}

		if delta < 0 {
			m.Catalog.CursorUp()
		} else {
			m.Catalog.CursorDown()
		}
		if pager.ShouldFetchNextPage(m.Catalog.Metrics(m.opts.PrefetchRows)) && m.CatalogPager.Begin() {
			return m, FetchCatalogPageCmd(m.CatalogSvc, m.CatalogPager.Context(), m.CatalogPager.Gen(), m.CatalogPager.NextPage())
		}
		return m, nil
	}

	return m, nil
}

// activate handles enter on the focused pane
func (m *Model) activate() (tea.Model, tea.Cmd) {
	switch m.Focus {
	case PaneSidebar:
		entry := m.Sidebar.Selected()
		if entry == nil {
			return m, nil
		}
		m.Sidebar.Activate()

		if entry.Ratings {
			return m, m.openRatingsScreen()
		}

		m.Screen = ScreenBrowse
		m.layout()
		current := m.CatalogPager.Context()
		next := current
		next.Query = ""
		if entry.GenreID != 0 {
			// Selecting the active genre clears the filter
			if current.GenreID == entry.GenreID {
				next.GenreID = 0
			} else {
				next.GenreID = entry.GenreID
			}
			if next.Type == "" {
				next.Type = domain.ListTypePopular
			}
		} else {
			next.Type = entry.ListType
		}
		return m, m.switchContext(next)

	case PaneList:
		var selected *domain.Movie
		if m.Screen == ScreenRatings {
			selected = m.Rated.Selected()
		} else {
			selected = m.Catalog.Selected()
		}
		if selected == nil {
			return m, nil
		}
		m.Inspector.SetLoading()
		m.Focus = PaneDetail
		return m, FetchDetailCmd(m.CatalogSvc, selected.ID)
	}

	return m, nil
}

// switchContext resets the catalog stream for a new listing context and
// fetches its first page. A context change discards everything
// accumulated for the old one; the reset advances the fetch generation,
// so any in-flight result from before the switch is dropped on arrival
// even if the user has already switched back to an equal context.
func (m *Model) switchContext(ctx domain.ListContext) tea.Cmd {
	if ctx.Equal(m.CatalogPager.Context()) && m.CatalogPager.Len() > 0 {
		return nil
	}

	m.CatalogPager.Reset(ctx)
	m.Catalog.Clear()
	m.filterActive = false
	m.filterQuery = ""
	m.catalogErr = ""
	m.Catalog = components.NewMovieList(m.contextTitle(ctx))
	m.Screen = ScreenBrowse
	m.Focus = PaneList
	m.layout()

	if m.CatalogPager.Begin() {
		return FetchCatalogPageCmd(m.CatalogSvc, ctx, m.CatalogPager.Gen(), m.CatalogPager.NextPage())
	}
	return nil
}

// openRatingsScreen navigates to the ratings page, re-fetching from page
// 1 (navigation is the refresh mechanism)
func (m *Model) openRatingsScreen() tea.Cmd {
	if !m.Session.SignedIn() {
		return m.setStatus("Sign in to see your ratings", true)
	}
	m.Screen = ScreenRatings
	m.Focus = PaneList
	m.ratedErr = ""
	m.RatedList.Reset()
	m.Rated.Clear()
	m.layout()

	if m.RatedList.Begin() {
		return FetchRatedPageCmd(m.RatingsSvc, m.RatedList.Gen(), m.RatedList.NextPage())
	}
	return nil
}

// openRatingDialog opens the rating dialog for the selected movie,
// seeded from the owning surface's local rating copy
func (m *Model) openRatingDialog() (tea.Model, tea.Cmd) {
	if !m.Session.SignedIn() {
		return m, m.setStatus("Sign in to rate movies", true)
	}

	switch {
	case m.Focus == PaneDetail:
		details := m.Inspector.Details()
		if details == nil {
			return m, nil
		}
		m.modalOrigin = originDetail
		m.RatingModal.Open(details.ID, details.Title, m.Inspector.MyRating())

	case m.Screen == ScreenRatings:
		movie := m.Rated.Selected()
		if movie == nil {
			return m, nil
		}
		m.modalOrigin = originRated
		m.RatingModal.Open(movie.ID, movie.Title, m.Rated.MyRating(movie.ID))

	default:
		movie := m.Catalog.Selected()
		if movie == nil {
			return m, nil
		}
		// Catalog cards have no per-movie rating read; the seed is this
		// surface's local copy, which starts unrated
		m.modalOrigin = originCatalog
		m.RatingModal.Open(movie.ID, movie.Title, m.Catalog.MyRating(movie.ID))
	}

	return m, nil
}

// handleCatalogPage applies a fetched page if it belongs to the current
// fetch generation; results issued before a reset are dropped. Context
// equality alone is not enough, switching away and back re-arms the same
// context while the old fetch is still in flight.
func (m *Model) handleCatalogPage(msg CatalogPageMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.CatalogPager.Gen() {
		return m, nil
	}
	m.CatalogPager.Complete(msg.Page)
	m.catalogErr = ""
	m.Catalog.SetMovies(m.CatalogPager.Movies())
	return m, nil
}

func (m *Model) handleCatalogPageFailed(msg CatalogPageFailedMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.CatalogPager.Gen() {
		return m, nil
	}
	m.CatalogPager.Fail()
	text := userMessage(msg.Err, "Failed to load movies")
	if m.CatalogPager.Len() == 0 {
		// Nothing accumulated: the banner replaces the content area
		m.catalogErr = text
		return m, nil
	}
	// Keep last-known-good accumulated state, surface the failure
	return m, m.setStatus(text, true)
}

// handleRatingSaved commits a confirmed submit to the originating
// surface's local copy and maintains ratings-list membership
func (m *Model) handleRatingSaved(msg RatingSavedMsg) (tea.Model, tea.Cmd) {
	m.RatingModal.Close()
	v := msg.Value

	switch m.modalOrigin {
	case originCatalog:
		m.Catalog.ApplyRating(msg.MovieID, &v)
	case originDetail:
		m.Inspector.ApplyRating(&v)
	case originRated:
		m.Rated.ApplyRating(msg.MovieID, &v)
	}
	m.modalOrigin = originNone

	// The rated list's membership criterion is "has a committed rating":
	// an already-listed movie gets its entry updated in place
	m.RatedList.UpdateRating(msg.MovieID, v)
	m.syncRatedSurface()

	return m, m.setStatus("Rated "+v.String()+" stars", false)
}

// handleRatingCleared removes the rating from the originating surface
// and drops the movie from the rated list
func (m *Model) handleRatingCleared(msg RatingClearedMsg) (tea.Model, tea.Cmd) {
	m.RatingModal.Close()

	switch m.modalOrigin {
	case originCatalog:
		m.Catalog.ApplyRating(msg.MovieID, nil)
	case originDetail:
		m.Inspector.ApplyRating(nil)
	case originRated:
		m.Rated.ApplyRating(msg.MovieID, nil)
	}
	m.modalOrigin = originNone

	m.RatedList.Remove(msg.MovieID)
	m.syncRatedSurface()

	return m, m.setStatus("Rating removed", false)
}

// syncRatedSurface rebuilds the ratings-page surface from the rated
// list's accumulated state
func (m *Model) syncRatedSurface() {
	rated := m.RatedList.Movies()
	movies := make([]domain.Movie, len(rated))
	ratings := make(map[int]domain.Rating, len(rated))
	for i, rm := range rated {
		movies[i] = rm.Movie
		ratings[rm.ID] = rm.Rating
	}
	m.Rated.SetMovies(movies)
	m.Rated.ResetRatings(ratings)
}

// cycleFocus rotates keyboard focus between the visible panes
func (m *Model) cycleFocus() {
	if m.Screen == ScreenRatings {
		if m.Focus == PaneList {
			m.Focus = PaneDetail
		} else {
			m.Focus = PaneList
		}
	} else {
		switch m.Focus {
		case PaneSidebar:
			m.Focus = PaneList
		case PaneList:
			m.Focus = PaneDetail
		default:
			m.Focus = PaneSidebar
		}
	}
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.Sidebar.SetFocused(m.Focus == PaneSidebar && m.Screen == ScreenBrowse)
	m.Catalog.SetFocused(m.Focus == PaneList && m.Screen == ScreenBrowse)
	m.Rated.SetFocused(m.Focus == PaneList && m.Screen == ScreenRatings)
}

// setStatus sets a transient status message that clears itself
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.StatusText = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(4 * time.Second)
}

// contextTitle names the catalog surface for the active listing context
func (m *Model) contextTitle(ctx domain.ListContext) string {
	if ctx.Query != "" {
		return "Search: " + ctx.Query
	}
	name := "Popular"
	if ctx.Type == domain.ListTypeTopRated {
		name = "Top Rated"
	}
	if g, ok := m.Genres[ctx.GenreID]; ok {
		name += " · " + g.Name
	}
	return name
}

// userMessage turns a remote error into the banner text for a failed
// page-level load
func userMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, domain.ErrServiceUnreachable):
		return fallback + ": service unreachable"
	case errors.Is(err, domain.ErrAuthFailed), errors.Is(err, domain.ErrNotSignedIn):
		return fallback + ": please sign in again"
	default:
		return fallback
	}
}

// mutationMessage maps the gateway's failure taxonomy onto inline dialog
// text; the user can correct and retry without leaving the dialog
func mutationMessage(err error) string {
	var mutErr *rating.MutationError
	if errors.As(err, &mutErr) {
		switch mutErr.Kind {
		case rating.FailureUnauthenticated:
			return "Sign-in expired, sign in and try again"
		case rating.FailureRejected:
			return "Rating was rejected, try a different value"
		default:
			return "Failed to update, check your connection"
		}
	}
	return "Failed to update"
}
