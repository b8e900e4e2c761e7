package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/garuka-satharasinghe/StreamBox/internal/auth"
	"github.com/garuka-satharasinghe/StreamBox/internal/search"
	"github.com/garuka-satharasinghe/StreamBox/internal/state"
	"github.com/garuka-satharasinghe/StreamBox/internal/tmdb"
)

// View represents the current active view.
type View int

const (
	ViewLogin View = iota
	ViewRegister
	ViewHome
	ViewFavorites
	ViewDetail
	ViewProfile
)

// Login form field order.
const (
	loginFieldUsername = iota
	loginFieldPassword
)

// Registration form field order.
const (
	regFieldFirstName = iota
	regFieldLastName
	regFieldEmail
	regFieldUsername
	regFieldPassword
	regFieldConfirm
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Catalog tmdb.Catalog
	Auth    auth.Authenticator
	Store   *state.Store
	Logger  *zap.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx     context.Context
	catalog tmdb.Catalog
	auth    auth.Authenticator
	store   *state.Store
	coord   *search.Coordinator
	logger  *zap.Logger
	keys    keyMap

	theme  Theme
	styles Styles

	view     View
	prevView View
	width    int
	height   int
	ready    bool

	spinner spinner.Model

	// Auth forms
	loginInputs []textinput.Model
	regInputs   []textinput.Model
	focusIdx    int
	formHint    string

	// Browse state
	searchInput   textinput.Model
	searchFocused bool
	trending      []tmdb.Movie
	popular       []tmdb.Movie
	browseLoading bool
	selected      int

	// Favorites state
	favIdx int

	// Detail state
	detail *tmdb.Movie
}

// New creates the root model. The store must already be hydrated; the first
// frame reflects the persisted session and theme.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		ctx:     ctx,
		catalog: opts.Catalog,
		auth:    opts.Auth,
		store:   opts.Store,
		coord:   search.NewCoordinator(),
		logger:  logger,
		keys:    defaultKeyMap(),
	}
	m.applyTheme()

	m.spinner = spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(m.styles.AccentText),
	)

	m.loginInputs = []textinput.Model{
		newInput("username", false),
		newInput("password", true),
	}
	m.regInputs = []textinput.Model{
		newInput("first name", false),
		newInput("last name", false),
		newInput("email", false),
		newInput("username", false),
		newInput("password", true),
		newInput("confirm password", true),
	}

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search movies..."
	m.searchInput.Prompt = "/ "
	m.searchInput.CharLimit = 80

	if m.store.Session().Authenticated {
		m.view = ViewHome
		m.browseLoading = true
	} else {
		m.view = ViewLogin
		m.loginInputs[loginFieldUsername].Focus()
	}
	return m
}

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "> "
	in.CharLimit = 64
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, textinput.Blink}
	if m.view == ViewHome {
		cmds = append(cmds, m.fetchListingsCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case listingsMsg:
		m.trending = msg.trending
		m.popular = msg.popular
		m.browseLoading = false
		m.clampSelection()
		return m, nil

	case authResultMsg:
		m.store.CompleteAuth(msg.user, msg.err)
		if msg.err != nil {
			return m, nil
		}
		m.view = ViewHome
		m.formHint = ""
		m.browseLoading = true
		m.selected = 0
		m.blurAuthInputs()
		return m, m.fetchListingsCmd()

	case detailMsg:
		// Only refresh if the detail view still shows the same movie.
		if msg.movie != nil && m.detail != nil && msg.movie.ID == m.detail.ID {
			m.detail = msg.movie
		}
		return m, nil

	case searchDebounceMsg:
		if query, ok := m.coord.Fire(msg.ticket); ok {
			return m, m.searchCmd(msg.ticket, query)
		}
		return m, nil

	case searchResultsMsg:
		if m.coord.Deliver(msg.ticket, msg.results) {
			m.clampSelection()
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	var content string
	switch m.view {
	case ViewLogin:
		content = m.renderLogin()
	case ViewRegister:
		content = m.renderRegister()
	case ViewHome:
		content = m.renderHome()
	case ViewFavorites:
		content = m.renderFavorites()
	case ViewDetail:
		content = m.renderDetail()
	case ViewProfile:
		content = m.renderProfile()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)
}

// handleKey routes keyboard input. Global bindings use control chords so
// they can never collide with text entry on the form views.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.CycleTheme):
		m.store.ToggleTheme()
		m.applyTheme()
		return m, nil
	}

	switch m.view {
	case ViewLogin:
		return m.handleLoginKey(msg)
	case ViewRegister:
		return m.handleRegisterKey(msg)
	case ViewHome:
		return m.handleHomeKey(msg)
	case ViewFavorites:
		return m.handleFavoritesKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewProfile:
		return m.handleProfileKey(msg)
	}
	return m, nil
}

func (m *Model) applyTheme() {
	m.theme = ForMode(m.store.Theme())
	m.styles = m.theme.Styles()
	m.spinner.Style = m.styles.AccentText
}

// cycleTab moves between the authenticated tabs: Home, Favorites, Profile.
func (m *Model) cycleTab(forward bool) {
	order := []View{ViewHome, ViewFavorites, ViewProfile}
	current := 0
	for i, v := range order {
		if v == m.view {
			current = i
			break
		}
	}
	if forward {
		current = (current + 1) % len(order)
	} else {
		current = (current - 1 + len(order)) % len(order)
	}
	m.view = order[current]
	m.searchFocused = false
	m.searchInput.Blur()
}

func (m *Model) blurAuthInputs() {
	for i := range m.loginInputs {
		m.loginInputs[i].Blur()
	}
	for i := range m.regInputs {
		m.regInputs[i].Blur()
	}
}

// clampSelection keeps the browse cursor inside the visible list.
func (m *Model) clampSelection() {
	n := len(m.homeMovies())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// homeMovies returns the selectable movies on the home view: the capped
// search results while a query is active, otherwise the capped trending and
// popular rows in display order.
func (m Model) homeMovies() []tmdb.Movie {
	if m.coord.Active() {
		return capMovies(m.coord.Results(), search.GridLimit)
	}
	out := make([]tmdb.Movie, 0, 2*search.GridLimit)
	out = append(out, capMovies(m.trending, search.GridLimit)...)
	out = append(out, capMovies(m.popular, search.GridLimit)...)
	return out
}

// Run starts the TUI and blocks until the user quits or the context is
// cancelled. Cancellation is a clean exit, not an error.
func Run(opts Options) error {
	if opts.Store == nil {
		return errors.New("ui requires a state store")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
