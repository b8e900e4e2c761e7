package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/garuka-satharasinghe/StreamBox/internal/auth"
	"github.com/garuka-satharasinghe/StreamBox/internal/search"
	"github.com/garuka-satharasinghe/StreamBox/internal/tmdb"
)

// listingsMsg carries the home feed. Failed fetches arrive as empty slices;
// the feed renders whatever it got.
type listingsMsg struct {
	trending []tmdb.Movie
	popular  []tmdb.Movie
}

// authResultMsg resolves a login or registration attempt.
type authResultMsg struct {
	user *auth.User
	err  error
}

// detailMsg refreshes the detail view with the full catalog record.
type detailMsg struct {
	movie *tmdb.Movie
}

// searchDebounceMsg fires when a debounce timer elapses. The ticket decides
// whether the firing is still current.
type searchDebounceMsg struct {
	ticket uint64
}

// searchResultsMsg resolves a search request.
type searchResultsMsg struct {
	ticket  uint64
	results []tmdb.Movie
}

func (m Model) fetchListingsCmd() tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		return listingsMsg{
			trending: catalog.TrendingMovies(ctx),
			popular:  catalog.PopularMovies(ctx),
		}
	}
}

func (m Model) loginCmd(creds auth.Credentials) tea.Cmd {
	ctx, client := m.ctx, m.auth
	return func() tea.Msg {
		user, err := client.Login(ctx, creds)
		return authResultMsg{user: user, err: err}
	}
}

func (m Model) registerCmd(reg auth.Registration) tea.Cmd {
	ctx, client := m.ctx, m.auth
	return func() tea.Msg {
		user, err := client.Register(ctx, reg)
		return authResultMsg{user: user, err: err}
	}
}

func (m Model) detailCmd(id int) tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		return detailMsg{movie: catalog.MovieDetails(ctx, id)}
	}
}

// searchDebounceCmd arms the trailing debounce timer for one query edit.
func searchDebounceCmd(ticket uint64) tea.Cmd {
	return tea.Tick(search.DebounceInterval, func(time.Time) tea.Msg {
		return searchDebounceMsg{ticket: ticket}
	})
}

func (m Model) searchCmd(ticket uint64, query string) tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		return searchResultsMsg{ticket: ticket, results: catalog.SearchMovies(ctx, query)}
	}
}
