package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/garuka-satharasinghe/StreamBox/internal/search"
	"github.com/garuka-satharasinghe/StreamBox/internal/tmdb"
)

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchFocused {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.cycleTab(true)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.cycleTab(false)
		return m, nil

	case key.Matches(msg, m.keys.FocusSearch):
		m.searchFocused = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Back):
		if m.coord.Active() {
			return m.clearSearch()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.homeMovies())-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleFavorite):
		if movie, ok := m.selectedMovie(); ok {
			m.store.ToggleFavorite(movie)
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.openDetail(ViewHome)
	}
	return m, nil
}

// handleSearchKey routes keys while the search input owns the keyboard.
// Every edit mints a debounce ticket; only the latest ticket ever fires.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.searchFocused = false
		m.searchInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.searchFocused = false
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	after := m.searchInput.Value()
	if after == before {
		return m, cmd
	}

	ticket, arm := m.coord.SetQuery(after)
	m.selected = 0
	if !arm {
		return m, cmd
	}
	return m, tea.Batch(cmd, searchDebounceCmd(ticket))
}

func (m Model) clearSearch() (tea.Model, tea.Cmd) {
	m.coord.Reset()
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.searchFocused = false
	m.selected = 0
	return m, nil
}

func (m Model) selectedMovie() (tmdb.Movie, bool) {
	movies := m.homeMovies()
	if m.selected < 0 || m.selected >= len(movies) {
		return tmdb.Movie{}, false
	}
	return movies[m.selected], true
}

// openDetail shows the selected movie immediately from the listing record and
// refreshes it with the full catalog record in the background.
func (m Model) openDetail(from View) (tea.Model, tea.Cmd) {
	var movie tmdb.Movie
	var ok bool
	if from == ViewFavorites {
		movie, ok = m.selectedFavorite()
	} else {
		movie, ok = m.selectedMovie()
	}
	if !ok {
		return m, nil
	}
	detail := movie
	m.detail = &detail
	m.prevView = from
	m.view = ViewDetail
	return m, m.detailCmd(movie.ID)
}

func (m Model) renderHome() string {
	var rows []string

	searchLine := m.searchInput.View()
	if !m.searchFocused && m.searchInput.Value() == "" {
		searchLine = m.styles.FaintText.Render("/ to search")
	}
	rows = append(rows, searchLine, "")

	if m.coord.Active() {
		rows = append(rows, m.renderSearchResults()...)
	} else {
		rows = append(rows, m.renderBrowseRows()...)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().Padding(1, 2).Height(m.contentHeight()).Render(body)
}

func (m Model) renderSearchResults() []string {
	rows := []string{m.styles.SectionTitle.Render(fmt.Sprintf("Results for %q", m.coord.Query()))}

	if m.coord.Searching() {
		rows = append(rows, m.spinner.View()+m.styles.MutedText.Render(" Searching..."))
		return rows
	}

	results := capMovies(m.coord.Results(), search.GridLimit)
	if len(results) == 0 {
		rows = append(rows, m.styles.MutedText.Render("No movies found."))
		return rows
	}
	for i, movie := range results {
		rows = append(rows, m.renderMovieRow(movie, i == m.selected))
	}
	return rows
}

func (m Model) renderBrowseRows() []string {
	if m.browseLoading {
		return []string{m.spinner.View() + m.styles.MutedText.Render(" Loading movies...")}
	}

	trending := capMovies(m.trending, search.GridLimit)
	popular := capMovies(m.popular, search.GridLimit)

	if len(trending) == 0 && len(popular) == 0 {
		return []string{m.styles.MutedText.Render("Nothing to show. The catalog may be unreachable.")}
	}

	var rows []string
	idx := 0

	if len(trending) > 0 {
		rows = append(rows, m.styles.SectionTitle.Render("Trending This Week"))
		for _, movie := range trending {
			rows = append(rows, m.renderMovieRow(movie, idx == m.selected))
			idx++
		}
		rows = append(rows, "")
	}
	if len(popular) > 0 {
		rows = append(rows, m.styles.SectionTitle.Render("Popular"))
		for _, movie := range popular {
			rows = append(rows, m.renderMovieRow(movie, idx == m.selected))
			idx++
		}
	}
	return rows
}
