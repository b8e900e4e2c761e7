package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/garuka-satharasinghe/StreamBox/internal/tmdb"
)

func (m Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.cycleTab(true)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.cycleTab(false)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.favIdx > 0 {
			m.favIdx--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.favIdx < m.store.FavoriteCount()-1 {
			m.favIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleFavorite):
		if movie, ok := m.selectedFavorite(); ok {
			m.store.RemoveFavorite(movie.ID)
			if n := m.store.FavoriteCount(); m.favIdx >= n && n > 0 {
				m.favIdx = n - 1
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.openDetail(ViewFavorites)
	}
	return m, nil
}

func (m Model) selectedFavorite() (tmdb.Movie, bool) {
	favorites := m.store.Favorites()
	if m.favIdx < 0 || m.favIdx >= len(favorites) {
		return tmdb.Movie{}, false
	}
	return favorites[m.favIdx], true
}

func (m Model) renderFavorites() string {
	favorites := m.store.Favorites()

	rows := []string{
		m.styles.SectionTitle.Render(fmt.Sprintf("My Favorites (%d)", len(favorites))),
		"",
	}
	if len(favorites) == 0 {
		rows = append(rows,
			m.styles.MutedText.Render("No favorites yet."),
			m.styles.FaintText.Render("Press f on any movie to add it here."),
		)
	} else {
		idx := m.favIdx
		if idx >= len(favorites) {
			idx = len(favorites) - 1
		}
		for i, movie := range favorites {
			rows = append(rows, m.renderMovieRow(movie, i == idx))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().Padding(1, 2).Height(m.contentHeight()).Render(body)
}
