package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/garuka-satharasinghe/StreamBox/internal/tmdb"
)

// capMovies bounds a list to the display limit without mutating the input.
func capMovies(movies []tmdb.Movie, limit int) []tmdb.Movie {
	if len(movies) <= limit {
		return movies
	}
	return movies[:limit]
}

// truncate shortens s to max runes, replacing the tail with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

func (m Model) renderHeader() string {
	logo := m.styles.Logo.Render("StreamBox")

	var right string
	if session := m.store.Session(); session.Authenticated && session.User != nil {
		tabs := []struct {
			view  View
			label string
		}{
			{ViewHome, "Home"},
			{ViewFavorites, fmt.Sprintf("Favorites (%d)", m.store.FavoriteCount())},
			{ViewProfile, "Profile"},
		}
		parts := make([]string, 0, len(tabs))
		for _, t := range tabs {
			if t.view == m.view || (m.view == ViewDetail && t.view == m.prevView) {
				parts = append(parts, m.styles.AccentText.Render("["+t.label+"]"))
			} else {
				parts = append(parts, m.styles.MutedText.Render(" "+t.label+" "))
			}
		}
		right = strings.Join(parts, " ")
	} else {
		right = m.styles.MutedText.Render(m.theme.Name + " mode")
	}

	gap := m.width - lipgloss.Width(logo) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Header.Width(m.width).Render(logo + strings.Repeat(" ", gap) + right)
}

func (m Model) renderFooter() string {
	var bindings []key.Binding
	switch m.view {
	case ViewLogin:
		bindings = []key.Binding{m.keys.Submit, m.keys.NextField, m.keys.ToRegister, m.keys.CycleTheme, m.keys.Quit}
	case ViewRegister:
		bindings = []key.Binding{m.keys.Submit, m.keys.NextField, m.keys.ToLogin, m.keys.Quit}
	case ViewHome:
		if m.searchFocused {
			bindings = []key.Binding{m.keys.Back, m.keys.Confirm, m.keys.Quit}
		} else {
			bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Confirm, m.keys.FocusSearch, m.keys.ToggleFavorite, m.keys.NextTab, m.keys.Quit}
		}
	case ViewFavorites:
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Confirm, m.keys.ToggleFavorite, m.keys.NextTab, m.keys.Quit}
	case ViewDetail:
		bindings = []key.Binding{m.keys.Back, m.keys.ToggleFavorite, m.keys.Quit}
	case ViewProfile:
		bindings = []key.Binding{m.keys.Logout, m.keys.NextTab, m.keys.CycleTheme, m.keys.Quit}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts,
			m.styles.AccentText.Render(h.Key)+" "+m.styles.MutedText.Render(h.Desc))
	}
	return m.styles.Footer.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderMovieRow draws one movie as a single selectable line.
func (m Model) renderMovieRow(movie tmdb.Movie, selected bool) string {
	cursor := "  "
	titleStyle := m.styles.Text
	if selected {
		cursor = m.styles.AccentText.Render("> ")
		titleStyle = m.styles.AccentText
	}

	fav := " "
	if m.store.IsFavorite(movie.ID) {
		fav = m.styles.ErrorText.Render("♥")
	}

	title := truncate(movie.Title, 42)
	meta := m.styles.RatingText.Render("★ "+movie.RatingLabel()) +
		m.styles.FaintText.Render("  "+movie.ReleaseYear())

	return fmt.Sprintf("%s%s %s  %s", cursor, fav, titleStyle.Render(title), meta)
}

// contentHeight is the rows left between header and footer.
func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) centered(content string) string {
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, content)
}
