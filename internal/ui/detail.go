package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = m.prevView
		m.detail = nil
		return m, nil

	case key.Matches(msg, m.keys.ToggleFavorite):
		if m.detail != nil {
			m.store.ToggleFavorite(*m.detail)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.detail = nil
		m.cycleTab(true)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.detail = nil
		m.cycleTab(false)
		return m, nil
	}
	return m, nil
}

func (m Model) renderDetail() string {
	if m.detail == nil {
		return m.centered(m.styles.MutedText.Render("Nothing selected."))
	}
	movie := *m.detail

	title := movie.Title
	if year := movie.ReleaseYear(); year != "" {
		title = fmt.Sprintf("%s (%s)", title, year)
	}

	favorite := m.styles.FaintText.Render("♡ not in favorites")
	if m.store.IsFavorite(movie.ID) {
		favorite = m.styles.ErrorText.Render("♥ in favorites")
	}

	rows := []string{
		m.styles.Logo.Render(title),
		m.styles.RatingText.Render("★ "+movie.RatingLabel()) + "  " + favorite,
		"",
	}

	overview := movie.Overview
	if overview == "" {
		overview = "No overview available."
	}
	width := m.width - 8
	if width > 72 {
		width = 72
	}
	if width < 20 {
		width = 20
	}
	rows = append(rows, m.styles.Text.Width(width).Render(overview), "")

	if movie.HasPoster() {
		rows = append(rows, m.styles.FieldLabel.Render("Poster")+m.styles.FaintText.Render(m.catalog.ImageURL(movie.PosterPath)))
	}
	if movie.HasBackdrop() {
		rows = append(rows, m.styles.FieldLabel.Render("Backdrop")+m.styles.FaintText.Render(m.catalog.ImageURL(movie.BackdropPath)))
	}
	if movie.Popularity > 0 {
		rows = append(rows, m.styles.FieldLabel.Render("Popularity")+m.styles.MutedText.Render(fmt.Sprintf("%.1f", movie.Popularity)))
	}

	card := m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.NewStyle().Padding(1, 2).Height(m.contentHeight()).Render(card)
}
