package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/garuka-satharasinghe/StreamBox/internal/auth"
)

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.cycleTab(true)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.cycleTab(false)
		return m, nil

	case key.Matches(msg, m.keys.Logout):
		return m.logout()
	}
	return m, nil
}

// logout clears the session and every screen-local remnant of it, returning
// to a login form identical to a fresh start.
func (m Model) logout() (tea.Model, tea.Cmd) {
	m.store.Logout()
	m.coord.Reset()

	m.trending = nil
	m.popular = nil
	m.detail = nil
	m.selected = 0
	m.favIdx = 0
	m.searchInput.SetValue("")
	m.searchFocused = false
	m.formHint = ""
	m.focusIdx = 0

	for i := range m.loginInputs {
		m.loginInputs[i].SetValue("")
		m.loginInputs[i].Blur()
	}
	for i := range m.regInputs {
		m.regInputs[i].SetValue("")
		m.regInputs[i].Blur()
	}

	m.view = ViewLogin
	m.loginInputs[loginFieldUsername].Focus()
	return m, textinput.Blink
}

func (m Model) renderProfile() string {
	session := m.store.Session()
	if session.User == nil {
		return m.centered(m.styles.MutedText.Render("Not signed in."))
	}
	user := *session.User

	rows := []string{
		m.styles.Logo.Render(user.FullName()),
		"",
		m.styles.FieldLabel.Render("Username") + m.styles.Text.Render(user.Username),
		m.styles.FieldLabel.Render("Email") + m.styles.Text.Render(user.Email),
	}
	if user.Gender != "" {
		rows = append(rows, m.styles.FieldLabel.Render("Gender")+m.styles.Text.Render(user.Gender))
	}
	rows = append(rows,
		m.styles.FieldLabel.Render("Favorites")+m.styles.Text.Render(fmt.Sprintf("%d", m.store.FavoriteCount())),
		m.styles.FieldLabel.Render("Theme")+m.styles.Text.Render(m.theme.Name),
		"",
	)

	if auth.IsStubToken(user.Token) {
		rows = append(rows, m.styles.WarningText.Render("Demo session: this account exists only on this device."))
	} else if expiry := auth.TokenExpiry(user.Token); !expiry.IsZero() {
		rows = append(rows, m.styles.FaintText.Render("Session expires "+expiry.Local().Format("Jan 2 15:04")))
	}

	card := m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.NewStyle().Padding(1, 2).Height(m.contentHeight()).Render(card)
}
