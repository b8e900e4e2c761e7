package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/garuka-satharasinghe/StreamBox/internal/auth"
)

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.store.Session()

	switch {
	case key.Matches(msg, m.keys.Submit):
		if session.Loading {
			return m, nil
		}
		return m.submitLogin()

	case key.Matches(msg, m.keys.ToRegister):
		m.view = ViewRegister
		m.formHint = ""
		m.store.ClearError()
		m.focusIdx = 0
		m.blurAuthInputs()
		m.regInputs[regFieldFirstName].Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.NextField):
		return m.focusLoginField(m.focusIdx + 1)

	case key.Matches(msg, m.keys.PrevField):
		return m.focusLoginField(m.focusIdx - 1)
	}

	// A fresh keystroke clears the last error before it reaches the input.
	if session.Error != "" {
		m.store.ClearError()
	}
	var cmd tea.Cmd
	m.loginInputs[m.focusIdx], cmd = m.loginInputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m Model) focusLoginField(idx int) (tea.Model, tea.Cmd) {
	n := len(m.loginInputs)
	m.focusIdx = ((idx % n) + n) % n
	for i := range m.loginInputs {
		m.loginInputs[i].Blur()
	}
	return m, m.loginInputs[m.focusIdx].Focus()
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	creds := auth.Credentials{
		Username: m.loginInputs[loginFieldUsername].Value(),
		Password: m.loginInputs[loginFieldPassword].Value(),
	}
	if verr := creds.Validate(); verr != nil {
		m.formHint = verr.Error()
		return m, nil
	}
	m.formHint = ""
	m.store.BeginAuth()
	return m, m.loginCmd(creds)
}

func (m Model) renderLogin() string {
	session := m.store.Session()

	rows := []string{
		m.styles.Logo.Render("Sign in to StreamBox"),
		"",
		m.styles.FieldLabel.Render("Username") + m.loginInputs[loginFieldUsername].View(),
		m.styles.FieldLabel.Render("Password") + m.loginInputs[loginFieldPassword].View(),
		"",
	}

	switch {
	case session.Loading:
		rows = append(rows, m.spinner.View()+m.styles.MutedText.Render(" Signing in..."))
	case m.formHint != "":
		rows = append(rows, m.styles.ErrorText.Render(m.formHint))
	case session.Error != "":
		rows = append(rows, m.styles.ErrorText.Render(session.Error))
	default:
		rows = append(rows, m.styles.MutedText.Render("enter to sign in, ctrl+r to create an account"))
	}

	form := m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return m.centered(form)
}
