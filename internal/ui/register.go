package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/garuka-satharasinghe/StreamBox/internal/auth"
)

var regFieldLabels = []string{
	"First name",
	"Last name",
	"Email",
	"Username",
	"Password",
	"Confirm",
}

func (m Model) handleRegisterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.store.Session()

	switch {
	case key.Matches(msg, m.keys.Submit):
		if session.Loading {
			return m, nil
		}
		return m.submitRegister()

	case key.Matches(msg, m.keys.ToLogin):
		m.view = ViewLogin
		m.formHint = ""
		m.store.ClearError()
		m.focusIdx = 0
		m.blurAuthInputs()
		m.loginInputs[loginFieldUsername].Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.NextField):
		return m.focusRegisterField(m.focusIdx + 1)

	case key.Matches(msg, m.keys.PrevField):
		return m.focusRegisterField(m.focusIdx - 1)
	}

	if session.Error != "" {
		m.store.ClearError()
	}
	var cmd tea.Cmd
	m.regInputs[m.focusIdx], cmd = m.regInputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m Model) focusRegisterField(idx int) (tea.Model, tea.Cmd) {
	n := len(m.regInputs)
	m.focusIdx = ((idx % n) + n) % n
	for i := range m.regInputs {
		m.regInputs[i].Blur()
	}
	return m, m.regInputs[m.focusIdx].Focus()
}

func (m Model) submitRegister() (tea.Model, tea.Cmd) {
	reg := auth.Registration{
		FirstName:       m.regInputs[regFieldFirstName].Value(),
		LastName:        m.regInputs[regFieldLastName].Value(),
		Email:           m.regInputs[regFieldEmail].Value(),
		Username:        m.regInputs[regFieldUsername].Value(),
		Password:        m.regInputs[regFieldPassword].Value(),
		ConfirmPassword: m.regInputs[regFieldConfirm].Value(),
	}
	if verr := reg.Validate(); verr != nil {
		m.formHint = verr.Error()
		return m, nil
	}
	m.formHint = ""
	m.store.BeginAuth()
	return m, m.registerCmd(reg)
}

func (m Model) renderRegister() string {
	session := m.store.Session()

	rows := []string{
		m.styles.Logo.Render("Create your StreamBox account"),
		"",
	}
	for i, in := range m.regInputs {
		rows = append(rows, m.styles.FieldLabel.Render(regFieldLabels[i])+in.View())
	}
	rows = append(rows, "")

	switch {
	case session.Loading:
		rows = append(rows, m.spinner.View()+m.styles.MutedText.Render(" Creating account..."))
	case m.formHint != "":
		rows = append(rows, m.styles.ErrorText.Render(m.formHint))
	case session.Error != "":
		rows = append(rows, m.styles.ErrorText.Render(session.Error))
	default:
		rows = append(rows, m.styles.MutedText.Render("enter to sign up, esc to go back"))
	}

	form := m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return m.centered(form)
}
