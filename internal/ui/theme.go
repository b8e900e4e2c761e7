package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/garuka-satharasinghe/StreamBox/internal/state"
)

// Theme defines colors for the UI. The palettes mirror the app's original
// teal/cyan look in dark and light variants.
type Theme struct {
	Name string

	Background string
	Surface    string
	Card       string

	Primary   string
	Secondary string
	Accent    string

	Text          string
	TextSecondary string
	TextTertiary  string

	Border  string
	Error   string
	Warning string
	Success string
	Rating  string
}

// ForMode returns the theme for a store display mode.
func ForMode(mode state.ThemeMode) Theme {
	if mode == state.ThemeLight {
		return lightTheme()
	}
	return darkTheme()
}

func darkTheme() Theme {
	return Theme{
		Name: "Dark",

		Background: "#0d1b2a",
		Surface:    "#1b263b",
		Card:       "#1e2a3a",

		Primary:   "#4dd0e1",
		Secondary: "#80deea",
		Accent:    "#00acc1",

		Text:          "#ffffff",
		TextSecondary: "#b0bec5",
		TextTertiary:  "#78909c",

		Border:  "#263238",
		Error:   "#ef5350",
		Warning: "#ffa726",
		Success: "#66bb6a",
		Rating:  "#ffd700",
	}
}

func lightTheme() Theme {
	return Theme{
		Name: "Light",

		Background: "#f5f7fa",
		Surface:    "#ffffff",
		Card:       "#ffffff",

		Primary:   "#00acc1",
		Secondary: "#4dd0e1",
		Accent:    "#26c6da",

		Text:          "#1a1a1a",
		TextSecondary: "#546e7a",
		TextTertiary:  "#78909c",

		Border:  "#e0e0e0",
		Error:   "#d32f2f",
		Warning: "#f57c00",
		Success: "#388e3c",
		Rating:  "#ffa000",
	}
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextTertiary)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		RatingText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Rating)),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.TextSecondary)).
			Padding(0, 1),

		SectionTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		SelectedCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Primary)).
			Padding(0, 1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)).
			Width(16),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	ErrorText   lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	RatingText  lipgloss.Style

	Logo         lipgloss.Style
	Header       lipgloss.Style
	Footer       lipgloss.Style
	SectionTitle lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	FieldLabel   lipgloss.Style
}
