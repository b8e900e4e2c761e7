package ui

import (
	"testing"

	"github.com/garuka-satharasinghe/StreamBox/internal/state"
)

func TestForModeSelectsPalette(t *testing.T) {
	if got := ForMode(state.ThemeDark); got.Name != "Dark" {
		t.Fatalf("ForMode(dark) = %q", got.Name)
	}
	if got := ForMode(state.ThemeLight); got.Name != "Light" {
		t.Fatalf("ForMode(light) = %q", got.Name)
	}
	// Anything unrecognized renders dark, same as the store default.
	if got := ForMode(state.ThemeMode("solarized")); got.Name != "Dark" {
		t.Fatalf("ForMode(unknown) = %q", got.Name)
	}
}

func TestPalettesAreComplete(t *testing.T) {
	for _, theme := range []Theme{darkTheme(), lightTheme()} {
		for name, color := range map[string]string{
			"Background":    theme.Background,
			"Surface":       theme.Surface,
			"Card":          theme.Card,
			"Primary":       theme.Primary,
			"Secondary":     theme.Secondary,
			"Accent":        theme.Accent,
			"Text":          theme.Text,
			"TextSecondary": theme.TextSecondary,
			"TextTertiary":  theme.TextTertiary,
			"Border":        theme.Border,
			"Error":         theme.Error,
			"Warning":       theme.Warning,
			"Success":       theme.Success,
			"Rating":        theme.Rating,
		} {
			if len(color) != 7 || color[0] != '#' {
				t.Errorf("%s %s = %q, want #rrggbb", theme.Name, name, color)
			}
		}
	}
}
