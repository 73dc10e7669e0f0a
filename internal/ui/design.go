package ui

import (
	"github.com/charmbracelet/lipgloss"

	"deckctl/internal/present"
)

// designTheme centralizes the presenter's color palette.
//
// Palettes follow Vitesse Dark Soft and Vitesse Light:
// https://github.com/antfu/vscode-theme-vitesse
type designTheme struct {
	// Core brand/semantic colors
	Primary lipgloss.Color
	Blue    lipgloss.Color
	Yellow  lipgloss.Color
	Magenta lipgloss.Color
	Cyan    lipgloss.Color
	Red     lipgloss.Color

	// Text colors
	Text      lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color

	// Surfaces
	Bg     lipgloss.Color
	BgSoft lipgloss.Color
	Border lipgloss.Color

	// Text on accent backgrounds (buttons, chips)
	OnAccent lipgloss.Color
}

// VitesseDark is used for present.ThemeDark.
var VitesseDark = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Magenta: lipgloss.Color("#d9739f"),
	Cyan:    lipgloss.Color("#5eaab5"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7ca"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#758575"),

	Bg:     lipgloss.Color("#181818"),
	BgSoft: lipgloss.Color("#292929"),
	Border: lipgloss.Color("#3a3a3a"),

	OnAccent: lipgloss.Color("#222"),
}

// VitesseLight is used for present.ThemeLight.
var VitesseLight = designTheme{
	Primary: lipgloss.Color("#1c6b48"),
	Blue:    lipgloss.Color("#296aa3"),
	Yellow:  lipgloss.Color("#b07d48"),
	Magenta: lipgloss.Color("#a13865"),
	Cyan:    lipgloss.Color("#2f798a"),
	Red:     lipgloss.Color("#ab5959"),

	Text:      lipgloss.Color("#393a34"),
	Secondary: lipgloss.Color("#5f5f58"),
	Muted:     lipgloss.Color("#a0ada0"),

	Bg:     lipgloss.Color("#ffffff"),
	BgSoft: lipgloss.Color("#f7f7f7"),
	Border: lipgloss.Color("#e0e0e0"),

	OnAccent: lipgloss.Color("#ffffff"),
}

// paletteFor maps a presentation theme to its palette.
func paletteFor(t present.Theme) designTheme {
	if t == present.ThemeLight {
		return VitesseLight
	}
	return VitesseDark
}

// Convenience style helpers

func (d designTheme) border() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(d.Border)
}

func (d designTheme) muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(d.Muted)
}

func (d designTheme) accentBold() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(d.Primary)
}

// button renders a small accent button label.
func (d designTheme) button(s string, enabled bool) string {
	st := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if !enabled {
		return st.Foreground(d.Muted).Background(d.BgSoft).Render(s)
	}
	return st.Foreground(d.OnAccent).Background(d.Primary).Render(s)
}

// chip renders a colored nugget for the status line.
func (d designTheme) chip(s string, bg lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(d.OnAccent).Background(bg).Padding(0, 1).Render(s)
}
