package settings

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"deckctl/internal/config"
	"deckctl/internal/present"
)

// Answers is what the init form collects.
type Answers struct {
	Deck   string
	Addr   string
	Open   bool
	Watch  bool
	Output string
	Theme  present.Theme
}

// FromConfig seeds answers from an existing configuration.
func FromConfig(c *config.Config, theme present.Theme) Answers {
	return Answers{
		Deck:   c.Deck,
		Addr:   c.Server.Addr,
		Open:   c.Server.Open,
		Watch:  c.Server.Watch,
		Output: c.Export.Output,
		Theme:  theme,
	}
}

// Apply copies the answers onto c.
func (a Answers) Apply(c *config.Config) {
	c.Deck = strings.TrimSpace(a.Deck)
	c.Server.Addr = strings.TrimSpace(a.Addr)
	c.Server.Open = a.Open
	c.Server.Watch = a.Watch
	c.Export.Output = strings.TrimSpace(a.Output)
}

func validateDeck(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if fi, err := os.Stat(s); err != nil {
		return fmt.Errorf("cannot read %s", s)
	} else if fi.IsDir() {
		return errors.New("expected a markdown file, got a directory")
	}
	return nil
}

func validateAddr(s string) error {
	if _, _, err := net.SplitHostPort(strings.TrimSpace(s)); err != nil {
		return errors.New("use host:port, e.g. 127.0.0.1:8787")
	}
	return nil
}

func validateOutput(s string) error {
	if !strings.HasSuffix(strings.ToLower(strings.TrimSpace(s)), ".pdf") {
		return errors.New("output must be a .pdf file")
	}
	return nil
}

// Run launches the interactive init form and returns the edited answers.
func Run(seed Answers) (Answers, error) {
	a := seed
	theme := string(a.Theme)
	if theme == "" {
		theme = string(present.DefaultTheme)
	}

	// form colors follow the presenter accent
	green := lipgloss.Color("#4d9375")
	ht := huh.ThemeCharm()
	ht.FieldSeparator = lipgloss.NewStyle()
	ht.Blurred.Title = ht.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	ht.Focused.Title = ht.Focused.Title.Width(18).Foreground(green).Bold(true)
	ht.Blurred.SelectedOption = ht.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	ht.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	ht.Focused.Base = ht.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("deckctl").Description("Write deckctl.yaml for this project"),
			huh.NewInput().Title("Deck").Placeholder("slides.md").Value(&a.Deck).Validate(validateDeck),
			huh.NewSelect[string]().Title("Theme").Options(
				huh.NewOption("Dark", string(present.ThemeDark)),
				huh.NewOption("Light", string(present.ThemeLight)),
			).Value(&theme),
		),
		huh.NewGroup(
			huh.NewInput().Title("Listen address").Value(&a.Addr).Validate(validateAddr),
			huh.NewConfirm().Title("Open browser").Value(&a.Open),
			huh.NewConfirm().Title("Reload on save").Value(&a.Watch),
			huh.NewInput().Title("PDF output").Value(&a.Output).Validate(validateOutput),
		),
	).WithTheme(ht).WithWidth(64)

	if err := form.Run(); err != nil {
		return seed, err // form canceled or failed
	}
	a.Theme, _ = present.ParseTheme(theme)
	return a, nil
}
