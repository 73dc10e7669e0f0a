package app

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"deckctl/internal/deck"
	"deckctl/internal/present"
	"deckctl/internal/system"
	"deckctl/internal/ui"
)

// Options selects what the terminal presenter shows.
type Options struct {
	Deck   *deck.Deck
	Themes present.ThemeStore
	// LogFile receives log output while the TUI owns the terminal; empty
	// discards it.
	LogFile string
}

// Start runs the TUI program and returns any error.
func Start(opts Options) error {
	var sink io.Writer = io.Discard
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		sink = f
	}
	restore := system.Redirect(sink)
	defer restore()

	m, err := ui.New(ui.Options{Deck: opts.Deck, Themes: opts.Themes})
	if err != nil {
		return err
	}
	defer ui.Close(m)
	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	system.Logger.Info("presenting", "deck", opts.Deck.Path, "slides", opts.Deck.Len())
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return err
	}
	return nil
}
