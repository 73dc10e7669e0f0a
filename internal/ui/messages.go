package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"deckctl/internal/system"
)

// revealTickMsg redraws while a staggered reveal is running.
type revealTickMsg time.Time

// revealFrame is the redraw interval during reveals.
const revealFrame = 50 * time.Millisecond

func revealTick() tea.Cmd {
	return tea.Tick(revealFrame, func(t time.Time) tea.Msg { return revealTickMsg(t) })
}

// git info updates for the deck's directory
type gitInfoMsg struct{ info system.GitInfo }
