package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"deckctl/internal/present"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = maxInt(10, msg.Width-2)
		m.help.Width = msg.Width
		m.find.input.Width = maxInt(10, msg.Width/2)
		return m, nil
	case timerMsg:
		m.sched.fire(msg.id)
		cmd := m.after()
		return m, cmd
	case revealTickMsg:
		if m.scr.animating() {
			return m, revealTick()
		}
		m.ticking = false
		return m, nil
	case gitInfoMsg:
		m.git = msg.info
		return m, nil
	case tea.KeyMsg:
		if m.find.open {
			return m.updateFinder(msg)
		}
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, keys.Find):
			m.find.show()
			return m, nil
		case key.Matches(msg, keys.Theme):
			m.ctrl.ToggleTheme()
			cmd := m.after()
			return m, cmd
		}
		m.ctrl.Dispatch(present.KeyEvent{Key: msg.String()})
		cmd := m.after()
		return m, cmd
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m model) updateFinder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.find.hide()
		return m, nil
	case "up", "ctrl+p":
		m.find.move(-1)
		return m, nil
	case "down", "ctrl+n", "tab":
		m.find.move(1)
		return m, nil
	case "enter":
		idx, ok := m.find.selected()
		m.find.hide()
		if ok {
			_ = m.ctrl.GoToSlide(idx)
		}
		cmd := m.after()
		return m, cmd
	}
	var cmd tea.Cmd
	m.find.input, cmd = m.find.input.Update(msg)
	m.find.refresh()
	return m, cmd
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	st := m.ctrl.State()
	switch msg.Button {
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelUp:
		// Wheel scrolls the scroll-mode viewport without moving Current;
		// the slide coming into view replays its animation.
		if st.Presenting || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		v := m.scr.viewing + 1
		if msg.Button == tea.MouseButtonWheelUp {
			v = m.scr.viewing - 1
		}
		if v < 0 || v >= m.ctrl.Total() {
			return m, nil
		}
		m.scr.viewing = v
		m.ctrl.Dispatch(present.VisibleEvent{Index: v, Ratio: 1})
		cmd := m.after()
		return m, cmd
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.dragging = true
		m.dragX = msg.X
		return m, nil
	case tea.MouseActionRelease:
		startX := m.dragX
		wasDragging := m.dragging
		m.dragging = false
		if ev, ok := m.clickAt(msg); ok {
			m.ctrl.Dispatch(ev)
			cmd := m.after()
			return m, cmd
		}
		if wasDragging {
			m.ctrl.Dispatch(present.SwipeEvent{
				StartX: float64(startX) * cellPx,
				EndX:   float64(msg.X) * cellPx,
			})
			cmd := m.after()
			return m, cmd
		}
	}
	return m, nil
}

// clickAt maps a release position to the chrome control under it.
func (m model) clickAt(msg tea.MouseMsg) (present.ClickEvent, bool) {
	for id, c := range map[string]present.Control{
		zonePrev:    present.ControlPrev,
		zoneNext:    present.ControlNext,
		zonePresent: present.ControlPresent,
		zoneTheme:   present.ControlTheme,
	} {
		if zone.Get(id).InBounds(msg) {
			return present.ClickEvent{Control: c}, true
		}
	}
	for i := 0; i < m.ctrl.Total(); i++ {
		if zone.Get(dotZone(i)).InBounds(msg) || zone.Get(sideZone(i)).InBounds(msg) {
			return present.ClickEvent{Control: present.ControlDot, Index: i}, true
		}
	}
	return present.ClickEvent{}, false
}

// after collects the timers the controller scheduled during this update
// and starts the reveal redraw loop when an animation began.
func (m *model) after(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.sched.drain())
	if !m.ticking && m.scr.animating() {
		m.ticking = true
		cmds = append(cmds, revealTick())
	}
	return tea.Batch(cmds...)
}

// helper used locally for layout
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
