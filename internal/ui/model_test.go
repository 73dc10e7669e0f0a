package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"deckctl/internal/deck"
	"deckctl/internal/prefs"
	"deckctl/internal/present"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

const testDeck = `---
title: Demo
---
# Intro

first point

second point
---
# Numbers

- a
- b
---
# Code

` + "```go\nfmt.Println(1)\n```" + `
---
# Outro
`

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T) (model, *fakeClock, *prefs.Store) {
	t.Helper()
	d, err := deck.Parse("demo.md", []byte(testDeck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	store := prefs.New(filepath.Join(t.TempDir(), "prefs.json"))
	m, err := newModel(Options{Deck: d, Themes: store, Now: clk.now})
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	t.Cleanup(func() { Close(m) })
	nm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return nm.(model), clk, store
}

func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	nm, _ := m.Update(msg)
	return nm.(model)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fireAll delivers every pending timer, including ones scheduled while
// firing, the way the runtime would once their delays elapse.
func fireAll(t *testing.T, m model) model {
	t.Helper()
	for i := 0; i < 20 && m.sched.pending() > 0; i++ {
		for id := range m.sched.live {
			m = send(t, m, timerMsg{id: id})
			break
		}
	}
	if m.sched.pending() != 0 {
		t.Fatalf("timers still pending")
	}
	return m
}

func TestModel_KeyboardNavigation(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(t, m, keyMsg("right"))
	if m.ctrl.State().Current != 1 || m.scr.viewing != 1 {
		t.Fatalf("right: current=%d viewing=%d", m.ctrl.State().Current, m.scr.viewing)
	}
	m = send(t, m, keyMsg("end"))
	if got := m.scr.chrome.Counter; got != "4 / 4" {
		t.Fatalf("end: counter=%q", got)
	}
	m = send(t, m, keyMsg("right"))
	if m.ctrl.State().Current != 3 {
		t.Fatalf("right at last slide moved to %d", m.ctrl.State().Current)
	}
	m = send(t, m, keyMsg("home"))
	if m.ctrl.State().Current != 0 {
		t.Fatalf("home: current=%d", m.ctrl.State().Current)
	}
}

func TestModel_RevealFollowsStagger(t *testing.T) {
	m, clk, _ := newTestModel(t)
	m = fireAll(t, m) // first slide animation
	if got := m.scr.revealed(0); got != 1 {
		t.Fatalf("revealed right after start = %d want 1", got)
	}
	clk.advance(present.StaggerStep)
	if got := m.scr.revealed(0); got != 2 {
		t.Fatalf("revealed after one step = %d want 2", got)
	}
	clk.advance(time.Second)
	if m.scr.animating() {
		t.Fatalf("animation should be complete")
	}
	view := m.View()
	if !strings.Contains(view, "second point") {
		t.Fatalf("fully revealed slide missing text:\n%s", view)
	}
}

func TestModel_PresentationMode(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(t, m, keyMsg("right"))
	m = send(t, m, keyMsg("f"))
	if !m.ctrl.State().Presenting || !m.scr.fullscreen {
		t.Fatalf("f should enter presentation mode")
	}
	m = fireAll(t, m)
	if m.scr.active != 1 {
		t.Fatalf("active slide = %d want 1", m.scr.active)
	}
	m = send(t, m, keyMsg("esc"))
	if m.ctrl.State().Presenting || m.scr.active != -1 || m.scr.fullscreen {
		t.Fatalf("esc should exit presentation mode: active=%d", m.scr.active)
	}
	if m.ctrl.State().Current != 1 {
		t.Fatalf("toggling changed current to %d", m.ctrl.State().Current)
	}
}

func TestModel_ExitPresentationFollowsCurrent(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = fireAll(t, m)
	m = send(t, m, keyMsg("f"))
	m = fireAll(t, m)
	m = send(t, m, keyMsg("end"))
	m = fireAll(t, m)
	m = send(t, m, keyMsg("f"))
	m = fireAll(t, m)
	st := m.ctrl.State()
	if st.Presenting || st.Current != 3 {
		t.Fatalf("state after exit: %+v", st)
	}
	if m.scr.viewing != st.Current {
		t.Fatalf("scroll view on slide %d while current is %d", m.scr.viewing, st.Current)
	}
	if got := m.scr.chrome.Counter; got != "4 / 4" {
		t.Fatalf("counter = %q", got)
	}
}

func TestModel_ThemeTogglePersists(t *testing.T) {
	m, _, store := newTestModel(t)
	m = send(t, m, keyMsg("t"))
	if m.scr.theme != present.ThemeLight {
		t.Fatalf("theme = %q", m.scr.theme)
	}
	got, err := store.LoadTheme()
	if err != nil || got != present.ThemeLight {
		t.Fatalf("persisted theme = %q err=%v", got, err)
	}
}

func TestModel_Finder(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(t, m, keyMsg("g"))
	if !m.find.open {
		t.Fatalf("g should open the finder")
	}
	m = send(t, m, keyMsg("Code"))
	if idx, ok := m.find.selected(); !ok || idx != 2 {
		t.Fatalf("best match = %d ok=%v", idx, ok)
	}
	m = send(t, m, keyMsg("enter"))
	if m.find.open || m.ctrl.State().Current != 2 {
		t.Fatalf("enter should jump to slide 2, got %d", m.ctrl.State().Current)
	}
}

func TestModel_MouseSwipeAndWheel(t *testing.T) {
	m, _, _ := newTestModel(t)
	press := tea.MouseMsg{X: 40, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	release := tea.MouseMsg{X: 30, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
	m = send(t, m, press)
	m = send(t, m, release)
	if m.ctrl.State().Current != 1 {
		t.Fatalf("leftward drag should advance, current=%d", m.ctrl.State().Current)
	}
	m = send(t, m, tea.MouseMsg{X: 50, Y: 10, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.scr.viewing != 2 || m.ctrl.State().Current != 1 {
		t.Fatalf("wheel should scroll without moving current: viewing=%d current=%d", m.scr.viewing, m.ctrl.State().Current)
	}
	if _, ok := m.scr.anims[2]; !ok {
		t.Fatalf("scrolled-in slide should animate")
	}
}

func TestModel_ViewShowsChrome(t *testing.T) {
	m, _, _ := newTestModel(t)
	view := m.View()
	for _, want := range []string{"Demo", "1 / 4", "Numbers"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	m = send(t, m, keyMsg("q"))
	if !m.quitting || m.View() != "" {
		t.Fatalf("q should quit")
	}
}

func TestClose_StopsRenderCache(t *testing.T) {
	m, _, _ := newTestModel(t)
	if !m.slides.cache.Set("k", "v", 1) {
		t.Fatal("open cache should accept writes")
	}
	Close(m)
	if m.slides.cache.Set("k", "v", 1) {
		t.Fatal("closed cache should reject writes")
	}
	// second close from cleanup must not panic
	Close(m)
	Close(nil)
}

func TestNew_RejectsEmptyDeck(t *testing.T) {
	if _, err := New(Options{Deck: &deck.Deck{}}); err == nil {
		t.Fatalf("expected error for empty deck")
	}
}
