package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	clog "github.com/charmbracelet/log"

	"deckctl/internal/deck"
	"deckctl/internal/present"
	"deckctl/internal/system"
)

// cellPx converts terminal columns to the pixel units of swipe gestures.
const cellPx = 8.0

// Options configures the terminal presenter.
type Options struct {
	Deck   *deck.Deck
	Themes present.ThemeStore
	Logger *clog.Logger
	// Now overrides the clock used for reveal timing.
	Now func() time.Time
}

// model is the Bubble Tea model hosting one presentation session.
type model struct {
	deck   *deck.Deck
	ctrl   *present.Controller
	scr    *screen
	sched  *teaScheduler
	slides *slideRenderer

	find finder
	help help.Model
	bar  progress.Model

	width  int
	height int

	// reveal redraw loop running
	ticking bool

	// left-button drag in progress, in cells
	dragging bool
	dragX    int

	git      system.GitInfo
	quitting bool
}

// New builds the presenter for d. The controller is started immediately so
// Init can hand its first timers to the runtime.
func New(opts Options) (tea.Model, error) {
	return newModel(opts)
}

// Close stops the render cache behind a model returned by New. It is safe
// to call more than once.
func Close(m tea.Model) {
	if mm, ok := m.(model); ok && mm.slides != nil {
		mm.slides.close()
	}
}

func newModel(opts Options) (model, error) {
	if opts.Deck == nil || opts.Deck.Len() == 0 {
		return model{}, deck.ErrEmptyDeck
	}
	r, err := newSlideRenderer(opts.Deck)
	if err != nil {
		return model{}, err
	}
	scr := newScreen(opts.Now)
	sched := newTeaScheduler()
	var copts []present.Option
	if opts.Logger != nil {
		copts = append(copts, present.WithLogger(opts.Logger))
	}
	ctrl := present.NewController(opts.Deck, scr, sched, opts.Themes, copts...)
	ctrl.Start()

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	h := help.New()
	return model{
		deck:   opts.Deck,
		ctrl:   ctrl,
		scr:    scr,
		sched:  sched,
		slides: r,
		find:   newFinder(opts.Deck.Titles()),
		help:   h,
		bar:    bar,
	}, nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.sched.drain(), gitInfoCmd(m.deckDir()))
}

func (m model) deckDir() string {
	if m.deck.Path == "" {
		return "."
	}
	return filepath.Dir(m.deck.Path)
}

// git info command
func gitInfoCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		gi, _ := system.GetGitInfo(ctx, dir)
		return gitInfoMsg{info: gi}
	}
}

func dotZone(i int) string  { return fmt.Sprintf("ctrl.dot.%d", i) }
func sideZone(i int) string { return fmt.Sprintf("side.%d", i) }

const (
	zonePrev    = "ctrl.prev"
	zoneNext    = "ctrl.next"
	zonePresent = "ctrl.present"
	zoneTheme   = "ctrl.theme"
)
