package present

import (
	"errors"

	clog "github.com/charmbracelet/log"

	"deckctl/internal/system"
)

// Slides is the part of a deck the controller needs: its fixed length and
// the number of animatable elements per slide.
type Slides interface {
	Len() int
	Animatable(index int) int
}

// Display applies controller output to a concrete surface (terminal,
// browser). Implementations must not call back into the controller.
type Display interface {
	ApplyChrome(v ChromeView)
	ApplyTheme(t Theme)
	// ScrollTo brings a slide into the center of the viewport (scroll mode).
	ScrollTo(index int)
	// SetActive marks exactly one slide active; -1 clears every slide.
	SetActive(index int)
	ResetAnimation(index int)
	PlayAnimation(index int, plan []Reveal)
	RequestFullscreen() error
	ExitFullscreen()
}

// ThemeStore persists the theme across sessions.
type ThemeStore interface {
	LoadTheme() (Theme, error)
	SaveTheme(t Theme) error
}

// Controller owns one session's State and is the only writer of its chrome.
// It is not safe for concurrent use: run every method, and every Scheduler
// callback, on one event loop.
type Controller struct {
	state   State
	slides  Slides
	display Display
	sched   Scheduler
	themes  ThemeStore
	log     *clog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger overrides the shared logger.
func WithLogger(l *clog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// NewController builds a controller in its initial state. The theme comes
// from themes when it has one, else DefaultTheme.
func NewController(slides Slides, display Display, sched Scheduler, themes ThemeStore, opts ...Option) *Controller {
	c := &Controller{
		slides:  slides,
		display: display,
		sched:   sched,
		themes:  themes,
		log:     system.Logger,
	}
	for _, o := range opts {
		o(c)
	}
	theme := DefaultTheme
	if themes != nil {
		if t, err := themes.LoadTheme(); err == nil {
			theme = t
		} else {
			c.log.Debug("theme not loaded, using default", "err", err)
		}
	}
	c.state = NewState(theme)
	return c
}

// State returns a copy of the session state.
func (c *Controller) State() State { return c.state }

// Total is the fixed number of slides.
func (c *Controller) Total() int { return c.slides.Len() }

// Chrome derives the current navigation chrome.
func (c *Controller) Chrome() ChromeView { return DeriveChrome(c.state, c.slides.Len()) }

// Start renders the initial chrome and schedules the first slide's animation.
func (c *Controller) Start() {
	c.display.ApplyTheme(c.state.Theme)
	c.display.ApplyChrome(c.Chrome())
	idx := c.state.Current
	c.sched.After(idx, FirstSlideDelay, func() { c.animate(idx) })
}

// GoToSlide shows slide index. Out-of-range indices change nothing and
// return ErrInvalidSlideIndex.
func (c *Controller) GoToSlide(index int) error {
	next, err := GoTo(c.state, c.slides.Len(), index)
	if err != nil {
		return err
	}
	c.state = next
	c.show(index)
	return nil
}

// NextSlide advances one slide; it is a no-op on the last slide.
func (c *Controller) NextSlide() bool {
	next, ok := Next(c.state, c.slides.Len())
	if !ok {
		return false
	}
	c.state = next
	c.show(next.Current)
	return true
}

// PrevSlide goes back one slide; it is a no-op on the first slide.
func (c *Controller) PrevSlide() bool {
	next, ok := Prev(c.state, c.slides.Len())
	if !ok {
		return false
	}
	c.state = next
	c.show(next.Current)
	return true
}

// ToggleTheme flips and persists the theme. A failed save is logged only.
func (c *Controller) ToggleTheme() Theme {
	c.state = ToggleTheme(c.state)
	if c.themes != nil {
		if err := c.themes.SaveTheme(c.state.Theme); err != nil {
			c.log.Warn("theme not saved", "theme", c.state.Theme, "err", err)
		}
	}
	c.display.ApplyTheme(c.state.Theme)
	c.display.ApplyChrome(c.Chrome())
	return c.state.Theme
}

// TogglePresentationMode switches between continuous scroll and the
// single-slide presentation layout. Current never changes.
func (c *Controller) TogglePresentationMode() bool {
	c.sched.CancelAll()
	c.state = TogglePresentation(c.state)
	if c.state.Presenting {
		if err := c.display.RequestFullscreen(); err != nil {
			c.log.Debug("fullscreen refused", "err", err)
		}
		c.display.ApplyChrome(c.Chrome())
		idx := c.state.Current
		c.sched.After(idx, PresentEnterDelay, func() { c.show(c.state.Current) })
		return true
	}
	c.display.ExitFullscreen()
	c.display.SetActive(-1)
	// the scroll view may still sit where presenting began
	c.display.ScrollTo(c.state.Current)
	c.display.ApplyChrome(c.Chrome())
	return false
}

// OnSlideVisible replays a slide's enter animation when at least
// VisibilityThreshold of it is in view. It does not touch Current and is
// ignored in presentation mode, where GoToSlide already animates the slide.
func (c *Controller) OnSlideVisible(index int, ratio float64) bool {
	if ratio < VisibilityThreshold || c.state.Presenting {
		return false
	}
	if index < 0 || index >= c.slides.Len() {
		return false
	}
	c.sched.Cancel(index)
	c.animate(index)
	return true
}

// Dispatch translates one raw input event and reports the action taken.
func (c *Controller) Dispatch(ev Event) Action {
	switch ev := ev.(type) {
	case KeyEvent:
		return c.perform(KeyAction(ev, c.state.Presenting), 0)
	case ClickEvent:
		return c.perform(ClickAction(ev), ev.Index)
	case SwipeEvent:
		return c.perform(SwipeAction(ev), 0)
	case VisibleEvent:
		c.OnSlideVisible(ev.Index, ev.Ratio)
	}
	return ActionNone
}

func (c *Controller) perform(a Action, arg int) Action {
	var err error
	switch a {
	case ActionNext:
		c.NextSlide()
	case ActionPrev:
		c.PrevSlide()
	case ActionFirst:
		err = c.GoToSlide(0)
	case ActionLast:
		err = c.GoToSlide(c.slides.Len() - 1)
	case ActionGoTo:
		err = c.GoToSlide(arg)
	case ActionTogglePresentation:
		c.TogglePresentationMode()
	case ActionToggleTheme:
		c.ToggleTheme()
	default:
		return ActionNone
	}
	if errors.Is(err, ErrInvalidSlideIndex) {
		c.log.Debug("ignored navigation", "action", a, "index", arg)
	}
	return a
}

// show runs the display strategy for the slide that just became current.
// Every pending callback is cancelled first so none runs against stale state.
func (c *Controller) show(index int) {
	c.sched.CancelAll()
	c.display.ApplyChrome(c.Chrome())
	if c.state.Presenting {
		c.display.SetActive(-1)
		c.sched.After(index, ActiveEnterDelay, func() {
			c.display.SetActive(index)
			c.animate(index)
		})
		return
	}
	c.display.ScrollTo(index)
	c.sched.After(index, ScrollEnterDelay, func() { c.animate(index) })
}

// animate resets then replays the staggered reveal so every entry starts
// from the first element.
func (c *Controller) animate(index int) {
	plan := StaggerPlan(c.slides.Animatable(index))
	c.display.ResetAnimation(index)
	c.display.PlayAnimation(index, plan)
}
