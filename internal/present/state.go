package present

import (
	"errors"
	"strings"
)

// Theme is the persisted color scheme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme applies when nothing is persisted yet.
const DefaultTheme = ThemeDark

// ParseTheme normalizes s. Unknown values report ok=false.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, true
	case ThemeLight:
		return ThemeLight, true
	}
	return DefaultTheme, false
}

// Flip returns the other theme.
func (t Theme) Flip() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ErrInvalidSlideIndex is returned by GoTo for indices outside the deck.
// Input-driven callers ignore it.
var ErrInvalidSlideIndex = errors.New("invalid slide index")

// State is the whole interaction state of one presentation session.
type State struct {
	Current    int
	Presenting bool
	Theme      Theme
}

// NewState returns the initial state: first slide, scroll mode.
func NewState(theme Theme) State {
	if _, ok := ParseTheme(string(theme)); !ok {
		theme = DefaultTheme
	}
	return State{Current: 0, Theme: theme}
}

// GoTo moves to index. Out-of-range indices leave s unchanged.
func GoTo(s State, total, index int) (State, error) {
	if index < 0 || index >= total {
		return s, ErrInvalidSlideIndex
	}
	s.Current = index
	return s, nil
}

// Next advances one slide; ok is false on the last slide.
func Next(s State, total int) (State, bool) {
	if s.Current >= total-1 {
		return s, false
	}
	s.Current++
	return s, true
}

// Prev goes back one slide; ok is false on the first slide.
func Prev(s State, total int) (State, bool) {
	if s.Current <= 0 {
		return s, false
	}
	s.Current--
	return s, true
}

// ToggleTheme flips the theme only.
func ToggleTheme(s State) State {
	s.Theme = s.Theme.Flip()
	return s
}

// TogglePresentation flips presentation mode; Current is untouched.
func TogglePresentation(s State) State {
	s.Presenting = !s.Presenting
	return s
}
