package present

import "fmt"

// Icon names follow Font Awesome so the web page can use them as classes.
const (
	IconSun      = "fa-sun"
	IconMoon     = "fa-moon"
	IconExpand   = "fa-expand"
	IconCompress = "fa-compress"
)

// ChromeView is the navigation chrome derived from a State. It never holds
// state of its own.
type ChromeView struct {
	Total        int     `json:"total"`
	Current      int     `json:"current"`
	Progress     float64 `json:"progress"`
	Counter      string  `json:"counter"`
	ActiveDot    int     `json:"activeDot"`
	Dots         []bool  `json:"dots"`
	CanPrev      bool    `json:"canPrev"`
	CanNext      bool    `json:"canNext"`
	Presenting   bool    `json:"presenting"`
	PresentIcon  string  `json:"presentIcon"`
	PresentTitle string  `json:"presentTitle"`
	Theme        Theme   `json:"theme"`
	ThemeIcon    string  `json:"themeIcon"`
}

// DeriveChrome computes the chrome for s over a deck of total slides.
func DeriveChrome(s State, total int) ChromeView {
	v := ChromeView{
		Total:      total,
		Current:    s.Current,
		ActiveDot:  s.Current,
		Presenting: s.Presenting,
		Theme:      s.Theme,
	}
	if total > 0 {
		v.Progress = float64(s.Current+1) / float64(total)
		v.Counter = fmt.Sprintf("%d / %d", s.Current+1, total)
		v.Dots = make([]bool, total)
		if s.Current >= 0 && s.Current < total {
			v.Dots[s.Current] = true
		}
	}
	v.CanPrev = s.Current > 0
	v.CanNext = s.Current < total-1

	if s.Presenting {
		v.PresentIcon = IconCompress
		v.PresentTitle = "Exit Presentation Mode (F)"
	} else {
		v.PresentIcon = IconExpand
		v.PresentTitle = "Toggle Presentation Mode (F)"
	}
	if s.Theme == ThemeLight {
		v.ThemeIcon = IconSun
	} else {
		v.ThemeIcon = IconMoon
	}
	return v
}

// ProgressPercent is Progress scaled to 0..100.
func (v ChromeView) ProgressPercent() float64 { return v.Progress * 100 }
