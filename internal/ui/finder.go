package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sahilm/fuzzy"
)

// finderLimit caps the number of listed matches.
const finderLimit = 8

// finder is the "go to slide" overlay: a text input fuzzy-matched against
// slide titles.
type finder struct {
	open    bool
	input   textinput.Model
	titles  []string
	matches []fuzzy.Match
	sel     int
}

func newFinder(titles []string) finder {
	ti := textinput.New()
	ti.Prompt = " › "
	ti.Placeholder = "slide title or number"
	ti.CharLimit = 256
	f := finder{input: ti, titles: titles}
	f.refresh()
	return f
}

func (f *finder) show() {
	f.open = true
	f.input.SetValue("")
	f.input.Focus()
	f.refresh()
}

func (f *finder) hide() {
	f.open = false
	f.input.Blur()
}

// refresh recomputes matches. An empty query lists slides in order.
func (f *finder) refresh() {
	f.sel = 0
	q := f.input.Value()
	if q == "" {
		f.matches = f.matches[:0]
		for i, t := range f.titles {
			f.matches = append(f.matches, fuzzy.Match{Str: t, Index: i})
		}
	} else {
		f.matches = fuzzy.Find(q, f.numbered())
	}
	if len(f.matches) > finderLimit {
		f.matches = f.matches[:finderLimit]
	}
}

// numbered prefixes titles with their 1-based slide number so "3" finds
// the third slide.
func (f *finder) numbered() []string {
	out := make([]string, len(f.titles))
	for i, t := range f.titles {
		out[i] = strconv.Itoa(i+1) + " " + t
	}
	return out
}

func (f *finder) move(delta int) {
	if len(f.matches) == 0 {
		return
	}
	f.sel = (f.sel + delta + len(f.matches)) % len(f.matches)
}

// selected returns the slide index under the cursor.
func (f *finder) selected() (int, bool) {
	if len(f.matches) == 0 {
		return 0, false
	}
	return f.matches[f.sel].Index, true
}
