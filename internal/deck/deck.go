package deck

import (
	"errors"
	"fmt"
)

// ErrEmptyDeck is returned when a source holds no slides.
var ErrEmptyDeck = errors.New("deck has no slides")

// Kind classifies a block by the element it renders to.
type Kind string

const (
	KindHeading Kind = "heading"
	KindCard    Kind = "card"
	KindImage   Kind = "image"
	KindList    Kind = "list"
	KindCode    Kind = "code"
	KindTable   Kind = "table"
	KindText    Kind = "text"
)

// Block is one animatable element of a slide.
type Block struct {
	Ordinal  int    `json:"ordinal"`
	Kind     Kind   `json:"kind"`
	Level    int    `json:"level,omitempty"`
	Markdown string `json:"-"`
}

// Slide is one page of the deck.
type Slide struct {
	Index    int     `json:"index"`
	Title    string  `json:"title"`
	Markdown string  `json:"-"`
	Blocks   []Block `json:"blocks"`
}

// Deck is an ordered, fixed-length collection of slides.
type Deck struct {
	Title  string  `json:"title"`
	Author string  `json:"author,omitempty"`
	Path   string  `json:"path,omitempty"`
	Slides []Slide `json:"slides"`
}

// Len is the number of slides.
func (d *Deck) Len() int { return len(d.Slides) }

// Animatable is the number of blocks revealed on slide i.
func (d *Deck) Animatable(i int) int {
	if i < 0 || i >= len(d.Slides) {
		return 0
	}
	return len(d.Slides[i].Blocks)
}

// Titles lists slide titles in order.
func (d *Deck) Titles() []string {
	out := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		out[i] = s.Title
	}
	return out
}

// Slide returns slide i.
func (d *Deck) Slide(i int) (Slide, error) {
	if i < 0 || i >= len(d.Slides) {
		return Slide{}, fmt.Errorf("slide %d out of range [0,%d)", i, len(d.Slides))
	}
	return d.Slides[i], nil
}
