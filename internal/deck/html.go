package deck

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// HTMLRenderer turns slides into HTML fragments for the browser presenter.
type HTMLRenderer struct {
	md goldmark.Markdown
}

// NewHTMLRenderer returns a renderer with GFM and syntax highlighting. style
// is a chroma style name; empty selects "github".
func NewHTMLRenderer(style string) *HTMLRenderer {
	if style == "" {
		style = "github"
	}
	return &HTMLRenderer{md: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)}
}

// Slide renders every block of s, each wrapped in an element carrying its
// ordinal so the page can stagger the reveal.
func (r *HTMLRenderer) Slide(s Slide) (template.HTML, error) {
	return r.slide(s, parser.NewContext().IDs())
}

func (r *HTMLRenderer) slide(s Slide, ids parser.IDs) (template.HTML, error) {
	var out bytes.Buffer
	for _, b := range s.Blocks {
		fmt.Fprintf(&out, `<div class="block block-%s" data-ordinal="%d">`, b.Kind, b.Ordinal)
		pc := parser.NewContext(parser.WithIDs(ids))
		if err := r.md.Convert([]byte(b.Markdown), &out, parser.WithContext(pc)); err != nil {
			return "", fmt.Errorf("slide %d block %d: %w", s.Index, b.Ordinal, err)
		}
		out.WriteString("</div>\n")
	}
	return template.HTML(out.String()), nil
}

// Deck renders all slides in order. Heading ids are unique across the deck
// since every slide lands on the same page.
func (r *HTMLRenderer) Deck(d *Deck) ([]template.HTML, error) {
	ids := parser.NewContext().IDs()
	out := make([]template.HTML, 0, d.Len())
	for _, s := range d.Slides {
		h, err := r.slide(s, ids)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}
