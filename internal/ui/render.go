package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	ansi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
	"github.com/dgraph-io/ristretto/v2"

	"deckctl/internal/deck"
	"deckctl/internal/present"
)

// glamourGutter is the margin glamour adds around a document.
const glamourGutter = 2

// slideRenderer renders revealed blocks with glamour and caches the result
// by slide, width, theme and reveal count.
type slideRenderer struct {
	deck      *deck.Deck
	cache     *ristretto.Cache[string, string]
	renderers map[string]*glamour.TermRenderer
}

func newSlideRenderer(d *deck.Deck) (*slideRenderer, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: 1e4,
		MaxCost:     16 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("render cache: %w", err)
	}
	return &slideRenderer{deck: d, cache: cache, renderers: map[string]*glamour.TermRenderer{}}, nil
}

func (r *slideRenderer) close() { r.cache.Close() }

func (r *slideRenderer) termRenderer(t present.Theme, width int) (*glamour.TermRenderer, error) {
	key := fmt.Sprintf("%s/%d", t, width)
	if tr, ok := r.renderers[key]; ok {
		return tr, nil
	}
	wrap := width - glamourGutter
	if wrap < 10 {
		wrap = 10
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(glamourStyle(paletteFor(t))),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, err
	}
	r.renderers[key] = tr
	return tr, nil
}

// render returns the first n blocks of slide i. Errors fall back to the raw
// markdown so a bad block never blanks the screen.
func (r *slideRenderer) render(i, n, width int, t present.Theme) string {
	if i < 0 || i >= r.deck.Len() || n <= 0 {
		return ""
	}
	key := fmt.Sprintf("%d/%d/%d/%s", i, n, width, t)
	if out, ok := r.cache.Get(key); ok {
		return out
	}
	blocks := r.deck.Slides[i].Blocks
	if n > len(blocks) {
		n = len(blocks)
	}
	parts := make([]string, 0, n)
	for _, b := range blocks[:n] {
		parts = append(parts, b.Markdown)
	}
	src := strings.Join(parts, "\n\n")
	out := src
	if tr, err := r.termRenderer(t, width); err == nil {
		if s, err := tr.Render(src); err == nil {
			out = trimEdgeBlankLines(s)
		}
	}
	r.cache.Set(key, out, int64(len(out)))
	return out
}

func trimEdgeBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// glamourStyle adapts the palette to a glamour ANSI style config.
func glamourStyle(p designTheme) ansi.StyleConfig {
	sp := func(c lipgloss.Color) *string { s := string(c); return &s }
	str := func(s string) *string { return &s }
	bp := func(b bool) *bool { return &b }
	up := func(u uint) *uint { return &u }

	heading := func(prefix string) ansi.StyleBlock {
		return ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(p.Blue), Bold: bp(true), Prefix: prefix}}
	}

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(p.Text)},
			Margin:         up(1),
		},
		Paragraph: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(p.Text)},
		},
		// Blockquotes are the slide "cards".
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(p.Secondary), Italic: bp(true)},
			Indent:         up(1),
			IndentToken:    str("┃ "),
		},
		List: ansi.StyleList{
			StyleBlock:  ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(p.Text)}},
			LevelIndent: 2,
		},
		Item:        ansi.StylePrimitive{BlockPrefix: "• "},
		Enumeration: ansi.StylePrimitive{BlockPrefix: ". "},
		Heading:     heading(""),
		H1: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{
			Color: sp(p.OnAccent), BackgroundColor: sp(p.Primary), Bold: bp(true), Prefix: " ", Suffix: " ",
		}},
		H2: heading("▌ "),
		H3: heading("▍ "),
		H4: heading(""),
		H5: heading(""),
		H6: heading(""),

		Text:           ansi.StylePrimitive{Color: sp(p.Text)},
		Emph:           ansi.StylePrimitive{Italic: bp(true)},
		Strong:         ansi.StylePrimitive{Bold: bp(true), Color: sp(p.Primary)},
		Strikethrough:  ansi.StylePrimitive{CrossedOut: bp(true)},
		HorizontalRule: ansi.StylePrimitive{Color: sp(p.Border), Format: "\n────────\n"},

		Link:     ansi.StylePrimitive{Color: sp(p.Blue), Underline: bp(true)},
		LinkText: ansi.StylePrimitive{Color: sp(p.Blue), Bold: bp(true)},
		Image:    ansi.StylePrimitive{Color: sp(p.Magenta), Underline: bp(true)},
		ImageText: ansi.StylePrimitive{
			Color: sp(p.Magenta), Format: "▣ {{.text}}",
		},

		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(p.Yellow), BackgroundColor: sp(p.BgSoft), Prefix: " ", Suffix: " "},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: sp(p.Text)},
				Margin:         up(1),
			},
			Chroma: &ansi.Chroma{
				Text:              ansi.StylePrimitive{Color: sp(p.Text)},
				Comment:           ansi.StylePrimitive{Color: sp(p.Muted), Italic: bp(true)},
				Keyword:           ansi.StylePrimitive{Color: sp(p.Primary), Bold: bp(true)},
				NameFunction:      ansi.StylePrimitive{Color: sp(p.Blue)},
				NameBuiltin:       ansi.StylePrimitive{Color: sp(p.Magenta)},
				LiteralString:     ansi.StylePrimitive{Color: sp(p.Yellow)},
				LiteralNumber:     ansi.StylePrimitive{Color: sp(p.Cyan)},
				NameAttribute:     ansi.StylePrimitive{Color: sp(p.Blue)},
				Operator:          ansi.StylePrimitive{Color: sp(p.Secondary)},
				Punctuation:       ansi.StylePrimitive{Color: sp(p.Secondary)},
				GenericDeleted:    ansi.StylePrimitive{Color: sp(p.Red)},
				GenericInserted:   ansi.StylePrimitive{Color: sp(p.Primary)},
				GenericStrong:     ansi.StylePrimitive{Bold: bp(true)},
				GenericSubheading: ansi.StylePrimitive{Color: sp(p.Secondary)},
				Background:        ansi.StylePrimitive{BackgroundColor: sp(p.BgSoft)},
			},
		},

		Table: ansi.StyleTable{
			StyleBlock:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(p.Text)}},
			CenterSeparator: str("┼"),
			ColumnSeparator: str("│"),
			RowSeparator:    str("─"),
		},

		DefinitionTerm:        ansi.StylePrimitive{Bold: bp(true)},
		DefinitionDescription: ansi.StylePrimitive{Color: sp(p.Secondary)},
	}
}
