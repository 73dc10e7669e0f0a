package deck

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// separator splits slides when it is alone on a line outside fenced code.
const separator = "---"

type frontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

var classifier = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Load reads and parses the deck at path.
func Load(path string) (*Deck, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	d, err := Parse(filepath.Base(path), b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Path = path
	return d, nil
}

// Parse builds a deck from markdown source. name is used as the title when
// the front matter has none.
func Parse(name string, src []byte) (*Deck, error) {
	body := strings.ReplaceAll(string(src), "\r\n", "\n")
	fm, body, err := splitFrontMatter(body)
	if err != nil {
		return nil, err
	}
	d := &Deck{Title: fm.Title, Author: fm.Author}
	if d.Title == "" {
		d.Title = strings.TrimSuffix(name, filepath.Ext(name))
	}
	for _, chunk := range splitSlides(body) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		idx := len(d.Slides)
		s := Slide{Index: idx, Markdown: strings.TrimSpace(chunk)}
		for i, raw := range splitBlocks(chunk) {
			s.Blocks = append(s.Blocks, classify(i, raw))
		}
		s.Title = slideTitle(s.Blocks)
		if s.Title == "" {
			s.Title = fmt.Sprintf("Slide %d", idx+1)
		}
		d.Slides = append(d.Slides, s)
	}
	if len(d.Slides) == 0 {
		return nil, ErrEmptyDeck
	}
	return d, nil
}

func splitFrontMatter(body string) (frontMatter, string, error) {
	var fm frontMatter
	if !strings.HasPrefix(body, separator+"\n") {
		return fm, body, nil
	}
	rest := body[len(separator)+1:]
	end := strings.Index(rest, "\n"+separator+"\n")
	tail := len(separator) + 2
	if end < 0 {
		if !strings.HasSuffix(rest, "\n"+separator) {
			return fm, body, nil
		}
		end = len(rest) - len(separator) - 1
		tail = len(separator) + 1
	}
	// A leading separator followed by markdown is a slide break, not YAML.
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(rest[:end]), &raw); err != nil || len(raw) == 0 {
		return fm, body, nil
	}
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return fm, body, fmt.Errorf("front matter: %w", err)
	}
	return fm, rest[end+tail:], nil
}

// fence tracks the fenced code block a line scan is inside. A block closes
// only on a run of the same character at least as long as its opener.
type fence struct {
	char byte
	n    int
}

func (f fence) open() bool { return f.n > 0 }

// fenceRun parses a fence marker: up to three spaces of indent, then three
// or more backticks or tildes. info is the text after the run.
func fenceRun(line string) (c byte, n int, info string) {
	t := strings.TrimLeft(line, " ")
	if len(line)-len(t) > 3 || t == "" {
		return 0, 0, ""
	}
	c = t[0]
	if c != '`' && c != '~' {
		return 0, 0, ""
	}
	for n < len(t) && t[n] == c {
		n++
	}
	if n < 3 {
		return 0, 0, ""
	}
	info = strings.TrimSpace(t[n:])
	if c == '`' && strings.Contains(info, "`") {
		return 0, 0, ""
	}
	return c, n, info
}

// step feeds one line and reports whether it opened or closed a block.
func (f *fence) step(line string) bool {
	c, n, info := fenceRun(line)
	if n == 0 {
		return false
	}
	if !f.open() {
		f.char, f.n = c, n
		return true
	}
	if c == f.char && n >= f.n && info == "" {
		*f = fence{}
		return true
	}
	return false
}

func splitSlides(body string) []string {
	var (
		out []string
		cur []string
		f   fence
	)
	for _, line := range strings.Split(body, "\n") {
		f.step(line)
		if !f.open() && strings.TrimRight(line, " \t") == separator {
			out = append(out, strings.Join(cur, "\n"))
			cur = cur[:0]
			continue
		}
		cur = append(cur, line)
	}
	return append(out, strings.Join(cur, "\n"))
}

// splitBlocks cuts a slide at blank lines outside fenced code. Indented
// lines after a blank line continue the previous block.
func splitBlocks(slide string) []string {
	var (
		out   []string
		cur   []string
		f     fence
		blank bool
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.TrimRight(strings.Join(cur, "\n"), "\n "))
			cur = nil
		}
	}
	for _, line := range strings.Split(slide, "\n") {
		wasOpen := f.open()
		if f.step(line) {
			if !wasOpen && blank {
				flush()
			}
			blank = false
			cur = append(cur, line)
			continue
		}
		if f.open() {
			cur = append(cur, line)
			continue
		}
		if strings.TrimSpace(line) == "" {
			blank = true
			continue
		}
		if blank {
			if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
				cur = append(cur, "")
			} else {
				flush()
			}
			blank = false
		}
		cur = append(cur, line)
	}
	flush()
	return out
}

func classify(ordinal int, raw string) Block {
	b := Block{Ordinal: ordinal, Kind: KindText, Markdown: raw}
	src := []byte(raw)
	doc := classifier.Parser().Parse(text.NewReader(src))
	n := doc.FirstChild()
	if n == nil {
		return b
	}
	switch n := n.(type) {
	case *ast.Heading:
		b.Kind, b.Level = KindHeading, n.Level
	case *ast.Blockquote:
		b.Kind = KindCard
	case *ast.List:
		b.Kind = KindList
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		b.Kind = KindCode
	case *east.Table:
		b.Kind = KindTable
	case *ast.Paragraph:
		if n.ChildCount() == 1 && n.FirstChild().Kind() == ast.KindImage {
			b.Kind = KindImage
		}
	}
	return b
}

func slideTitle(blocks []Block) string {
	for _, b := range blocks {
		if b.Kind == KindHeading {
			return headingText([]byte(b.Markdown))
		}
	}
	return ""
}

func headingText(src []byte) string {
	doc := classifier.Parser().Parse(text.NewReader(src))
	h, ok := doc.FirstChild().(*ast.Heading)
	if !ok {
		return ""
	}
	var buf bytes.Buffer
	_ = ast.Walk(h, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.CodeSpan:
			for c := t.FirstChild(); c != nil; c = c.NextSibling() {
				if s, ok := c.(*ast.Text); ok {
					buf.Write(s.Segment.Value(src))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}
