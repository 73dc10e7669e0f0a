package deck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `---
title: Quarterly Review
author: Platform Team
---
# Welcome

> Highlights from the quarter

![chart](chart.png)

---

## Numbers

| metric | value |
|---|---|
| uptime | 99.9 |

- first
- second

  continued item text

---

` + "```go" + `
func main() {

	fmt.Println("---")
}
` + "```" + `

Closing words.
`

func TestParse_FrontMatterAndSlides(t *testing.T) {
	d, err := Parse("review.md", []byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Title != "Quarterly Review" || d.Author != "Platform Team" {
		t.Fatalf("front matter not applied: %q %q", d.Title, d.Author)
	}
	if d.Len() != 3 {
		t.Fatalf("expected 3 slides, got %d", d.Len())
	}
	want := []string{"Welcome", "Numbers", "Slide 3"}
	for i, s := range d.Slides {
		if s.Index != i || s.Title != want[i] {
			t.Fatalf("slide %d: index=%d title=%q", i, s.Index, s.Title)
		}
	}
}

func TestParse_BlockKinds(t *testing.T) {
	d, err := Parse("review.md", []byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cases := []struct {
		slide int
		kinds []Kind
	}{
		{0, []Kind{KindHeading, KindCard, KindImage}},
		{1, []Kind{KindHeading, KindTable, KindList}},
		{2, []Kind{KindCode, KindText}},
	}
	for _, c := range cases {
		s := d.Slides[c.slide]
		if len(s.Blocks) != len(c.kinds) {
			t.Fatalf("slide %d: %d blocks, want %d: %+v", c.slide, len(s.Blocks), len(c.kinds), s.Blocks)
		}
		for i, k := range c.kinds {
			if s.Blocks[i].Kind != k || s.Blocks[i].Ordinal != i {
				t.Fatalf("slide %d block %d = %+v want kind %s", c.slide, i, s.Blocks[i], k)
			}
		}
		if d.Animatable(c.slide) != len(c.kinds) {
			t.Fatalf("Animatable(%d) = %d", c.slide, d.Animatable(c.slide))
		}
	}
	if lvl := d.Slides[1].Blocks[0].Level; lvl != 2 {
		t.Fatalf("heading level = %d", lvl)
	}
	if !strings.Contains(d.Slides[1].Blocks[2].Markdown, "continued item text") {
		t.Fatalf("indented continuation should stay with the list: %q", d.Slides[1].Blocks[2].Markdown)
	}
	if !strings.Contains(d.Slides[2].Blocks[0].Markdown, `fmt.Println("---")`) {
		t.Fatalf("separator inside a fence must not split: %q", d.Slides[2].Blocks[0].Markdown)
	}
}

func TestParse_NoFrontMatter(t *testing.T) {
	d, err := Parse("talk.md", []byte("---\n# One\n---\n# Two `code`\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Title != "talk" || d.Len() != 2 {
		t.Fatalf("title=%q len=%d", d.Title, d.Len())
	}
	if d.Slides[1].Title != "Two code" {
		t.Fatalf("title with code span = %q", d.Slides[1].Title)
	}
}

func TestParse_Empty(t *testing.T) {
	for _, src := range []string{"", "\n\n", "---\n---\n", "---\ntitle: x\n---\n"} {
		if _, err := Parse("x.md", []byte(src)); !errors.Is(err, ErrEmptyDeck) {
			t.Fatalf("Parse(%q) err = %v", src, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.md")
	if err := os.WriteFile(path, []byte("# A\r\n\r\ntext\r\n---\r\n# B\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Path != path || d.Len() != 2 || d.Animatable(0) != 2 {
		t.Fatalf("unexpected deck: path=%q len=%d", d.Path, d.Len())
	}
	if got := d.Titles(); got[0] != "A" || got[1] != "B" {
		t.Fatalf("titles = %v", got)
	}
	if _, err := d.Slide(2); err == nil {
		t.Fatalf("expected out of range error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestStarterDeckParses(t *testing.T) {
	d, err := Parse("slides.md", []byte(Starter))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Title != "My Talk" || d.Len() != 6 {
		t.Fatalf("title=%q slides=%d", d.Title, d.Len())
	}
	if d.Slides[3].Blocks[1].Kind != KindCode {
		t.Fatalf("code slide kinds: %+v", d.Slides[3].Blocks)
	}
	if d.Slides[4].Blocks[1].Kind != KindTable {
		t.Fatalf("table slide kinds: %+v", d.Slides[4].Blocks)
	}
}

func TestParse_FenceMarkersMustMatch(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		slides []string
	}{
		{
			name:   "tilde fence holding backticks",
			src:    "# One\n\n~~~md\n```\n---\n~~~\n---\n# Two\n",
			slides: []string{"# One\n\n~~~md\n```\n---\n~~~", "# Two"},
		},
		{
			name:   "long backtick fence holding a short one",
			src:    "# One\n\n````md\n```go\n---\n```\n````\n---\n# Two\n",
			slides: []string{"# One\n\n````md\n```go\n---\n```\n````", "# Two"},
		},
		{
			name:   "closing run may be longer",
			src:    "```\n---\n`````\n---\n# Two\n",
			slides: []string{"```\n---\n`````", "# Two"},
		},
		{
			name:   "closer with info string stays inside",
			src:    "```\n```go\n---\n```\n---\n# Two\n",
			slides: []string{"```\n```go\n---\n```", "# Two"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse("fences.md", []byte(tt.src))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if d.Len() != len(tt.slides) {
				t.Fatalf("got %d slides, want %d", d.Len(), len(tt.slides))
			}
			for i, want := range tt.slides {
				if got := d.Slides[i].Markdown; got != want {
					t.Fatalf("slide %d = %q, want %q", i, got, want)
				}
			}
		})
	}

	d, err := Parse("fences.md", []byte(tests[0].src))
	if err != nil {
		t.Fatal(err)
	}
	b := d.Slides[0].Blocks
	if len(b) != 2 || b[0].Kind != KindHeading || b[1].Kind != KindCode {
		t.Fatalf("blocks = %+v", b)
	}
}
