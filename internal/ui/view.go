package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	runewidth "github.com/mattn/go-runewidth"

	appver "deckctl/internal/version"
)

// sidebarMinWidth is the terminal width below which the slide list hides.
const sidebarMinWidth = 80

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading…"
	}
	st := m.ctrl.State()
	p := paletteFor(m.scr.theme)

	var top string
	if !m.scr.fullscreen {
		top = m.renderHeader(p)
	}
	footer := m.renderFooter(p)
	bodyH := m.height - lipgloss.Height(footer)
	if top != "" {
		bodyH -= lipgloss.Height(top)
	}
	if bodyH < 3 {
		bodyH = 3
	}

	var body string
	switch {
	case m.find.open:
		body = m.renderFinder(p, m.width, bodyH)
	case st.Presenting:
		body = m.renderSlide(m.scr.shown(true), m.width, bodyH, true)
	default:
		body = m.renderScrollMode(p, bodyH)
	}

	parts := make([]string, 0, 3)
	if top != "" {
		parts = append(parts, top)
	}
	parts = append(parts, body, footer)
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderHeader shows the deck title, git status and the toggle buttons.
func (m model) renderHeader(p designTheme) string {
	v := m.scr.chrome
	left := p.accentBold().Render(IconDeck()+" "+m.deck.Title) +
		p.muted().Render("  ·  "+m.slideTitle(m.ctrl.State().Current))

	rightParts := []string{}
	if m.git.InRepo && m.git.Branch != "" {
		g := IconBranch() + " " + m.git.Branch
		if m.git.Dirty {
			g += " " + IconDirty()
		}
		rightParts = append(rightParts, p.muted().Render(g))
	}
	rightParts = append(rightParts,
		zone.Mark(zoneTheme, p.button(chromeIcon(v.ThemeIcon), true)),
		zone.Mark(zonePresent, p.button(chromeIcon(v.PresentIcon), true)),
	)
	right := strings.Join(rightParts, " ")
	return joinEdges(m.width, left, right)
}

// renderScrollMode lays out the slide list next to the viewed slide.
func (m model) renderScrollMode(p designTheme, h int) string {
	if m.width < sidebarMinWidth {
		return m.renderSlide(m.scr.shown(false), m.width, h, false)
	}
	sideW := m.width / 4
	if sideW > 32 {
		sideW = 32
	}
	side := m.renderSidebar(p, sideW, h)
	main := m.renderSlide(m.scr.shown(false), m.width-sideW-1, h, false)
	sep := p.border().Render(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, side, sep, main)
}

func (m model) renderSidebar(p designTheme, w, h int) string {
	cur := m.ctrl.State().Current
	lines := make([]string, 0, m.deck.Len())
	for i, t := range m.deck.Titles() {
		label := runewidth.Truncate(fmt.Sprintf("%2d %s", i+1, t), w-2, "…")
		style := lipgloss.NewStyle().Foreground(p.Secondary).Width(w)
		switch {
		case i == cur:
			style = style.Bold(true).Foreground(p.Primary)
			label = "▶" + label
		case i == m.scr.viewing:
			style = style.Foreground(p.Text)
			label = "›" + label
		default:
			label = " " + label
		}
		lines = append(lines, zone.Mark(sideZone(i), style.Render(label)))
	}
	// keep the current slide in view on long decks
	if len(lines) > h {
		start := cur - h/2
		if start < 0 {
			start = 0
		}
		if start > len(lines)-h {
			start = len(lines) - h
		}
		lines = lines[start : start+h]
	}
	return lipgloss.NewStyle().Width(w).Height(h).Render(strings.Join(lines, "\n"))
}

// renderSlide draws the revealed blocks of slide i in a w×h box.
func (m model) renderSlide(i, w, h int, center bool) string {
	content := m.slides.render(i, m.scr.revealed(i), w, m.scr.theme)
	if lipgloss.Height(content) > h {
		lines := strings.Split(content, "\n")
		content = strings.Join(lines[:h], "\n")
	}
	if center {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
	}
	return lipgloss.NewStyle().Width(w).Height(h).Render(content)
}

func (m model) renderFinder(p designTheme, w, h int) string {
	var b strings.Builder
	b.WriteString(p.accentBold().Render(IconSearch() + " Go to slide"))
	b.WriteString("\n")
	b.WriteString(m.find.input.View())
	b.WriteString("\n\n")
	if len(m.find.matches) == 0 {
		b.WriteString(p.muted().Render("  no matches"))
	}
	for i, mt := range m.find.matches {
		line := fmt.Sprintf("  %2d  %s", mt.Index+1, m.deck.Slides[mt.Index].Title)
		if i == m.find.sel {
			line = p.accentBold().Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + p.muted().Render("  ↑/↓ select · enter go · esc close"))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		Render(b.String())
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}

// renderFooter draws the progress bar, the navigation line and key help.
func (m model) renderFooter(p designTheme) string {
	v := m.scr.chrome
	bar := " " + m.bar.ViewAs(v.Progress)

	prev := zone.Mark(zonePrev, p.button(IconPrev(), v.CanPrev))
	next := zone.Mark(zoneNext, p.button(IconNext(), v.CanNext))
	dots := make([]string, len(v.Dots))
	for i, on := range v.Dots {
		d := p.muted().Render(IconDotOff())
		if on {
			d = lipgloss.NewStyle().Foreground(p.Primary).Render(IconDot())
		}
		dots[i] = zone.Mark(dotZone(i), d)
	}
	nav := prev + " " + strings.Join(dots, " ") + " " + next
	if xansi.StringWidth(nav) > m.width-14 {
		// too many dots to fit; keep the buttons only
		nav = prev + " " + next
	}
	counter := p.chip(v.Counter, p.Blue)
	line := joinEdges(m.width, " "+nav, counter+" "+p.muted().Render("v"+appver.AppVersion)+" ")

	return strings.Join([]string{bar, line, " " + m.help.View(keys)}, "\n")
}

func (m model) slideTitle(i int) string {
	if i < 0 || i >= m.deck.Len() {
		return ""
	}
	return m.deck.Slides[i].Title
}

// joinEdges places left and right on one line of the given width.
func joinEdges(width int, left, right string) string {
	lw := xansi.StringWidth(left)
	rw := xansi.StringWidth(right)
	if lw+rw >= width {
		left = xansi.Truncate(left, maxInt(0, width-rw-1), "…")
		lw = xansi.StringWidth(left)
	}
	pad := maxInt(1, width-lw-rw)
	return left + strings.Repeat(" ", pad) + right
}
