package ui

import (
	"os"

	"deckctl/internal/present"
)

// nfEnabled returns true when Nerd Font icons should be rendered.
// Default to enabled; allow disabling via NERDFONT=0.
func nfEnabled() bool {
	return os.Getenv("NERDFONT") != "0"
}

func nf(icon, fallback string) string {
	if nfEnabled() {
		return icon
	}
	return fallback
}

// Navigation icons
func IconPrev() string   { return nf("", "<") } // fa-chevron-left
func IconNext() string   { return nf("", ">") } // fa-chevron-right
func IconDot() string    { return nf("", "●") } // fa-circle
func IconDotOff() string { return nf("", "○") } // fa-circle-o

// chromeIcon maps the icon names carried by present.ChromeView to glyphs.
func chromeIcon(name string) string {
	switch name {
	case present.IconSun:
		return nf("", "☀")
	case present.IconMoon:
		return nf("", "☾")
	case present.IconExpand:
		return nf("", "[ ]")
	case present.IconCompress:
		return nf("", "][")
	}
	return name
}

// Status line icons
func IconDeck() string   { return nf("", "#") }  // fa-file-powerpoint-o
func IconBranch() string { return nf("", "br") } // powerline branch
func IconDirty() string  { return nf("", "*") }  // fa-exclamation-circle
func IconSearch() string { return nf("", "/") }  // fa-search
