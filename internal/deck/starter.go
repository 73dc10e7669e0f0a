package deck

// Starter is the deck written by `deckctl init`.
const Starter = `---
title: My Talk
author: You
---
# My Talk

A markdown deck presented with deckctl

---
# Navigating

- ← / → or PageUp / PageDown move between slides
- Home / End jump to the first and last slide
- f toggles presentation mode, Esc leaves it
- t switches between dark and light

---
# Blocks appear one by one

Each paragraph, list, quote, table or code block is revealed in turn.

> Separate blocks with a blank line.

---
# Code

` + "```go" + `
func main() {
	fmt.Println("hello, deck")
}
` + "```" + `

---
# Tables

| Command | What it does |
|---|---|
| deckctl present | terminal presenter |
| deckctl serve | browser presenter |
| deckctl export | PDF via headless Chrome |

---
# Thanks
`
