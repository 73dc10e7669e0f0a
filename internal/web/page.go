package web

import (
	"embed"
	"html/template"
	"io/fs"

	"deckctl/internal/present"
)

//go:embed assets
var embedded embed.FS

// assetFS holds the stylesheet and script served under /assets.
var assetFS, _ = fs.Sub(embedded, "assets")

var pageTmpl = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).ParseFS(embedded, "assets/page.html"))

type pageData struct {
	Title   string
	Author  string
	Slides  []template.HTML
	Theme   present.Theme
	Print   bool
	Chrome  present.ChromeView
	Version string
}
