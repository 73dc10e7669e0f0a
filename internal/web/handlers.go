package web

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"deckctl/internal/present"
	appver "deckctl/internal/version"
)

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func versionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion, "commit": appver.Commit})
}

// deckHandler returns the deck outline: titles and block kinds per slide.
func (s *Server) deckHandler(c *gin.Context) {
	d := s.current()
	c.JSON(http.StatusOK, gin.H{
		"title":  d.Title,
		"author": d.Author,
		"total":  d.Len(),
		"slides": d.Slides,
	})
}

func (s *Server) pageHandler(c *gin.Context) {
	d, slides := s.snapshot()
	theme := present.DefaultTheme
	if s.opts.Themes != nil {
		if t, err := s.opts.Themes.LoadTheme(); err == nil {
			theme = t
		}
	}
	data := pageData{
		Title:   d.Title,
		Author:  d.Author,
		Slides:  slides,
		Theme:   theme,
		Print:   c.Query("print") == "1",
		Chrome:  present.DeriveChrome(present.NewState(theme), d.Len()),
		Version: appver.AppVersion,
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
