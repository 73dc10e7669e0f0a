package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"deckctl/internal/deck"
	"deckctl/internal/present"
	"deckctl/internal/system"
)

// Options configures the browser presenter.
type Options struct {
	Addr string
	Deck *deck.Deck
	// Style is the chroma style used for code blocks.
	Style string
	// Watch reloads the deck when its file changes.
	Watch  bool
	Themes present.ThemeStore
}

// Server serves the deck page and hosts one controller per websocket.
type Server struct {
	opts     Options
	renderer *deck.HTMLRenderer
	engine   *gin.Engine

	mu     sync.RWMutex
	deck   *deck.Deck
	slides []template.HTML

	smu      sync.Mutex
	sessions map[string]*session
	base     context.Context
}

// New renders the deck and builds the HTTP routes.
func New(opts Options) (*Server, error) {
	if opts.Deck == nil || opts.Deck.Len() == 0 {
		return nil, deck.ErrEmptyDeck
	}
	s := &Server{
		opts:     opts,
		renderer: deck.NewHTMLRenderer(opts.Style),
		sessions: map[string]*session{},
		base:     context.Background(),
	}
	if err := s.setDeck(opts.Deck); err != nil {
		return nil, err
	}
	s.engine = s.routes()
	return s, nil
}

func (s *Server) routes() *gin.Engine {
	if system.Logger.GetLevel() > clog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(requestLogger())
	r.Use(gin.Recovery())

	r.GET("/", s.pageHandler)
	r.StaticFS("/assets", http.FS(assetFS))
	r.GET("/ws", s.wsHandler)

	api := r.Group("/api")
	api.GET("/health", healthHandler)
	api.GET("/version", versionHandler)
	api.GET("/deck", s.deckHandler)
	return r
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Start listens on the configured address until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done. It returns nil after a
// clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.smu.Lock()
	s.base = ctx
	s.smu.Unlock()

	if s.opts.Watch && s.opts.Deck.Path != "" {
		if err := deck.Watch(ctx, s.opts.Deck.Path, deck.DefaultDebounce, s.reload); err != nil {
			return err
		}
		system.Logger.Info("watching deck", "path", s.opts.Deck.Path)
	}

	srv := &http.Server{Handler: s.engine, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()
	system.Logger.Info("deck server listening", "addr", ln.Addr().String(), "slides", s.current().Len())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) setDeck(d *deck.Deck) error {
	slides, err := s.renderer.Deck(d)
	if err != nil {
		return fmt.Errorf("render deck: %w", err)
	}
	s.mu.Lock()
	s.deck = d
	s.slides = slides
	s.mu.Unlock()
	return nil
}

func (s *Server) current() *deck.Deck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deck
}

func (s *Server) snapshot() (*deck.Deck, []template.HTML) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deck, s.slides
}

// reload re-reads the deck file. Open sessions keep their deck and are
// told to reload the page; a broken file keeps the previous deck.
func (s *Server) reload() {
	path := s.current().Path
	d, err := deck.Load(path)
	if err != nil {
		system.Logger.Warn("deck reload failed", "path", path, "err", err)
		return
	}
	if err := s.setDeck(d); err != nil {
		system.Logger.Warn("deck reload failed", "path", path, "err", err)
		return
	}
	system.Logger.Info("deck reloaded", "slides", d.Len())
	s.smu.Lock()
	defer s.smu.Unlock()
	for _, ss := range s.sessions {
		ss.emit(command{Type: cmdReload})
	}
}

func (s *Server) track(ss *session) context.Context {
	s.smu.Lock()
	defer s.smu.Unlock()
	s.sessions[ss.id] = ss
	return s.base
}

func (s *Server) untrack(ss *session) {
	s.smu.Lock()
	delete(s.sessions, ss.id)
	s.smu.Unlock()
}

// SessionCount is the number of connected presenters.
func (s *Server) SessionCount() int {
	s.smu.Lock()
	defer s.smu.Unlock()
	return len(s.sessions)
}

// requestLogger writes one line per request to the shared logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		kv := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"dur", time.Since(start).Round(time.Microsecond),
		}
		if status >= http.StatusInternalServerError {
			system.Logger.Warn("http", kv...)
			return
		}
		system.Logger.Debug("http", kv...)
	}
}
