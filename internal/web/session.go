package web

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"deckctl/internal/deck"
	"deckctl/internal/present"
	"deckctl/internal/system"
)

// wsUpgrader upgrades HTTP connections to WebSocket.
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The server binds to localhost by default.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	writeWait   = 5 * time.Second
	outboxSize  = 64
	loopBacklog = 32
)

// Server-to-page command types.
const (
	cmdHello      = "hello"
	cmdChrome     = "chrome"
	cmdTheme      = "theme"
	cmdScroll     = "scroll"
	cmdActive     = "active"
	cmdReset      = "reset"
	cmdAnimate    = "animate"
	cmdFullscreen = "fullscreen"
	cmdReload     = "reload"
)

// command is one display instruction for the page.
type command struct {
	Type    string              `json:"type"`
	Session string              `json:"session,omitempty"`
	Index   int                 `json:"index"`
	Chrome  *present.ChromeView `json:"chrome,omitempty"`
	Theme   present.Theme       `json:"theme,omitempty"`
	Delays  []int64             `json:"delays,omitempty"`
	On      bool                `json:"on,omitempty"`
}

// inbound is a raw input event sent by the page.
type inbound struct {
	Type    string  `json:"type"`
	Key     string  `json:"key"`
	Target  string  `json:"target"`
	Control string  `json:"control"`
	Index   int     `json:"index"`
	StartX  float64 `json:"startX"`
	EndX    float64 `json:"endX"`
	Ratio   float64 `json:"ratio"`
}

func (m inbound) event() (present.Event, bool) {
	switch m.Type {
	case "key":
		return present.KeyEvent{Key: m.Key, Target: m.Target}, true
	case "click":
		return present.ClickEvent{Control: present.Control(m.Control), Index: m.Index}, true
	case "swipe":
		return present.SwipeEvent{StartX: m.StartX, EndX: m.EndX}, true
	case "visible":
		return present.VisibleEvent{Index: m.Index, Ratio: m.Ratio}, true
	}
	return nil, false
}

// session is one browser presenter. Its controller and timers run on the
// goroutine that serves the websocket request.
type session struct {
	id     string
	conn   *websocket.Conn
	loop   *present.Loop
	timers *present.Timers
	ctrl   *present.Controller
	out    chan command

	ctx    context.Context
	cancel context.CancelFunc
}

func newSession(ctx context.Context, conn *websocket.Conn, d *deck.Deck, themes present.ThemeStore) *session {
	ss := &session{
		id:   uuid.NewString(),
		conn: conn,
		loop: present.NewLoop(loopBacklog),
		out:  make(chan command, outboxSize),
	}
	ss.ctx, ss.cancel = context.WithCancel(ctx)
	ss.timers = present.NewTimers(func(fn func()) { ss.loop.Post(fn) })
	ss.ctrl = present.NewController(d, ss, ss.timers, themes,
		present.WithLogger(system.Logger.With("session", ss.id[:8])))
	return ss
}

func (s *Server) wsHandler(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		system.Logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	d, _ := s.snapshot()
	ss := newSession(context.Background(), conn, d, s.opts.Themes)
	base := s.track(ss)
	defer s.untrack(ss)
	stop := context.AfterFunc(base, ss.cancel)
	defer stop()

	system.Logger.Debug("session opened", "id", ss.id, "remote", c.Request.RemoteAddr)
	ss.run()
	system.Logger.Debug("session closed", "id", ss.id)
}

// run serves the session until the page disconnects or the server stops.
func (ss *session) run() {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		ss.writeLoop()
	}()
	go func() {
		defer wg.Done()
		ss.readLoop()
	}()

	ss.loop.Post(func() {
		ss.emit(command{Type: cmdHello, Session: ss.id})
		ss.ctrl.Start()
	})
	ss.loop.Run(ss.ctx)

	ss.timers.CancelAll()
	ss.loop.Close()
	ss.cancel()
	_ = ss.conn.Close()
	wg.Wait()
}

func (ss *session) readLoop() {
	defer ss.cancel()
	for {
		_, data, err := ss.conn.ReadMessage()
		if err != nil {
			return
		}
		var m inbound
		if err := json.Unmarshal(data, &m); err != nil {
			system.Logger.Debug("bad message", "session", ss.id, "err", err)
			continue
		}
		ev, ok := m.event()
		if !ok {
			continue
		}
		if !ss.loop.Post(func() { ss.ctrl.Dispatch(ev) }) {
			return
		}
	}
}

func (ss *session) writeLoop() {
	for {
		select {
		case <-ss.ctx.Done():
			_ = ss.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
				time.Now().Add(writeWait))
			return
		case cmd := <-ss.out:
			_ = ss.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ss.conn.WriteJSON(cmd); err != nil {
				ss.cancel()
				return
			}
		}
	}
}

// emit queues cmd for the page; it gives up once the session ends.
func (ss *session) emit(cmd command) {
	select {
	case ss.out <- cmd:
	case <-ss.ctx.Done():
	}
}

// present.Display

func (ss *session) ApplyChrome(v present.ChromeView) {
	ss.emit(command{Type: cmdChrome, Chrome: &v})
}

func (ss *session) ApplyTheme(t present.Theme) {
	ss.emit(command{Type: cmdTheme, Theme: t})
}

func (ss *session) ScrollTo(index int) {
	ss.emit(command{Type: cmdScroll, Index: index})
}

func (ss *session) SetActive(index int) {
	ss.emit(command{Type: cmdActive, Index: index})
}

func (ss *session) ResetAnimation(index int) {
	ss.emit(command{Type: cmdReset, Index: index})
}

func (ss *session) PlayAnimation(index int, plan []present.Reveal) {
	delays := make([]int64, len(plan))
	for i, r := range plan {
		delays[i] = r.Delay.Milliseconds()
	}
	ss.emit(command{Type: cmdAnimate, Index: index, Delays: delays})
}

// RequestFullscreen asks the page to go full screen. The browser may refuse
// without a user gesture; the page ignores that.
func (ss *session) RequestFullscreen() error {
	ss.emit(command{Type: cmdFullscreen, On: true})
	return nil
}

func (ss *session) ExitFullscreen() {
	ss.emit(command{Type: cmdFullscreen})
}
