package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"deckctl/internal/deck"
	"deckctl/internal/prefs"
	"deckctl/internal/present"
)

const testDeck = `---
title: Web Demo
---
# One

hello
---
# Two

- a
- b
---
# Three
`

func newTestServer(t *testing.T) (*Server, *httptest.Server, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "slides.md")
	if err := os.WriteFile(path, []byte(testDeck), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := deck.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, err := New(Options{Addr: "127.0.0.1:0", Deck: d, Themes: prefs.New(filepath.Join(dir, "prefs.json"))})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts, path
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestNew_RejectsEmptyDeck(t *testing.T) {
	if _, err := New(Options{Deck: &deck.Deck{}}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestAPI(t *testing.T) {
	_, ts, _ := newTestServer(t)

	code, body := get(t, ts.URL+"/api/health")
	if code != http.StatusOK || !strings.Contains(body, `"ok"`) {
		t.Fatalf("health: %d %s", code, body)
	}
	code, body = get(t, ts.URL+"/api/version")
	if code != http.StatusOK || !strings.Contains(body, `"version"`) {
		t.Fatalf("version: %d %s", code, body)
	}

	code, body = get(t, ts.URL+"/api/deck")
	if code != http.StatusOK {
		t.Fatalf("deck: %d", code)
	}
	var outline struct {
		Title  string `json:"title"`
		Total  int    `json:"total"`
		Slides []struct {
			Title  string `json:"title"`
			Blocks []struct {
				Kind string `json:"kind"`
			} `json:"blocks"`
		} `json:"slides"`
	}
	if err := json.Unmarshal([]byte(body), &outline); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if outline.Title != "Web Demo" || outline.Total != 3 || outline.Slides[1].Title != "Two" {
		t.Fatalf("unexpected outline: %+v", outline)
	}
	if got := outline.Slides[1].Blocks[1].Kind; got != "list" {
		t.Fatalf("block kind = %q", got)
	}
}

func TestPage(t *testing.T) {
	_, ts, _ := newTestServer(t)
	code, body := get(t, ts.URL+"/")
	if code != http.StatusOK {
		t.Fatalf("page: %d", code)
	}
	for _, want := range []string{
		`data-theme="dark"`,
		`<section class="slide" id="slide-2" data-index="2">`,
		`data-ordinal="1"`,
		`1 / 3`,
		`fa-moon`,
		`/assets/deck.js`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}

	_, body = get(t, ts.URL+"/?print=1")
	if !strings.Contains(body, "print-mode") || strings.Contains(body, "deck.js") {
		t.Fatalf("print page should be static")
	}

	code, body = get(t, ts.URL+"/assets/deck.css")
	if code != http.StatusOK || !strings.Contains(body, "@page") {
		t.Fatalf("css: %d", code)
	}
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntil returns the first command of type typ.
func readUntil(t *testing.T, conn *websocket.Conn, typ string) command {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		var cmd command
		if err := conn.ReadJSON(&cmd); err != nil {
			t.Fatalf("waiting for %q: %v", typ, err)
		}
		if cmd.Type == typ {
			return cmd
		}
	}
}

func TestSession_NavigatesAndAnimates(t *testing.T) {
	s, ts, _ := newTestServer(t)
	conn := dial(t, ts)

	hello := readUntil(t, conn, cmdHello)
	if hello.Session == "" {
		t.Fatalf("missing session id")
	}
	if th := readUntil(t, conn, cmdTheme); th.Theme != present.ThemeDark {
		t.Fatalf("theme = %q", th.Theme)
	}
	first := readUntil(t, conn, cmdAnimate)
	if first.Index != 0 || len(first.Delays) != 2 || first.Delays[1] != 100 {
		t.Fatalf("first animation: %+v", first)
	}
	if n := s.SessionCount(); n != 1 {
		t.Fatalf("sessions = %d", n)
	}

	if err := conn.WriteJSON(inbound{Type: "key", Key: "ArrowRight"}); err != nil {
		t.Fatal(err)
	}
	ch := readUntil(t, conn, cmdChrome)
	if ch.Chrome == nil || ch.Chrome.Current != 1 || ch.Chrome.Counter != "2 / 3" {
		t.Fatalf("chrome after next: %+v", ch.Chrome)
	}
	if sc := readUntil(t, conn, cmdScroll); sc.Index != 1 {
		t.Fatalf("scroll index = %d", sc.Index)
	}
	if rs := readUntil(t, conn, cmdReset); rs.Index != 1 {
		t.Fatalf("reset index = %d", rs.Index)
	}
	if an := readUntil(t, conn, cmdAnimate); an.Index != 1 || len(an.Delays) != 2 {
		t.Fatalf("animate: %+v", an)
	}

	// keys typed into a form field are ignored
	_ = conn.WriteJSON(inbound{Type: "key", Key: "ArrowRight", Target: "INPUT"})
	_ = conn.WriteJSON(inbound{Type: "click", Control: "present"})
	if fs := readUntil(t, conn, cmdFullscreen); !fs.On {
		t.Fatalf("expected fullscreen request")
	}
	ch = readUntil(t, conn, cmdChrome)
	if !ch.Chrome.Presenting || ch.Chrome.Current != 1 {
		t.Fatalf("presentation chrome: %+v", ch.Chrome)
	}
	if act := readUntil(t, conn, cmdActive); act.Index != -1 {
		t.Fatalf("first active command should clear, got %d", act.Index)
	}
	if act := readUntil(t, conn, cmdActive); act.Index != 1 {
		t.Fatalf("active = %d want 1", act.Index)
	}
}

func TestSession_ThemeToggleAndReload(t *testing.T) {
	s, ts, path := newTestServer(t)
	conn := dial(t, ts)
	readUntil(t, conn, cmdHello)

	_ = conn.WriteJSON(inbound{Type: "click", Control: "theme"})
	// the initial theme command comes first
	readUntil(t, conn, cmdTheme)
	if th := readUntil(t, conn, cmdTheme); th.Theme != present.ThemeLight {
		t.Fatalf("theme = %q", th.Theme)
	}
	if got, err := s.opts.Themes.LoadTheme(); err != nil || got != present.ThemeLight {
		t.Fatalf("persisted theme = %q err=%v", got, err)
	}

	if err := os.WriteFile(path, []byte(testDeck+"---\n# Four\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s.reload()
	readUntil(t, conn, cmdReload)
	if n := s.current().Len(); n != 4 {
		t.Fatalf("reloaded deck has %d slides", n)
	}
}

func TestInboundEvents(t *testing.T) {
	tests := []struct {
		in   inbound
		want present.Event
	}{
		{inbound{Type: "key", Key: "End", Target: "BODY"}, present.KeyEvent{Key: "End", Target: "BODY"}},
		{inbound{Type: "click", Control: "dot", Index: 2}, present.ClickEvent{Control: present.ControlDot, Index: 2}},
		{inbound{Type: "swipe", StartX: 300, EndX: 100}, present.SwipeEvent{StartX: 300, EndX: 100}},
		{inbound{Type: "visible", Index: 1, Ratio: 0.5}, present.VisibleEvent{Index: 1, Ratio: 0.5}},
	}
	for _, tt := range tests {
		got, ok := tt.in.event()
		if !ok || got != tt.want {
			t.Errorf("%s: got %#v", tt.in.Type, got)
		}
	}
	if _, ok := (inbound{Type: "nope"}).event(); ok {
		t.Errorf("unknown type accepted")
	}
}

func TestLocalURL(t *testing.T) {
	cases := map[string]string{
		"127.0.0.1:8787": "http://127.0.0.1:8787/",
		":9000":          "http://127.0.0.1:9000/",
		"0.0.0.0:80":     "http://127.0.0.1:80/",
		"[::1]:8080":     "http://[::1]:8080/",
	}
	for in, want := range cases {
		if got := LocalURL(in); got != want {
			t.Errorf("LocalURL(%q) = %q want %q", in, got, want)
		}
	}
}
