package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"deckctl/internal/config"
	"deckctl/internal/deck"
	"deckctl/internal/present"
	"deckctl/internal/system"
	"deckctl/internal/web"
)

// ErrNoBrowser is returned when no Chrome or Chromium binary can be started.
var ErrNoBrowser = errors.New("chrome not found")

// cssPxPerInch converts CSS pixels to the inches PrintToPDF expects.
const cssPxPerInch = 96.0

// Options controls one PDF export.
type Options struct {
	// URL of the deck page. Empty means the caller serves the deck itself.
	URL        string
	Output     string
	Width      int
	Height     int
	Timeout    time.Duration
	Settle     time.Duration
	ChromePath string
	NoSandbox  bool
	Reporter   Reporter
}

// FromConfig builds options from the export section of the config.
func FromConfig(c config.ExportConfig) Options {
	return Options{
		Output:     c.Output,
		Width:      c.Width,
		Height:     c.Height,
		Timeout:    c.Timeout,
		Settle:     c.Settle,
		ChromePath: c.ChromePath,
		NoSandbox:  c.NoSandbox,
	}
}

// Validate checks that the options describe a printable page.
func (o Options) Validate() error {
	if strings.TrimSpace(o.URL) == "" {
		return errors.New("export: url is required")
	}
	if !strings.EqualFold(filepath.Ext(o.Output), ".pdf") {
		return fmt.Errorf("export: output %q must end in .pdf", o.Output)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("export: invalid page size %dx%d", o.Width, o.Height)
	}
	if o.Timeout <= 0 {
		return errors.New("export: timeout must be positive")
	}
	if o.Settle < 0 {
		return errors.New("export: settle must not be negative")
	}
	return nil
}

// Result describes the written PDF.
type Result struct {
	Path  string
	Bytes int64
}

// MB is the file size in megabytes.
func (r Result) MB() float64 { return float64(r.Bytes) / 1024 / 1024 }

// Export prints the page at o.URL to o.Output with headless Chrome. It
// fails on the first error; there is no retry.
func Export(ctx context.Context, o Options) (Result, error) {
	if err := o.Validate(); err != nil {
		return Result{}, err
	}
	if o.ChromePath != "" {
		if _, err := exec.LookPath(o.ChromePath); err != nil {
			return Result{}, fmt.Errorf("%w: %s", ErrNoBrowser, o.ChromePath)
		}
	}
	rep := o.Reporter
	if rep == nil {
		rep = nopReporter{}
	}
	rep.Start(5)
	defer rep.Finish()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(o.Width, o.Height),
	)
	if o.NoSandbox {
		allocOpts = append(allocOpts, chromedp.NoSandbox, chromedp.Flag("disable-setuid-sandbox", true))
	}
	if o.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(o.ChromePath))
	}
	actx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()
	bctx, cancelBrowser := chromedp.NewContext(actx, chromedp.WithLogf(system.Logger.Debugf))
	defer cancelBrowser()

	rep.Update(1, "launching browser")
	if err := chromedp.Run(bctx); err != nil {
		return Result{}, browserErr(err)
	}

	// networkIdle events before navigation belong to about:blank
	var navigating atomic.Bool
	idle := make(chan struct{}, 1)
	chromedp.ListenTarget(bctx, func(ev any) {
		if e, ok := ev.(*page.EventLifecycleEvent); ok && e.Name == "networkIdle" && navigating.Load() {
			select {
			case idle <- struct{}{}:
			default:
			}
		}
	})

	rep.Update(2, "loading "+o.URL)
	system.Logger.Debug("loading deck page", "url", o.URL, "timeout", o.Timeout)
	lctx, cancelLoad := context.WithTimeout(bctx, o.Timeout)
	err := chromedp.Run(lctx,
		page.SetLifecycleEventsEnabled(true),
		chromedp.ActionFunc(func(context.Context) error {
			navigating.Store(true)
			return nil
		}),
		chromedp.Navigate(o.URL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			select {
			case <-idle:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}),
	)
	cancelLoad()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{}, fmt.Errorf("export: page did not reach network idle within %s: %w", o.Timeout, err)
		}
		return Result{}, fmt.Errorf("export: load %s: %w", o.URL, err)
	}

	rep.Update(3, "waiting for fonts")
	var pdf []byte
	err = chromedp.Run(bctx,
		chromedp.Sleep(o.Settle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			rep.Update(4, "printing")
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(float64(o.Width) / cssPxPerInch).
				WithPaperHeight(float64(o.Height) / cssPxPerInch).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				WithDisplayHeaderFooter(false).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return Result{}, fmt.Errorf("export: print: %w", err)
	}

	rep.Update(5, "writing "+o.Output)
	if dir := filepath.Dir(o.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("export: %w", err)
		}
	}
	if err := os.WriteFile(o.Output, pdf, 0o644); err != nil {
		return Result{}, fmt.Errorf("export: write pdf: %w", err)
	}
	return Result{Path: o.Output, Bytes: int64(len(pdf))}, nil
}

func browserErr(err error) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrNoBrowser, err)
	}
	return fmt.Errorf("export: start browser: %w", err)
}

// ServeDeck serves d in print layout on an ephemeral localhost port. stop
// shuts the server down and waits for it.
func ServeDeck(ctx context.Context, d *deck.Deck, style string, themes present.ThemeStore) (url string, stop func(), err error) {
	srv, err := web.New(web.Options{Deck: d, Style: style, Themes: themes})
	if err != nil {
		return "", nil, err
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, fmt.Errorf("export: listen: %w", err)
	}
	sctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- srv.Serve(sctx, ln) }()
	stop = func() {
		cancel()
		if err := <-done; err != nil {
			system.Logger.Debug("print server stopped", "err", err)
		}
	}
	return "http://" + ln.Addr().String() + "/?print=1", stop, nil
}
