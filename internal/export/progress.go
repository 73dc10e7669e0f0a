package export

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"

	"deckctl/internal/system"
)

// Reporter receives export progress, one step per stage.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a progress bar on w when running interactively, or a
// line-per-stage logger in CI.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LogReporter{}
	}
	return &BarReporter{w: w}
}

// BarReporter displays a progress bar in the terminal.
type BarReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (r *BarReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription("Exporting"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LogReporter writes each stage to the shared logger.
type LogReporter struct {
	total int
}

func (r *LogReporter) Start(total int) { r.total = total }

func (r *LogReporter) Update(current int, message string) {
	system.Logger.Info(message, "step", current, "of", r.total)
}

func (r *LogReporter) Finish() {}

type nopReporter struct{}

func (nopReporter) Start(int)          {}
func (nopReporter) Update(int, string) {}
func (nopReporter) Finish()            {}
