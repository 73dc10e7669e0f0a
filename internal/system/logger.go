package system

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger for CLI output.
// It prints to stderr with timestamps enabled for better UX.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "deckctl",
})

// SetDebug raises or lowers the shared logger's level.
func SetDebug(on bool) {
	if on {
		Logger.SetLevel(clog.DebugLevel)
		return
	}
	Logger.SetLevel(clog.InfoLevel)
}

// Redirect sends log output to w and returns a func restoring stderr.
// The terminal presenter uses it so log lines never draw over the screen.
func Redirect(w io.Writer) func() {
	Logger.SetOutput(w)
	return func() { Logger.SetOutput(os.Stderr) }
}
