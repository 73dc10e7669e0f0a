package config

import "time"

// Export defaults match a 16:9 slide at 1280×720 CSS pixels.
const (
	DefaultWidth   = 1280
	DefaultHeight  = 720
	DefaultTimeout = 30 * time.Second
	DefaultSettle  = 2 * time.Second
	DefaultAddr    = "127.0.0.1:8787"
	DefaultOutput  = "slides.pdf"
)

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           DefaultAddr,
			Open:           true,
			HighlightStyle: "github",
		},
		Export: ExportConfig{
			Output:    DefaultOutput,
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Timeout:   DefaultTimeout,
			Settle:    DefaultSettle,
			NoSandbox: true,
		},
	}
}
