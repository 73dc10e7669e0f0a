package config

import "time"

// Config is the top-level deckctl configuration, loaded from deckctl.yaml
// and DECKCTL_* environment overrides.
type Config struct {
	Deck   string       `yaml:"deck" koanf:"deck" json:"deck,omitempty" jsonschema:"description=Markdown deck presented when no path argument is given"`
	Server ServerConfig `yaml:"server" koanf:"server" json:"server"`
	Export ExportConfig `yaml:"export" koanf:"export" json:"export"`
}

// ServerConfig configures the browser presenter.
type ServerConfig struct {
	Addr           string `yaml:"addr" koanf:"addr" json:"addr" jsonschema:"description=Listen address,default=127.0.0.1:8787"`
	Open           bool   `yaml:"open" koanf:"open" json:"open" jsonschema:"description=Open the default browser after start"`
	Watch          bool   `yaml:"watch" koanf:"watch" json:"watch" jsonschema:"description=Reload the deck when the file changes"`
	HighlightStyle string `yaml:"highlight_style" koanf:"highlight_style" json:"highlight_style,omitempty" jsonschema:"description=Chroma style for code blocks"`
}

// ExportConfig configures PDF export.
type ExportConfig struct {
	Output     string        `yaml:"output" koanf:"output" json:"output" jsonschema:"description=PDF file written by deckctl export"`
	Width      int           `yaml:"width" koanf:"width" json:"width" jsonschema:"description=Page width in CSS pixels,minimum=1"`
	Height     int           `yaml:"height" koanf:"height" json:"height" jsonschema:"description=Page height in CSS pixels,minimum=1"`
	Timeout    time.Duration `yaml:"timeout" koanf:"timeout" json:"timeout" jsonschema:"type=string,description=Upper bound for the page to reach network idle (e.g. 30s)"`
	Settle     time.Duration `yaml:"settle" koanf:"settle" json:"settle" jsonschema:"type=string,description=Delay after load so fonts and animations settle (e.g. 2s)"`
	ChromePath string        `yaml:"chrome_path" koanf:"chrome_path" json:"chrome_path,omitempty" jsonschema:"description=Chrome or Chromium binary; empty searches PATH"`
	NoSandbox  bool          `yaml:"no_sandbox" koanf:"no_sandbox" json:"no_sandbox" jsonschema:"description=Launch the browser with --no-sandbox"`
}

// exportYAML mirrors ExportConfig with human-readable durations.
type exportYAML struct {
	Output     string `yaml:"output"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Timeout    string `yaml:"timeout"`
	Settle     string `yaml:"settle"`
	ChromePath string `yaml:"chrome_path,omitempty"`
	NoSandbox  bool   `yaml:"no_sandbox"`
}

// MarshalYAML writes durations as strings such as "30s".
func (e ExportConfig) MarshalYAML() (any, error) {
	return exportYAML{
		Output:     e.Output,
		Width:      e.Width,
		Height:     e.Height,
		Timeout:    e.Timeout.String(),
		Settle:     e.Settle.String(),
		ChromePath: e.ChromePath,
		NoSandbox:  e.NoSandbox,
	}, nil
}
