package config

import (
	_ "embed"
)

//go:embed defaults/dye.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Output: OutputConfig{
			UppercaseHex: false,
			Swatch:       true,
		},
		REPL: REPLConfig{
			Prompt:      "dye> ",
			HistorySize: 200,
		},
		Palette: PaletteConfig{
			DBPath: "~/.dye/palettes.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
