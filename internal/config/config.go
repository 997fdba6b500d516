// Package config provides YAML-based loading of user preferences for the
// dye command-line tool.
package config

// Config contains all user-adjustable settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	REPL    REPLConfig    `yaml:"repl"`
	Palette PaletteConfig `yaml:"palette"`
}

// OutputConfig controls how colors are printed.
type OutputConfig struct {
	UppercaseHex bool `yaml:"uppercase_hex"` // Print hex codes as #RRGGBB instead of #rrggbb
	Swatch       bool `yaml:"swatch"`        // Print a colored swatch next to values
}

// REPLConfig controls the interactive session.
type REPLConfig struct {
	Prompt      string `yaml:"prompt"`       // Prompt shown before the input line
	HistorySize int    `yaml:"history_size"` // Number of result lines kept on screen
}

// PaletteConfig controls palette persistence.
type PaletteConfig struct {
	DBPath string `yaml:"db_path"` // Path to the palette database
}
