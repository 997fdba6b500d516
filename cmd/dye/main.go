// dye is a terminal color toolbox for converting, inspecting and organizing
// colors.
//
// Usage:
//
//	dye convert <from> <to> <values...>  - Convert between color models
//	dye show <color>                     - Show a color in every model
//	dye names [query]                    - List or search named colors
//	dye random                           - Pick a random color
//	dye palette <subcommand>             - Manage saved palettes
//	dye repl                             - Start the interactive session
//	dye serve                            - Start SSH server for remote sessions
//
// Global flags:
//
//	--config <path>  - Config file path (default: ~/.dye/config.yaml)
//	--db <path>      - Palette database path (overrides config)
//	--uppercase      - Print hex codes in uppercase
//	--no-swatch      - Disable color swatches in output
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sfm61319/dye/internal/config"
	"github.com/sfm61319/dye/internal/palette"
)

var (
	// Global flags
	flagConfigPath string
	flagDBPath     string
	flagUppercase  bool
	flagNoSwatch   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dye",
	Short: "dye - A color toolbox for your terminal",
	Long: `dye converts colors between models, looks up named colors and keeps
your palettes in a local database.

Supported models: hex, rgb, hsv (hsb), hsl, yiq, cmyk.
All conversions pivot through RGB; out-of-range channel values are
clamped rather than rejected.

Examples:
  dye convert hex rgb "#0078d7"
  dye convert rgb hsl 29 185 84
  dye show windowsblue
  dye names green
  dye palette save brand primary "#0078d7"
  dye repl
  dye serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Config file path (default: ~/.dye/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Palette database path (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagUppercase, "uppercase", false, "Print hex codes in uppercase")
	rootCmd.PersistentFlags().BoolVar(&flagNoSwatch, "no-swatch", false, "Disable color swatches in output")

	// Add subcommands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the effective configuration, applying flag overrides on
// top of whatever config file is found.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.Default()
	}

	if flagDBPath != "" {
		cfg.Palette.DBPath = flagDBPath
	}
	if flagUppercase {
		cfg.Output.UppercaseHex = true
	}
	if flagNoSwatch {
		cfg.Output.Swatch = false
	}

	// Swatches only make sense on a terminal.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Output.Swatch = false
	}

	return cfg
}

// openStore opens the palette database named by the configuration.
func openStore(cfg config.Config) (*palette.Store, error) {
	return palette.Open(cfg.Palette.DBPath)
}
