package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sfm61319/dye/internal/tui"
)

var showCmd = &cobra.Command{
	Use:   "show <color>",
	Short: "Show a color in every model",
	Long: `Display a color as hex, RGB, HSV, HSL, YIQ and CMYK, with a swatch
when the terminal supports it.

The color may be a hex code, a known color name, or three RGB channels.

Examples:
  dye show "#0078d7"
  dye show windowsblue
  dye show 29 185 84`,
	Args: cobra.RangeArgs(1, 3),
	Run:  runShow,
}

func runShow(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	c, err := tui.ResolveColor(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(tui.Describe(c, cfg))
}
