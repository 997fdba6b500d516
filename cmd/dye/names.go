package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sfm61319/dye/internal/colorspace"
	"github.com/sfm61319/dye/internal/names"
	"github.com/sfm61319/dye/internal/tui"
)

var namesCmd = &cobra.Command{
	Use:   "names [query]",
	Short: "List or search named colors",
	Long: `Show the built-in named colors and their hex values. With a query,
only names containing the query are shown.

Examples:
  dye names
  dye names green`,
	Args: cobra.MaximumNArgs(1),
	Run:  runNames,
}

func runNames(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	colors := names.All()
	if len(args) == 1 {
		colors = names.Search(args[0])
	}

	if len(colors) == 0 {
		fmt.Printf("No colors match %q.\n", args[0])
		return
	}

	maxNameLen := 4 // "Name" header
	for _, nc := range colors {
		if len(nc.Name) > maxNameLen {
			maxNameLen = len(nc.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Hex")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "---")

	for _, nc := range colors {
		hex := nc.Hex
		if cfg.Output.UppercaseHex {
			hex = "#" + strings.ToUpper(hex[1:])
		}

		swatch := ""
		if c, err := colorspace.ParseHex(nc.Hex); err == nil {
			swatch = tui.Swatch(c, cfg.Output.Swatch)
		}
		if swatch != "" {
			swatch = "  " + swatch
		}

		fmt.Printf("  %-*s  %s%s\n", maxNameLen, nc.Name, hex, swatch)
	}
}
