package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sfm61319/dye/internal/colorspace"
	"github.com/sfm61319/dye/internal/palette"
	"github.com/sfm61319/dye/internal/tui"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manage saved palettes",
	Long: `Save, list and remove colors grouped into named palettes. Palettes
live in a local SQLite database (default: ~/.dye/palettes.db).

Examples:
  dye palette save brand primary "#0078d7"
  dye palette save brand accent spotifygreen
  dye palette list
  dye palette show brand
  dye palette rm brand primary
  dye palette rm brand`,
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved palettes",
	Args:  cobra.NoArgs,
	Run:   runPaletteList,
}

var paletteShowCmd = &cobra.Command{
	Use:   "show <palette> [name]",
	Short: "Show the colors in a palette",
	Long: `List the colors saved in a palette. With a name, show that single
color in every model instead.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runPaletteShow,
}

var paletteSaveCmd = &cobra.Command{
	Use:   "save <palette> <name> <color>",
	Short: "Save a color into a palette",
	Long: `Save a color under a name inside a palette. The color may be a hex
code, a known color name, or three RGB channels. Saving an existing name
overwrites its value.`,
	Args: cobra.RangeArgs(3, 5),
	Run:  runPaletteSave,
}

var paletteRmCmd = &cobra.Command{
	Use:   "rm <palette> [name]",
	Short: "Remove a color or a whole palette",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runPaletteRm,
}

func init() {
	paletteCmd.AddCommand(paletteListCmd)
	paletteCmd.AddCommand(paletteShowCmd)
	paletteCmd.AddCommand(paletteSaveCmd)
	paletteCmd.AddCommand(paletteRmCmd)
}

// mustOpenStore opens the palette database or exits.
func mustOpenStore() *palette.Store {
	store, err := openStore(loadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening palette database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runPaletteList(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	palettes, err := store.Palettes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(palettes) == 0 {
		fmt.Println("No palettes saved.")
		fmt.Println()
		fmt.Println("Run 'dye palette save <palette> <name> <color>' to start one.")
		return
	}

	for _, p := range palettes {
		fmt.Println(p)
	}
}

func runPaletteShow(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	store := mustOpenStore()
	defer store.Close()

	if len(args) == 2 {
		entry, err := store.Color(args[0], args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if entry == nil {
			fmt.Fprintf(os.Stderr, "Error: no color %s/%s\n", args[0], args[1])
			os.Exit(1)
		}
		c, err := colorspace.ParseHex(entry.Hex)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(tui.Describe(c, cfg))
		return
	}

	colors, err := store.Colors(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(colors) == 0 {
		fmt.Printf("Palette %q is empty.\n", args[0])
		return
	}

	for _, entry := range colors {
		hex := entry.Hex
		if cfg.Output.UppercaseHex {
			hex = "#" + strings.ToUpper(hex[1:])
		}

		swatch := ""
		if c, err := colorspace.ParseHex(entry.Hex); err == nil {
			swatch = tui.Swatch(c, cfg.Output.Swatch)
		}
		if swatch != "" {
			swatch += " "
		}

		fmt.Printf("%s%-20s %s\n", swatch, entry.Name, hex)
	}
}

func runPaletteSave(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	c, err := tui.ResolveColor(args[2:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if _, err := store.SaveColor(args[0], args[1], c.Hex()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %s as %s/%s\n", c.Hex(), args[0], args[1])
}

func runPaletteRm(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	if len(args) == 1 {
		if err := store.DeletePalette(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Removed palette %q\n", args[0])
		return
	}

	if err := store.DeleteColor(args[0], args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Removed %s/%s\n", args[0], args[1])
}
