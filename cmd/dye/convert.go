package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sfm61319/dye/internal/colorspace"
)

var convertCmd = &cobra.Command{
	Use:   "convert <from> <to> <values...>",
	Short: "Convert a color between models",
	Long: `Convert a color from one model to another.

Models take the following values:
  hex   one code, e.g. "#0078d7", "0x1db954" or "abc"
  rgb   three channels in 0..255
  hsv   hue in degrees, saturation and value in 0..1
  hsl   hue in degrees, saturation and lightness in 0..1
  yiq   luma in 0..1, chroma in +-0.5959 and +-0.5229
  cmyk  four components in 0..1

Out-of-range values are clamped. Hues wrap around 360 degrees.

Examples:
  dye convert hex rgb "#0078d7"
  dye convert rgb hsl 29 185 84
  dye convert hsv hex 207 1 0.843`,
	Args: cobra.MinimumNArgs(3),
	Run:  runConvert,
}

func runConvert(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	from, err := colorspace.ParseModel(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	to, err := colorspace.ParseModel(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := colorspace.Convert(from, to, args[2:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if to == colorspace.ModelHex && cfg.Output.UppercaseHex {
		out = "#" + strings.ToUpper(out[1:])
	}
	fmt.Println(out)
}
