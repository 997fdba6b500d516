// Package tui provides the interactive front end for dye: a fixed-command
// evaluator, its Bubble Tea REPL, and SSH serving via Wish.
package tui

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/sfm61319/dye/internal/colorspace"
	"github.com/sfm61319/dye/internal/config"
	"github.com/sfm61319/dye/internal/names"
	"github.com/sfm61319/dye/internal/palette"
)

const helpText = `Commands:
  convert <from> <to> <values...>   Convert between color models
                                    (hex, rgb, hsv, hsl, yiq, cmyk)
  show <color>                      Show a color in every model
  name <name>                       Look up a named color
  random                            Pick a random color
  palette list                      List saved palettes
  palette show <palette> [name]     Show colors in a palette
  palette save <palette> <name> <color>
  palette rm <palette> [name]
  help                              Show this help
  quit                              Leave the session`

// Evaluator executes the fixed REPL command set. It holds no mutable state
// beyond its random source, so one instance serves a whole session.
type Evaluator struct {
	Store *palette.Store // nil when the palette database is unavailable
	Cfg   config.Config
	RNG   *rand.Rand
}

// NewEvaluator creates an evaluator with a time-seeded random source.
func NewEvaluator(store *palette.Store, cfg config.Config) *Evaluator {
	return &Evaluator{
		Store: store,
		Cfg:   cfg,
		RNG:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Eval parses and executes a single command line. The returned string is the
// text to display; commands never evaluate arbitrary expressions.
func (e *Evaluator) Eval(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	switch fields[0] {
	case "help":
		return helpText, nil

	case "convert":
		return e.evalConvert(fields[1:])

	case "show":
		return e.evalShow(fields[1:])

	case "name":
		return e.evalName(fields[1:])

	case "random":
		return Describe(colorspace.Random(e.RNG), e.Cfg), nil

	case "palette":
		return e.evalPalette(fields[1:])

	default:
		return "", fmt.Errorf("unknown command %q, try 'help'", fields[0])
	}
}

func (e *Evaluator) evalConvert(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("usage: convert <from> <to> <values...>")
	}

	from, err := colorspace.ParseModel(args[0])
	if err != nil {
		return "", err
	}
	to, err := colorspace.ParseModel(args[1])
	if err != nil {
		return "", err
	}

	out, err := colorspace.Convert(from, to, args[2:])
	if err != nil {
		return "", err
	}

	if to == colorspace.ModelHex && e.Cfg.Output.UppercaseHex {
		out = "#" + strings.ToUpper(out[1:])
	}
	return out, nil
}

func (e *Evaluator) evalShow(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: show <color>")
	}

	c, err := ResolveColor(args)
	if err != nil {
		return "", err
	}
	return Describe(c, e.Cfg), nil
}

func (e *Evaluator) evalName(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: name <name>")
	}

	hex, ok := names.Lookup(args[0])
	if !ok {
		return "", fmt.Errorf("unknown color name %q", args[0])
	}

	c, err := colorspace.ParseHex(hex)
	if err != nil {
		return "", err
	}
	return Describe(c, e.Cfg), nil
}

func (e *Evaluator) evalPalette(args []string) (string, error) {
	if e.Store == nil {
		return "", fmt.Errorf("palette database is unavailable")
	}
	if len(args) == 0 {
		return "", fmt.Errorf("usage: palette <list|show|save|rm> ...")
	}

	switch args[0] {
	case "list":
		palettes, err := e.Store.Palettes()
		if err != nil {
			return "", err
		}
		if len(palettes) == 0 {
			return "no palettes saved", nil
		}
		return strings.Join(palettes, "\n"), nil

	case "show":
		switch len(args) {
		case 2:
		case 3:
			entry, err := e.Store.Color(args[1], args[2])
			if err != nil {
				return "", err
			}
			if entry == nil {
				return "", fmt.Errorf("no color %s/%s", args[1], args[2])
			}
			c, err := colorspace.ParseHex(entry.Hex)
			if err != nil {
				return "", err
			}
			return Describe(c, e.Cfg), nil
		default:
			return "", fmt.Errorf("usage: palette show <palette> [name]")
		}
		colors, err := e.Store.Colors(args[1])
		if err != nil {
			return "", err
		}
		if len(colors) == 0 {
			return fmt.Sprintf("palette %q is empty", args[1]), nil
		}

		var b strings.Builder
		for i, entry := range colors {
			if i > 0 {
				b.WriteString("\n")
			}
			c, err := colorspace.ParseHex(entry.Hex)
			if err != nil {
				return "", err
			}
			swatch := Swatch(c, e.Cfg.Output.Swatch)
			if swatch != "" {
				swatch += " "
			}
			b.WriteString(fmt.Sprintf("%s%-20s %s", swatch, entry.Name, formatHex(entry.Hex, e.Cfg)))
		}
		return b.String(), nil

	case "save":
		if len(args) != 4 {
			return "", fmt.Errorf("usage: palette save <palette> <name> <color>")
		}
		c, err := ResolveColor(args[3:])
		if err != nil {
			return "", err
		}
		if _, err := e.Store.SaveColor(args[1], args[2], c.Hex()); err != nil {
			return "", err
		}
		return fmt.Sprintf("saved %s as %s/%s", formatHex(c.Hex(), e.Cfg), args[1], args[2]), nil

	case "rm":
		switch len(args) {
		case 2:
			if err := e.Store.DeletePalette(args[1]); err != nil {
				return "", err
			}
			return fmt.Sprintf("removed palette %q", args[1]), nil
		case 3:
			if err := e.Store.DeleteColor(args[1], args[2]); err != nil {
				return "", err
			}
			return fmt.Sprintf("removed %s/%s", args[1], args[2]), nil
		default:
			return "", fmt.Errorf("usage: palette rm <palette> [name]")
		}

	default:
		return "", fmt.Errorf("unknown palette command %q", args[0])
	}
}

// ResolveColor interprets command arguments as a color: three numbers are
// RGB channels, a single argument is tried as a color name and then as a
// hex code.
func ResolveColor(args []string) (colorspace.RGB, error) {
	if len(args) == 3 {
		vals := make([]float64, 3)
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return colorspace.RGB{}, fmt.Errorf("%q is not a number", a)
			}
			vals[i] = v
		}
		return colorspace.NewRGB(vals[0], vals[1], vals[2]), nil
	}
	if len(args) != 1 {
		return colorspace.RGB{}, fmt.Errorf("expected a color name, hex code or three RGB channels")
	}

	if hex, ok := names.Lookup(args[0]); ok {
		return colorspace.ParseHex(hex)
	}
	return colorspace.ParseHex(args[0])
}

// Describe renders a color in every supported model, one line each.
func Describe(c colorspace.RGB, cfg config.Config) string {
	var b strings.Builder

	swatch := Swatch(c, cfg.Output.Swatch)
	if swatch != "" {
		b.WriteString(swatch)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("%s  %s\n", labelStyle.Render("hex "), formatHex(c.Hex(), cfg)))
	b.WriteString(fmt.Sprintf("%s  %s\n", labelStyle.Render("rgb "), c.String()))
	b.WriteString(fmt.Sprintf("%s  %s\n", labelStyle.Render("hsv "), c.HSV().String()))
	b.WriteString(fmt.Sprintf("%s  %s\n", labelStyle.Render("hsl "), c.HSL().String()))
	b.WriteString(fmt.Sprintf("%s  %s\n", labelStyle.Render("yiq "), c.YIQ().String()))
	b.WriteString(fmt.Sprintf("%s  %s", labelStyle.Render("cmyk"), c.CMYK().String()))

	return b.String()
}

func formatHex(hex string, cfg config.Config) string {
	if cfg.Output.UppercaseHex && strings.HasPrefix(hex, "#") {
		return "#" + strings.ToUpper(hex[1:])
	}
	return hex
}
