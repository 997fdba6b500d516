// Package ansi holds raw terminal escape-sequence fragments for text styling
// and foreground/background color. The tables are static data; the only
// computed forms are the 256-color and truecolor helpers, which clamp their
// inputs instead of failing.
package ansi

import (
	"fmt"
	"math"

	"github.com/sfm61319/dye/internal/colorspace"
)

// Reset clears all colors and styles applied to the preceding text.
const Reset = "\x1b[00m"

// Text styles. Support varies by terminal.
const (
	Bold          = "\x1b[01m"
	Faint         = "\x1b[02m"
	Italic        = "\x1b[03m"
	Underline     = "\x1b[04m"
	SlowBlink     = "\x1b[05m"
	RapidBlink    = "\x1b[06m"
	Reverse       = "\x1b[07m"
	Conceal       = "\x1b[08m"
	Strikethrough = "\x1b[09m"
	Reveal        = "\x1b[28m"
	Frame         = "\x1b[51m"
	Encircle      = "\x1b[52m"
	Overline      = "\x1b[53m"
)

// Foreground colors.
const (
	FgBlack      = "\x1b[30m"
	FgRed        = "\x1b[31m"
	FgGreen      = "\x1b[32m"
	FgOrange     = "\x1b[33m"
	FgBlue       = "\x1b[34m"
	FgPurple     = "\x1b[35m"
	FgCyan       = "\x1b[36m"
	FgLightGrey  = "\x1b[37m"
	FgDarkGrey   = "\x1b[90m"
	FgLightRed   = "\x1b[91m"
	FgLightGreen = "\x1b[92m"
	FgYellow     = "\x1b[93m"
	FgLightBlue  = "\x1b[94m"
	FgPink       = "\x1b[95m"
	FgLightCyan  = "\x1b[96m"

	FgWhite        = "\x1b[38;2;255;255;255m"
	FgSpotifyGreen = "\x1b[38;2;29;185;84m"
	FgWindowsBlue  = "\x1b[38;2;0;120;215m"
)

// Background colors, parallel to the foreground table.
const (
	BgBlack      = "\x1b[40m"
	BgRed        = "\x1b[41m"
	BgGreen      = "\x1b[42m"
	BgOrange     = "\x1b[43m"
	BgBlue       = "\x1b[44m"
	BgPurple     = "\x1b[45m"
	BgCyan       = "\x1b[46m"
	BgLightGrey  = "\x1b[47m"
	BgDarkGrey   = "\x1b[100m"
	BgLightRed   = "\x1b[101m"
	BgLightGreen = "\x1b[102m"
	BgYellow     = "\x1b[103m"
	BgLightBlue  = "\x1b[104m"
	BgPink       = "\x1b[105m"
	BgLightCyan  = "\x1b[106m"

	BgWhite        = "\x1b[48;2;255;255;255m"
	BgSpotifyGreen = "\x1b[48;2;29;185;84m"
	BgWindowsBlue  = "\x1b[48;2;0;120;215m"
)

// Fg256 returns the escape fragment selecting foreground color n from the
// 256-color palette. The intensity is rounded and clamped to [0, 255].
func Fg256(intensity float64) string {
	return fmt.Sprintf("\x1b[38;5;%dm", byteChannel(intensity))
}

// Bg256 returns the escape fragment selecting background color n from the
// 256-color palette. The intensity is rounded and clamped to [0, 255].
func Bg256(intensity float64) string {
	return fmt.Sprintf("\x1b[48;5;%dm", byteChannel(intensity))
}

// FgRGB returns the truecolor foreground escape fragment for the given
// channels, each rounded and clamped to [0, 255].
func FgRGB(red, green, blue float64) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", byteChannel(red), byteChannel(green), byteChannel(blue))
}

// BgRGB returns the truecolor background escape fragment for the given
// channels, each rounded and clamped to [0, 255].
func BgRGB(red, green, blue float64) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", byteChannel(red), byteChannel(green), byteChannel(blue))
}

// FgColor returns the truecolor foreground fragment for an RGB value.
func FgColor(c colorspace.RGB) string {
	return FgRGB(float64(c.R), float64(c.G), float64(c.B))
}

// BgColor returns the truecolor background fragment for an RGB value.
func BgColor(c colorspace.RGB) string {
	return BgRGB(float64(c.R), float64(c.G), float64(c.B))
}

func byteChannel(v float64) int {
	return int(colorspace.Clamp(math.Round(v), 0, 255))
}
