package colorspace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a hex color string is not a recognized
// #RGB, #RRGGBB or bare-integer form.
var ErrInvalidFormat = errors.New("colorspace: invalid hex color format")

// ParseHex converts a hexadecimal color code to RGB. The leading "#" or "0x"
// prefix is optional and digits may be upper or lower case. A 3-digit
// shorthand is expanded by doubling each digit before parsing, so "#abc"
// parses the same as "#aabbcc". Any other shape reports ErrInvalidFormat.
func ParseHex(code string) (RGB, error) {
	s := strings.ToLower(strings.TrimSpace(code))
	switch {
	case strings.HasPrefix(s, "#"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"):
		s = s[2:]
	}

	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, code)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, code)
	}

	return RGB{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}, nil
}

// FromInt converts an integer color code to RGB by formatting it as
// hexadecimal text and parsing that, so 0xfff expands like the "#fff"
// shorthand. Negative values report ErrInvalidFormat.
func FromInt(code int64) (RGB, error) {
	if code < 0 {
		return RGB{}, fmt.Errorf("%w: %d", ErrInvalidFormat, code)
	}
	return ParseHex(strconv.FormatInt(code, 16))
}

// FormatHex rounds and clamps each channel to [0, 255] and formats the
// result as a lowercase "#rrggbb" string.
func FormatHex(red, green, blue float64) string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(red), clampByte(green), clampByte(blue))
}

// Hex formats the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return FormatHex(float64(c.R), float64(c.G), float64(c.B))
}
