package colorspace

import (
	"errors"
	"testing"
)

func TestParseModel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Model
		wantErr  bool
	}{
		{"hex", "hex", ModelHex, false},
		{"rgb", "rgb", ModelRGB, false},
		{"hsv", "hsv", ModelHSV, false},
		{"hsb alias", "hsb", ModelHSV, false},
		{"hsl", "hsl", ModelHSL, false},
		{"yiq", "yiq", ModelYIQ, false},
		{"cmyk", "cmyk", ModelCMYK, false},
		{"unknown", "xyz", "", true},
		{"empty", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseModel(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseModel(%q) succeeded, expected error", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseModel(%q) failed: %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("ParseModel(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		from, to Model
		args     []string
		expected string
	}{
		{"hex to rgb", ModelHex, ModelRGB, []string{"#0078d7"}, "rgb(0, 120, 215)"},
		{"rgb to hex", ModelRGB, ModelHex, []string{"0", "120", "215"}, "#0078d7"},
		{"rgb to hsv", ModelRGB, ModelHSV, []string{"0", "120", "215"}, "hsv(207, 1, 0.8431372549019608)"},
		{"cmyk fixture to rgb", ModelCMYK, ModelRGB, []string{"1", "0.4418604651162791", "0", "0.1568627450980392"}, "rgb(0, 120, 215)"},
		{"hsl to hex", ModelHSL, ModelHex, []string{"120", "1", "0.5"}, "#00ff00"},
		{"hex to hex normalizes", ModelHex, ModelHex, []string{"0xABC"}, "#aabbcc"},
		{"rgb normalizes out of range", ModelRGB, ModelHex, []string{"-20", "120.4", "300"}, "#0078ff"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(tc.from, tc.to, tc.args)
			if err != nil {
				t.Fatalf("Convert(%s, %s, %v) failed: %v", tc.from, tc.to, tc.args, err)
			}
			if got != tc.expected {
				t.Errorf("Convert(%s, %s, %v) = %q, expected %q", tc.from, tc.to, tc.args, got, tc.expected)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name     string
		from, to Model
		args     []string
	}{
		{"too few values", ModelRGB, ModelHex, []string{"0", "120"}},
		{"too many values", ModelHSV, ModelHex, []string{"0", "1", "1", "1"}},
		{"not a number", ModelRGB, ModelHex, []string{"0", "blue", "215"}},
		{"cmyk needs four", ModelCMYK, ModelHex, []string{"1", "0", "0"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Convert(tc.from, tc.to, tc.args); err == nil {
				t.Fatalf("Convert(%s, %s, %v) succeeded, expected error", tc.from, tc.to, tc.args)
			}
		})
	}

	_, err := Convert(ModelHex, ModelRGB, []string{"#nothex"})
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Convert bad hex error = %v, expected ErrInvalidFormat", err)
	}
}
