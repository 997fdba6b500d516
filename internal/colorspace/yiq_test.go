package colorspace

import (
	"math"
	"testing"
)

func TestRGBToYIQ(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  float64
		expected YIQ
	}{
		{"black", 0, 0, 0, YIQ{0, 0, 0}},
		{"white", 255, 255, 255, YIQ{1, 0, 0}},
		{"pure red clamps I", 255, 0, 0, YIQ{0.299, 0.5959, 0.211}},
	}

	tolerance := 1e-12
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RGBToYIQ(tc.r, tc.g, tc.b)
			if math.Abs(got.Y-tc.expected.Y) > tolerance ||
				math.Abs(got.I-tc.expected.I) > tolerance ||
				math.Abs(got.Q-tc.expected.Q) > tolerance {
				t.Errorf("RGBToYIQ(%v, %v, %v) = %v, expected %v", tc.r, tc.g, tc.b, got, tc.expected)
			}
		})
	}
}

func TestRGBToYIQClampsChroma(t *testing.T) {
	// For any valid input the components must stay inside the legal ranges.
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				got := RGBToYIQ(float64(r), float64(g), float64(b))
				if got.Y < 0 || got.Y > 1 {
					t.Fatalf("Y out of range for (%d, %d, %d): %v", r, g, b, got)
				}
				if got.I < -0.5959 || got.I > 0.5959 {
					t.Fatalf("I out of range for (%d, %d, %d): %v", r, g, b, got)
				}
				if got.Q < -0.5229 || got.Q > 0.5229 {
					t.Fatalf("Q out of range for (%d, %d, %d): %v", r, g, b, got)
				}
			}
		}
	}
}

func TestYIQToRGB(t *testing.T) {
	tests := []struct {
		name     string
		y, i, q  float64
		expected RGB
	}{
		{"black", 0, 0, 0, RGB{0, 0, 0}},
		{"white", 1, 0, 0, RGB{255, 255, 255}},
		{"mid gray", 0.5, 0, 0, RGB{128, 128, 128}},
		{"luma clamped", 2, 0, 0, RGB{255, 255, 255}},
		{"chroma clamped", 0, 5, 5, YIQToRGB(0, 0.5959, 0.5229)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := YIQToRGB(tc.y, tc.i, tc.q)
			if got != tc.expected {
				t.Errorf("YIQToRGB(%v, %v, %v) = %v, expected %v", tc.y, tc.i, tc.q, got, tc.expected)
			}
		})
	}
}
