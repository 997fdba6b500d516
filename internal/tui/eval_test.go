package tui

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sfm61319/dye/internal/colorspace"
	"github.com/sfm61319/dye/internal/config"
	"github.com/sfm61319/dye/internal/palette"
)

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()

	store, err := palette.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("palette.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := config.Default()
	cfg.Output.Swatch = false // keep output assertable

	e := NewEvaluator(store, cfg)
	e.RNG = rand.New(rand.NewSource(1))
	return e
}

func TestEvalConvert(t *testing.T) {
	e := newTestEvaluator(t)

	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"hex to rgb", "convert hex rgb #0078d7", "rgb(0, 120, 215)"},
		{"rgb to hex", "convert rgb hex 29 185 84", "#1db954"},
		{"hsl to hex", "convert hsl hex 120 1 0.5", "#00ff00"},
		{"cmyk to rgb", "convert cmyk rgb 1 0.4418604651162791 0 0.1568627450980392", "rgb(0, 120, 215)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.Eval(tc.line)
			if err != nil {
				t.Fatalf("Eval(%q) failed: %v", tc.line, err)
			}
			if got != tc.expected {
				t.Errorf("Eval(%q) = %q, expected %q", tc.line, got, tc.expected)
			}
		})
	}
}

func TestEvalConvertUppercaseHex(t *testing.T) {
	e := newTestEvaluator(t)
	e.Cfg.Output.UppercaseHex = true

	got, err := e.Eval("convert rgb hex 0 120 215")
	if err != nil {
		t.Fatalf("Eval() failed: %v", err)
	}
	if got != "#0078D7" {
		t.Errorf("Eval() = %q, expected %q", got, "#0078D7")
	}
}

func TestEvalShow(t *testing.T) {
	e := newTestEvaluator(t)

	tests := []struct {
		name string
		line string
	}{
		{"hex code", "show #0078d7"},
		{"named color", "show windowsblue"},
		{"rgb channels", "show 0 120 215"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.Eval(tc.line)
			if err != nil {
				t.Fatalf("Eval(%q) failed: %v", tc.line, err)
			}
			for _, want := range []string{"#0078d7", "rgb(0, 120, 215)", "hsv(207, 1, 0.8431372549019608)"} {
				if !strings.Contains(got, want) {
					t.Errorf("Eval(%q) output missing %q:\n%s", tc.line, want, got)
				}
			}
		})
	}
}

func TestEvalName(t *testing.T) {
	e := newTestEvaluator(t)

	got, err := e.Eval("name spotifygreen")
	if err != nil {
		t.Fatalf("Eval() failed: %v", err)
	}
	if !strings.Contains(got, "#1db954") {
		t.Errorf("Eval(name spotifygreen) output missing hex:\n%s", got)
	}

	if _, err := e.Eval("name notacolor"); err == nil {
		t.Error("Eval(name notacolor) should fail")
	}
}

func TestEvalRandomDeterministic(t *testing.T) {
	a := newTestEvaluator(t)
	b := newTestEvaluator(t)

	outA, err := a.Eval("random")
	if err != nil {
		t.Fatalf("Eval() failed: %v", err)
	}
	outB, err := b.Eval("random")
	if err != nil {
		t.Fatalf("Eval() failed: %v", err)
	}

	if outA != outB {
		t.Errorf("same seed produced different output:\n%s\nvs\n%s", outA, outB)
	}
}

func TestEvalPalette(t *testing.T) {
	e := newTestEvaluator(t)

	if _, err := e.Eval("palette save brand primary #0078d7"); err != nil {
		t.Fatalf("palette save failed: %v", err)
	}
	if _, err := e.Eval("palette save brand accent spotifygreen"); err != nil {
		t.Fatalf("palette save by name failed: %v", err)
	}

	out, err := e.Eval("palette list")
	if err != nil {
		t.Fatalf("palette list failed: %v", err)
	}
	if out != "brand" {
		t.Errorf("palette list = %q, expected %q", out, "brand")
	}

	out, err = e.Eval("palette show brand")
	if err != nil {
		t.Fatalf("palette show failed: %v", err)
	}
	if !strings.Contains(out, "primary") || !strings.Contains(out, "#0078d7") {
		t.Errorf("palette show missing primary:\n%s", out)
	}
	if !strings.Contains(out, "accent") || !strings.Contains(out, "#1db954") {
		t.Errorf("palette show missing accent:\n%s", out)
	}

	out, err = e.Eval("palette show brand accent")
	if err != nil {
		t.Fatalf("palette show single color failed: %v", err)
	}
	if !strings.Contains(out, "#1db954") || !strings.Contains(out, "rgb(29, 185, 84)") {
		t.Errorf("palette show single color missing readout:\n%s", out)
	}

	if _, err := e.Eval("palette rm brand primary"); err != nil {
		t.Fatalf("palette rm failed: %v", err)
	}
	out, err = e.Eval("palette show brand")
	if err != nil {
		t.Fatalf("palette show failed: %v", err)
	}
	if strings.Contains(out, "primary") {
		t.Errorf("primary still present after rm:\n%s", out)
	}
}

func TestEvalPaletteWithoutStore(t *testing.T) {
	e := NewEvaluator(nil, config.Default())

	if _, err := e.Eval("palette list"); err == nil {
		t.Error("palette commands should fail without a store")
	}
}

func TestEvalErrors(t *testing.T) {
	e := newTestEvaluator(t)

	tests := []struct {
		name string
		line string
	}{
		{"unknown command", "frobnicate"},
		{"convert missing args", "convert hex"},
		{"convert unknown model", "convert hex xyz #ffffff"},
		{"convert bad hex", "convert hex rgb zzz"},
		{"show bad color", "show #notacolor"},
		{"show bad channel", "show 1 2 three"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := e.Eval(tc.line); err == nil {
				t.Errorf("Eval(%q) succeeded, expected error", tc.line)
			}
		})
	}
}

func TestEvalEmptyLine(t *testing.T) {
	e := newTestEvaluator(t)

	out, err := e.Eval("   ")
	if err != nil {
		t.Fatalf("Eval() failed: %v", err)
	}
	if out != "" {
		t.Errorf("Eval(blank) = %q, expected empty", out)
	}
}

func TestEvalHelpListsCommands(t *testing.T) {
	e := newTestEvaluator(t)

	out, err := e.Eval("help")
	if err != nil {
		t.Fatalf("Eval(help) failed: %v", err)
	}
	for _, cmd := range []string{"convert", "show", "name", "random", "palette"} {
		if !strings.Contains(out, cmd) {
			t.Errorf("help output missing %q", cmd)
		}
	}
}

func TestResolveColor(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected colorspace.RGB
	}{
		{"hex", []string{"#0078d7"}, colorspace.RGB{R: 0, G: 120, B: 215}},
		{"shorthand hex", []string{"#abc"}, colorspace.RGB{R: 170, G: 187, B: 204}},
		{"named", []string{"red"}, colorspace.RGB{R: 255, G: 0, B: 0}},
		{"channels", []string{"29", "185", "84"}, colorspace.RGB{R: 29, G: 185, B: 84}},
		{"channels clamped", []string{"-5", "300", "84.4"}, colorspace.RGB{R: 0, G: 255, B: 84}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveColor(tc.args)
			if err != nil {
				t.Fatalf("ResolveColor(%v) failed: %v", tc.args, err)
			}
			if got != tc.expected {
				t.Errorf("ResolveColor(%v) = %v, expected %v", tc.args, got, tc.expected)
			}
		})
	}

	if _, err := ResolveColor([]string{"two", "args"}); err == nil {
		t.Error("ResolveColor with two args should fail")
	}
}
