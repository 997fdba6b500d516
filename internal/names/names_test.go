package names

import (
	"strings"
	"testing"

	"github.com/sfm61319/dye/internal/colorspace"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
		found    bool
	}{
		{"simple name", "red", "#ff0000", true},
		{"case insensitive", "WindowsBlue", "#0078d7", true},
		{"builtin extra", "spotifygreen", "#1db954", true},
		{"whitespace trimmed", " teal ", "#008080", true},
		{"unknown name", "notacolor", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hex, ok := Lookup(tc.query)
			if ok != tc.found {
				t.Fatalf("Lookup(%q) found = %v, expected %v", tc.query, ok, tc.found)
			}
			if hex != tc.expected {
				t.Errorf("Lookup(%q) = %q, expected %q", tc.query, hex, tc.expected)
			}
		})
	}
}

func TestAllSortedAndParseable(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("All() returned no colors")
	}

	for i, nc := range all {
		if i > 0 && all[i-1].Name >= nc.Name {
			t.Errorf("All() not sorted: %q before %q", all[i-1].Name, nc.Name)
		}
		if _, err := colorspace.ParseHex(nc.Hex); err != nil {
			t.Errorf("color %q has unparseable value %q: %v", nc.Name, nc.Hex, err)
		}
	}
}

func TestSearch(t *testing.T) {
	greens := Search("green")
	if len(greens) == 0 {
		t.Fatal("Search(green) returned nothing")
	}
	for _, nc := range greens {
		if !strings.Contains(nc.Name, "green") {
			t.Errorf("Search(green) returned %q", nc.Name)
		}
	}

	if got := Search("zzz"); len(got) != 0 {
		t.Errorf("Search(zzz) returned %d results", len(got))
	}

	if got, all := Search(""), All(); len(got) != len(all) {
		t.Errorf("Search(\"\") returned %d results, expected %d", len(got), len(all))
	}
}
