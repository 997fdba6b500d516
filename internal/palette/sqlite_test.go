package palette

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sfm61319/dye/internal/colorspace"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}

	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveColor("brand", "primary", "#0078d7"); err != nil {
		t.Fatalf("SaveColor() failed: %v", err)
	}
	if _, err := store.SaveColor("brand", "accent", "#1db954"); err != nil {
		t.Fatalf("SaveColor() failed: %v", err)
	}
	if _, err := store.SaveColor("web", "link", "#00f"); err != nil {
		t.Fatalf("SaveColor() failed: %v", err)
	}

	colors, err := store.Colors("brand")
	if err != nil {
		t.Fatalf("Colors() failed: %v", err)
	}

	if len(colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(colors))
	}

	// Ordered by name
	if colors[0].Name != "accent" || colors[0].Hex != "#1db954" {
		t.Errorf("first color = %+v", colors[0])
	}
	if colors[1].Name != "primary" || colors[1].Hex != "#0078d7" {
		t.Errorf("second color = %+v", colors[1])
	}
}

func TestStoreNormalizesHex(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveColor("web", "link", "0x00F"); err != nil {
		t.Fatalf("SaveColor() failed: %v", err)
	}

	entry, err := store.Color("web", "link")
	if err != nil {
		t.Fatalf("Color() failed: %v", err)
	}
	if entry == nil {
		t.Fatal("Color() returned nil for saved color")
	}
	if entry.Hex != "#0000ff" {
		t.Errorf("stored hex = %q, expected %q", entry.Hex, "#0000ff")
	}
}

func TestStoreRejectsMalformedHex(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveColor("brand", "bad", "#qqqqqq")
	if err == nil {
		t.Fatal("SaveColor() accepted malformed hex")
	}
	if !errors.Is(err, colorspace.ErrInvalidFormat) {
		t.Errorf("error = %v, expected ErrInvalidFormat", err)
	}
}

func TestStoreUpsert(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveColor("brand", "primary", "#000000"); err != nil {
		t.Fatalf("SaveColor() failed: %v", err)
	}
	if _, err := store.SaveColor("brand", "primary", "#0078d7"); err != nil {
		t.Fatalf("SaveColor() replace failed: %v", err)
	}

	colors, err := store.Colors("brand")
	if err != nil {
		t.Fatalf("Colors() failed: %v", err)
	}
	if len(colors) != 1 {
		t.Fatalf("expected 1 color after upsert, got %d", len(colors))
	}
	if colors[0].Hex != "#0078d7" {
		t.Errorf("hex after upsert = %q, expected %q", colors[0].Hex, "#0078d7")
	}
}

func TestStorePalettes(t *testing.T) {
	store := openTestStore(t)

	for _, p := range []string{"web", "brand", "web"} {
		if _, err := store.SaveColor(p, "c"+p, "#ffffff"); err != nil {
			t.Fatalf("SaveColor() failed: %v", err)
		}
	}

	palettes, err := store.Palettes()
	if err != nil {
		t.Fatalf("Palettes() failed: %v", err)
	}

	if len(palettes) != 2 || palettes[0] != "brand" || palettes[1] != "web" {
		t.Errorf("Palettes() = %v, expected [brand web]", palettes)
	}
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveColor("brand", "primary", "#0078d7"); err != nil {
		t.Fatalf("SaveColor() failed: %v", err)
	}
	if _, err := store.SaveColor("brand", "accent", "#1db954"); err != nil {
		t.Fatalf("SaveColor() failed: %v", err)
	}

	if err := store.DeleteColor("brand", "primary"); err != nil {
		t.Fatalf("DeleteColor() failed: %v", err)
	}

	colors, err := store.Colors("brand")
	if err != nil {
		t.Fatalf("Colors() failed: %v", err)
	}
	if len(colors) != 1 || colors[0].Name != "accent" {
		t.Errorf("after DeleteColor, colors = %v", colors)
	}

	if err := store.DeletePalette("brand"); err != nil {
		t.Fatalf("DeletePalette() failed: %v", err)
	}

	colors, err = store.Colors("brand")
	if err != nil {
		t.Fatalf("Colors() failed: %v", err)
	}
	if len(colors) != 0 {
		t.Errorf("after DeletePalette, colors = %v", colors)
	}

	entry, err := store.Color("brand", "accent")
	if err != nil {
		t.Fatalf("Color() failed: %v", err)
	}
	if entry != nil {
		t.Errorf("Color() after delete = %+v, expected nil", entry)
	}
}
