// Package palette provides SQLite-based persistence for user color palettes.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package palette

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/sfm61319/dye/internal/colorspace"
)

// Store manages the SQLite database connection for palette persistence.
type Store struct {
	db *sql.DB
}

// ColorEntry represents a single saved color inside a palette.
type ColorEntry struct {
	ID        int64
	Palette   string
	Name      string
	Hex       string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("palette: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("palette: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("palette: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("palette: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("palette: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS colors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			palette TEXT NOT NULL,
			name TEXT NOT NULL,
			hex TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(palette, name)
		);
		CREATE INDEX IF NOT EXISTS idx_colors_palette ON colors(palette);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveColor records a color under the given palette and name. The hex value
// is normalized through the conversion engine first, so shorthand and
// prefixed forms are stored canonically; malformed values are rejected.
// Saving an existing palette/name pair replaces its value.
func (s *Store) SaveColor(palette, name, hex string) (int64, error) {
	c, err := colorspace.ParseHex(hex)
	if err != nil {
		return 0, fmt.Errorf("palette: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO colors (palette, name, hex) VALUES (?, ?, ?)
		 ON CONFLICT(palette, name) DO UPDATE SET hex = excluded.hex`,
		palette, name, c.Hex(),
	)
	if err != nil {
		return 0, fmt.Errorf("palette: cannot save color: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("palette: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Colors retrieves every color in the given palette, ordered by name.
func (s *Store) Colors(palette string) ([]ColorEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, palette, name, hex, created_at
		 FROM colors
		 WHERE palette = ?
		 ORDER BY name`,
		palette,
	)
	if err != nil {
		return nil, fmt.Errorf("palette: cannot query colors: %w", err)
	}
	defer rows.Close()

	var entries []ColorEntry
	for rows.Next() {
		var e ColorEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Palette, &e.Name, &e.Hex, &createdAt); err != nil {
			return nil, fmt.Errorf("palette: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("palette: row iteration error: %w", err)
	}

	return entries, nil
}

// Color retrieves a single named color from a palette.
// Returns nil if it does not exist.
func (s *Store) Color(palette, name string) (*ColorEntry, error) {
	var e ColorEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, palette, name, hex, created_at
		 FROM colors
		 WHERE palette = ? AND name = ?`,
		palette, name,
	).Scan(&e.ID, &e.Palette, &e.Name, &e.Hex, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("palette: cannot query color: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// Palettes returns the names of all palettes that contain at least one
// color, sorted alphabetically.
func (s *Store) Palettes() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT palette FROM colors ORDER BY palette`)
	if err != nil {
		return nil, fmt.Errorf("palette: cannot query palettes: %w", err)
	}
	defer rows.Close()

	var palettes []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("palette: cannot scan row: %w", err)
		}
		palettes = append(palettes, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("palette: row iteration error: %w", err)
	}

	return palettes, nil
}

// DeleteColor removes a single named color from a palette.
func (s *Store) DeleteColor(palette, name string) error {
	_, err := s.db.Exec("DELETE FROM colors WHERE palette = ? AND name = ?", palette, name)
	if err != nil {
		return fmt.Errorf("palette: cannot delete color: %w", err)
	}
	return nil
}

// DeletePalette removes every color in the given palette.
func (s *Store) DeletePalette(palette string) error {
	_, err := s.db.Exec("DELETE FROM colors WHERE palette = ?", palette)
	if err != nil {
		return fmt.Errorf("palette: cannot delete palette: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or its string form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
