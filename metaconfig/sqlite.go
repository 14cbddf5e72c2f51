package metaconfig

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteBackend stores the record as JSON in a key/value settings table.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (or creates) the SQLite database at path, ensures the
// data directory exists, and creates the settings table.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	b := &SQLiteBackend{db: db}
	if err := b.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return b, nil
}

// Close closes the underlying database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) ensureSchema() error {
	_, err := b.db.Exec(`
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

func (b *SQLiteBackend) Load() (Config, error) {
	var value string
	err := b.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, StorageKey).Scan(&value)
	if err == sql.ErrNoRows {
		return Config{}, ErrNotFound
	}
	if err != nil {
		return Config{}, err
	}
	return decode([]byte(value))
}

func (b *SQLiteBackend) Save(c Config) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = b.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, StorageKey, string(data))
	return err
}
