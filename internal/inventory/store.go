package inventory

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	pillar      TEXT NOT NULL,
	question_id TEXT NOT NULL,
	text        TEXT NOT NULL,
	source_url  TEXT NOT NULL DEFAULT '',
	fetched_at  TEXT NOT NULL DEFAULT '',
	license     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_questions_pillar ON questions(pillar);
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store persists the question inventory in a local SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes the inventory database at path, creating the parent
// directory and schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal_mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Replace swaps the entire inventory for a fresh fetch in one
// transaction and records the fetch timestamp.
func (s *Store) Replace(questions []Question, fetchedAt string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM questions"); err != nil {
		return err
	}
	stmt, err := tx.Prepare(
		"INSERT INTO questions (pillar, question_id, text, source_url, fetched_at, license) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, q := range questions {
		if _, err := stmt.Exec(q.Pillar, q.ID, q.Text, q.SourceURL, q.FetchedAt, q.License); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(
		"INSERT INTO meta (key, value) VALUES ('fetched_at', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		fetchedAt); err != nil {
		return err
	}
	return tx.Commit()
}

// All returns every cached question in fetch order.
func (s *Store) All() ([]Question, error) {
	rows, err := s.db.Query(
		"SELECT pillar, question_id, text, source_url, fetched_at, license FROM questions ORDER BY seq")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.Pillar, &q.ID, &q.Text, &q.SourceURL, &q.FetchedAt, &q.License); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// Count returns the number of cached questions.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM questions").Scan(&n)
	return n, err
}

// FetchedAt returns the timestamp of the last fetch, empty when the
// cache has never been populated.
func (s *Store) FetchedAt() (string, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = 'fetched_at'").Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return v, err
}
