// Package history keeps a local SQLite log of card reviews. It is a
// best-effort supplement: callers treat a nil *Store as "no history".
package history

import (
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("history path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS reviews (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	topic TEXT NOT NULL,
	card_index INTEGER NOT NULL,
	reviewed_at TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

// RecordReview logs one answer reveal for the given topic and card position.
func (s *Store) RecordReview(topic string, cardIndex int) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO reviews (topic, card_index, reviewed_at) VALUES (?, ?, ?);`,
		topic, cardIndex, now)
	return err
}

// TopicCounts returns the total number of recorded reviews per topic.
func (s *Store) TopicCounts() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT topic, COUNT(*) FROM reviews GROUP BY topic;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var topic string
		var n int
		if err := rows.Scan(&topic, &n); err != nil {
			return nil, err
		}
		counts[topic] = n
	}
	return counts, rows.Err()
}

// LastReviewed reports when the topic was last studied; ok is false if the
// topic has no recorded reviews.
func (s *Store) LastReviewed(topic string) (time.Time, bool, error) {
	var stamp sql.NullString
	err := s.db.QueryRow(`SELECT MAX(reviewed_at) FROM reviews WHERE topic = ?;`, topic).Scan(&stamp)
	if err != nil {
		return time.Time{}, false, err
	}
	if !stamp.Valid {
		return time.Time{}, false, nil
	}
	at, err := time.Parse(time.RFC3339, stamp.String)
	if err != nil {
		return time.Time{}, false, err
	}
	return at, true, nil
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
