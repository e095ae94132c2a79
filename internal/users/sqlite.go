package users

import (
	"database/sql"
	"fmt"
	"time"
)

// SQLiteStore implements Store on a shared SQLite handle. The caller
// owns the handle and its lifetime.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates the known_users table on db if needed.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS known_users (
			user_id INTEGER PRIMARY KEY,
			chat_id INTEGER NOT NULL,
			username TEXT,
			first_seen DATETIME NOT NULL,
			last_seen DATETIME NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("create known_users table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Touch records a user contact
func (s *SQLiteStore) Touch(u User) error {
	now := time.Now().UTC()
	_, err := s.db.Exec(`
		INSERT INTO known_users (user_id, chat_id, username, first_seen, last_seen)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			chat_id = excluded.chat_id,
			username = excluded.username,
			last_seen = excluded.last_seen
	`, u.UserID, u.ChatID, u.Username, now, now)

	if err != nil {
		return fmt.Errorf("touch user: %w", err)
	}
	return nil
}

// List returns every known user, ordered by first contact
func (s *SQLiteStore) List() ([]User, error) {
	rows, err := s.db.Query(`
		SELECT user_id, chat_id, username, first_seen, last_seen
		FROM known_users ORDER BY first_seen
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var result []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.UserID, &u.ChatID, &u.Username, &u.FirstSeen, &u.LastSeen); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

// Count returns the number of known users
func (s *SQLiteStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM known_users").Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
