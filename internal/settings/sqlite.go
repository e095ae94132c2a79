package settings

import (
	"database/sql"
	"fmt"

	"watermark-tg-bot/internal/watermark"
)

// SQLiteStore implements Store on a shared SQLite handle. The caller
// owns the handle and its lifetime.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates the settings table on db if needed.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS watermark_settings (
			user_id INTEGER PRIMARY KEY,
			size_factor REAL NOT NULL,
			color_r INTEGER NOT NULL,
			color_g INTEGER NOT NULL,
			color_b INTEGER NOT NULL,
			alpha INTEGER NOT NULL,
			position TEXT NOT NULL,
			font TEXT NOT NULL,
			style TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("create watermark_settings table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get retrieves a user's settings, creating and persisting the defaults
// on first access. Loaded records are normalized so stale or partial rows
// never surface an undefined field.
func (s *SQLiteStore) Get(userID int64) (watermark.Settings, error) {
	var ws watermark.Settings
	err := s.db.QueryRow(`
		SELECT size_factor, color_r, color_g, color_b, alpha, position, font, style
		FROM watermark_settings WHERE user_id = ?`,
		userID,
	).Scan(&ws.SizeFactor, &ws.ColorR, &ws.ColorG, &ws.ColorB, &ws.Alpha, &ws.Position, &ws.Font, &ws.Style)

	if err == sql.ErrNoRows {
		ws = watermark.DefaultSettings()
		if err := s.Save(userID, ws); err != nil {
			return ws, err
		}
		return ws, nil
	}
	if err != nil {
		return ws, fmt.Errorf("query watermark settings: %w", err)
	}

	ws.Normalize()
	return ws, nil
}

// Save persists the full settings record using upsert. The record is
// normalized first so out-of-range values are clamped rather than stored.
func (s *SQLiteStore) Save(userID int64, ws watermark.Settings) error {
	ws.Normalize()

	_, err := s.db.Exec(`
		INSERT INTO watermark_settings
			(user_id, size_factor, color_r, color_g, color_b, alpha, position, font, style)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			size_factor = excluded.size_factor,
			color_r = excluded.color_r,
			color_g = excluded.color_g,
			color_b = excluded.color_b,
			alpha = excluded.alpha,
			position = excluded.position,
			font = excluded.font,
			style = excluded.style
	`, userID, ws.SizeFactor, ws.ColorR, ws.ColorG, ws.ColorB, ws.Alpha,
		string(ws.Position), ws.Font, string(ws.Style))

	if err != nil {
		return fmt.Errorf("save watermark settings: %w", err)
	}
	return nil
}
