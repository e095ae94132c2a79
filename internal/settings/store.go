package settings

import "watermark-tg-bot/internal/watermark"

// Store defines the interface for per-user watermark settings persistence.
type Store interface {
	// Get retrieves a user's settings. First access creates and persists
	// the defaults; loaded records are normalized so every field is
	// populated before use.
	Get(userID int64) (watermark.Settings, error)
	// Save persists the full record (upsert).
	Save(userID int64, s watermark.Settings) error
}
