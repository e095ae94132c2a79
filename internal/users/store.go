package users

import "time"

// User is a chat user the bot has seen at least once. The registry exists
// so owner broadcasts have a target list.
type User struct {
	UserID    int64
	ChatID    int64
	Username  string
	FirstSeen time.Time
	LastSeen  time.Time
}

// Store defines the interface for the known-user registry
type Store interface {
	// Touch records a user contact, inserting on first sight and
	// refreshing chat id, username and last-seen otherwise.
	Touch(user User) error

	// List returns every known user, ordered by first contact.
	List() ([]User, error)

	// Count returns the number of known users.
	Count() (int, error)
}
