package users

import (
	"path/filepath"
	"testing"

	"watermark-tg-bot/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "users.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	return store
}

func TestTouchAndList(t *testing.T) {
	store := newTestStore(t)

	if err := store.Touch(User{UserID: 1, ChatID: 10, Username: "alice"}); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if err := store.Touch(User{UserID: 2, ChatID: 20, Username: "bob"}); err != nil {
		t.Fatalf("Touch: %v", err)
	}

	list, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List returned %d users, want 2", len(list))
	}
	if list[0].UserID != 1 || list[0].ChatID != 10 || list[0].Username != "alice" {
		t.Errorf("first user = %+v", list[0])
	}
}

func TestTouchIsIdempotentPerUser(t *testing.T) {
	store := newTestStore(t)

	if err := store.Touch(User{UserID: 1, ChatID: 10, Username: "alice"}); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	// Same user from a new chat with a renamed account.
	if err := store.Touch(User{UserID: 1, ChatID: 11, Username: "alice2"}); err != nil {
		t.Fatalf("Touch again: %v", err)
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}

	list, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list[0].ChatID != 11 || list[0].Username != "alice2" {
		t.Errorf("user not refreshed: %+v", list[0])
	}
}

func TestCountEmpty(t *testing.T) {
	store := newTestStore(t)
	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
}
