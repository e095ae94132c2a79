package storage

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"watermark-tg-bot/internal/settings"
	"watermark-tg-bot/internal/users"
	"watermark-tg-bot/internal/watermark"
)

func TestOpenAppliesPragmas(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "bot.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("read journal_mode: %v", err)
	}
	if !strings.EqualFold(journalMode, "wal") {
		t.Errorf("journal_mode = %q, want wal", journalMode)
	}

	var busyTimeout int
	if err := db.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout); err != nil {
		t.Fatalf("read busy_timeout: %v", err)
	}
	if busyTimeout != 5000 {
		t.Errorf("busy_timeout = %d, want 5000", busyTimeout)
	}
}

func TestStoresShareOneHandle(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "bot.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	settingsStore, err := settings.NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("create settings store: %v", err)
	}
	userRegistry, err := users.NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("create user registry: %v", err)
	}

	// Settings upserts racing user touches on the same file must queue,
	// not fail busy.
	var wg sync.WaitGroup
	errCh := make(chan error, 40)
	for i := 0; i < 20; i++ {
		id := int64(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- settingsStore.Save(id, watermark.DefaultSettings())
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- userRegistry.Touch(users.User{UserID: id, ChatID: id * 10})
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Errorf("concurrent write failed: %v", err)
		}
	}

	n, err := userRegistry.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 20 {
		t.Errorf("Count = %d, want 20", n)
	}
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "bot.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Errorf("Ping: %v", err)
	}
}
