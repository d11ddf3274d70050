package sqlite

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/sportlog/internal/storage"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "sportlog.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store, func() { store.Close() }
}

func TestStoreGetSetRemove(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	var _ storage.Provider = store

	if _, err := store.Get("trainingDiaryEntries"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get on empty store error = %v, want ErrNotFound", err)
	}

	if err := store.Set("trainingDiaryEntries", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("trainingDiaryEntries", `[{"timestamp":1}]`); err != nil {
		t.Fatalf("Set overwrite failed: %v", err)
	}

	got, err := store.Get("trainingDiaryEntries")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != `[{"timestamp":1}]` {
		t.Errorf("Get = %q", got)
	}

	if err := store.Remove("trainingDiaryEntries"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := store.Get("trainingDiaryEntries"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get after Remove error = %v, want ErrNotFound", err)
	}
	if err := store.Remove("trainingDiaryEntries"); err != nil {
		t.Errorf("Remove of absent key failed: %v", err)
	}
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sportlog.db")

	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("k")
	if err != nil || got != "v" {
		t.Errorf("Get = %q, %v; want v, nil", got, err)
	}

	applied, err := reopened.Migrate(nil)
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected no pending migrations, got %d", applied)
	}
}

func TestStoreNotLoaded(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "sportlog.db"))

	if _, err := store.Get("k"); !errors.Is(err, storage.ErrNotLoaded) {
		t.Errorf("Get error = %v, want ErrNotLoaded", err)
	}
	if err := store.Set("k", "v"); !errors.Is(err, storage.ErrNotLoaded) {
		t.Errorf("Set error = %v, want ErrNotLoaded", err)
	}
	if err := store.Load(); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("Load error = %v, want not initialized", err)
	}
}

func TestSchemaVersion(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	current, latest, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if current != latest || latest < 1 {
		t.Errorf("SchemaVersion = (%d, %d), want equal and >= 1", current, latest)
	}
}
