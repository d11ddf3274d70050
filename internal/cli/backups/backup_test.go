package backups

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/sportlog/internal/backup"
	"github.com/julianstephens/sportlog/internal/cli"
	"github.com/julianstephens/sportlog/internal/models"
	"github.com/julianstephens/sportlog/internal/storage"
	"github.com/julianstephens/sportlog/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, string, func()) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	cleanup := func() {
		store.Close()
	}
	return cli.NewContext(store), dbPath, cleanup
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, dbPath, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Errorf("list on empty dir failed: %v", err)
	}
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Errorf("list failed: %v", err)
	}

	backups, err := backup.NewManager(dbPath).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestBackupRestore(t *testing.T) {
	ctx, dbPath, cleanup := setupTestDB(t)
	defer cleanup()

	ctx.Diary.SaveEntry(models.RunningData{Date: "2026-02-01"})
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	backups, _ := backup.NewManager(dbPath).List()
	name := filepath.Base(backups[0].Path)

	ctx.Diary.ClearEntries()

	cmd := &BackupRestoreCmd{BackupFile: name}
	if err := cmd.run(ctx, strings.NewReader("n\n")); err != nil {
		t.Fatalf("cancelled restore failed: %v", err)
	}
	if n := len(ctx.Diary.GetEntries()); n != 0 {
		t.Errorf("cancelled restore changed data: %d entries", n)
	}

	if err := cmd.run(ctx, strings.NewReader("y\n")); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if err := ctx.Store.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if n := len(ctx.Diary.GetEntries()); n != 1 {
		t.Errorf("restored database has %d entries, want 1", n)
	}
}

func TestBackupRestoreMissing(t *testing.T) {
	ctx, _, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&BackupRestoreCmd{BackupFile: "nope.db", Yes: true}).Run(ctx); err == nil {
		t.Error("expected error for missing backup")
	}
}

func TestBackupRequiresSQLite(t *testing.T) {
	mem := storage.NewMemoryStore()
	_ = mem.Init()
	ctx := cli.NewContext(mem)

	if err := (&BackupCreateCmd{}).Run(ctx); err == nil {
		t.Error("expected error for non-SQLite storage")
	}
}
