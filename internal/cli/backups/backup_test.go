package backups

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifedash/internal/cli"
	"github.com/julianstephens/lifedash/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer, *sqlite.Store) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "lifedash.db")
	store := sqlite.New(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	clock := time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)
	now := func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	var out bytes.Buffer
	return &cli.Context{Store: store, Out: &out, Now: now}, &out, store
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, out, _ := setupTestDB(t)

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backup created: lifedash-") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Available backups (1 total") {
		t.Errorf("output = %q", out.String())
	}
}

func TestBackupRestore(t *testing.T) {
	ctx, out, store := setupTestDB(t)
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	name := strings.TrimSpace(strings.TrimPrefix(out.String(), "✓ Backup created:"))

	if _, err := ctx.Recorder().Mood(3); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := (&BackupRestoreCmd{BackupFile: name, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "Journal restored from: "+name) {
		t.Errorf("output = %q", out.String())
	}

	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	moods, _ := store.GetMoodCheckIns(0)
	if len(moods) != 0 {
		t.Errorf("check-ins after restore = %d, want 0", len(moods))
	}
}

func TestBackupRestore_NotFound(t *testing.T) {
	ctx, _, _ := setupTestDB(t)
	if err := (&BackupRestoreCmd{BackupFile: "lifedash-19990101-0000.db", Yes: true}).Run(ctx); err == nil {
		t.Error("expected error")
	}
}

func TestBackup_MemoryStore(t *testing.T) {
	store := sqlite.New(sqlite.MemoryPath)
	ctx := &cli.Context{Store: store, Out: &bytes.Buffer{}}
	if err := (&BackupCreateCmd{}).Run(ctx); !errors.Is(err, errNotSQLite) {
		t.Errorf("error = %v, want errNotSQLite", err)
	}
}
