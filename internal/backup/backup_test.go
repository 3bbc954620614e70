package backup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/lifedash/internal/journal"
	"github.com/julianstephens/lifedash/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "lifedash.db")

	store := sqlite.New(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if _, err := journal.New(store).Mood(4); err != nil {
		t.Fatalf("failed to record mood: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
	return dbPath
}

func moodCount(t *testing.T, path string) int {
	t.Helper()
	store := sqlite.New(path)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load %s: %v", path, err)
	}
	defer store.Close()
	moods, err := store.GetMoodCheckIns(0)
	if err != nil {
		t.Fatal(err)
	}
	return len(moods)
}

func fixedClock() func() time.Time {
	ts := time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)
	return func() time.Time { return ts }
}

func TestCreate(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath, WithClock(fixedClock()))

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if filepath.Base(path) != "lifedash-20260302-0800.db" {
		t.Errorf("backup name = %s", filepath.Base(path))
	}
	if filepath.Dir(path) != mgr.Dir() {
		t.Errorf("backup dir = %s, want %s", filepath.Dir(path), mgr.Dir())
	}
	if got := moodCount(t, path); got != 1 {
		t.Errorf("backup has %d mood check-ins, want 1", got)
	}
}

func TestCreate_NameCollisions(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath, WithClock(fixedClock()))

	want := []string{
		"lifedash-20260302-0800.db",
		"lifedash-20260302-080000.db",
		"lifedash-20260302-080000-1.db",
	}
	for _, w := range want {
		path, err := mgr.Create()
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(path) != w {
			t.Errorf("backup name = %s, want %s", filepath.Base(path), w)
		}
	}
}

func TestCreate_NoJournal(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); !errors.Is(err, ErrNoJournal) {
		t.Errorf("Create() error = %v, want ErrNoJournal", err)
	}
}

func TestListAndRotate(t *testing.T) {
	dbPath := setupTestDB(t)
	clock := time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)
	mgr := NewManager(dbPath, WithRetention(3), WithClock(func() time.Time {
		clock = clock.Add(time.Hour)
		return clock
	}))

	// a stray file in the directory is ignored
	if err := os.MkdirAll(mgr.Dir(), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(mgr.Dir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		if _, err := mgr.Create(); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Fatalf("backups = %d, want 3", len(backups))
	}
	if backups[0].Timestamp.Hour() != 13 || backups[2].Timestamp.Hour() != 11 {
		t.Errorf("backups not newest first: %v, %v", backups[0].Timestamp, backups[2].Timestamp)
	}
	for _, b := range backups {
		if b.Size == 0 {
			t.Errorf("backup %s is empty", b.Path)
		}
	}
}

func TestList_NoDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "lifedash.db"))
	backups, err := mgr.List()
	if err != nil || len(backups) != 0 {
		t.Errorf("List() = %v, %v; want empty", backups, err)
	}
}

func TestRestore(t *testing.T) {
	dbPath := setupTestDB(t)
	clock := time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)
	mgr := NewManager(dbPath, WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))

	snapshot, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}

	// journal grows after the backup
	store := sqlite.New(dbPath)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	if _, err := journal.New(store).Mood(2); err != nil {
		t.Fatal(err)
	}
	store.Close()
	if got := moodCount(t, dbPath); got != 2 {
		t.Fatalf("mood check-ins = %d, want 2", got)
	}

	previous, err := mgr.Restore(snapshot)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if got := moodCount(t, dbPath); got != 1 {
		t.Errorf("restored journal has %d check-ins, want 1", got)
	}
	if got := moodCount(t, previous); got != 2 {
		t.Errorf("pre-restore backup has %d check-ins, want 2", got)
	}
}

func TestRestore_Invalid(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if _, err := mgr.Restore(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("expected error for missing backup")
	}

	junk := filepath.Join(t.TempDir(), "junk.db")
	if err := os.WriteFile(junk, []byte("definitely not sqlite, just some text padding it out"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Restore(junk); err == nil {
		t.Error("expected error for corrupt backup")
	}
	if got := moodCount(t, dbPath); got != 1 {
		t.Errorf("journal changed after failed restore: %d check-ins", got)
	}
}
