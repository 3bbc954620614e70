package settings

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/lifedash/internal/cli"
	"github.com/julianstephens/lifedash/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := sqlite.New(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	var out bytes.Buffer
	return &cli.Context{Store: store, Out: &out}, &out
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }

func TestSettingsCmd_List(t *testing.T) {
	ctx, out := setupTestDB(t)

	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
	for _, want := range []string{"Session Length:        30 min", "Points Per Task:       50", "Notifications Enabled: true"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx, out := setupTestDB(t)

	cmd := &SettingsCmd{
		SessionMin:           intPtr(12),
		TaskAwardPoints:      intPtr(25),
		NotificationsEnabled: boolPtr(false),
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}
	if !strings.Contains(out.String(), "Settings updated successfully.") {
		t.Errorf("output = %q", out.String())
	}

	got, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if got.SessionMin != 12 || got.TaskAwardPoints != 25 || got.NotificationsEnabled {
		t.Errorf("settings = %+v", got)
	}
}

func TestSettingsCmd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  SettingsCmd
	}{
		{"zero session", SettingsCmd{SessionMin: intPtr(0)}},
		{"negative points", SettingsCmd{TaskAwardPoints: intPtr(-1)}},
		{"zero mood delay", SettingsCmd{MoodDisplaySec: intPtr(0)}},
		{"zero celebration", SettingsCmd{CelebrationSec: intPtr(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestDB(t)
			if err := tt.cmd.Run(ctx); err == nil {
				t.Fatal("expected error")
			}
			got, _ := ctx.Store.GetSettings()
			if got.SessionMin != 30 || got.TaskAwardPoints != 50 {
				t.Errorf("settings changed to %+v", got)
			}
		})
	}
}

func TestSettingsCmd_NoChanges(t *testing.T) {
	ctx, out := setupTestDB(t)
	if err := (&SettingsCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No changes specified") {
		t.Errorf("output = %q", out.String())
	}
}
