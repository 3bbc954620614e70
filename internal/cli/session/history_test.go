package session

import (
	"strings"
	"testing"

	"github.com/julianstephens/lifedash/internal/content"
	"github.com/julianstephens/lifedash/internal/wheel"
)

func TestHistoryCmd_Empty(t *testing.T) {
	ctx, out, _ := setupTestDB(t)

	if err := (&HistoryCmd{Limit: 10}).Run(ctx); err != nil {
		t.Fatalf("history command failed: %v", err)
	}
	output := out.String()
	for _, want := range []string{"run 'lifedash start'", "run 'lifedash mood <1-5>'", "no snapshot yet", "Tasks completed today: 0"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestHistoryCmd_WithEntries(t *testing.T) {
	ctx, out, _ := setupTestDB(t)
	rec := ctx.Recorder()
	for _, v := range []int{2, 4, 5} {
		if _, err := rec.Mood(v); err != nil {
			t.Fatal(err)
		}
	}
	w := wheel.New(content.LifeAreas())
	w.Update(0, 9)
	if _, err := rec.Wheel(w); err != nil {
		t.Fatal(err)
	}
	if _, err := rec.Task("health", "Drink water", true, 100); err != nil {
		t.Fatal(err)
	}

	ctx.Ticks = fakeTicks(20)
	if err := (&StartCmd{Minutes: 1, Quiet: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	out.Reset()

	if err := (&HistoryCmd{Limit: 10}).Run(ctx); err != nil {
		t.Fatalf("history command failed: %v", err)
	}
	output := out.String()
	for _, want := range []string{
		"00:20 / 01:00  ⏸ stopped",
		"🤩 Ecstatic",
		"📈 Great trend!",
		"Health",
		"Tasks completed today: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}
