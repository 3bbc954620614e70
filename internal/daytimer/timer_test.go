package daytimer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/lifedash/internal/content"
)

func newDefault(t *testing.T, onComplete func()) *Timer {
	t.Helper()
	timer, err := New(DefaultConfig(), onComplete)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return timer
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero total", Config{Total: 0, Blocks: 6}},
		{"sub-second total", Config{Total: 500 * time.Millisecond, Blocks: 1}},
		{"zero blocks", Config{Total: time.Minute, Blocks: 0}},
		{"negative blocks", Config{Total: time.Minute, Blocks: -2}},
		{"blocks shorter than a second", Config{Total: 5 * time.Second, Blocks: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg, nil)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New(%+v) error = %v, want ErrInvalidConfig", tt.cfg, err)
			}
		})
	}
}

func TestInitialState(t *testing.T) {
	timer := newDefault(t, nil)
	if timer.Status() != Idle {
		t.Errorf("Status() = %v, want idle", timer.Status())
	}
	if timer.Remaining() != 30*time.Minute {
		t.Errorf("Remaining() = %v", timer.Remaining())
	}
	if timer.BlockDuration() != 5*time.Minute {
		t.Errorf("BlockDuration() = %v", timer.BlockDuration())
	}
	if timer.StartLabel() != "Start" {
		t.Errorf("StartLabel() = %q", timer.StartLabel())
	}
}

func TestTickIgnoredUnlessRunning(t *testing.T) {
	timer := newDefault(t, nil)
	timer.Tick()
	if timer.Remaining() != timer.Total() {
		t.Error("idle timer should not count down")
	}

	timer.Start()
	timer.Tick()
	timer.Pause()
	timer.Tick()
	if got := timer.Elapsed(); got != time.Second {
		t.Errorf("Elapsed() = %v, want 1s", got)
	}
	if timer.StartLabel() != "Resume" {
		t.Errorf("StartLabel() = %q, want Resume", timer.StartLabel())
	}
}

func TestBlockAdvancesAfterBlockDuration(t *testing.T) {
	timer := newDefault(t, nil)
	timer.Start()

	for i := 0; i < 299; i++ {
		if res := timer.Tick(); res.BlockChanged {
			t.Fatalf("block changed early at tick %d", i+1)
		}
	}
	if timer.CurrentBlock() != 0 {
		t.Fatalf("CurrentBlock() = %d after 299 ticks", timer.CurrentBlock())
	}

	res := timer.Tick()
	if !res.BlockChanged || res.Block != 1 {
		t.Errorf("tick 300 = %+v, want block 1 changed", res)
	}
	if timer.Remaining() != 25*time.Minute {
		t.Errorf("Remaining() = %v, want 25m", timer.Remaining())
	}
}

func TestInvariantsHoldEveryTick(t *testing.T) {
	timer := newDefault(t, nil)
	timer.Start()
	prev := 0
	for i := 0; i < 1800; i++ {
		timer.Tick()
		if timer.Remaining() < 0 {
			t.Fatalf("remaining went negative at tick %d", i+1)
		}
		if timer.Elapsed()+timer.Remaining() != timer.Total() {
			t.Fatalf("elapsed + remaining != total at tick %d", i+1)
		}
		want := int(timer.Elapsed() / timer.BlockDuration())
		if want > timer.Blocks()-1 {
			want = timer.Blocks() - 1
		}
		if timer.CurrentBlock() != want {
			t.Fatalf("CurrentBlock() = %d, want %d at tick %d", timer.CurrentBlock(), want, i+1)
		}
		if timer.CurrentBlock() < prev {
			t.Fatalf("block went backwards at tick %d", i+1)
		}
		prev = timer.CurrentBlock()
	}
}

func TestCompletionFiresOnce(t *testing.T) {
	calls := 0
	timer := newDefault(t, func() { calls++ })
	timer.Start()

	var last TickResult
	for i := 0; i < 1800; i++ {
		last = timer.Tick()
	}
	if !last.Completed {
		t.Error("last tick should report completion")
	}
	if timer.Status() != Completed {
		t.Errorf("Status() = %v, want completed", timer.Status())
	}
	if timer.Remaining() != 0 {
		t.Errorf("Remaining() = %v", timer.Remaining())
	}
	if timer.CurrentBlock() != 5 {
		t.Errorf("CurrentBlock() = %d, want 5", timer.CurrentBlock())
	}

	// Completed timers cannot be restarted without a reset.
	timer.Start()
	timer.Tick()
	timer.Tick()
	if calls != 1 {
		t.Errorf("onComplete called %d times, want 1", calls)
	}
	if timer.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", timer.Progress())
	}
}

func TestResetRearmsCompletion(t *testing.T) {
	calls := 0
	timer, err := New(Config{Total: 6 * time.Second, Blocks: 6}, func() { calls++ })
	if err != nil {
		t.Fatal(err)
	}
	timer.Start()
	for i := 0; i < 6; i++ {
		timer.Tick()
	}

	timer.Reset()
	if timer.Status() != Idle || timer.CurrentBlock() != 0 || timer.Remaining() != timer.Total() {
		t.Fatalf("Reset() left state %v block=%d remaining=%v", timer.Status(), timer.CurrentBlock(), timer.Remaining())
	}

	timer.Start()
	for i := 0; i < 6; i++ {
		timer.Tick()
	}
	if calls != 2 {
		t.Errorf("onComplete called %d times across two sessions, want 2", calls)
	}
}

func TestToggle(t *testing.T) {
	timer := newDefault(t, nil)
	timer.Toggle()
	if timer.Status() != Running {
		t.Fatalf("Status() = %v, want running", timer.Status())
	}
	timer.Toggle()
	if timer.Status() != Paused {
		t.Fatalf("Status() = %v, want paused", timer.Status())
	}
	timer.Toggle()
	if timer.Status() != Running {
		t.Fatalf("Status() = %v, want running", timer.Status())
	}
}

func TestActiveArea(t *testing.T) {
	timer, err := New(Config{Total: 8 * time.Second, Blocks: 8}, nil)
	if err != nil {
		t.Fatal(err)
	}
	areas := content.LifeAreas()
	timer.Start()
	for i := 0; i < 7; i++ {
		timer.Tick()
	}
	area, ok := timer.ActiveArea(areas)
	if !ok || area.ID != areas[len(areas)-1].ID {
		t.Errorf("ActiveArea() = %q, want last area", area.ID)
	}
	if _, ok := timer.ActiveArea(nil); ok {
		t.Error("ActiveArea(nil) should report false")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Minute, "30:00"},
		{5*time.Minute + 7*time.Second, "05:07"},
		{59 * time.Second, "00:59"},
		{0, "00:00"},
		{-time.Second, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunCompletes(t *testing.T) {
	calls := 0
	timer, err := New(Config{Total: 3 * time.Second, Blocks: 3}, func() { calls++ })
	if err != nil {
		t.Fatal(err)
	}

	ticks := make(chan time.Time, 5)
	for i := 0; i < 5; i++ {
		ticks <- time.Now()
	}

	var changes int
	err = Run(context.Background(), timer, ticks, func(r TickResult) {
		if r.BlockChanged {
			changes++
		}
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if calls != 1 || timer.Status() != Completed {
		t.Errorf("calls=%d status=%v", calls, timer.Status())
	}
	if changes != 2 {
		t.Errorf("observed %d block changes, want 2", changes)
	}
	if len(ticks) != 2 {
		t.Errorf("Run consumed %d ticks, want 3", 5-len(ticks))
	}
}

func TestRunCancelled(t *testing.T) {
	timer := newDefault(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, timer, make(chan time.Time), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if timer.Status() != Paused {
		t.Errorf("Status() = %v, want paused", timer.Status())
	}
}
