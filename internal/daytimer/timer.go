// Package daytimer implements the Start My Day countdown: a fixed-length
// session split into equal blocks, one per life area.
package daytimer

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/lifedash/internal/models"
)

type Status int

const (
	Idle Status = iota
	Running
	Paused
	Completed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

var ErrInvalidConfig = errors.New("invalid timer configuration")

type Config struct {
	Total  time.Duration
	Blocks int
}

// DefaultConfig is a 30 minute session split into six 5 minute blocks.
func DefaultConfig() Config {
	return Config{Total: 30 * time.Minute, Blocks: 6}
}

// TickResult describes what a single tick changed.
type TickResult struct {
	Block        int
	BlockChanged bool
	Completed    bool
}

// Timer counts down in whole seconds. It is not safe for concurrent use;
// callers drive it from a single goroutine.
type Timer struct {
	totalSec   int
	blockSec   int
	blocks     int
	remaining  int
	block      int
	status     Status
	fired      bool
	onComplete func()
}

func New(cfg Config, onComplete func()) (*Timer, error) {
	totalSec := int(cfg.Total / time.Second)
	if totalSec <= 0 {
		return nil, fmt.Errorf("%w: total must be at least one second, got %s", ErrInvalidConfig, cfg.Total)
	}
	if cfg.Blocks <= 0 {
		return nil, fmt.Errorf("%w: block count must be positive, got %d", ErrInvalidConfig, cfg.Blocks)
	}
	blockSec := totalSec / cfg.Blocks
	if blockSec < 1 {
		return nil, fmt.Errorf("%w: %d blocks do not fit in %s", ErrInvalidConfig, cfg.Blocks, cfg.Total)
	}
	return &Timer{
		totalSec:   totalSec,
		blockSec:   blockSec,
		blocks:     cfg.Blocks,
		remaining:  totalSec,
		onComplete: onComplete,
	}, nil
}

// Start moves an idle or paused timer to running. A completed timer must
// be Reset first.
func (t *Timer) Start() {
	if t.status == Idle || t.status == Paused {
		t.status = Running
	}
}

func (t *Timer) Pause() {
	if t.status == Running {
		t.status = Paused
	}
}

// Toggle starts the timer when it is stopped and pauses it when it runs.
func (t *Timer) Toggle() {
	if t.status == Running {
		t.Pause()
		return
	}
	t.Start()
}

func (t *Timer) Reset() {
	t.status = Idle
	t.remaining = t.totalSec
	t.block = 0
	t.fired = false
}

// Tick advances the countdown by one second. It does nothing unless the
// timer is running.
func (t *Timer) Tick() TickResult {
	if t.status != Running {
		return TickResult{Block: t.block}
	}

	t.remaining--
	if t.remaining < 0 {
		t.remaining = 0
	}

	res := TickResult{Block: t.block}
	next := (t.totalSec - t.remaining) / t.blockSec
	if next > t.blocks-1 {
		next = t.blocks - 1
	}
	if next > t.block {
		t.block = next
		res.Block = next
		res.BlockChanged = true
	}

	if t.remaining == 0 {
		t.status = Completed
		res.Completed = true
		if !t.fired {
			t.fired = true
			if t.onComplete != nil {
				t.onComplete()
			}
		}
	}
	return res
}

func (t *Timer) Status() Status { return t.status }

func (t *Timer) Remaining() time.Duration {
	return time.Duration(t.remaining) * time.Second
}

func (t *Timer) Elapsed() time.Duration {
	return time.Duration(t.totalSec-t.remaining) * time.Second
}

func (t *Timer) Total() time.Duration {
	return time.Duration(t.totalSec) * time.Second
}

func (t *Timer) BlockDuration() time.Duration {
	return time.Duration(t.blockSec) * time.Second
}

func (t *Timer) Blocks() int { return t.blocks }

func (t *Timer) CurrentBlock() int { return t.block }

// Progress is the elapsed fraction of the session in [0, 1].
func (t *Timer) Progress() float64 {
	return float64(t.totalSec-t.remaining) / float64(t.totalSec)
}

// ActiveArea returns the area for the current block, falling back to the
// last area when there are fewer areas than blocks.
func (t *Timer) ActiveArea(areas []models.LifeArea) (models.LifeArea, bool) {
	if len(areas) == 0 {
		return models.LifeArea{}, false
	}
	i := t.block
	if i > len(areas)-1 {
		i = len(areas) - 1
	}
	return areas[i], true
}

// StartLabel is the caption for the start button.
func (t *Timer) StartLabel() string {
	if t.remaining == t.totalSec {
		return "Start"
	}
	return "Resume"
}

// FormatClock renders d as MM:SS, truncating to whole seconds.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	sec := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
