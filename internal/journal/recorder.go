// Package journal turns dashboard events into storage records.
package journal

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifedash/internal/daytimer"
	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/mood"
	"github.com/julianstephens/lifedash/internal/storage"
	"github.com/julianstephens/lifedash/internal/wheel"
)

// Recorder writes events to a store. A Recorder with a nil store drops
// everything, which keeps the dashboard usable without a journal.
type Recorder struct {
	store storage.Provider
	now   func() time.Time
	newID func() string
}

type Option func(*Recorder)

func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

func WithIDs(newID func() string) Option {
	return func(r *Recorder) { r.newID = newID }
}

func New(store storage.Provider, opts ...Option) *Recorder {
	r := &Recorder{store: store, now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) Enabled() bool { return r != nil && r.store != nil }

// Session records a session that began at started, using the timer's
// current progress.
func (r *Recorder) Session(t *daytimer.Timer, started time.Time) (models.SessionRecord, error) {
	rec := models.SessionRecord{
		ID:         r.newID(),
		StartedAt:  started,
		EndedAt:    r.now(),
		PlannedSec: int(t.Total() / time.Second),
		ElapsedSec: int(t.Elapsed() / time.Second),
		Blocks:     t.CurrentBlock() + 1,
		Completed:  t.Status() == daytimer.Completed,
	}
	if !r.Enabled() {
		return rec, nil
	}
	return rec, r.store.AddSession(rec)
}

func (r *Recorder) Mood(value int) (models.MoodRecord, error) {
	opt, _ := mood.Option(value)
	rec := models.MoodRecord{
		ID:         r.newID(),
		Value:      value,
		Label:      opt.Label,
		RecordedAt: r.now(),
	}
	if !r.Enabled() {
		return rec, nil
	}
	return rec, r.store.AddMoodCheckIn(rec)
}

func (r *Recorder) Wheel(w *wheel.Wheel) (models.WheelSnapshot, error) {
	snap := w.Snapshot()
	snap.ID = r.newID()
	snap.CreatedAt = r.now()
	if !r.Enabled() {
		return snap, nil
	}
	return snap, r.store.AddWheelSnapshot(snap)
}

func (r *Recorder) Task(areaID, text string, completed bool, points int) (models.TaskEvent, error) {
	ev := models.TaskEvent{
		ID:        r.newID(),
		AreaID:    areaID,
		TaskText:  text,
		Completed: completed,
		Points:    points,
		CreatedAt: r.now(),
	}
	if !r.Enabled() {
		return ev, nil
	}
	return ev, r.store.AddTaskEvent(ev)
}
