package session

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/julianstephens/lifedash/internal/cli"
	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/content"
	"github.com/julianstephens/lifedash/internal/daytimer"
	"github.com/julianstephens/lifedash/internal/mood"
	"github.com/julianstephens/lifedash/internal/storage"
)

const timeLayout = "2006-01-02 15:04"

type HistoryCmd struct {
	Limit int `help:"Number of entries to show per section." default:"10"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	sessions, err := ctx.Store.GetSessions(c.Limit)
	if err != nil {
		return fmt.Errorf("failed to get sessions: %w", err)
	}
	ctx.Println("Start My Day sessions:")
	if len(sessions) == 0 {
		ctx.Println("  (none yet, run 'lifedash start')")
	}
	for _, s := range sessions {
		status := "⏸ stopped"
		if s.Completed {
			status = "✓ completed"
		}
		ctx.Printf("  %s  %s / %s  %s\n",
			s.StartedAt.Local().Format(timeLayout),
			daytimer.FormatClock(secs(s.ElapsedSec)),
			daytimer.FormatClock(secs(s.PlannedSec)),
			status)
	}

	checkIns, err := ctx.Store.GetMoodCheckIns(c.Limit)
	if err != nil {
		return fmt.Errorf("failed to get mood check-ins: %w", err)
	}
	ctx.Println("\nMood check-ins:")
	if len(checkIns) == 0 {
		ctx.Println("  (none yet, run 'lifedash mood <1-5>')")
	}
	values := make([]int, 0, len(checkIns))
	for _, m := range checkIns {
		opt, _ := mood.Option(m.Value)
		ctx.Printf("  %s  %s %s\n", m.RecordedAt.Local().Format(timeLayout), opt.Emoji, m.Label)
		values = append(values, m.Value)
	}
	if len(values) > 0 {
		// check-ins come newest first, the trend reads oldest first
		slices.Reverse(values)
		ctx.Printf("  %s\n", mood.TrendMessage(mood.TrendOf(values)))
	}

	ctx.Println("\nWheel of Life:")
	snap, err := ctx.Store.GetLatestWheelSnapshot()
	switch {
	case errors.Is(err, storage.ErrNotFound):
		ctx.Println("  (no snapshot yet, run 'lifedash wheel --rate health=7 ...')")
	case err != nil:
		return fmt.Errorf("failed to get wheel snapshot: %w", err)
	default:
		ctx.Printf("  %s  average %.1f/10 · %s\n", snap.CreatedAt.Local().Format(timeLayout), snap.Mean, snap.Balance)
		for _, a := range content.LifeAreas() {
			if v, ok := snap.Ratings[a.ID]; ok {
				ctx.Printf("    %-10s %2d/%d\n", a.ShortName(), v, constants.WheelMaxRating)
			}
		}
	}

	n, err := ctx.Store.CountTaskEvents(ctx.Clock())
	if err != nil {
		return fmt.Errorf("failed to count tasks: %w", err)
	}
	ctx.Printf("\nTasks completed today: %d\n", n)
	return nil
}

func secs(n int) time.Duration {
	return time.Duration(n) * time.Second
}
