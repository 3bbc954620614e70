package checkin

import (
	"fmt"
	"slices"

	"github.com/julianstephens/lifedash/internal/cli"
	"github.com/julianstephens/lifedash/internal/mood"
)

// trendDays is how many journaled check-ins feed the trend.
const trendDays = 7

type MoodCmd struct {
	Value int `arg:"" help:"How you feel, from 1 (very sad) to 5 (ecstatic)."`
}

func (c *MoodCmd) Run(ctx *cli.Context) error {
	if _, err := mood.New(nil).Submit(c.Value); err != nil {
		return err
	}

	rec, err := ctx.Recorder().Mood(c.Value)
	if err != nil {
		return fmt.Errorf("failed to record mood: %w", err)
	}

	recent, err := ctx.Store.GetMoodCheckIns(trendDays)
	if err != nil {
		return fmt.Errorf("failed to get mood check-ins: %w", err)
	}
	history := make([]int, 0, len(recent))
	for _, r := range recent {
		history = append(history, r.Value)
	}
	slices.Reverse(history)

	opt, _ := mood.Option(rec.Value)
	ctx.Printf("%s Thanks for checking in! Feeling %s.\n", opt.Emoji, rec.Label)
	ctx.Println(mood.TrendMessage(mood.New(history).Trend()))
	return nil
}
