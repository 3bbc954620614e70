package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/lifedash/internal/cli"
	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/content"
	"github.com/julianstephens/lifedash/internal/daytimer"
	"github.com/julianstephens/lifedash/internal/logger"
)

type StartCmd struct {
	Minutes int  `help:"Session length in minutes. Defaults to the session_min setting."`
	Quiet   bool `help:"Only print block changes and the result."`
}

func (c *StartCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if c.Minutes != 0 {
		settings.SessionMin = c.Minutes
	}

	areas := content.LifeAreas()
	if err := settings.Validate(len(areas)); err != nil {
		return err
	}
	t, err := daytimer.New(daytimer.Config{Total: settings.SessionDuration(), Blocks: len(areas)}, nil)
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ticks, stopTicks := ctx.Tick(constants.TickInterval)
	defer stopTicks()

	started := ctx.Clock()
	first, _ := t.ActiveArea(areas)
	ctx.Printf("☀️  Start My Day: %d min across %d areas (%s each)\n", settings.SessionMin, len(areas), daytimer.FormatClock(t.BlockDuration()))
	if !c.Quiet {
		ctx.Printf("💬 %s\n", content.RandomQuote(nil))
	}
	printFocus(ctx, t, first.Emoji, first.Title, first.Goal)

	runErr := daytimer.Run(sigCtx, t, ticks, func(res daytimer.TickResult) {
		if res.BlockChanged {
			area, _ := t.ActiveArea(areas)
			printFocus(ctx, t, area.Emoji, area.Title, area.Goal)
		}
	})
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if _, err := ctx.Recorder().Session(t, started); err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}

	if t.Status() != daytimer.Completed {
		ctx.Printf("⏸  Session stopped after %s\n", daytimer.FormatClock(t.Elapsed()))
		return nil
	}

	ctx.Println("🎉 Amazing! You completed Start My Day!")
	if settings.NotificationsEnabled {
		notifyCtx, cancel := context.WithTimeout(context.Background(), time.Duration(constants.NotificationDurationMs)*time.Millisecond)
		defer cancel()
		if err := ctx.Notify(notifyCtx, fmt.Sprintf("Start My Day complete! %d minutes across every area of your life.", settings.SessionMin)); err != nil {
			logger.Warn("failed to send notification", "error", err)
		}
	}
	return nil
}

func printFocus(ctx *cli.Context, t *daytimer.Timer, emoji, title, goal string) {
	ctx.Printf("[%s] %d/%d %s %s · reflect on: %s\n",
		daytimer.FormatClock(t.Remaining()), t.CurrentBlock()+1, t.Blocks(), emoji, title, goal)
}
