package checkin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifedash/internal/cli"
	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/content"
	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/storage"
	"github.com/julianstephens/lifedash/internal/tui/theme"
	"github.com/julianstephens/lifedash/internal/wheel"
)

type WheelCmd struct {
	Rate map[string]int `help:"Rate an area from 0 to 10, e.g. --rate health=7. Repeatable." placeholder:"AREA=N"`
}

func (c *WheelCmd) Run(ctx *cli.Context) error {
	areas := content.LifeAreas()
	w := wheel.New(areas)

	latest, err := ctx.Store.GetLatestWheelSnapshot()
	hasLatest := err == nil
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to get wheel snapshot: %w", err)
	}
	if hasLatest {
		for i, a := range areas {
			if v, ok := latest.Ratings[a.ID]; ok {
				w.Update(i, v)
			}
		}
	}

	if len(c.Rate) == 0 {
		if !hasLatest {
			ctx.Println("No Wheel of Life snapshot yet. Rate your areas with --rate health=7 --rate work=5 ...")
			return nil
		}
		ctx.Printf("Latest snapshot (%s):\n", latest.CreatedAt.Local().Format("2006-01-02 15:04"))
		printWheel(ctx, w)
		return nil
	}

	for id, v := range c.Rate {
		i := indexOf(areas, strings.ToLower(strings.TrimSpace(id)))
		if i < 0 {
			return fmt.Errorf("unknown life area %q", id)
		}
		if v < constants.WheelMinRating || v > constants.WheelMaxRating {
			return fmt.Errorf("rating for %s must be between %d and %d, got %d", id, constants.WheelMinRating, constants.WheelMaxRating, v)
		}
		w.Update(i, v)
	}

	snap, err := ctx.Recorder().Wheel(w)
	if err != nil {
		return fmt.Errorf("failed to save wheel snapshot: %w", err)
	}
	printWheel(ctx, w)
	ctx.Printf("Saved snapshot (%s).\n", snap.Balance)
	return nil
}

func indexOf(areas []models.LifeArea, id string) int {
	for i, a := range areas {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func printWheel(ctx *cli.Context, w *wheel.Wheel) {
	for i, p := range w.Series() {
		area := w.Ratings()[i].Area
		bar := lipgloss.NewStyle().Foreground(theme.AreaColor(area.Color)).
			Render(strings.Repeat("█", p.Rating) + strings.Repeat("░", p.FullMark-p.Rating))
		ctx.Printf("  %s %-10s %s %2d/%d\n", area.Emoji, p.Area, bar, p.Rating, p.FullMark)
	}
	s := w.Stats()
	ctx.Printf("Average: %.1f/10   Balance: %s\n", s.Mean, s.Balance)
	ctx.Println(w.Insight())
}
