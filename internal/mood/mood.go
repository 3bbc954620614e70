// Package mood implements the daily mood check-in widget.
package mood

import (
	"errors"
	"fmt"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/content"
	"github.com/julianstephens/lifedash/internal/models"
)

var ErrOutOfRange = errors.New("mood value out of range")

const trendWindow = 3

// Widget holds the current selection and the static history.
type Widget struct {
	history   []int
	selected  int
	submitted bool
	gen       int
}

// New creates a widget. A nil history uses the seed history.
func New(history []int) *Widget {
	if history == nil {
		history = content.MoodHistory()
	}
	return &Widget{history: history}
}

// Submit records a selection and returns the token Dismiss needs to
// clear the confirmation.
func (w *Widget) Submit(value int) (int, error) {
	if value < constants.MoodMin || value > constants.MoodMax {
		return 0, fmt.Errorf("%w: %d (expected %d-%d)", ErrOutOfRange, value, constants.MoodMin, constants.MoodMax)
	}
	w.selected = value
	w.submitted = true
	w.gen++
	return w.gen, nil
}

// Dismiss returns to the prompt if token belongs to the latest submission.
func (w *Widget) Dismiss(token int) bool {
	if token != w.gen || !w.submitted {
		return false
	}
	w.submitted = false
	return true
}

func (w *Widget) Submitted() bool { return w.submitted }

func (w *Widget) Selected() int { return w.selected }

func (w *Widget) History() []int { return w.history }

// Trend averages the last three history entries.
func (w *Widget) Trend() models.Trend {
	return TrendOf(w.history)
}

func TrendOf(history []int) models.Trend {
	if len(history) == 0 {
		return models.TrendNeutral
	}
	window := history
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}
	sum := 0
	for _, v := range window {
		sum += v
	}
	avg := float64(sum) / float64(len(window))
	switch {
	case avg >= 3.5:
		return models.TrendPositive
	case avg >= 2.5:
		return models.TrendNeutral
	default:
		return models.TrendNegative
	}
}

func TrendMessage(t models.Trend) string {
	switch t {
	case models.TrendPositive:
		return "📈 Great trend!"
	case models.TrendNegative:
		return "📉 Hang in there"
	default:
		return "➡️ Steady mood"
	}
}

// Option looks up the option for a mood value.
func Option(value int) (models.MoodOption, bool) {
	for _, o := range content.MoodOptions() {
		if o.Value == value {
			return o, true
		}
	}
	return models.MoodOption{}, false
}

// DayLabel names history entry i of a seven-day window, oldest first.
func DayLabel(i int) string {
	if i == 6 {
		return "Today"
	}
	return fmt.Sprintf("%dd ago", 7-i)
}
