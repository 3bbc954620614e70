package mood

import (
	"errors"
	"testing"

	"github.com/julianstephens/lifedash/internal/models"
)

func TestTrend(t *testing.T) {
	tests := []struct {
		name    string
		history []int
		want    models.Trend
	}{
		{"all fives", []int{5, 5, 5}, models.TrendPositive},
		{"all ones", []int{1, 1, 1}, models.TrendNegative},
		{"all threes", []int{3, 3, 3}, models.TrendNeutral},
		{"only last three count", []int{5, 5, 5, 5, 3, 3, 3}, models.TrendNeutral},
		{"seed history", []int{3, 4, 2, 4, 5, 3, 4}, models.TrendPositive},
		{"short history", []int{4}, models.TrendPositive},
		{"empty history", []int{}, models.TrendNeutral},
		{"boundary 2.5", []int{2, 3}, models.TrendNeutral},
		{"just under 2.5", []int{2, 2, 3}, models.TrendNegative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.history).Trend(); got != tt.want {
				t.Errorf("Trend(%v) = %q, want %q", tt.history, got, tt.want)
			}
		})
	}
}

func TestNewDefaultsToSeedHistory(t *testing.T) {
	w := New(nil)
	if len(w.History()) != 7 {
		t.Errorf("len(History()) = %d, want 7", len(w.History()))
	}
}

func TestSubmit(t *testing.T) {
	w := New(nil)

	for _, bad := range []int{0, 6, -1} {
		if _, err := w.Submit(bad); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Submit(%d) error = %v, want ErrOutOfRange", bad, err)
		}
	}
	if w.Submitted() || w.Selected() != 0 {
		t.Fatal("rejected submissions must not change state")
	}

	token, err := w.Submit(4)
	if err != nil {
		t.Fatal(err)
	}
	if !w.Submitted() || w.Selected() != 4 {
		t.Errorf("after Submit(4): submitted=%v selected=%d", w.Submitted(), w.Selected())
	}
	if len(w.History()) != 7 {
		t.Error("submission must not append to history")
	}

	later, _ := w.Submit(2)
	if w.Dismiss(token) {
		t.Error("stale token should not dismiss")
	}
	if !w.Submitted() {
		t.Error("stale dismiss changed state")
	}
	if !w.Dismiss(later) {
		t.Error("current token should dismiss")
	}
	if w.Submitted() {
		t.Error("widget should be back at the prompt")
	}
}

func TestOption(t *testing.T) {
	o, ok := Option(5)
	if !ok || o.Label != "Ecstatic" {
		t.Errorf("Option(5) = %+v, %v", o, ok)
	}
	if _, ok := Option(9); ok {
		t.Error("Option(9) should not exist")
	}
}

func TestDayLabel(t *testing.T) {
	if got := DayLabel(0); got != "7d ago" {
		t.Errorf("DayLabel(0) = %q", got)
	}
	if got := DayLabel(5); got != "2d ago" {
		t.Errorf("DayLabel(5) = %q", got)
	}
	if got := DayLabel(6); got != "Today" {
		t.Errorf("DayLabel(6) = %q", got)
	}
}

func TestTrendMessage(t *testing.T) {
	if TrendMessage(models.TrendPositive) != "📈 Great trend!" {
		t.Error("unexpected positive message")
	}
	if TrendMessage(models.TrendNegative) != "📉 Hang in there" {
		t.Error("unexpected negative message")
	}
	if TrendMessage(models.TrendNeutral) != "➡️ Steady mood" {
		t.Error("unexpected neutral message")
	}
}
