// Package wheel implements the Wheel of Life self-rating widget.
package wheel

import (
	"fmt"
	"math"
	"slices"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/models"
)

type Rating struct {
	Area  models.LifeArea
	Value int
}

type Stats struct {
	Mean    float64
	StdDev  float64
	Balance models.BalanceStatus
	Lowest  Rating
	Highest Rating
}

type Wheel struct {
	ratings []Rating
}

func New(areas []models.LifeArea) *Wheel {
	w := &Wheel{ratings: make([]Rating, len(areas))}
	for i, a := range areas {
		w.ratings[i] = Rating{Area: a, Value: constants.WheelDefaultRating}
	}
	return w
}

func (w *Wheel) Ratings() []Rating { return w.ratings }

// Update sets the rating at index, clamped to the 0-10 scale.
func (w *Wheel) Update(index, value int) {
	if index < 0 || index >= len(w.ratings) {
		return
	}
	w.ratings[index].Value = max(constants.WheelMinRating, min(constants.WheelMaxRating, value))
}

func (w *Wheel) Reset() {
	for i := range w.ratings {
		w.ratings[i].Value = constants.WheelDefaultRating
	}
}

// Stats computes the mean, population standard deviation and balance of
// the current ratings. Lowest and highest use a stable ascending sort, so
// ties go to the earlier area for lowest and the later area for highest.
func (w *Wheel) Stats() Stats {
	if len(w.ratings) == 0 {
		return Stats{Balance: models.BalanceWell}
	}

	sum := 0
	for _, r := range w.ratings {
		sum += r.Value
	}
	n := float64(len(w.ratings))
	mean := float64(sum) / n

	var variance float64
	for _, r := range w.ratings {
		d := float64(r.Value) - mean
		variance += d * d
	}
	stdDev := math.Sqrt(variance / n)

	sorted := slices.Clone(w.ratings)
	slices.SortStableFunc(sorted, func(a, b Rating) int {
		return a.Value - b.Value
	})

	return Stats{
		Mean:    mean,
		StdDev:  stdDev,
		Balance: BalanceFor(stdDev),
		Lowest:  sorted[0],
		Highest: sorted[len(sorted)-1],
	}
}

func BalanceFor(stdDev float64) models.BalanceStatus {
	switch {
	case stdDev < 1:
		return models.BalanceWell
	case stdDev < 2:
		return models.BalanceSlightly
	default:
		return models.BalanceNeeds
	}
}

// Series returns the chart data, one point per area.
func (w *Wheel) Series() []models.WheelPoint {
	points := make([]models.WheelPoint, len(w.ratings))
	for i, r := range w.ratings {
		points[i] = models.WheelPoint{
			Area:     r.Area.ShortName(),
			Rating:   r.Value,
			FullMark: constants.WheelMaxRating,
		}
	}
	return points
}

func (w *Wheel) Insight() string {
	if len(w.ratings) == 0 {
		return ""
	}
	s := w.Stats()
	return fmt.Sprintf(
		"Your strongest area is %s (%d/10). Consider focusing on %s (%d/10) to improve overall life balance.",
		s.Highest.Area.Title, s.Highest.Value, s.Lowest.Area.Title, s.Lowest.Value,
	)
}

// Snapshot captures the current ratings for the journal.
func (w *Wheel) Snapshot() models.WheelSnapshot {
	s := w.Stats()
	ratings := make(map[string]int, len(w.ratings))
	for _, r := range w.ratings {
		ratings[r.Area.ID] = r.Value
	}
	return models.WheelSnapshot{
		Ratings: ratings,
		Mean:    s.Mean,
		StdDev:  s.StdDev,
		Balance: s.Balance,
	}
}
