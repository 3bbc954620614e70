package dashboard

import "github.com/julianstephens/lifedash/internal/models"

// Card is the per-area state behind a dashboard card.
type Card struct {
	Area     models.LifeArea
	ideaIdx  int
	flashing bool
	gen      int
}

func NewCard(area models.LifeArea) *Card {
	return &Card{Area: area}
}

// Idea is the idea currently shown on the card.
func (c *Card) Idea() string {
	if len(c.Area.Ideas) == 0 {
		return ""
	}
	return c.Area.Ideas[c.ideaIdx]
}

func (c *Card) NextIdea() string {
	if len(c.Area.Ideas) == 0 {
		return ""
	}
	c.ideaIdx = (c.ideaIdx + 1) % len(c.Area.Ideas)
	return c.Idea()
}

// CompleteTask marks today's challenge done and starts the flash. It
// returns false while a flash is already showing; otherwise it returns the
// token EndFlash needs.
func (c *Card) CompleteTask() (int, bool) {
	if c.flashing {
		return 0, false
	}
	c.flashing = true
	c.gen++
	return c.gen, true
}

func (c *Card) EndFlash(token int) {
	if token == c.gen {
		c.flashing = false
	}
}

func (c *Card) Flashing() bool { return c.flashing }
