// Package content holds the static seed data the dashboard starts from:
// life areas, motivational quotes and mood options.
package content

import "github.com/julianstephens/lifedash/internal/models"

// LifeAreas returns a fresh copy of the six seed life areas in display order.
func LifeAreas() []models.LifeArea {
	areas := []models.LifeArea{
		{
			ID:          "health",
			Title:       "Health",
			Emoji:       "🏃‍♂️",
			Color:       "chart-1",
			Goal:        "Lose 10 pounds and feel energetic",
			CurrentTask: "Drink 8 glasses of water today",
			Level:       3,
			Streak:      7,
			Points:      340,
			Ideas: []string{
				"Take a 10-minute walk after lunch",
				"Do 20 jumping jacks right now",
				"Eat a piece of fruit as a snack",
				"Practice deep breathing for 2 minutes",
				"Stretch your neck and shoulders",
			},
		},
		{
			ID:          "sports",
			Title:       "Sports",
			Emoji:       "⚽",
			Color:       "chart-2",
			Goal:        "Run a 5K without stopping",
			CurrentTask: "Do 15 push-ups today",
			Level:       2,
			Streak:      12,
			Points:      280,
			Ideas: []string{
				"Try a new workout video on YouTube",
				"Challenge a friend to a sports activity",
				"Practice your favorite sport for 30 mins",
				"Do a quick HIIT workout",
				"Go for a bike ride around the neighborhood",
			},
		},
		{
			ID:          "finances",
			Title:       "Finances",
			Emoji:       "💰",
			Color:       "success",
			Goal:        "Save $5,000 for emergency fund",
			CurrentTask: "Review monthly expenses",
			Level:       4,
			Streak:      21,
			Points:      520,
			Ideas: []string{
				"Cancel one unused subscription",
				"Set up automatic savings transfer",
				"Compare prices before buying something",
				"Cook dinner at home instead of ordering",
				"Track your spending for today",
			},
		},
		{
			ID:          "work",
			Title:       "Work",
			Emoji:       "💼",
			Color:       "chart-3",
			Goal:        "Get promoted or land dream job",
			CurrentTask: "Complete priority project tasks",
			Level:       5,
			Streak:      15,
			Points:      680,
			Ideas: []string{
				"Learn one new skill for 30 minutes",
				"Network with a colleague or industry contact",
				"Organize your workspace for efficiency",
				"Set clear goals for tomorrow",
				"Read an article in your field",
			},
		},
		{
			ID:          "family",
			Title:       "Family",
			Emoji:       "👨‍👩‍👧‍👦",
			Color:       "warning",
			Goal:        "Strengthen family relationships",
			CurrentTask: "Have meaningful conversation with loved one",
			Level:       3,
			Streak:      9,
			Points:      390,
			Ideas: []string{
				"Send a heartfelt message to a family member",
				"Plan a fun activity for the weekend",
				"Call someone you haven't spoken to in a while",
				"Share a happy memory with your family",
				"Help with household chores without being asked",
			},
		},
		{
			ID:          "mind",
			Title:       "Mind",
			Emoji:       "🧠",
			Color:       "accent",
			Goal:        "Achieve inner peace and clarity",
			CurrentTask: "Practice 10 minutes of mindfulness",
			Level:       2,
			Streak:      5,
			Points:      180,
			Ideas: []string{
				"Write in a gratitude journal",
				"Try a 5-minute meditation",
				"Read a few pages of an inspiring book",
				"Practice positive affirmations",
				"Do a brain teaser or puzzle",
			},
		},
	}
	return areas
}

// TotalPoints sums the points of the given areas.
func TotalPoints(areas []models.LifeArea) int {
	total := 0
	for _, a := range areas {
		total += a.Points
	}
	return total
}

// AreaByID returns the area with the given ID.
func AreaByID(areas []models.LifeArea, id string) (models.LifeArea, bool) {
	for _, a := range areas {
		if a.ID == id {
			return a, true
		}
	}
	return models.LifeArea{}, false
}
