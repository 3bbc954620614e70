package content

import "github.com/julianstephens/lifedash/internal/models"

// MoodOptions returns the five selectable moods, lowest value first.
func MoodOptions() []models.MoodOption {
	return []models.MoodOption{
		{Emoji: "😢", Label: "Very Sad", Value: 1},
		{Emoji: "😕", Label: "Sad", Value: 2},
		{Emoji: "😐", Label: "Neutral", Value: 3},
		{Emoji: "😊", Label: "Happy", Value: 4},
		{Emoji: "🤩", Label: "Ecstatic", Value: 5},
	}
}

// MoodHistory is the static seven-day history shown by the mood widget,
// oldest first.
func MoodHistory() []int {
	return []int{3, 4, 2, 4, 5, 3, 4}
}
