package content

import "math/rand/v2"

var quotes = []string{
	"Today is the first day of the rest of your life. Make it count.",
	"Excellence is not a destination; it is a continuous journey that never ends.",
	"The way to get started is to quit talking and begin doing.",
	"Your limitation—it's only your imagination.",
	"Push yourself, because no one else is going to do it for you.",
	"Great things never come from comfort zones.",
	"Dream it. Wish it. Do it.",
	"Success doesn't just find you. You have to go out and get it.",
	"The harder you work for something, the greater you'll feel when you achieve it.",
	"Don't stop when you're tired. Stop when you're done.",
}

// FooterQuote is shown under the dashboard.
const FooterQuote = `"The secret to getting ahead is getting started." - Mark Twain`

// Quotes returns a copy of the motivational quotes.
func Quotes() []string {
	out := make([]string, len(quotes))
	copy(out, quotes)
	return out
}

// RandomQuote picks a quote using intn, which must return a value in [0, n).
// A nil intn uses the global math/rand source.
func RandomQuote(intn func(n int) int) string {
	if intn == nil {
		intn = rand.IntN
	}
	return quotes[intn(len(quotes))]
}
