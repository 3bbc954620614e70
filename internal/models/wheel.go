package models

type Trend string

const (
	TrendPositive Trend = "positive"
	TrendNeutral  Trend = "neutral"
	TrendNegative Trend = "negative"
)

type BalanceStatus string

const (
	BalanceWell     BalanceStatus = "Well Balanced"
	BalanceSlightly BalanceStatus = "Slightly Imbalanced"
	BalanceNeeds    BalanceStatus = "Needs Attention"
)

// WheelPoint is one spoke of the Wheel of Life chart.
type WheelPoint struct {
	Area     string `json:"area"`
	Rating   int    `json:"rating"`
	FullMark int    `json:"full_mark"`
}
