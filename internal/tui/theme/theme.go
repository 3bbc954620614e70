package theme

import "github.com/charmbracelet/lipgloss"

var (
	Accent = lipgloss.Color("205")
	Muted  = lipgloss.Color("240")
	Text   = lipgloss.Color("252")
	Border = lipgloss.Color("62")
	Danger = lipgloss.Color("196")
	Warn   = lipgloss.Color("214")
	Good   = lipgloss.Color("42")
)

var areaColors = map[string]lipgloss.Color{
	"chart-1": lipgloss.Color("203"),
	"chart-2": lipgloss.Color("39"),
	"chart-3": lipgloss.Color("220"),
	"chart-4": lipgloss.Color("141"),
	"chart-5": lipgloss.Color("214"),
	"chart-6": lipgloss.Color("43"),
}

// AreaColor maps a life area's color token to a terminal color.
func AreaColor(token string) lipgloss.Color {
	if c, ok := areaColors[token]; ok {
		return c
	}
	return Border
}
