package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: dark lab bench with bright category accents.
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Element category colors, one per periodic table family.
var categoryColors = map[string]color.Color{
	"alkali metal":          lipgloss.Color("#F87171"), // Red
	"alkaline earth metal":  lipgloss.Color("#FB923C"), // Orange
	"transition metal":      lipgloss.Color("#FBBF24"), // Amber
	"post-transition metal": lipgloss.Color("#A3E635"), // Lime
	"metalloid":             lipgloss.Color("#34D399"), // Emerald
	"nonmetal":              lipgloss.Color("#22D3EE"), // Cyan
	"halogen":               lipgloss.Color("#818CF8"), // Indigo
	"noble gas":             lipgloss.Color("#C084FC"), // Purple
	"lanthanide":            lipgloss.Color("#F472B6"), // Pink
	"actinide":              lipgloss.Color("#FB7185"), // Rose
}

// CategoryColor returns the accent color for an element category,
// falling back to the dim text color for unknown categories.
func CategoryColor(category string) color.Color {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return TextDim
}

// Heatmap tiers, darkest to brightest.
var HeatColors = [4]color.Color{
	lipgloss.Color("#1E293B"),
	lipgloss.Color("#166534"),
	lipgloss.Color("#22C55E"),
	lipgloss.Color("#86EFAC"),
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Mastered = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
