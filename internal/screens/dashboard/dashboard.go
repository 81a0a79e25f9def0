// Package dashboard renders study statistics: streaks, accuracy, recent
// activity and per-category mastery.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/beemnet-bee/Elementia/internal/activity"
	"github.com/beemnet-bee/Elementia/internal/elements"
	"github.com/beemnet-bee/Elementia/internal/progress"
	"github.com/beemnet-bee/Elementia/internal/screen"
	"github.com/beemnet-bee/Elementia/internal/ui/components"
	"github.com/beemnet-bee/Elementia/internal/ui/theme"
)

// chartHeight is the bar height of the 7-day activity chart.
const chartHeight = 5

// DashboardScreen implements screen.Screen for the statistics view.
type DashboardScreen struct {
	prog  *progress.UserProgress
	today func() progress.Date
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard over the given progress aggregate.
func New(prog *progress.UserProgress) *DashboardScreen {
	return &DashboardScreen{
		prog:  prog,
		today: progress.Today,
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) View(width, height int) string {
	today := d.today()

	sections := []string{
		d.renderStatCards(),
		d.renderWeekChart(today),
		d.renderHeatmap(today),
		d.renderCategories(),
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (d *DashboardScreen) renderStatCards() string {
	stats := d.prog.QuizStats
	mastered := d.prog.MasteredCount()

	cards := []struct {
		label string
		value string
	}{
		{"Mastered", fmt.Sprintf("%d/%d", mastered, elements.Count())},
		{"Accuracy", fmt.Sprintf("%d%%", activity.AccuracyPercent(stats))},
		{"Answer Streak", fmt.Sprintf("%d", stats.Streak)},
		{"Day Streak", fmt.Sprintf("%d", stats.DayStreak)},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := theme.Title.Render(c.value) + "\n" + theme.Subtitle.Render(c.label)
		rendered = append(rendered, theme.Card.Width(16).Align(lipgloss.Center).Render(body))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderWeekChart draws a vertical bar chart of the last 7 days.
func (d *DashboardScreen) renderWeekChart(today progress.Date) string {
	days := activity.Last7Days(d.prog.ActivityHistory, today)

	max := 1
	for _, day := range days {
		if day.Count > max {
			max = day.Count
		}
	}

	var rows []string
	for level := chartHeight; level >= 1; level-- {
		var cells []string
		for _, day := range days {
			filled := day.Count*chartHeight >= level*max
			if filled && day.Count > 0 {
				cells = append(cells, theme.Selected.Render(" ██ "))
			} else {
				cells = append(cells, "    ")
			}
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	var labels []string
	for _, day := range days {
		labels = append(labels, theme.Subtitle.Render(fmt.Sprintf("%-4s", day.Label)))
	}
	rows = append(rows, strings.Join(labels, ""))

	return theme.Subtitle.Render("Questions answered, last 7 days") + "\n" +
		strings.Join(rows, "\n")
}

// renderHeatmap draws the 28-day activity heatmap as four weekly rows.
func (d *DashboardScreen) renderHeatmap(today progress.Date) string {
	days := activity.Last28Days(d.prog.ActivityHistory, today)

	var rows []string
	for week := range 4 {
		var cells []string
		for i := range 7 {
			day := days[week*7+i]
			tier := activity.HeatTier(day.Count)
			cell := lipgloss.NewStyle().
				Foreground(theme.HeatColors[tier]).
				Render("■■")
			cells = append(cells, cell)
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	return theme.Subtitle.Render("Activity, last 4 weeks") + "\n" +
		strings.Join(rows, "\n")
}

// renderCategories draws a mastery progress bar per element category.
func (d *DashboardScreen) renderCategories() string {
	stats := activity.CategoryMastery(d.prog.MasteredElements, elements.All())

	var rows []string
	for _, cs := range stats {
		if cs.Mastered == 0 {
			continue
		}
		pct := float64(cs.Mastered) / float64(cs.Total)
		label := fmt.Sprintf("%-22s %2d/%2d", cs.Category, cs.Mastered, cs.Total)
		bar := components.NewProgressBar(label, pct, false, 56)
		rows = append(rows, bar.View())
	}

	if len(rows) == 0 {
		return theme.Hint.Render("No elements mastered yet. Open the table and press m.")
	}

	return theme.Subtitle.Render("Mastery by category") + "\n" +
		strings.Join(rows, "\n")
}
