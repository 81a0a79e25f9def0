package table

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/beemnet-bee/Elementia/internal/activity"
	"github.com/beemnet-bee/Elementia/internal/elements"
	"github.com/beemnet-bee/Elementia/internal/ui/theme"
)

func (t *TableScreen) View(width, height int) string {
	var content string
	switch {
	case t.detail != nil:
		content = t.renderDetail()
	case t.searching:
		content = t.renderSearch(height)
	default:
		content = t.renderGrid()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (t *TableScreen) renderGrid() string {
	var rows []string

	for r := range gridRows {
		var cells []string
		for c := range gridCols {
			cells = append(cells, t.renderCell(r, c))
		}
		rows = append(rows, strings.Join(cells, ""))
		// Visual gap before the detached f-block rows.
		if r == 6 {
			rows = append(rows, "")
		}
	}

	rows = append(rows, "", t.renderStatusLine())
	if t.saveWarn != "" {
		rows = append(rows, theme.Hint.Render(t.saveWarn))
	}

	return strings.Join(rows, "\n")
}

// renderCell draws one 4-wide grid cell.
func (t *TableScreen) renderCell(r, c int) string {
	number := t.grid[r][c]
	if number == 0 {
		return strings.Repeat(" ", 4)
	}
	el, _ := elements.ByNumber(number)

	label := fmt.Sprintf("%-3s", el.Symbol)
	style := lipgloss.NewStyle().Foreground(theme.CategoryColor(el.Category))
	if filter := t.filterCategory(); filter != "" && el.Category != filter {
		style = lipgloss.NewStyle().Foreground(theme.Border)
	}
	if t.prog.IsMastered(number) {
		style = style.Bold(true).Underline(true)
	}
	if r == t.row && c == t.col {
		style = style.Reverse(true)
	}
	return " " + style.Render(label)
}

// renderStatusLine summarizes the element under the cursor.
func (t *TableScreen) renderStatusLine() string {
	el, ok := elements.ByNumber(t.grid[t.row][t.col])
	if !ok {
		return ""
	}

	parts := []string{
		theme.Body.Bold(true).Render(fmt.Sprintf("%d %s", el.Number, el.Name)),
		theme.Subtitle.Render(el.Category),
	}
	if t.prog.IsMastered(el.Number) {
		parts = append(parts, theme.Mastered.Render("◆ mastered"))
	}
	parts = append(parts, theme.Subtitle.Render(fmt.Sprintf(
		"%d%% of table mastered",
		activity.MasteryPercent(t.prog.MasteredCount(), elements.Count()))))
	if filter := t.filterCategory(); filter != "" {
		parts = append(parts, theme.Hint.Render("filter: "+filter))
	}

	return strings.Join(parts, "   ")
}

func (t *TableScreen) renderSearch(height int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Render("Search: "))
	b.WriteString(t.search.View())
	b.WriteString("\n\n")

	maxRows := height - 6
	if maxRows < 3 {
		maxRows = 3
	}

	start := 0
	if t.resultIdx >= maxRows {
		start = t.resultIdx - maxRows + 1
	}
	end := start + maxRows
	if end > len(t.results) {
		end = len(t.results)
	}

	if len(t.results) == 0 {
		b.WriteString(theme.Hint.Render("no matches"))
	}

	for i := start; i < end; i++ {
		el := t.results[i]
		line := fmt.Sprintf("%3d  %-3s %-15s %s", el.Number, el.Symbol, el.Name, el.Category)
		if i == t.resultIdx {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (t *TableScreen) renderDetail() string {
	el := *t.detail

	catStyle := lipgloss.NewStyle().Foreground(theme.CategoryColor(el.Category))

	lines := []string{
		catStyle.Bold(true).Render(fmt.Sprintf("%s  %s", el.Symbol, el.Name)),
		theme.Subtitle.Render(catStyle.Render(el.Category)),
		"",
		theme.Body.Render(fmt.Sprintf("atomic number  %d", el.Number)),
		theme.Body.Render(fmt.Sprintf("atomic mass    %.3f", el.AtomicMass)),
		theme.Body.Render(fmt.Sprintf("period         %d", el.Period)),
	}
	if el.Group > 0 {
		lines = append(lines, theme.Body.Render(fmt.Sprintf("group          %d", el.Group)))
	}

	if t.prog.IsMastered(el.Number) {
		lines = append(lines, "", theme.Mastered.Render("◆ mastered"))
	} else {
		lines = append(lines, "", theme.Hint.Render("press m to mark as mastered"))
	}

	lines = append(lines, "")
	switch {
	case t.factLoading:
		lines = append(lines, theme.Hint.Render("fetching a fact..."))
	case t.fact != "":
		lines = append(lines, theme.Body.Render(wrap(t.fact, 46)))
	default:
		lines = append(lines, theme.Hint.Render("press f for a fact"))
	}

	card := theme.Card.BorderForeground(theme.CategoryColor(el.Category))
	return card.Render(strings.Join(lines, "\n"))
}

// wrap breaks text into lines no wider than w.
func wrap(s string, w int) string {
	words := strings.Fields(s)
	var lines []string
	var cur string
	for _, word := range words {
		if cur == "" {
			cur = word
			continue
		}
		if len(cur)+1+len(word) > w {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur += " " + word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return strings.Join(lines, "\n")
}
