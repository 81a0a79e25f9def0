// Package table renders the interactive periodic table grid.
package table

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/beemnet-bee/Elementia/internal/elements"
	"github.com/beemnet-bee/Elementia/internal/facts"
	"github.com/beemnet-bee/Elementia/internal/progress"
	"github.com/beemnet-bee/Elementia/internal/screen"
	"github.com/beemnet-bee/Elementia/internal/ui/components"
	"github.com/beemnet-bee/Elementia/internal/ui/layout"
)

const (
	gridRows  = 9 // 7 periods plus detached lanthanide/actinide rows
	gridCols  = 18
	fBlockCol = 2 // first column of the detached f-block rows
)

// factReadyMsg delivers an element fact fetched in the background.
type factReadyMsg struct {
	number int
	text   string
}

// TableScreen implements screen.Screen for the periodic table browser.
type TableScreen struct {
	prog    *progress.UserProgress
	store   *progress.Store
	factSvc *facts.Service

	grid     [gridRows][gridCols]int // atomic numbers, 0 = empty cell
	row, col int

	filterIdx int // 0 = no category filter

	searching bool
	search    components.TextInput
	results   []elements.Element
	resultIdx int

	detail      *elements.Element
	fact        string
	factLoading bool
	saveWarn    string
}

var _ screen.Screen = (*TableScreen)(nil)
var _ screen.KeyHintProvider = (*TableScreen)(nil)

// New creates the table screen with the cursor on hydrogen.
func New(prog *progress.UserProgress, store *progress.Store, factSvc *facts.Service) *TableScreen {
	t := &TableScreen{
		prog:    prog,
		store:   store,
		factSvc: factSvc,
		search:  components.NewTextInput("name, symbol or number", false, 20),
	}

	for _, el := range elements.All() {
		switch {
		case el.Group > 0:
			t.grid[el.Period-1][el.Group-1] = el.Number
		case el.Period == 6: // lanthanides
			t.grid[7][fBlockCol+el.Number-57] = el.Number
		case el.Period == 7: // actinides
			t.grid[8][fBlockCol+el.Number-89] = el.Number
		}
	}

	return t
}

func (t *TableScreen) Init() tea.Cmd {
	return nil
}

func (t *TableScreen) Title() string {
	return "Periodic Table"
}

func (t *TableScreen) KeyHints() []layout.KeyHint {
	if t.detail != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Close"},
			{Key: "f", Description: "Fact"},
			{Key: "m", Description: "Toggle mastered"},
		}
	}
	if t.searching {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Results"},
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Details"},
		{Key: "m", Description: "Toggle mastered"},
		{Key: "f", Description: "Fact"},
		{Key: "c", Description: "Filter"},
		{Key: "/", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TableScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if fact, ok := msg.(factReadyMsg); ok {
		if t.detail != nil && t.detail.Number == fact.number {
			t.fact = fact.text
			t.factLoading = false
		}
		return t, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	if t.detail != nil {
		return t.updateDetail(kmsg)
	}
	if t.searching {
		return t.updateSearch(kmsg)
	}
	return t.updateGrid(kmsg)
}

func (t *TableScreen) updateGrid(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "left", "h":
		t.move(0, -1)
	case "right", "l":
		t.move(0, 1)
	case "up", "k":
		t.move(-1, 0)
	case "down", "j":
		t.move(1, 0)
	case "m":
		t.toggleMastery(t.grid[t.row][t.col])
	case "c":
		t.filterIdx = (t.filterIdx + 1) % (len(elements.Categories()) + 1)
	case "enter":
		return t.openDetail(t.grid[t.row][t.col])
	case "f":
		t.openDetail(t.grid[t.row][t.col])
		if t.detail != nil {
			return t, t.fetchFact()
		}
	case "/":
		t.searching = true
		t.search = components.NewTextInput("name, symbol or number", false, 20)
		t.results = elements.All()
		t.resultIdx = 0
		return t, t.search.Init()
	}
	return t, nil
}

func (t *TableScreen) updateSearch(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "up":
		if t.resultIdx > 0 {
			t.resultIdx--
		}
		return t, nil
	case "down":
		if t.resultIdx < len(t.results)-1 {
			t.resultIdx++
		}
		return t, nil
	case "enter":
		if len(t.results) > 0 {
			el := t.results[t.resultIdx]
			t.searching = false
			t.moveTo(el.Number)
			return t.openDetail(el.Number)
		}
		t.searching = false
		return t, nil
	}

	var cmd tea.Cmd
	t.search, cmd = t.search.Update(kmsg)
	t.results = elements.Search(t.search.Value())
	if t.resultIdx >= len(t.results) {
		t.resultIdx = 0
	}
	return t, cmd
}

func (t *TableScreen) updateDetail(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "enter", "q":
		t.detail = nil
		t.fact = ""
		t.factLoading = false
	case "m":
		t.toggleMastery(t.detail.Number)
	case "f":
		if !t.factLoading {
			return t, t.fetchFact()
		}
	}
	return t, nil
}

// move shifts the cursor, skipping empty grid cells.
func (t *TableScreen) move(dr, dc int) {
	if dc != 0 {
		for c := t.col + dc; c >= 0 && c < gridCols; c += dc {
			if t.grid[t.row][c] != 0 {
				t.col = c
				return
			}
		}
		return
	}

	for r := t.row + dr; r >= 0 && r < gridRows; r += dr {
		// Prefer the same column, then the nearest occupied one.
		if t.grid[r][t.col] != 0 {
			t.row = r
			return
		}
		for off := 1; off < gridCols; off++ {
			if c := t.col - off; c >= 0 && t.grid[r][c] != 0 {
				t.row, t.col = r, c
				return
			}
			if c := t.col + off; c < gridCols && t.grid[r][c] != 0 {
				t.row, t.col = r, c
				return
			}
		}
	}
}

// moveTo places the cursor on the given element.
func (t *TableScreen) moveTo(number int) {
	for r := range gridRows {
		for c := range gridCols {
			if t.grid[r][c] == number {
				t.row, t.col = r, c
				return
			}
		}
	}
}

func (t *TableScreen) toggleMastery(number int) {
	if number == 0 {
		return
	}
	t.prog.ToggleMastery(number)
	t.saveWarn = ""
	if t.store != nil {
		if err := t.store.Save(context.Background(), t.prog); err != nil {
			t.saveWarn = "progress could not be saved"
		}
	}
}

// filterCategory returns the active category filter, or "" for all.
func (t *TableScreen) filterCategory() string {
	if t.filterIdx == 0 {
		return ""
	}
	return elements.Categories()[t.filterIdx-1]
}

// openDetail shows the element card.
func (t *TableScreen) openDetail(number int) (screen.Screen, tea.Cmd) {
	el, ok := elements.ByNumber(number)
	if !ok {
		return t, nil
	}
	t.detail = &el
	t.fact = ""
	t.factLoading = false
	return t, nil
}

// fetchFact starts a background fact lookup for the open detail element.
func (t *TableScreen) fetchFact() tea.Cmd {
	if t.factSvc == nil {
		t.fact = "Set an API key to enable fact lookups."
		return nil
	}

	t.factLoading = true
	svc := t.factSvc
	el := *t.detail
	return func() tea.Msg {
		return factReadyMsg{
			number: el.Number,
			text:   svc.ElementFact(context.Background(), el.Name),
		}
	}
}
