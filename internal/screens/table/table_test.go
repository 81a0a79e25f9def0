package table

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/beemnet-bee/Elementia/internal/elements"
	"github.com/beemnet-bee/Elementia/internal/progress"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestTableScreen_GridPlacement(t *testing.T) {
	s := New(progress.New(), nil, nil)

	tests := []struct {
		row, col int
		number   int
	}{
		{0, 0, 1},    // hydrogen
		{0, 17, 2},   // helium
		{3, 0, 19},   // potassium
		{7, 2, 57},   // lanthanum, detached row
		{8, 16, 103}, // lawrencium
	}
	for _, tt := range tests {
		if got := s.grid[tt.row][tt.col]; got != tt.number {
			t.Errorf("grid[%d][%d] = %d, want %d", tt.row, tt.col, got, tt.number)
		}
	}
}

func TestTableScreen_CursorSkipsEmptyCells(t *testing.T) {
	s := New(progress.New(), nil, nil)

	// Period 1 has only hydrogen and helium; right jumps the gap.
	s.Update(specialKey(tea.KeyRight))
	if got := s.grid[s.row][s.col]; got != 2 {
		t.Errorf("after right: element %d, want 2 (He)", got)
	}

	s.row, s.col = 0, 0
	s.Update(specialKey(tea.KeyDown))
	if got := s.grid[s.row][s.col]; got != 3 {
		t.Errorf("after down: element %d, want 3 (Li)", got)
	}
}

func TestTableScreen_ToggleMastery(t *testing.T) {
	prog := progress.New()
	s := New(prog, nil, nil)

	s.Update(keyPress('m'))
	if !prog.IsMastered(1) {
		t.Error("expected hydrogen mastered after toggle")
	}
	s.Update(keyPress('m'))
	if prog.IsMastered(1) {
		t.Error("expected toggle to unmaster hydrogen")
	}
}

func TestTableScreen_DetailWithoutFactService(t *testing.T) {
	s := New(progress.New(), nil, nil)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command on opening detail")
	}
	if s.detail == nil || s.detail.Number != 1 {
		t.Fatal("expected hydrogen detail open")
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "Hydrogen") {
		t.Error("detail view should name the element")
	}

	_, cmd = s.Update(keyPress('f'))
	if cmd != nil {
		t.Error("expected no fact lookup without a provider")
	}
	if !strings.Contains(s.fact, "API key") {
		t.Errorf("fact = %q, want API key hint", s.fact)
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.detail != nil {
		t.Error("expected detail closed")
	}
}

func TestTableScreen_CategoryFilterCycles(t *testing.T) {
	s := New(progress.New(), nil, nil)

	if got := s.filterCategory(); got != "" {
		t.Fatalf("initial filter = %q, want none", got)
	}

	s.Update(keyPress('c'))
	first := s.filterCategory()
	if first == "" {
		t.Fatal("expected a category after one cycle")
	}

	for range elements.Categories() {
		s.Update(keyPress('c'))
	}
	if got := s.filterCategory(); got != "" {
		t.Errorf("filter after full cycle = %q, want none", got)
	}
}

func TestTableScreen_SearchFiltersResults(t *testing.T) {
	s := New(progress.New(), nil, nil)

	s.Update(keyPress('/'))
	if !s.searching {
		t.Fatal("expected search mode")
	}

	for _, r := range "iron" {
		s.Update(keyPress(r))
	}
	if len(s.results) == 0 {
		t.Fatal("expected search results")
	}
	if s.results[0].Name != "Iron" {
		t.Errorf("first result = %q, want Iron", s.results[0].Name)
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.searching {
		t.Error("expected search closed after selection")
	}
	if s.detail == nil || s.detail.Name != "Iron" {
		t.Error("expected iron detail open")
	}
}
