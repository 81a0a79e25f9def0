package activity

import (
	"testing"
	"time"

	"github.com/beemnet-bee/Elementia/internal/elements"
	"github.com/beemnet-bee/Elementia/internal/progress"
)

func d(day int) progress.Date {
	return progress.NewDate(2026, time.August, day)
}

func TestLast7Days(t *testing.T) {
	history := []progress.DailyActivity{
		{Date: d(30), Count: 5},
		{Date: d(28), Count: 2},
		{Date: d(1), Count: 9}, // outside the window
	}

	got := Last7Days(history, d(30))
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	if got[0].Date != d(24) || got[6].Date != d(30) {
		t.Errorf("window = %v .. %v, want 08-24 .. 08-30", got[0].Date, got[6].Date)
	}

	wantCounts := []int{0, 0, 0, 0, 2, 0, 5}
	for i, w := range wantCounts {
		if got[i].Count != w {
			t.Errorf("day %v count = %d, want %d", got[i].Date, got[i].Count, w)
		}
	}
	// 2026-08-30 is a Sunday.
	if got[6].Label != "Sun" {
		t.Errorf("label = %q, want Sun", got[6].Label)
	}
}

func TestLast28Days(t *testing.T) {
	got := Last28Days(nil, d(30))
	if len(got) != 28 {
		t.Fatalf("len = %d, want 28", len(got))
	}
	if got[0].Date != d(3) {
		t.Errorf("oldest = %v, want 2026-08-03", got[0].Date)
	}
	for _, dc := range got {
		if dc.Count != 0 {
			t.Errorf("empty history produced count %d on %v", dc.Count, dc.Date)
		}
	}
}

func TestHeatTier(t *testing.T) {
	tests := []struct {
		count, want int
	}{
		{0, 0}, {-1, 0},
		{1, 1}, {4, 1},
		{5, 2}, {14, 2},
		{15, 3}, {100, 3},
	}
	for _, tt := range tests {
		if got := HeatTier(tt.count); got != tt.want {
			t.Errorf("HeatTier(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestCategoryMastery(t *testing.T) {
	dataset := []elements.Element{
		{Number: 1, Category: "gas"},
		{Number: 2, Category: "gas"},
		{Number: 3, Category: "gas"},
		{Number: 4, Category: "metal"},
		{Number: 5, Category: "metal"},
	}
	mastered := []int{1, 3, 4}

	got := CategoryMastery(mastered, dataset)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// gas has 2 mastered of 3, metal 1 of 2; descending by mastered.
	if got[0].Category != "gas" || got[0].Total != 3 || got[0].Mastered != 2 {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].Category != "metal" || got[1].Total != 2 || got[1].Mastered != 1 {
		t.Errorf("got[1] = %+v", got[1])
	}
}

func TestAccuracyPercent(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{1, 2, 50},
		{2, 3, 67},
		{1, 3, 33},
		{9, 9, 100},
	}
	for _, tt := range tests {
		stats := progress.QuizStats{Correct: tt.correct, Total: tt.total}
		if got := AccuracyPercent(stats); got != tt.want {
			t.Errorf("AccuracyPercent(%d/%d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestMasteryPercent(t *testing.T) {
	if got := MasteryPercent(59, 118); got != 50 {
		t.Errorf("MasteryPercent(59, 118) = %d, want 50", got)
	}
	if got := MasteryPercent(0, 0); got != 0 {
		t.Errorf("MasteryPercent(0, 0) = %d, want 0", got)
	}
}
