package progress

import (
	"testing"
	"time"
)

func day(d int) Date {
	return NewDate(2026, time.August, d)
}

func TestRecordAnswerCounts(t *testing.T) {
	p := New()
	answers := []bool{true, true, false, true, false, false, true, true}

	wantCorrect := 0
	for i, correct := range answers {
		p.RecordAnswer(correct, day(10))
		if correct {
			wantCorrect++
		}
		if p.QuizStats.Total != i+1 {
			t.Fatalf("after %d answers Total = %d", i+1, p.QuizStats.Total)
		}
		if p.QuizStats.Correct != wantCorrect {
			t.Fatalf("after %d answers Correct = %d, want %d", i+1, p.QuizStats.Correct, wantCorrect)
		}
		if p.QuizStats.Total < p.QuizStats.Correct {
			t.Fatal("invariant violated: total < correct")
		}
	}
}

func TestSessionStreakTrailingRun(t *testing.T) {
	p := New()
	seq := []bool{true, true, true, false, true, true}
	for _, correct := range seq {
		p.RecordAnswer(correct, day(10))
	}
	// Trailing run of true is 2.
	if p.QuizStats.Streak != 2 {
		t.Errorf("Streak = %d, want 2", p.QuizStats.Streak)
	}

	p.RecordAnswer(false, day(10))
	if p.QuizStats.Streak != 0 {
		t.Errorf("Streak after wrong = %d, want 0", p.QuizStats.Streak)
	}
}

func TestToggleMasteryIdempotentPair(t *testing.T) {
	p := New()
	p.ToggleMastery(26)
	if !p.IsMastered(26) {
		t.Fatal("26 should be mastered after first toggle")
	}
	p.ToggleMastery(26)
	if p.IsMastered(26) {
		t.Fatal("26 should not be mastered after second toggle")
	}
	if p.MasteredCount() != 0 {
		t.Errorf("MasteredCount = %d, want 0", p.MasteredCount())
	}
}

func TestToggleMasteryNoDuplicates(t *testing.T) {
	p := New()
	for _, id := range []int{1, 2, 1, 3, 1} {
		p.ToggleMastery(id)
	}
	// 1 toggled 3 times -> present; 2 and 3 once each -> present.
	seen := make(map[int]bool)
	for _, id := range p.MasteredElements {
		if seen[id] {
			t.Fatalf("duplicate id %d in mastered set", id)
		}
		seen[id] = true
	}
	if !p.IsMastered(1) || !p.IsMastered(2) || !p.IsMastered(3) {
		t.Errorf("mastered set = %v", p.MasteredElements)
	}
}

func TestDayStreakScenario(t *testing.T) {
	p := New()
	d1 := day(1)

	p.RecordActivity(d1)
	if p.QuizStats.DayStreak != 1 {
		t.Fatalf("after first activity DayStreak = %d, want 1", p.QuizStats.DayStreak)
	}

	p.RecordActivity(d1)
	if p.QuizStats.DayStreak != 1 {
		t.Fatalf("same-day repeat DayStreak = %d, want 1", p.QuizStats.DayStreak)
	}

	p.RecordActivity(d1.AddDays(1))
	if p.QuizStats.DayStreak != 2 {
		t.Fatalf("next-day DayStreak = %d, want 2", p.QuizStats.DayStreak)
	}

	p.RecordActivity(d1.AddDays(3))
	if p.QuizStats.DayStreak != 1 {
		t.Fatalf("after skipped day DayStreak = %d, want 1", p.QuizStats.DayStreak)
	}
	if p.QuizStats.LastActivityDate != d1.AddDays(3) {
		t.Errorf("LastActivityDate = %v", p.QuizStats.LastActivityDate)
	}
}

func TestDayStreakClockSkew(t *testing.T) {
	p := New()
	p.RecordActivity(day(10))
	p.RecordActivity(day(11))
	if p.QuizStats.DayStreak != 2 {
		t.Fatalf("setup DayStreak = %d", p.QuizStats.DayStreak)
	}

	// Clock moved backward: today precedes the last recorded date.
	p.RecordActivity(day(8))
	if p.QuizStats.DayStreak != 1 {
		t.Errorf("backward clock DayStreak = %d, want 1", p.QuizStats.DayStreak)
	}
	if p.QuizStats.LastActivityDate != day(8) {
		t.Errorf("LastActivityDate = %v, want %v", p.QuizStats.LastActivityDate, day(8))
	}
}

func TestActivityHistoryOneEntryPerDate(t *testing.T) {
	p := New()
	for range 3 {
		p.RecordActivity(day(5))
	}
	if len(p.ActivityHistory) != 1 {
		t.Fatalf("len(ActivityHistory) = %d, want 1", len(p.ActivityHistory))
	}
	if p.ActivityHistory[0].Count != 3 {
		t.Errorf("Count = %d, want 3", p.ActivityHistory[0].Count)
	}
	if p.ActivityHistory[0].Date != day(5) {
		t.Errorf("Date = %v", p.ActivityHistory[0].Date)
	}
}

func TestActivityHistoryCap(t *testing.T) {
	p := New()
	for i := range 20 {
		p.RecordActivity(day(1).AddDays(i))
	}
	if len(p.ActivityHistory) != historyCap {
		t.Fatalf("len(ActivityHistory) = %d, want %d", len(p.ActivityHistory), historyCap)
	}
	// Oldest trimmed: first remaining entry is day 1+6.
	if p.ActivityHistory[0].Date != day(1).AddDays(6) {
		t.Errorf("oldest entry = %v, want %v", p.ActivityHistory[0].Date, day(1).AddDays(6))
	}
	// Streak counted every consecutive day.
	if p.QuizStats.DayStreak != 20 {
		t.Errorf("DayStreak = %d, want 20", p.QuizStats.DayStreak)
	}
}

func TestCheckDecay(t *testing.T) {
	t.Run("fresh state untouched", func(t *testing.T) {
		p := New()
		if p.CheckDecay(day(10)) {
			t.Error("decay fired with no activity recorded")
		}
	})

	t.Run("yesterday keeps streak", func(t *testing.T) {
		p := New()
		p.RecordActivity(day(9))
		if p.CheckDecay(day(10)) {
			t.Error("decay fired for yesterday's activity")
		}
		if p.QuizStats.DayStreak != 1 {
			t.Errorf("DayStreak = %d", p.QuizStats.DayStreak)
		}
	})

	t.Run("gap resets to zero", func(t *testing.T) {
		p := New()
		p.RecordActivity(day(5))
		p.RecordActivity(day(6))
		history := len(p.ActivityHistory)

		if !p.CheckDecay(day(10)) {
			t.Fatal("decay should fire after a multi-day gap")
		}
		if p.QuizStats.DayStreak != 0 {
			t.Errorf("DayStreak = %d, want 0", p.QuizStats.DayStreak)
		}
		// Decay must not touch anything else.
		if p.QuizStats.LastActivityDate != day(6) {
			t.Errorf("LastActivityDate mutated: %v", p.QuizStats.LastActivityDate)
		}
		if len(p.ActivityHistory) != history {
			t.Error("ActivityHistory mutated")
		}

		// Idempotent.
		if p.CheckDecay(day(10)) {
			t.Error("second decay check should be a no-op")
		}
	})
}
