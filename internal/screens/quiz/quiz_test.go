package quizscreen

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/beemnet-bee/Elementia/internal/progress"
	"github.com/beemnet-bee/Elementia/internal/quiz"
	"github.com/beemnet-bee/Elementia/internal/router"
	"github.com/beemnet-bee/Elementia/internal/screen"
	"github.com/beemnet-bee/Elementia/internal/screens/flashcards"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestQuizScreen_Title(t *testing.T) {
	q := New(progress.New(), nil)
	if q.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", q.Title(), "Quiz")
	}
}

func TestQuizScreen_StartsInModeSelect(t *testing.T) {
	q := New(progress.New(), nil)
	if q.phase != phaseModeSelect {
		t.Errorf("phase = %v, want mode select", q.phase)
	}
	if view := q.View(80, 24); view == "" {
		t.Error("expected non-empty mode select view")
	}
}

func TestQuizScreen_GradedModeStartsSession(t *testing.T) {
	q := New(progress.New(), nil)

	scr, _ := q.Update(modeChosenMsg{mode: quiz.ModeSymbolToName})
	qs := scr.(*QuizScreen)

	if qs.phase != phaseQuestion {
		t.Fatalf("phase = %v, want question", qs.phase)
	}
	if qs.session == nil {
		t.Fatal("expected a session")
	}
	if got := len(qs.session.Question().Options); got != quiz.OptionCount {
		t.Errorf("options = %d, want %d", got, quiz.OptionCount)
	}
}

func TestQuizScreen_SubmitRecordsAnswer(t *testing.T) {
	prog := progress.New()
	q := New(prog, nil)

	scr, _ := q.Update(modeChosenMsg{mode: quiz.ModeNameToSymbol})
	qs := scr.(*QuizScreen)

	scr, cmd := qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)

	if qs.phase != phaseFeedback {
		t.Errorf("phase = %v, want feedback", qs.phase)
	}
	if cmd == nil {
		t.Error("expected a feedback timer command")
	}
	if prog.QuizStats.Total != 1 {
		t.Errorf("total = %d, want 1", prog.QuizStats.Total)
	}

	// Feedback timeout brings the next round.
	scr, _ = qs.Update(feedbackDoneMsg{})
	qs = scr.(*QuizScreen)
	if qs.phase != phaseQuestion {
		t.Errorf("phase = %v, want question after feedback", qs.phase)
	}
	if qs.mc.Submitted {
		t.Error("expected a fresh unanswered round")
	}
}

func TestQuizScreen_ReviewModeHandsOffToFlashcards(t *testing.T) {
	q := New(progress.New(), nil)

	_, cmd := q.Update(modeChosenMsg{mode: quiz.ModeFlashcards})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	var _ screen.Screen = push.Screen
	if _, ok := push.Screen.(*flashcards.FlashcardScreen); !ok {
		t.Errorf("expected flashcard screen, got %T", push.Screen)
	}
}
