// Package quizscreen drives graded multiple-choice rounds in the TUI.
package quizscreen

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/beemnet-bee/Elementia/internal/activity"
	"github.com/beemnet-bee/Elementia/internal/progress"
	"github.com/beemnet-bee/Elementia/internal/quiz"
	"github.com/beemnet-bee/Elementia/internal/router"
	"github.com/beemnet-bee/Elementia/internal/screen"
	"github.com/beemnet-bee/Elementia/internal/screens/flashcards"
	"github.com/beemnet-bee/Elementia/internal/ui/components"
	"github.com/beemnet-bee/Elementia/internal/ui/layout"
	"github.com/beemnet-bee/Elementia/internal/ui/theme"
)

// feedbackDuration is how long the correct/incorrect flash stays up
// before the next round.
const feedbackDuration = 1200 * time.Millisecond

type phase int

const (
	phaseModeSelect phase = iota
	phaseQuestion
	phaseFeedback
)

// modeChosenMsg is sent when a study mode is picked from the menu.
type modeChosenMsg struct {
	mode quiz.Mode
}

// feedbackDoneMsg ends the answer feedback period.
type feedbackDoneMsg struct{}

// QuizScreen implements screen.Screen for graded quiz rounds.
type QuizScreen struct {
	prog  *progress.UserProgress
	store *progress.Store

	menu    components.Menu
	phase   phase
	session *quiz.Session
	mc      components.MultiChoice

	lastCorrect bool
	saveWarn    string
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen showing the mode selection menu.
func New(prog *progress.UserProgress, store *progress.Store) *QuizScreen {
	modes := []struct {
		label string
		mode  quiz.Mode
	}{
		{"Symbol → Name", quiz.ModeSymbolToName},
		{"Name → Symbol", quiz.ModeNameToSymbol},
		{"Atomic Number", quiz.ModeAtomicNumber},
		{"Flashcards", quiz.ModeFlashcards},
		{"Spaced Repetition", quiz.ModeSpacedRepetition},
	}

	items := make([]components.MenuItem, 0, len(modes))
	for _, m := range modes {
		mode := m.mode
		items = append(items, components.MenuItem{
			Label: m.label,
			Action: func() tea.Cmd {
				return func() tea.Msg { return modeChosenMsg{mode: mode} }
			},
		})
	}

	return &QuizScreen{
		prog:  prog,
		store: store,
		menu:  components.NewMenu(items),
		phase: phaseModeSelect,
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseFeedback:
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case modeChosenMsg:
		return q.startMode(msg.mode)

	case feedbackDoneMsg:
		return q.nextRound()
	}

	switch q.phase {
	case phaseModeSelect:
		var cmd tea.Cmd
		q.menu, cmd = q.menu.Update(msg)
		return q, cmd

	case phaseQuestion:
		wasSubmitted := q.mc.Submitted
		var cmd tea.Cmd
		q.mc, cmd = q.mc.Update(msg)
		if !wasSubmitted && q.mc.Submitted {
			return q.scoreAnswer()
		}
		return q, cmd
	}

	return q, nil
}

// startMode begins a session for graded modes, or hands off review modes
// to the flashcard screen.
func (q *QuizScreen) startMode(mode quiz.Mode) (screen.Screen, tea.Cmd) {
	if !mode.IsGraded() {
		return q, func() tea.Msg {
			return router.PushScreenMsg{Screen: flashcards.New(q.prog, q.store, mode)}
		}
	}

	session, err := quiz.NewSession(quiz.NewEngine(), q.prog, q.store, mode, "")
	if err != nil {
		q.errMsg = err.Error()
		return q, nil
	}

	q.session = session
	q.phase = phaseQuestion
	q.mc = newRoundChoice(session.Question())
	return q, nil
}

// scoreAnswer records the submitted choice and schedules the next round.
func (q *QuizScreen) scoreAnswer() (screen.Screen, tea.Cmd) {
	question := q.session.Question()
	chosen := question.Options[q.mc.ChosenIndex]

	correct, saveErr := q.session.Submit(context.Background(), chosen)
	q.lastCorrect = correct
	q.saveWarn = ""
	if saveErr != nil {
		q.saveWarn = "progress could not be saved"
	}

	q.phase = phaseFeedback
	return q, tea.Tick(feedbackDuration, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

// nextRound generates a fresh question after the feedback pause.
func (q *QuizScreen) nextRound() (screen.Screen, tea.Cmd) {
	if err := q.session.Next(); err != nil {
		q.errMsg = err.Error()
		return q, nil
	}
	q.mc = newRoundChoice(q.session.Question())
	q.phase = phaseQuestion
	return q, nil
}

func (q *QuizScreen) View(width, height int) string {
	if q.errMsg != "" {
		return centered(width, height, theme.Incorrect.Render(q.errMsg))
	}

	switch q.phase {
	case phaseModeSelect:
		title := theme.Title.Render("Choose a study mode")
		return centered(width, height, title+"\n\n"+q.menu.View())

	case phaseQuestion, phaseFeedback:
		return q.renderRound(width, height)
	}

	return ""
}

func (q *QuizScreen) renderRound(width, height int) string {
	var b strings.Builder

	b.WriteString(q.renderStats())
	b.WriteString("\n\n")
	b.WriteString(q.mc.View())

	if q.phase == phaseFeedback {
		b.WriteString("\n")
		if q.lastCorrect {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			target := q.session.Question()
			b.WriteString(theme.Incorrect.Render(
				fmt.Sprintf("Not quite. It was %s.", target.OptionLabel(target.Target))))
		}
	}
	if q.saveWarn != "" {
		b.WriteString("\n" + theme.Hint.Render(q.saveWarn))
	}

	return centered(width, height, theme.Card.Render(b.String()))
}

func (q *QuizScreen) renderStats() string {
	stats := q.session.Stats()
	return theme.Subtitle.Render(fmt.Sprintf(
		"Score %d/%d   Streak %d   Accuracy %d%%",
		stats.Correct, stats.Total, stats.Streak, activity.AccuracyPercent(stats)))
}

// newRoundChoice builds the multiple-choice component for a round.
func newRoundChoice(question *quiz.Question) components.MultiChoice {
	options := make([]string, 0, len(question.Options))
	correct := 0
	for i, opt := range question.Options {
		options = append(options, question.OptionLabel(opt))
		if question.Check(opt) {
			correct = i
		}
	}

	prompt := question.Prompt()
	switch question.Mode {
	case quiz.ModeSymbolToName:
		prompt = fmt.Sprintf("Which element has the symbol %s?", prompt)
	case quiz.ModeNameToSymbol:
		prompt = fmt.Sprintf("What is the symbol for %s?", prompt)
	case quiz.ModeAtomicNumber:
		prompt = fmt.Sprintf("What is the atomic number of %s?", prompt)
	}

	return components.NewMultiChoice(prompt, options, correct)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
