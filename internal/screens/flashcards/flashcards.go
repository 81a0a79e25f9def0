// Package flashcards renders the ungraded deck review screen.
package flashcards

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/beemnet-bee/Elementia/internal/progress"
	"github.com/beemnet-bee/Elementia/internal/quiz"
	"github.com/beemnet-bee/Elementia/internal/screen"
	"github.com/beemnet-bee/Elementia/internal/ui/layout"
	"github.com/beemnet-bee/Elementia/internal/ui/theme"
)

// FlashcardScreen pages through a shuffled deck of element cards.
type FlashcardScreen struct {
	prog  *progress.UserProgress
	store *progress.Store
	mode  quiz.Mode

	deck     *quiz.Deck
	flipped  bool
	saveWarn string
	errMsg   string
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)

// New deals a fresh deck. Both review modes draw the same uniform sample.
func New(prog *progress.UserProgress, store *progress.Store, mode quiz.Mode) *FlashcardScreen {
	s := &FlashcardScreen{
		prog:  prog,
		store: store,
		mode:  mode,
	}

	deck, err := quiz.NewEngine().NewDeck("")
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.deck = deck
	return s
}

func (f *FlashcardScreen) Init() tea.Cmd {
	return nil
}

func (f *FlashcardScreen) Title() string {
	if f.mode == quiz.ModeSpacedRepetition {
		return "Spaced Repetition"
	}
	return "Flashcards"
}

func (f *FlashcardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "→/n", Description: "Next card"},
		{Key: "m", Description: "Toggle mastered"},
		{Key: "Esc", Description: "Back"},
	}
}

func (f *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if f.deck == nil {
		return f, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch kmsg.String() {
	case "space", "enter":
		f.flipped = !f.flipped
	case "right", "n":
		f.deck.Advance()
		f.flipped = false
	case "m":
		f.prog.ToggleMastery(f.deck.Current().Number)
		f.saveWarn = ""
		if f.store != nil {
			if err := f.store.Save(context.Background(), f.prog); err != nil {
				f.saveWarn = "progress could not be saved"
			}
		}
	}

	return f, nil
}

func (f *FlashcardScreen) View(width, height int) string {
	if f.errMsg != "" {
		return centered(width, height, theme.Incorrect.Render(f.errMsg))
	}

	el := f.deck.Current()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(
		fmt.Sprintf("Card %d of %d", f.deck.Position+1, f.deck.Len())))
	b.WriteString("\n\n")

	face := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.CategoryColor(el.Category)).
		Padding(1, 6).
		Align(lipgloss.Center)

	if !f.flipped {
		front := lipgloss.NewStyle().
			Foreground(theme.CategoryColor(el.Category)).
			Bold(true).
			Render(el.Symbol)
		b.WriteString(face.Render(fmt.Sprintf("%d\n\n%s", el.Number, front)))
	} else {
		lines := []string{
			theme.Body.Bold(true).Render(el.Name),
			theme.Subtitle.Render(el.Category),
			theme.Body.Render(fmt.Sprintf("atomic mass %.3f", el.AtomicMass)),
		}
		if f.prog.IsMastered(el.Number) {
			lines = append(lines, theme.Mastered.Render("◆ mastered"))
		}
		b.WriteString(face.Render(strings.Join(lines, "\n")))
	}

	if f.saveWarn != "" {
		b.WriteString("\n" + theme.Hint.Render(f.saveWarn))
	}

	return centered(width, height, b.String())
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
