package quiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/beemnet-bee/Elementia/internal/elements"
	"github.com/beemnet-bee/Elementia/internal/progress"
)

// Session runs graded multiple-choice rounds against one progress
// aggregate, persisting after every scored answer. Persistence failures
// are reported but never fail the session: the in-memory aggregate stays
// authoritative.
type Session struct {
	ID       string
	Mode     Mode
	Category string

	engine   *Engine
	progress *progress.UserProgress
	store    *progress.Store
	today    func() progress.Date

	question *Question
}

// NewSession starts a graded session and generates its first question.
func NewSession(engine *Engine, prog *progress.UserProgress, store *progress.Store, mode Mode, category string) (*Session, error) {
	if !mode.IsGraded() {
		return nil, fmt.Errorf("mode %q is not a graded quiz mode", mode)
	}
	s := &Session{
		ID:       uuid.NewString(),
		Mode:     mode,
		Category: category,
		engine:   engine,
		progress: prog,
		store:    store,
		today:    progress.Today,
	}
	if err := s.Next(); err != nil {
		return nil, err
	}
	return s, nil
}

// Question returns the current round.
func (s *Session) Question() *Question {
	return s.question
}

// Next generates a fresh round.
func (s *Session) Next() error {
	q, err := s.engine.NewQuestion(s.Mode, s.Category)
	if err != nil {
		return err
	}
	s.question = q
	return nil
}

// Submit scores the chosen option against the current round, records the
// answer (stats, streaks, activity history) and persists the aggregate.
// The returned error is the non-fatal persistence failure, if any.
func (s *Session) Submit(ctx context.Context, chosen elements.Element) (correct bool, saveErr error) {
	correct = s.question.Check(chosen)
	s.progress.RecordAnswer(correct, s.today())
	if s.store != nil {
		saveErr = s.store.Save(ctx, s.progress)
	}
	return correct, saveErr
}

// Stats exposes the live quiz statistics for display.
func (s *Session) Stats() progress.QuizStats {
	return s.progress.QuizStats
}
