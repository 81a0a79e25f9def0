// Package quiz generates quiz rounds and flashcard decks over the element
// dataset and feeds answer results into the progress aggregate.
package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/beemnet-bee/Elementia/internal/elements"
)

// Mode selects the study mode.
type Mode string

const (
	ModeSymbolToName     Mode = "symbol_to_name"
	ModeNameToSymbol     Mode = "name_to_symbol"
	ModeAtomicNumber     Mode = "atomic_number"
	ModeFlashcards       Mode = "flashcards"
	ModeSpacedRepetition Mode = "spaced_repetition"
)

// IsGraded reports whether answers in this mode are scored. Flashcard and
// spaced-repetition review is exploration, not graded recall.
func (m Mode) IsGraded() bool {
	switch m {
	case ModeFlashcards, ModeSpacedRepetition:
		return false
	}
	return true
}

// OptionCount is the number of answer options per multiple-choice round.
// A pool smaller than this yields fewer options, which is a degraded case
// rather than an error.
const OptionCount = 4

// ErrEmptyPool is returned when a category filter matches no elements.
// Callers are expected not to invoke generation with an impossible
// filter, but the engine refuses to fabricate a question from nothing.
var ErrEmptyPool = errors.New("no eligible elements for quiz generation")

// Engine draws questions and decks from an eligible pool. The random
// source is injectable so tests can pin deterministic sequences.
type Engine struct {
	pool []elements.Element
	rng  *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source. Production code keeps the default.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithPool replaces the full element dataset as the base pool.
func WithPool(pool []elements.Element) Option {
	return func(e *Engine) { e.pool = pool }
}

// NewEngine creates an engine over the full element dataset.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		pool: elements.All(),
		rng:  rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0xe1e3)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// eligible returns the pool after applying the category filter.
func (e *Engine) eligible(category string) []elements.Element {
	if category == "" {
		return e.pool
	}
	var out []elements.Element
	for _, el := range e.pool {
		if el.Category == category {
			out = append(out, el)
		}
	}
	return out
}

// Question is one multiple-choice round. Options always contains Target,
// in a random position.
type Question struct {
	Mode    Mode
	Target  elements.Element
	Options []elements.Element
}

// NewQuestion draws a target uniformly from the eligible pool plus up to
// three distinct distractors, shuffled together.
func (e *Engine) NewQuestion(mode Mode, category string) (*Question, error) {
	pool := e.eligible(category)
	if len(pool) == 0 {
		return nil, fmt.Errorf("category %q: %w", category, ErrEmptyPool)
	}

	perm := e.rng.Perm(len(pool))
	target := pool[perm[0]]

	n := OptionCount
	if len(pool) < n {
		n = len(pool)
	}
	options := make([]elements.Element, 0, n)
	options = append(options, target)
	for _, idx := range perm[1:n] {
		options = append(options, pool[idx])
	}

	e.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &Question{Mode: mode, Target: target, Options: options}, nil
}

// Prompt returns the text shown for the question.
func (q *Question) Prompt() string {
	switch q.Mode {
	case ModeSymbolToName:
		return q.Target.Symbol
	case ModeNameToSymbol, ModeAtomicNumber:
		return q.Target.Name
	}
	return q.Target.Name
}

// OptionLabel returns how an option is displayed for the question's mode.
func (q *Question) OptionLabel(el elements.Element) string {
	switch q.Mode {
	case ModeSymbolToName:
		return el.Name
	case ModeNameToSymbol:
		return el.Symbol
	case ModeAtomicNumber:
		return fmt.Sprintf("%d", el.Number)
	}
	return el.Name
}

// Check reports whether the chosen option is the target.
func (q *Question) Check(chosen elements.Element) bool {
	return chosen.Number == q.Target.Number
}
