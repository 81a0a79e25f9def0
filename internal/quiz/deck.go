package quiz

import (
	"fmt"

	"github.com/beemnet-bee/Elementia/internal/elements"
)

// DeckSize is the card count of a flashcard deck (or the full eligible
// pool when smaller).
const DeckSize = 20

// Deck is an ephemeral ordered sample of elements for flashcard-style
// review. It wraps instead of terminating; the session is open-ended
// until the user exits, and abandoning it needs no cleanup.
type Deck struct {
	Cards    []elements.Element
	Position int
}

// NewDeck shuffles the eligible pool and takes a DeckSize prefix.
// Both flashcards and spaced-repetition mode use this uniform sample.
func (e *Engine) NewDeck(category string) (*Deck, error) {
	pool := e.eligible(category)
	if len(pool) == 0 {
		return nil, fmt.Errorf("category %q: %w", category, ErrEmptyPool)
	}

	cards := make([]elements.Element, len(pool))
	copy(cards, pool)
	e.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	if len(cards) > DeckSize {
		cards = cards[:DeckSize]
	}

	return &Deck{Cards: cards}, nil
}

// Current returns the card at the deck position.
func (d *Deck) Current() elements.Element {
	return d.Cards[d.Position]
}

// Advance moves to the next card, wrapping past the end.
func (d *Deck) Advance() {
	d.Position = (d.Position + 1) % len(d.Cards)
}

// Len returns the deck size.
func (d *Deck) Len() int {
	return len(d.Cards)
}
