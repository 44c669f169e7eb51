package deck

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/rng"
)

// Size is the number of cards in a full deck
const Size = 52

// ErrEmptyDeck is returned by Draw when no cards remain.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is a shuffled stack of 52 unique cards. Cards are drawn from the
// end of the stack, so draw order is the shuffle order read backwards.
//
// A Deck is not safe for concurrent use; all mutation goes through Draw.
type Deck struct {
	cards []card.Card
	log   *zap.SugaredLogger
}

// Option configures a Deck at construction time
type Option func(*options)

type options struct {
	source io.Reader
	log    *zap.SugaredLogger
}

// WithSource sets the entropy source for the shuffle. Defaults to crypto/rand.
func WithSource(r io.Reader) Option {
	return func(o *options) {
		o.source = r
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

// New builds the full 52-card set and shuffles it.
func New(opts ...Option) (*Deck, error) {
	o := options{source: rng.Default}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop().Sugar()
	}

	d := &Deck{cards: Ordered(), log: o.log}
	if err := rng.Shuffle(o.source, len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}); err != nil {
		return nil, fmt.Errorf("error shuffling deck: %w", err)
	}

	d.log.Debugw("deck shuffled", "size", len(d.cards))
	return d, nil
}

// FromCards returns an unshuffled deck holding cards; the last card is
// drawn first. Used to stack a deck for deterministic play.
func FromCards(cards ...card.Card) *Deck {
	return &Deck{
		cards: append([]card.Card(nil), cards...),
		log:   zap.NewNop().Sugar(),
	}
}

// Ordered returns the 52 cards in build order: ranks Ace..King, each in
// every suit.
func Ordered() []card.Card {
	cards := make([]card.Card, 0, Size)
	for r := card.Ace; r <= card.King; r++ {
		for _, suit := range card.Suits {
			cards = append(cards, card.MustNew(r, suit))
		}
	}
	return cards
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrEmptyDeck
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]

	d.log.Debugw("card drawn", "card", c.FullName(), "remaining", len(d.cards))
	return c, nil
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Peek returns the remaining cards in draw order without removing them.
func (d *Deck) Peek() []card.Card {
	out := make([]card.Card, len(d.cards))
	for i, c := range d.cards {
		out[len(d.cards)-1-i] = c
	}
	return out
}
