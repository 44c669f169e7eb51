package hand

import (
	"fmt"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
)

// InitialSize is the number of cards in a freshly dealt hand
const InitialSize = 2

// Holder is the capability shared by player and dealer hands.
type Holder interface {
	DealInitial() error
	Hit() (card.Card, error)
	Cards() []card.Card
	Len() int
	DisplayCards() []card.Face
	IsBlackjack() bool
}

var (
	_ Holder = (*Hand)(nil)
	_ Holder = (*DealerHand)(nil)
)

// pile holds the cards of one participant and the deck it draws from.
// The deck is shared across the table and is not owned by the pile.
type pile struct {
	cards []card.Card
	deck  *deck.Deck
}

func (p *pile) dealInitial() error {
	for len(p.cards) < InitialSize {
		if _, err := p.hit(); err != nil {
			return err
		}
	}
	return nil
}

func (p *pile) hit() (card.Card, error) {
	if p.deck == nil {
		return card.Card{}, fmt.Errorf("hand has no deck to draw from: %w", card.ErrInvalidArgument)
	}
	c, err := p.deck.Draw()
	if err != nil {
		return card.Card{}, fmt.Errorf("error drawing card: %w", err)
	}
	p.cards = append(p.cards, c)
	return c, nil
}

func (p *pile) snapshot() []card.Card {
	return append([]card.Card(nil), p.cards...)
}

func (p *pile) faces(cards []card.Card) []card.Face {
	faces := make([]card.Face, len(cards))
	for i, c := range cards {
		faces[i] = c.Face()
	}
	return faces
}

// sum returns the base-value sum and the number of Aces.
func (p *pile) sum() (total, aces int) {
	for _, c := range p.cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	return total, aces
}

// blackjack is true for exactly two cards: an Ace and a ten-value card.
func (p *pile) blackjack() bool {
	if len(p.cards) != InitialSize {
		return false
	}
	var ace, ten bool
	for _, c := range p.cards {
		if c.IsAce() {
			ace = true
		}
		if c.Value() == 10 {
			ten = true
		}
	}
	return ace && ten
}

// Hand is a player's hand.
type Hand struct {
	pile
}

// New returns an empty hand drawing from d.
func New(d *deck.Deck) *Hand {
	return &Hand{pile{deck: d}}
}

// FromCards returns a hand holding cards. It has no deck, so Hit and
// DealInitial on a short hand fail with card.ErrInvalidArgument.
func FromCards(cards ...card.Card) *Hand {
	return &Hand{pile{cards: append([]card.Card(nil), cards...)}}
}

// DealInitial draws until the hand holds two cards. It tops up a
// non-empty hand rather than resetting it.
func (h *Hand) DealInitial() error {
	return h.dealInitial()
}

// Hit draws one card and appends it to the hand.
func (h *Hand) Hit() (card.Card, error) {
	return h.hit()
}

// Cards returns a copy of the held cards in deal order.
func (h *Hand) Cards() []card.Card {
	return h.snapshot()
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// DisplayCards returns the (rank name, suit) pair of every held card.
func (h *Hand) DisplayCards() []card.Face {
	return h.faces(h.cards)
}

// TotalPoints scores the hand. A hand with exactly one Ace that can count
// as 11 without busting is Soft, except that a high total of exactly 21
// is reported as Hard(21). Two or more Aces never promote.
func (h *Hand) TotalPoints() Total {
	total, aces := h.sum()
	if aces == 1 && total+10 <= Blackjack {
		high := total + 10
		if high == Blackjack {
			return Hard{Value: high}
		}
		return Soft{Low: total, High: high}
	}
	return Hard{Value: total}
}

// IsBlackjack is true for a two-card hand of an Ace and a ten-value card.
func (h *Hand) IsBlackjack() bool {
	return h.blackjack()
}

// IsBust reports whether the hand's total exceeds 21.
func (h *Hand) IsBust() bool {
	return IsBust(h.TotalPoints())
}
