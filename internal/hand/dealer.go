package hand

import (
	"fmt"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
)

// StandThreshold is the lowest total the dealer stands on. The dealer
// stands on soft 17.
const StandThreshold = 17

// DealerHand is the house hand. Its total is always a single number and
// its first card is the hole card.
type DealerHand struct {
	pile
}

// NewDealer returns an empty dealer hand drawing from d.
func NewDealer(d *deck.Deck) *DealerHand {
	return &DealerHand{pile{deck: d}}
}

// DealerFromCards returns a dealer hand holding cards, with no deck.
func DealerFromCards(cards ...card.Card) *DealerHand {
	return &DealerHand{pile{cards: append([]card.Card(nil), cards...)}}
}

func (d *DealerHand) DealInitial() error {
	return d.dealInitial()
}

func (d *DealerHand) Hit() (card.Card, error) {
	return d.hit()
}

func (d *DealerHand) Cards() []card.Card {
	return d.snapshot()
}

func (d *DealerHand) Len() int {
	return len(d.cards)
}

func (d *DealerHand) DisplayCards() []card.Face {
	return d.faces(d.cards)
}

// DisplayVisibleCards returns every card except the hole card.
func (d *DealerHand) DisplayVisibleCards() []card.Face {
	if len(d.cards) == 0 {
		return []card.Face{}
	}
	return d.faces(d.cards[1:])
}

// TotalPoints sums base values and counts one Ace as 11 when that does
// not bust.
func (d *DealerHand) TotalPoints() int {
	total, aces := d.sum()
	if aces > 0 && total+10 <= Blackjack {
		total += 10
	}
	return total
}

// Score is TotalPoints as a Hard total, for the policy checks.
func (d *DealerHand) Score() Total {
	return Hard{Value: d.TotalPoints()}
}

func (d *DealerHand) IsBlackjack() bool {
	return d.blackjack()
}

func (d *DealerHand) IsBust() bool {
	return d.TotalPoints() > Blackjack
}

// DealerShouldHit is true iff the total is below 17. Only Hard totals are
// accepted.
func DealerShouldHit(t Total) (bool, error) {
	h, err := scalar(t)
	if err != nil {
		return false, err
	}
	return h.Value < StandThreshold, nil
}

// DealerShouldStay is true iff the total is in [17,21]. Only Hard totals
// are accepted.
func DealerShouldStay(t Total) (bool, error) {
	h, err := scalar(t)
	if err != nil {
		return false, err
	}
	return h.Value >= StandThreshold && h.Value <= Blackjack, nil
}

func scalar(t Total) (Hard, error) {
	switch v := t.(type) {
	case Hard:
		return v, nil
	case Soft:
		return Hard{}, fmt.Errorf("dealer policy needs a single total, got soft %s: %w", v, card.ErrInvalidArgument)
	default:
		return Hard{}, fmt.Errorf("dealer policy needs a single total, got %v: %w", t, card.ErrInvalidArgument)
	}
}
