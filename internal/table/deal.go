package table

import (
	"fmt"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/hand"
)

// ErrPlayerRange is returned for a player count or 1-indexed seat outside
// the table.
var ErrPlayerRange = fmt.Errorf("player out of range: %w", card.ErrInvalidArgument)

// DealAll deals n two-card hands from d, in seat order. Each hand is
// complete before the next is started.
func DealAll(n int, d *deck.Deck) ([]*hand.Hand, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least one player, got %d", ErrPlayerRange, n)
	}
	if need := n * hand.InitialSize; need > d.Remaining() {
		return nil, fmt.Errorf("dealing %d hands needs %d cards, %d remain: %w", n, need, d.Remaining(), deck.ErrEmptyDeck)
	}

	hands := make([]*hand.Hand, 0, n)
	for i := 0; i < n; i++ {
		h := hand.New(d)
		if err := h.DealInitial(); err != nil {
			return nil, fmt.Errorf("error dealing hand %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}

// Player returns the hand at 1-indexed seat i.
func Player(hands []*hand.Hand, i int) (*hand.Hand, error) {
	if i < 1 || i > len(hands) {
		return nil, fmt.Errorf("%w: seat %d of %d", ErrPlayerRange, i, len(hands))
	}
	return hands[i-1], nil
}

// AddCard hits h once and returns the drawn card.
func AddCard(h hand.Holder) (card.Card, error) {
	return h.Hit()
}
