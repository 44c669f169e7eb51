package table

import "github.com/arcanaland/blackjack/internal/hand"

// Outcome is the result of one player's hand against the dealer
type Outcome int

const (
	Lose Outcome = iota
	Push
	Win
	BlackjackWin
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Push:
		return "push"
	case Win:
		return "win"
	case BlackjackWin:
		return "blackjack"
	default:
		return "unknown"
	}
}

// Settle decides a finished player hand against a finished dealer hand.
func Settle(p *hand.Hand, d *hand.DealerHand) Outcome {
	if p.IsBust() {
		return Lose
	}
	switch {
	case p.IsBlackjack() && d.IsBlackjack():
		return Push
	case p.IsBlackjack():
		return BlackjackWin
	case d.IsBlackjack():
		return Lose
	case d.IsBust():
		return Win
	}

	player, dealer := p.TotalPoints().Best(), d.TotalPoints()
	switch {
	case player > dealer:
		return Win
	case player < dealer:
		return Lose
	default:
		return Push
	}
}
