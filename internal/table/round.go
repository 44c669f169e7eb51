package table

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/hand"
)

// ErrSeatFinished is returned when a player acts after their turn ended.
var ErrSeatFinished = errors.New("seat has finished its turn")

// Status is where a seat stands during the player phase
type Status int

const (
	Playing Status = iota
	Stood
	Bust
	TwentyOne
	Blackjack
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Stood:
		return "stood"
	case Bust:
		return "bust"
	case TwentyOne:
		return "21"
	case Blackjack:
		return "blackjack"
	default:
		return "unknown"
	}
}

// Seat is one player's hand and turn status.
type Seat struct {
	Number int
	Hand   *hand.Hand
	Status Status
}

// Result is the settled outcome of one seat.
type Result struct {
	Seat    int
	Total   hand.Total
	Outcome Outcome
}

// Round is a single round: players act in seat order, then the dealer
// plays out its hand.
type Round struct {
	deck   *deck.Deck
	seats  []*Seat
	dealer *hand.DealerHand
	log    *zap.SugaredLogger
}

// NewRound deals n players and then the dealer from d.
func NewRound(d *deck.Deck, n int, log *zap.SugaredLogger) (*Round, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	hands, err := DealAll(n, d)
	if err != nil {
		return nil, err
	}
	dealer := hand.NewDealer(d)
	if err := dealer.DealInitial(); err != nil {
		return nil, fmt.Errorf("error dealing dealer hand: %w", err)
	}

	r := &Round{deck: d, dealer: dealer, log: log}
	for i, h := range hands {
		s := &Seat{Number: i + 1, Hand: h, Status: statusOf(h)}
		r.seats = append(r.seats, s)
		log.Infow("hand dealt", "seat", s.Number, "total", h.TotalPoints().String(), "status", s.Status.String())
	}
	log.Debugw("dealer dealt", "visible", dealer.DisplayVisibleCards())
	return r, nil
}

// Players returns the number of seats.
func (r *Round) Players() int {
	return len(r.seats)
}

// Seat returns the 1-indexed seat i.
func (r *Round) Seat(i int) (*Seat, error) {
	if i < 1 || i > len(r.seats) {
		return nil, fmt.Errorf("%w: seat %d of %d", ErrPlayerRange, i, len(r.seats))
	}
	return r.seats[i-1], nil
}

// Dealer returns the dealer hand.
func (r *Round) Dealer() *hand.DealerHand {
	return r.dealer
}

// Deck returns the shared deck.
func (r *Round) Deck() *deck.Deck {
	return r.deck
}

// Hit draws a card for seat i and returns it with the seat's new status.
func (r *Round) Hit(i int) (card.Card, Status, error) {
	s, err := r.activeSeat(i)
	if err != nil {
		return card.Card{}, 0, err
	}

	c, err := AddCard(s.Hand)
	if err != nil {
		return card.Card{}, s.Status, err
	}
	s.Status = statusOf(s.Hand)
	r.log.Infow("player hit", "seat", i, "card", c.FullName(), "total", s.Hand.TotalPoints().String(), "status", s.Status.String())
	return c, s.Status, nil
}

// Stand ends seat i's turn.
func (r *Round) Stand(i int) error {
	s, err := r.activeSeat(i)
	if err != nil {
		return err
	}
	s.Status = Stood
	r.log.Infow("player stood", "seat", i, "total", s.Hand.TotalPoints().String())
	return nil
}

// PlayersDone reports whether every seat has finished its turn.
func (r *Round) PlayersDone() bool {
	for _, s := range r.seats {
		if s.Status == Playing {
			return false
		}
	}
	return true
}

// PlayDealer hits the dealer while it is below 17 and returns the cards
// drawn. The dealer does not draw when every player has busted.
func (r *Round) PlayDealer() ([]card.Card, error) {
	if !r.PlayersDone() {
		return nil, fmt.Errorf("dealer cannot play before all seats finish: %w", card.ErrInvalidArgument)
	}
	if r.allBust() {
		r.log.Debugw("dealer skips draw, every player bust")
		return nil, nil
	}

	var drawn []card.Card
	for {
		hit, err := hand.DealerShouldHit(r.dealer.Score())
		if err != nil {
			return drawn, err
		}
		if !hit {
			break
		}
		c, err := AddCard(r.dealer)
		if err != nil {
			return drawn, err
		}
		drawn = append(drawn, c)
		r.log.Debugw("dealer hit", "card", c.FullName(), "total", r.dealer.TotalPoints())
	}

	if r.dealer.IsBust() {
		r.log.Infow("dealer bust", "total", r.dealer.TotalPoints())
	} else {
		r.log.Infow("dealer stood", "total", r.dealer.TotalPoints())
	}
	return drawn, nil
}

// Results settles every seat against the dealer.
func (r *Round) Results() []Result {
	results := make([]Result, 0, len(r.seats))
	for _, s := range r.seats {
		res := Result{Seat: s.Number, Total: s.Hand.TotalPoints(), Outcome: Settle(s.Hand, r.dealer)}
		r.log.Infow("seat settled", "seat", res.Seat, "total", res.Total.String(), "outcome", res.Outcome.String())
		results = append(results, res)
	}
	return results
}

func (r *Round) activeSeat(i int) (*Seat, error) {
	s, err := r.Seat(i)
	if err != nil {
		return nil, err
	}
	if s.Status != Playing {
		return nil, fmt.Errorf("seat %d is %s: %w", i, s.Status, ErrSeatFinished)
	}
	return s, nil
}

func (r *Round) allBust() bool {
	for _, s := range r.seats {
		if s.Status != Bust {
			return false
		}
	}
	return true
}

func statusOf(h *hand.Hand) Status {
	switch {
	case h.IsBlackjack():
		return Blackjack
	case h.IsBust():
		return Bust
	case h.TotalPoints().Best() == hand.Blackjack:
		return TwentyOne
	default:
		return Playing
	}
}
