package hand

import "strconv"

// Blackjack is the best possible total
const Blackjack = 21

// Total is the point total of a hand: either Hard or Soft.
// Consumers switch on the concrete type:
//
//	switch t := h.TotalPoints().(type) {
//	case hand.Hard:
//	case hand.Soft:
//	}
type Total interface {
	// Best is the highest total that does not bust, or the hard total.
	Best() int
	String() string
	isTotal()
}

// Hard is a total with no Ace flexibility.
type Hard struct {
	Value int
}

// Soft is a total where one Ace may count as 1 (Low) or 11 (High).
type Soft struct {
	Low  int
	High int
}

func (h Hard) Best() int { return h.Value }

func (h Hard) String() string { return strconv.Itoa(h.Value) }

func (Hard) isTotal() {}

func (s Soft) Best() int { return s.High }

func (s Soft) String() string { return strconv.Itoa(s.Low) + "/" + strconv.Itoa(s.High) }

func (Soft) isTotal() {}

// IsBust reports whether t exceeds 21.
func IsBust(t Total) bool {
	return t.Best() > Blackjack
}
