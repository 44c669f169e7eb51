package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned when a caller passes a value outside
// the contract of an operation (bad rank index, unknown suit, soft total
// given to the dealer policy).
var ErrInvalidArgument = errors.New("invalid argument")

// Suit is one of the four French suits
type Suit string

const (
	Hearts   Suit = "Hearts"
	Clubs    Suit = "Clubs"
	Diamonds Suit = "Diamonds"
	Spades   Suit = "Spades"
)

// Suits lists the suits in deck build order
var Suits = []Suit{Hearts, Clubs, Diamonds, Spades}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Rank is the rank index of a card, 1 (Ace) through 13 (King).
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = map[Rank]string{
	1: "Ace", 2: "Two", 3: "Three", 4: "Four", 5: "Five", 6: "Six", 7: "Seven",
	8: "Eight", 9: "Nine", 10: "Ten", 11: "Jack", 12: "Queen", 13: "King",
}

// Name returns the rank's English name, or "" for an invalid rank.
func (r Rank) Name() string {
	return rankNames[r]
}

// Valid reports whether r is in [1,13].
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// ParseRank accepts a rank index ("1".."13") or a rank name ("Queen",
// case-insensitive).
func ParseRank(s string) (Rank, error) {
	if n, err := strconv.Atoi(s); err == nil {
		r := Rank(n)
		if !r.Valid() {
			return 0, fmt.Errorf("rank index %d out of range [1,13]: %w", n, ErrInvalidArgument)
		}
		return r, nil
	}
	for r, name := range rankNames {
		if strings.EqualFold(name, s) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rank %q: %w", s, ErrInvalidArgument)
}

// ParseSuit accepts a suit name, case-insensitive.
func ParseSuit(s string) (Suit, error) {
	for _, suit := range Suits {
		if strings.EqualFold(string(suit), s) {
			return suit, nil
		}
	}
	return "", fmt.Errorf("unknown suit %q: %w", s, ErrInvalidArgument)
}

// Face is the displayable (rank name, suit) pair of a card
type Face struct {
	Name string
	Suit Suit
}

// Card is an immutable playing card. The zero value is not a valid card.
type Card struct {
	rank Rank
	suit Suit
}

// New creates a card from a rank index and suit.
func New(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("rank index %d out of range [1,13]: %w", int(rank), ErrInvalidArgument)
	}
	if !validSuit(suit) {
		return Card{}, fmt.Errorf("unknown suit %q: %w", string(suit), ErrInvalidArgument)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustNew is like New but panics on invalid input. Meant for literals.
func MustNew(rank Rank, suit Suit) Card {
	c, err := New(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Suit() Suit {
	return c.suit
}

// Name returns the rank name, e.g. "Queen".
func (c Card) Name() string {
	return c.rank.Name()
}

// Value is the base blackjack value: 1 for an Ace, 10 for faces.
func (c Card) Value() int {
	return min(int(c.rank), 10)
}

// IsAce reports whether the card is an Ace.
func (c Card) IsAce() bool {
	return c.rank == Ace
}

// Face returns the (rank name, suit) display pair.
func (c Card) Face() Face {
	return Face{Name: c.Name(), Suit: c.suit}
}

// Display returns the rank name and suit.
func (c Card) Display() (string, Suit) {
	return c.Name(), c.suit
}

// FullName returns e.g. "Queen of Hearts".
func (c Card) FullName() string {
	return fmt.Sprintf("%s of %s", c.Name(), c.suit)
}

func (c Card) String() string {
	return c.FullName()
}

func validSuit(s Suit) bool {
	for _, suit := range Suits {
		if s == suit {
			return true
		}
	}
	return false
}
