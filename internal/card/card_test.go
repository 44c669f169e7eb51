package card

import (
	"errors"
	"testing"
)

func TestNew_ValueAndName(t *testing.T) {
	names := []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Jack", "Queen", "King"}

	for _, suit := range Suits {
		for i := 1; i <= 13; i++ {
			c, err := New(Rank(i), suit)
			if err != nil {
				t.Fatalf("New(%d, %s): unexpected error: %v", i, suit, err)
			}
			if got, want := c.Value(), min(i, 10); got != want {
				t.Errorf("New(%d, %s).Value() = %d, want %d", i, suit, got, want)
			}
			if got := c.Name(); got != names[i-1] {
				t.Errorf("New(%d, %s).Name() = %q, want %q", i, suit, got, names[i-1])
			}
			if c.Suit() != suit {
				t.Errorf("New(%d, %s).Suit() = %s", i, suit, c.Suit())
			}
		}
	}
}

func TestNew_Queen(t *testing.T) {
	c := MustNew(Queen, Hearts)
	name, suit := c.Display()
	if name != "Queen" || suit != Hearts {
		t.Fatalf("Display() = (%q, %q), want (Queen, Hearts)", name, suit)
	}
	if c.Value() != 10 {
		t.Fatalf("Value() = %d, want 10", c.Value())
	}
	if got := c.FullName(); got != "Queen of Hearts" {
		t.Fatalf("FullName() = %q", got)
	}
	if got := c.Face(); got != (Face{Name: "Queen", Suit: Hearts}) {
		t.Fatalf("Face() = %+v", got)
	}
}

func TestNew_InvalidArgument(t *testing.T) {
	tests := []struct {
		name string
		rank Rank
		suit Suit
	}{
		{"rank zero", 0, Spades},
		{"rank fourteen", 14, Spades},
		{"negative rank", -1, Clubs},
		{"unknown suit", Ace, "Any suit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rank, tt.suit)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("New(%d, %q) error = %v, want ErrInvalidArgument", tt.rank, tt.suit, err)
			}
		})
	}
}

func TestParseRank(t *testing.T) {
	tests := []struct {
		in      string
		want    Rank
		wantErr bool
	}{
		{"1", Ace, false},
		{"13", King, false},
		{"queen", Queen, false},
		{"Ten", 10, false},
		{"0", 0, true},
		{"14", 0, true},
		{"joker", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRank(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("ParseRank(%q) error = %v, want ErrInvalidArgument", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseRank(%q) = %d, %v, want %d", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestParseSuit(t *testing.T) {
	if s, err := ParseSuit("spades"); err != nil || s != Spades {
		t.Fatalf("ParseSuit(spades) = %q, %v", s, err)
	}
	if _, err := ParseSuit("stars"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("ParseSuit(stars) error = %v, want ErrInvalidArgument", err)
	}
}

func TestSuit_Red(t *testing.T) {
	if !Hearts.Red() || !Diamonds.Red() || Clubs.Red() || Spades.Red() {
		t.Fatal("Red() does not match suit colors")
	}
}
