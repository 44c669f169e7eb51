package deck

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arcanaland/blackjack/internal/card"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

func key(c card.Card) string {
	return c.FullName()
}

func TestNew_UniqueFullDeck(t *testing.T) {
	d, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Remaining() != Size {
		t.Fatalf("Remaining() = %d, want %d", d.Remaining(), Size)
	}

	seen := map[string]bool{}
	for _, c := range d.Peek() {
		if seen[key(c)] {
			t.Fatalf("duplicate card: %s", key(c))
		}
		seen[key(c)] = true
	}
	if len(seen) != Size {
		t.Fatalf("expected %d unique cards, got %d", Size, len(seen))
	}
}

func TestDraw_DepletesUniquely(t *testing.T) {
	d, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	drawn := map[string]bool{}
	for k := 1; k <= Size; k++ {
		c, err := d.Draw()
		if err != nil {
			t.Fatalf("draw %d: unexpected error: %v", k, err)
		}
		if drawn[key(c)] {
			t.Fatalf("draw %d returned %s twice", k, key(c))
		}
		drawn[key(c)] = true
		if d.Remaining() != Size-k {
			t.Fatalf("after %d draws Remaining() = %d, want %d", k, d.Remaining(), Size-k)
		}
	}
}

func TestDraw_EmptyDeck(t *testing.T) {
	d := FromCards(card.MustNew(card.King, card.Spades))
	if _, err := d.Draw(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := d.Draw()
	if !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("Draw() on empty deck error = %v, want ErrEmptyDeck", err)
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", d.Remaining())
	}
}

func TestDraw_FollowsShuffleOrder(t *testing.T) {
	d := FromCards(
		card.MustNew(2, card.Hearts),
		card.MustNew(3, card.Hearts),
		card.MustNew(4, card.Hearts),
	)
	peek := d.Peek()
	for i, want := range []card.Rank{4, 3, 2} {
		if peek[i].Rank() != want {
			t.Fatalf("Peek()[%d] = %s, want rank %d", i, peek[i], want)
		}
		c, err := d.Draw()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Rank() != want {
			t.Fatalf("draw %d = %s, want rank %d", i, c, want)
		}
	}
}

func TestNew_InjectedSourceIsDeterministic(t *testing.T) {
	// All-zero entropy picks j=0 at each Fisher–Yates step.
	a, err := New(WithSource(bytes.NewReader(make([]byte, 4*Size))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := New(WithSource(bytes.NewReader(make([]byte, 4*Size))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pa, pb := a.Peek(), b.Peek()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("decks diverge at %d: %s vs %s", i, pa[i], pb[i])
		}
	}

	// Zero entropy rotates the build order left by one, leaving the Ace of
	// Hearts on top and the King of Spades right under it.
	if pa[0] != card.MustNew(card.Ace, card.Hearts) {
		t.Fatalf("top card = %s, want Ace of Hearts", pa[0])
	}
	if pa[1] != card.MustNew(card.King, card.Spades) {
		t.Fatalf("second card = %s, want King of Spades", pa[1])
	}
}

func TestNew_EntropyFailure(t *testing.T) {
	if _, err := New(WithSource(errReader{})); err == nil {
		t.Fatal("expected error from failing entropy source")
	}
}

func TestOrdered(t *testing.T) {
	cards := Ordered()
	if len(cards) != Size {
		t.Fatalf("len(Ordered()) = %d, want %d", len(cards), Size)
	}
	if cards[0] != card.MustNew(card.Ace, card.Hearts) {
		t.Fatalf("Ordered()[0] = %s", cards[0])
	}
	if cards[Size-1] != card.MustNew(card.King, card.Spades) {
		t.Fatalf("Ordered()[51] = %s", cards[Size-1])
	}
}
