package cmd

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/hand"
	"github.com/arcanaland/blackjack/internal/table"
)

// getSuitSymbol returns the symbol for a suit
func getSuitSymbol(suit card.Suit) string {
	switch suit {
	case card.Hearts:
		return "♥"
	case card.Diamonds:
		return "♦"
	case card.Clubs:
		return "♣"
	case card.Spades:
		return "♠"
	default:
		return "?"
	}
}

// faceString renders "Queen♥", red for hearts and diamonds.
func faceString(f card.Face) string {
	s := f.Name + getSuitSymbol(f.Suit)
	if f.Suit.Red() {
		return colorize.New(colorize.FgHiRed, colorize.Bold).Sprint(s)
	}
	return colorize.New(colorize.FgHiWhite, colorize.Bold).Sprint(s)
}

func facesString(faces []card.Face) string {
	parts := make([]string, len(faces))
	for i, f := range faces {
		parts[i] = faceString(f)
	}
	return strings.Join(parts, " ")
}

// totalString renders a player total, soft totals as "low/high".
func totalString(t hand.Total) string {
	switch v := t.(type) {
	case hand.Soft:
		return colorize.CyanString("%d/%d", v.Low, v.High)
	case hand.Hard:
		if v.Value > hand.Blackjack {
			return colorize.RedString("%d", v.Value)
		}
		return colorize.CyanString("%d", v.Value)
	default:
		return "?"
	}
}

func printSeat(w io.Writer, s *table.Seat) {
	fmt.Fprintf(w, "%s %s  (%s)\n",
		colorize.HiWhiteString("Player %d:", s.Number),
		facesString(s.Hand.DisplayCards()),
		totalString(s.Hand.TotalPoints()))
}

// printDealerUp shows the dealer with the hole card face down.
func printDealerUp(w io.Writer, d *hand.DealerHand) {
	fmt.Fprintf(w, "%s %s %s\n",
		colorize.HiWhiteString("Dealer:"),
		colorize.HiBlackString("▓▓"),
		facesString(d.DisplayVisibleCards()))
}

func printDealer(w io.Writer, d *hand.DealerHand) {
	fmt.Fprintf(w, "%s %s  (%s)\n",
		colorize.HiWhiteString("Dealer:"),
		facesString(d.DisplayCards()),
		totalString(hand.Hard{Value: d.TotalPoints()}))
}

func statusString(s table.Status) string {
	switch s {
	case table.Bust:
		return colorize.RedString("Bust!")
	case table.Blackjack:
		return colorize.GreenString("Blackjack!")
	case table.TwentyOne:
		return colorize.GreenString("21!")
	default:
		return ""
	}
}

func outcomeString(o table.Outcome) string {
	switch o {
	case table.Win:
		return pterm.LightGreen("Win")
	case table.BlackjackWin:
		return pterm.LightGreen("Blackjack")
	case table.Push:
		return pterm.LightYellow("Push")
	default:
		return pterm.LightRed("Lose")
	}
}

// renderResults draws the settled round as a table.
func renderResults(r *table.Round, results []table.Result) (string, error) {
	data := pterm.TableData{{"Player", "Cards", "Total", "Result"}}
	for _, res := range results {
		s, err := r.Seat(res.Seat)
		if err != nil {
			return "", err
		}
		data = append(data, []string{
			fmt.Sprintf("%d", res.Seat),
			facesString(s.Hand.DisplayCards()),
			res.Total.String(),
			outcomeString(res.Outcome),
		})
	}

	d := r.Dealer()
	dealer := fmt.Sprintf("Dealer %s (%d)", facesString(d.DisplayCards()), d.TotalPoints())
	if d.IsBust() {
		dealer += " " + pterm.LightRed("bust")
	}

	tbl, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).WithTitle(pterm.LightYellow("|RESULTS|")).WithTitleTopCenter().Sprint(dealer)
	return box + "\n" + tbl + "\n", nil
}
