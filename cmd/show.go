package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack/internal/card"
)

var showCmd = &cobra.Command{
	Use:   "show [rank] [suit]",
	Short: "Display a single card and its blackjack value",
	Long: `Show displays a playing card with its full name and blackjack value.
The rank may be an index from 1 (Ace) to 13 (King) or a rank name.

Examples:
  blackjack show 12 hearts
  blackjack show ace spades`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rank, err := card.ParseRank(args[0])
		if err != nil {
			return err
		}
		suit, err := card.ParseSuit(args[1])
		if err != nil {
			return err
		}
		c, err := card.New(rank, suit)
		if err != nil {
			return err
		}

		displayCard(cmd.OutOrStdout(), c, terminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// terminalWidth returns the stdout width, or 80 when it is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// displayCard displays the card information under a rule as wide as the
// terminal allows.
func displayCard(w io.Writer, c card.Card, width int) {
	value := fmt.Sprintf("%d", c.Value())
	if c.IsAce() {
		value = "1 or 11"
	}

	rule := strings.Repeat("─", max(min(width-4, 40), 1))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", faceString(c.Face()))
	fmt.Fprintf(w, "  %s\n", rule)
	fmt.Fprintln(w, "  "+colorize.CyanString("Card:  ")+colorize.HiWhiteString("%s", c.FullName()))
	fmt.Fprintln(w, "  "+colorize.CyanString("Suit:  ")+colorize.HiWhiteString("%s · %s", c.Suit(), getSuitSymbol(c.Suit())))
	fmt.Fprintln(w, "  "+colorize.CyanString("Value: ")+colorize.HiWhiteString("%s", value))
	fmt.Fprintln(w)
}
