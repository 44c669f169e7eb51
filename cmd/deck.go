package cmd

import (
	"fmt"
	"strconv"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect a shuffled deck",
	Long:  `Commands for shuffling and drawing from a standard 52-card deck.`,
}

// deckShuffleCmd represents the deck shuffle command
var deckShuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Print a freshly shuffled deck in draw order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := deck.New(deck.WithLogger(log))
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for i, c := range d.Peek() {
			fmt.Fprintf(w, "%2d. %s\n", i+1, faceString(c.Face()))
		}
		return nil
	},
}

// deckDrawCmd represents the deck draw command
var deckDrawCmd = &cobra.Command{
	Use:   "draw [count]",
	Short: "Draw cards from a freshly shuffled deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("count must be a positive integer, got %q: %w", args[0], card.ErrInvalidArgument)
		}

		d, err := deck.New(deck.WithLogger(log))
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for i := 0; i < n; i++ {
			c, err := d.Draw()
			if err != nil {
				return fmt.Errorf("draw %d of %d: %w", i+1, n, err)
			}
			fmt.Fprintf(w, "%s  %s\n", faceString(c.Face()), colorize.HiBlackString("%s", c.FullName()))
		}
		fmt.Fprintf(w, "%d cards remain.\n", d.Remaining())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckShuffleCmd)
	deckCmd.AddCommand(deckDrawCmd)
}
