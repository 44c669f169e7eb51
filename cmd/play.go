package cmd

import (
	"fmt"
	"io"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/table"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one round of blackjack",
	Long: `Play deals a fresh shuffled deck to every player and the dealer.
Players take turns hitting or standing, then the dealer draws to 17.

A player's Ace counts as 11 only when it is the only Ace in the hand, so
a pair of Aces totals 2. The dealer always counts one Ace as 11 when that
does not bust.

Examples:
  blackjack play
  blackjack play --players 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		players, _ := cmd.Flags().GetInt("players")
		out := cmd.OutOrStdout()
		p := newPrompter(os.Stdin, out)

		if players == 0 {
			n, err := p.Players(cfg.MinPlayers, cfg.MaxPlayers)
			if err != nil {
				return err
			}
			players = n
		}
		if err := cfg.PlayerRange(players); err != nil {
			return err
		}

		d, err := deck.New(deck.WithLogger(log))
		if err != nil {
			return err
		}
		return playRound(out, p, d, players, log)
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().IntP("players", "p", 0, "Number of players (prompted when not set)")
}

// playRound runs a full round on d: deal, player turns, dealer turn,
// results.
func playRound(w io.Writer, p prompter, d *deck.Deck, players int, log *zap.SugaredLogger) error {
	r, err := table.NewRound(d, players, log)
	if err != nil {
		return fmt.Errorf("error dealing round: %w", err)
	}

	fmt.Fprintln(w)
	printDealerUp(w, r.Dealer())
	for i := 1; i <= r.Players(); i++ {
		s, _ := r.Seat(i)
		printSeat(w, s)
	}

	for i := 1; i <= r.Players(); i++ {
		if err := playSeat(w, p, r, i); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, colorize.CyanString("Dealer's turn"))
	if _, err := r.PlayDealer(); err != nil {
		return fmt.Errorf("error playing dealer hand: %w", err)
	}
	printDealer(w, r.Dealer())
	if r.Dealer().IsBust() {
		fmt.Fprintln(w, colorize.RedString("Dealer busts!"))
	}

	out, err := renderResults(r, r.Results())
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, out)
	return nil
}

func playSeat(w io.Writer, p prompter, r *table.Round, i int) error {
	s, err := r.Seat(i)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	printSeat(w, s)
	for s.Status == table.Playing {
		a, err := p.Action(i)
		if err != nil {
			return err
		}
		if a == actionStand {
			return r.Stand(i)
		}
		if _, _, err := r.Hit(i); err != nil {
			return fmt.Errorf("error hitting player %d: %w", i, err)
		}
		printSeat(w, s)
	}
	fmt.Fprintln(w, statusString(s.Status))
	return nil
}
