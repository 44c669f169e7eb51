package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

type action int

const (
	actionHit action = iota
	actionStand
)

// prompter asks the people at the table for their choices.
type prompter interface {
	Players(min, max int) (int, error)
	Action(seat int) (action, error)
}

// newPrompter picks interactive pterm prompts on a terminal and a plain
// line reader otherwise.
func newPrompter(in *os.File, out io.Writer) prompter {
	if term.IsTerminal(int(in.Fd())) {
		return ttyPrompter{}
	}
	return newLinePrompter(in, out)
}

type ttyPrompter struct{}

func (ttyPrompter) Players(min, max int) (int, error) {
	for {
		answer, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("How many players (%d-%d)?", min, max)).
			Show()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil && n >= min && n <= max {
			return n, nil
		}
		pterm.Warning.Printfln("Please enter a number between %d and %d.", min, max)
	}
}

func (ttyPrompter) Action(seat int) (action, error) {
	selected, err := pterm.DefaultInteractiveSelect.
		WithDefaultText(fmt.Sprintf("Player %d, hit or stand?", seat)).
		WithOptions([]string{"Hit", "Stand"}).
		Show()
	if err != nil {
		return 0, err
	}
	if selected == "Hit" {
		return actionHit, nil
	}
	return actionStand, nil
}

// linePrompter reads one answer per line, re-asking on bad input.
type linePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *linePrompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *linePrompter) Players(min, max int) (int, error) {
	for {
		answer, err := p.ask(fmt.Sprintf("How many players (%d-%d)? ", min, max))
		if err != nil {
			return 0, fmt.Errorf("error reading number of players: %w", err)
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= min && n <= max {
			return n, nil
		}
		fmt.Fprintf(p.out, "Please enter a number between %d and %d.\n", min, max)
	}
}

func (p *linePrompter) Action(seat int) (action, error) {
	for {
		answer, err := p.ask(fmt.Sprintf("Player %d, (h)it or (s)tand? ", seat))
		if err != nil {
			return 0, fmt.Errorf("error reading action for player %d: %w", seat, err)
		}
		switch strings.ToLower(answer) {
		case "h", "hit":
			return actionHit, nil
		case "s", "stand", "stay":
			return actionStand, nil
		}
		fmt.Fprintln(p.out, "Please type h to hit or s to stand.")
	}
}
