package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dquillman/Q-Poker/internal/advisor"
	"github.com/dquillman/Q-Poker/internal/deck"
	"github.com/dquillman/Q-Poker/internal/randutil"
)

// OddsCmd estimates equity for a two-card hand and prints the recommended
// action for the given pot and price.
type OddsCmd struct {
	Hole       string `arg:"" help:"Hole cards, e.g. 'AsKd'" required:""`
	Board      string `short:"b" help:"Community board cards (e.g. 'Td7s8h')"`
	Opponents  int    `short:"n" default:"1" help:"Number of opponents"`
	Pot        int    `default:"0" help:"Current pot size in chips"`
	ToCall     int    `default:"0" help:"Chips needed to call"`
	Iterations int    `short:"i" default:"10000" help:"Number of Monte Carlo iterations"`
	Seed       *int64 `help:"Random seed for reproducible results"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	adviceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))
)

func (c *OddsCmd) Run() error {
	hole, err := deck.ParseCards(splitCards(c.Hole))
	if err != nil {
		return fmt.Errorf("parsing hole cards: %w", err)
	}

	var board []deck.Card
	if c.Board != "" {
		board, err = deck.ParseCards(splitCards(c.Board))
		if err != nil {
			return fmt.Errorf("parsing board: %w", err)
		}
	}
	if err := validateNoDuplicates(hole, board); err != nil {
		return err
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	advice, err := advisor.OptimalAction(randutil.New(seed),
		hole, board, c.Opponents, c.Pot, c.ToCall, c.Iterations)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	if len(board) > 0 {
		fmt.Printf("%s\n%s\n\n", headerStyle.Render("board"), formatCards(board))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("equity"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		cardStyle.Render(formatCards(hole)),
		winStyle.Render(fmt.Sprintf("%.1f%%", advice.WinRate*100)),
		tieStyle.Render(fmt.Sprintf("%.1f%%", advice.TieRate*100)),
		winStyle.Render(fmt.Sprintf("%.1f%%", advice.Equity*100)))
	w.Flush()

	fmt.Printf("\n%s %s", headerStyle.Render("advice:"), adviceStyle.Render(advice.Action.String()))
	if advice.Amount > 0 {
		fmt.Printf(" %s", adviceStyle.Render(fmt.Sprintf("%d", advice.Amount)))
	}
	fmt.Printf("\n")
	if c.ToCall > 0 {
		fmt.Printf("break-even equity %.1f%% for %d to call into %d\n",
			advice.BreakEven*100, c.ToCall, c.Pot)
	}

	fmt.Printf("\n%d iterations in %v\n", c.Iterations, duration.Truncate(time.Millisecond))
	return nil
}

// splitCards turns compact input like "AsKd" into the space-separated form
// the deck parser takes.
func splitCards(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	var parts []string
	runes := []rune(s)
	for i := 0; i+1 < len(runes); i += 2 {
		parts = append(parts, string(runes[i:i+2]))
	}
	return strings.Join(parts, " ")
}

func validateNoDuplicates(hole, board []deck.Card) error {
	seen := make(map[deck.Card]bool)
	for _, group := range [][]deck.Card{board, hole} {
		for _, card := range group {
			if seen[card] {
				return fmt.Errorf("duplicate card: %s", card)
			}
			seen[card] = true
		}
	}
	return nil
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
