// Package advisor turns equity estimates into action recommendations. It is
// a pure query layer: nothing here mutates table state, so the same inputs
// always produce the same advice for a given RNG.
package advisor

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/dquillman/Q-Poker/internal/deck"
	"github.com/dquillman/Q-Poker/internal/equity"
	"github.com/dquillman/Q-Poker/internal/game"
)

// Equity edge over the break-even point before the advisor recommends
// putting more chips in rather than calling.
const raiseEdge = 0.15

// Equity above which an unraised pot is worth betting into.
const betThreshold = 0.55

// Advice is a recommendation for a single decision point.
type Advice struct {
	Action game.Action
	// Amount is a suggested size for Bet and Raise advice, zero otherwise.
	Amount int
	// Equity is the simulated share of the pot: wins plus half of ties.
	Equity    float64
	WinRate   float64
	TieRate   float64
	BreakEven float64
}

// OptimalAction recommends an action for a hand against a number of unknown
// opponents, given the pot and the amount needed to call. Equity comes from
// Monte Carlo simulation over the supplied RNG; BreakEven is the pot-odds
// floor toCall/(pot+toCall). With no bet to call BreakEven is zero and the
// choice is between checking and betting.
func OptimalAction(rng *rand.Rand, hole, board []deck.Card, opponents, pot, toCall, iterations int) (Advice, error) {
	if len(hole) != 2 {
		return Advice{}, fmt.Errorf("need exactly 2 hole cards, got %d", len(hole))
	}
	if len(board) > 5 {
		return Advice{}, fmt.Errorf("board cannot exceed 5 cards, got %d", len(board))
	}
	if opponents < 1 {
		return Advice{}, fmt.Errorf("need at least 1 opponent, got %d", opponents)
	}
	if toCall < 0 || pot < 0 {
		return Advice{}, fmt.Errorf("pot and toCall cannot be negative")
	}

	result := equity.Calculate(rng, hole, board, opponents, iterations)
	advice := Advice{
		Equity:  result.Equity(),
		WinRate: result.WinRate(),
		TieRate: result.TieRate(),
	}

	if toCall == 0 {
		if advice.Equity > betThreshold {
			advice.Action = game.Bet
			advice.Amount = suggestedBet(pot)
		} else {
			advice.Action = game.Check
		}
		return advice, nil
	}

	advice.BreakEven = float64(toCall) / float64(pot+toCall)
	switch {
	case advice.Equity < advice.BreakEven:
		advice.Action = game.Fold
	case advice.Equity >= advice.BreakEven+raiseEdge:
		advice.Action = game.Raise
		advice.Amount = suggestedBet(pot + toCall)
	default:
		advice.Action = game.Call
	}
	return advice, nil
}

// suggestedBet is half the pot, floored at one chip so the advice is always
// a legal positive size.
func suggestedBet(pot int) int {
	amount := pot / 2
	if amount < 1 {
		amount = 1
	}
	return amount
}
