// Package equity estimates win/tie probability for a hold'em hand against
// random opponents by Monte Carlo simulation over the remaining board.
package equity

import (
	"context"
	"math"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dquillman/Q-Poker/internal/deck"
	"github.com/dquillman/Q-Poker/internal/evaluator"
	"github.com/dquillman/Q-Poker/internal/randutil"
)

// parallelThreshold is the iteration budget above which the worker pool
// pays for its overhead.
const parallelThreshold = 2000

// Result holds the outcome counts of a simulation
type Result struct {
	Wins  int
	Ties  int
	Total int
}

// WinRate returns the win rate (0.0 to 1.0)
func (r Result) WinRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Total)
}

// TieRate returns the tie rate (0.0 to 1.0)
func (r Result) TieRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Ties) / float64(r.Total)
}

// Equity returns the overall equity (0.0 to 1.0).
// Wins count as 1.0, ties count as 0.5.
func (r Result) Equity() float64 {
	if r.Total == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(r.Total)
}

// ConfidenceInterval returns the 95% confidence interval for the equity
// estimate, using the standard error for a binomial proportion.
func (r Result) ConfidenceInterval() (lower, upper float64) {
	if r.Total == 0 {
		return 0, 0
	}
	eq := r.Equity()
	se := math.Sqrt(eq * (1.0 - eq) / float64(r.Total))
	margin := 1.96 * se
	return math.Max(0, eq-margin), math.Min(1, eq+margin)
}

// Calculate estimates equity for a 2-card hand and 0-4 known community cards
// against the given number of opponents holding random cards.
//
// The simulator has no persistent state; independent estimates are safe to
// run concurrently. Large iteration budgets are split across workers.
func Calculate(rng *rand.Rand, hole []deck.Card, board []deck.Card, opponents, iterations int) Result {
	if len(hole) != 2 || len(board) > 5 || iterations <= 0 {
		return Result{}
	}
	if opponents < 1 {
		opponents = 1
	}

	if iterations >= parallelThreshold {
		return calculateParallel(rng, hole, board, opponents, iterations)
	}
	return simulate(rng, hole, board, opponents, iterations)
}

// simulate runs the sequential Monte Carlo loop
func simulate(rng *rand.Rand, hole []deck.Card, board []deck.Card, opponents, iterations int) Result {
	known := make([]deck.Card, 0, len(hole)+len(board))
	known = append(known, hole...)
	known = append(known, board...)

	finalBoard := make([]deck.Card, 5)
	oppHole := make([]deck.Card, 2)

	var res Result
	for i := 0; i < iterations; i++ {
		d := deck.NewExcluding(rng, known...)
		d.Shuffle()

		copy(finalBoard, board)
		for j := len(board); j < 5; j++ {
			card, ok := d.Deal()
			if !ok {
				return res
			}
			finalBoard[j] = card
		}

		heroRank := evaluator.EvaluateHand(hole, finalBoard)

		wins, tied := true, false
		for o := 0; o < opponents; o++ {
			c1, ok1 := d.Deal()
			c2, ok2 := d.Deal()
			if !ok1 || !ok2 {
				wins = false
				break
			}
			oppHole[0], oppHole[1] = c1, c2

			oppRank := evaluator.EvaluateHand(oppHole, finalBoard)
			switch heroRank.Compare(oppRank) {
			case -1:
				wins = false
			case 0:
				tied = true
			}
			if !wins {
				break
			}
		}

		if wins {
			if tied {
				res.Ties++
			} else {
				res.Wins++
			}
		}
		res.Total++
	}
	return res
}

// calculateParallel splits the iteration budget across workers with
// independent RNGs and sums their counts.
func calculateParallel(rng *rand.Rand, hole []deck.Card, board []deck.Card, opponents, iterations int) Result {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}

	perWorker := iterations / workers
	remainder := iterations % workers

	g, ctx := errgroup.WithContext(context.Background())
	results := make(chan Result, workers)

	for w := 0; w < workers; w++ {
		n := perWorker
		if w < remainder {
			n++
		}
		seed := rng.Int64()

		g.Go(func() error {
			res := simulate(randutil.New(seed), hole, board, opponents, n)
			select {
			case results <- res:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	var total Result
	for w := 0; w < workers; w++ {
		res := <-results
		total.Wins += res.Wins
		total.Ties += res.Ties
		total.Total += res.Total
	}
	_ = g.Wait()
	return total
}
