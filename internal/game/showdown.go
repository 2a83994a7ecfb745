package game

import (
	"sort"

	"github.com/dquillman/Q-Poker/internal/evaluator"
)

// HandResult describes one settled pot for consumers polling after a hand
type HandResult struct {
	Pot     Pot
	Winners []int
	Rank    evaluator.HandRank
}

// settle distributes every pot and closes the hand. With a single live hand
// left, the whole pot is awarded without revealing further cards; otherwise
// each side pot is evaluated independently among its eligible seats.
func (t *Table) settle() {
	t.Street = Showdown
	t.Acting = -1

	results := t.distributePots()
	for _, res := range results {
		t.logger.Info("pot settled",
			"amount", res.Pot.Amount,
			"winners", res.Winners,
			"rank", res.Rank.String())
	}

	for _, p := range t.Players {
		p.Bet = 0
		p.TotalBet = 0
	}

	t.HandActive = false
	t.checkEliminations()
}

// distributePots builds the side pots from committed totals and awards each
// one. Side pots are recomputed exactly once per showdown and discarded.
func (t *Table) distributePots() []HandResult {
	pots := BuildPots(t.Players)
	if len(pots) == 0 {
		pots = fallbackPot(t.Players)
	}

	results := make([]HandResult, 0, len(pots))
	for _, pot := range pots {
		if len(pot.Eligible) == 0 {
			// No live contender; return the chips to their committers
			// rather than leaving the pot undistributed.
			pot.Eligible = allSeats(t.Players)
		}
		res := t.awardPot(pot)
		results = append(results, res)
	}
	return results
}

// awardPot evaluates every eligible live hand against the board and splits
// the pot among the best. An odd remainder is paid one chip at a time in
// seat order, which keeps distribution deterministic.
func (t *Table) awardPot(pot Pot) HandResult {
	type contender struct {
		seat int
		rank evaluator.HandRank
	}

	contenders := make([]contender, 0, len(pot.Eligible))
	for _, seat := range pot.Eligible {
		p := t.Players[seat]
		if p.Folded {
			continue
		}
		if len(pot.Eligible) == 1 {
			// Uncontested pot: no evaluation, cards stay hidden.
			contenders = append(contenders, contender{seat: seat})
			break
		}
		contenders = append(contenders, contender{
			seat: seat,
			rank: evaluator.EvaluateHand(p.HoleCards, t.Board),
		})
	}

	if len(contenders) == 0 {
		// Every eligible seat folded; split among the eligible set so no
		// chips vanish.
		for _, seat := range pot.Eligible {
			contenders = append(contenders, contender{seat: seat})
		}
	}

	best := []contender{contenders[0]}
	for _, c := range contenders[1:] {
		switch c.rank.Compare(best[0].rank) {
		case 1:
			best = []contender{c}
		case 0:
			best = append(best, c)
		}
	}

	sort.Slice(best, func(i, j int) bool { return best[i].seat < best[j].seat })

	share := pot.Amount / len(best)
	remainder := pot.Amount % len(best)
	winners := make([]int, 0, len(best))
	for i, c := range best {
		amount := share
		if i < remainder {
			amount++
		}
		t.Players[c.seat].Chips += amount
		winners = append(winners, c.seat)
	}

	return HandResult{Pot: pot, Winners: winners, Rank: best[0].rank}
}

// checkEliminations marks broke scripted seats as eliminated for the rest of
// the session and ends the session when the controlled seat is broke.
// Elimination is deferred until the hand has fully settled.
func (t *Table) checkEliminations() {
	if t.HandActive {
		return
	}
	for _, p := range t.Players {
		if p.Chips > 0 || p.Eliminated {
			continue
		}
		if p.Controlled {
			if !t.SessionOver {
				t.SessionOver = true
				t.logger.Info("session over", "seat", p.Seat, "name", p.Name)
			}
			continue
		}
		p.Eliminated = true
		t.logger.Info("player eliminated", "seat", p.Seat, "name", p.Name)
	}
}

func allSeats(players []*Player) []int {
	seats := make([]int, 0, len(players))
	for _, p := range players {
		if p.TotalBet > 0 {
			seats = append(seats, p.Seat)
		}
	}
	return seats
}
