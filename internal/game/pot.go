package game

import "sort"

// Pot is a main or side pot with the set of seats eligible to win it
type Pot struct {
	Amount   int
	Eligible []int
}

// BuildPots constructs the main pot and any side pots from the players'
// committed totals. Seats are sorted by commitment ascending; each distinct
// level contributes (level - previous) chips from every seat at or above it,
// and exactly those seats are eligible. Folded seats fund pots but are never
// eligible.
func BuildPots(players []*Player) []Pot {
	// Distinct commitment levels, ascending.
	levelSet := make(map[int]bool)
	for _, p := range players {
		if p.TotalBet > 0 {
			levelSet[p.TotalBet] = true
		}
	}
	levels := make([]int, 0, len(levelSet))
	for level := range levelSet {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	pots := make([]Pot, 0, len(levels))
	previous := 0
	for _, level := range levels {
		pot := Pot{}
		for _, p := range players {
			if p.TotalBet >= level {
				pot.Amount += level - previous
				if !p.Folded {
					pot.Eligible = append(pot.Eligible, p.Seat)
				}
			}
		}
		if pot.Amount > 0 {
			pots = append(pots, pot)
		}
		previous = level
	}

	// Adjacent pots with identical eligibility collapse into one.
	return mergePots(pots)
}

// mergePots merges consecutive pots with the same eligible set
func mergePots(pots []Pot) []Pot {
	merged := make([]Pot, 0, len(pots))
	for _, pot := range pots {
		n := len(merged)
		if n > 0 && sameSeats(merged[n-1].Eligible, pot.Eligible) {
			merged[n-1].Amount += pot.Amount
			continue
		}
		merged = append(merged, pot)
	}
	return merged
}

func sameSeats(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// fallbackPot covers all non-folded committed chips in a single main pot.
// Used when side-pot derivation yields nothing distributable.
func fallbackPot(players []*Player) []Pot {
	pot := Pot{}
	for _, p := range players {
		pot.Amount += p.TotalBet
		if !p.Folded {
			pot.Eligible = append(pot.Eligible, p.Seat)
		}
	}
	if pot.Amount == 0 {
		return nil
	}
	return []Pot{pot}
}

// PotTotal returns the chips committed by all players this hand
func PotTotal(players []*Player) int {
	total := 0
	for _, p := range players {
		total += p.TotalBet
	}
	return total
}
