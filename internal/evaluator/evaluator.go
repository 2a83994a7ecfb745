package evaluator

import (
	"sort"

	"github.com/dquillman/Q-Poker/internal/deck"
)

// Evaluate returns the best achievable HandRank over all 5-card combinations
// of the given cards. It accepts 5 to 7 cards; with fewer than 5 the result
// is the zero HandRank and callers should use the preflop heuristic instead.
//
// The result is independent of input card order.
func Evaluate(cards []deck.Card) HandRank {
	if len(cards) < 5 {
		return HandRank{}
	}

	// Per-rank and per-suit counts, computed once.
	var rankCounts [15]int // indexed by rank value 2-14
	var suitCounts [4]int
	var suitRanks [4][15]bool
	for _, c := range cards {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
		suitRanks[c.Suit][c.Rank] = true
	}

	flushSuit := -1
	for suit, count := range suitCounts {
		if count >= 5 {
			flushSuit = suit
			break
		}
	}

	// Straight flush: only cards of the flush suit participate.
	if flushSuit >= 0 {
		if high := straightHigh(suitRanks[flushSuit]); high > 0 {
			if high == int(deck.Ace) {
				return HandRank{Category: RoyalFlush}
			}
			return HandRank{Category: StraightFlush, Tiebreaks: []int{high}}
		}
	}

	// Four of a kind: quad value then best kicker.
	if quad := highestWithCount(rankCounts, 4); quad > 0 {
		kicker := 0
		for r := int(deck.Ace); r >= int(deck.Two); r-- {
			if r != quad && rankCounts[r] > 0 {
				kicker = r
				break
			}
		}
		return HandRank{Category: FourOfAKind, Tiebreaks: []int{quad, kicker}}
	}

	// Full house: best trips plus best remaining pair (a second set of
	// trips counts as the pair).
	if trips := highestWithAtLeast(rankCounts, 3); trips > 0 {
		pair := 0
		for r := int(deck.Ace); r >= int(deck.Two); r-- {
			if r != trips && rankCounts[r] >= 2 {
				pair = r
				break
			}
		}
		if pair > 0 {
			return HandRank{Category: FullHouse, Tiebreaks: []int{trips, pair}}
		}
	}

	// Flush: five highest ranks of the flush suit, descending.
	if flushSuit >= 0 {
		values := make([]int, 0, 5)
		for r := int(deck.Ace); r >= int(deck.Two) && len(values) < 5; r-- {
			if suitRanks[flushSuit][r] {
				values = append(values, r)
			}
		}
		return HandRank{Category: Flush, Tiebreaks: values}
	}

	// Straight: any five consecutive distinct ranks, wheel included.
	var present [15]bool
	for r := int(deck.Two); r <= int(deck.Ace); r++ {
		present[r] = rankCounts[r] > 0
	}
	if high := straightHigh(present); high > 0 {
		return HandRank{Category: Straight, Tiebreaks: []int{high}}
	}

	// Three of a kind: trip value then two kickers.
	if trips := highestWithAtLeast(rankCounts, 3); trips > 0 {
		kickers := topKickers(rankCounts, 2, trips)
		return HandRank{Category: ThreeOfAKind, Tiebreaks: append([]int{trips}, kickers...)}
	}

	// Pairs.
	pairs := make([]int, 0, 3)
	for r := int(deck.Ace); r >= int(deck.Two); r-- {
		if rankCounts[r] == 2 {
			pairs = append(pairs, r)
		}
	}

	switch {
	case len(pairs) >= 2:
		kickers := topKickers(rankCounts, 1, pairs[0], pairs[1])
		return HandRank{Category: TwoPair, Tiebreaks: append([]int{pairs[0], pairs[1]}, kickers...)}
	case len(pairs) == 1:
		kickers := topKickers(rankCounts, 3, pairs[0])
		return HandRank{Category: OnePair, Tiebreaks: append([]int{pairs[0]}, kickers...)}
	}

	// High card: five highest distinct values, descending.
	values := make([]int, 0, len(cards))
	for _, c := range cards {
		values = append(values, c.Value())
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	if len(values) > 5 {
		values = values[:5]
	}
	return HandRank{Category: HighCard, Tiebreaks: values}
}

// EvaluateHand evaluates the union of hole and community cards
func EvaluateHand(hole, community []deck.Card) HandRank {
	all := make([]deck.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)
	return Evaluate(all)
}

// Compare compares two HandRanks; see HandRank.Compare
func Compare(a, b HandRank) int {
	return a.Compare(b)
}

// straightHigh returns the high card of the best straight in the rank set,
// or 0 when none exists. The wheel A-2-3-4-5 ranks with 5 as the high card.
func straightHigh(present [15]bool) int {
	for high := int(deck.Ace); high >= int(deck.Six); high-- {
		run := true
		for r := high; r > high-5; r-- {
			if !present[r] {
				run = false
				break
			}
		}
		if run {
			return high
		}
	}
	// Wheel: Ace plays low.
	if present[int(deck.Ace)] && present[2] && present[3] && present[4] && present[5] {
		return int(deck.Five)
	}
	return 0
}

// highestWithCount returns the highest rank with exactly n cards, or 0
func highestWithCount(counts [15]int, n int) int {
	for r := int(deck.Ace); r >= int(deck.Two); r-- {
		if counts[r] == n {
			return r
		}
	}
	return 0
}

// highestWithAtLeast returns the highest rank with at least n cards, or 0
func highestWithAtLeast(counts [15]int, n int) int {
	for r := int(deck.Ace); r >= int(deck.Two); r-- {
		if counts[r] >= n {
			return r
		}
	}
	return 0
}

// topKickers returns the n highest ranks present, descending, excluding the
// given ranks
func topKickers(counts [15]int, n int, exclude ...int) []int {
	kickers := make([]int, 0, n)
	for r := int(deck.Ace); r >= int(deck.Two) && len(kickers) < n; r-- {
		if counts[r] == 0 {
			continue
		}
		skip := false
		for _, ex := range exclude {
			if r == ex {
				skip = true
				break
			}
		}
		if !skip {
			kickers = append(kickers, r)
		}
	}
	return kickers
}
