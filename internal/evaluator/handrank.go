package evaluator

// Category is the ordinal classification of a poker hand.
// Higher is stronger.
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable hand description
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandRank is the derived classification of a 5+ card set: a category
// ordinal plus the tie-break values used to order hands within the category.
// It is recomputed on demand and never cached across board changes.
type HandRank struct {
	Category  Category
	Tiebreaks []int
}

// Compare returns 1 if h is stronger than other, -1 if weaker, 0 on an exact
// tie. Comparison is lexicographic: category first, then pairwise tie-break
// elements with missing elements treated as zero.
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		if h.Category > other.Category {
			return 1
		}
		return -1
	}

	n := len(h.Tiebreaks)
	if len(other.Tiebreaks) > n {
		n = len(other.Tiebreaks)
	}
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(h.Tiebreaks) {
			a = h.Tiebreaks[i]
		}
		if i < len(other.Tiebreaks) {
			b = other.Tiebreaks[i]
		}
		if a != b {
			if a > b {
				return 1
			}
			return -1
		}
	}
	return 0
}

// String returns the category name
func (h HandRank) String() string {
	return h.Category.String()
}
