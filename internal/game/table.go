package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/dquillman/Q-Poker/internal/deck"
	"github.com/dquillman/Q-Poker/internal/equity"
)

// estimateIterations is the per-street budget for refreshing seat equity
// estimates. Interactive refreshes stay cheap; deep analysis goes through
// the equity package directly.
const estimateIterations = 200

// ActionListener is notified after every committed action. The engine
// behaves identically whether or not a listener is attached.
type ActionListener func(seat int, action Action, amount int)

// Table is the single owned aggregate for one running game. It holds all
// seats, the current hand state and the betting state; all mutation goes
// through its exported operations.
type Table struct {
	Players       []*Player
	Button        int
	Street        Street
	Board         []deck.Card
	CurrentBet    int
	MinRaise      int
	LastAggressor int
	Acting        int
	SmallBlind    int
	BigBlind      int
	HandNum       int
	HandActive    bool
	SessionOver   bool

	deck     *deck.Deck
	rng      *rand.Rand
	logger   *log.Logger
	listener ActionListener
}

// NewTable creates a table with the given seats. The RNG is the single
// randomness source for shuffling; pass a seeded one for reproducibility.
func NewTable(rng *rand.Rand, logger *log.Logger, smallBlind, bigBlind int, players []*Player) *Table {
	for i, p := range players {
		p.Seat = i
	}
	return &Table{
		Players:       players,
		Button:        len(players) - 1, // first rotation lands on seat 0
		SmallBlind:    smallBlind,
		BigBlind:      bigBlind,
		LastAggressor: -1,
		Acting:        -1,
		rng:           rng,
		logger:        logger.WithPrefix("table"),
	}
}

// SetListener attaches the post-action notification hook
func (t *Table) SetListener(fn ActionListener) {
	t.listener = fn
}

// Pot returns the chips committed by all seats this hand
func (t *Table) Pot() int {
	return PotTotal(t.Players)
}

// CanStartHand returns true if at least two non-eliminated seats hold chips
func (t *Table) CanStartHand() bool {
	if t.SessionOver || t.HandActive {
		return false
	}
	withChips := 0
	for _, p := range t.Players {
		if !p.Eliminated && p.Chips > 0 {
			withChips++
		}
	}
	return withChips >= 2
}

// StartHand begins a new hand: rotates the dealer button past eliminated
// seats, deals two cards per live seat, posts blinds and sets the first seat
// to act. Collaborators poll table state afterwards.
func (t *Table) StartHand() error {
	if !t.CanStartHand() {
		return fmt.Errorf("cannot start hand: %w", ErrHandNotActive)
	}

	t.HandNum++
	t.Street = Preflop
	t.Board = t.Board[:0]
	t.CurrentBet = 0
	t.MinRaise = t.BigBlind
	t.LastAggressor = -1
	t.HandActive = true

	for _, p := range t.Players {
		p.resetForHand()
	}

	t.Button = t.nextLiveSeat(t.Button + 1)

	t.deck = deck.New(t.rng)
	t.deck.Shuffle()
	for _, p := range t.Players {
		if !p.Folded {
			p.HoleCards = t.deck.DealN(2)
		}
	}

	sb := t.nextLiveSeat(t.Button + 1)
	bb := t.nextLiveSeat(sb + 1)
	t.postBlind(sb, t.SmallBlind)
	t.postBlind(bb, t.BigBlind)
	t.CurrentBet = t.BigBlind

	t.Acting = t.nextToAct(bb + 1)
	t.refreshEstimates()

	t.logger.Info("hand started",
		"hand", t.HandNum,
		"button", t.Button,
		"sb", sb,
		"bb", bb,
		"acting", t.Acting)

	// Everyone can be all-in from the blinds alone.
	if t.Acting == -1 || t.roundComplete() {
		t.advanceStreet()
	}
	return nil
}

// postBlind posts a forced bet capped at the seat's stack. A blind that
// consumes the whole stack puts the seat all-in and marks it as having acted.
func (t *Table) postBlind(seat, amount int) {
	p := t.Players[seat]
	posted := amount
	if posted >= p.Chips {
		posted = p.Chips
		p.AllIn = true
		p.Acted = true
	}
	p.Chips -= posted
	p.Bet = posted
	p.TotalBet = posted
}

// nextLiveSeat returns the first non-eliminated seat at or after the given
// position, wrapping around the table
func (t *Table) nextLiveSeat(from int) int {
	n := len(t.Players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if !t.Players[seat].Eliminated {
			return seat
		}
	}
	return -1
}

// nextToAct returns the first seat at or after the given position that can
// still act this round, or -1 when no such seat exists
func (t *Table) nextToAct(from int) int {
	n := len(t.Players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if t.Players[seat].CanAct() {
			return seat
		}
	}
	return -1
}

// inHandCount returns the number of seats still holding live hands
func (t *Table) inHandCount() int {
	count := 0
	for _, p := range t.Players {
		if p.InHand() {
			count++
		}
	}
	return count
}

// advanceStreet moves the hand to the next phase: burn and deal the flop,
// turn or river, reset round betting state and refresh equity estimates.
// With one live hand left it settles immediately.
func (t *Table) advanceStreet() {
	if t.inHandCount() <= 1 {
		t.settle()
		return
	}

	for _, p := range t.Players {
		p.Bet = 0
		p.Acted = false
	}
	t.CurrentBet = 0
	t.MinRaise = t.BigBlind
	t.LastAggressor = -1

	switch t.Street {
	case Preflop:
		t.Street = Flop
		t.deck.Burn()
		t.Board = append(t.Board, t.deck.DealN(3)...)
	case Flop:
		t.Street = Turn
		t.deck.Burn()
		t.Board = append(t.Board, t.deck.DealN(1)...)
	case Turn:
		t.Street = River
		t.deck.Burn()
		t.Board = append(t.Board, t.deck.DealN(1)...)
	case River:
		t.settle()
		return
	case Showdown:
		return
	}

	t.refreshEstimates()
	t.logger.Debug("street advanced", "street", t.Street, "board", t.Board, "pot", t.Pot())

	t.Acting = t.nextToAct(t.Button + 1)
	if t.Acting == -1 {
		// Everyone remaining is all-in; run out the board.
		t.advanceStreet()
	}
}

// refreshEstimates recomputes the strength estimate of every live hand.
// Preflop uses the closed-form table; later streets a cheap simulation.
func (t *Table) refreshEstimates() {
	live := t.inHandCount()
	for _, p := range t.Players {
		if !p.InHand() || len(p.HoleCards) != 2 {
			continue
		}
		if len(t.Board) == 0 {
			p.Estimate = equity.PreflopStrength(p.HoleCards[0], p.HoleCards[1])
			continue
		}
		opponents := live - 1
		if opponents < 1 {
			opponents = 1
		}
		res := equity.Calculate(t.rng, p.HoleCards, t.Board, opponents, estimateIterations)
		p.Estimate = res.Equity()
	}
}

// notify invokes the action listener, if any
func (t *Table) notify(seat int, action Action, amount int) {
	if t.listener != nil {
		t.listener(seat, action, amount)
	}
}
