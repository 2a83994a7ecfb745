package game

import "fmt"

// PerformAction validates and applies an action for the acting seat.
// On success it returns the chips actually committed (normalized for
// display); on rejection the table state is unchanged.
func (t *Table) PerformAction(seat int, kind Action, amount int) (int, error) {
	if !t.HandActive || t.Street == Showdown {
		return 0, ErrHandNotActive
	}
	if seat < 0 || seat >= len(t.Players) {
		return 0, ErrInvalidSeat
	}
	if seat != t.Acting {
		return 0, ErrNotYourTurn
	}

	p := t.Players[seat]
	committed := 0
	applied := kind

	switch kind {
	case Fold:
		p.Folded = true
		p.Bet = 0
		p.Acted = true
		if t.LastAggressor == seat {
			t.LastAggressor = -1
		}

	case Check:
		if p.Bet != t.CurrentBet {
			return 0, fmt.Errorf("%w: need %d more", ErrCannotCheck, t.CurrentBet-p.Bet)
		}
		p.Acted = true

	case Call:
		toCall := t.CurrentBet - p.Bet
		if toCall > p.Chips {
			toCall = p.Chips
		}
		p.Chips -= toCall
		p.Bet += toCall
		p.TotalBet += toCall
		p.Acted = true
		committed = toCall
		if p.Chips == 0 {
			p.AllIn = true
			applied = AllIn
		}

	case Bet:
		if t.CurrentBet != 0 {
			return 0, ErrCannotBet
		}
		if amount > p.Chips {
			return 0, ErrInsufficientChips
		}
		if amount < t.BigBlind && amount != p.Chips {
			return 0, fmt.Errorf("%w: minimum %d", ErrBetTooSmall, t.BigBlind)
		}
		p.Chips -= amount
		p.Bet = amount
		p.TotalBet += amount
		committed = amount
		t.CurrentBet = amount
		t.MinRaise = amount
		t.LastAggressor = seat
		t.reopenAction(seat)
		if p.Chips == 0 {
			p.AllIn = true
			applied = AllIn
		}

	case Raise:
		if t.CurrentBet == 0 {
			return 0, ErrCannotRaise
		}
		toCall := t.CurrentBet - p.Bet
		total := toCall + amount
		if total > p.Chips {
			return 0, ErrInsufficientChips
		}
		if amount < t.MinRaise && total != p.Chips {
			return 0, fmt.Errorf("%w: minimum %d", ErrRaiseTooSmall, t.MinRaise)
		}
		prev := t.CurrentBet
		p.Chips -= total
		p.Bet += total
		p.TotalBet += total
		committed = total
		if p.Bet > prev {
			t.MinRaise = p.Bet - prev
			t.CurrentBet = p.Bet
			t.LastAggressor = seat
			t.reopenAction(seat)
		} else {
			// The whole stack only covered the call; nothing was raised.
			p.Acted = true
		}
		if p.Chips == 0 {
			p.AllIn = true
			applied = AllIn
		}

	case AllIn:
		stake := p.Chips
		p.Chips = 0
		p.Bet += stake
		p.TotalBet += stake
		p.AllIn = true
		p.Acted = true
		committed = stake
		if p.Bet > t.CurrentBet {
			// The all-in raises: record aggression and reopen action.
			t.MinRaise = p.Bet - t.CurrentBet
			t.CurrentBet = p.Bet
			t.LastAggressor = seat
			t.reopenAction(seat)
		}
		// A short all-in below the current bet does not reopen action.

	default:
		return 0, ErrInvalidAction
	}

	t.logger.Debug("action",
		"seat", seat,
		"name", p.Name,
		"action", applied,
		"amount", committed,
		"pot", t.Pot())
	t.notify(seat, applied, committed)

	t.Acting = t.nextToAct(t.Acting + 1)
	if t.Acting == -1 || t.roundComplete() {
		t.advanceStreet()
	}
	t.checkEliminations()
	return committed, nil
}

// reopenAction clears the acted flag of every other seat that can still
// respond to new aggression, then marks the aggressor as acted
func (t *Table) reopenAction(aggressor int) {
	for _, p := range t.Players {
		if p.CanAct() {
			p.Acted = false
		}
	}
	t.Players[aggressor].Acted = true
}

// roundComplete reports whether the current betting round is finished:
// at most one live hand remains, or every seat that can act has acted and
// matched the current bet. All-in seats are exempt from matching.
func (t *Table) roundComplete() bool {
	if t.inHandCount() <= 1 {
		return true
	}
	for _, p := range t.Players {
		if !p.CanAct() {
			continue
		}
		if !p.Acted {
			return false
		}
		if p.Bet != t.CurrentBet {
			return false
		}
	}
	return true
}
