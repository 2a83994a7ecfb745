package game

// Decision is a policy recommendation for a scripted seat. Amount is the
// bet amount or raise increment where the action needs one.
type Decision struct {
	Action Action
	Amount int
}

// DecideScripted maps a scripted seat's personality traits and current hand
// strength into an action. It never fails: any missing data downgrades to
// checking when legal and folding otherwise, so a turn always produces an
// action.
func (t *Table) DecideScripted(seat int) Decision {
	p := t.Players[seat]
	facingBet := t.CurrentBet > p.Bet

	if len(p.HoleCards) != 2 {
		return t.safeDecision(facingBet)
	}

	strength := p.Estimate
	adjusted := clamp01(strength + t.positionOffset(seat))

	liveOpponents := t.inHandCount() - 1
	bluffing := liveOpponents <= 3 && strength < 0.5 &&
		t.rng.Float64() < p.Traits.BluffFrequency

	threshold := 0.3 + 0.4*p.Traits.Tightness

	if facingBet {
		toCall := t.CurrentBet - p.Bet
		if toCall > p.Chips {
			toCall = p.Chips
		}
		breakEven := float64(toCall) / float64(t.Pot()+toCall)
		goodOdds := adjusted > breakEven

		if adjusted <= threshold && !goodOdds && !bluffing {
			return Decision{Action: Fold}
		}
		if bluffing || t.rng.Float64() < p.Traits.Aggression {
			return t.raiseDecision(p, toCall)
		}
		return Decision{Action: Call}
	}

	if bluffing || (adjusted > threshold && t.rng.Float64() < p.Traits.Aggression) {
		return t.openDecision(p)
	}
	return Decision{Action: Check}
}

// ActScripted decides and applies an action for a scripted seat. Rejected
// decisions fall back deterministically to check, then fold, guaranteeing
// the turn terminates.
func (t *Table) ActScripted(seat int) (Action, int) {
	d := t.DecideScripted(seat)
	if amount, err := t.PerformAction(seat, d.Action, d.Amount); err == nil {
		return d.Action, amount
	}
	if amount, err := t.PerformAction(seat, Check, 0); err == nil {
		return Check, amount
	}
	amount, _ := t.PerformAction(seat, Fold, 0)
	return Fold, amount
}

// raiseDecision sizes a raise over a live bet, going all-in when the stack
// cannot cover a legal raise
func (t *Table) raiseDecision(p *Player, toCall int) Decision {
	increment := t.Pot() / 2
	if increment < t.MinRaise {
		increment = t.MinRaise
	}
	if toCall+increment >= p.Chips {
		return Decision{Action: AllIn}
	}
	return Decision{Action: Raise, Amount: increment}
}

// openDecision sizes an opening bet, or a raise when the blinds mean a bet
// is already on the table
func (t *Table) openDecision(p *Player) Decision {
	if t.CurrentBet > 0 {
		return t.raiseDecision(p, t.CurrentBet-p.Bet)
	}
	amount := t.Pot() / 2
	if amount < t.BigBlind {
		amount = t.BigBlind
	}
	if amount >= p.Chips {
		return Decision{Action: AllIn}
	}
	return Decision{Action: Bet, Amount: amount}
}

// safeDecision is the fallback arm for failed strength computation
func (t *Table) safeDecision(facingBet bool) Decision {
	if facingBet {
		return Decision{Action: Fold}
	}
	return Decision{Action: Check}
}

// positionOffset returns the fixed strength adjustment for table position.
// Seats are classified by distance from the button over the live seat count:
// the first third after the blinds is early (penalized), the final third is
// late (bonused). One definition, applied everywhere.
func (t *Table) positionOffset(seat int) float64 {
	live := 0
	for _, p := range t.Players {
		if !p.Eliminated {
			live++
		}
	}
	if live < 3 {
		return 0
	}

	// Distance 1 = small blind, live = button (a full lap, so the button
	// always classifies late).
	distance := ((seat - t.Button) + len(t.Players)*2) % len(t.Players)
	if distance == 0 {
		distance = len(t.Players)
	}
	pos := 0
	for i := 1; i <= distance; i++ {
		if !t.Players[(t.Button+i)%len(t.Players)].Eliminated {
			pos++
		}
	}

	switch {
	case pos <= live/3:
		return -0.1
	case pos > live-live/3:
		return 0.1
	default:
		return 0
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
