package game

import "github.com/dquillman/Q-Poker/internal/deck"

// Traits are the personality scalars driving a scripted seat's decisions.
// All values lie in [0,1].
type Traits struct {
	Tightness      float64 // higher folds more weak hands
	Aggression     float64 // preference for raising over calling
	BluffFrequency float64 // chance of raising a weak hand short-handed
}

// Player represents a seat at the table. The table exclusively owns all
// players; players reference each other only by seat index.
type Player struct {
	Seat       int
	Name       string
	Chips      int
	HoleCards  []deck.Card
	Controlled bool   // the one non-scripted participant
	Traits     Traits // ignored for the controlled seat

	// Per-round transient state, reset between streets.
	Bet   int // chips in front this round
	Acted bool

	// Per-hand state, reset between hands.
	TotalBet int // chips committed this hand
	Folded   bool
	AllIn    bool

	// Eliminated is permanent for the session.
	Eliminated bool

	// Estimate is the latest strength estimate for the seat's live hand,
	// refreshed whenever a new community card becomes known.
	Estimate float64
}

// CanAct returns true if the player can take an action this round
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn && !p.Eliminated
}

// InHand returns true if the player still holds a live hand
func (p *Player) InHand() bool {
	return !p.Folded && !p.Eliminated
}

// resetForHand clears per-hand state ahead of a new deal
func (p *Player) resetForHand() {
	p.HoleCards = nil
	p.Bet = 0
	p.TotalBet = 0
	p.Acted = false
	p.AllIn = false
	p.Folded = p.Eliminated
	p.Estimate = 0
}
