package game

import "errors"

// Street represents the betting round within a hand
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin"}[a]
}

// Action validation errors. A rejected action leaves table state unchanged.
var (
	ErrHandNotActive     = errors.New("no hand in progress")
	ErrNotYourTurn       = errors.New("not this seat's turn to act")
	ErrCannotCheck       = errors.New("cannot check facing a live bet")
	ErrCannotBet         = errors.New("cannot bet, a bet is already in front")
	ErrCannotRaise       = errors.New("cannot raise, no bet to raise")
	ErrBetTooSmall       = errors.New("bet below the big blind")
	ErrRaiseTooSmall     = errors.New("raise below the minimum raise")
	ErrInsufficientChips = errors.New("insufficient chips")
	ErrInvalidSeat       = errors.New("invalid seat index")
	ErrInvalidAction     = errors.New("invalid action kind")
)
