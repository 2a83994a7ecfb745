// Package session runs hands back to back on a single table until the
// controlled seat is broke or one stack holds all the chips. Presentation
// and persistence stay outside: collaborators observe through the table's
// notification hook and the Store interface.
package session

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/dquillman/Q-Poker/internal/game"
)

// Store persists the controlled seat's stack between hands. Implementations
// translate chips to whatever session currency the host application uses.
// The session consults it only at hand boundaries, never mid-hand.
type Store interface {
	// LoadStack returns the saved stack for a player, or ok=false when
	// nothing has been saved yet.
	LoadStack(name string) (chips int, ok bool, err error)
	SaveStack(name string, chips int) error
}

// Actor supplies decisions for the controlled seat. Scripted seats never
// consult it. The session commits the decision itself and falls back to
// check, then fold, when the decision is rejected, so a hand always makes
// progress.
type Actor interface {
	Decide(t *game.Table, seat int) (game.Action, int)
}

// ActorFunc adapts a function to the Actor interface.
type ActorFunc func(t *game.Table, seat int) (game.Action, int)

func (f ActorFunc) Decide(t *game.Table, seat int) (game.Action, int) { return f(t, seat) }

// Config carries session parameters. Zero values get sensible defaults from
// New: a real clock, the default logger, no delay, no hand cap.
type Config struct {
	SmallBlind int
	BigBlind   int

	// MaxHands caps the session length; zero means play until the session
	// ends on its own.
	MaxHands int

	// ActionDelay paces scripted actions so an attached listener can
	// animate. Measured on Clock, so tests advance it synthetically.
	ActionDelay time.Duration

	// Controlled decides for the controlled seat. When nil the controlled
	// seat plays itself through the same policy as scripted seats.
	Controlled Actor

	Store  Store
	Clock  quartz.Clock
	Logger *log.Logger
}

// Session owns a table across hands.
type Session struct {
	table  *game.Table
	cfg    Config
	clock  quartz.Clock
	logger *log.Logger

	controlled int // seat index, -1 when no seat is controlled
	hands      int
}

// New builds a session over the given seats. When a Store is configured and
// holds a saved stack for the controlled seat, that stack replaces the
// seat's starting chips.
func New(rng *rand.Rand, players []*game.Player, cfg Config) (*Session, error) {
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	logger := cfg.Logger.WithPrefix("session")

	controlled := -1
	for i, p := range players {
		if p.Controlled {
			controlled = i
			break
		}
	}

	if cfg.Store != nil && controlled >= 0 {
		p := players[controlled]
		chips, ok, err := cfg.Store.LoadStack(p.Name)
		if err != nil {
			return nil, fmt.Errorf("loading stack for %s: %w", p.Name, err)
		}
		if ok {
			logger.Info("restored stack", "player", p.Name, "chips", chips)
			p.Chips = chips
		}
	}

	table := game.NewTable(rng, cfg.Logger, cfg.SmallBlind, cfg.BigBlind, players)
	return &Session{
		table:      table,
		cfg:        cfg,
		clock:      cfg.Clock,
		logger:     logger,
		controlled: controlled,
	}, nil
}

// Table exposes the underlying table so hosts can attach listeners and poll
// state between actions.
func (s *Session) Table() *game.Table { return s.table }

// HandsPlayed reports how many hands have completed.
func (s *Session) HandsPlayed() int { return s.hands }

// Run plays hands until the session is over, the hand cap is reached, or
// the context is cancelled. The controlled seat's stack is saved at every
// hand boundary.
func (s *Session) Run(ctx context.Context) error {
	for !s.table.SessionOver && s.table.CanStartHand() {
		if s.cfg.MaxHands > 0 && s.hands >= s.cfg.MaxHands {
			s.logger.Info("hand cap reached", "hands", s.hands)
			return nil
		}
		if err := s.playHand(ctx); err != nil {
			return err
		}
	}
	s.logger.Info("session over", "hands", s.hands)
	return nil
}

func (s *Session) playHand(ctx context.Context) error {
	if err := s.table.StartHand(); err != nil {
		return fmt.Errorf("starting hand %d: %w", s.hands+1, err)
	}
	s.logger.Info("hand started", "hand", s.table.HandNum, "button", s.table.Button)

	for s.table.HandActive {
		if err := s.pace(ctx); err != nil {
			return err
		}

		seat := s.table.Acting
		if seat == s.controlled && s.cfg.Controlled != nil {
			s.actControlled(seat)
			continue
		}
		s.table.ActScripted(seat)
	}

	s.hands++
	s.logger.Info("hand complete",
		"hand", s.table.HandNum,
		"board", s.table.Board,
		"stacks", stacks(s.table))

	if err := s.snapshot(); err != nil {
		return err
	}
	return ctx.Err()
}

// actControlled commits the controlled actor's decision, downgrading to
// check and then fold when it is illegal.
func (s *Session) actControlled(seat int) {
	kind, amount := s.cfg.Controlled.Decide(s.table, seat)
	_, err := s.table.PerformAction(seat, kind, amount)
	if err == nil {
		return
	}
	s.logger.Warn("controlled action rejected", "seat", seat, "action", kind, "error", err)
	if _, err := s.table.PerformAction(seat, game.Check, 0); err != nil {
		_, _ = s.table.PerformAction(seat, game.Fold, 0)
	}
}

// pace waits out the configured action delay on the session clock.
func (s *Session) pace(ctx context.Context) error {
	if s.cfg.ActionDelay <= 0 {
		return ctx.Err()
	}
	timer := s.clock.NewTimer(s.cfg.ActionDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// snapshot saves the controlled stack through the store, if both exist.
func (s *Session) snapshot() error {
	if s.cfg.Store == nil || s.controlled < 0 {
		return nil
	}
	p := s.table.Players[s.controlled]
	if err := s.cfg.Store.SaveStack(p.Name, p.Chips); err != nil {
		return fmt.Errorf("saving stack for %s: %w", p.Name, err)
	}
	return nil
}

func stacks(t *game.Table) []int {
	out := make([]int, len(t.Players))
	for i, p := range t.Players {
		out[i] = p.Chips
	}
	return out
}
