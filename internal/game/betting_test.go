package game

import (
	"errors"
	"testing"
)

func TestCheckFacingBetRejected(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 1, 500, 500, 500, 500)
	if err := tbl.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	// Seat 3 faces the big blind and may not check.
	stackBefore := tbl.Players[3].Chips
	_, err := tbl.PerformAction(3, Check, 0)
	if !errors.Is(err, ErrCannotCheck) {
		t.Fatalf("expected ErrCannotCheck, got %v", err)
	}
	// Rejection leaves state unchanged.
	if tbl.Players[3].Chips != stackBefore {
		t.Error("rejected action moved chips")
	}
	if tbl.Acting != 3 {
		t.Error("rejected action advanced the turn")
	}
}

func TestActionOutOfTurnRejected(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 1, 500, 500, 500, 500)
	if err := tbl.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	if _, err := tbl.PerformAction(0, Call, 0); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("expected ErrNotYourTurn, got %v", err)
	}
	if _, err := tbl.PerformAction(-1, Fold, 0); !errors.Is(err, ErrInvalidSeat) {
		t.Errorf("expected ErrInvalidSeat, got %v", err)
	}
	if _, err := tbl.PerformAction(99, Fold, 0); !errors.Is(err, ErrInvalidSeat) {
		t.Errorf("expected ErrInvalidSeat, got %v", err)
	}
}

func TestCallIsCappedAtStack(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 1, 500, 500, 500, 6)
	if err := tbl.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	// Seat 3 has 6 chips and faces a bet of 10: the call is reclassified
	// as an all-in for the remaining stack.
	var gotAction Action
	tbl.SetListener(func(seat int, action Action, amount int) {
		gotAction = action
	})
	committed, err := tbl.PerformAction(3, Call, 0)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if committed != 6 {
		t.Errorf("committed = %d, want 6", committed)
	}
	p := tbl.Players[3]
	if !p.AllIn || p.Chips != 0 {
		t.Errorf("short call should be all-in, got allin=%v chips=%d", p.AllIn, p.Chips)
	}
	if gotAction != AllIn {
		t.Errorf("notified action = %v, want allin", gotAction)
	}
}

func TestBetLegality(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 1, 500, 500, 500)
	if err := tbl.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}
	// Call to the flop so the current bet is zero.
	for tbl.Street == Preflop {
		seat := tbl.Acting
		if tbl.Players[seat].Bet == tbl.CurrentBet {
			tbl.PerformAction(seat, Check, 0)
		} else {
			tbl.PerformAction(seat, Call, 0)
		}
	}

	seat := tbl.Acting
	// A bet below the big blind is rejected unless it is an all-in.
	if _, err := tbl.PerformAction(seat, Bet, 5); !errors.Is(err, ErrBetTooSmall) {
		t.Fatalf("expected ErrBetTooSmall, got %v", err)
	}
	// A bet beyond the stack is rejected.
	if _, err := tbl.PerformAction(seat, Bet, 10000); !errors.Is(err, ErrInsufficientChips) {
		t.Fatalf("expected ErrInsufficientChips, got %v", err)
	}

	committed, err := tbl.PerformAction(seat, Bet, 20)
	if err != nil {
		t.Fatalf("bet: %v", err)
	}
	if committed != 20 {
		t.Errorf("committed = %d, want 20", committed)
	}
	if tbl.CurrentBet != 20 || tbl.MinRaise != 20 {
		t.Errorf("current bet %d / min raise %d, want 20/20", tbl.CurrentBet, tbl.MinRaise)
	}
	if tbl.LastAggressor != seat {
		t.Errorf("aggressor = %d, want %d", tbl.LastAggressor, seat)
	}

	// A second bet in the same round is a raise, not a bet.
	if _, err := tbl.PerformAction(tbl.Acting, Bet, 40); !errors.Is(err, ErrCannotBet) {
		t.Errorf("expected ErrCannotBet, got %v", err)
	}
}

func TestBetReopensAction(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 1, 500, 500, 500)
	if err := tbl.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}
	for tbl.Street == Preflop {
		seat := tbl.Acting
		if tbl.Players[seat].Bet == tbl.CurrentBet {
			tbl.PerformAction(seat, Check, 0)
		} else {
			tbl.PerformAction(seat, Call, 0)
		}
	}

	// First to act checks, second bets: the checker must act again.
	first := tbl.Acting
	tbl.PerformAction(first, Check, 0)
	second := tbl.Acting
	if _, err := tbl.PerformAction(second, Bet, 20); err != nil {
		t.Fatalf("bet: %v", err)
	}
	if tbl.Players[first].Acted {
		t.Error("bet should reset the acted flag of other seats")
	}
	if !tbl.Players[second].Acted {
		t.Error("aggressor keeps its acted flag")
	}
	if tbl.Street != Flop {
		t.Error("round must not complete while the checker has not responded")
	}
}

func TestMinimumRaiseEnforced(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 1, 500, 500, 500, 500)
	if err := tbl.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	// Raising the 10 blind requires an increment of at least 10.
	if _, err := tbl.PerformAction(3, Raise, 4); !errors.Is(err, ErrRaiseTooSmall) {
		t.Fatalf("expected ErrRaiseTooSmall, got %v", err)
	}

	committed, err := tbl.PerformAction(3, Raise, 15)
	if err != nil {
		t.Fatalf("raise: %v", err)
	}
	// Call 10 plus increment 15.
	if committed != 25 {
		t.Errorf("committed = %d, want 25", committed)
	}
	if tbl.CurrentBet != 25 {
		t.Errorf("current bet = %d, want 25", tbl.CurrentBet)
	}
	if tbl.MinRaise != 15 {
		t.Errorf("min raise = %d, want 15", tbl.MinRaise)
	}

	// Re-raising now requires an increment of at least 15.
	if _, err := tbl.PerformAction(tbl.Acting, Raise, 10); !errors.Is(err, ErrRaiseTooSmall) {
		t.Errorf("expected ErrRaiseTooSmall, got %v", err)
	}
}

func TestRaiseBelowMinimumAllowedAsAllIn(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 1, 500, 500, 500, 18)
	if err := tbl.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	// Seat 3 has 18 chips: call 10 plus an 8 increment is below the
	// 10 minimum but commits the whole stack, so it is allowed.
	committed, err := tbl.PerformAction(3, Raise, 8)
	if err != nil {
		t.Fatalf("all-in raise: %v", err)
	}
	if committed != 18 {
		t.Errorf("committed = %d, want 18", committed)
	}
	if !tbl.Players[3].AllIn {
		t.Error("seat should be all-in")
	}
	if tbl.CurrentBet != 18 {
		t.Errorf("current bet = %d, want 18", tbl.CurrentBet)
	}
}

func TestShortAllInDoesNotReopenAction(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 1, 500, 500, 500, 500)
	if err := tbl.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	// Seat 3 raises to 30.
	if _, err := tbl.PerformAction(3, Raise, 20); err != nil {
		t.Fatalf("raise: %v", err)
	}
	aggressor := tbl.LastAggressor

	// Seat 0 has only 20 chips and shoves below the current bet of 30:
	// no new aggression, action is not reopened.
	tbl.Players[0].Chips = 20
	if _, err := tbl.PerformAction(0, AllIn, 0); err != nil {
		t.Fatalf("all-in: %v", err)
	}
	if tbl.CurrentBet != 30 {
		t.Errorf("current bet = %d, want 30 (short all-in does not raise)", tbl.CurrentBet)
	}
	if tbl.LastAggressor != aggressor {
		t.Errorf("aggressor changed to %d on a short all-in", tbl.LastAggressor)
	}
	if !tbl.Players[3].Acted {
		t.Error("short all-in must not reset acted flags")
	}
}

func TestAllInAboveBetReopensAction(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 1, 500, 500, 500, 60)
	if err := tbl.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	committed, err := tbl.PerformAction(3, AllIn, 0)
	if err != nil {
		t.Fatalf("all-in: %v", err)
	}
	if committed != 60 {
		t.Errorf("committed = %d, want 60", committed)
	}
	if tbl.CurrentBet != 60 {
		t.Errorf("current bet = %d, want 60", tbl.CurrentBet)
	}
	if tbl.LastAggressor != 3 {
		t.Errorf("aggressor = %d, want 3", tbl.LastAggressor)
	}
	if tbl.MinRaise != 50 {
		t.Errorf("min raise = %d, want 50", tbl.MinRaise)
	}
}

func TestRoundCompletion(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 1, 500, 500, 500)
	if err := tbl.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	if tbl.roundComplete() {
		t.Error("round complete before anyone acted")
	}

	// Seat 0 calls, seat 1 calls: the big blind still has its option.
	tbl.PerformAction(0, Call, 0)
	tbl.PerformAction(1, Call, 0)
	if tbl.roundComplete() {
		t.Error("round complete before the big blind acted")
	}
	if tbl.Street != Preflop {
		t.Error("street advanced before the big blind acted")
	}

	// Big blind checks its option: round completes instantly.
	tbl.PerformAction(2, Check, 0)
	if tbl.Street != Flop {
		t.Errorf("street = %v, want flop", tbl.Street)
	}
}

func TestActionAfterHandRejected(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t, 1, 500, 500)
	if _, err := tbl.PerformAction(0, Check, 0); !errors.Is(err, ErrHandNotActive) {
		t.Errorf("expected ErrHandNotActive, got %v", err)
	}
}
