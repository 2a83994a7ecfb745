package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquillman/Q-Poker/internal/deck"
	"github.com/dquillman/Q-Poker/internal/game"
	"github.com/dquillman/Q-Poker/internal/randutil"
)

func cards(t *testing.T, s string) []deck.Card {
	t.Helper()
	parsed, err := deck.ParseCards(s)
	require.NoError(t, err)
	return parsed
}

func TestOptimalActionValidation(t *testing.T) {
	t.Parallel()

	rng := randutil.New(1)
	hole := cards(t, "As Ah")

	_, err := OptimalAction(rng, cards(t, "As"), nil, 1, 100, 0, 1000)
	assert.Error(t, err, "one hole card")

	_, err = OptimalAction(rng, hole, cards(t, "2c 3c 4c 5c 6c 7c"), 1, 100, 0, 1000)
	assert.Error(t, err, "six board cards")

	_, err = OptimalAction(rng, hole, nil, 0, 100, 0, 1000)
	assert.Error(t, err, "zero opponents")

	_, err = OptimalAction(rng, hole, nil, 1, -1, 0, 1000)
	assert.Error(t, err, "negative pot")
}

func TestNutsBetWhenUnraised(t *testing.T) {
	t.Parallel()

	// Royal flush on board in hand: equity ~1, nothing to call.
	advice, err := OptimalAction(randutil.New(1),
		cards(t, "As Ks"), cards(t, "Qs Js Ts"), 2, 100, 0, 2000)
	require.NoError(t, err)

	assert.Equal(t, game.Bet, advice.Action)
	assert.Equal(t, 50, advice.Amount)
	assert.Greater(t, advice.Equity, 0.9)
	assert.Zero(t, advice.BreakEven)
}

func TestNutsRaiseFacingBet(t *testing.T) {
	t.Parallel()

	advice, err := OptimalAction(randutil.New(1),
		cards(t, "As Ks"), cards(t, "Qs Js Ts"), 2, 100, 50, 2000)
	require.NoError(t, err)

	assert.Equal(t, game.Raise, advice.Action)
	assert.Greater(t, advice.Amount, 0)
	assert.InDelta(t, 50.0/150.0, advice.BreakEven, 1e-9)
}

func TestTrashFoldsToLargeBet(t *testing.T) {
	t.Parallel()

	// 7-2 offsuit against a bet offering worse than even odds: the equity
	// against three opponents cannot reach the break-even point.
	advice, err := OptimalAction(randutil.New(1),
		cards(t, "7c 2d"), nil, 3, 50, 100, 2000)
	require.NoError(t, err)

	assert.Equal(t, game.Fold, advice.Action)
	assert.Less(t, advice.Equity, advice.BreakEven)
}

func TestMarginalHandCalls(t *testing.T) {
	t.Parallel()

	// A tiny bet into a big pot needs almost no equity; any live hand calls
	// or raises, never folds.
	advice, err := OptimalAction(randutil.New(1),
		cards(t, "9c 8c"), nil, 1, 500, 5, 2000)
	require.NoError(t, err)

	assert.NotEqual(t, game.Fold, advice.Action)
	assert.Greater(t, advice.Equity, advice.BreakEven)
}

func TestAdviceDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	first, err := OptimalAction(randutil.New(42),
		cards(t, "Kd Qd"), cards(t, "Jd 4s 9h"), 2, 80, 20, 2000)
	require.NoError(t, err)

	second, err := OptimalAction(randutil.New(42),
		cards(t, "Kd Qd"), cards(t, "Jd 4s 9h"), 2, 80, 20, 2000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
