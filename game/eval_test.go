package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	// B B W
	// W _ W
	board := func(t *testing.T) *Board { return boardOf(t, "BBW", "W_W") }

	t.Run("piece count scores the given player", func(t *testing.T) {
		state := NewGameState(board(t))
		require.Equal(t, 2, EvaluatePieceCount(state, Black))
		require.Equal(t, 3, EvaluatePieceCount(state, White))
	})

	t.Run("material is the piece difference", func(t *testing.T) {
		state := NewGameState(board(t))
		require.Equal(t, -1, EvaluateMaterial(state, Black))
		require.Equal(t, 1, EvaluateMaterial(state, White))
	})

	t.Run("mobility scores the side to move regardless of player", func(t *testing.T) {
		state := NewGameState(board(t))
		// Black: (0,0)->(1,0), (0,1)->(0,2)
		require.Equal(t, 2, EvaluateMobility(state, Black))
		require.Equal(t, 2, EvaluateMobility(state, White),
			"reference behaviour ignores the player argument")
	})

	t.Run("player mobility honours the player argument", func(t *testing.T) {
		state := NewGameState(board(t))
		// White: (0,2)->(0,1), (1,0)->(0,0)
		require.Equal(t, 2, EvaluatePlayerMobility(state, Black))
		require.Equal(t, 2, EvaluatePlayerMobility(state, White))
	})

	// Every orthogonally adjacent B/W pair is one capture for each side, so
	// both players always have the same number of moves and the two mobility
	// variants agree even though only one of them reads the player argument.
	t.Run("mobility variants agree on reachable states", func(t *testing.T) {
		for _, rows := range [][]string{{"BWW", "___"}, {"BWB", "WBW"}, {"BW_B", "_WBW"}, {"BBBB", "WWWW"}} {
			state := NewGameState(boardOf(t, rows...))
			for _, p := range []Player{Black, White} {
				require.Equal(t, EvaluateMobility(state, p), EvaluatePlayerMobility(state, p), "board %v player %s", rows, p)
			}
		}
	})
}

func TestHeuristicByID(t *testing.T) {
	state := NewGameState(boardOf(t, "BBW", "W_W"))

	for _, id := range HeuristicIDs() {
		evaluate, err := HeuristicByID(id)
		require.NoError(t, err)
		require.NotNil(t, evaluate)
		require.NotContains(t, HeuristicName(id), "unknown")
	}

	evaluate, err := HeuristicByID(PieceCountHeuristic)
	require.NoError(t, err)
	require.Equal(t, 2, evaluate(state, Black))

	_, err = HeuristicByID(0)
	require.ErrorIs(t, err, ErrUnknownHeuristic)
	require.Equal(t, "unknown(7)", HeuristicName(7))
	require.Equal(t, []int{1, 2, 3, 4}, HeuristicIDs())
}
