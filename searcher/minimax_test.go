package searcher

import (
	"clobber/game"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMinimax(t *testing.T) {
	t.Run("panics on non-positive depth", func(t *testing.T) {
		require.Panics(t, func() { NewMinimax(0, game.EvaluateMaterial) })
	})

	t.Run("panics without evaluation function", func(t *testing.T) {
		require.Panics(t, func() { NewMinimax(2, nil) })
	})

	t.Run("ignores a single worker", func(t *testing.T) {
		m := NewMinimax(3, game.EvaluateMaterial, WithParallel(1))
		require.Equal(t, 1, m.workers)
		require.Equal(t, 3, m.Depth())
	})
}

func TestMinimaxFindMove(t *testing.T) {
	t.Run("searches for the side to move", func(t *testing.T) {
		state := &game.GameState{Board: boardOf(t, "WBWB"), CurrentPlayer: game.Black}
		m := NewMinimax(2, game.EvaluatePieceCount)

		move, ok, metric := m.FindMove(state)

		require.True(t, ok)
		require.Equal(t, mv(0, 1, 0, 2), move)
		require.Equal(t, 2, metric.Depth)
		require.Equal(t, 1, metric.Workers)
		require.Equal(t, 2, metric.Score)
		require.Greater(t, metric.Nodes, 1)
	})

	t.Run("scores for white when white is to move", func(t *testing.T) {
		// Mirror of the black case with colours swapped.
		state := &game.GameState{Board: boardOf(t, "BWBW"), CurrentPlayer: game.White}
		m := NewMinimax(2, game.EvaluatePieceCount)

		move, ok, _ := m.FindMove(state)

		require.True(t, ok)
		require.Equal(t, mv(0, 1, 0, 2), move)
	})

	t.Run("reports no move on a terminal state", func(t *testing.T) {
		state := game.NewGameState(boardOf(t, "B_", "_W"))

		_, ok, metric := NewMinimax(4, game.EvaluateMaterial).FindMove(state)

		require.False(t, ok)
		require.Equal(t, 1, metric.Nodes)
	})

	t.Run("parallel search agrees with sequential search", func(t *testing.T) {
		boards := [][]string{
			{"BWBW", "WBWB", "BWBW"},
			{"BWBW", "WBWB", "BWBW", "WBWB"},
			{"BBW_", "WWBB", "_BWW"},
			{"B_", "_W"},
		}
		for _, rows := range boards {
			for _, id := range game.HeuristicIDs() {
				evaluate, err := game.HeuristicByID(id)
				require.NoError(t, err)
				state := game.NewGameState(boardOf(t, rows...))

				wantMove, wantOK, want := NewMinimax(3, evaluate).FindMove(state)
				gotMove, gotOK, got := NewMinimax(3, evaluate, WithParallel(4)).FindMove(state)

				require.Equal(t, wantOK, gotOK)
				require.Equal(t, wantMove, gotMove, "%v %s", rows, game.HeuristicName(id))
				require.Equal(t, want.Score, got.Score)
				require.Equal(t, 4, got.Workers)
				require.Positive(t, got.Nodes)
			}
		}
	})
}

func TestTracer(t *testing.T) {
	t.Run("records one node per visited position", func(t *testing.T) {
		state := game.NewGameState(boardOf(t, "BWBW", "WBWB"))
		tracer := NewTracer()

		_, _, metric := NewMinimax(3, game.EvaluateMaterial, WithTracer(tracer)).FindMove(state)

		require.Equal(t, metric.Nodes, tracer.Len())
	})

	t.Run("records parallel searches", func(t *testing.T) {
		state := game.NewGameState(boardOf(t, "BWBW", "WBWB"))
		tracer := NewTracer()

		_, _, metric := NewMinimax(3, game.EvaluateMaterial, WithTracer(tracer), WithParallel(3)).FindMove(state)

		require.Equal(t, metric.Nodes, tracer.Len())
	})

	t.Run("exports a digraph", func(t *testing.T) {
		state := game.NewGameState(boardOf(t, "BWBW"))
		tracer := NewTracer()
		NewMinimax(1, game.EvaluatePieceCount, WithTracer(tracer)).FindMove(state)

		dot, err := tracer.DOT()

		require.NoError(t, err)
		require.True(t, strings.HasPrefix(strings.TrimSpace(dot), "digraph search"))
		require.Contains(t, dot, "n0->n1")
		require.Contains(t, dot, "n0->n3")
		require.Contains(t, dot, "box")
	})

	t.Run("nil tracer is a no-op", func(t *testing.T) {
		var tracer *Tracer
		state := game.NewGameState(boardOf(t, "BW"))
		require.Equal(t, rootParent, tracer.enter(rootParent, game.Move{}, state, 1, true))
		require.NotPanics(t, func() { tracer.leave(0, 1, false) })
	})
}
