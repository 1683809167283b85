package engine

import (
	"clobber/experiments/metrics"
	"clobber/game"
	"clobber/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func boardOf(t *testing.T, rows ...string) *game.Board {
	t.Helper()
	b := game.NewBoard(len(rows), len(rows[0]))
	for r, row := range rows {
		require.Len(t, row, b.Cols(), "rows must have equal length")
		for c := 0; c < len(row); c++ {
			cell := game.Cell(row[c])
			require.True(t, cell.IsValid(), "unknown symbol %q", row[c])
			b.Set(game.Position{Row: r, Col: c}, cell)
		}
	}
	return b
}

func searchAgentOf(depth, heuristic int) Agent {
	evaluate, err := game.HeuristicByID(heuristic)
	if err != nil {
		panic(err)
	}
	return NewSearchAgent(searcher.NewMinimax(depth, evaluate))
}

// resigningAgent never finds a move.
type resigningAgent struct{}

func (resigningAgent) FindMove(*game.GameState) (game.Move, bool, metrics.SearchMetric) {
	return game.Move{}, false, metrics.SearchMetric{}
}

// fixedAgent always answers with the same move.
type fixedAgent struct {
	move game.Move
}

func (a fixedAgent) FindMove(*game.GameState) (game.Move, bool, metrics.SearchMetric) {
	return a.move, true, metrics.SearchMetric{}
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("2x2 checkerboard is a forced win for black", func(t *testing.T) {
		var steps []int
		e := LocalEngine(boardOf(t, "BW", "WB"),
			[2]Agent{searchAgentOf(4, game.PieceCountHeuristic), searchAgentOf(2, game.MobilityHeuristic)},
			WithObserver(func(step int, before *game.GameState, move game.Move, after *game.GameState) {
				steps = append(steps, step)
				require.Equal(t, before.Board.Pieces()-1, after.Board.Pieces())
				require.Equal(t, before.CurrentPlayer.Cell(), before.Board.At(move.From))
			}))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Black, winner)
		require.Equal(t, game.Black, gameMetric.StartingPlayer)
		require.Equal(t, game.Black, gameMetric.Winner)
		require.Equal(t, 3, gameMetric.TotalMoves)
		require.Equal(t, []int{1, 2, 3}, steps)
		require.Len(t, moveMetrics, 3)
		require.Equal(t, []game.Player{game.Black, game.White, game.Black},
			[]game.Player{moveMetrics[0].Player, moveMetrics[1].Player, moveMetrics[2].Player})

		total := 0
		for _, m := range moveMetrics {
			total += m.Nodes
		}
		require.Equal(t, total, gameMetric.TotalNodes)
		require.True(t, e.State.IsTerminal())
		require.Equal(t, game.White, e.State.CurrentPlayer)
	})

	t.Run("black without moves loses immediately", func(t *testing.T) {
		e := LocalEngine(boardOf(t, "B_", "_W"),
			[2]Agent{searchAgentOf(2, game.MaterialHeuristic), searchAgentOf(2, game.MaterialHeuristic)})

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.White, winner)
		require.Zero(t, gameMetric.TotalMoves)
		require.Empty(t, moveMetrics)
	})

	t.Run("game ends with the stuck side losing", func(t *testing.T) {
		board := boardOf(t, "BWBW", "WBWB", "BWBW")
		e := LocalEngine(board,
			[2]Agent{searchAgentOf(2, game.MaterialHeuristic), searchAgentOf(1, game.PieceCountHeuristic)})

		winner, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.True(t, e.State.IsTerminal())
		require.Equal(t, e.State.CurrentPlayer.Opponent(), winner)
		require.Equal(t, board.Pieces()-gameMetric.TotalMoves, e.State.Board.Pieces())
		require.Equal(t, 12, board.Pieces(), "the caller's board is not modified")
	})

	t.Run("rejects illegal moves", func(t *testing.T) {
		illegal := game.Move{From: game.Position{Row: 0, Col: 0}, To: game.Position{Row: 1, Col: 1}}
		e := LocalEngine(boardOf(t, "BW", "WB"),
			[2]Agent{fixedAgent{move: illegal}, searchAgentOf(1, game.MaterialHeuristic)})

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, ErrIllegalMove)
		require.True(t, boardOf(t, "BW", "WB").Equal(e.State.Board))
	})

	t.Run("agent without a move on a live board is an error", func(t *testing.T) {
		e := LocalEngine(boardOf(t, "BW", "WB"), [2]Agent{resigningAgent{}, resigningAgent{}})

		winner, gameMetric, _, err := e.Run()

		require.ErrorIs(t, err, ErrNoMove)
		require.Zero(t, winner)
		require.Zero(t, gameMetric.TotalMoves)
		require.False(t, e.State.IsTerminal())
	})

	t.Run("stops at the turn limit", func(t *testing.T) {
		e := LocalEngine(boardOf(t, "BW", "WB"),
			[2]Agent{searchAgentOf(1, game.MaterialHeuristic), searchAgentOf(1, game.MaterialHeuristic)},
			WithMaxTurns(1))

		_, gameMetric, _, err := e.Run()

		require.ErrorIs(t, err, ErrTurnLimit)
		require.Equal(t, 1, gameMetric.TotalMoves)
	})

	t.Run("plays through the Engine interface", func(t *testing.T) {
		var eng Engine = LocalEngine(boardOf(t, "BW", "WB"),
			[2]Agent{searchAgentOf(2, game.MaterialHeuristic), searchAgentOf(2, game.MaterialHeuristic)})

		winner, gameMetric, _, err := eng.Run()

		require.NoError(t, err)
		require.Equal(t, game.Black, winner)
		require.Equal(t, 3, gameMetric.TotalMoves)
	})

	t.Run("panics without an agent", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(boardOf(t, "BW"), [2]Agent{searchAgentOf(1, game.MaterialHeuristic), nil})
		})
	})
}
