package engine

import (
	"clobber/experiments/metrics"
	"clobber/game"
	"clobber/meta"
	"clobber/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrIllegalMove = errors.New("agent returned an illegal move")
	ErrTurnLimit   = errors.New("turn limit reached without a winner")
	ErrNoMove      = errors.New("agent gave up with legal moves left")
)

// Observer sees every move as it is played. It must not modify the states.
type Observer func(step int, before *game.GameState, move game.Move, after *game.GameState)

type EngineOption func(e *Local)

func WithObserver(observer Observer) EngineOption {
	return func(e *Local) {
		e.observer = observer
	}
}

func WithMaxTurns(turns int) EngineOption {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Local runs a game between two in-process agents. Agents[0] plays Black,
// Agents[1] White.
type Local struct {
	State    *game.GameState
	Agents   [2]Agent
	maxTurns int
	observer Observer
	metrics  metrics.Collector
}

func LocalEngine(board *game.Board, agents [2]Agent, options ...EngineOption) *Local {
	for _, agent := range agents {
		if agent == nil {
			panic("both players need an agent")
		}
	}

	eng := &Local{
		State:    game.NewGameState(board),
		Agents:   agents,
		maxTurns: meta.MAX_TURNS,
		metrics:  metrics.NewCollector(),
	}
	for _, option := range options {
		option(eng)
	}
	return eng
}

// Run plays until the side to move has no legal move and returns its opponent
// as the winner.
func (e *Local) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	e.metrics.Start(e.State.CurrentPlayer)
	log.Info().Msgf("player %s is starting on a %dx%d board", e.State.CurrentPlayer, e.State.Board.Rows(), e.State.Board.Cols())

	step := 1
	for !e.State.IsTerminal() {
		if step > e.maxTurns {
			gm, mm := e.metrics.Complete(0)
			return 0, gm, mm, errors.Wrapf(ErrTurnLimit, "after %d turns", e.maxTurns)
		}

		player := e.State.CurrentPlayer
		move, ok, searchMetric := e.agentFor(player).FindMove(e.State)
		if !ok {
			gm, mm := e.metrics.Complete(0)
			return 0, gm, mm, errors.Wrapf(ErrNoMove, "player %s", player)
		}
		if utils.FindIndex(e.State.LegalMoves(), move) < 0 {
			gm, mm := e.metrics.Complete(0)
			return 0, gm, mm, errors.Wrapf(ErrIllegalMove, "player %s played %s", player, move)
		}

		next, err := e.State.Play(move)
		if err != nil {
			gm, mm := e.metrics.Complete(0)
			return 0, gm, mm, errors.WithStack(err)
		}

		e.metrics.AddMove(metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: player %s played %s (%d nodes)", step, player, move, searchMetric.Nodes)
		if e.observer != nil {
			e.observer(step, e.State, move, next)
		}

		e.State = next
		step++
	}

	winner := e.State.Opponent()
	gameMetric, moveMetrics := e.metrics.Complete(winner)
	log.Info().Msgf("player %s wins after %d moves, %d nodes searched", winner, gameMetric.TotalMoves, gameMetric.TotalNodes)
	return winner, gameMetric, moveMetrics, nil
}

func (e *Local) agentFor(player game.Player) Agent {
	if player == game.Black {
		return e.Agents[0]
	}
	return e.Agents[1]
}
