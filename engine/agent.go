package engine

import (
	"clobber/experiments/metrics"
	"clobber/game"
	"clobber/searcher"
	"time"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the move to play for state.CurrentPlayer and the
	// metrics of finding it. ok is false when there is no move to play.
	FindMove(state *game.GameState) (move game.Move, ok bool, metric metrics.SearchMetric)
}

type searchAgent struct {
	minimax *searcher.Minimax
}

// NewSearchAgent plays the move chosen by minimax.
func NewSearchAgent(minimax *searcher.Minimax) Agent {
	return searchAgent{minimax: minimax}
}

func (a searchAgent) FindMove(state *game.GameState) (game.Move, bool, metrics.SearchMetric) {
	return a.minimax.FindMove(state)
}

type randomizedAgent struct {
	agent       Agent
	probability float64
	rng         *rand.Rand
}

// NewRandomizedAgent wraps agent so that, with the given probability, a
// uniformly random legal move is played instead of consulting agent. The
// seed makes games reproducible.
func NewRandomizedAgent(agent Agent, probability float64, seed uint64) Agent {
	if probability < 0 || probability > 1 {
		panic("probability must be within [0, 1]")
	}
	return &randomizedAgent{
		agent:       agent,
		probability: probability,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *randomizedAgent) FindMove(state *game.GameState) (game.Move, bool, metrics.SearchMetric) {
	if a.rng.Float64() >= a.probability {
		return a.agent.FindMove(state)
	}

	start := time.Now()
	moves := state.LegalMoves()
	metric := metrics.SearchMetric{Randomized: true}
	if len(moves) == 0 {
		return game.Move{}, false, metric
	}
	move := moves[a.rng.Intn(len(moves))]
	metric.Duration = time.Since(start)
	return move, true, metric
}
