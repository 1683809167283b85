package searcher

import (
	"clobber/experiments/metrics"
	"clobber/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(m *Minimax)

// Minimax picks moves for the side to move with a fixed-depth alpha-beta search.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	workers  int
	tracer   *Tracer
}

// WithParallel searches the root's children on up to workers goroutines.
// Each child gets a full window, so the chosen move and score match the
// sequential search while the node count is usually higher.
func WithParallel(workers int) Option {
	return func(m *Minimax) {
		if workers > 1 {
			m.workers = workers
		}
	}
}

// WithTracer records every node the searcher visits into tracer.
func WithTracer(tracer *Tracer) Option {
	return func(m *Minimax) {
		m.tracer = tracer
	}
}

func NewMinimax(depth int, evaluate game.Evaluate, options ...Option) *Minimax {
	if depth < 1 {
		panic("search depth must be positive")
	}
	if evaluate == nil {
		panic("evaluation function is required")
	}
	m := &Minimax{
		depth:    depth,
		evaluate: evaluate,
		workers:  1,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int { return m.depth }

// FindMove searches on behalf of state.CurrentPlayer. ok is false when the
// player has no legal move, which ends the game.
func (m *Minimax) FindMove(state *game.GameState) (move game.Move, ok bool, metric metrics.SearchMetric) {
	start := time.Now()
	w := walker{player: state.CurrentPlayer, evaluate: m.evaluate, tracer: m.tracer}

	var res Result
	if m.workers > 1 {
		res = m.searchParallel(w, state)
	} else {
		res = w.search(state, m.depth, NegInf, PosInf, true, rootParent, game.Move{})
	}

	metric = metrics.SearchMetric{
		Depth:    m.depth,
		Workers:  m.workers,
		Nodes:    res.Nodes,
		Score:    res.Score,
		Duration: time.Since(start),
	}
	log.Debug().
		Str("player", state.CurrentPlayer.String()).
		Int("depth", m.depth).
		Int("nodes", res.Nodes).
		Int("score", res.Score).
		Bool("found", res.HasMove).
		Msg("search complete")

	return res.Move, res.HasMove, metric
}

func (m *Minimax) searchParallel(w walker, state *game.GameState) Result {
	id := w.tracer.enter(rootParent, game.Move{}, state, m.depth, true)
	moves := state.LegalMoves()
	if len(moves) == 0 {
		score := w.evaluate(state, w.player)
		w.tracer.leave(id, score, false)
		return Result{Score: score, Nodes: 1}
	}

	children := make([]Result, len(moves))
	var g errgroup.Group
	g.SetLimit(m.workers)
	for i, move := range moves {
		i, move := i, move
		g.Go(func() error {
			children[i] = w.search(play(state, move), m.depth-1, NegInf, PosInf, false, id, move)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	res := Result{Score: NegInf, Nodes: 1}
	for i, child := range children {
		res.Nodes += child.Nodes
		if child.Score > res.Score {
			res.Score = child.Score
			res.Move, res.HasMove = moves[i], true
		}
	}
	w.tracer.leave(id, res.Score, false)
	return res
}
