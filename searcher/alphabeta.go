package searcher

import (
	"clobber/game"
	"fmt"
	"math"
)

// Window bounds for the root call.
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

// Result of searching one node. Nodes counts this node and everything
// searched below it.
type Result struct {
	Score   int
	Move    game.Move
	HasMove bool
	Nodes   int
}

// AlphaBeta runs a depth-limited minimax search with alpha-beta pruning.
// Scores are from player's perspective; maximizing tells whether the side to
// move in state is the one maximizing. Among equally scored moves the first
// in generation order is kept. A terminal state or a depth of 0 or less
// yields no move.
func AlphaBeta(state *game.GameState, depth, alpha, beta int, maximizing bool, player game.Player, evaluate game.Evaluate) Result {
	w := walker{player: player, evaluate: evaluate}
	return w.search(state, depth, alpha, beta, maximizing, rootParent, game.Move{})
}

type walker struct {
	player   game.Player
	evaluate game.Evaluate
	tracer   *Tracer
}

func (w walker) search(state *game.GameState, depth, alpha, beta int, maximizing bool, parent int, via game.Move) Result {
	id := w.tracer.enter(parent, via, state, depth, maximizing)
	res := Result{Nodes: 1}

	if depth <= 0 {
		res.Score = w.evaluate(state, w.player)
		w.tracer.leave(id, res.Score, false)
		return res
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		res.Score = w.evaluate(state, w.player)
		w.tracer.leave(id, res.Score, false)
		return res
	}

	cutoff := false
	if maximizing {
		best := NegInf
		for _, move := range moves {
			child := w.search(play(state, move), depth-1, alpha, beta, false, id, move)
			res.Nodes += child.Nodes
			if child.Score > best {
				best = child.Score
				res.Move, res.HasMove = move, true
			}
			alpha = max(alpha, child.Score)
			if beta <= alpha {
				cutoff = true
				break
			}
		}
		res.Score = best
	} else {
		best := PosInf
		for _, move := range moves {
			child := w.search(play(state, move), depth-1, alpha, beta, true, id, move)
			res.Nodes += child.Nodes
			if child.Score < best {
				best = child.Score
				res.Move, res.HasMove = move, true
			}
			beta = min(beta, child.Score)
			if beta <= alpha {
				cutoff = true
				break
			}
		}
		res.Score = best
	}

	w.tracer.leave(id, res.Score, cutoff)
	return res
}

// play applies a generated move. Generated moves are always legal.
func play(state *game.GameState, move game.Move) *game.GameState {
	next, err := state.Play(move)
	if err != nil {
		panic(fmt.Sprintf("generated move rejected: %v", err))
	}
	return next
}
