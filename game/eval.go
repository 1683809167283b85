package game

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// Heuristic identifiers accepted on the command line.
const (
	MobilityHeuristic       = 1
	PieceCountHeuristic     = 2
	MaterialHeuristic       = 3
	PlayerMobilityHeuristic = 4
)

type heuristic struct {
	name     string
	evaluate Evaluate
}

var heuristics = map[int]heuristic{
	MobilityHeuristic:       {name: "mobility", evaluate: EvaluateMobility},
	PieceCountHeuristic:     {name: "piece_count", evaluate: EvaluatePieceCount},
	MaterialHeuristic:       {name: "material", evaluate: EvaluateMaterial},
	PlayerMobilityHeuristic: {name: "player_mobility", evaluate: EvaluatePlayerMobility},
}

// EvaluateMobility counts the moves available to the side to move in state.
// The player argument is ignored. Each adjacent B/W pair gives both sides one
// capture, so the result matches EvaluatePlayerMobility for either player.
func EvaluateMobility(state *GameState, _ Player) int {
	return len(state.LegalMoves())
}

// EvaluatePlayerMobility counts the captures player could make in state,
// whoever is to move.
func EvaluatePlayerMobility(state *GameState, player Player) int {
	return len(state.Board.movesFor(player))
}

// EvaluatePieceCount counts player's pieces.
func EvaluatePieceCount(state *GameState, player Player) int {
	return state.Board.Count(player)
}

// EvaluateMaterial is player's piece count minus the opponent's.
func EvaluateMaterial(state *GameState, player Player) int {
	return state.Board.Count(player) - state.Board.Count(player.Opponent())
}

// HeuristicByID looks up an evaluation function by its identifier.
func HeuristicByID(id int) (Evaluate, error) {
	h, ok := heuristics[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHeuristic, "id %d", id)
	}
	return h.evaluate, nil
}

// HeuristicName returns a short name for logs and experiment records.
func HeuristicName(id int) string {
	h, ok := heuristics[id]
	if !ok {
		return fmt.Sprintf("unknown(%d)", id)
	}
	return h.name
}

// HeuristicIDs lists the registered identifiers in ascending order.
func HeuristicIDs() []int {
	ids := make([]int, 0, len(heuristics))
	for id := range heuristics {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
