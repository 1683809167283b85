package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnknownHeuristic is returned for heuristic identifiers outside the registered set.
var ErrUnknownHeuristic = errors.New("heuristic is unknown")

// InvalidMoveError is returned by Play for a move the current player cannot make.
type InvalidMoveError struct {
	Move   Move
	Player Player
	Reason string
}

func NewInvalidMoveError(move Move, player Player, reason string) error {
	return &InvalidMoveError{Move: move, Player: player, Reason: reason}
}

func (ime *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %s for player %s: %s", ime.Move, ime.Player, ime.Reason)
}
