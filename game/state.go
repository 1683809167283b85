package game

import (
	"encoding/binary"
	"hash/fnv"
)

// GameState is a board plus the side to move. States are never mutated once
// created: Play copies the board, so earlier states stay valid.
type GameState struct {
	Board         *Board
	CurrentPlayer Player
}

// NewGameState starts a game on a copy of board with Black to move.
func NewGameState(board *Board) *GameState {
	return &GameState{
		Board:         board.Copy(),
		CurrentPlayer: Black,
	}
}

func (gs *GameState) Copy() *GameState {
	return &GameState{
		Board:         gs.Board.Copy(),
		CurrentPlayer: gs.CurrentPlayer,
	}
}

// Opponent returns the side not to move.
func (gs *GameState) Opponent() Player {
	return gs.CurrentPlayer.Opponent()
}

// LegalMoves returns all captures available to the current player. Rows are
// scanned top to bottom, columns left to right and neighbours in Directions
// order; search relies on this order for tie-breaking.
func (gs *GameState) LegalMoves() []Move {
	return gs.Board.movesFor(gs.CurrentPlayer)
}

// IsTerminal reports whether the current player has no legal move, i.e. has lost.
func (gs *GameState) IsTerminal() bool {
	return !gs.Board.hasMove(gs.CurrentPlayer)
}

// Winner returns the winner once the game is over.
func (gs *GameState) Winner() (Player, bool) {
	if !gs.IsTerminal() {
		return 0, false
	}
	return gs.Opponent(), true
}

// Loser returns the side that cannot move once the game is over.
func (gs *GameState) Loser() (Player, bool) {
	if !gs.IsTerminal() {
		return 0, false
	}
	return gs.CurrentPlayer, true
}

// PieceCount is the number of pieces of both players left on the board.
func (gs *GameState) PieceCount() int {
	return gs.Board.Pieces()
}

// Play applies move for the current player and returns the successor state.
// The move is validated even when it was taken from LegalMoves.
func (gs *GameState) Play(move Move) (*GameState, error) {
	if err := gs.validate(move); err != nil {
		return nil, err
	}

	board := gs.Board.Copy()
	board.Set(move.To, gs.CurrentPlayer.Cell())
	board.Set(move.From, Empty)

	return &GameState{
		Board:         board,
		CurrentPlayer: gs.Opponent(),
	}, nil
}

func (gs *GameState) validate(move Move) error {
	b := gs.Board
	switch {
	case !b.InBounds(move.From):
		return NewInvalidMoveError(move, gs.CurrentPlayer, "origin is off the board")
	case b.At(move.From) != gs.CurrentPlayer.Cell():
		return NewInvalidMoveError(move, gs.CurrentPlayer, "origin does not hold the mover's piece")
	case !b.InBounds(move.To):
		return NewInvalidMoveError(move, gs.CurrentPlayer, "destination is off the board")
	case !move.IsOrthogonal():
		return NewInvalidMoveError(move, gs.CurrentPlayer, "destination is not an orthogonal neighbour")
	case b.At(move.To) != gs.Opponent().Cell():
		return NewInvalidMoveError(move, gs.CurrentPlayer, "destination does not hold an opposing piece")
	}
	return nil
}

// Hash identifies the position and the side to move.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, uint8(gs.CurrentPlayer))
	binary.Write(hasher, binary.LittleEndian, int32(gs.Board.rows))
	binary.Write(hasher, binary.LittleEndian, int32(gs.Board.cols))
	for _, c := range gs.Board.cells {
		hasher.Write([]byte{byte(c)})
	}

	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	return gs.Board.String()
}

func (b *Board) movesFor(p Player) []Move {
	var moves []Move
	own, enemy := p.Cell(), p.Opponent().Cell()
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			from := Position{Row: r, Col: c}
			if b.At(from) != own {
				continue
			}
			for _, d := range Directions {
				to := from.Add(d)
				if b.InBounds(to) && b.At(to) == enemy {
					moves = append(moves, Move{From: from, To: to})
				}
			}
		}
	}
	return moves
}

func (b *Board) hasMove(p Player) bool {
	own, enemy := p.Cell(), p.Opponent().Cell()
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			from := Position{Row: r, Col: c}
			if b.At(from) != own {
				continue
			}
			for _, d := range Directions {
				to := from.Add(d)
				if b.InBounds(to) && b.At(to) == enemy {
					return true
				}
			}
		}
	}
	return false
}
