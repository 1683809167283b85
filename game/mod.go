package game

// Player identifies one of the two sides. Black (B) always moves first.
type Player byte

const (
	Black Player = 'B'
	White Player = 'W'
)

// Opponent returns the other side. Applying it twice returns p.
func (p Player) Opponent() Player {
	if p == Black {
		return White
	}
	return Black
}

// Cell returns the board symbol of p's pieces.
func (p Player) Cell() Cell {
	return Cell(p)
}

func (p Player) String() string {
	return string(p)
}

type StateHash uint64

// Evaluate scores state from player's perspective. It is only consulted at
// the search horizon and at terminal nodes.
type Evaluate func(state *GameState, player Player) int
