package game

import "fmt"

// Position is a cell coordinate, rows counted from the top.
type Position struct {
	Row int
	Col int
}

func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type Direction struct {
	Row int
	Col int
}

// Directions lists the orthogonal neighbours in move generation order:
// north, south, east, west.
var Directions = [4]Direction{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// Move takes the piece on From onto the opposing piece on To.
type Move struct {
	From Position
	To   Position
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

// IsOrthogonal reports whether To is one step north, south, east or west of From.
func (m Move) IsOrthogonal() bool {
	for _, d := range Directions {
		if m.From.Add(d) == m.To {
			return true
		}
	}
	return false
}
