package game

import "strings"

// Cell is the content of a single square.
type Cell byte

const (
	Empty     Cell = '_'
	BlackCell Cell = Cell(Black)
	WhiteCell Cell = Cell(White)
)

// IsValid reports whether c is one of the three board symbols.
func (c Cell) IsValid() bool {
	return c == Empty || c == BlackCell || c == WhiteCell
}

// Board is a fixed size rectangular grid stored row-major.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard returns an empty rows x cols board.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic("board dimensions must be positive")
	}
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = Empty
	}
	return &Board{rows: rows, cols: cols, cells: cells}
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// InBounds checks that pos lies on the board.
func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.rows && pos.Col >= 0 && pos.Col < b.cols
}

// At returns the cell at pos. pos must be in bounds.
func (b *Board) At(pos Position) Cell {
	return b.cells[pos.Row*b.cols+pos.Col]
}

// Set overwrites the cell at pos. Only used while building a board; states
// never mutate a board they have handed out.
func (b *Board) Set(pos Position, c Cell) {
	b.cells[pos.Row*b.cols+pos.Col] = c
}

// Count returns the number of p's pieces on the board.
func (b *Board) Count(p Player) int {
	n := 0
	for _, c := range b.cells {
		if c == p.Cell() {
			n++
		}
	}
	return n
}

// Pieces returns the number of occupied cells.
func (b *Board) Pieces() int {
	return b.Count(Black) + b.Count(White)
}

// Copy returns a board that shares no storage with b.
func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// Equal compares dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders one line per row with cells separated by a space, the same
// layout board files use.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte(b.At(Position{Row: r, Col: c})))
		}
	}
	return sb.String()
}
