// Package boardfile reads Clobber boards from text. Each non-blank line is a
// row of whitespace separated tokens: B, W or _ for an empty cell.
package boardfile

import (
	"bufio"
	"clobber/game"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var ErrEmptyBoard = errors.New("board has no rows")

// MalformedBoardError describes one bad row. Read reports every bad row at
// once, combined in a *multierror.Error.
type MalformedBoardError struct {
	Row    int // 1-based line number
	Reason string
}

func (mbe *MalformedBoardError) Error() string {
	return fmt.Sprintf("malformed board at line %d: %s", mbe.Row, mbe.Reason)
}

// InvalidBoardDimensionsError rejects boards with an odd number of cells.
type InvalidBoardDimensionsError struct {
	Rows, Cols int
}

func (ibde *InvalidBoardDimensionsError) Error() string {
	return fmt.Sprintf("board %dx%d is invalid: rows*cols must be even", ibde.Rows, ibde.Cols)
}

// Load reads the board stored at path.
func Load(path string) (*game.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open board file")
	}
	defer f.Close()

	board, err := Read(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "board file %s", path)
	}
	return board, nil
}

// Read parses a board and checks it is rectangular with an even cell count.
func Read(r io.Reader) (*game.Board, error) {
	var rows [][]game.Cell
	var errs error
	cols := -1

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		row, err := parseRow(line, tokens)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if cols < 0 {
			cols = len(row)
		} else if len(row) != cols {
			errs = multierror.Append(errs, &MalformedBoardError{
				Row:    line,
				Reason: fmt.Sprintf("expected %d cells, got %d", cols, len(row)),
			})
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read board")
	}
	if errs != nil {
		return nil, errs
	}
	if len(rows) == 0 {
		return nil, ErrEmptyBoard
	}
	if len(rows)*cols%2 != 0 {
		return nil, &InvalidBoardDimensionsError{Rows: len(rows), Cols: cols}
	}

	board := game.NewBoard(len(rows), cols)
	for r, row := range rows {
		for c, cell := range row {
			board.Set(game.Position{Row: r, Col: c}, cell)
		}
	}
	return board, nil
}

func parseRow(line int, tokens []string) ([]game.Cell, error) {
	row := make([]game.Cell, len(tokens))
	for i, token := range tokens {
		if len(token) != 1 || !game.Cell(token[0]).IsValid() {
			return nil, &MalformedBoardError{
				Row:    line,
				Reason: fmt.Sprintf("unknown symbol %q in column %d", token, i+1),
			}
		}
		row[i] = game.Cell(token[0])
	}
	return row, nil
}
