package bitboard

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidCell is returned when user input does not name a board cell.
var ErrInvalidCell = errors.New("invalid cell index")

// Cell is the occupancy of a single board position. It is derived from the
// packed word on every read and never stored on its own.
type Cell uint8

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

// String renders the occupant the way the board drawing expects it: a
// space for an empty cell, X for player one, O for player two.
func (that Cell) String() string {
	switch that {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	default:
		return " "
	}
}

// CellCount is the number of cells on the board.
const CellCount = 9

// CellIndex addresses a board position in row-major order: 0 is the top
// left corner, 8 the bottom right.
type CellIndex uint8

// NewCellIndex converts a bare integer into a CellIndex. The value must be
// inside [0,9); anything else is a programming error and panics. Untrusted
// input goes through ParseCellIndex instead.
func NewCellIndex(index int) CellIndex {
	if index < 0 || index >= CellCount {
		panic(fmt.Sprintf("cell index %d is outside the board", index))
	}

	return CellIndex(index)
}

// ParseCellIndex reads a move typed by a player: exactly one ASCII digit
// between 0 and 8. Everything else, including longer strings that merely
// start with a digit, fails with ErrInvalidCell.
func ParseCellIndex(raw string) (CellIndex, error) {
	if len(raw) != 1 || raw[0] < '0' || raw[0] > '8' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCell, raw)
	}

	return CellIndex(raw[0] - '0'), nil
}

// Row is the zero-based row of the cell, counted from the top.
func (that CellIndex) Row() int {
	return int(that) / 3
}

// Column is the zero-based column of the cell, counted from the left.
func (that CellIndex) Column() int {
	return int(that) % 3
}

func (that CellIndex) String() string {
	return strconv.Itoa(int(that))
}

// mask is the single-bit mask of the cell inside one player's half-word.
func (that CellIndex) mask() uint32 {
	return 1 << (that.Row()*rowStep + that.Column()*colStep)
}
