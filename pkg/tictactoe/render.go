package tictactoe

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitlinegames/tictactoe-cli/pkg/bitboard"
)

// Render writes the board as fixed-width ASCII. The exact bytes are a
// compatibility contract: seven-dash outer borders, |-----| between rows,
// one character per cell and no trailing newline.
//
//	-------
//	|X| |O|
//	|-----|
//	| |X| |
//	|-----|
//	|O| |X|
//	-------
func (that *Game) Render(w io.Writer) error {
	cell := func(i int) bitboard.Cell {
		return that.board.Cell(bitboard.NewCellIndex(i))
	}

	_, err := fmt.Fprintf(w,
		"-------\n|%s|%s|%s|\n|-----|\n|%s|%s|%s|\n|-----|\n|%s|%s|%s|\n-------",
		cell(0), cell(1), cell(2),
		cell(3), cell(4), cell(5),
		cell(6), cell(7), cell(8),
	)
	if err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

// String renders the board into memory for logs and tests.
func (that *Game) String() string {
	var board strings.Builder

	// strings.Builder never returns a write error.
	_ = that.Render(&board)

	return board.String()
}
