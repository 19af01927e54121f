package tictactoe

import (
	"fmt"
	"iter"

	"github.com/bitlinegames/tictactoe-cli/pkg/bitboard"
)

// Game layers turn order and move validation over the raw bitboard. Whose
// turn it is and whether the match is over are always derived from the
// stones on the board; the only state a Game carries is the board itself.
type Game struct {
	board bitboard.Bitboard
}

// NewGame returns a fresh match with an empty board and player one to move.
func NewGame() *Game {
	return &Game{}
}

// State derives the current phase of the match. A completed line is
// attributed to the player whose stones form it; without one, a full board
// is a draw and otherwise the stone count decides whose turn it is, player
// one moving on even counts because they open the game.
func (that *Game) State() State {
	switch that.board.Victor() {
	case bitboard.PlayerOne:
		return VictoryPlayerOne
	case bitboard.PlayerTwo:
		return VictoryPlayerTwo
	}

	stones := that.board.Stones()

	switch {
	case stones == bitboard.CellCount:
		return Draw
	case stones%2 == 0:
		return TurnPlayerOne
	default:
		return TurnPlayerTwo
	}
}

// LegalMoves yields the empty cells in ascending index order. The sequence
// is evaluated lazily against the live board, so a sequence started before
// a move and one started after it disagree by exactly that move.
func (that *Game) LegalMoves() iter.Seq[bitboard.CellIndex] {
	return func(yield func(bitboard.CellIndex) bool) {
		for i := 0; i < bitboard.CellCount; i++ {
			index := bitboard.NewCellIndex(i)

			if that.board.Cell(index) != bitboard.Empty {
				continue
			}

			if !yield(index) {
				return
			}
		}
	}
}

// Play places a stone for the player whose turn it is. The cell must be
// empty and the match must still be running; breaking either rule is a
// bug in the caller, not a runtime condition, so Play panics instead of
// returning an error. Interactive callers check the board and State first
// and keep their own recoverable errors.
func (that *Game) Play(index bitboard.CellIndex) {
	if that.board.Cell(index) != bitboard.Empty {
		panic(fmt.Sprintf("cell %s is already occupied", index))
	}

	var stone bitboard.Cell

	switch that.State() {
	case TurnPlayerOne:
		stone = bitboard.PlayerOne
	case TurnPlayerTwo:
		stone = bitboard.PlayerTwo
	default:
		panic("game is already finished")
	}

	that.board.Mark(index, stone)
}

// Cell reports who occupies the given position.
func (that *Game) Cell(index bitboard.CellIndex) bitboard.Cell {
	return that.board.Cell(index)
}

// Board returns a copy of the packed board word.
func (that *Game) Board() bitboard.Bitboard {
	return that.board
}
