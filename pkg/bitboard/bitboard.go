package bitboard

import "math/bits"

const (
	colStep = 1
	rowStep = 4

	playerTwoShift = 16

	// gridMask selects the nine cell bits of a single player's half-word.
	gridMask = 0x0777
)

// Bitboard packs both players' stones into one 32-bit word. Rows are four
// bits wide so that every row ends in a padding bit; player one occupies
// the low half of the word and player two the same layout shifted up by
// sixteen:
//
//	bit  0  1  2  .        bit 16 17 18  .
//	bit  4  5  6  .        bit 20 21 22  .
//	bit  8  9 10  .        bit 24 25 26  .
//
// The padding bits stay zero and keep the shift-based line test from
// smearing a stone at the end of one row into the start of the next, or
// from one player's half into the other's.
//
// The zero value is an empty board.
type Bitboard uint32

// Mark sets the given cell to the given occupant. Marking Empty clears the
// cell for both players; marking a player does not clear the other
// player's bit first, so callers must only mark cells they know are empty.
func (that *Bitboard) Mark(index CellIndex, cell Cell) {
	mask := index.mask()

	switch cell {
	case PlayerOne:
		*that |= Bitboard(mask)
	case PlayerTwo:
		*that |= Bitboard(mask << playerTwoShift)
	case Empty:
		*that &^= Bitboard(mask | mask<<playerTwoShift)
	}
}

// Cell reports who occupies the given position.
func (that Bitboard) Cell(index CellIndex) Cell {
	mask := index.mask()

	switch {
	case uint32(that)&mask != 0:
		return PlayerOne
	case uint32(that)&(mask<<playerTwoShift) != 0:
		return PlayerTwo
	default:
		return Empty
	}
}

// Stones counts the stones of both players together.
func (that Bitboard) Stones() int {
	return bits.OnesCount32(uint32(that))
}

// HasLine reports whether either player has completed a line of three.
// It runs the shift test on the combined word: the padding layout
// guarantees a hit can only come from three stones of the same player.
func (that Bitboard) HasLine() bool {
	return hasThreeAligned(uint32(that))
}

// Victor reports which player owns a completed line, or Empty when there
// is none. Each player's half of the word is tested on its own, so the
// answer does not depend on move order; player one is checked first.
func (that Bitboard) Victor() Cell {
	switch {
	case hasThreeAligned(uint32(that) & gridMask):
		return PlayerOne
	case hasThreeAligned(uint32(that) >> playerTwoShift & gridMask):
		return PlayerTwo
	default:
		return Empty
	}
}

// hasThreeAligned reports whether the word holds three set bits spaced by
// any of the four line strides: 1 along a row, 4 down a column, 5 down the
// main diagonal and 3 down the anti-diagonal. It works on the combined
// word and on a single extracted grid alike.
func hasThreeAligned(w uint32) bool {
	hit := w & (w >> colStep) & (w >> (2 * colStep))
	hit |= w & (w >> rowStep) & (w >> (2 * rowStep))
	hit |= w & (w >> (rowStep + colStep)) & (w >> (2 * (rowStep + colStep)))
	hit |= w & (w >> (rowStep - colStep)) & (w >> (2 * (rowStep - colStep)))

	return hit != 0
}
