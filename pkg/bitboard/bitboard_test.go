package bitboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lines is every winning combination in cell indexes: three rows, three
// columns and both diagonals.
var lines = [][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func TestBitboard_MarkAndCell(t *testing.T) {
	t.Run("Reads back a stone for either player on any cell", func(t *testing.T) {
		for i := 0; i < CellCount; i++ {
			index := NewCellIndex(i)

			for _, player := range []Cell{PlayerOne, PlayerTwo} {
				// Given: an empty board
				var board Bitboard

				// When: marking one cell for the player
				board.Mark(index, player)

				// Then: that cell reads back as the player and nothing else changed
				require.Equal(t, player, board.Cell(index))
				require.Equal(t, 1, board.Stones())
			}
		}
	})

	t.Run("Marking Empty clears the cell for both players", func(t *testing.T) {
		// Given: a board with one stone of each player
		var board Bitboard
		board.Mark(NewCellIndex(4), PlayerOne)
		board.Mark(NewCellIndex(6), PlayerTwo)

		// When: clearing both cells again
		board.Mark(NewCellIndex(4), Empty)
		board.Mark(NewCellIndex(6), Empty)

		// Then: the board is empty
		assert.Equal(t, Empty, board.Cell(NewCellIndex(4)))
		assert.Equal(t, Empty, board.Cell(NewCellIndex(6)))
		assert.Zero(t, board.Stones())
	})

	t.Run("Stones on other cells are left alone", func(t *testing.T) {
		// Given: a board with stones on cells 0 and 8
		var board Bitboard
		board.Mark(NewCellIndex(0), PlayerOne)
		board.Mark(NewCellIndex(8), PlayerTwo)

		// When: marking cell 4
		board.Mark(NewCellIndex(4), PlayerOne)

		// Then: the earlier stones are untouched
		assert.Equal(t, PlayerOne, board.Cell(NewCellIndex(0)))
		assert.Equal(t, PlayerTwo, board.Cell(NewCellIndex(8)))
		assert.Equal(t, 3, board.Stones())
	})
}

func TestBitboard_Stones(t *testing.T) {
	t.Run("Counts the stones of both players together", func(t *testing.T) {
		// Given: an empty board
		var board Bitboard
		assert.Zero(t, board.Stones())

		// When: placing two stones for player one and one for player two
		board.Mark(NewCellIndex(0), PlayerOne)
		board.Mark(NewCellIndex(4), PlayerTwo)
		board.Mark(NewCellIndex(8), PlayerOne)

		// Then: all three are counted
		assert.Equal(t, 3, board.Stones())
	})
}

func TestBitboard_HasLine(t *testing.T) {
	t.Run("Detects every winning line for either player", func(t *testing.T) {
		for _, line := range lines {
			for _, player := range []Cell{PlayerOne, PlayerTwo} {
				// Given: a board with one full line for the player
				var board Bitboard
				for _, cell := range line {
					board.Mark(NewCellIndex(cell), player)
				}

				// Then: the line is detected
				require.True(t, board.HasLine(), "line %v for %q", line, player.String())
			}
		}
	})

	t.Run("Empty board has no line", func(t *testing.T) {
		var board Bitboard

		assert.False(t, board.HasLine())
	})

	t.Run("Two stones in a row are not a line", func(t *testing.T) {
		// Given: player one on cells 0 and 1
		var board Bitboard
		board.Mark(NewCellIndex(0), PlayerOne)
		board.Mark(NewCellIndex(1), PlayerOne)

		// Then: no line is reported
		assert.False(t, board.HasLine())
	})

	t.Run("Stones crossing a row edge are not a line", func(t *testing.T) {
		// Given: player one on cells 2, 3 and 4, adjacent in index order
		// but split across two rows
		var board Bitboard
		board.Mark(NewCellIndex(2), PlayerOne)
		board.Mark(NewCellIndex(3), PlayerOne)
		board.Mark(NewCellIndex(4), PlayerOne)

		// Then: the row padding keeps them from counting as a line
		assert.False(t, board.HasLine())
	})

	t.Run("A diagonal of mixed stones is not a line", func(t *testing.T) {
		// Given: the main diagonal split between the players
		var board Bitboard
		board.Mark(NewCellIndex(0), PlayerOne)
		board.Mark(NewCellIndex(4), PlayerTwo)
		board.Mark(NewCellIndex(8), PlayerOne)

		// Then: neither player has a line
		assert.False(t, board.HasLine())
		assert.Equal(t, Empty, board.Victor())
	})
}

func TestBitboard_Victor(t *testing.T) {
	t.Run("Attributes the line to the player who owns it", func(t *testing.T) {
		for _, player := range []Cell{PlayerOne, PlayerTwo} {
			// Given: a board where the player holds the main diagonal and
			// the opponent has two scattered stones
			opponent := PlayerOne
			if player == PlayerOne {
				opponent = PlayerTwo
			}

			var board Bitboard
			board.Mark(NewCellIndex(0), player)
			board.Mark(NewCellIndex(4), player)
			board.Mark(NewCellIndex(8), player)
			board.Mark(NewCellIndex(1), opponent)
			board.Mark(NewCellIndex(5), opponent)

			// Then: the diagonal is attributed to its owner
			require.Equal(t, player, board.Victor())
		}
	})

	t.Run("Returns Empty when nobody has a line", func(t *testing.T) {
		// Given: a full board without a line
		var board Bitboard
		for _, cell := range []int{0, 1, 5, 6, 8} {
			board.Mark(NewCellIndex(cell), PlayerOne)
		}
		for _, cell := range []int{2, 3, 4, 7} {
			board.Mark(NewCellIndex(cell), PlayerTwo)
		}

		// Then: there is no victor even though the board is full
		require.Equal(t, CellCount, board.Stones())
		assert.False(t, board.HasLine())
		assert.Equal(t, Empty, board.Victor())
	})
}

func TestNewCellIndex(t *testing.T) {
	t.Run("Accepts the whole board range", func(t *testing.T) {
		assert.Equal(t, CellIndex(0), NewCellIndex(0))
		assert.Equal(t, CellIndex(8), NewCellIndex(8))
	})

	t.Run("Panics on an index greater than the range", func(t *testing.T) {
		assert.Panics(t, func() {
			NewCellIndex(9)
		})
	})

	t.Run("Panics on a negative index", func(t *testing.T) {
		assert.Panics(t, func() {
			NewCellIndex(-1)
		})
	})
}

func TestParseCellIndex(t *testing.T) {
	t.Run("Parses every digit from 0 to 8", func(t *testing.T) {
		for i := 0; i < CellCount; i++ {
			raw := string(rune('0' + i))

			index, err := ParseCellIndex(raw)

			require.NoError(t, err)
			require.Equal(t, NewCellIndex(i), index)
		}
	})

	t.Run("Rejects anything that is not a single digit on the board", func(t *testing.T) {
		for _, raw := range []string{"", "9", "a", "12", "-1", " 3", "3 ", "q"} {
			_, err := ParseCellIndex(raw)

			require.ErrorIs(t, err, ErrInvalidCell, "input %q", raw)
		}
	})

	t.Run("Error message names the rejected input", func(t *testing.T) {
		_, err := ParseCellIndex("nope")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"nope"`)
	})
}

func TestCellIndex_RowColumn(t *testing.T) {
	t.Run("Maps indexes to rows and columns in row-major order", func(t *testing.T) {
		tests := []struct {
			index  int
			row    int
			column int
		}{
			{index: 0, row: 0, column: 0},
			{index: 2, row: 0, column: 2},
			{index: 4, row: 1, column: 1},
			{index: 5, row: 1, column: 2},
			{index: 8, row: 2, column: 2},
		}

		for _, test := range tests {
			index := NewCellIndex(test.index)

			assert.Equal(t, test.row, index.Row())
			assert.Equal(t, test.column, index.Column())
		}
	})
}

func TestCell_String(t *testing.T) {
	t.Run("Renders the board characters", func(t *testing.T) {
		assert.Equal(t, "X", PlayerOne.String())
		assert.Equal(t, "O", PlayerTwo.String())
		assert.Equal(t, " ", Empty.String())
	})
}
