package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/reversi/internal/apperror"
)

func TestBoard_Cell(t *testing.T) {
	t.Run("Empty cell on a fresh board", func(t *testing.T) {
		// Given: a fresh board
		board := NewBoard(8)

		// When: reading a cell inside the grid
		cell, err := board.Cell(3, 4)

		// Then: the cell is empty, not an error
		require.NoError(t, err)
		require.Equal(t, Empty, cell)
	})

	t.Run("Out of bounds is an error, never a sentinel", func(t *testing.T) {
		// Given: a fresh board
		board := NewBoard(8)

		// When: reading outside the grid
		_, err := board.Cell(8, 0)

		// Then: an ErrOutOfBounds error must be returned
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)

		_, err = board.Cell(0, -1)
		assert.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})
}

func TestBoard_SetCell(t *testing.T) {
	t.Run("SetCell", func(t *testing.T) {
		// Given: a fresh board
		board := NewBoard(8)

		// When: setting a cell
		err := board.SetCell(2, 5, Cell(1))
		require.NoError(t, err)

		// Then: the cell holds the new owner
		cell, err := board.Cell(2, 5)
		require.NoError(t, err)
		require.Equal(t, Cell(1), cell)
	})

	t.Run("SetCell out of bounds", func(t *testing.T) {
		// Given: a fresh board
		board := NewBoard(4)

		// When: writing outside the grid
		err := board.SetCell(4, 4, Cell(1))

		// Then: an ErrOutOfBounds error must be returned
		assert.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})
}

func TestBoard_Copy(t *testing.T) {
	// Given: a board with one piece
	board := NewBoard(4)
	require.NoError(t, board.SetCell(1, 1, Cell(2)))

	// When: copying it and mutating the copy
	boardCopy := board.Copy()
	require.NoError(t, boardCopy.SetCell(1, 1, Cell(1)))
	require.NoError(t, boardCopy.SetCell(0, 0, Cell(1)))

	// Then: the original is untouched
	cell, err := board.Cell(1, 1)
	require.NoError(t, err)
	require.Equal(t, Cell(2), cell)

	cell, err = board.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Empty, cell)
}

func TestBoard_Grid(t *testing.T) {
	// Given: a board with a piece
	board := NewBoard(4)
	require.NoError(t, board.SetCell(3, 0, Cell(1)))

	// When: exporting the grid and mutating the export
	grid := board.Grid()
	require.Equal(t, Cell(1), grid[3][0])
	grid[3][0] = Cell(2)

	// Then: the board is detached from the export
	cell, err := board.Cell(3, 0)
	require.NoError(t, err)
	require.Equal(t, Cell(1), cell)
}

func TestBoard_CountPiecesAndFull(t *testing.T) {
	// Given: a 2x2 board with three pieces
	board := NewBoard(2)
	require.NoError(t, board.SetCell(0, 0, Cell(1)))
	require.NoError(t, board.SetCell(0, 1, Cell(1)))
	require.NoError(t, board.SetCell(1, 0, Cell(2)))

	// Then: counts match and the board is not full
	require.Equal(t, 2, board.CountPieces(1))
	require.Equal(t, 1, board.CountPieces(2))
	require.False(t, board.Full())

	// When: the last square is filled
	require.NoError(t, board.SetCell(1, 1, Cell(2)))

	// Then: the board is full
	assert.True(t, board.Full())
}

func TestNewBoardFromGrid(t *testing.T) {
	t.Run("Valid grid", func(t *testing.T) {
		// Given: a square grid
		grid := [][]Cell{
			{1, 0},
			{0, 2},
		}

		// When: building a board from it
		board, err := NewBoardFromGrid(grid)
		require.NoError(t, err)

		// Then: the board holds the same contents
		require.Equal(t, grid, board.Grid())
	})

	t.Run("Ragged grid", func(t *testing.T) {
		// Given: a grid with a short row
		grid := [][]Cell{
			{1, 0},
			{0},
		}

		// When: building a board from it
		_, err := NewBoardFromGrid(grid)

		// Then: an ErrInvalidState error must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidState)
	})
}
