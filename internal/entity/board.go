package entity

import (
	"fmt"

	"github.com/rocketscienceinc/reversi/internal/apperror"
)

// Cell is the owner of a single board square.
// Empty is the only sentinel for "no piece"; a missing square is an
// apperror.ErrOutOfBounds failure, never a cell value.
type Cell int

const Empty Cell = 0

// Board stores cell ownership for one game. It has no rules knowledge;
// legality checks belong to the rules engine.
type Board struct {
	side  int
	cells []Cell
}

func NewBoard(side int) *Board {
	return &Board{
		side:  side,
		cells: make([]Cell, side*side),
	}
}

// NewBoardFromGrid builds a board from a square grid of cell values.
func NewBoardFromGrid(grid [][]Cell) (*Board, error) {
	side := len(grid)

	board := NewBoard(side)
	for row, cells := range grid {
		if len(cells) != side {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidState, row, len(cells), side)
		}
		copy(board.cells[row*side:(row+1)*side], cells)
	}

	return board, nil
}

func (that *Board) Side() int {
	return that.side
}

// Cell returns the owner of the square at (row, col).
func (that *Board) Cell(row, col int) (Cell, error) {
	if !that.Contains(row, col) {
		return Empty, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	return that.cells[row*that.side+col], nil
}

// SetCell overwrites the square at (row, col) without any legality checks.
func (that *Board) SetCell(row, col int, value Cell) error {
	if !that.Contains(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	that.cells[row*that.side+col] = value

	return nil
}

func (that *Board) Contains(row, col int) bool {
	return row >= 0 && row < that.side && col >= 0 && col < that.side
}

// Copy returns a deep, independent copy of the board. The rules engine and
// the bot use it for speculative move evaluation.
func (that *Board) Copy() *Board {
	cells := make([]Cell, len(that.cells))
	copy(cells, that.cells)

	return &Board{
		side:  that.side,
		cells: cells,
	}
}

// Grid returns the board contents as a detached row-major grid.
func (that *Board) Grid() [][]Cell {
	grid := make([][]Cell, that.side)
	for row := range grid {
		grid[row] = make([]Cell, that.side)
		copy(grid[row], that.cells[row*that.side:(row+1)*that.side])
	}

	return grid
}

// CountPieces returns how many squares the given player owns.
func (that *Board) CountPieces(player int) int {
	count := 0
	for _, cell := range that.cells {
		if cell == Cell(player) {
			count++
		}
	}

	return count
}

// Full reports whether no empty squares remain.
func (that *Board) Full() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}
