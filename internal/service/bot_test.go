package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/reversi/internal/entity"
	"github.com/rocketscienceinc/reversi/internal/reversi"
)

func emptyGrid(side int) [][]entity.Cell {
	grid := make([][]entity.Cell, side)
	for row := range grid {
		grid[row] = make([]entity.Cell, side)
	}

	return grid
}

func TestBotService_PickMove(t *testing.T) {
	t.Run("Prefers the corner over a smaller gain", func(t *testing.T) {
		// Given: player 1 can either take the upper-left corner with a long
		// edge capture, or flip a single piece at (4, 0)
		grid := emptyGrid(8)
		for col := 1; col <= 6; col++ {
			grid[0][col] = 2
		}
		grid[0][7] = 1
		grid[4][1] = 2
		grid[4][2] = 1

		game, err := reversi.Restore(&entity.GameState{Side: 8, Players: 2, Grid: grid, Turn: 1})
		require.NoError(t, err)

		// Sanity: both candidates are legal
		moves := game.LegalMoves(1)
		require.Contains(t, moves, reversi.Position{Row: 0, Col: 0})
		require.Contains(t, moves, reversi.Position{Row: 4, Col: 0})

		// When: the bot picks a move
		bot := NewBotService()
		pos, err := bot.PickMove(game)

		// Then: it takes the corner
		require.NoError(t, err)
		require.Equal(t, reversi.Position{Row: 0, Col: 0}, pos)
	})

	t.Run("Error when no moves are available", func(t *testing.T) {
		// Given: a board with only the bot's own pieces
		grid := emptyGrid(4)
		grid[0][0] = 1
		grid[0][1] = 1

		game, err := reversi.Restore(&entity.GameState{Side: 4, Players: 2, Grid: grid, Turn: 1})
		require.NoError(t, err)

		// When: the bot is asked to move
		bot := NewBotService()
		_, err = bot.PickMove(game)

		// Then: ErrNoAvailableMoves, and the caller must SkipTurn
		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}

func TestBotService_MakeTurn(t *testing.T) {
	// Given: a standard game where it is the bot's (player 1's) turn
	game, err := reversi.NewGame(8, 2)
	require.NoError(t, err)

	// When: the bot takes its turn
	bot := NewBotService()
	require.NoError(t, bot.MakeTurn(game))

	// Then: a move was applied and the turn advanced
	require.Equal(t, 2, game.Turn())
	require.Equal(t, 0, game.Skipped())

	// Then: the bot now owns more pieces than it started with
	count := 0
	for row := 0; row < game.Side(); row++ {
		for col := 0; col < game.Side(); col++ {
			if cell, _ := game.Cell(row, col); cell == entity.Cell(1) {
				count++
			}
		}
	}
	assert.Equal(t, 4, count) // 2 starting + 1 placed + 1 flipped
}
