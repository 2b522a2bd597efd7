package entity

import (
	"fmt"

	"github.com/rocketscienceinc/reversi/internal/apperror"
)

// GameState is the serialized form of a game: everything needed to rebuild
// the rules engine after a save/load round trip.
type GameState struct {
	Side    int      `json:"side"`
	Players int      `json:"players"`
	Grid    [][]Cell `json:"grid"`
	Turn    int      `json:"turn"`
	Skipped int      `json:"skipped"`
}

// Validate rejects states that cannot belong to any game: wrong grid
// dimensions, an out-of-range turn or skip counter, or cells owned by
// players that don't exist. Loading must fail before a partially
// initialized engine can be built.
func (that *GameState) Validate() error {
	if that.Players < 2 {
		return fmt.Errorf("%w: need at least 2 players, got %d", apperror.ErrInvalidState, that.Players)
	}

	if that.Turn < 1 || that.Turn > that.Players {
		return fmt.Errorf("%w: turn %d is not a player in [1..%d]", apperror.ErrInvalidState, that.Turn, that.Players)
	}

	if that.Skipped < 0 || that.Skipped > that.Players {
		return fmt.Errorf("%w: skip counter %d out of range", apperror.ErrInvalidState, that.Skipped)
	}

	if len(that.Grid) != that.Side {
		return fmt.Errorf("%w: grid has %d rows, want %d", apperror.ErrInvalidState, len(that.Grid), that.Side)
	}

	for row, cells := range that.Grid {
		if len(cells) != that.Side {
			return fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidState, row, len(cells), that.Side)
		}

		for col, cell := range cells {
			if cell < Empty || int(cell) > that.Players {
				return fmt.Errorf("%w: cell (%d, %d) owned by unknown player %d", apperror.ErrInvalidState, row, col, cell)
			}
		}
	}

	return nil
}
