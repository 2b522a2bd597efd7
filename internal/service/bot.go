package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/reversi/internal/reversi"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// BotService picks moves for the player whose turn it is. When it returns
// ErrNoAvailableMoves the caller is responsible for calling SkipTurn.
type BotService interface {
	PickMove(game *reversi.Game) (reversi.Position, error)
	MakeTurn(game *reversi.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// PickMove greedily scores every legal move by captured pieces plus a
// positional weight and returns the best one. Ties resolve to the first
// candidate in row-major order, which keeps the bot deterministic.
func (that *botService) PickMove(game *reversi.Game) (reversi.Position, error) {
	moves := game.LegalMoves(game.Turn())
	if len(moves) == 0 {
		return reversi.Position{}, ErrNoAvailableMoves
	}

	var best reversi.Position
	bestScore := 0
	found := false

	for row := 0; row < game.Side(); row++ {
		for col := 0; col < game.Side(); col++ {
			pos := reversi.Position{Row: row, Col: col}

			runs, ok := moves[pos]
			if !ok {
				continue
			}

			score := positionWeight(game.Side(), row, col)
			for _, run := range runs {
				score += len(run)
			}

			if !found || score > bestScore {
				best = pos
				bestScore = score
				found = true
			}
		}
	}

	return best, nil
}

func (that *botService) MakeTurn(game *reversi.Game) error {
	pos, err := that.PickMove(game)
	if err != nil {
		return err
	}

	if err := game.ApplyMove(game.Turn(), pos.Row, pos.Col); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

// positionWeight favors corners, penalizes squares that hand a corner to
// the opponent and mildly prefers edges.
func positionWeight(side, row, col int) int {
	last := side - 1

	onCornerLine := func(v int) bool { return v == 0 || v == last }
	nearCornerLine := func(v int) bool { return v == 1 || v == last-1 }

	switch {
	case onCornerLine(row) && onCornerLine(col):
		return 32
	case nearCornerLine(row) && nearCornerLine(col):
		return -8
	case (onCornerLine(row) && nearCornerLine(col)) || (nearCornerLine(row) && onCornerLine(col)):
		return -8
	case onCornerLine(row) || onCornerLine(col):
		return 8
	default:
		return 0
	}
}
