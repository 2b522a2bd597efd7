// Package reversi implements the rules of Reversi for square boards of any
// even side length and two or more players.
package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/entity"
)

// directions are the 8 compass offsets a capture scan can follow.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Position is a board coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// LegalMoves maps each playable position to its capture runs, one run per
// capturing direction. Every listed position has at least one non-empty run.
// The map is a point-in-time snapshot, not a view into the board.
type LegalMoves map[Position][][]Position

// Game owns a board plus the turn and skip state. Both advance only through
// ApplyMove and SkipTurn; callers (bot, UI) control the sequencing so they
// can interleave notifications between transitions.
type Game struct {
	board   *entity.Board
	players int
	turn    int
	skipped int
}

// NewGame creates a game with the centered starting block already placed.
// The side length must be even and large enough to leave playable squares
// around the block.
func NewGame(side, players int) (*Game, error) {
	if players < 2 {
		return nil, fmt.Errorf("%w: need at least 2 players, got %d", apperror.ErrInvalidState, players)
	}

	if side%2 != 0 {
		return nil, fmt.Errorf("%w: odd side length %d", apperror.ErrInvalidState, side)
	}

	if side < startingBlockSide(players)+2 {
		return nil, fmt.Errorf("%w: side %d leaves no room to play around the starting block for %d players", apperror.ErrInvalidState, side, players)
	}

	game := &Game{
		board:   entity.NewBoard(side),
		players: players,
		turn:    1,
	}
	game.placeStartingBlock()

	return game, nil
}

// startingBlockSide is the side of the centered opening block: the smallest
// even number that fits every player.
func startingBlockSide(players int) int {
	if players%2 != 0 {
		return players + 1
	}

	return players
}

// placeStartingBlock seeds the centered opening block. Ownership rotates
// through the players so that the two-player block is the standard Othello
// layout, player 2 on the main diagonal.
func (that *Game) placeStartingBlock() {
	block := startingBlockSide(that.players)

	start := (that.board.Side() - block) / 2
	for row := 0; row < block; row++ {
		for col := 0; col < block; col++ {
			owner := entity.Cell((row+col+1)%that.players + 1)
			_ = that.board.SetCell(start+row, start+col, owner)
		}
	}
}

func (that *Game) Side() int {
	return that.board.Side()
}

func (that *Game) Players() int {
	return that.players
}

// Turn returns the player who must act next, in [1..Players].
func (that *Game) Turn() int {
	return that.turn
}

// Skipped returns how many players in a row had no legal move.
func (that *Game) Skipped() int {
	return that.skipped
}

// Cell returns the owner of the square at (row, col).
func (that *Game) Cell(row, col int) (entity.Cell, error) {
	return that.board.Cell(row, col)
}

// LegalMoves returns every position where player could place a piece,
// together with the capture runs that make the position legal.
func (that *Game) LegalMoves(player int) LegalMoves {
	moves := make(LegalMoves)

	side := that.board.Side()
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			if runs := that.capturesAt(player, row, col); len(runs) > 0 {
				moves[Position{Row: row, Col: col}] = runs
			}
		}
	}

	return moves
}

// capturesAt scans the 8 directions outward from (row, col) and collects one
// run per direction of contiguous opposing pieces bracketed by a piece of
// player. Scans stop at the first empty square or the board edge; they
// never wrap.
func (that *Game) capturesAt(player int, row, col int) [][]Position {
	if cell, err := that.board.Cell(row, col); err != nil || cell != entity.Empty {
		return nil
	}

	var runs [][]Position

	for _, dir := range directions {
		var run []Position

		r, c := row+dir[0], col+dir[1]
		for that.board.Contains(r, c) {
			cell, _ := that.board.Cell(r, c)
			if cell == entity.Empty {
				run = nil
				break
			}

			if cell == entity.Cell(player) {
				break
			}

			run = append(run, Position{Row: r, Col: c})
			r += dir[0]
			c += dir[1]
		}

		if !that.board.Contains(r, c) {
			// Ran off the edge without finding a bracketing piece.
			continue
		}

		if cell, _ := that.board.Cell(r, c); cell == entity.Cell(player) && len(run) > 0 {
			runs = append(runs, run)
		}
	}

	return runs
}

// ApplyMove places a piece for player at (row, col), flips every captured
// run and advances the turn. The move is atomic: on any error the board is
// untouched.
func (that *Game) ApplyMove(player, row, col int) error {
	if that.IsDone() {
		return apperror.ErrGameFinished
	}

	if !that.board.Contains(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	if that.turn != player {
		return fmt.Errorf("%w: player %d moved on player %d's turn", apperror.ErrNotYourTurn, player, that.turn)
	}

	runs := that.capturesAt(player, row, col)
	if len(runs) == 0 {
		return fmt.Errorf("%w: (%d, %d) captures nothing for player %d", apperror.ErrIllegalMove, row, col, player)
	}

	_ = that.board.SetCell(row, col, entity.Cell(player))
	for _, run := range runs {
		for _, pos := range run {
			_ = that.board.SetCell(pos.Row, pos.Col, entity.Cell(player))
		}
	}

	that.skipped = 0
	that.advanceTurn()

	return nil
}

// SkipTurn records that the current player has no legal move and advances
// the turn. Callers must invoke it exactly once per detected pass; nothing
// else advances the turn on their behalf.
func (that *Game) SkipTurn() {
	that.skipped++
	that.advanceTurn()
}

func (that *Game) advanceTurn() {
	that.turn = that.turn%that.players + 1
}

// IsDone reports whether the game is over: the board is full, or every
// player in sequence had to pass (the board can deadlock with empty
// squares remaining).
func (that *Game) IsDone() bool {
	return that.board.Full() || that.skipped >= that.players
}

// Winners returns the players holding the maximum piece count, in ascending
// order. More than one entry means a tie. It returns nil while the game is
// still running.
func (that *Game) Winners() []int {
	if !that.IsDone() {
		return nil
	}

	best := 0
	var winners []int

	for player := 1; player <= that.players; player++ {
		count := that.board.CountPieces(player)

		switch {
		case count > best:
			best = count
			winners = []int{player}
		case count == best:
			winners = append(winners, player)
		}
	}

	return winners
}

// Copy returns an independent game for speculative evaluation.
func (that *Game) Copy() *Game {
	return &Game{
		board:   that.board.Copy(),
		players: that.players,
		turn:    that.turn,
		skipped: that.skipped,
	}
}

// Snapshot exports the full game state for serialization.
func (that *Game) Snapshot() *entity.GameState {
	return &entity.GameState{
		Side:    that.board.Side(),
		Players: that.players,
		Grid:    that.board.Grid(),
		Turn:    that.turn,
		Skipped: that.skipped,
	}
}

// Restore rebuilds a game from a snapshot, restoring the board, the current
// player and the skip counter. It validates the whole state first and never
// returns a partially initialized game.
func Restore(state *entity.GameState) (*Game, error) {
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("restore game: %w", err)
	}

	board, err := entity.NewBoardFromGrid(state.Grid)
	if err != nil {
		return nil, fmt.Errorf("restore board: %w", err)
	}

	return &Game{
		board:   board,
		players: state.Players,
		turn:    state.Turn,
		skipped: state.Skipped,
	}, nil
}
