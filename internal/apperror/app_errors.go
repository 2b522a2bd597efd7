package apperror

import "errors"

var (
	ErrOutOfBounds  = errors.New("position is outside the board")
	ErrIllegalMove  = errors.New("move is not legal for this player")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrInvalidState = errors.New("invalid game state")
	ErrGameFinished = errors.New("game is already finished")
)
