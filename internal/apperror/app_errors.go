package apperror

import "errors"

// configuration errors, reported back to the prompt that produced them.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrRowsOutOfRange    = errors.New("board rows should be from 5 to 9")
	ErrColumnsOutOfRange = errors.New("board columns should be from 5 to 9")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidGameCount  = errors.New("number of games must be a positive integer")
	ErrEmptyName         = errors.New("player name must not be empty")
)

// move rejections, the turn is retried.
var (
	ErrNotANumber = errors.New("incorrect column number")
	ErrOutOfRange = errors.New("column number is out of range")
	ErrColumnFull = errors.New("column is full")
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidBoard = errors.New("invalid board")

	ErrGameFinished      = errors.New("game is already finished")
	ErrGameInProgress    = errors.New("game is still in progress")
	ErrSessionEnded      = errors.New("session has ended")
	ErrSessionNotStarted = errors.New("session is not started")
	ErrSessionNotFound   = errors.New("session not found")
)
