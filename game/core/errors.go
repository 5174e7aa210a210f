package core

import "errors"

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidBoardSize  = errors.New("invalid board size")
	ErrGameFinished      = errors.New("game is finished")
	ErrNoComputerMove    = errors.New("no computer move available")
)
