package service

import "errors"

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrBoardExists   = errors.New("board already exists")
	ErrOffBoard      = errors.New("position is off the board")
	ErrInvalidPiece  = errors.New("invalid piece")
	ErrInvalidColor  = errors.New("invalid color")
	ErrEmptySquare   = errors.New("no piece at square")
)
