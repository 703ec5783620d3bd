package model

import "errors"

// ErrUnknownPieceType is raised (as a panic) when move generation meets a
// piece type it has no geometry for.
var ErrUnknownPieceType = errors.New("unknown piece type")
