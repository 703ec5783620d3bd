package model

import "fmt"

// GenerateMoves returns every pseudo-legal move of the piece standing at from.
// Moves are not checked for king safety. The board is only read. An empty
// square yields no moves.
func GenerateMoves(board *Board, from Position) []Move {
	piece, ok := board.PieceAt(from)
	if !ok {
		return nil
	}
	return piece.Moves(board, from)
}

// Moves generates the pseudo-legal moves of p as if it stood on from.
func (p Piece) Moves(board *Board, from Position) []Move {
	switch p.Type {
	case Pawn:
		return pawnMoves(board, from, p.Color)
	case Knight:
		return stepMoves(board, from, p.Color, knightOffsets[:])
	case Bishop:
		return slideMoves(board, from, p.Color, diagonalDirs[:])
	case Rook:
		return slideMoves(board, from, p.Color, orthogonalDirs[:])
	case Queen:
		return queenMoves(board, from, p.Color)
	case King:
		return stepMoves(board, from, p.Color, kingOffsets[:])
	default:
		panic(fmt.Errorf("%w: %q", ErrUnknownPieceType, p.Type))
	}
}

// GenerateTeamMoves collects the moves of every piece of color, scanning
// squares from row 1 to row 8.
func GenerateTeamMoves(board *Board, color Color) []Move {
	moves := []Move{}
	for _, sq := range board.Pieces() {
		if sq.Piece.Color == color {
			moves = append(moves, sq.Piece.Moves(board, sq.Position)...)
		}
	}
	return moves
}

// IsEnemy reports whether from and to both hold pieces of different colors.
func IsEnemy(board *Board, from, to Position) bool {
	a, ok := board.PieceAt(from)
	if !ok {
		return false
	}
	b, ok := board.PieceAt(to)
	if !ok {
		return false
	}
	return a.Color != b.Color
}

// isEnemyOf is IsEnemy for a mover that may not be on the board itself.
func isEnemyOf(board *Board, color Color, to Position) bool {
	p, ok := board.PieceAt(to)
	return ok && p.Color == color.Opposite()
}

type direction struct {
	dRow, dCol int
}
