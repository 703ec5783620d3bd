package model

var (
	orthogonalDirs = [4]direction{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}
	diagonalDirs   = [4]direction{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)

// slideMoves walks each direction until the edge or the first occupied
// square, which is included only when it holds an enemy.
func slideMoves(board *Board, from Position, color Color, dirs []direction) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		target := from.Offset(dir.dRow, dir.dCol)
		for target.OnBoard() && board.isEmpty(target) {
			moves = append(moves, Move{From: from, To: target})
			target = target.Offset(dir.dRow, dir.dCol)
		}
		if target.OnBoard() && isEnemyOf(board, color, target) {
			moves = append(moves, Move{From: from, To: target})
		}
	}
	return moves
}

// queenMoves is the rook's moves followed by the bishop's.
func queenMoves(board *Board, from Position, color Color) []Move {
	return append(slideMoves(board, from, color, orthogonalDirs[:]), slideMoves(board, from, color, diagonalDirs[:])...)
}
