package model

var (
	knightOffsets = [8]direction{{2, 1}, {-2, 1}, {2, -1}, {-2, -1}, {1, 2}, {-1, 2}, {1, -2}, {-1, -2}}
	kingOffsets   = [8]direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// stepMoves emits one move per offset landing on an empty or enemy square.
func stepMoves(board *Board, from Position, color Color, offsets []direction) []Move {
	moves := []Move{}
	for _, off := range offsets {
		target := from.Offset(off.dRow, off.dCol)
		if !target.OnBoard() {
			continue
		}
		if board.isEmpty(target) || isEnemyOf(board, color, target) {
			moves = append(moves, Move{From: from, To: target})
		}
	}
	return moves
}
