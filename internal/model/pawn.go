package model

// pawnMoves generates diagonal captures, then the single step, then the
// double step from the pawn's starting rank.
func pawnMoves(board *Board, from Position, color Color) []Move {
	moves := []Move{}
	fwd := color.forward()

	for _, dCol := range [2]int{1, -1} {
		target := from.Offset(fwd, dCol)
		if target.OnBoard() && isEnemyOf(board, color, target) {
			moves = appendPawnMove(moves, from, target, color)
		}
	}

	single := from.Offset(fwd, 0)
	if !single.OnBoard() || !board.isEmpty(single) {
		return moves
	}
	moves = appendPawnMove(moves, from, single, color)

	if from.Row == color.pawnRank() {
		double := from.Offset(2*fwd, 0)
		if board.isEmpty(double) {
			moves = append(moves, Move{From: from, To: double})
		}
	}
	return moves
}

// appendPawnMove expands a move onto the promotion rank into one move per
// promotion type.
func appendPawnMove(moves []Move, from, to Position, color Color) []Move {
	if to.Row != color.promotionRank() {
		return append(moves, Move{From: from, To: to})
	}
	for _, t := range promotionTypes {
		moves = append(moves, Move{From: from, To: to, Promotion: t})
	}
	return moves
}
