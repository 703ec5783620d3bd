package model

// Move is a pseudo-legal move. Promotion is empty unless a pawn reaches its
// last rank. Captures are not marked; the destination's occupant decides that.
type Move struct {
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

func (m Move) String() string {
	s := m.From.String() + "-" + m.To.String()
	if m.Promotion != "" {
		s += "=" + m.Promotion.getPieceNotation()
	}
	return s
}

var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}
