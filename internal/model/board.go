package model

import "fmt"

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Valid reports whether p is one of the six piece types.
func (p PieceType) Valid() bool {
	switch p {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Valid() bool {
	return c == White || c == Black
}

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the row delta of a pawn advance.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) homeRank() int {
	if c == White {
		return 1
	}
	return 8
}

func (c Color) pawnRank() int {
	if c == White {
		return 2
	}
	return 7
}

func (c Color) promotionRank() int {
	if c == White {
		return 8
	}
	return 1
}

type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Color, p.Type)
}

// Position is a 1-based (row, column) pair. Row 1 is White's home rank.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// OnBoard reports whether both coordinates are within [1,8].
func (p Position) OnBoard() bool {
	return p.Row >= 1 && p.Row <= 8 && p.Column >= 1 && p.Column <= 8
}

func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Column: p.Column + dCol}
}

func (p Position) String() string {
	if !p.OnBoard() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Column-1, p.Row)
}

type Square struct {
	Position Position `json:"position"`
	Piece    Piece    `json:"piece"`
}

type cell struct {
	piece    Piece
	occupied bool
}

// Board is an 8x8 grid of optional pieces. It is a plain value: assigning a
// Board copies every square.
type Board struct {
	cells [8][8]cell
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func NewBoard() *Board {
	return &Board{}
}

// NewStandardBoard returns a board holding the standard opening arrangement.
func NewStandardBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Place stores piece at pos, replacing any occupant. pos must be on the board.
func (b *Board) Place(pos Position, piece Piece) {
	b.cells[pos.Row-1][pos.Column-1] = cell{piece: piece, occupied: true}
}

func (b *Board) Clear(pos Position) {
	b.cells[pos.Row-1][pos.Column-1] = cell{}
}

// PieceAt returns the piece at pos and whether the square is occupied.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	c := b.cells[pos.Row-1][pos.Column-1]
	return c.piece, c.occupied
}

func (b *Board) isEmpty(pos Position) bool {
	return !b.cells[pos.Row-1][pos.Column-1].occupied
}

// Reset clears every square and sets up the standard opening arrangement.
func (b *Board) Reset() {
	b.cells = [8][8]cell{}
	for _, color := range []Color{White, Black} {
		for i, kind := range backRank {
			b.Place(Position{Row: color.homeRank(), Column: i + 1}, Piece{Type: kind, Color: color})
		}
		for col := 1; col <= 8; col++ {
			b.Place(Position{Row: color.pawnRank(), Column: col}, Piece{Type: Pawn, Color: color})
		}
	}
}

// Pieces lists occupied squares from row 1 to row 8, column 1 to column 8.
func (b *Board) Pieces() []Square {
	squares := make([]Square, 0, 32)
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			pos := Position{Row: row, Column: col}
			if piece, ok := b.PieceAt(pos); ok {
				squares = append(squares, Square{Position: pos, Piece: piece})
			}
		}
	}
	return squares
}
