package board

import "fmt"

// Move describes one move attempt: the two squares and what stood on them
// when the attempt was made. A Move is built once by NewMove and never changes.
type Move struct {
	from     Square
	to       Square
	piece    Piece
	captured Piece
}

// NewMove snapshots the occupants of from and to on b.
func NewMove(from, to Square, b *Board) Move {
	return Move{
		from:     from,
		to:       to,
		piece:    b.PieceAt(from),
		captured: b.PieceAt(to),
	}
}

// From returns the origin square.
func (m Move) From() Square {
	return m.from
}

// To returns the destination square.
func (m Move) To() Square {
	return m.to
}

// Piece returns the moving piece, or NoPiece if the origin was empty.
func (m Move) Piece() Piece {
	return m.piece
}

// Captured returns the occupant of the destination square, or NoPiece.
// An en passant victim is not reported here; it never stands on the destination.
func (m Move) Captured() Piece {
	return m.captured
}

// Kind returns the type of the moving piece.
func (m Move) Kind() PieceType {
	return m.piece.Type()
}

// Color returns the color of the moving piece.
func (m Move) Color() Color {
	return m.piece.Color()
}

// CapturedColor returns the color of the destination occupant, or NoColor.
func (m Move) CapturedColor() Color {
	return m.captured.Color()
}

// RankDelta returns destination rank minus origin rank.
func (m Move) RankDelta() int {
	return m.to.Rank() - m.from.Rank()
}

// FileDelta returns destination file minus origin file.
func (m Move) FileDelta() int {
	return m.to.File() - m.from.File()
}

// IsCapture returns true if the destination is occupied.
func (m Move) IsCapture() bool {
	return m.captured != NoPiece
}

// IsCastling returns true for a king move of two files.
func (m Move) IsCastling() bool {
	return m.Kind() == King && m.RankDelta() == 0 && abs(m.FileDelta()) == 2
}

// IsEnPassant returns true if this is a diagonal pawn move landing on the
// given en passant target.
func (m Move) IsEnPassant(target Square) bool {
	return m.Kind() == Pawn && target != NoSquare && m.to == target && abs(m.FileDelta()) == 1
}

// String returns the square-pair form of the move (e.g., "e2e4").
func (m Move) String() string {
	return m.from.String() + m.to.String()
}

// ParseSquares parses a square-pair move string such as "e2e4".
func ParseSquares(s string) (from, to Square, err error) {
	if len(s) != 4 {
		return NoSquare, NoSquare, fmt.Errorf("invalid move string: %q", s)
	}

	from, err = ParseSquare(s[0:2])
	if err != nil {
		return NoSquare, NoSquare, err
	}

	to, err = ParseSquare(s[2:4])
	if err != nil {
		return NoSquare, NoSquare, err
	}

	return from, to, nil
}
