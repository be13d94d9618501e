package board

import "fmt"

// Board is the 8x8 grid of optional occupants plus a color-indexed piece
// index. It holds no pointers, so assigning a Board produces an independent
// copy; the validator relies on that for its hypothetical boards.
type Board struct {
	squares  [64]Piece
	pieces   [2][6]Bitboard
	occupied [2]Bitboard
	kingSq   [2]Square
}

// NewBoard returns an empty board.
func NewBoard() Board {
	var b Board
	for sq := range b.squares {
		b.squares[sq] = NoPiece
	}
	b.kingSq = [2]Square{NoSquare, NoSquare}
	return b
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.squares[sq]
}

// IsEmpty returns true if the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.PieceAt(sq) == NoPiece
}

// Put places a piece on a square, replacing any occupant.
func (b *Board) Put(p Piece, sq Square) {
	if !sq.IsValid() {
		return
	}
	b.Remove(sq)
	if p == NoPiece {
		return
	}

	c, pt := p.Color(), p.Type()
	bb := SquareBB(sq)
	b.squares[sq] = p
	b.pieces[c][pt] |= bb
	b.occupied[c] |= bb
	if pt == King {
		b.kingSq[c] = sq
	}
}

// Remove clears a square and returns what was on it.
func (b *Board) Remove(sq Square) Piece {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return NoPiece
	}

	c, pt := p.Color(), p.Type()
	bb := SquareBB(sq)
	b.squares[sq] = NoPiece
	b.pieces[c][pt] &^= bb
	b.occupied[c] &^= bb
	if pt == King {
		b.kingSq[c] = b.pieces[c][King].LSB()
	}
	return p
}

// Relocate clears from and places its occupant on to.
// It returns whatever previously stood on to.
func (b *Board) Relocate(from, to Square) Piece {
	p := b.Remove(from)
	captured := b.Remove(to)
	b.Put(p, to)
	return captured
}

// King returns the square of the king of the given color, or NoSquare.
func (b *Board) King(c Color) Square {
	if c >= NoColor {
		return NoSquare
	}
	return b.kingSq[c]
}

// Pawns returns the set of squares holding pawns of the given color.
func (b *Board) Pawns(c Color) Bitboard {
	return b.Pieces(c, Pawn)
}

// Pieces returns the squares holding pieces of the given color and type.
func (b *Board) Pieces(c Color, pt PieceType) Bitboard {
	if c >= NoColor || pt >= NoPieceType {
		return Empty
	}
	return b.pieces[c][pt]
}

// Occupied returns the squares holding pieces of the given color.
func (b *Board) Occupied(c Color) Bitboard {
	if c >= NoColor {
		return Empty
	}
	return b.occupied[c]
}

// AllOccupied returns every occupied square.
func (b *Board) AllOccupied() Bitboard {
	return b.occupied[White] | b.occupied[Black]
}

// String returns a visual representation of the board, rank 8 on top.
func (b *Board) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n"
	return s
}
