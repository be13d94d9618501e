package board

// Pre-computed attack tables for non-sliding pieces
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square]

	// Squares strictly between two aligned squares
	betweenBB [64][64]Bitboard
)

type direction struct{ dr, df int }

var (
	diagonalDirs   = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	orthogonalDirs = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	knightOffsets  = []direction{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
	kingOffsets    = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func init() {
	initLeaperAttacks()
	initBetweenBB()
}

// initLeaperAttacks fills the knight, king and pawn tables. Offsets that
// leave the board cannot be represented in a Bitboard and are dropped here.
func initLeaperAttacks() {
	for sq := A1; sq <= H8; sq++ {
		knightAttacks[sq] = offsetAttacks(sq, knightOffsets)
		kingAttacks[sq] = offsetAttacks(sq, kingOffsets)

		// Capture-threat squares only; the push square is never attacked.
		for _, c := range []Color{White, Black} {
			fwd := c.forward()
			pawnAttacks[c][sq] = offsetAttacks(sq, []direction{{fwd, 1}, {fwd, -1}})
		}
	}
}

func offsetAttacks(sq Square, offsets []direction) Bitboard {
	var attacks Bitboard
	for _, d := range offsets {
		if to, ok := sq.Offset(d.dr, d.df); ok {
			attacks |= SquareBB(to)
		}
	}
	return attacks
}

func initBetweenBB() {
	for sq1 := A1; sq1 <= H8; sq1++ {
		for sq2 := A1; sq2 <= H8; sq2++ {
			dr := sq2.Rank() - sq1.Rank()
			df := sq2.File() - sq1.File()

			// Only aligned pairs have squares between them
			if !diagonalShape(dr, df) && !orthogonalShape(dr, df) {
				continue
			}

			var between Bitboard
			step := direction{sign(dr), sign(df)}
			for s, ok := sq1.Offset(step.dr, step.df); ok && s != sq2; s, ok = s.Offset(step.dr, step.df) {
				between |= SquareBB(s)
			}
			betweenBB[sq1][sq2] = between
		}
	}
}

// Between returns the squares strictly between two squares.
// Returns empty if the squares are not on a common rank, file or diagonal.
func Between(sq1, sq2 Square) Bitboard {
	if !sq1.IsValid() || !sq2.IsValid() {
		return Empty
	}
	return betweenBB[sq1][sq2]
}

// rayAttacks walks each direction from sq one square at a time. The first
// occupied square on a ray is attacked and ends the ray.
func rayAttacks(sq Square, occupied Bitboard, dirs []direction) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		for s, ok := sq.Offset(d.dr, d.df); ok; s, ok = s.Offset(d.dr, d.df) {
			attacks |= SquareBB(s)
			if occupied.IsSet(s) {
				break
			}
		}
	}
	return attacks
}

// BishopAttacks returns the diagonal ray attacks from sq.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return rayAttacks(sq, occupied, diagonalDirs)
}

// RookAttacks returns the orthogonal ray attacks from sq.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return rayAttacks(sq, occupied, orthogonalDirs)
}

// QueenAttacks returns the union of bishop and rook attacks.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the capture-threat squares of a pawn of color c on sq.
func PawnAttacks(sq Square, c Color) Bitboard {
	return pawnAttacks[c][sq]
}

// AttackMap holds the squares attacked by each color.
type AttackMap [2]Bitboard

// Of returns the squares attacked by c.
func (a AttackMap) Of(c Color) Bitboard {
	if c >= NoColor {
		return Empty
	}
	return a[c]
}

// Attacked reports whether sq is attacked by the given color.
func (a AttackMap) Attacked(sq Square, by Color) bool {
	return a.Of(by).IsSet(sq)
}

// ComputeAttacks builds both colors' attack maps from scratch. The result
// does not depend on whose turn it is.
func ComputeAttacks(b *Board) AttackMap {
	var am AttackMap
	occupied := b.AllOccupied()

	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			pieces := b.Pieces(c, pt)
			for pieces != 0 {
				am[c] |= pieceAttacks(pt, c, pieces.PopLSB(), occupied)
			}
		}
	}

	return am
}

func pieceAttacks(pt PieceType, c Color, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return PawnAttacks(sq, c)
	case Knight:
		return KnightAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	case King:
		return KingAttacks(sq)
	}
	return Empty
}
