package board

// ShapeLegal reports whether a displacement of (dr, df) fits the movement
// pattern of a piece of type pt and color c on an otherwise empty board.
// Occupancy, turn and check are the validator's business.
func (pt PieceType) ShapeLegal(c Color, dr, df int) bool {
	switch pt {
	case Pawn:
		return pawnShape(c, dr, df)
	case Knight:
		return knightShape(dr, df)
	case Bishop:
		return diagonalShape(dr, df)
	case Rook:
		return orthogonalShape(dr, df)
	case Queen:
		return diagonalShape(dr, df) || orthogonalShape(dr, df)
	case King:
		return kingShape(dr, df)
	}
	return false
}

// HasValidShape applies the shape predicate of the moving piece.
// A move from an empty square has no valid shape.
func (m Move) HasValidShape() bool {
	return m.Kind().ShapeLegal(m.Color(), m.RankDelta(), m.FileDelta())
}

func knightShape(dr, df int) bool {
	dr, df = abs(dr), abs(df)
	return (dr == 1 && df == 2) || (dr == 2 && df == 1)
}

func diagonalShape(dr, df int) bool {
	return dr != 0 && abs(dr) == abs(df)
}

func orthogonalShape(dr, df int) bool {
	return (dr == 0) != (df == 0)
}

// kingShape also admits the two-file castling displacement.
func kingShape(dr, df int) bool {
	if dr == 0 && abs(df) == 2 {
		return true
	}
	return abs(dr) <= 1 && abs(df) <= 1 && (dr != 0 || df != 0)
}

func pawnShape(c Color, dr, df int) bool {
	fwd := c.forward()
	if df == 0 {
		return dr == fwd || dr == 2*fwd
	}
	return dr == fwd && abs(df) == 1
}
