package board

import "fmt"

var (
	kingHome     = [2]Square{E1, E8}
	pawnHomeRank = [2]int{1, 6}
)

// castlingRook returns the rook's home corner and its square after castling.
func castlingRook(c Color, kingSide bool) (from, to Square) {
	rank := 0
	if c == Black {
		rank = 7
	}
	if kingSide {
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank)
}

// Validate reports whether m is legal in p, returning nil if so. It never
// modifies p. The checks run in a fixed order and stop at the first failure:
// an origin piece, a legal shape, then the board rules.
func (p *Position) Validate(m Move) error {
	if m.Piece() == NoPiece {
		return fmt.Errorf("%w: %s", ErrNoPiece, m.From())
	}
	if !m.HasValidShape() {
		return fmt.Errorf("%w: %s %s", ErrBadShape, m.Kind(), m)
	}
	return p.checkRules(m)
}

// checkRules applies turn, occupancy, path, pawn, castling and king-safety
// rules to a move whose shape is already known to be legal.
func (p *Position) checkRules(m Move) error {
	us := m.Color()

	if us != p.sideToMove {
		return fmt.Errorf("%w: %s to move", ErrWrongTurn, p.sideToMove)
	}

	if m.CapturedColor() == us {
		return fmt.Errorf("%w: %s on %s", ErrFriendlyFire, m.Captured(), m.To())
	}

	// Knights jump; every other piece needs a clear line.
	if m.Kind() != Knight {
		if blockers := Between(m.From(), m.To()) & p.board.AllOccupied(); blockers != 0 {
			return fmt.Errorf("%w: %s", ErrPathBlocked, blockers.LSB())
		}
	}

	if m.Kind() == Pawn {
		if err := p.checkPawn(m); err != nil {
			return err
		}
	}

	if m.IsCastling() {
		if err := p.checkCastling(m); err != nil {
			return err
		}
	}

	if p.leavesKingAttacked(m) {
		return fmt.Errorf("%w: %s", ErrKingInCheck, m)
	}

	return nil
}

func (p *Position) checkPawn(m Move) error {
	us := m.Color()
	dr, df := m.RankDelta(), m.FileDelta()

	if abs(dr) == 1 && abs(df) == 1 && !m.IsCapture() {
		if !m.IsEnPassant(p.enPassant) {
			return fmt.Errorf("%w: diagonal move without capture", ErrPawnRule)
		}
		victim := p.board.PieceAt(enPassantVictim(m))
		if victim != NewPiece(Pawn, us.Other()) {
			return fmt.Errorf("%w: no pawn to take en passant", ErrPawnRule)
		}
	}

	if abs(dr) == 2 && m.From().Rank() != pawnHomeRank[us] {
		return fmt.Errorf("%w: double step from rank %d", ErrPawnRule, m.From().Rank()+1)
	}

	if df == 0 && m.IsCapture() {
		return fmt.Errorf("%w: pawns cannot capture straight ahead", ErrPawnRule)
	}

	return nil
}

// checkCastling requires the right, the king and rook on their home squares,
// an empty path between them and no attacked square on the king's route.
func (p *Position) checkCastling(m Move) error {
	us, them := m.Color(), m.Color().Other()
	kingSide := m.FileDelta() > 0

	if !p.castlingRights.CanCastle(us, kingSide) {
		return fmt.Errorf("%w: %s %s", ErrCastlingRights, us, castleSide(kingSide))
	}

	rookFrom, _ := castlingRook(us, kingSide)
	if m.From() != kingHome[us] || p.board.PieceAt(rookFrom) != NewPiece(Rook, us) {
		return fmt.Errorf("%w: king or rook not at home", ErrCastlingBlocked)
	}
	if Between(m.From(), rookFrom)&p.board.AllOccupied() != 0 {
		return fmt.Errorf("%w: pieces between king and rook", ErrCastlingBlocked)
	}

	transit := NewSquare(m.From().File()+sign(m.FileDelta()), m.From().Rank())
	for _, sq := range []Square{m.From(), transit, m.To()} {
		if p.attacks.Attacked(sq, them) {
			return fmt.Errorf("%w: %s", ErrCastlingThroughCheck, sq)
		}
	}

	return nil
}

// leavesKingAttacked plays m on a copy of the board and reports whether the
// mover's king is then attacked.
func (p *Position) leavesKingAttacked(m Move) bool {
	next := p.board
	playOn(&next, m, p.enPassant)

	us := m.Color()
	return ComputeAttacks(&next).Attacked(next.King(us), us.Other())
}

// playOn performs the board mutation for m: the mover, an en passant victim
// and the castling rook. ep is the en passant target before the move.
func playOn(b *Board, m Move, ep Square) {
	if m.IsEnPassant(ep) {
		b.Remove(enPassantVictim(m))
	}

	b.Relocate(m.From(), m.To())

	if m.IsCastling() {
		rookFrom, rookTo := castlingRook(m.Color(), m.FileDelta() > 0)
		playOn(b, NewMove(rookFrom, rookTo, b), NoSquare)
	}
}

// enPassantVictim is the square of the pawn taken en passant: the
// destination file on the origin rank.
func enPassantVictim(m Move) Square {
	return NewSquare(m.To().File(), m.From().Rank())
}

func castleSide(kingSide bool) string {
	if kingSide {
		return "kingside"
	}
	return "queenside"
}
