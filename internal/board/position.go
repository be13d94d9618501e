package board

import (
	"fmt"
	"log"
)

// DebugMoveValidation logs every rejected move attempt with its reason.
var DebugMoveValidation = false

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	return cr&castlingRight(c, kingSide) != 0
}

func castlingRight(c Color, kingSide bool) CastlingRights {
	if c == White {
		if kingSide {
			return WhiteKingSideCastle
		}
		return WhiteQueenSideCastle
	}
	if kingSide {
		return BlackKingSideCastle
	}
	return BlackQueenSideCastle
}

// cornerRights maps each rook corner to the right it guards.
var cornerRights = map[Square]CastlingRights{
	A1: WhiteQueenSideCastle,
	H1: WhiteKingSideCastle,
	A8: BlackQueenSideCastle,
	H8: BlackKingSideCastle,
}

// Position is a single mutable game state. MakeMove is its only mutating
// operation; everything else reads.
//
// A Position is not safe for concurrent use. Callers sharing one must
// serialise MakeMove themselves.
type Position struct {
	board          Board
	sideToMove     Color
	castlingRights CastlingRights
	enPassant      Square // Target square for en passant, NoSquare if none
	halfMoveClock  int    // Moves since last pawn move or capture
	fullMoveNumber int    // Full move counter, starts at 1

	attacks AttackMap
}

// Snapshot is the plain-data form of a position, exchanged with notation
// parsers and serializers.
type Snapshot struct {
	Squares        [64]Piece
	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	FullMoveNumber int
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("board: start position: %v", err))
	}
	return pos
}

// NewPositionFromSnapshot builds a position from a parsed snapshot. The
// snapshot must hold exactly one king of each color, the side not to move
// must not be in check, and an en passant square must sit behind an enemy
// pawn that could just have made a double step.
func NewPositionFromSnapshot(s Snapshot) (*Position, error) {
	if s.SideToMove != White && s.SideToMove != Black {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSide, s.SideToMove)
	}

	b := NewBoard()
	for sq := A1; sq <= H8; sq++ {
		b.Put(s.Squares[sq], sq)
	}

	for _, c := range []Color{White, Black} {
		if n := b.Pieces(c, King).PopCount(); n != 1 {
			return nil, fmt.Errorf("%w: %s has %d", ErrKingCount, c, n)
		}
	}

	attacks := ComputeAttacks(&b)
	them := s.SideToMove.Other()
	if attacks.Attacked(b.King(them), s.SideToMove) {
		return nil, fmt.Errorf("%w: %s king on %s", ErrOpponentInCheck, them, b.King(them))
	}

	ep := s.EnPassant
	if !ep.IsValid() {
		ep = NoSquare
	} else if !validEnPassant(&b, ep, s.SideToMove) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEnPassant, ep)
	}

	fullMove := s.FullMoveNumber
	if fullMove < 1 {
		fullMove = 1
	}

	pos := &Position{
		board:          b,
		sideToMove:     s.SideToMove,
		castlingRights: s.CastlingRights & AllCastling,
		enPassant:      ep,
		halfMoveClock:  max(s.HalfMoveClock, 0),
		fullMoveNumber: fullMove,
		attacks:        attacks,
	}

	return pos, nil
}

// validEnPassant reports whether ep can be the target for side us: an empty
// square on the sixth rank from us with an enemy pawn just beyond it.
func validEnPassant(b *Board, ep Square, us Color) bool {
	if ep.RelativeRank(us) != 5 || !b.IsEmpty(ep) {
		return false
	}
	victim, ok := ep.Offset(-us.forward(), 0)
	return ok && b.PieceAt(victim) == NewPiece(Pawn, us.Other())
}

// Snapshot returns the plain-data form of the position.
func (p *Position) Snapshot() Snapshot {
	return Snapshot{
		Squares:        p.board.squares,
		SideToMove:     p.sideToMove,
		CastlingRights: p.castlingRights,
		EnPassant:      p.enPassant,
		HalfMoveClock:  p.halfMoveClock,
		FullMoveNumber: p.fullMoveNumber,
	}
}

// Clone creates a deep copy of the position.
func (p *Position) Clone() *Position {
	newPos := *p
	return &newPos
}

// Board returns a copy of the current board.
func (p *Position) Board() Board {
	return p.board
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board.PieceAt(sq)
}

// SideToMove returns the color whose turn it is.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassant returns the en passant target square, or NoSquare.
func (p *Position) EnPassant() Square {
	return p.enPassant
}

// HalfMoveClock returns the number of moves since the last capture or pawn move.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveNumber returns the full move counter.
func (p *Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

// Attacks returns the squares currently attacked by c.
func (p *Position) Attacks(c Color) Bitboard {
	return p.attacks.Of(c)
}

// InCheck returns true if the side to move's king is attacked.
func (p *Position) InCheck() bool {
	us := p.sideToMove
	return p.attacks.Attacked(p.board.King(us), us.Other())
}

// MakeMove attempts to move the piece on from to to. On success the position
// advances to the next turn. On failure it returns the rejection reason and
// the position is left exactly as it was.
func (p *Position) MakeMove(from, to Square) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("%w: %s%s", ErrOffBoard, from, to)
	}

	m := NewMove(from, to, &p.board)
	if err := p.Validate(m); err != nil {
		if DebugMoveValidation {
			log.Printf("MakeMove: rejected %v for %v: %v", m, p.sideToMove, err)
		}
		return err
	}

	p.apply(m)
	return nil
}

// MakeMoveUCI parses a square-pair string such as "e2e4" and plays it.
func (p *Position) MakeMoveUCI(s string) error {
	from, to, err := ParseSquares(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOffBoard, err)
	}
	return p.MakeMove(from, to)
}

// apply performs an already validated move.
func (p *Position) apply(m Move) {
	us := m.Color()
	them := us.Other()

	playOn(&p.board, m, p.enPassant)

	p.sideToMove = them

	// Update castling rights
	if m.Kind() == King {
		p.castlingRights &^= castlingRight(us, true) | castlingRight(us, false)
	}
	// Anything leaving or landing on a rook corner ends that corner's right
	p.castlingRights &^= cornerRights[m.From()] | cornerRights[m.To()]

	p.enPassant = NoSquare
	if m.Kind() == Pawn && abs(m.RankDelta()) == 2 && p.hasAdjacentPawn(m.To(), them) {
		p.enPassant = NewSquare(m.From().File(), (m.From().Rank()+m.To().Rank())/2)
	}

	// Update half-move clock
	if m.Kind() == Pawn || m.IsCapture() {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	// Update full-move number
	if p.sideToMove == White {
		p.fullMoveNumber++
	}

	p.attacks = ComputeAttacks(&p.board)
}

// hasAdjacentPawn reports whether a pawn of color c stands beside sq on its rank.
func (p *Position) hasAdjacentPawn(sq Square, c Color) bool {
	for _, df := range []int{-1, 1} {
		if n, ok := sq.Offset(0, df); ok && p.board.PieceAt(n) == NewPiece(Pawn, c) {
			return true
		}
	}
	return false
}

// LegalMoves returns every move the side to move may play, found by running
// each of its pieces against every destination square.
func (p *Position) LegalMoves() []Move {
	var moves []Move
	own := p.board.Occupied(p.sideToMove)
	for own != 0 {
		from := own.PopLSB()
		for to := A1; to <= H8; to++ {
			m := NewMove(from, to, &p.board)
			if p.Validate(m) == nil {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// IsLegal returns true if moving from -> to would be accepted by MakeMove.
func (p *Position) IsLegal(from, to Square) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	return p.Validate(NewMove(from, to, &p.board)) == nil
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n" + p.board.String() + "\n"
	s += fmt.Sprintf("Side to move: %s\n", p.sideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.castlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.enPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.halfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", p.fullMoveNumber)
	return s
}
