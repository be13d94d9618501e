package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string and returns a Position.
func ParseFEN(fen string) (*Position, error) {
	snap, err := ParseSnapshot(fen)
	if err != nil {
		return nil, err
	}
	return NewPositionFromSnapshot(snap)
}

// ParseSnapshot parses a FEN string into a Snapshot without checking
// whether the position is playable.
func ParseSnapshot(fen string) (Snapshot, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return Snapshot{}, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	snap := Snapshot{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}

	// Parse piece placement (field 0)
	if err := parsePiecePlacement(&snap, parts[0]); err != nil {
		return Snapshot{}, err
	}

	// Parse side to move (field 1)
	switch parts[1] {
	case "w":
		snap.SideToMove = White
	case "b":
		snap.SideToMove = Black
	default:
		return Snapshot{}, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	// Parse castling rights (field 2)
	cr, err := parseCastlingRights(parts[2])
	if err != nil {
		return Snapshot{}, err
	}
	snap.CastlingRights = cr

	// Parse en passant square (field 3)
	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return Snapshot{}, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		snap.EnPassant = sq
	}

	// Parse half-move clock (field 4, optional)
	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil || hmc < 0 {
			return Snapshot{}, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		snap.HalfMoveClock = hmc
	}

	// Parse full-move number (field 5, optional)
	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 1 {
			return Snapshot{}, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		snap.FullMoveNumber = fmn
	}

	return snap, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(snap *Snapshot, placement string) error {
	for sq := range snap.Squares {
		snap.Squares[sq] = NoPiece
	}

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				// Skip empty squares
				file += int(c - '0')
			} else {
				piece := PieceFromChar(byte(c))
				if piece == NoPiece {
					return fmt.Errorf("invalid piece character: %c", c)
				}
				snap.Squares[NewSquare(file, rank)] = piece
				file++
			}
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(castling string) (CastlingRights, error) {
	if castling == "-" {
		return NoCastling, nil
	}

	var cr CastlingRights
	for _, c := range castling {
		switch c {
		case 'K':
			cr |= WhiteKingSideCastle
		case 'Q':
			cr |= WhiteQueenSideCastle
		case 'k':
			cr |= BlackKingSideCastle
		case 'q':
			cr |= BlackQueenSideCastle
		default:
			return NoCastling, fmt.Errorf("invalid castling character: %c", c)
		}
	}

	return cr, nil
}

// ToFEN returns the FEN representation of the position.
func (p *Position) ToFEN() string {
	return p.Snapshot().FEN()
}

// FEN renders the snapshot in Forsyth-Edwards Notation.
func (s Snapshot) FEN() string {
	var sb strings.Builder

	// Piece placement
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := s.Squares[NewSquare(file, rank)]
			if piece == NoPiece {
				empty++
			} else {
				if empty > 0 {
					sb.WriteString(strconv.Itoa(empty))
					empty = 0
				}
				sb.WriteString(piece.String())
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	// Side to move
	sb.WriteByte(' ')
	if s.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	// Castling rights
	sb.WriteByte(' ')
	sb.WriteString(s.CastlingRights.String())

	// En passant
	sb.WriteByte(' ')
	sb.WriteString(s.EnPassant.String())

	// Half-move clock and full-move number
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.FullMoveNumber))

	return sb.String()
}
