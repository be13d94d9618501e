package board

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"4k3/8/8/8/8/8/8/4K2R b K - 17 42",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("ToFEN() = %q, want %q", got, fen)
		}
	}
}

func TestParseFENDefaults(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 b - -")
	if err != nil {
		t.Fatal(err)
	}
	if pos.HalfMoveClock() != 0 || pos.FullMoveNumber() != 1 {
		t.Errorf("counters = %d/%d, want 0/1", pos.HalfMoveClock(), pos.FullMoveNumber())
	}
	if pos.SideToMove() != Black {
		t.Errorf("side to move = %s", pos.SideToMove())
	}
	if pos.EnPassant() != NoSquare || pos.CastlingRights() != NoCastling {
		t.Error("expected no en passant target and no castling rights")
	}
}

func TestParseFENInvalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few fields", "8/8/8/8/8/8/8/8 w"},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"long rank", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"short rank", "4k3/8/8/8/8/8/8/4K2 w - - 0 1"},
		{"bad piece", "4k3/8/8/8/8/8/8/4X3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w Z - 0 1"},
		{"bad en passant", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1"},
		{"negative clock", "4k3/8/8/8/8/8/8/4K3 w - - -1 1"},
		{"zero move number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFEN(tc.fen); err == nil {
				t.Errorf("ParseFEN(%q) succeeded, want error", tc.fen)
			}
		})
	}
}

func TestParseFENKingCount(t *testing.T) {
	for _, fen := range []string{
		"8/8/8/8/8/8/8/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/3KK3 w - - 0 1",
	} {
		if _, err := ParseFEN(fen); !errors.Is(err, ErrKingCount) {
			t.Errorf("ParseFEN(%q) error = %v, want ErrKingCount", fen, err)
		}
	}

	// The snapshot itself is still readable.
	if _, err := ParseSnapshot("8/8/8/8/8/8/8/4K3 w - - 0 1"); err != nil {
		t.Errorf("ParseSnapshot: %v", err)
	}
}

func TestParseFENImpossiblePositions(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"rook gives check off turn", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1", ErrOpponentInCheck},
		{"kings touching", "8/8/8/8/8/8/3k4/4K3 b - - 0 1", ErrOpponentInCheck},
		{"en passant with no pawn", "4k3/8/8/8/8/8/4P3/4K3 w - e3 0 1", ErrInvalidEnPassant},
		{"en passant on wrong rank", "4k3/8/8/8/3pP3/8/8/4K3 w - e3 0 1", ErrInvalidEnPassant},
		{"en passant square occupied", "4k3/8/3p4/3pP3/8/8/8/4K3 w - d6 0 1", ErrInvalidEnPassant},
		{"en passant behind own pawn", "4k3/8/8/3PP3/8/8/8/4K3 w - d6 0 1", ErrInvalidEnPassant},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFEN(tc.fen); !errors.Is(err, tc.want) {
				t.Errorf("ParseFEN(%q) error = %v, want %v", tc.fen, err, tc.want)
			}
		})
	}

	// In check on its own turn is an ordinary position.
	if _, err := ParseFEN("4k3/8/8/8/8/8/8/4R1K1 b - - 0 1"); err != nil {
		t.Errorf("side to move in check: %v", err)
	}
}
