package board

import "testing"

type perftCase struct {
	depth    int
	expected int64
	long     bool
}

func runPerft(t *testing.T, fen string, tests []perftCase) {
	t.Helper()

	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	for _, tc := range tests {
		if tc.long && testing.Short() {
			continue
		}
		got := Perft(pos, tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}

	// Counting must not disturb the root.
	if pos.ToFEN() != mustNormalFEN(t, fen) {
		t.Errorf("perft modified the root position: %s", pos.ToFEN())
	}
}

func mustNormalFEN(t *testing.T, fen string) string {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return pos.ToFEN()
}

func TestPerftStartingPosition(t *testing.T) {
	runPerft(t, StartFEN, []perftCase{
		{1, 20, false},
		{2, 400, false},
		{3, 8902, false},
		{4, 197281, true},
	})
}

// Kiwipete: castling both ways, en passant, pins and discovered checks.
func TestPerftKiwipete(t *testing.T) {
	runPerft(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", []perftCase{
		{1, 48, false},
		{2, 2039, false},
		{3, 97862, true},
	})
}

func TestPerftPosition3(t *testing.T) {
	runPerft(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", []perftCase{
		{1, 14, false},
		{2, 191, false},
		{3, 2812, false},
		{4, 43238, true},
	})
}

// The black pawn on e4 may not take en passant: removing d4 would open the
// fourth rank between the rook on h4 and the king on a4.
func TestPerftEnPassantPin(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	for _, m := range pos.LegalMoves() {
		if m.IsEnPassant(pos.EnPassant()) {
			t.Errorf("En passant move %v should be illegal (horizontal pin)", m)
		}
	}

	divide := Divide(pos, 2)
	if divide["e4e3"] != 14 || divide["a4b4"] != 16 {
		t.Errorf("Divide(2) = %v", divide)
	}

	// Ka3, Ka5, Kb3, Kb4, Kb5, e3; then 14 replies to e3 and 16 to each king move.
	runPerft(t, "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1", []perftCase{
		{1, 6, false},
		{2, 94, false},
	})
}
