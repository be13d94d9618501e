package board

import "testing"

func TestShapeLegal(t *testing.T) {
	tests := []struct {
		name   string
		pt     PieceType
		c      Color
		dr, df int
		want   bool
	}{
		{"knight 1-2", Knight, White, 1, 2, true},
		{"knight -2-1", Knight, Black, -2, -1, true},
		{"knight 2-2", Knight, White, 2, 2, false},
		{"knight 0-3", Knight, White, 0, 3, false},

		{"king step", King, White, 1, 1, true},
		{"king sideways", King, Black, 0, -1, true},
		{"king castle shape", King, White, 0, 2, true},
		{"king castle shape queenside", King, White, 0, -2, true},
		{"king null", King, White, 0, 0, false},
		{"king two ranks", King, White, 2, 0, false},

		{"bishop diagonal", Bishop, White, 3, -3, true},
		{"bishop uneven", Bishop, White, 3, 2, false},
		{"bishop null", Bishop, White, 0, 0, false},

		{"rook file", Rook, Black, -5, 0, true},
		{"rook rank", Rook, Black, 0, 7, true},
		{"rook diagonal", Rook, Black, 1, 1, false},
		{"rook null", Rook, Black, 0, 0, false},

		{"queen diagonal", Queen, White, -4, 4, true},
		{"queen rank", Queen, White, 0, -3, true},
		{"queen knight jump", Queen, White, 1, 2, false},

		{"white pawn push", Pawn, White, 1, 0, true},
		{"white pawn double", Pawn, White, 2, 0, true},
		{"white pawn triple", Pawn, White, 3, 0, false},
		{"white pawn backwards", Pawn, White, -1, 0, false},
		{"white pawn capture", Pawn, White, 1, -1, true},
		{"white pawn back capture", Pawn, White, -1, 1, false},
		{"white pawn sideways", Pawn, White, 0, 1, false},
		{"black pawn push", Pawn, Black, -1, 0, true},
		{"black pawn double", Pawn, Black, -2, 0, true},
		{"black pawn backwards", Pawn, Black, 1, 0, false},
		{"black pawn capture", Pawn, Black, -1, 1, true},
		{"black pawn long diagonal", Pawn, Black, -2, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pt.ShapeLegal(tc.c, tc.dr, tc.df); got != tc.want {
				t.Errorf("%s.ShapeLegal(%s, %d, %d) = %v, want %v", tc.pt, tc.c, tc.dr, tc.df, got, tc.want)
			}
		})
	}
}

func TestMoveDescriptor(t *testing.T) {
	pos := NewPosition()
	b := pos.Board()

	m := NewMove(G1, F3, &b)
	if m.Piece() != WhiteKnight || m.Kind() != Knight || m.Color() != White {
		t.Errorf("unexpected mover: %v %v %v", m.Piece(), m.Kind(), m.Color())
	}
	if m.RankDelta() != 2 || m.FileDelta() != -1 {
		t.Errorf("deltas = %d,%d want 2,-1", m.RankDelta(), m.FileDelta())
	}
	if m.IsCapture() || m.CapturedColor() != NoColor {
		t.Error("g1f3 should not capture")
	}
	if !m.HasValidShape() {
		t.Error("g1f3 should have a knight shape")
	}

	empty := NewMove(E4, E5, &b)
	if empty.Piece() != NoPiece || empty.HasValidShape() {
		t.Error("a move from an empty square has no piece and no valid shape")
	}

	capture := NewMove(D1, D8, &b)
	if capture.Captured() != BlackQueen || capture.CapturedColor() != Black {
		t.Errorf("d1d8 captured = %v", capture.Captured())
	}
	if capture.String() != "d1d8" {
		t.Errorf("String() = %q", capture.String())
	}
}
