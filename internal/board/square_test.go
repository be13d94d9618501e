package board

import "testing"

func TestParseSquareRoundTrip(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", sq.String(), err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %d, want %d", sq.String(), got, sq)
		}
	}
}

func TestParseSquareCoordinates(t *testing.T) {
	tests := []struct {
		in         string
		file, rank int
	}{
		{"a1", 0, 0},
		{"h1", 7, 0},
		{"e4", 4, 3},
		{"a8", 0, 7},
		{"h8", 7, 7},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			sq, err := ParseSquare(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if sq.File() != tc.file || sq.Rank() != tc.rank {
				t.Errorf("got file %d rank %d, want %d %d", sq.File(), sq.Rank(), tc.file, tc.rank)
			}
		})
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, in := range []string{"", "e", "e9", "i1", "a0", "e44", "E4"} {
		if _, err := ParseSquare(in); err == nil {
			t.Errorf("ParseSquare(%q) succeeded, want error", in)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	if sq, ok := E4.Offset(1, -1); !ok || sq != D5 {
		t.Errorf("E4.Offset(1,-1) = %v,%v want d5,true", sq, ok)
	}
	if _, ok := H8.Offset(0, 1); ok {
		t.Error("H8.Offset(0,1) should leave the board")
	}
	if _, ok := A1.Offset(-1, 0); ok {
		t.Error("A1.Offset(-1,0) should leave the board")
	}
}
