package board

import (
	"math/rand"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

// squarePair packs a move's squares as from*64+to so lists sort naturally.
type squarePair int

func pairOf(from, to Square) squarePair {
	return squarePair(int(from)*64 + int(to))
}

func (p squarePair) from() Square { return Square(p / 64) }
func (p squarePair) to() Square   { return Square(p % 64) }

func (p squarePair) String() string { return p.from().String() + p.to().String() }

// referenceMoves lists the (from, to) pairs an independent move generator
// finds in the given FEN. Promotions collapse into a single pair.
func referenceMoves(fen string) []squarePair {
	ref := dragontoothmg.ParseFen(fen)
	seen := make(map[squarePair]bool)
	var pairs []squarePair
	for _, mv := range ref.GenerateLegalMoves() {
		p := pairOf(Square(mv.From()), Square(mv.To()))
		if !seen[p] {
			seen[p] = true
			pairs = append(pairs, p)
		}
	}
	slices.Sort(pairs)
	return pairs
}

func ownMoves(pos *Position) []squarePair {
	var pairs []squarePair
	for _, m := range pos.LegalMoves() {
		pairs = append(pairs, pairOf(m.From(), m.To()))
	}
	slices.Sort(pairs)
	return pairs
}

func TestLegalMovesMatchReference(t *testing.T) {
	starts := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
	}

	rng := rand.New(rand.NewSource(11))
	for _, start := range starts {
		for game := 0; game < 5; game++ {
			pos, err := ParseFEN(start)
			if err != nil {
				t.Fatal(err)
			}

			for ply := 0; ply < 60; ply++ {
				fen := pos.ToFEN()
				got, want := ownMoves(pos), referenceMoves(fen)
				if !slices.Equal(got, want) {
					t.Fatalf("%s: legal moves differ\n got %v\nwant %v", fen, got, want)
				}
				if len(got) == 0 {
					break
				}

				pick := got[rng.Intn(len(got))]
				mover := pos.PieceAt(pick.from())
				if err := pos.MakeMove(pick.from(), pick.to()); err != nil {
					t.Fatalf("%s: %s rejected: %v", fen, pick, err)
				}
				// Promotion is not modelled, so the games part ways here.
				if mover.Type() == Pawn && pick.to().RelativeRank(mover.Color()) == 7 {
					break
				}
			}
		}
	}
}
