package board

// Perft counts the leaf nodes of the legal move tree at the given depth.
// This is the standard way to verify move generation correctness.
func Perft(p *Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}

	moves := p.LegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		next := p.Clone()
		next.apply(m)
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each legal move, keyed by its
// square-pair string.
func Divide(p *Position, depth int) map[string]int64 {
	counts := make(map[string]int64)
	for _, m := range p.LegalMoves() {
		next := p.Clone()
		next.apply(m)
		counts[m.String()] = Perft(next, depth-1)
	}
	return counts
}
