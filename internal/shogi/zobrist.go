package shogi

// Zobrist hash keys for position hashing.
// Uses a PRNG with a fixed seed for reproducibility.
var (
	zobristPiece      [2][NumPieceTypes][NumSquares]uint64 // [Color][PieceType][Square]
	zobristHand       [2][Gold + 1][19]uint64              // [Color][PieceType][count], max 18 pawns
	zobristSideToMove uint64                               // XOR when gote to move
)

func init() {
	initZobrist()
}

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := prng{state: 0x9E3779B97F4A7C15} // Fixed seed

	for c := Sente; c <= Gote; c++ {
		for pt := Pawn; pt < NoPieceType; pt++ {
			for sq := Square(0); sq < NumSquares; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	// Hand keys: one per held count, zero pieces hashes to zero.
	for c := Sente; c <= Gote; c++ {
		for pt := Pawn; pt <= Gold; pt++ {
			for n := 1; n < 19; n++ {
				zobristHand[c][pt][n] = rng.next()
			}
		}
	}

	zobristSideToMove = rng.next()
}

// ComputeHash computes the Zobrist hash of the position from scratch,
// covering placement, both hands and the side to move.
func (p *Position) ComputeHash(stm Color) uint64 {
	var hash uint64

	for c := Sente; c <= Gote; c++ {
		for pt := Pawn; pt < NoPieceType; pt++ {
			bb := p.SidedPieces(pt, c)
			for bb.Any() {
				hash ^= zobristPiece[c][pt][bb.PopLSB()]
			}
		}
	}

	for c := Sente; c <= Gote; c++ {
		for pt := Pawn; pt <= Gold; pt++ {
			hash ^= zobristHand[c][pt][p.Hands[c].Count(pt)]
		}
	}

	if stm == Gote {
		hash ^= zobristSideToMove
	}

	return hash
}

// Hash returns the Zobrist hash of the current position and side to move.
func (b *Board) Hash() uint64 {
	return b.current().ComputeHash(b.stm)
}
