package shogi

// Ray directions. Positive rays run toward higher square indices and are
// truncated at the lowest blocker; negative rays at the highest.
const (
	dirNorth = iota
	dirEast
	dirNorthEast
	dirNorthWest
	dirSouth
	dirWest
	dirSouthEast
	dirSouthWest
	numDirs
)

// dirPositive marks the boundary between positive and negative directions.
const dirPositive = dirSouth

// rayDelta holds the (file, rank) step for each direction.
var rayDelta = [numDirs][2]int{
	{0, 1}, {1, 0}, {1, 1}, {-1, 1},
	{0, -1}, {-1, 0}, {1, -1}, {-1, -1},
}

// Pre-computed attack tables. Stepping pieces whose movement mirrors
// between the sides are indexed by color.
var (
	kingAttacks   [NumSquares]Bitboard
	goldAttacks   [2][NumSquares]Bitboard
	silverAttacks [2][NumSquares]Bitboard
	knightAttacks [2][NumSquares]Bitboard
	pawnPushes    [2][NumSquares]Bitboard

	rayAttacks [numDirs][NumSquares]Bitboard
)

func init() {
	initStepperAttacks()
	initRayAttacks()
}

func initStepperAttacks() {
	for sq := Square(0); sq < NumSquares; sq++ {
		bb := SquareBB(sq)

		// King: one square in any direction.
		kingAttacks[sq] = bb.North().Or(bb.South()).
			Or(bb.East()).Or(bb.West()).
			Or(bb.NorthEast()).Or(bb.NorthWest()).
			Or(bb.SouthEast()).Or(bb.SouthWest())

		// Gold: forward, forward diagonals, sideways, straight back.
		goldAttacks[Sente][sq] = bb.North().Or(bb.NorthEast()).Or(bb.NorthWest()).
			Or(bb.East()).Or(bb.West()).Or(bb.South())
		goldAttacks[Gote][sq] = bb.South().Or(bb.SouthEast()).Or(bb.SouthWest()).
			Or(bb.East()).Or(bb.West()).Or(bb.North())

		// Silver: forward, all four diagonals.
		silverAttacks[Sente][sq] = bb.North().Or(bb.NorthEast()).Or(bb.NorthWest()).
			Or(bb.SouthEast()).Or(bb.SouthWest())
		silverAttacks[Gote][sq] = bb.South().Or(bb.SouthEast()).Or(bb.SouthWest()).
			Or(bb.NorthEast()).Or(bb.NorthWest())

		// Knight: two ranks forward, one file aside.
		knightAttacks[Sente][sq] = bb.North().NorthEast().Or(bb.North().NorthWest())
		knightAttacks[Gote][sq] = bb.South().SouthEast().Or(bb.South().SouthWest())

		// Pawn: one square forward.
		pawnPushes[Sente][sq] = bb.North()
		pawnPushes[Gote][sq] = bb.South()
	}
}

func initRayAttacks() {
	for sq := Square(0); sq < NumSquares; sq++ {
		for dir := 0; dir < numDirs; dir++ {
			df, dr := rayDelta[dir][0], rayDelta[dir][1]
			var ray Bitboard
			f, r := sq.File()+df, sq.Rank()+dr
			for f >= 0 && f <= 8 && r >= 0 && r <= 8 {
				ray = ray.Set(NewSquare(f, r))
				f += df
				r += dr
			}
			rayAttacks[dir][sq] = ray
		}
	}
}

// rayAttack returns the ray from sq in dir, cut at and including the first
// occupied square.
func rayAttack(dir int, sq Square, occupied Bitboard) Bitboard {
	attacks := rayAttacks[dir][sq]
	blockers := attacks.And(occupied)
	if blockers.Any() {
		var first Square
		if dir < dirPositive {
			first = blockers.LSB()
		} else {
			first = blockers.MSB()
		}
		attacks = attacks.AndNot(rayAttacks[dir][first])
	}
	return attacks
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// GoldAttacks returns the gold attack bitboard for a square and side.
// The four pieces promoted to gold movement share it.
func GoldAttacks(sq Square, c Color) Bitboard {
	return goldAttacks[c][sq]
}

// SilverAttacks returns the silver attack bitboard for a square and side.
func SilverAttacks(sq Square, c Color) Bitboard {
	return silverAttacks[c][sq]
}

// KnightAttacks returns the knight attack bitboard for a square and side.
func KnightAttacks(sq Square, c Color) Bitboard {
	return knightAttacks[c][sq]
}

// PawnPushes returns the pawn push target bitboard for a square and side.
func PawnPushes(sq Square, c Color) Bitboard {
	return pawnPushes[c][sq]
}

// AllPawnPushes returns the push targets for an entire set of pawns at
// once. Equivalent to the union of PawnPushes over every set square.
func AllPawnPushes(pawns Bitboard, c Color) Bitboard {
	if c == Sente {
		return pawns.North()
	}
	return pawns.South()
}

// LanceAttacks returns the lance attack bitboard: the forward ray cut at
// the first occupied square (which is included).
func LanceAttacks(sq Square, occupied Bitboard, c Color) Bitboard {
	if c == Sente {
		return rayAttack(dirNorth, sq, occupied)
	}
	return rayAttack(dirSouth, sq, occupied)
}

// BishopAttacks returns the bishop attack bitboard for a square with the
// given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return rayAttack(dirNorthEast, sq, occupied).
		Or(rayAttack(dirNorthWest, sq, occupied)).
		Or(rayAttack(dirSouthEast, sq, occupied)).
		Or(rayAttack(dirSouthWest, sq, occupied))
}

// RookAttacks returns the rook attack bitboard for a square with the given
// occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return rayAttack(dirNorth, sq, occupied).
		Or(rayAttack(dirSouth, sq, occupied)).
		Or(rayAttack(dirEast, sq, occupied)).
		Or(rayAttack(dirWest, sq, occupied))
}
