package shogi

// promotionZone holds the three ranks farthest from each side's starting
// edge: squares 54..80 for sente, 0..26 for gote.
var promotionZone = [2]Bitboard{
	RankBB(6).Or(RankBB(7)).Or(RankBB(8)),
	RankBB(0).Or(RankBB(1)).Or(RankBB(2)),
}

// GenerateMoves enumerates every pseudo-legal action for the side to move
// against the current position: board moves (with a promoting variant
// whenever origin or destination lies in the mover's promotion zone and
// the category can promote), bulk pawn pushes, and drops from hand. Moves
// that leave the own king in check are not filtered out, and neither
// forced promotion nor the drop-pawn-mate rule is enforced.
func (b *Board) GenerateMoves() *MoveList {
	ml := NewMoveList()
	b.generateBoardMoves(ml)
	b.generateDrops(ml)
	return ml
}

func (b *Board) generateBoardMoves(ml *MoveList) {
	state := b.current()
	us := b.stm
	occupied := state.Occupied()
	own := state.Sides[us]
	zone := promotionZone[us]

	movers := own
	for movers.Any() {
		from := movers.PopLSB()
		piece := state.PieceAt(from)

		var attacks Bitboard
		switch piece.Type() {
		case Pawn:
			continue // generated setwise below
		case Lance:
			attacks = LanceAttacks(from, occupied, us)
		case Knight:
			attacks = KnightAttacks(from, us)
		case Silver:
			attacks = SilverAttacks(from, us)
		case Bishop:
			attacks = BishopAttacks(from, occupied)
		case Rook:
			attacks = RookAttacks(from, occupied)
		case Gold, PromotedPawn, PromotedLance, PromotedKnight, PromotedSilver:
			attacks = GoldAttacks(from, us)
		case King:
			attacks = KingAttacks(from)
		case PromotedBishop:
			attacks = BishopAttacks(from, occupied).Or(KingAttacks(from))
		case PromotedRook:
			attacks = RookAttacks(from, occupied).Or(KingAttacks(from))
		}

		// no capturing our own pieces
		attacks = attacks.AndNot(own)

		canPromote := piece.Type().CanPromote()
		fromInZone := zone.IsSet(from)
		for attacks.Any() {
			to := attacks.PopLSB()
			if canPromote && (fromInZone || zone.IsSet(to)) {
				ml.Add(NewMove(from, to, true))
			}
			ml.Add(NewMove(from, to, false))
		}
	}

	// Pawns move as one setwise push. A pawn starting in the zone always
	// lands in it, so the destination test alone covers eligibility.
	pawns := state.SidedPieces(Pawn, us)
	pushes := AllPawnPushes(pawns, us).AndNot(own)
	for pushes.Any() {
		to := pushes.PopLSB()
		var from Square
		if us == Sente {
			from = to - BoardLen
		} else {
			from = to + BoardLen
		}
		if zone.IsSet(to) {
			ml.Add(NewMove(from, to, true))
		}
		ml.Add(NewMove(from, to, false))
	}
}

func (b *Board) generateDrops(ml *MoveList) {
	state := b.current()
	us := b.stm
	empty := state.Occupied().Not().And(Full)
	ourPawns := state.SidedPieces(Pawn, us)

	state.Hands[us].ForEach(func(pt PieceType, count int) {
		var open Bitboard
		switch pt {
		case Pawn:
			// Not on a file that already holds one of our pawns, and not
			// on the far rank: shifting the free-file mask one rank toward
			// our own edge drops both at once.
			freeFiles := ourPawns.FileFill().Not().And(Full)
			if us == Sente {
				open = empty.And(freeFiles.ShiftDown(9))
			} else {
				open = empty.And(freeFiles.ShiftUp(9).And(Full))
			}
		case Lance:
			// not on the far rank
			if us == Sente {
				open = empty.And(Full.ShiftDown(9))
			} else {
				open = empty.And(Full.ShiftUp(9).And(Full))
			}
		case Knight:
			// not on the two far ranks
			if us == Sente {
				open = empty.And(Full.ShiftDown(18))
			} else {
				open = empty.And(Full.ShiftUp(18).And(Full))
			}
		default:
			open = empty
		}

		for open.Any() {
			ml.Add(NewDrop(pt, open.PopLSB()))
		}
	})
}
