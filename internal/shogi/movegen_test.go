package shogi

import "testing"

// countMoves tallies a move list split into drops, promotions and plain
// board moves.
func countMoves(ml *MoveList) (drops, promotions, plain int) {
	for _, m := range ml.Slice() {
		switch {
		case m.IsDrop():
			drops++
		case m.IsPromotion():
			promotions++
		default:
			plain++
		}
	}
	return
}

func TestStartPositionMoves(t *testing.T) {
	b := mustLoad(t, StartSFEN)
	ml := b.GenerateMoves()

	drops, promotions, plain := countMoves(ml)
	if plain != 30 {
		t.Errorf("start position has %d moves, want 30", plain)
		for _, m := range ml.Slice() {
			t.Logf("  %s", m)
		}
	}
	if drops != 0 {
		t.Errorf("start position has %d drops, want 0", drops)
	}
	if promotions != 0 {
		t.Errorf("start position has %d promotions, want 0", promotions)
	}

	// Every pawn gets exactly one push, produced once.
	pawnMoves := 0
	seen := make(map[Move]bool)
	for _, m := range ml.Slice() {
		if seen[m] {
			t.Errorf("move %s emitted twice", m)
		}
		seen[m] = true
		if b.PieceAt(m.From()).Type() == Pawn {
			pawnMoves++
		}
	}
	if pawnMoves != 9 {
		t.Errorf("start position has %d pawn moves, want 9", pawnMoves)
	}
}

func TestStartPositionMovesGote(t *testing.T) {
	b := mustLoad(t, "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL w - 1")
	ml := b.GenerateMoves()

	drops, promotions, plain := countMoves(ml)
	if plain != 30 || drops != 0 || promotions != 0 {
		t.Errorf("gote start moves = %d plain, %d drops, %d promotions; want 30, 0, 0",
			plain, drops, promotions)
	}
}

func TestBishopPromotionBoundary(t *testing.T) {
	// Bishops at 43 and 46, both outside sente's promotion zone.
	b := mustLoad(t, "9/9/9/1B7/7B1/9/9/9/4K4 b - 1")
	ml := b.GenerateMoves()

	// 43 -> 53 ends one rank short of the zone: never a promoting variant.
	if !ml.Contains(NewMove(43, 53, false)) {
		t.Error("missing plain move 43->53")
	}
	if ml.Contains(NewMove(43, 53, true)) {
		t.Error("move 43->53 must not promote: neither end is in the zone")
	}

	// 46 -> 54 crosses into the zone: both variants.
	if !ml.Contains(NewMove(46, 54, false)) || !ml.Contains(NewMove(46, 54, true)) {
		t.Error("move 46->54 should come in promoting and plain variants")
	}
}

func TestPromotionFromInsideZone(t *testing.T) {
	// Bishop on 54 (inside sente's zone) moving back out may still promote.
	b := mustLoad(t, "9/9/B8/9/9/9/9/9/4K4 b - 1")
	ml := b.GenerateMoves()

	if !ml.Contains(NewMove(54, 46, true)) || !ml.Contains(NewMove(54, 46, false)) {
		t.Error("move 54->46 should come in promoting and plain variants")
	}
}

func TestPromotedPieceNeverRePromotes(t *testing.T) {
	// Dragon in the middle: rook rays plus the four diagonals, 20 moves,
	// none promoting even though some end in the zone.
	b := mustLoad(t, "9/9/9/9/4+R4/9/9/9/9 b - 1")
	ml := b.GenerateMoves()

	drops, promotions, plain := countMoves(ml)
	if plain != 20 || promotions != 0 || drops != 0 {
		t.Errorf("dragon moves = %d plain, %d promotions, %d drops; want 20, 0, 0",
			plain, promotions, drops)
	}
}

func TestGoldEquivalentMovement(t *testing.T) {
	// A promoted pawn moves exactly like a gold.
	b := mustLoad(t, "9/9/9/9/4+P4/9/9/9/9 b - 1")
	ml := b.GenerateMoves()

	want := GoldAttacks(40, Sente)
	if ml.Len() != want.PopCount() {
		t.Fatalf("promoted pawn has %d moves, want %d", ml.Len(), want.PopCount())
	}
	want.ForEach(func(to Square) {
		if !ml.Contains(NewMove(40, to, false)) {
			t.Errorf("missing move 40->%d", to)
		}
	})
}

func TestPawnDropFileRestriction(t *testing.T) {
	// Sente pawn on file 4, another pawn in hand.
	b := mustLoad(t, "9/9/9/9/9/9/4P4/9/4K4 b P 1")
	ml := b.GenerateMoves()

	pawnDrops := 0
	for _, m := range ml.Slice() {
		if !m.IsDrop() {
			continue
		}
		if m.DropPiece() != Pawn {
			t.Errorf("unexpected drop of %s", m.DropPiece())
			continue
		}
		pawnDrops++
		if m.To().File() == 4 {
			t.Errorf("pawn dropped on file 4 at %s", m.To())
		}
		if m.To().Rank() == 8 {
			t.Errorf("pawn dropped on the far rank at %s", m.To())
		}
	}

	// 72 squares off file 4, minus the 8 empty far-rank squares... the far
	// rank square of file 4 is already excluded, so 72 - 8 = 64.
	if pawnDrops != 64 {
		t.Errorf("pawn drops = %d, want 64", pawnDrops)
	}
}

func TestLanceAndKnightDropRanks(t *testing.T) {
	dropCount := func(ml *MoveList, pt PieceType) int {
		n := 0
		for _, m := range ml.Slice() {
			if m.IsDrop() && m.DropPiece() == pt {
				n++
			}
		}
		return n
	}

	t.Run("sente", func(t *testing.T) {
		b := mustLoad(t, "9/9/9/9/9/9/9/9/4K4 b NL 1")
		ml := b.GenerateMoves()

		// 80 empty squares; the far rank bars 9 of them for the lance,
		// the two far ranks 18 for the knight.
		if got := dropCount(ml, Lance); got != 71 {
			t.Errorf("lance drops = %d, want 71", got)
		}
		if got := dropCount(ml, Knight); got != 62 {
			t.Errorf("knight drops = %d, want 62", got)
		}
		for _, m := range ml.Slice() {
			if !m.IsDrop() {
				continue
			}
			r := m.To().Rank()
			if m.DropPiece() == Lance && r == 8 {
				t.Errorf("lance dropped on rank 8 at %s", m.To())
			}
			if m.DropPiece() == Knight && r >= 7 {
				t.Errorf("knight dropped on rank %d at %s", r, m.To())
			}
		}
	})

	t.Run("gote", func(t *testing.T) {
		b := mustLoad(t, "4k4/9/9/9/9/9/9/9/9 w nl 1")
		ml := b.GenerateMoves()

		// 80 empty squares; rank 0 is fully empty here, so the lance
		// loses 9 and the knight 18.
		if got := dropCount(ml, Lance); got != 71 {
			t.Errorf("lance drops = %d, want 71", got)
		}
		if got := dropCount(ml, Knight); got != 62 {
			t.Errorf("knight drops = %d, want 62", got)
		}
		for _, m := range ml.Slice() {
			if !m.IsDrop() {
				continue
			}
			r := m.To().Rank()
			if m.DropPiece() == Lance && r == 0 {
				t.Errorf("lance dropped on rank 0 at %s", m.To())
			}
			if m.DropPiece() == Knight && r <= 1 {
				t.Errorf("knight dropped on rank %d at %s", r, m.To())
			}
		}
	})
}

func TestUnrestrictedDrops(t *testing.T) {
	// Gold drops land on any empty square.
	b := mustLoad(t, "9/9/9/9/9/9/9/9/4K4 b G 1")
	ml := b.GenerateMoves()

	drops := 0
	for _, m := range ml.Slice() {
		if m.IsDrop() {
			drops++
		}
	}
	if drops != 80 {
		t.Errorf("gold drops = %d, want 80", drops)
	}
}

func TestDropsOnlyOnEmptySquares(t *testing.T) {
	b := mustLoad(t, StartSFEN)
	// Give sente a silver in hand on top of the full opening array.
	if err := b.LoadSFEN("lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b S 1"); err != nil {
		t.Fatal(err)
	}
	ml := b.GenerateMoves()

	occupied := b.Position().Occupied()
	drops := 0
	for _, m := range ml.Slice() {
		if !m.IsDrop() {
			continue
		}
		drops++
		if occupied.IsSet(m.To()) {
			t.Errorf("drop onto occupied square %s", m.To())
		}
	}
	if drops != 41 {
		t.Errorf("silver drops = %d, want 41", drops)
	}
}

func TestCaptureTargetsOpponentOnly(t *testing.T) {
	// Sente rook faces a gote pawn; it may capture it but not pass it,
	// and never lands on the sente pawn behind it.
	b := mustLoad(t, "9/9/9/4p4/9/4R4/9/4P4/4K4 b - 1")
	ml := b.GenerateMoves()

	if !ml.Contains(NewMove(31, 49, false)) {
		t.Error("rook should capture the pawn on 49")
	}
	if ml.Contains(NewMove(31, 58, false)) {
		t.Error("rook must not slide past the pawn on 49")
	}
	if ml.Contains(NewMove(31, 13, false)) {
		t.Error("rook must not capture its own pawn on 13")
	}
}
