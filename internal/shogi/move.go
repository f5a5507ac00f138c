package shogi

// Move encodes one action in 16 bits:
// bits 0-6:  origin square, or the dropped piece category for drops
// bits 7-13: destination square
// bit 14:    promotion flag
// bit 15:    drop flag
type Move uint16

// Move flags.
const (
	FlagPromotion Move = 1 << 14
	FlagDrop      Move = 1 << 15
)

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a board move, optionally promoting on arrival.
func NewMove(from, to Square, promote bool) Move {
	m := Move(from) | Move(to)<<7
	if promote {
		m |= FlagPromotion
	}
	return m
}

// NewDrop creates a drop of a held piece category onto a square.
func NewDrop(pt PieceType, to Square) Move {
	return Move(pt) | Move(to)<<7 | FlagDrop
}

// From returns the origin square. Only valid for board moves.
func (m Move) From() Square {
	return Square(m & 0x7F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 7) & 0x7F)
}

// IsPromotion returns true if the mover promotes on arrival.
func (m Move) IsPromotion() bool {
	return m&FlagPromotion != 0
}

// IsDrop returns true if the move drops a piece from hand.
func (m Move) IsDrop() bool {
	return m&FlagDrop != 0
}

// DropPiece returns the dropped piece category. Only valid for drops.
func (m Move) DropPiece() PieceType {
	return PieceType(m & 0x7F)
}

// String returns the USI form of the move: "7g7f", "2b3c+" for a
// promotion, "P*5e" for a drop.
func (m Move) String() string {
	if m == NoMove {
		return "none"
	}
	if m.IsDrop() {
		return string(m.DropPiece().Char()) + "*" + m.To().String()
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += "+"
	}
	return s
}

// maxMoves bounds a move list. No shogi position has more moves (the known
// maximum is 593).
const maxMoves = 600

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [maxMoves]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice backed by the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
