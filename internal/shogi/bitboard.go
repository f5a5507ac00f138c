package shogi

import "math/bits"

// Bitboard represents an 81-bit board set where each bit corresponds to a
// square. Go has no 128-bit integer, so the board is a two-word pair that
// behaves as one 128-bit value: bit 0 = square 0, bit 80 = square 80, bits
// 81-127 unused. Shifts and complements are raw 128-bit operations; callers
// mask with Full whenever bits can leave the 81-square domain.
type Bitboard struct {
	lo, hi uint64
}

// Canonical masks.
var (
	// Empty has no squares set.
	Empty = Bitboard{}
	// Full has all 81 squares set.
	Full = Bitboard{^uint64(0), (1 << 17) - 1}

	// fileMask covers file 0 (squares 0, 9, ..., 72).
	fileMask = Bitboard{0x8040201008040201, 0x100}
	// rankMask covers rank 0 (squares 0-8).
	rankMask = Bitboard{0x1FF, 0}

	// Edge files, masked off after east/west translations.
	file0BB = fileMask
	file8BB = fileMask.ShiftUp(8)
)

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	if sq < 64 {
		return Bitboard{1 << sq, 0}
	}
	return Bitboard{0, 1 << (sq - 64)}
}

// RankBB returns the mask for a full rank (0-8).
func RankBB(rank int) Bitboard {
	return rankMask.ShiftUp(uint(rank) * BoardLen)
}

// FileBB returns the mask for a full file (0-8).
func FileBB(file int) Bitboard {
	return fileMask.ShiftUp(uint(file))
}

// And returns the intersection of two bitboards.
func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{b.lo & o.lo, b.hi & o.hi}
}

// AndNot returns the squares in b that are not in o.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{b.lo &^ o.lo, b.hi &^ o.hi}
}

// Or returns the union of two bitboards.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{b.lo | o.lo, b.hi | o.hi}
}

// Xor returns the symmetric difference of two bitboards.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{b.lo ^ o.lo, b.hi ^ o.hi}
}

// Not returns the raw 128-bit complement. The result carries garbage above
// bit 80; mask with Full before shifting it back toward the board.
func (b Bitboard) Not() Bitboard {
	return Bitboard{^b.lo, ^b.hi}
}

// AndAssign intersects b with o in place.
func (b *Bitboard) AndAssign(o Bitboard) {
	b.lo &= o.lo
	b.hi &= o.hi
}

// OrAssign unions o into b in place.
func (b *Bitboard) OrAssign(o Bitboard) {
	b.lo |= o.lo
	b.hi |= o.hi
}

// XorAssign toggles the squares of o in b in place.
func (b *Bitboard) XorAssign(o Bitboard) {
	b.lo ^= o.lo
	b.hi ^= o.hi
}

// ShiftUp shifts the board n bits toward higher square indices (one rank
// forward for sente is n=9). Bits shifted past square 80 stay in the upper
// word until masked.
func (b Bitboard) ShiftUp(n uint) Bitboard {
	if n >= 64 {
		return Bitboard{0, b.lo << (n - 64)}
	}
	return Bitboard{b.lo << n, b.hi<<n | b.lo>>(64-n)}
}

// ShiftDown shifts the board n bits toward lower square indices.
func (b Bitboard) ShiftDown(n uint) Bitboard {
	if n >= 64 {
		return Bitboard{b.hi >> (n - 64), 0}
	}
	return Bitboard{b.lo>>n | b.hi<<(64-n), b.hi >> n}
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b.And(SquareBB(sq)) != Empty
}

// Set returns b with the bit at the given square set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b.Or(SquareBB(sq))
}

// Clear returns b with the bit at the given square cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b.AndNot(SquareBB(sq))
}

// PopCount returns the number of set squares.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(b.lo) + bits.OnesCount64(b.hi)
}

// IsEmpty returns true if no squares are set.
func (b Bitboard) IsEmpty() bool {
	return b.lo == 0 && b.hi == 0
}

// Any returns true if at least one square is set.
func (b Bitboard) Any() bool {
	return b.lo != 0 || b.hi != 0
}

// ContainsMultiple returns true if more than one square is set.
func (b Bitboard) ContainsMultiple() bool {
	if b.lo != 0 {
		return b.lo&(b.lo-1) != 0 || b.hi != 0
	}
	return b.hi&(b.hi-1) != 0
}

// ContainsOne returns true if exactly one square is set.
func (b Bitboard) ContainsOne() bool {
	return b.Any() && !b.ContainsMultiple()
}

// LSB returns the lowest set square, or NoSquare if the board is empty.
func (b Bitboard) LSB() Square {
	if b.lo != 0 {
		return Square(bits.TrailingZeros64(b.lo))
	}
	if b.hi != 0 {
		return Square(64 + bits.TrailingZeros64(b.hi))
	}
	return NoSquare
}

// MSB returns the highest set square, or NoSquare if the board is empty.
func (b Bitboard) MSB() Square {
	if b.hi != 0 {
		return Square(127 - bits.LeadingZeros64(b.hi))
	}
	if b.lo != 0 {
		return Square(63 - bits.LeadingZeros64(b.lo))
	}
	return NoSquare
}

// PopLSB removes and returns the lowest set square. Calling it on an empty
// board is a caller bug; it returns NoSquare and leaves the board empty.
func (b *Bitboard) PopLSB() Square {
	if b.lo != 0 {
		sq := Square(bits.TrailingZeros64(b.lo))
		b.lo &= b.lo - 1
		return sq
	}
	if b.hi != 0 {
		sq := Square(64 + bits.TrailingZeros64(b.hi))
		b.hi &= b.hi - 1
		return sq
	}
	return NoSquare
}

// FillUp floods every set square toward higher ranks, masked to the board.
func (b Bitboard) FillUp() Bitboard {
	b.OrAssign(b.ShiftUp(9))
	b.OrAssign(b.ShiftUp(18))
	b.OrAssign(b.ShiftUp(36))
	b.OrAssign(b.ShiftUp(72))
	return b.And(Full)
}

// FillDown floods every set square toward lower ranks, masked to the board.
func (b Bitboard) FillDown() Bitboard {
	b.OrAssign(b.ShiftDown(9))
	b.OrAssign(b.ShiftDown(18))
	b.OrAssign(b.ShiftDown(36))
	b.OrAssign(b.ShiftDown(72))
	return b.And(Full)
}

// FileFill fills the entire file(s) containing any set square.
func (b Bitboard) FileFill() Bitboard {
	return b.FillUp().Or(b.FillDown())
}

// One-step translations for attack table construction. Each masks away the
// file wrap and any bits pushed past square 80.

// North shifts the board one rank toward gote's edge.
func (b Bitboard) North() Bitboard {
	return b.ShiftUp(9).And(Full)
}

// South shifts the board one rank toward sente's edge.
func (b Bitboard) South() Bitboard {
	return b.ShiftDown(9)
}

// East shifts the board one file higher.
func (b Bitboard) East() Bitboard {
	return b.ShiftUp(1).AndNot(file0BB).And(Full)
}

// West shifts the board one file lower.
func (b Bitboard) West() Bitboard {
	return b.ShiftDown(1).AndNot(file8BB)
}

// NorthEast shifts one rank north and one file east.
func (b Bitboard) NorthEast() Bitboard {
	return b.ShiftUp(10).AndNot(file0BB).And(Full)
}

// NorthWest shifts one rank north and one file west.
func (b Bitboard) NorthWest() Bitboard {
	return b.ShiftUp(8).AndNot(file8BB).And(Full)
}

// SouthEast shifts one rank south and one file east.
func (b Bitboard) SouthEast() Bitboard {
	return b.ShiftDown(8).AndNot(file0BB)
}

// SouthWest shifts one rank south and one file west.
func (b Bitboard) SouthWest() Bitboard {
	return b.ShiftDown(10).AndNot(file8BB)
}

// ForEach calls the function for each set square in ascending index order.
func (b Bitboard) ForEach(f func(Square)) {
	for b.Any() {
		f(b.PopLSB())
	}
}

// Squares returns a slice of all set squares in ascending index order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b.Any() {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// String returns a visual representation of the bitboard, rank 8 at the top.
func (b Bitboard) String() string {
	s := ""
	for rank := 8; rank >= 0; rank-- {
		for file := 0; file < 9; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				s += "1 "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	return s
}
