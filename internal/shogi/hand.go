package shogi

import (
	"strconv"
	"strings"
)

// Hand holds one side's captured pieces, ready to be dropped. Every base
// category except the king is droppable; promoted pieces revert to their
// base category when captured.
type Hand struct {
	counts [Gold + 1]uint8
}

// sfenHandOrder is the conventional SFEN ordering for hand pieces.
var sfenHandOrder = [...]PieceType{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn}

// Count returns how many pieces of the category are held.
func (h *Hand) Count(pt PieceType) int {
	return int(h.counts[pt])
}

// Set overwrites the held count for the category.
func (h *Hand) Set(pt PieceType, n int) {
	h.counts[pt] = uint8(n)
}

// IsEmpty returns true if no pieces are held.
func (h *Hand) IsEmpty() bool {
	for _, n := range h.counts {
		if n != 0 {
			return false
		}
	}
	return true
}

// ForEach calls the function for every category held with a nonzero count.
func (h *Hand) ForEach(f func(pt PieceType, count int)) {
	for pt := Pawn; pt <= Gold; pt++ {
		if h.counts[pt] != 0 {
			f(pt, int(h.counts[pt]))
		}
	}
}

// String returns the hand in SFEN order with counts, e.g. "2G3P", or "-"
// when empty. Letters are uppercase; the caller lowercases for gote.
func (h *Hand) String() string {
	if h.IsEmpty() {
		return "-"
	}
	var sb strings.Builder
	for _, pt := range sfenHandOrder {
		n := int(h.counts[pt])
		if n == 0 {
			continue
		}
		if n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
		sb.WriteByte(pt.Char())
	}
	return sb.String()
}
