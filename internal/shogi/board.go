package shogi

import (
	"fmt"
	"strings"
)

// historyCapacity is the number of snapshots reserved up front so that a
// normal game never reallocates the history. The slice still grows past it
// if a line runs longer.
const historyCapacity = 256

// Board owns one game line: an append-only history of position snapshots
// (the last entry is current), the side to move, and a ply counter. It is
// not safe for concurrent use; one Board serves one search line.
type Board struct {
	states []Position
	stm    Color
	ply    int
}

// NewBoard creates a board whose history holds a single empty position.
func NewBoard() *Board {
	states := make([]Position, 1, historyCapacity)
	states[0] = NewPosition()
	return &Board{states: states}
}

// current returns the position on top of the history.
func (b *Board) current() *Position {
	return &b.states[len(b.states)-1]
}

// Position returns the current position snapshot.
func (b *Board) Position() *Position {
	return b.current()
}

// SideToMove returns the side to move.
func (b *Board) SideToMove() Color {
	return b.stm
}

// Ply returns the ply counter.
func (b *Board) Ply() int {
	return b.ply
}

// PieceAt returns the piece on a square of the current position.
func (b *Board) PieceAt(sq Square) Piece {
	return b.current().PieceAt(sq)
}

// Clone returns a deep copy of the board, duplicating the whole history.
func (b *Board) Clone() *Board {
	states := make([]Position, len(b.states), cap(b.states))
	copy(states, b.states)
	return &Board{states: states, stm: b.stm, ply: b.ply}
}

// String renders the current position as a ruled 9x9 grid, rank 8 at the
// top and files left to right, followed by the side to move, both hands
// and the ply count. Promoted pieces fill their cell with marker plus
// letter; others are padded with a leading space.
func (b *Board) String() string {
	state := b.current()
	var sb strings.Builder

	writeRule(&sb, "┌", "┬", "┐")
	for rank := 8; rank >= 0; rank-- {
		for file := 0; file < 9; file++ {
			piece := state.PieceAt(NewSquare(file, rank))
			s := piece.String()
			if len(s) == 2 {
				sb.WriteString("│" + s + " ")
			} else {
				sb.WriteString("│ " + s + " ")
			}
		}
		sb.WriteString("│\n")
		if rank != 0 {
			writeRule(&sb, "├", "┼", "┤")
		}
	}
	writeRule(&sb, "└", "┴", "┘")

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "stm: %s\n", b.stm)
	fmt.Fprintf(&sb, "sente hand: %s\n", state.Hands[Sente].String())
	fmt.Fprintf(&sb, "gote hand: %s\n", strings.ToLower(state.Hands[Gote].String()))
	fmt.Fprintf(&sb, "ply count: %d\n", b.ply)

	return sb.String()
}

func writeRule(sb *strings.Builder, left, mid, right string) {
	sb.WriteString(left)
	for i := 0; i < 8; i++ {
		sb.WriteString("───" + mid)
	}
	sb.WriteString("───" + right + "\n")
}
