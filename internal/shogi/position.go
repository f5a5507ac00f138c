package shogi

import "fmt"

// Position represents one board snapshot. Placement is kept in three
// redundant views that must never diverge: per-side occupancy bitboards,
// per-category bitboards spanning both sides, and a direct square lookup.
// AddPiece and RemovePiece are the only mutators of the views.
type Position struct {
	Sides   [2]Bitboard
	Pieces  [NumPieceTypes]Bitboard
	Mailbox [NumSquares]Piece
	Hands   [2]Hand
}

// NewPosition returns an empty position.
func NewPosition() Position {
	var p Position
	for sq := range p.Mailbox {
		p.Mailbox[sq] = NoPiece
	}
	return p
}

// AddPiece places a piece on an empty square, updating all three views.
func (p *Position) AddPiece(sq Square, piece Piece) {
	bb := SquareBB(sq)
	p.Sides[piece.Color()].XorAssign(bb)
	p.Pieces[piece.Type()].XorAssign(bb)
	p.Mailbox[sq] = piece
}

// RemovePiece removes the given piece from a square, updating all three
// views. The piece must match what occupies the square.
func (p *Position) RemovePiece(sq Square, piece Piece) {
	bb := SquareBB(sq)
	p.Sides[piece.Color()].XorAssign(bb)
	p.Pieces[piece.Type()].XorAssign(bb)
	p.Mailbox[sq] = NoPiece
}

// MovePiece moves a piece, removing the victim from the destination first.
// The caller supplies the mover and the victim (NoPiece when the
// destination is empty); nothing is inferred.
func (p *Position) MovePiece(from Square, piece Piece, to Square, victim Piece) {
	if victim != NoPiece {
		p.RemovePiece(to, victim)
	}
	p.RemovePiece(from, piece)
	p.AddPiece(to, piece)
}

// PieceAt returns the piece occupying a square, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Mailbox[sq]
}

// Occupied returns the union of both sides' occupancy.
func (p *Position) Occupied() Bitboard {
	return p.Sides[Sente].Or(p.Sides[Gote])
}

// SidedPieces returns the squares holding one side's pieces of one
// category.
func (p *Position) SidedPieces(pt PieceType, c Color) Bitboard {
	return p.Sides[c].And(p.Pieces[pt])
}

// Validate checks that the three placement views agree. Placement goes
// through AddPiece/RemovePiece only, so a failure here means a caller bug.
func (p *Position) Validate() error {
	if p.Sides[Sente].And(p.Sides[Gote]).Any() {
		return fmt.Errorf("side occupancies overlap")
	}

	var fromCategories Bitboard
	for pt := Pawn; pt < NoPieceType; pt++ {
		if fromCategories.And(p.Pieces[pt]).Any() {
			return fmt.Errorf("category occupancies overlap at %s", pt)
		}
		fromCategories.OrAssign(p.Pieces[pt])
	}
	if fromCategories != p.Occupied() {
		return fmt.Errorf("category views disagree with side views")
	}

	for sq := Square(0); sq < NumSquares; sq++ {
		piece := p.Mailbox[sq]
		if piece == NoPiece {
			if p.Occupied().IsSet(sq) {
				return fmt.Errorf("square %s occupied but mailbox empty", sq)
			}
			continue
		}
		if !p.Sides[piece.Color()].IsSet(sq) || !p.Pieces[piece.Type()].IsSet(sq) {
			return fmt.Errorf("mailbox holds %s at %s but views disagree", piece, sq)
		}
	}

	return nil
}
