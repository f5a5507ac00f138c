package shogi

// Color represents the side a piece or player belongs to.
type Color uint8

const (
	Sente Color = iota // first player, moves toward higher ranks
	Gote               // second player, moves toward lower ranks
	NoColor Color = 2
)

// Other returns the opposite side.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the side name.
func (c Color) String() string {
	switch c {
	case Sente:
		return "sente"
	case Gote:
		return "gote"
	default:
		return "none"
	}
}

// PieceType represents the category of a shogi piece. Promoted categories
// follow the base categories at a fixed offset; call sites use the methods
// below rather than the raw arithmetic.
type PieceType uint8

const (
	Pawn PieceType = iota
	Lance
	Knight
	Silver
	Bishop
	Rook
	Gold
	King
	PromotedPawn
	PromotedLance
	PromotedKnight
	PromotedSilver
	PromotedBishop
	PromotedRook
	NoPieceType PieceType = 14
)

// NumPieceTypes is the number of distinct piece categories.
const NumPieceTypes = 14

// promoOffset separates a promoted category from its base category.
const promoOffset = 8

// CanPromote returns true if the category has a promoted variant: the six
// categories below gold. Gold, king and already-promoted pieces never
// promote.
func (pt PieceType) CanPromote() bool {
	return pt < Gold
}

// Promote returns the promoted variant of a base category.
// Calling it on a category with no promoted variant is a caller bug.
func (pt PieceType) Promote() PieceType {
	return pt + promoOffset
}

// IsPromoted returns true for the six promoted categories.
func (pt PieceType) IsPromoted() bool {
	return pt >= PromotedPawn && pt < NoPieceType
}

// Base returns the unpromoted category backing pt.
func (pt PieceType) Base() PieceType {
	if pt.IsPromoted() {
		return pt - promoOffset
	}
	return pt
}

// String returns the name of the piece type.
func (pt PieceType) String() string {
	names := [...]string{
		"pawn", "lance", "knight", "silver", "bishop", "rook", "gold", "king",
		"promoted pawn", "promoted lance", "promoted knight", "promoted silver",
		"horse", "dragon",
	}
	if pt >= NoPieceType {
		return "none"
	}
	return names[pt]
}

// Char returns the SFEN letter for the category's base type (uppercase).
func (pt PieceType) Char() byte {
	chars := [...]byte{'P', 'L', 'N', 'S', 'B', 'R', 'G', 'K'}
	return chars[pt.Base()]
}

// sfenPieceTable maps an SFEN letter (lowercase) to its base category and
// whether a '+' marker may precede it. Gold and king have no promoted form.
var sfenPieceTable = map[byte]struct {
	pt         PieceType
	promotable bool
}{
	'p': {Pawn, true},
	'l': {Lance, true},
	'n': {Knight, true},
	's': {Silver, true},
	'b': {Bishop, true},
	'r': {Rook, true},
	'g': {Gold, false},
	'k': {King, false},
}

// Piece combines PieceType and Color into a single value.
// Encoded as: pieceType + color*NumPieceTypes.
type Piece uint8

// NoPiece marks an empty square.
const NoPiece Piece = NumPieceTypes * 2

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*NumPieceTypes
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % NumPieceTypes)
}

// Color returns the side the piece belongs to.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / NumPieceTypes)
}

// String returns the SFEN representation of the piece: the base letter,
// uppercase for sente and lowercase for gote, with a '+' prefix when
// promoted. An empty square renders as a single space.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	c := p.Type().Char()
	if p.Color() == Gote {
		c += 'a' - 'A'
	}
	if p.Type().IsPromoted() {
		return "+" + string(c)
	}
	return string(c)
}
