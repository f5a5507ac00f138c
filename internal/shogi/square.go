// Package shogi implements shogi board representation using bitboards.
package shogi

import "fmt"

// Square represents a square on the shogi board (0-80).
// Index = file + 9*rank. Square 0 is sente's right-hand corner (USI 9i);
// square 80 is gote's right-hand corner (USI 1a).
type Square uint8

// NoSquare marks the absence of a square.
const NoSquare Square = 81

// Board dimensions.
const (
	BoardLen   = 9
	NumSquares = 81
)

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank*BoardLen + file)
}

// File returns the file (column) of the square (0-8).
func (sq Square) File() int {
	return int(sq) % BoardLen
}

// Rank returns the rank (row) of the square (0-8).
func (sq Square) Rank() int {
	return int(sq) / BoardLen
}

// IsValid returns true if the square is a valid board square (0-80).
func (sq Square) IsValid() bool {
	return sq < NumSquares
}

// RelativeRank returns the rank from a given side's perspective.
// For Sente, rank 0 is its own back rank; for Gote, rank 8 is.
func (sq Square) RelativeRank(c Color) int {
	if c == Sente {
		return sq.Rank()
	}
	return 8 - sq.Rank()
}

// String returns the USI coordinate for the square (e.g., "7g").
// USI files count 9..1 from file index 0, ranks a..i from rank index 8.
func (sq Square) String() string {
	if sq >= NumSquares {
		return "-"
	}
	return fmt.Sprintf("%d%c", 9-sq.File(), 'a'+(8-sq.Rank()))
}

// ParseSquare parses a USI coordinate (e.g., "7g") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file := 9 - int(s[0]-'0')
	rank := 8 - int(s[1]-'a')

	if file < 0 || file > 8 || rank < 0 || rank > 8 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(file, rank), nil
}
