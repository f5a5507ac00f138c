package shogi

import (
	"fmt"
	"strconv"
	"strings"
)

// StartSFEN is the SFEN string for the standard starting position.
const StartSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// LoadSFEN parses an SFEN string and appends the resulting position to the
// board's history. The fields are placement, side to move ("w" selects
// gote; any other token, canonically "b", selects sente), hands, and an
// optional ply count (the prior ply is kept when absent). On error nothing
// is published: the board is left exactly as it was.
func (b *Board) LoadSFEN(sfen string) error {
	fields := strings.Fields(sfen)
	if len(fields) < 3 {
		return fmt.Errorf("invalid sfen: need placement, side to move and hands, got %d fields", len(fields))
	}

	state := NewPosition()

	if err := parsePlacement(&state, fields[0]); err != nil {
		return err
	}

	stm := Sente
	if fields[1] == "w" {
		stm = Gote
	}

	if err := parseHands(&state, fields[2]); err != nil {
		return err
	}

	ply := b.ply
	if len(fields) > 3 {
		n, err := strconv.Atoi(fields[3])
		if err != nil {
			return fmt.Errorf("invalid ply count: %s", fields[3])
		}
		ply = n
	}

	b.states = append(b.states, state)
	b.stm = stm
	b.ply = ply
	return nil
}

// parsePlacement fills the position from the placement field. Rank groups
// are written farthest rank first, so they are traversed last-to-first
// while the square index walks up from 0.
func parsePlacement(state *Position, placement string) error {
	groups := strings.Split(placement, "/")
	sq := 0
	for gi := len(groups) - 1; gi >= 0; gi-- {
		promoted := false
		for i := 0; i < len(groups[gi]); i++ {
			c := groups[gi][i]
			switch {
			case c == '+':
				promoted = true
			case c >= '0' && c <= '9':
				sq += int(c - '0')
			default:
				lower := c | 0x20
				entry, ok := sfenPieceTable[lower]
				if !ok {
					return fmt.Errorf("invalid character in sfen: %c", c)
				}
				if promoted && !entry.promotable {
					return fmt.Errorf("piece %c cannot be promoted", c)
				}
				if sq >= NumSquares {
					return fmt.Errorf("placement overflows the board")
				}
				pt := entry.pt
				if promoted {
					pt = pt.Promote()
					promoted = false
				}
				side := Gote
				if c < 'a' {
					side = Sente
				}
				state.AddPiece(Square(sq), NewPiece(pt, side))
				sq++
			}
		}
	}
	return nil
}

// parseHands fills both hands from the hand field. Each entry is an
// optional decimal count (default 1, reset after every piece letter)
// followed by a piece letter; "-" means both hands are empty.
func parseHands(state *Position, hands string) error {
	if hands == "-" {
		return nil
	}
	count := 0
	for i := 0; i < len(hands); i++ {
		c := hands[i]
		if c >= '0' && c <= '9' {
			count = count*10 + int(c-'0')
			continue
		}
		entry, ok := sfenPieceTable[c|0x20]
		if !ok {
			return fmt.Errorf("invalid character in sfen hand: %c", c)
		}
		if entry.pt == King {
			return fmt.Errorf("king cannot be held in hand")
		}
		side := Gote
		if c < 'a' {
			side = Sente
		}
		if count == 0 {
			count = 1
		}
		state.Hands[side].Set(entry.pt, count)
		count = 0
	}
	return nil
}

// ToSFEN returns the SFEN representation of the current position.
func (b *Board) ToSFEN() string {
	state := b.current()
	var sb strings.Builder

	for rank := 8; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 9; file++ {
			piece := state.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.stm == Gote {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(handsSFEN(state))

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.ply))

	return sb.String()
}

// handsSFEN renders both hands as one SFEN token, sente first.
func handsSFEN(state *Position) string {
	if state.Hands[Sente].IsEmpty() && state.Hands[Gote].IsEmpty() {
		return "-"
	}
	s := ""
	if !state.Hands[Sente].IsEmpty() {
		s += state.Hands[Sente].String()
	}
	if !state.Hands[Gote].IsEmpty() {
		s += strings.ToLower(state.Hands[Gote].String())
	}
	return s
}
