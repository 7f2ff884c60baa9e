// Package notation renders board positions and moves in standard checkers notation.
package notation

import (
	"fmt"
	"strconv"

	"checkers-local/types"
)

// Standard checkers numbering:
// - Only the 32 dark squares are numbered, 1-32.
// - Square 1 is the leftmost dark square of row 0 (the computer's back rank),
//   numbering runs left to right, top to bottom, four squares per row.
// - Moves are written "11-15", captures "22x15".
//
// Board coordinates:
// - Row: 0-7 (top to bottom), Col: 0-7 (left to right)
// - Example: (0, 1) is square 1, (7, 6) is square 32

// PosToSquare converts a board position to its square number.
// It returns false for light or off-board squares.
func PosToSquare(p types.Position) (int, bool) {
	if !p.OnBoard() || !p.IsDark() {
		return 0, false
	}
	return p.Row*4 + p.Col/2 + 1, true
}

// FormatSquare renders a position as its square number, or "r,c" for positions that
// have no number.
func FormatSquare(p types.Position) string {
	if sq, ok := PosToSquare(p); ok {
		return strconv.Itoa(sq)
	}
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// FormatMove renders a move as "11-15" or "22x15".
func FormatMove(m types.Move) string {
	sep := "-"
	if m.Outcome == types.OutcomeJump {
		sep = "x"
	}
	return FormatSquare(m.From) + sep + FormatSquare(m.To)
}

// PlayerLabel returns the short label used in move lists.
func PlayerLabel(p types.Player) string {
	if p == types.Player1 {
		return "You"
	}
	return "CPU"
}
