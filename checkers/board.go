// Package checkers holds the board-state engine: the board, move legality,
// the game state with its undo log, and successor generation for the computer player.
package checkers

import (
	"strings"

	"checkers-local/types"
)

// Board maps every position of the 8×8 grid to an optional piece.
// It is a plain value: assigning a Board copies every square.
type Board struct {
	squares [types.NumSquares]types.Piece
}

// NewBoard returns the starting layout: Player 2 on the dark squares of rows 0–1,
// Player 1 on the dark squares of rows 6–7. Two rows per side hold 8 pieces each, not
// the 12 of a full draughts setup; piece counts are always read off the board.
func NewBoard() Board {
	var b Board
	for r := 0; r < types.Rows; r++ {
		for c := 0; c < types.Cols; c++ {
			switch {
			case (r == 0 && c%2 == 1) || (r == 1 && c%2 == 0):
				b.squares[types.Pos(r, c).Index()] = types.NewPiece(types.Player2)
			case (r == 7 && c%2 == 0) || (r == 6 && c%2 == 1):
				b.squares[types.Pos(r, c).Index()] = types.NewPiece(types.Player1)
			}
		}
	}
	return b
}

// Get returns the piece at pos. Off-board positions are always empty.
func (b *Board) Get(pos types.Position) (types.Piece, bool) {
	if !pos.OnBoard() {
		return types.Piece{}, false
	}
	pc := b.squares[pos.Index()]
	return pc, !pc.Empty()
}

// Set overwrites the square at pos. A piece without an owner clears it.
// Writes to off-board positions and pieces of unknown owners are dropped.
func (b *Board) Set(pos types.Position, pc types.Piece) {
	if !pos.OnBoard() {
		return
	}
	switch pc.Owner {
	case types.Player1, types.Player2:
	case types.NoPlayer:
		pc = types.Piece{}
	default:
		return
	}
	b.squares[pos.Index()] = pc
}

// Clear removes any piece at pos.
func (b *Board) Clear(pos types.Position) {
	b.Set(pos, types.Piece{})
}

// IsOccupied reports whether a piece sits at pos.
func (b *Board) IsOccupied(pos types.Position) bool {
	_, ok := b.Get(pos)
	return ok
}

// Owner returns the owner of the piece at pos, or NoPlayer.
func (b *Board) Owner(pos types.Position) types.Player {
	pc, _ := b.Get(pos)
	return pc.Owner
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() Board {
	return *b
}

// Count returns the number of pieces owned by each player, indexed by Player.
func (b *Board) Count() [3]int {
	var n [3]int
	for _, pc := range b.squares {
		if pc.Owner == types.Player1 || pc.Owner == types.Player2 {
			n[pc.Owner]++
		}
	}
	return n
}

// Codes renders the board as Piece.Code values indexed [row][col].
func (b *Board) Codes() [types.Rows][types.Cols]int {
	var out [types.Rows][types.Cols]int
	for i, pc := range b.squares {
		p := types.PositionAt(i)
		out[p.Row][p.Col] = pc.Code()
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// canStep checks the owner/direction rule for a diagonal of the given distance:
// men move toward the opponent, kings either way.
func canStep(pc types.Piece, dr, dist int) bool {
	if dr == pc.Owner.Forward()*dist {
		return true
	}
	return pc.King && abs(dr) == dist
}

// SimpleMove relocates actor's piece one square diagonally onto an empty square.
// It returns false and leaves the board untouched when any rule fails.
func (b *Board) SimpleMove(actor types.Player, from, to types.Position) bool {
	if !from.OnBoard() || !to.OnBoard() {
		return false
	}
	pc, ok := b.Get(from)
	if !ok || pc.Owner != actor {
		return false
	}
	if b.IsOccupied(to) || abs(to.Col-from.Col) != 1 {
		return false
	}
	if !canStep(pc, to.Row-from.Row, 1) {
		return false
	}
	b.Clear(from)
	b.Set(to, pc)
	return true
}

// SimpleJump moves actor's piece two squares diagonally over an opposing piece,
// removing it. Landing squares are not checked for colour parity.
func (b *Board) SimpleJump(actor types.Player, from, to types.Position) bool {
	if !from.OnBoard() || !to.OnBoard() {
		return false
	}
	pc, ok := b.Get(from)
	if !ok || pc.Owner != actor {
		return false
	}
	if b.IsOccupied(to) || abs(to.Col-from.Col) != 2 {
		return false
	}
	if !canStep(pc, to.Row-from.Row, 2) {
		return false
	}
	mid := types.Pos((from.Row+to.Row)/2, (from.Col+to.Col)/2)
	victim, ok := b.Get(mid)
	if !ok || victim.Owner == actor {
		return false
	}
	b.Clear(from)
	b.Clear(mid)
	b.Set(to, pc)
	return true
}

// Promote crowns the piece at pos if it belongs to a man standing on its king row.
// It reports whether the flag changed.
func (b *Board) Promote(pos types.Position) bool {
	pc, ok := b.Get(pos)
	if !ok || pc.King || pos.Row != pc.Owner.KingRow() {
		return false
	}
	b.Set(pos, pc.Crowned())
	return true
}

// String renders one line per row: '.' empty, '1'/'2' men, 'K'/'k' kings.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < types.Rows; r++ {
		for c := 0; c < types.Cols; c++ {
			pc, ok := b.Get(types.Pos(r, c))
			switch {
			case !ok:
				sb.WriteByte('.')
			case pc.King && pc.Owner == types.Player1:
				sb.WriteByte('K')
			case pc.King:
				sb.WriteByte('k')
			default:
				sb.WriteByte(byte('0' + pc.Owner))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from the String format. Unknown runes are empty squares;
// missing rows and columns stay empty.
func ParseBoard(s string) Board {
	var b Board
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for r, line := range lines {
		if r >= types.Rows {
			break
		}
		for c, ch := range strings.TrimSpace(line) {
			if c >= types.Cols {
				break
			}
			pos := types.Pos(r, c)
			switch ch {
			case '1':
				b.Set(pos, types.NewPiece(types.Player1))
			case '2':
				b.Set(pos, types.NewPiece(types.Player2))
			case 'K':
				b.Set(pos, types.NewPiece(types.Player1).Crowned())
			case 'k':
				b.Set(pos, types.NewPiece(types.Player2).Crowned())
			}
		}
	}
	return b
}
