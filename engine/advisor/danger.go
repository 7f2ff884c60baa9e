package advisor

import (
	"checkers-local/checkers"
	"checkers-local/types"
)

// attackDirs are the neighbour offsets checked around each computer piece.
var attackDirs = [4][2]int{{+1, +1}, {-1, -1}, {+1, -1}, {-1, +1}}

// CountPiecesInDanger counts (piece, direction) pairs where a Player 1 piece is
// diagonally adjacent to a computer piece and the square beyond it, on the opposite
// side, is on the board and empty. A piece flanked twice counts twice. The attacker's
// own movement direction is not considered.
func CountPiecesInDanger(config *checkers.GameState) int {
	danger := 0
	for sq := 0; sq < types.NumSquares; sq++ {
		pos := types.PositionAt(sq)
		pc, ok := config.Get(pos)
		if !ok || pc.Owner != checkers.Computer {
			continue
		}
		for _, d := range attackDirs {
			attacker, ok := config.Get(pos.Offset(d[0], d[1]))
			if !ok || attacker.Owner != checkers.Human {
				continue
			}
			landing := pos.Offset(-d[0], -d[1])
			if landing.OnBoard() && !config.IsOccupied(landing) {
				danger++
			}
		}
	}
	return danger
}
