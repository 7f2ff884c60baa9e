package checkers

import "checkers-local/types"

// MoveComputer tries a simple move, then a jump, for the computer's piece on this
// configuration. It is the successor-generation counterpart of Move: no snapshot,
// no notification.
func (g *GameState) MoveComputer(from, to types.Position) bool {
	return g.apply(Computer, from, to) != types.OutcomeNone
}

// CellSuccessors returns every configuration reachable by moving the computer piece at
// pos once. Destinations are tried at distance 1 then 2, in the order
// (-i,-i), (-i,+i), (+i,-i), (+i,+i); that order fixes tie-breaks when ranking.
func (g *GameState) CellSuccessors(pos types.Position) []*GameState {
	if g.board.Owner(pos) != Computer {
		return nil
	}
	var out []*GameState
	for i := 1; i <= 2; i++ {
		for _, d := range [4][2]int{{-i, -i}, {-i, +i}, {+i, -i}, {+i, +i}} {
			next := g.Clone()
			if next.MoveComputer(pos, pos.Offset(d[0], d[1])) {
				out = append(out, next)
			}
		}
	}
	return out
}

// Successors concatenates CellSuccessors over all 64 positions in row-major order.
func (g *GameState) Successors() []*GameState {
	var out []*GameState
	for sq := 0; sq < types.NumSquares; sq++ {
		out = append(out, g.CellSuccessors(types.PositionAt(sq))...)
	}
	return out
}
