package checkers

import (
	"go.uber.org/zap"

	"checkers-local/types"
)

// snapshot is one entry of the undo log. The turn flags travel with the board so
// that Undo never leaves a half-played turn looking unplayed.
type snapshot struct {
	board    Board
	lastMove *types.Move
	moveNum  int
	by       types.Player

	jumping  bool
	jumper   types.Position
	movedOne bool
}

func (g *GameState) push(by types.Player) {
	g.history = append(g.history, snapshot{
		board:    g.board,
		lastMove: g.lastMove,
		moveNum:  g.moveNum,
		by:       by,
		jumping:  g.Jumping,
		jumper:   g.Jumper,
		movedOne: g.MovedOne,
	})
}

// apply tries a simple move, then a jump, for actor. On success the landing piece is
// crowned if it reached its king row, and a capture decrements the opponent's count.
func (g *GameState) apply(actor types.Player, from, to types.Position) types.MoveOutcome {
	outcome := types.OutcomeNone
	if g.board.SimpleMove(actor, from, to) {
		outcome = types.OutcomeSimple
	} else if g.board.SimpleJump(actor, from, to) {
		outcome = types.OutcomeJump
		g.pieces[actor.Opponent()]--
	}
	if outcome == types.OutcomeNone {
		return outcome
	}
	g.board.Promote(to)
	g.lastMove = &types.Move{Player: actor, From: from, To: to, Outcome: outcome}
	g.moveNum++
	return outcome
}

// Move plays the human's piece from one square to another. A snapshot is pushed
// before the attempt, so Undo after a rejected move restores an identical board.
func (g *GameState) Move(from, to types.Position) types.MoveOutcome {
	g.push(Human)
	outcome := g.apply(Human, from, to)
	if outcome == types.OutcomeNone {
		g.log.Debug("move_rejected", zap.String("game_id", g.id), zap.Stringer("from", from), zap.Stringer("to", to))
		return outcome
	}
	g.log.Debug("move",
		zap.String("game_id", g.id),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Stringer("outcome", outcome),
		zap.Int("p1", g.P1Pieces()),
		zap.Int("p2", g.P2Pieces()),
	)
	g.Update()
	return outcome
}

// Undo restores the most recent snapshot together with the turn flags recorded
// with it, and clears the pending selection. No-op on empty history.
func (g *GameState) Undo() {
	if len(g.history) == 0 {
		return
	}
	s := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.selection = nil
	g.Jumping = s.jumping
	g.Jumper = s.jumper
	g.MovedOne = s.movedOne
	g.lastMove = s.lastMove
	g.moveNum = s.moveNum
	g.log.Debug("undo", zap.String("game_id", g.id), zap.Int("history", len(g.history)))
	g.SetBoard(s.board)
}

// UndoneBy returns the player whose move the next Undo takes back, or NoPlayer
// when the history is empty.
func (g *GameState) UndoneBy() types.Player {
	if len(g.history) == 0 {
		return types.NoPlayer
	}
	return g.history[len(g.history)-1].by
}

// Commit pushes the current board and installs next as the new position.
// Used by the computer player once it has chosen a successor.
func (g *GameState) Commit(next *GameState) {
	g.push(Computer)
	g.lastMove = next.lastMove
	g.moveNum = next.moveNum
	g.SetBoard(next.board)
}

// Select stores pos as the pending selection. The buffer holds one position;
// it returns false when a selection is already pending.
func (g *GameState) Select(pos types.Position) bool {
	if len(g.selection) > 0 {
		return false
	}
	g.selection = append(g.selection, pos)
	return true
}

// Selection returns the pending selection, if any.
func (g *GameState) Selection() (types.Position, bool) {
	if len(g.selection) == 0 {
		return types.Position{}, false
	}
	return g.selection[0], true
}

// TakeSelection removes and returns the pending selection.
func (g *GameState) TakeSelection() (types.Position, bool) {
	pos, ok := g.Selection()
	g.selection = nil
	return pos, ok
}

// ClearSelection drops any pending selection.
func (g *GameState) ClearSelection() {
	g.selection = nil
}
