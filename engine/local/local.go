// Package local provides an in-process GameEngine: one GameState, one MoveAdvisor and
// the click/commit protocol that decides when a jump sequence continues.
package local

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"checkers-local/checkers"
	"checkers-local/engine"
	"checkers-local/engine/advisor"
	"checkers-local/obslog"
	"checkers-local/types"
)

// LocalEngine implements the GameEngine interface against the built-in advisor.
type LocalEngine struct {
	config  engine.GameConfig
	game    *checkers.GameState
	advisor *advisor.MoveAdvisor
	log     *zap.Logger

	dirty bool // set by the game observer, drained by unlockAndNotify
	ended bool // game-end callback already delivered for the current result

	moveCallback func(boardState *types.BoardState)
	endCallback  func(winner types.Player)

	mu sync.Mutex
}

// NewLocalEngine creates a local engine with the given configuration.
func NewLocalEngine(cfg engine.GameConfig) *LocalEngine {
	return &LocalEngine{
		config: cfg,
		log:    obslog.L(),
	}
}

// Connect creates the game and the computer player.
func (l *LocalEngine) Connect() error {
	ranking, err := advisor.ParseRanking(string(l.config.Ranking))
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	l.mu.Lock()
	l.game = checkers.New(checkers.WithLogger(l.log))
	l.game.OnChange(func(*checkers.GameState) { l.dirty = true })
	l.advisor = advisor.New(l.game, advisor.WithRanking(ranking), advisor.WithLogger(l.log))
	l.ended = false
	l.log.Info("game_start", zap.String("game_id", l.game.ID()), zap.String("ranking", string(ranking)))
	l.mu.Unlock()
	return nil
}

// unlockAndNotify releases the lock and then delivers pending callbacks, so that
// callbacks may call back into the engine. Must be called with the lock held.
func (l *LocalEngine) unlockAndNotify() {
	dirty := l.dirty
	l.dirty = false

	var state *types.BoardState
	if dirty {
		state = l.game.Snapshot()
	}

	winner := types.NoPlayer
	if l.game != nil {
		winner = l.game.HasWon()
	}
	fireEnd := false
	if winner == types.NoPlayer {
		l.ended = false
	} else if !l.ended {
		l.ended = true
		fireEnd = true
		l.log.Info("game_end", zap.String("game_id", l.game.ID()), zap.Stringer("winner", winner))
	}

	moveCallback, endCallback := l.moveCallback, l.endCallback
	l.mu.Unlock()

	if dirty && moveCallback != nil {
		moveCallback(state)
	}
	if fireEnd && endCallback != nil {
		endCallback(winner)
	}
}

// GetBoardState returns a snapshot of the current game.
func (l *LocalEngine) GetBoardState() *types.BoardState {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.game == nil {
		return &types.BoardState{Phase: types.PhasePlaying}
	}
	return l.game.Snapshot()
}

// Click handles one board click from the human.
func (l *LocalEngine) Click(pos types.Position) (types.MoveOutcome, error) {
	l.mu.Lock()
	outcome, err := l.click(pos)
	l.unlockAndNotify()
	return outcome, err
}

func (l *LocalEngine) click(pos types.Position) (types.MoveOutcome, error) {
	g := l.game
	if g == nil || !g.IsHumanTurn() {
		return types.OutcomeNone, engine.ErrNotYourTurn
	}
	if g.MovedOne {
		return types.OutcomeNone, engine.ErrTurnComplete
	}

	// First click: pick up one of the human's pieces. Mid-sequence only the jumper may move.
	if _, pending := g.Selection(); !pending {
		pc, ok := g.Get(pos)
		if !ok || pc.Owner != checkers.Human || (g.Jumping && g.Jumper != pos) {
			return types.OutcomeNone, engine.ErrNoSelection
		}
		g.Select(pos)
		g.Update()
		return types.OutcomeNone, nil
	}

	if g.HasWon() != types.NoPlayer {
		return types.OutcomeNone, engine.ErrGameOver
	}

	from, _ := g.TakeSelection()
	defer g.Update()

	if pos == from {
		return types.OutcomeNone, nil
	}

	if g.Jumping {
		outcome := g.Move(from, pos)
		if outcome != types.OutcomeJump {
			g.Undo()
			return types.OutcomeNone, fmt.Errorf("%w: only another jump can continue the sequence", engine.ErrIllegalMove)
		}
		g.Jumper = pos
		return outcome, nil
	}

	outcome := g.Move(from, pos)
	switch outcome {
	case types.OutcomeJump:
		g.Jumping = true
		g.Jumper = pos
	case types.OutcomeSimple:
		g.MovedOne = true
	default:
		g.Undo()
		return outcome, fmt.Errorf("%w: %s to %s", engine.ErrIllegalMove, from, pos)
	}
	return outcome, nil
}

// Commit ends the human's turn, plays the computer's reply and hands the turn back.
func (l *LocalEngine) Commit() error {
	l.mu.Lock()
	err := l.commit()
	l.unlockAndNotify()
	return err
}

func (l *LocalEngine) commit() error {
	g := l.game
	if g == nil || !g.IsHumanTurn() {
		return engine.ErrNotYourTurn
	}
	if g.HasWon() != types.NoPlayer {
		return engine.ErrGameOver
	}
	if !g.Jumping && !g.MovedOne {
		return engine.ErrNothingToCommit
	}

	g.Jumping = false
	g.MovedOne = false
	g.ClearSelection()
	g.NextMove()
	if !l.advisor.Move() {
		l.log.Info("computer_stuck", zap.String("game_id", g.ID()))
	}
	g.NextMove()
	g.Update()
	return nil
}

// IsMyTurn returns true if it's the human player's turn.
func (l *LocalEngine) IsMyTurn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game != nil && l.game.IsHumanTurn() && l.game.HasWon() == types.NoPlayer
}

// CanCommit returns true once the human has moved this turn.
func (l *LocalEngine) CanCommit() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	g := l.game
	return g != nil && g.IsHumanTurn() && g.HasWon() == types.NoPlayer && (g.Jumping || g.MovedOne)
}

// OnMove registers a callback for every change to the game.
func (l *LocalEngine) OnMove(callback func(boardState *types.BoardState)) {
	l.mu.Lock()
	l.moveCallback = callback
	l.mu.Unlock()
}

// OnGameEnd registers a callback for when the game ends.
func (l *LocalEngine) OnGameEnd(callback func(winner types.Player)) {
	l.mu.Lock()
	l.endCallback = callback
	l.mu.Unlock()
}

// Undo takes back the human's last move. When the computer has already replied,
// its reply goes too, so the turn returns to the human in the state it was played from.
func (l *LocalEngine) Undo() error {
	l.mu.Lock()
	if l.game == nil {
		l.mu.Unlock()
		return engine.ErrNotYourTurn
	}
	g := l.game
	if g.UndoneBy() == checkers.Computer {
		g.Undo()
	}
	g.Undo()
	l.unlockAndNotify()
	return nil
}

// Reset starts a new game.
func (l *LocalEngine) Reset() {
	l.mu.Lock()
	if l.game == nil {
		l.mu.Unlock()
		return
	}
	l.game.Reset()
	l.unlockAndNotify()
}

// Close ends the session.
func (l *LocalEngine) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.game != nil {
		l.log.Info("game_close", zap.String("game_id", l.game.ID()), zap.Int("p1", l.game.P1Pieces()), zap.Int("p2", l.game.P2Pieces()))
	}
}
