// Package engine defines the interface between the terminal UI and a checkers game.
package engine

import (
	"errors"

	"checkers-local/engine/advisor"
	"checkers-local/types"
)

var (
	ErrGameOver        = errors.New("game is over")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrTurnComplete    = errors.New("a simple move already ended this turn")
	ErrNothingToCommit = errors.New("make a move before ending the turn")
	ErrNoSelection     = errors.New("select one of your pieces first")
	ErrIllegalMove     = errors.New("illegal move")
)

// GameEngine defines the interface for playing checkers against the computer.
type GameEngine interface {
	// Connect initializes the game.
	Connect() error

	// GetBoardState returns a snapshot of the current game.
	GetBoardState() *types.BoardState

	// Click is one half of the two-click move protocol: the first click selects a
	// piece, the second tries to move it there.
	Click(pos types.Position) (types.MoveOutcome, error)

	// Commit ends the human's turn and lets the computer reply.
	Commit() error

	// IsMyTurn returns true if it's the human player's turn.
	IsMyTurn() bool

	// CanCommit returns true once the human has moved this turn.
	CanCommit() bool

	// OnMove registers a callback fired after every change to the game.
	OnMove(func(boardState *types.BoardState))

	// Undo undoes the last snapshot (one ply). Call twice to undo a player+computer move pair.
	Undo() error

	// Reset starts a new game.
	Reset()

	// OnGameEnd registers a callback for when a player has no pieces left.
	OnGameEnd(func(winner types.Player))

	// Close releases the engine.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Ranking advisor.Ranking // candidate ordering used by the computer
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Ranking: advisor.RankPairwise,
	}
}
