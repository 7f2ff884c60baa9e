package checkers

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"checkers-local/obslog"
	"checkers-local/types"
)

// Human and Computer are the fixed seats of this game.
const (
	Human    = types.Player1
	Computer = types.Player2
)

// GameState wraps the live board with turn, piece counts, undo history and the
// bookkeeping the click-driven UI needs. It is not safe for concurrent use.
type GameState struct {
	id       string
	board    Board
	turn     types.Turn
	pieces   [3]int
	history  []snapshot // top of stack is the last element
	lastMove *types.Move
	moveNum  int

	// Jumping is set while the human is in a jump sequence; Jumper is the square of the
	// piece that must continue it.
	Jumping bool
	Jumper  types.Position
	// MovedOne is set once the human made a simple move this turn.
	MovedOne bool

	selection []types.Position
	observers []func(*GameState)
	log       *zap.Logger
}

// Option configures a GameState.
type Option func(*GameState)

// WithLogger sets the logger used for game events.
func WithLogger(l *zap.Logger) Option {
	return func(g *GameState) { g.log = l }
}

// WithBoard starts the game from the given board instead of the initial layout.
func WithBoard(b Board) Option {
	return func(g *GameState) { g.installBoard(b) }
}

// New creates a game on the initial layout with the human to move.
func New(opts ...Option) *GameState {
	g := &GameState{
		id:  uuid.NewString(),
		log: obslog.L(),
	}
	g.installBoard(NewBoard())
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game id, renewed on every Reset.
func (g *GameState) ID() string { return g.id }

// Board returns a copy of the current board.
func (g *GameState) Board() Board { return g.board }

// Get returns the piece at pos; off-board positions are empty.
func (g *GameState) Get(pos types.Position) (types.Piece, bool) { return g.board.Get(pos) }

// IsOccupied reports whether pos holds a piece.
func (g *GameState) IsOccupied(pos types.Position) bool { return g.board.IsOccupied(pos) }

// P1Pieces returns the number of pieces Player 1 has left.
func (g *GameState) P1Pieces() int { return g.pieces[types.Player1] }

// P2Pieces returns the number of pieces Player 2 has left.
func (g *GameState) P2Pieces() int { return g.pieces[types.Player2] }

// IsHumanTurn reports whether the human is to move.
func (g *GameState) IsHumanTurn() bool { return g.turn == types.HumanTurn }

// Turn returns whose move it is.
func (g *GameState) Turn() types.Turn { return g.turn }

// NextMove flips the turn.
func (g *GameState) NextMove() {
	if g.turn == types.HumanTurn {
		g.turn = types.ComputerTurn
	} else {
		g.turn = types.HumanTurn
	}
}

// LastMove returns the move that produced the current board, if known.
func (g *GameState) LastMove() (types.Move, bool) {
	if g.lastMove == nil {
		return types.Move{}, false
	}
	return *g.lastMove, true
}

// HistoryLen returns the number of snapshots available to Undo.
func (g *GameState) HistoryLen() int { return len(g.history) }

// HasWon returns Player2 when Player 1 has no pieces left, Player1 when Player 2 has
// none, and NoPlayer otherwise.
func (g *GameState) HasWon() types.Player {
	if g.pieces[types.Player1] == 0 {
		return types.Player2
	}
	if g.pieces[types.Player2] == 0 {
		return types.Player1
	}
	return types.NoPlayer
}

// OnChange registers an observer called after every notifying mutation.
// Observers re-query the state; no diff is passed.
func (g *GameState) OnChange(fn func(*GameState)) {
	g.observers = append(g.observers, fn)
}

// Update notifies observers without mutating anything.
func (g *GameState) Update() {
	for _, fn := range g.observers {
		fn(g)
	}
}

// SetBoard installs b as the current board, recomputes piece counts and notifies.
func (g *GameState) SetBoard(b Board) {
	g.installBoard(b)
	g.Update()
}

func (g *GameState) installBoard(b Board) {
	g.board = b
	n := b.Count()
	g.pieces[types.Player1] = n[types.Player1]
	g.pieces[types.Player2] = n[types.Player2]
}

// Reset reinitializes the board, counters, flags and history and starts a new game id.
func (g *GameState) Reset() {
	g.id = uuid.NewString()
	g.turn = types.HumanTurn
	g.history = nil
	g.lastMove = nil
	g.moveNum = 0
	g.Jumping = false
	g.Jumper = types.Position{}
	g.MovedOne = false
	g.selection = nil
	g.installBoard(NewBoard())
	g.log.Info("game_reset", zap.String("game_id", g.id))
	g.Update()
}

// Snapshot renders the observer view of the game.
func (g *GameState) Snapshot() *types.BoardState {
	st := &types.BoardState{
		GameID:     g.id,
		MoveNumber: g.moveNum,
		Turn:       g.turn,
		Phase:      types.PhasePlaying,
		Board:      g.board.Codes(),
		P1Pieces:   g.P1Pieces(),
		P2Pieces:   g.P2Pieces(),
		Winner:     g.HasWon(),
	}
	if st.Winner != types.NoPlayer {
		st.Phase = types.PhaseFinished
	}
	if sel, ok := g.Selection(); ok {
		st.Selected = &sel
	}
	if g.Jumping {
		j := g.Jumper
		st.Jumper = &j
	}
	if g.lastMove != nil {
		m := *g.lastMove
		st.LastMove = &m
	}
	return st
}

// Clone copies the configuration: board, turn, counts, selection and last move.
// History and observers are not copied.
func (g *GameState) Clone() *GameState {
	c := &GameState{
		id:      g.id,
		board:   g.board.Clone(),
		turn:    g.turn,
		pieces:  g.pieces,
		moveNum: g.moveNum,
		log:     g.log,
	}
	c.selection = append([]types.Position(nil), g.selection...)
	if g.lastMove != nil {
		m := *g.lastMove
		c.lastMove = &m
	}
	return c
}
