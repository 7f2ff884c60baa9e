// Package types contains shared data structures for checkers-local.
package types

import "fmt"

const (
	// Rows and Cols are the dimensions of the board.
	Rows = 8
	Cols = 8
	// NumSquares is the number of positions on the board.
	NumSquares = Rows * Cols
)

// Player identifies the owner of a piece. Player1 is the human and moves toward row 0,
// Player2 is the computer and moves toward row 7.
type Player int8

const (
	NoPlayer Player = 0
	Player1  Player = 1
	Player2  Player = 2
)

// Opponent returns the other player (1->2, 2->1).
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoPlayer
}

// Forward returns the row delta of a single forward step for the player.
func (p Player) Forward() int {
	switch p {
	case Player1:
		return -1
	case Player2:
		return +1
	}
	return 0
}

// KingRow returns the row on which the player's men are crowned.
func (p Player) KingRow() int {
	if p == Player1 {
		return 0
	}
	return Rows - 1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "none"
}

// Position is a (row, column) pair. Coordinates outside [0,8) are representable
// so that neighbour arithmetic never has to be pre-validated.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// OnBoard reports whether both coordinates are in [0,8).
func (p Position) OnBoard() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// Index returns the flat board index of an on-board position.
func (p Position) Index() int {
	return p.Row*Cols + p.Col
}

// Offset returns the position shifted by dr rows and dc columns.
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// IsDark reports whether the position is one of the playing squares.
func (p Position) IsDark() bool {
	return (p.Row+p.Col)%2 == 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// PositionAt converts a flat index back into a position.
func PositionAt(index int) Position {
	return Position{Row: index / Cols, Col: index % Cols}
}

// Piece is a disc on the board. The zero value is "no piece".
type Piece struct {
	Owner Player `json:"owner"`
	King  bool   `json:"king"`
}

// NewPiece creates an uncrowned piece for the owner.
func NewPiece(owner Player) Piece {
	return Piece{Owner: owner}
}

// Empty reports whether this is the absent piece.
func (p Piece) Empty() bool {
	return p.Owner == NoPlayer
}

// Crowned returns a copy of the piece with the king flag set.
func (p Piece) Crowned() Piece {
	p.King = true
	return p
}

// Code returns the integer used in BoardState: 0 empty, 1/2 men, 3/4 kings.
func (p Piece) Code() int {
	if p.Empty() {
		return 0
	}
	if p.King {
		return int(p.Owner) + 2
	}
	return int(p.Owner)
}

// MoveOutcome is the result of a human move attempt.
type MoveOutcome int

const (
	OutcomeNone   MoveOutcome = 0
	OutcomeSimple MoveOutcome = 1
	OutcomeJump   MoveOutcome = 2
)

func (o MoveOutcome) String() string {
	switch o {
	case OutcomeSimple:
		return "simple"
	case OutcomeJump:
		return "jump"
	}
	return "none"
}

// Move is a completed relocation of one piece.
type Move struct {
	Player  Player      `json:"player"`
	From    Position    `json:"from"`
	To      Position    `json:"to"`
	Outcome MoveOutcome `json:"outcome"`
}

// Turn is whose move it is.
type Turn int

const (
	HumanTurn Turn = iota
	ComputerTurn
)

func (t Turn) String() string {
	if t == ComputerTurn {
		return "computer"
	}
	return "human"
}

// BoardState is a complete snapshot of a game for observers.
// Board is indexed as Board[row][col] using Piece.Code values.
type BoardState struct {
	GameID     string          `json:"game_id"`
	MoveNumber int             `json:"move_number"`
	Turn       Turn            `json:"turn"`
	Phase      string          `json:"phase"` // "playing", "finished"
	Board      [Rows][Cols]int `json:"board"`
	P1Pieces   int             `json:"p1_pieces"`
	P2Pieces   int             `json:"p2_pieces"`
	Winner     Player          `json:"winner"`
	Selected   *Position       `json:"selected,omitempty"`
	Jumper     *Position       `json:"jumper,omitempty"`
	LastMove   *Move           `json:"last_move,omitempty"`
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == PhaseFinished
}

// At returns the piece code at the position, 0 when off the board.
func (b *BoardState) At(p Position) int {
	if !p.OnBoard() {
		return 0
	}
	return b.Board[p.Row][p.Col]
}

const (
	PhasePlaying  = "playing"
	PhaseFinished = "finished"
)
