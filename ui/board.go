// Package ui provides the terminal board, side panel and menus for checkers-local.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"checkers-local/config"
	"checkers-local/engine"
	"checkers-local/engine/notation"
	"checkers-local/types"
)

// Palette slots used by the board drawing code.
const (
	styleLight = iota
	styleDark
	stylePlayer1
	stylePlayer2
	styleCursor
	styleSelected
	styleLastMove
	styleCoords
)

type CheckersBoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	finished   bool
	selRow     int
	selCol     int
	message    string
	app        *tview.Application
	eng        engine.GameEngine
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
	onGameEnd  func(winner types.Player)
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *CheckersBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *CheckersBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// Cursor returns the square under the keyboard cursor.
func (g *CheckersBoardUI) Cursor() types.Position {
	return types.Pos(g.selRow, g.selCol)
}

func (g *CheckersBoardUI) MoveCursor(dRow, dCol int) {
	next := types.Pos(g.selRow+dRow, g.selCol+dCol)
	if !next.OnBoard() {
		return
	}
	g.selRow, g.selCol = next.Row, next.Col
}

// OnGameEnd sets the function called once a player has no pieces left.
func (g *CheckersBoardUI) OnGameEnd(fn func(winner types.Player)) {
	g.onGameEnd = fn
}

func NewCheckersBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *CheckersBoardUI {
	board := &CheckersBoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		app:        app,
		selRow:     5,
		selCol:     0,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		st := board.BoardState
		if st == nil {
			return x, y, 1, 1
		}
		// 3 characters per cell for a roughly square appearance
		for r := 0; r < types.Rows; r++ {
			for c := 0; c < types.Cols; c++ {
				pos := types.Pos(r, c)
				bg := board.styles[styleLight]
				if pos.IsDark() {
					bg = board.styles[styleDark]
				}
				if st.LastMove != nil && board.cfg.Theme.DrawLastMoveBackground &&
					(st.LastMove.From == pos || st.LastMove.To == pos) {
					bg = board.styles[styleLastMove]
				}
				if st.Selected != nil && *st.Selected == pos {
					bg = board.styles[styleSelected]
				}
				isCursor := r == board.selRow && c == board.selCol
				if isCursor && board.cfg.Theme.DrawCursorBackground {
					bg = board.styles[styleCursor]
				}

				fg := board.styles[styleCoords]
				symbol := ' '
				switch code := st.At(pos); code {
				case 1, 3:
					fg = board.styles[stylePlayer1]
				case 2, 4:
					fg = board.styles[stylePlayer2]
				}
				switch st.At(pos) {
				case 1, 2:
					symbol = firstRune(board.cfg.Theme.Symbols.Man)
				case 3, 4:
					symbol = firstRune(board.cfg.Theme.Symbols.King)
				default:
					if isCursor && !board.cfg.Theme.DrawCursorBackground {
						symbol = firstRune(board.cfg.Theme.Symbols.Cursor)
					}
				}
				drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), symbol, r, c, x+3, y)
				if board.cfg.Theme.ShowSquareNumbers && st.At(pos) == 0 {
					if sq, ok := notation.PosToSquare(pos); ok {
						drawSquareNumber(screen, tcell.StyleDefault.Background(bg).Foreground(board.styles[styleCoords]), sq, r, c, x+3, y)
					}
				}
			}
		}
		drawCoordinates(screen, x, y, board)
		return x, y, types.Cols*3 + 3, types.Rows + 1
	})
	return board
}

// ConnectEngine connects the board to a game engine.
func (g *CheckersBoardUI) ConnectEngine(e engine.GameEngine) error {
	g.finished = false
	g.eng = e
	g.message = ""

	if err := e.Connect(); err != nil {
		return err
	}

	e.OnMove(func(boardState *types.BoardState) {
		g.BoardState = boardState
		g.finished = boardState.Finished()
		g.refreshHint()
		// Spawn goroutine to avoid deadlock when called from the event loop
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	e.OnGameEnd(func(winner types.Player) {
		g.finished = true
		g.refreshHint()
		if g.onGameEnd != nil {
			go func() {
				g.app.QueueUpdateDraw(func() { g.onGameEnd(winner) })
			}()
		}
	})

	g.BoardState = e.GetBoardState()
	g.refreshHint()
	return nil
}

// Click sends the square under the cursor to the engine.
func (g *CheckersBoardUI) Click() {
	if g.eng == nil || g.finished {
		return
	}
	_, err := g.eng.Click(g.Cursor())
	g.report(err)
}

// Commit ends the turn and lets the computer move.
func (g *CheckersBoardUI) Commit() {
	if g.eng == nil || g.finished {
		return
	}
	g.report(g.eng.Commit())
}

// Undo takes back the last move, together with the computer's reply if it has one.
func (g *CheckersBoardUI) Undo() {
	if g.eng == nil {
		return
	}
	g.report(g.eng.Undo())
}

// NewGame resets the engine to the initial layout.
func (g *CheckersBoardUI) NewGame() {
	if g.eng == nil {
		return
	}
	g.finished = false
	g.eng.Reset()
	g.report(nil)
}

// Close disconnects the engine.
func (g *CheckersBoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
}

func (g *CheckersBoardUI) report(err error) {
	switch {
	case err == nil:
		g.message = ""
	case errors.Is(err, engine.ErrIllegalMove):
		g.message = "That move is not allowed"
	default:
		g.message = err.Error()
	}
	g.refreshHint()
}

func (g *CheckersBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.LightSquare),   // styleLight
		tcell.PaletteColor(c.Theme.Colors.DarkSquare),    // styleDark
		tcell.PaletteColor(c.Theme.Colors.Player1),       // stylePlayer1
		tcell.PaletteColor(c.Theme.Colors.Player2),       // stylePlayer2
		tcell.PaletteColor(c.Theme.Colors.CursorBG),      // styleCursor
		tcell.PaletteColor(c.Theme.Colors.SelectedBG),    // styleSelected
		tcell.PaletteColor(c.Theme.Colors.LastMovedBG),   // styleLastMove
		tcell.PaletteColor(c.Theme.Colors.CoordinatesFG), // styleCoords
	}
	g.cfg = c
}

func (g *CheckersBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.finished {
		statusLine = "───────── Game Complete ─────────\n"
		result := "You Lost!"
		if g.BoardState != nil && g.BoardState.Winner == types.Player1 {
			result = "You Won!"
		}
		turnLine = fmt.Sprintf("  %s\n", result)
		controlsLine = "  r · new game   q · return to menu"
	} else {
		if g.message != "" {
			statusLine = fmt.Sprintf("  ! %s\n", g.message)
		}
		switch {
		case g.BoardState != nil && g.BoardState.Jumper != nil:
			turnLine = "  Continue jumping, or n to end your turn\n"
		case g.eng != nil && g.eng.CanCommit():
			turnLine = "  n · let the computer move\n"
		case g.BoardState != nil && g.BoardState.Selected != nil:
			turnLine = "  Select where to move this piece to\n"
		default:
			turnLine = "  Select the piece you want to move\n"
		}
		controlsLine = "  hjkl/↑↓←→ move  ⏎ select  n next  u undo  r new  f focus  q quit"
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// IsFinished returns true if the game is over.
func (g *CheckersBoardUI) IsFinished() bool {
	return g.finished
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// drawCell draws one square (3 characters wide) with the piece symbol in the middle.
func drawCell(s tcell.Screen, st tcell.Style, r rune, row, col, l, t int) {
	s.SetContent(l+col*3, t+row, ' ', nil, st)
	s.SetContent(l+col*3+1, t+row, r, nil, st)
	s.SetContent(l+col*3+2, t+row, ' ', nil, st)
}

func drawSquareNumber(s tcell.Screen, st tcell.Style, sq, row, col, l, t int) {
	text := fmt.Sprintf("%2d", sq)
	s.SetContent(l+col*3, t+row, rune(text[0]), nil, st)
	s.SetContent(l+col*3+1, t+row, rune(text[1]), nil, st)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *CheckersBoardUI) {
	style := tcell.StyleDefault.Foreground(ui.styles[styleCoords])
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursor])

	for c := 0; c < types.Cols; c++ {
		_style := style
		if c == ui.selCol {
			_style = highlight
		}
		s.SetContent(x+3+c*3+1, y+types.Rows, rune('a'+c), nil, _style)
	}
	for r := 0; r < types.Rows; r++ {
		_style := style
		if r == ui.selRow {
			_style = highlight
		}
		s.SetContent(x+1, y+r, rune('0'+r), nil, _style)
	}
	s.Show()
}
