package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"checkers-local/engine/notation"
	"checkers-local/record"
	"checkers-local/types"
)

// GameInfoPanel displays piece counts and the move record alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
	tree       *record.Tree
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:  tview.NewTextView(),
		tree: record.NewTree(""),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.tree.Follow(state)
	p.refresh()
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.boardState == nil {
		p.box.SetText("")
		return
	}
	st := p.boardState

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]You:[-:-:-] %d pieces\n", st.P1Pieces)
	text += fmt.Sprintf("[white]CPU:[-:-:-] %d pieces\n", st.P2Pieces)
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", st.MoveNumber)

	switch {
	case st.Finished() && st.Winner == types.Player1:
		text += "[green]You Won![-]\n"
	case st.Finished():
		text += "[red]You Lost![-]\n"
	case st.Turn == types.HumanTurn:
		text += "[white]Turn:[-:-:-] yours\n"
	default:
		text += "[white]Turn:[-:-:-] computer\n"
	}

	path := p.tree.PathFromRoot()
	if len(path) == 0 {
		p.box.SetText(text)
		return
	}

	text += "\n[white::b]Moves[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	if p.tree.NumVariations() > 1 {
		text += fmt.Sprintf("[dimgray]var %d/%d[-]\n", p.tree.VariationIndex()+1, p.tree.NumVariations())
	}

	maxVisible := 12
	start := 0
	if len(path) > maxVisible {
		start = len(path) - maxVisible
	}

	for i := start; i < len(path); i++ {
		e := path[i]

		who := "[white]" + notation.PlayerLabel(e.Player) + "[-]"
		if e.Player == types.Player2 {
			who = "[dimgray]" + notation.PlayerLabel(e.Player) + "[-]"
		}

		marker := " "
		if i == len(path)-1 {
			marker = "[white]>[-]"
		}

		text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, who, e.Text)
	}

	if start > 0 {
		text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *CheckersBoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *CheckersBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	if board.infoPanel == nil {
		board.infoPanel = NewGameInfoPanel()
	}
	if board.BoardState != nil {
		board.infoPanel.SetBoardState(board.BoardState)
	}

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(board.infoPanel.Box(), 26, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 5, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *CheckersBoardUI) {
	gameFrame.Clear()

	// 3 chars per cell + row labels, one extra row for column labels
	boardWidth := types.Cols*3 + 3
	boardHeight := types.Rows + 1

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
