package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"checkers-local/engine"
	"checkers-local/engine/advisor"
)

// Instructions is the how-to-play text shown on the setup screen.
const Instructions = `You play the red pieces at the bottom of the board and move first.
Men move one square diagonally forward; kings move diagonally either way.
Jump over an opposing piece onto the empty square behind it to capture it.
After a jump you may keep jumping with the same piece.
A man reaching the far row is crowned king.
Select a piece with Enter, then select the square to move it to.
Press n when you are done to let the computer move.
Take all of the computer's pieces to win.`

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	ranking advisor.Ranking
}

var rankingOptions = []struct {
	label   string
	ranking advisor.Ranking
}{
	{"Classic", advisor.RankPairwise},
	{"Ordered (most pieces, least danger)", advisor.RankStable},
}

// NewGameSetup creates a new game setup form. initial selects the ranking shown first.
func NewGameSetup(initial advisor.Ranking, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		ranking:  initial,
	}

	labels := make([]string, len(rankingOptions))
	selected := 0
	for i, o := range rankingOptions {
		labels[i] = o.label
		if o.ranking == initial {
			selected = i
		}
	}

	form := tview.NewForm()

	form.AddDropDown("Computer Style", labels, selected, func(option string, index int) {
		if index >= 0 && index < len(rankingOptions) {
			setup.ranking = rankingOptions[index].ranking
		}
	})

	form.AddButton("Start Game", func() {
		onStart(engine.GameConfig{Ranking: setup.ranking})
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)
	form.SetBorderColor(MenuColors.Border)

	instructions := tview.NewTextView().
		SetText(Instructions).
		SetWordWrap(true)
	instructions.SetBorder(true)
	instructions.SetTitle(" How to Play ")
	instructions.SetTextColor(MenuColors.Label)
	instructions.SetBorderColor(MenuColors.Border)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 7, 0, true).
		AddItem(instructions, 0, 1, false).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// Ranking returns the currently selected ranking.
func (s *GameSetupUI) Ranking() advisor.Ranking {
	return s.ranking
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
