// checkers-local is a terminal application to play checkers against the computer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"checkers-local/config"
	"checkers-local/engine"
	"checkers-local/engine/advisor"
	"checkers-local/engine/local"
	"checkers-local/obslog"
	"checkers-local/types"
	"checkers-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagRanking    = flag.String("ranking", "", "Computer move ordering (pairwise or stable)")
	flagLogLevel   = flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.CheckersBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("checkers-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *flagRanking != "" {
		if _, err := advisor.ParseRanking(*flagRanking); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg.Advisor.Ranking = *flagRanking
	}
	logOpts := cfg.LogOptions()
	if *flagLogLevel != "" {
		logOpts.Level = *flagLogLevel
	}
	if err := obslog.Init(logOpts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := obslog.L()
	defer func() { _ = logger.Sync() }()
	logger.Info("startup", zap.String("version", Version), zap.String("ranking", cfg.Advisor.Ranking))

	quickStart := *flagQuickStart || *flagFocus || *flagRanking != ""

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ◆ checkers ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewCheckersBoard(app, cfg, gameHint)
	gameBoard.OnGameEnd(showResult)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveCursor(-1, 0)
		case tcell.KeyDown:
			gameBoard.MoveCursor(1, 0)
		case tcell.KeyLeft:
			gameBoard.MoveCursor(0, -1)
		case tcell.KeyRight:
			gameBoard.MoveCursor(0, 1)
		case tcell.KeyEnter:
			gameBoard.Click()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
				return nil
			case 'h':
				gameBoard.MoveCursor(0, -1)
			case 'j':
				gameBoard.MoveCursor(1, 0)
			case 'k':
				gameBoard.MoveCursor(-1, 0)
			case 'l':
				gameBoard.MoveCursor(0, 1)
			case ' ':
				gameBoard.Click()
			case 'n':
				gameBoard.Commit()
			case 'u':
				gameBoard.Undo()
			case 'r':
				gameBoard.NewGame()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(
		advisor.Ranking(cfg.Advisor.Ranking),
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			gameBoard.SetConfig(cfg)
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 80), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(engine.GameConfig{Ranking: advisor.Ranking(cfg.Advisor.Ranking)})
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		logger.Error("ui_exit", zap.Error(err))
		panic(err)
	}
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	eng := local.NewLocalEngine(gameCfg)
	if err := gameBoard.ConnectEngine(eng); err != nil {
		obslog.L().Error("game_start_failed", zap.Error(err))
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	rootPage.SwitchToPage("gameview")
}

// showResult shows the end-of-game dialog.
func showResult(winner types.Player) {
	text := "You Lost!"
	if winner == types.Player1 {
		text = "You Won!"
	}
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"New Game", "Quit"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("result")
			if buttonLabel == "New Game" {
				gameBoard.NewGame()
				app.SetFocus(gameBoard.Box)
				return
			}
			gameBoard.Close()
			app.Stop()
		})
	rootPage.AddPage("result", modal, true, true)
}
