package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"checkers-local/config"
	"checkers-local/obslog"
)

// ColorConfigUI lets the user pick the square colors with a live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	selectedDark  int
	selectedLight int
	editingLight  bool
}

type paletteEntry struct {
	code int
	name string
}

// Playing square colors.
var darkColors = []paletteEntry{
	{238, "Charcoal"},
	{236, "Dark Gray"},
	{240, "Gray"},
	{22, "Dark Green"},
	{23, "Teal"},
	{17, "Navy Blue"},
	{54, "Purple"},
	{52, "Dark Maroon"},
	{94, "Saddle Brown"},
	{58, "Olive"},
	{16, "True Black"},
}

// Light square colors.
var lightColors = []paletteEntry{
	{124, "Red"},
	{160, "Bright Red"},
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{222, "Gold"},
	{180, "Tan"},
	{179, "Light Brown"},
	{252, "Light Gray"},
	{188, "Light Beige"},
	{223, "Peach"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:           cfg,
		onDone:        onDone,
		selectedDark:  cfg.Theme.Colors.DarkSquare,
		selectedLight: cfg.Theme.Colors.LightSquare,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		entries := cc.entries()
		if index >= 0 && index < len(entries) {
			if cc.editingLight {
				cc.selectedLight = entries[index].code
			} else {
				cc.selectedDark = entries[index].code
			}
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(cc.entries()) {
			return
		}
		if cc.editingLight {
			cc.cfg.Theme.Colors.LightSquare = cc.selectedLight
			cc.save()
			cc.editingLight = false
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.DarkSquare = cc.selectedDark
		cc.save()
		onDone()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) save() {
	if err := cc.cfg.Save(); err != nil {
		obslog.L().Warn("config_save_failed", zap.Error(err))
	}
}

func (cc *ColorConfigUI) entries() []paletteEntry {
	if cc.editingLight {
		return lightColors
	}
	return darkColors
}

// populateColorList fills the list with the colors for the square kind being edited.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedDark
	cc.colorList.SetTitle(" Playing Squares (Tab: light) ")
	if cc.editingLight {
		current = cc.selectedLight
		cc.colorList.SetTitle(" Light Squares (Tab: playing) ")
	}
	for i, c := range cc.entries() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.entries() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	dark := tcell.PaletteColor(cc.selectedDark)
	light := tcell.PaletteColor(cc.selectedLight)
	p1 := tcell.PaletteColor(cc.cfg.Theme.Colors.Player1)
	p2 := tcell.PaletteColor(cc.cfg.Theme.Colors.Player2)

	startX := x + 2
	startY := y + 1
	size := 6

	if width < 24 || height < 10 {
		return x, y, width, height
	}

	man := firstRune(cc.cfg.Theme.Symbols.Man)
	king := firstRune(cc.cfg.Theme.Symbols.King)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			bg := light
			if (row+col)%2 == 1 {
				bg = dark
			}
			style := tcell.StyleDefault.Background(bg)
			symbol := ' '
			if (row+col)%2 == 1 {
				switch {
				case row < 2:
					style = style.Foreground(p2)
					symbol = man
				case row >= size-2:
					style = style.Foreground(p1)
					symbol = man
				case row == 2 && col == 3:
					style = style.Foreground(p1)
					symbol = king
				}
			}
			drawCell(screen, style, symbol, row, col, startX, startY)
		}
	}

	info := fmt.Sprintf("Playing: %d  Light: %d", cc.selectedDark, cc.selectedLight)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between playing square and light square editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLight = !cc.editingLight
	cc.populateColorList()
}
