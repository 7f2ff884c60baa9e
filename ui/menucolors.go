package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette of the setup screen.
var MenuColors = struct {
	Border     tcell.Color
	Label      tcell.Color
	Hint       tcell.Color
	ButtonBG   tcell.Color
	ButtonText tcell.Color
}{
	Border:     tcell.PaletteColor(60),
	Label:      tcell.PaletteColor(250),
	Hint:       tcell.PaletteColor(245),
	ButtonBG:   tcell.PaletteColor(88), // dark red, matching the human's pieces
	ButtonText: tcell.PaletteColor(255),
}
