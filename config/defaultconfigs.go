package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:   true,
		DrawLastMoveBackground: true,
		ShowSquareNumbers:      false,
		Colors: ConfigColors{
			LightSquare:   124,
			DarkSquare:    238,
			Player1:       196,
			Player2:       232,
			CursorBG:      4,
			SelectedBG:    2,
			LastMovedBG:   94,
			CoordinatesFG: 245,
		},
		Symbols: ConfigSymbols{
			Man:    "●",
			King:   "♛",
			Cursor: "·",
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Advisor: AdvisorConfig{
			Ranking: "pairwise",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "legacy",
		},
	}
}
