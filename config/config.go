package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"checkers-local/engine/advisor"
	"checkers-local/obslog"
)

var (
	cfgFile = "checkers-local/config.yaml"
	logFile = "checkers-local/checkers.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	LightSquare   int `yaml:"light_square"`
	DarkSquare    int `yaml:"dark_square"`
	Player1       int `yaml:"player1"`
	Player2       int `yaml:"player2"`
	CursorBG      int `yaml:"cursor_bg"`
	SelectedBG    int `yaml:"selected_bg"`
	LastMovedBG   int `yaml:"last_moved_bg"`
	CoordinatesFG int `yaml:"coordinates"`
}

type ConfigSymbols struct {
	Man    string `yaml:"man"`
	King   string `yaml:"king"`
	Cursor string `yaml:"cursor"`
}

type Theme struct {
	DrawCursorBackground   bool          `yaml:"draw_cursor_bg"`
	DrawLastMoveBackground bool          `yaml:"draw_last_move_bg"`
	ShowSquareNumbers      bool          `yaml:"show_square_numbers"`
	Colors                 ConfigColors  `yaml:"colors"`
	Symbols                ConfigSymbols `yaml:"symbols"`
}

// AdvisorConfig holds computer player settings.
type AdvisorConfig struct {
	Ranking string `yaml:"ranking"`
}

// LogConfig holds logger settings; see obslog.Options.
type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	File    string `yaml:"file"`
	Console bool   `yaml:"console"`
}

type Config struct {
	Theme   Theme         `yaml:"theme"`
	Advisor AdvisorConfig `yaml:"advisor"`
	Log     LogConfig     `yaml:"log"`
}

// InitConfig loads the user config file over the defaults, if one exists.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	if config.Log.File == "" {
		if path, err := xdg.StateFile(logFile); err == nil {
			config.Log.File = path
		}
	}
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load reads a config file at an explicit path over the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, s := range []string{c.Theme.Symbols.Man, c.Theme.Symbols.King, c.Theme.Symbols.Cursor} {
		r := []rune(s)
		if len(r) != 1 {
			return &InvalidConfig{fmt.Sprintf("symbol %q must be a single character", s)}
		}
		if r[0] < 32 || (r[0] >= 127 && r[0] <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	colors := c.Theme.Colors
	for _, v := range []int{colors.LightSquare, colors.DarkSquare, colors.Player1, colors.Player2,
		colors.CursorBG, colors.SelectedBG, colors.LastMovedBG, colors.CoordinatesFG} {
		if v < 0 || v > 255 {
			return &InvalidConfig{fmt.Sprintf("palette color %d is outside 0-255", v)}
		}
	}
	if _, err := advisor.ParseRanking(c.Advisor.Ranking); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// LogOptions returns the logger settings with CHECKERS_LOG_* overrides applied.
func (c *Config) LogOptions() obslog.Options {
	return obslog.OptionsFromEnv(obslog.Options{
		Level:   c.Log.Level,
		Format:  c.Log.Format,
		File:    c.Log.File,
		Console: c.Log.Console,
	})
}

// Save writes the config to the user config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	data, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, a); err != nil {
		return fmt.Errorf("parse config %s: %w", filePath, err)
	}
	return nil
}
