// Package config provides YAML-based configuration loading for the game:
// board rules, spawn behavior, undo history, and UI options.
package config

// GameConfig contains all configuration for a game session.
type GameConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	History HistoryConfig `yaml:"history"`
	UI      UIConfig      `yaml:"ui"`
}

// BoardConfig defines the grid dimensions and win condition.
type BoardConfig struct {
	Size    int `yaml:"size"`     // board dimension N (N×N)
	WinTile int `yaml:"win_tile"` // tile value that wins the game
}

// SpawnConfig defines new-tile spawn behavior.
type SpawnConfig struct {
	FourChance float64 `yaml:"four_chance"` // probability a spawned tile is a 4
}

// HistoryConfig defines the undo buffer.
type HistoryConfig struct {
	Limit int `yaml:"limit"` // max undo snapshots kept
}

// UIConfig defines rendering options. These never affect the rules.
type UIConfig struct {
	NoColor bool `yaml:"no_color"` // disable the tile color ramp
}

// Normalize clamps out-of-range values back to defaults.
func (c *GameConfig) Normalize() {
	def := DefaultGameConfig()

	if c.Board.Size < 2 || c.Board.Size > 16 {
		c.Board.Size = def.Board.Size
	}
	if c.Board.WinTile < 8 {
		c.Board.WinTile = def.Board.WinTile
	}
	if c.Spawn.FourChance < 0 || c.Spawn.FourChance > 1 {
		c.Spawn.FourChance = def.Spawn.FourChance
	}
	if c.History.Limit <= 0 || c.History.Limit > 1000 {
		c.History.Limit = def.History.Limit
	}
}
