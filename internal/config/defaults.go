package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the standard 2048 rules.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Size:    4,
			WinTile: 2048,
		},
		Spawn: SpawnConfig{
			FourChance: 0.1,
		},
		History: HistoryConfig{
			Limit: 10,
		},
		UI: UIConfig{
			NoColor: false,
		},
	}
}
