package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Board.Size != 4 {
		t.Errorf("Board.Size = %d, want 4", cfg.Board.Size)
	}
	if cfg.Board.WinTile != 2048 {
		t.Errorf("Board.WinTile = %d, want 2048", cfg.Board.WinTile)
	}
	if cfg.Spawn.FourChance != 0.1 {
		t.Errorf("Spawn.FourChance = %v, want 0.1", cfg.Spawn.FourChance)
	}
	if cfg.History.Limit != 10 {
		t.Errorf("History.Limit = %d, want 10", cfg.History.Limit)
	}
	if cfg.UI.NoColor {
		t.Error("UI.NoColor should default to false")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := []byte(`
board:
  size: 5
  win_tile: 4096
spawn:
  four_chance: 0.25
history:
  limit: 3
ui:
  no_color: true
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing fixture failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, want 5", cfg.Board.Size)
	}
	if cfg.Board.WinTile != 4096 {
		t.Errorf("Board.WinTile = %d, want 4096", cfg.Board.WinTile)
	}
	if cfg.Spawn.FourChance != 0.25 {
		t.Errorf("Spawn.FourChance = %v, want 0.25", cfg.Spawn.FourChance)
	}
	if cfg.History.Limit != 3 {
		t.Errorf("History.Limit = %d, want 3", cfg.History.Limit)
	}
	if !cfg.UI.NoColor {
		t.Error("UI.NoColor should be true")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [not a map"), 0o600); err != nil {
		t.Fatalf("writing fixture failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed yaml should fail")
	}
}

func TestNormalizeClampsBadValues(t *testing.T) {
	cfg := GameConfig{
		Board:   BoardConfig{Size: 1, WinTile: 4},
		Spawn:   SpawnConfig{FourChance: 1.5},
		History: HistoryConfig{Limit: -1},
	}
	cfg.Normalize()

	def := DefaultGameConfig()
	if cfg.Board.Size != def.Board.Size {
		t.Errorf("Size = %d, want default %d", cfg.Board.Size, def.Board.Size)
	}
	if cfg.Board.WinTile != def.Board.WinTile {
		t.Errorf("WinTile = %d, want default %d", cfg.Board.WinTile, def.Board.WinTile)
	}
	if cfg.Spawn.FourChance != def.Spawn.FourChance {
		t.Errorf("FourChance = %v, want default %v", cfg.Spawn.FourChance, def.Spawn.FourChance)
	}
	if cfg.History.Limit != def.History.Limit {
		t.Errorf("Limit = %d, want default %d", cfg.History.Limit, def.History.Limit)
	}
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	cfg := GameConfig{
		Board:   BoardConfig{Size: 6, WinTile: 8192},
		Spawn:   SpawnConfig{FourChance: 0.5},
		History: HistoryConfig{Limit: 50},
	}
	cfg.Normalize()

	if cfg.Board.Size != 6 || cfg.Board.WinTile != 8192 ||
		cfg.Spawn.FourChance != 0.5 || cfg.History.Limit != 50 {
		t.Errorf("Normalize() altered valid values: %+v", cfg)
	}
}
