package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/tui"
)

var (
	flagConfig  string
	flagSize    int
	flagWinTile int
	flagSpawn4  float64
	flagHistory int
	flagNoColor bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game of 2048.

Controls:
  W/A/S/D, Arrows - Slide tiles
  U/Z             - Undo last move
  R               - Restart
  ?               - Toggle help
  Q/Esc           - Quit

Flags override values from the config file.

Examples:
  tui2048 play
  tui2048 play --size 5
  tui2048 play --win-tile 4096
  tui2048 play --seed 42 --spawn4 0
  tui2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the game flags. The root command plays too, so
// it shares the same flag set.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().IntVar(&flagSize, "size", 0, "Board size N for an NxN grid (0 = from config)")
	cmd.Flags().IntVar(&flagWinTile, "win-tile", 0, "Tile value that wins the game (0 = from config)")
	cmd.Flags().Float64Var(&flagSpawn4, "spawn4", -1, "Probability a spawned tile is a 4 (-1 = from config)")
	cmd.Flags().IntVar(&flagHistory, "history", 0, "Max undo snapshots kept (0 = from config)")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable the tile color ramp")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		log.Fatal("could not load config", "err", err)
	}

	// Flags override the config file.
	if flagSize > 0 {
		cfg.Board.Size = flagSize
	}
	if flagWinTile > 0 {
		cfg.Board.WinTile = flagWinTile
	}
	if flagSpawn4 >= 0 {
		cfg.Spawn.FourChance = flagSpawn4
	}
	if flagHistory > 0 {
		cfg.History.Limit = flagHistory
	}
	if flagNoColor {
		cfg.UI.NoColor = true
	}
	cfg.Normalize()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	eng := engine.New(engine.Options{
		Size:         cfg.Board.Size,
		WinTile:      cfg.Board.WinTile,
		Spawn4Prob:   cfg.Spawn.FourChance,
		HistoryLimit: cfg.History.Limit,
	}, rng)

	// A minimum terminal size keeps the board box drawing intact.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW := cfg.Board.Size * 8
		needH := cfg.Board.Size*3 + 8
		if w < needW || h < needH {
			log.Warn("terminal may be too small for the board",
				"width", w, "height", h, "need_width", needW, "need_height", needH)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, playing without high scores", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(eng, store, !cfg.UI.NoColor); err != nil {
		log.Fatal("could not run game", "err", err)
	}
}
