package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/tui"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the recorded high scores.

By default an interactive score table opens; --plain prints the top 10
to stdout instead.

Examples:
  tui2048 scores
  tui2048 scores --plain
  tui2048 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores to stdout instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Fatal("could not open scores database", "err", err)
	}
	defer store.Close()

	if flagClear {
		clearScores(store)
		return
	}

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		log.Fatal("could not show scoreboard", "err", err)
	}
}

// clearScores asks for confirmation, then wipes the score table.
func clearScores(store *storage.Store) {
	fmt.Print("Delete all recorded scores? [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		fmt.Println("Aborted.")
		return
	}

	if err := store.ClearScores(); err != nil {
		log.Fatal("could not clear scores", "err", err)
	}
	fmt.Println("All scores deleted.")
}

// printScores writes the top 10 as a plain text table.
func printScores(store *storage.Store) {
	scores, err := store.TopScores(10)
	if err != nil {
		log.Fatal("could not retrieve scores", "err", err)
	}

	fmt.Println("High Scores - 2048")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tui2048' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-3s  %s\n", "Rank", "Score", "Max Tile", "Board", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-3s  %s\n", "----", "-----", "--------", "-----", "---", "----")

	for i, entry := range scores {
		fmt.Println(scoreLine(i+1, entry))
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

// scoreLine formats one plain-table row. Column widths match the header,
// including the Board column for double-digit sizes like 16x16.
func scoreLine(rank int, entry storage.ScoreEntry) string {
	won := ""
	if entry.Won {
		won = "yes"
	}
	board := fmt.Sprintf("%dx%d", entry.BoardSize, entry.BoardSize)
	return fmt.Sprintf("  %-4d  %-10d  %-8d  %-5s  %-3s  %s",
		rank, entry.Score, entry.MaxTile, board,
		won, entry.CreatedAt.Format("2006-01-02 15:04"))
}
