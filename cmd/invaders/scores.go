package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/game"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagPlain   bool
	flagLimit   int
	flagClear   bool
	flagPlayer  string
	flagOutcome string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high score table.

In a terminal the scoreboard is interactive: Tab switches between all games,
victories, defeats and abandoned games. With --plain, or when the output is
not a terminal, the top scores are printed as text. --player and --outcome
narrow the printed list and imply --plain.

Examples:
  invaders scores
  invaders scores --plain --limit 5
  invaders scores --outcome won
  invaders scores --player ace --outcome lost
  invaders scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show the most recent games of one player")
	scoresCmd.Flags().StringVar(&flagOutcome, "outcome", "", "Show only games that ended this way (won, lost, quit)")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagOutcome != "" {
		if _, ok := game.ParseOutcome(flagOutcome); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown outcome %q (want won, lost or quit)\n", flagOutcome)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores deleted.")
		return
	}

	fd := int(os.Stdout.Fd())
	filtered := flagPlayer != "" || flagOutcome != ""
	if !flagPlain && !filtered && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store)
}

// queryScores returns the best games for an outcome ("" for all), or the most
// recent games of player when one is given.
func queryScores(store *storage.Store, player, outcome string, limit int) ([]storage.ScoreEntry, error) {
	if player == "" {
		return store.TopScores(outcome, limit)
	}

	entries, err := store.PlayerScores(player, limit)
	if err != nil || outcome == "" {
		return entries, err
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.Outcome == outcome {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

func printScores(store *storage.Store) {
	scores, err := queryScores(store, flagPlayer, flagOutcome, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Kills", "Result", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "------", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %-7d  %-5d  %-6s  %s\n",
			i+1, e.Player, e.Score, e.Killed, e.Outcome, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Games: %d   Won: %d   Lost: %d\n", stats.HighScore, stats.Games, stats.Wins, stats.Losses)
	}
}
