// invaders is a terminal space invaders game.
//
// Usage:
//
//	invaders play            - Play a game in this terminal
//	invaders scores          - Show high scores
//	invaders serve           - Start SSH server for remote play
//	invaders config          - Print the effective game configuration
//
// Global flags:
//
//	--config <path>     - Custom game config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--db <path>         - Set database path (default: ~/.invaders/scores.db)
//	--log-file <path>   - Log file for local play (default: ~/.invaders/invaders.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space invaders in your terminal",
	Long: `Defend the planet from a descending swarm of invaders, right in your terminal.

Available commands:
  play     - Play a game in this terminal
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective game configuration

Examples:
  invaders play
  invaders play --difficulty hard
  invaders scores
  invaders serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.invaders/invaders.log", "Log file for local play")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
