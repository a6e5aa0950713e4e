package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/game"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
	"github.com/vovakirdan/tui-invaders/internal/terminal"
)

var (
	flagMute bool
	flagName string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal.

Controls:
  Left/h/a      - Move left
  Right/l/d     - Move right
  Space/Enter   - Shoot
  Esc/q/Ctrl+C  - Quit

Difficulty options:
  easy   - Slower swarm, three shots in flight
  normal - Default configuration
  hard   - Faster swarm, a single shot in flight
  fixed  - Swarm never speeds up

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --mute --name ace
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name for the scoreboard (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) {
	// play returns only after its deferred closes have run.
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("invaders play needs an interactive terminal")
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The frame is drawn at the top-left corner and must fit entirely.
	frameW, frameH := cfg.FrameSize()
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && (w < frameW || h < frameH) {
		return fmt.Errorf("terminal is %dx%d, the game needs at least %dx%d", w, h, frameW, frameH)
	}

	logger, logCloser, err := newFileLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	var sound game.Audio = audio.Nop{}
	if !flagMute {
		speaker := audio.NewSpeaker(logger)
		if initErr := speaker.Initialize(); initErr != nil {
			logger.Warn("audio disabled", "error", initErr)
		} else {
			defer speaker.Close()
			sound = speaker
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	screen, err := terminal.New()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	summary, err := playGame(ctx, cfg, screen, sound, store, logger)
	if err != nil {
		return err
	}
	fmt.Println(summary)
	return nil
}

// playGame runs one game on screen, records it and returns the summary to
// print once the terminal has been restored.
func playGame(ctx context.Context, cfg config.GameConfig, screen game.Terminal, sound game.Audio, store *storage.Store, logger *log.Logger) (string, error) {
	loop := game.New(cfg, screen, game.WithAudio(sound), game.WithLogger(logger))
	res, err := loop.Run(ctx)
	if err != nil {
		logger.Error("game failed", "error", err)
		return "", fmt.Errorf("running game: %w", err)
	}

	best := tui.RecordResult(store, playerName(), res, logger)
	return tui.RenderSummary(res, best), nil
}

func playerName() string {
	if flagName != "" {
		return flagName
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "player"
}
