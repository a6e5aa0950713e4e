// Package game runs the simulation loop: it polls input, advances the
// entities by the measured time delta and hands each frame to the render
// pipeline.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/render"
)

// Loop orchestrates one game from terminal setup to teardown.
type Loop struct {
	cfg    config.GameConfig
	term   Terminal
	audio  Audio
	logger *log.Logger
	now    func() time.Time
	sleep  func(time.Duration)
	keys   *KeyMapper
}

// Option configures a Loop.
type Option func(*Loop)

// WithAudio sets the audio collaborator. The default is silent.
func WithAudio(a Audio) Option {
	return func(l *Loop) {
		if a != nil {
			l.audio = a
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithClock replaces the monotonic clock used to measure tick deltas.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) {
		l.now = now
	}
}

// WithSleep replaces the pause taken at the end of every tick.
func WithSleep(sleep func(time.Duration)) Option {
	return func(l *Loop) {
		l.sleep = sleep
	}
}

// New creates a game loop. The configuration must already be validated.
func New(cfg config.GameConfig, term Terminal, opts ...Option) *Loop {
	l := &Loop{
		cfg:    cfg,
		term:   term,
		audio:  audio.Nop{},
		logger: log.New(io.Discard),
		now:    time.Now,
		sleep:  time.Sleep,
		keys:   NewKeyMapper(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run plays one game until the player quits, wins or loses, or ctx is
// cancelled. The terminal is restored on every path, after all frames have
// been rendered. Errors come only from the terminal.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	if err := l.term.Enter(); err != nil {
		return Result{}, fmt.Errorf("game: cannot enter terminal mode: %w", err)
	}
	defer l.term.Leave()

	width, height := l.cfg.FrameSize()
	pipeline := render.Start(l.term, width, height, l.logger)
	defer func() {
		stats := pipeline.Close()
		l.logger.Debug("renderer stopped", "frames", stats.Frames, "writes", stats.Writes)
	}()

	player := invaders.NewPlayer(l.cfg)
	swarm := invaders.NewSwarm(l.cfg)
	hud := invaders.NewHUD(l.cfg.Field.Height, player, swarm)
	drawables := []core.Drawable{player, swarm, hud}

	l.audio.Play(audio.Startup)
	l.logger.Info("game started", "invaders", swarm.Total(), "interval", swarm.Interval())

	start := l.now()
	last := start
	ticks := 0
	result := func(o Outcome) Result {
		board := core.NewFrame(width, height)
		core.DrawAll(&board, drawables...)
		return Result{
			Outcome: o,
			Score:   player.Score(),
			Killed:  player.Kills(),
			Ticks:   ticks,
			Elapsed: l.now().Sub(start),
			Board:   board,
		}
	}

	for {
		now := l.now()
		delta := now.Sub(last)
		last = now
		if delta < 0 {
			delta = 0
		}

		if ctx.Err() != nil {
			l.logger.Info("game cancelled", "reason", ctx.Err())
			return result(OutcomeQuit), nil
		}

		quit, err := l.handleInput(player)
		if errors.Is(err, io.EOF) {
			l.logger.Info("input closed", "score", player.Score())
			return result(OutcomeQuit), nil
		}
		if err != nil {
			return result(OutcomeQuit), err
		}
		if quit {
			l.logger.Info("game quit by player", "score", player.Score())
			return result(OutcomeQuit), nil
		}

		player.Update(delta)
		if swarm.Update(delta) {
			l.audio.Play(audio.Move)
		}
		if player.DetectHits(swarm) {
			l.audio.Play(audio.Explode)
		}
		hud.Update(delta)

		frame := core.NewFrame(width, height)
		core.DrawAll(&frame, drawables...)
		// A closed pipeline only means nothing will be drawn; the loop ends on its own.
		_ = pipeline.Send(frame)
		ticks++

		if swarm.AllKilled() {
			l.audio.Play(audio.Win)
			l.logger.Info("swarm destroyed", "score", player.Score(), "ticks", ticks)
			return result(OutcomeWon), nil
		}
		if swarm.ReachedBottom() {
			l.audio.Play(audio.Lose)
			l.logger.Info("swarm landed", "score", player.Score(), "ticks", ticks)
			return result(OutcomeLost), nil
		}

		l.sleep(l.cfg.Loop.Sleep)
	}
}

// handleInput applies every key press pending right now.
// Returns true if the player asked to quit. End of input is reported as an
// error wrapping io.EOF.
func (l *Loop) handleInput(player *invaders.Player) (bool, error) {
	for l.term.Ready() {
		key, err := l.term.Read()
		if err != nil {
			return false, fmt.Errorf("game: read input: %w", err)
		}

		switch l.keys.MapKey(key) {
		case core.ActionLeft:
			player.MoveLeft()
		case core.ActionRight:
			player.MoveRight()
		case core.ActionShoot:
			if player.Shoot() {
				l.audio.Play(audio.Shoot)
			}
		case core.ActionQuit:
			return true, nil
		}
	}
	return false, nil
}
