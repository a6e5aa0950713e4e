// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains all tunable parameters of a game session.
type GameConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Player PlayerConfig `yaml:"player"`
	Swarm  SwarmConfig  `yaml:"swarm"`
	Loop   LoopConfig   `yaml:"loop"`
	Glyphs GlyphConfig  `yaml:"glyphs"`
}

// FieldConfig defines the size of the play field in cells.
// The player moves along the last row; the HUD sits one row below the field.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player ship and its shots.
type PlayerConfig struct {
	Cooldown         time.Duration `yaml:"cooldown"`  // Minimum time between two shots
	MaxShots         int           `yaml:"max_shots"` // Live shots cap, 0 = unlimited
	ShotStep         time.Duration `yaml:"shot_step"` // Time for a shot to climb one row
	BlastDuration    time.Duration `yaml:"blast_duration"`
	PointsPerInvader int           `yaml:"points_per_invader"`
}

// SwarmConfig defines the invader formation and its pacing.
type SwarmConfig struct {
	Rows         int           `yaml:"rows"`
	Cols         int           `yaml:"cols"`
	Spacing      int           `yaml:"spacing"`       // Distance between neighbours in cells
	TopMargin    int           `yaml:"top_margin"`    // Row of the first formation line
	BaseInterval time.Duration `yaml:"base_interval"` // Step interval with a full swarm
	MinInterval  time.Duration `yaml:"min_interval"`  // Step interval with one invader left
}

// LoopConfig defines game loop timing.
type LoopConfig struct {
	Sleep time.Duration `yaml:"sleep"` // Pause at the end of each tick
}

// GlyphConfig defines the characters used to draw entities.
type GlyphConfig struct {
	Player   string `yaml:"player"`
	Shot     string `yaml:"shot"`
	Blast    string `yaml:"blast"`
	InvaderA string `yaml:"invader_a"`
	InvaderB string `yaml:"invader_b"`
}

// Glyph returns the first rune of s, or fallback when s is empty.
func Glyph(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// FrameSize returns the dimensions of a rendered frame: the field plus the HUD row.
func (c GameConfig) FrameSize() (width, height int) {
	return c.Field.Width, c.Field.Height + 1
}

// FormationWidth returns the number of columns covered by the swarm at start.
func (c SwarmConfig) FormationWidth() int {
	if c.Cols <= 0 {
		return 0
	}
	return (c.Cols-1)*c.Spacing + 1
}

// FormationBottom returns the row of the lowest formation line at start.
func (c SwarmConfig) FormationBottom() int {
	return c.TopMargin + (c.Rows-1)*c.Spacing
}

// Validate checks that the configuration describes a playable game.
func (c GameConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 1 {
		errs = append(errs, fmt.Errorf("field must be at least 1x2, got %dx%d", c.Field.Width, c.Field.Height))
	}
	if c.Player.Cooldown <= 0 {
		errs = append(errs, errors.New("player.cooldown must be positive"))
	}
	if c.Player.ShotStep <= 0 {
		errs = append(errs, errors.New("player.shot_step must be positive"))
	}
	if c.Swarm.Rows <= 0 || c.Swarm.Cols <= 0 {
		errs = append(errs, fmt.Errorf("swarm must have at least one row and column, got %dx%d", c.Swarm.Rows, c.Swarm.Cols))
	}
	if c.Swarm.Spacing <= 0 {
		errs = append(errs, errors.New("swarm.spacing must be positive"))
	}
	if c.Swarm.MinInterval <= 0 {
		errs = append(errs, errors.New("swarm.min_interval must be positive"))
	}
	if c.Swarm.BaseInterval < c.Swarm.MinInterval {
		errs = append(errs, errors.New("swarm.base_interval must not be below swarm.min_interval"))
	}
	if c.Swarm.FormationWidth() > c.Field.Width {
		errs = append(errs, fmt.Errorf("swarm is %d cells wide but the field is %d", c.Swarm.FormationWidth(), c.Field.Width))
	}
	if c.Swarm.TopMargin < 0 || c.Swarm.FormationBottom() >= c.Field.Height-1 {
		errs = append(errs, errors.New("swarm must start above the player row"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
