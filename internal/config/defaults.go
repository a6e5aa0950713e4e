package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:  40,
			Height: 20,
		},
		Player: PlayerConfig{
			Cooldown:         250 * time.Millisecond,
			MaxShots:         2,
			ShotStep:         50 * time.Millisecond,
			BlastDuration:    250 * time.Millisecond,
			PointsPerInvader: 10,
		},
		Swarm: SwarmConfig{
			Rows:         4,
			Cols:         16,
			Spacing:      2,
			TopMargin:    2,
			BaseInterval: 2 * time.Second,
			MinInterval:  250 * time.Millisecond,
		},
		Loop: LoopConfig{
			Sleep: time.Millisecond,
		},
		Glyphs: GlyphConfig{
			Player:   "A",
			Shot:     "|",
			Blast:    "*",
			InvaderA: "x",
			InvaderB: "+",
		},
	}
}
