// Package invaders implements the entities of the game: the player ship with
// its shots and the descending invader swarm.
package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player is the ship at the bottom of the field.
type Player struct {
	col      int
	row      int
	maxCol   int
	cfg      config.PlayerConfig
	glyphs   playerGlyphs
	cooldown time.Duration // Time since the last shot, capped at cfg.Cooldown

	shots  []*Shot
	blasts []*Blast
	score  int
	kills  int
}

type playerGlyphs struct {
	ship, shot, blast rune
}

// NewPlayer places a player in the middle of the bottom row.
func NewPlayer(cfg config.GameConfig) *Player {
	return &Player{
		col:      cfg.Field.Width / 2,
		row:      cfg.Field.Height - 1,
		maxCol:   cfg.Field.Width - 1,
		cfg:      cfg.Player,
		cooldown: cfg.Player.Cooldown, // First shot is available immediately
		glyphs: playerGlyphs{
			ship:  config.Glyph(cfg.Glyphs.Player, 'A'),
			shot:  config.Glyph(cfg.Glyphs.Shot, '|'),
			blast: config.Glyph(cfg.Glyphs.Blast, '*'),
		},
	}
}

// Col returns the player's column.
func (p *Player) Col() int {
	return p.col
}

// Row returns the player's row.
func (p *Player) Row() int {
	return p.row
}

// Score returns the points collected so far.
func (p *Player) Score() int {
	return p.score
}

// Kills returns the number of invaders destroyed so far.
func (p *Player) Kills() int {
	return p.kills
}

// Shots returns a snapshot of the shots in flight.
func (p *Player) Shots() []Shot {
	out := make([]Shot, len(p.shots))
	for i, s := range p.shots {
		out[i] = *s
	}
	return out
}

// Blasts returns the number of explosions still visible.
func (p *Player) Blasts() int {
	return len(p.blasts)
}

// MoveLeft moves the ship one column left. No-op at the left edge.
func (p *Player) MoveLeft() {
	p.col = core.Clamp(p.col-1, 0, p.maxCol)
}

// MoveRight moves the ship one column right. No-op at the right edge.
func (p *Player) MoveRight() {
	p.col = core.Clamp(p.col+1, 0, p.maxCol)
}

// Shoot fires a shot from just above the ship.
// Returns false without effect while the cooldown is running or the live
// shot cap is reached.
func (p *Player) Shoot() bool {
	if p.cooldown < p.cfg.Cooldown {
		return false
	}
	if p.cfg.MaxShots > 0 && len(p.shots) >= p.cfg.MaxShots {
		return false
	}

	p.shots = append(p.shots, newShot(p.col, p.row-1, p.cfg.ShotStep))
	p.cooldown = 0
	return true
}

// Update advances the cooldown, moves shots up and expires blasts.
func (p *Player) Update(delta time.Duration) {
	p.cooldown = min(p.cooldown+delta, p.cfg.Cooldown)

	kept := p.shots[:0]
	for _, s := range p.shots {
		s.update(delta)
		if s.offField() {
			continue
		}
		kept = append(kept, s)
	}
	clear(p.shots[len(kept):])
	p.shots = kept

	active := p.blasts[:0]
	for _, b := range p.blasts {
		b.update(delta)
		if b.done() {
			continue
		}
		active = append(active, b)
	}
	clear(p.blasts[len(active):])
	p.blasts = active
}

// DetectHits removes every shot that shares a cell with an invader, together
// with that invader. Returns true if at least one invader was destroyed.
func (p *Player) DetectHits(swarm *Swarm) bool {
	hit := false

	kept := p.shots[:0]
	for _, s := range p.shots {
		if !swarm.KillAt(s.Col, s.Row) {
			kept = append(kept, s)
			continue
		}
		hit = true
		p.kills++
		p.score += p.cfg.PointsPerInvader
		if p.cfg.BlastDuration > 0 {
			p.blasts = append(p.blasts, &Blast{Col: s.Col, Row: s.Row, remaining: p.cfg.BlastDuration})
		}
	}
	clear(p.shots[len(kept):])
	p.shots = kept

	return hit
}

// Draw paints the ship, its shots and any blasts.
func (p *Player) Draw(f *core.Frame) {
	f.SetColored(p.col, p.row, p.glyphs.ship, core.ColorBrightGreen)
	for _, s := range p.shots {
		f.SetColored(s.Col, s.Row, p.glyphs.shot, core.ColorBrightYellow)
	}
	for _, b := range p.blasts {
		f.SetColored(b.Col, b.Row, p.glyphs.blast, core.ColorOrange)
	}
}
