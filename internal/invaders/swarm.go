package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Direction is the horizontal heading of the swarm.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Invader is a single member of the swarm.
type Invader struct {
	Col int
	Row int
}

// Swarm is the formation of invaders moving in lockstep.
//
// Every interval the swarm steps one column in its current direction. When
// any member would leave the field the swarm instead reverses and drops one
// row. The interval shrinks as invaders are destroyed.
type Swarm struct {
	invaders  []Invader
	total     int
	direction Direction
	width     int
	playerRow int

	base     time.Duration
	min      time.Duration
	interval time.Duration
	elapsed  time.Duration
	descents int

	glyphA, glyphB rune
}

// NewSwarm builds the starting formation, centred horizontally.
func NewSwarm(cfg config.GameConfig) *Swarm {
	sc := cfg.Swarm
	left := (cfg.Field.Width - sc.FormationWidth()) / 2

	invaders := make([]Invader, 0, sc.Rows*sc.Cols)
	for r := 0; r < sc.Rows; r++ {
		for c := 0; c < sc.Cols; c++ {
			invaders = append(invaders, Invader{
				Col: left + c*sc.Spacing,
				Row: sc.TopMargin + r*sc.Spacing,
			})
		}
	}

	return &Swarm{
		invaders:  invaders,
		total:     len(invaders),
		direction: Right,
		width:     cfg.Field.Width,
		playerRow: cfg.Field.Height - 1,
		base:      sc.BaseInterval,
		min:       sc.MinInterval,
		interval:  config.SwarmInterval(sc.BaseInterval, sc.MinInterval, len(invaders), len(invaders)),
		glyphA:    config.Glyph(cfg.Glyphs.InvaderA, 'x'),
		glyphB:    config.Glyph(cfg.Glyphs.InvaderB, '+'),
	}
}

// Len returns the number of invaders still alive.
func (s *Swarm) Len() int {
	return len(s.invaders)
}

// Total returns the size of the starting formation.
func (s *Swarm) Total() int {
	return s.total
}

// Invaders returns a snapshot of the living invaders.
func (s *Swarm) Invaders() []Invader {
	out := make([]Invader, len(s.invaders))
	copy(out, s.invaders)
	return out
}

// Direction returns the current horizontal heading.
func (s *Swarm) Direction() Direction {
	return s.direction
}

// Interval returns the current time between two formation steps.
func (s *Swarm) Interval() time.Duration {
	return s.interval
}

// Descents returns how many rows the swarm has dropped.
func (s *Swarm) Descents() int {
	return s.descents
}

// Bounds returns the bounding box of the living invaders.
func (s *Swarm) Bounds() core.Rect {
	if len(s.invaders) == 0 {
		return core.Rect{}
	}
	minCol, maxCol := s.invaders[0].Col, s.invaders[0].Col
	minRow, maxRow := s.invaders[0].Row, s.invaders[0].Row
	for _, inv := range s.invaders[1:] {
		minCol = min(minCol, inv.Col)
		maxCol = max(maxCol, inv.Col)
		minRow = min(minRow, inv.Row)
		maxRow = max(maxRow, inv.Row)
	}
	return core.NewRect(minCol, minRow, maxCol-minCol+1, maxRow-minRow+1)
}

// Update accumulates delta and performs a formation step once the interval
// has elapsed. Returns true if the swarm moved this call.
func (s *Swarm) Update(delta time.Duration) bool {
	s.elapsed += delta
	if s.elapsed < s.interval {
		return false
	}
	s.elapsed = 0

	if len(s.invaders) == 0 {
		return false
	}

	bounds := s.Bounds()
	next := bounds.X + int(s.direction)
	if next < 0 || next+bounds.W > s.width {
		s.direction = -s.direction
		for i := range s.invaders {
			s.invaders[i].Row++
		}
		s.descents++
		return true
	}

	for i := range s.invaders {
		s.invaders[i].Col += int(s.direction)
	}
	return true
}

// KillAt destroys the invader at exactly (col, row), if any, and speeds up
// the survivors. Returns true if an invader was destroyed.
func (s *Swarm) KillAt(col, row int) bool {
	if !s.Bounds().Contains(col, row) {
		return false
	}
	for i, inv := range s.invaders {
		if inv.Col != col || inv.Row != row {
			continue
		}
		s.invaders = append(s.invaders[:i], s.invaders[i+1:]...)
		s.interval = config.SwarmInterval(s.base, s.min, len(s.invaders), s.total)
		return true
	}
	return false
}

// AllKilled reports whether the swarm has been wiped out.
func (s *Swarm) AllKilled() bool {
	return len(s.invaders) == 0
}

// ReachedBottom reports whether any invader has reached the player's row.
func (s *Swarm) ReachedBottom() bool {
	b := s.Bounds()
	return !b.Empty() && b.Bottom() > s.playerRow
}

// Draw paints the invaders, alternating their glyph halfway through each step.
func (s *Swarm) Draw(f *core.Frame) {
	glyph := s.glyphA
	if s.elapsed*2 >= s.interval {
		glyph = s.glyphB
	}
	for _, inv := range s.invaders {
		f.SetColored(inv.Col, inv.Row, glyph, core.ColorMagenta)
	}
}
