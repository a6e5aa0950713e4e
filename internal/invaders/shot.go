package invaders

import "time"

// Shot is a projectile fired by the player, climbing one row per step.
type Shot struct {
	Col int
	Row int

	step    time.Duration
	elapsed time.Duration
}

func newShot(col, row int, step time.Duration) *Shot {
	return &Shot{Col: col, Row: row, step: step}
}

// update advances the shot by at most one row, so a large delta can never
// carry it past an invader without a collision check in between.
func (s *Shot) update(delta time.Duration) {
	s.elapsed += delta
	if s.elapsed < s.step {
		return
	}
	s.elapsed -= s.step
	if s.elapsed > s.step {
		s.elapsed = s.step
	}
	s.Row--
}

// offField reports whether the shot has left the top of the field.
func (s *Shot) offField() bool {
	return s.Row < 0
}

// Blast marks the cell where a shot hit an invader for a short time.
type Blast struct {
	Col int
	Row int

	remaining time.Duration
}

func (b *Blast) update(delta time.Duration) {
	b.remaining -= delta
}

func (b *Blast) done() bool {
	return b.remaining <= 0
}
