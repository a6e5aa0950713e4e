package invaders

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// TestIdleGameTerminates runs a 5x5 swarm with no input and checks that the
// game reaches a terminal condition in a bounded number of ticks.
func TestIdleGameTerminates(t *testing.T) {
	cfg := testConfig()
	cfg.Swarm.Rows = 5
	cfg.Swarm.Cols = 5
	cfg.Swarm.TopMargin = 1
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	p := NewPlayer(cfg)
	s := NewSwarm(cfg)
	hud := NewHUD(cfg.Field.Height, p, s)
	w, h := cfg.FrameSize()

	const delta = 100 * time.Millisecond
	const maxTicks = 100000

	ticks := 0
	for ; ticks < maxTicks; ticks++ {
		p.Update(delta)
		s.Update(delta)
		p.DetectHits(s)
		hud.Update(delta)

		f := core.NewFrame(w, h)
		core.DrawAll(&f, p, s, hud)

		if s.AllKilled() || s.ReachedBottom() {
			break
		}
	}

	if ticks == maxTicks {
		t.Fatalf("game did not terminate within %d ticks", maxTicks)
	}
	if !s.ReachedBottom() {
		t.Error("idle game should end with the swarm reaching the bottom")
	}
}

// TestSharpshooterWins keeps the ship under the lowest invader and fires as
// often as allowed until the swarm is gone or has landed.
func TestSharpshooterWins(t *testing.T) {
	cfg := testConfig()
	cfg.Swarm.Rows = 2
	cfg.Swarm.Cols = 3
	cfg.Player.MaxShots = 0

	p := NewPlayer(cfg)
	s := NewSwarm(cfg)
	const delta = 10 * time.Millisecond

	for tick := 0; tick < 200000; tick++ {
		if s.AllKilled() || s.ReachedBottom() {
			break
		}
		target := lowestInvader(s)
		switch {
		case p.Col() < target.Col:
			p.MoveRight()
		case p.Col() > target.Col:
			p.MoveLeft()
		default:
			p.Shoot()
		}

		p.Update(delta)
		s.Update(delta)
		p.DetectHits(s)
	}

	if !s.AllKilled() {
		t.Fatalf("expected the swarm to be destroyed, %d left", s.Len())
	}
	if p.Kills() != 6 {
		t.Errorf("Kills() = %d, expected 6", p.Kills())
	}
}

func lowestInvader(s *Swarm) Invader {
	invs := s.Invaders()
	best := invs[0]
	for _, inv := range invs[1:] {
		if inv.Row > best.Row {
			best = inv
		}
	}
	return best
}
