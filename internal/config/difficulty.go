package config

import (
	"math"
	"time"
)

// SwarmInterval returns the swarm step interval for the given population.
//
// A full swarm steps every base; the interval shrinks linearly as invaders
// die and reaches min when a single invader is left. The result is always
// within [min, base], so it never reaches zero as long as min is positive.
func SwarmInterval(base, min time.Duration, remaining, total int) time.Duration {
	if base < min {
		base = min
	}
	if total <= 1 || remaining >= total {
		return base
	}

	// level goes from 0.0 (full swarm) to 1.0 (one invader left)
	level := 1.0 - float64(remaining-1)/float64(total-1)
	level = clampF(level, 0.0, 1.0)

	interval := base - time.Duration(level*float64(base-min))
	if interval < min {
		return min
	}
	return interval
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
