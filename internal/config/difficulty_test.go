package config

import (
	"testing"
	"time"
)

func TestSwarmIntervalBounds(t *testing.T) {
	base := 2 * time.Second
	min := 250 * time.Millisecond
	total := 64

	if got := SwarmInterval(base, min, total, total); got != base {
		t.Errorf("full swarm interval = %v, expected %v", got, base)
	}
	if got := SwarmInterval(base, min, 1, total); got != min {
		t.Errorf("single invader interval = %v, expected %v", got, min)
	}
	if got := SwarmInterval(base, min, 0, total); got != min {
		t.Errorf("empty swarm interval = %v, expected %v", got, min)
	}
}

func TestSwarmIntervalMonotonic(t *testing.T) {
	base := 2 * time.Second
	min := 250 * time.Millisecond
	total := 64

	prev := SwarmInterval(base, min, total, total)
	for remaining := total - 1; remaining >= 0; remaining-- {
		got := SwarmInterval(base, min, remaining, total)
		if got > prev {
			t.Fatalf("interval grew from %v to %v at %d remaining", prev, got, remaining)
		}
		if got < min {
			t.Fatalf("interval %v dropped below min %v", got, min)
		}
		prev = got
	}
}

func TestSwarmIntervalDegenerate(t *testing.T) {
	tests := []struct {
		name             string
		base, min        time.Duration
		remaining, total int
		expected         time.Duration
	}{
		{"single invader swarm", time.Second, 100 * time.Millisecond, 1, 1, time.Second},
		{"base below min", 50 * time.Millisecond, 100 * time.Millisecond, 3, 10, 100 * time.Millisecond},
		{"fixed pace", time.Second, time.Second, 2, 10, time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SwarmInterval(tc.base, tc.min, tc.remaining, tc.total)
			if got != tc.expected {
				t.Errorf("SwarmInterval() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
