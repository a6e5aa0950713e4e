package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("DefaultGameConfig().Validate() = %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded defaults differ from DefaultGameConfig():\n%+v\n%+v", cfg, DefaultGameConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("swarm:\n  rows: 2\n  base_interval: 800ms\nplayer:\n  max_shots: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Swarm.Rows != 2 {
		t.Errorf("Swarm.Rows = %d, expected 2", cfg.Swarm.Rows)
	}
	if cfg.Swarm.BaseInterval != 800*time.Millisecond {
		t.Errorf("Swarm.BaseInterval = %v, expected 800ms", cfg.Swarm.BaseInterval)
	}
	if cfg.Player.MaxShots != 0 {
		t.Errorf("Player.MaxShots = %d, expected 0", cfg.Player.MaxShots)
	}
	// Untouched values keep their defaults
	if cfg.Field != DefaultGameConfig().Field {
		t.Errorf("Field = %+v, expected defaults", cfg.Field)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("swarm:\n  min_interval: 0s\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load() of a config with zero min_interval should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*GameConfig)
		errMsg string
	}{
		{"tiny field", func(c *GameConfig) { c.Field.Height = 1 }, "field must be"},
		{"zero cooldown", func(c *GameConfig) { c.Player.Cooldown = 0 }, "cooldown"},
		{"zero shot step", func(c *GameConfig) { c.Player.ShotStep = 0 }, "shot_step"},
		{"no rows", func(c *GameConfig) { c.Swarm.Rows = 0 }, "at least one row"},
		{"zero spacing", func(c *GameConfig) { c.Swarm.Spacing = 0 }, "spacing"},
		{"zero min interval", func(c *GameConfig) { c.Swarm.MinInterval = 0 }, "min_interval"},
		{"base below min", func(c *GameConfig) { c.Swarm.BaseInterval = c.Swarm.MinInterval / 2 }, "base_interval"},
		{"too wide", func(c *GameConfig) { c.Swarm.Cols = 30 }, "cells wide"},
		{"too deep", func(c *GameConfig) { c.Swarm.Rows = 10 }, "above the player row"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("Validate() = %v, expected it to mention %q", err, tc.errMsg)
			}
		})
	}
}

func TestFrameSize(t *testing.T) {
	w, h := DefaultGameConfig().FrameSize()
	if w != 40 || h != 21 {
		t.Errorf("FrameSize() = %dx%d, expected 40x21", w, h)
	}
}

func TestGlyph(t *testing.T) {
	if Glyph("Ab", '?') != 'A' {
		t.Error("Glyph should return the first rune")
	}
	if Glyph("", '?') != '?' {
		t.Error("Glyph should return the fallback for empty strings")
	}
	if Glyph("▲", '?') != '▲' {
		t.Error("Glyph should handle multi-byte runes")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if p, err := ParsePreset(s); err != nil || string(p) != s {
			t.Errorf("ParsePreset(%q) = %q, %v", s, p, err)
		}
	}
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected normal", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(\"nightmare\") should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultGameConfig()

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Swarm.BaseInterval <= base.Swarm.BaseInterval {
		t.Error("easy preset should slow the swarm down")
	}

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	if hard.Swarm.BaseInterval >= base.Swarm.BaseInterval {
		t.Error("hard preset should speed the swarm up")
	}
	if hard.Player.MaxShots != 1 {
		t.Errorf("hard preset MaxShots = %d, expected 1", hard.Player.MaxShots)
	}

	fixed := base
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Swarm.MinInterval != fixed.Swarm.BaseInterval {
		t.Error("fixed preset should disable acceleration")
	}

	normal := base
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}

	for _, cfg := range []GameConfig{easy, hard, fixed} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced an invalid config: %v", err)
		}
	}
}

func TestMarshalParse(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Swarm.Rows = 3

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if got != cfg {
		t.Errorf("Parse(Marshal(cfg)) = %+v, expected %+v", got, cfg)
	}
}
