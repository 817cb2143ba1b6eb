package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultCatcherConfig()
	if err := yaml.Unmarshal(defaultCatcherYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultCatcherConfig() {
		t.Errorf("embedded defaults drifted from DefaultCatcherConfig:\n%+v\n%+v", cfg, DefaultCatcherConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCatcherCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catcher.yaml")
	data := "scoring:\n  lives: 7\nclock:\n  max_step: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatcher(path)
	if err != nil {
		t.Fatalf("LoadCatcher: %v", err)
	}
	if cfg.Scoring.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Scoring.Lives)
	}
	if cfg.Clock.MaxStep != 0 {
		t.Errorf("max_step = %g, expected 0", cfg.Clock.MaxStep)
	}
	// Untouched keys keep their defaults
	if cfg.Scoring.Golden != 5 || cfg.Field.Width != 800 {
		t.Errorf("partial override clobbered defaults: %+v", cfg)
	}
}

func TestLoadCatcherCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCatcher(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("spawn:\n  initial_interval: 0.1\n  floor_interval: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadCatcher(bad)
	if err == nil || !strings.Contains(err.Error(), "floor") {
		t.Errorf("expected validation error about the spawn floor, got %v", err)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := DefaultCatcherConfig()
	cfg.Field.Width = 0
	cfg.Combo.Threshold = 0
	cfg.Objects.Kinds.GoldenBelow = 0.01 // below bomb threshold
	cfg.Difficulty.Progression.Type = "weekly"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"field size", "combo threshold", "kind thresholds", "weekly"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestApplyCatcherPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		lives        int
	}{
		{"", true, 0.0, 3},
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCatcherConfig()
			ApplyCatcherPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("initial level = %g, expected %g", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if cfg.Scoring.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Scoring.Lives, tc.lives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}

func TestDifficultyLevelByScore(t *testing.T) {
	dm := NewDifficultyManager(DefaultCatcherConfig().Difficulty)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0},
		{250, 0.5},
		{500, 1},
		{10000, 1},
	}
	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %g, expected %g", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyInitialLevelAndFixed(t *testing.T) {
	cfg := DefaultCatcherConfig().Difficulty
	cfg.InitialLevel = 0.5
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(250, 0); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level(250) from 0.5 = %g, expected 0.75", got)
	}

	cfg.Enabled = false
	dm = NewDifficultyManager(cfg)
	if got := dm.Level(500, 0); got != 0.5 {
		t.Errorf("disabled progression should hold the initial level, got %g", got)
	}
}

func TestDifficultyByTime(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 120},
	})
	if got := dm.Level(0, 60); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level after 60s = %g, expected 0.5", got)
	}
}

func TestLerp(t *testing.T) {
	// Spawn interval: 1.2s at level 0, 0.3s at level 1
	if got := Lerp(1.2, 0.3, 0.5); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Lerp(1.2, 0.3, 0.5) = %g, expected 0.75", got)
	}
	if got := Lerp(100, 400, 2); got != 400 {
		t.Errorf("Lerp should clamp the level, got %g", got)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("EGGCATCH_FPS", "30")
	t.Setenv("EGGCATCH_AUDIO", "off")
	t.Setenv("EGGCATCH_VOLUME", "not-a-number")
	t.Setenv("EGGCATCH_DB", "")

	env := LoadEnv()
	if env.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", env.FPS)
	}
	if env.Audio {
		t.Error("audio should be disabled by EGGCATCH_AUDIO=off")
	}
	if env.Volume != 0.3 {
		t.Errorf("malformed volume should fall back to default, got %g", env.Volume)
	}
	if env.DBPath != "~/.eggcatch/scores.db" {
		t.Errorf("DBPath = %q, expected default", env.DBPath)
	}
}
