package config

import (
	_ "embed"
)

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

// DefaultCatcherConfig returns the default egg catcher configuration.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Catcher: CatcherBody{
			Width:            80,
			Height:           100,
			Speed:            500,
			PointerSmoothing: 0.2,
			BasketWidth:      90,
			BasketHeight:     20,
			BasketOffsetY:    60,
		},
		Objects: ObjectsConfig{
			EggWidth:      30,
			EggHeight:     40,
			BombRadius:    20,
			InitialSpeed:  100,
			MaxSpeedBonus: 300,
			Kinds: KindWeights{
				BombBelow:   0.03,
				GoldenBelow: 0.10,
				RottenBelow: 0.20,
			},
		},
		Spawn: SpawnConfig{
			InitialInterval: 1.2,
			FloorInterval:   0.3,
		},
		Scoring: ScoringConfig{
			Normal: 1,
			Golden: 5,
			Lives:  3,
		},
		Combo: ComboConfig{
			Threshold:  5,
			DurationMs: 5000,
			Multiplier: 2,
		},
		Effects: EffectsConfig{
			SmallShake:   ShakeConfig{Magnitude: 8, DurationMs: 200},
			BombShake:    ShakeConfig{Magnitude: 20, DurationMs: 500},
			TextLife:     1.0,
			TextVelocity: -50,
		},
		Clock: ClockConfig{
			MaxStep: 0.25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "catcher", "eggcatch", "eggcatch_hard":
		return defaultCatcherYAML
	default:
		return nil
	}
}
