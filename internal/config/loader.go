package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCatcher loads the egg catcher configuration.
// Search order: customPath -> ~/.eggcatch/configs/catcher.yaml -> ./configs/catcher.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial YAML only overrides the
// keys it names. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped silently when unusable.
func LoadCatcher(customPath string) (CatcherConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCatcherConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCatcher(data)
		if err != nil {
			return DefaultCatcherConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("catcher.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCatcher(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "catcher.yaml")); err == nil {
		if cfg, err := parseCatcher(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCatcher(defaultCatcherYAML)
	if err != nil {
		return DefaultCatcherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseCatcher(data []byte) (CatcherConfig, error) {
	cfg := DefaultCatcherConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eggcatch", "configs", filename)
}

// ApplyCatcherPreset modifies the config based on a difficulty preset.
func ApplyCatcherPreset(cfg *CatcherConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Scoring.Lives = 5
	case DifficultyHard:
		cfg.Scoring.Lives = 2
	}
}

// Validate reports every setting that would make the simulation degenerate.
func (c CatcherConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	check(c.Catcher.Width > 0 && c.Catcher.Width <= c.Field.Width, "catcher width %g must be in (0, field width]", c.Catcher.Width)
	check(c.Catcher.Height > 0, "catcher height must be positive")
	check(c.Catcher.BasketWidth > 0 && c.Catcher.BasketHeight > 0, "basket size must be positive")
	check(c.Catcher.Speed >= 0, "catcher speed must not be negative")
	check(c.Catcher.PointerSmoothing > 0 && c.Catcher.PointerSmoothing <= 1, "pointer_smoothing %g must be in (0, 1]", c.Catcher.PointerSmoothing)
	check(c.Objects.EggWidth > 0 && c.Objects.EggHeight > 0, "egg size must be positive")
	check(c.Objects.BombRadius > 0, "bomb radius must be positive")
	check(2*c.Objects.BombRadius <= c.Field.Width && c.Objects.EggWidth <= c.Field.Width, "objects must fit the field width")
	check(c.Objects.InitialSpeed >= 0 && c.Objects.MaxSpeedBonus >= 0, "fall speeds must not be negative")

	k := c.Objects.Kinds
	check(k.BombBelow >= 0 && k.BombBelow <= k.GoldenBelow && k.GoldenBelow <= k.RottenBelow && k.RottenBelow <= 1,
		"kind thresholds must satisfy 0 <= bomb <= golden <= rotten <= 1, got %g/%g/%g", k.BombBelow, k.GoldenBelow, k.RottenBelow)

	check(c.Spawn.FloorInterval > 0, "spawn floor interval must be positive")
	check(c.Spawn.InitialInterval >= c.Spawn.FloorInterval, "spawn initial interval %g is below the floor %g", c.Spawn.InitialInterval, c.Spawn.FloorInterval)

	check(c.Scoring.Normal > 0 && c.Scoring.Golden > 0, "point values must be positive")
	check(c.Scoring.Lives > 0, "lives must be positive")
	check(c.Combo.Threshold > 0, "combo threshold must be positive")
	check(c.Combo.DurationMs >= 0, "combo duration must not be negative")
	check(c.Combo.Multiplier >= 1, "combo multiplier must be at least 1")

	check(c.Effects.TextLife > 0, "text life must be positive")
	check(c.Clock.MaxStep >= 0, "clock max_step must not be negative")

	d := c.Difficulty
	check(d.InitialLevel >= 0 && d.InitialLevel <= 1, "difficulty initial_level %g must be in [0, 1]", d.InitialLevel)
	switch d.Progression.Type {
	case "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("unknown difficulty progression %q", d.Progression.Type))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catcher config: %w", errors.Join(errs...))
	}
	return nil
}
