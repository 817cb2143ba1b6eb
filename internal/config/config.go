// Package config provides YAML-based game configuration loading and
// difficulty management for eggcatch.
package config

// CatcherConfig contains all tunables for the egg catcher game.
// Distances are field units (the field is a fixed logical rectangle that the
// platform projects onto terminal cells); times are seconds unless the field
// name says otherwise.
type CatcherConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Catcher    CatcherBody      `yaml:"catcher"`
	Objects    ObjectsConfig    `yaml:"objects"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Combo      ComboConfig      `yaml:"combo"`
	Effects    EffectsConfig    `yaml:"effects"`
	Clock      ClockConfig      `yaml:"clock"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig is the logical playfield size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CatcherBody describes the player's catcher and its basket hitbox.
type CatcherBody struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Speed            float64 `yaml:"speed"`             // keyboard speed, units per second
	PointerSmoothing float64 `yaml:"pointer_smoothing"` // fraction of remaining distance per frame
	BasketWidth      float64 `yaml:"basket_width"`
	BasketHeight     float64 `yaml:"basket_height"`
	BasketOffsetY    float64 `yaml:"basket_offset_y"` // from the catcher's top edge
}

// ObjectsConfig describes falling objects: sizes, fall speed and the kind table.
type ObjectsConfig struct {
	EggWidth      float64     `yaml:"egg_width"`
	EggHeight     float64     `yaml:"egg_height"`
	BombRadius    float64     `yaml:"bomb_radius"`
	InitialSpeed  float64     `yaml:"initial_speed"`
	MaxSpeedBonus float64     `yaml:"max_speed_bonus"`
	Kinds         KindWeights `yaml:"kinds"`
}

// KindWeights are cumulative thresholds checked against one uniform draw in [0,1).
type KindWeights struct {
	BombBelow   float64 `yaml:"bomb_below"`
	GoldenBelow float64 `yaml:"golden_below"`
	RottenBelow float64 `yaml:"rotten_below"`
}

// SpawnConfig defines the spawn interval endpoints.
type SpawnConfig struct {
	InitialInterval float64 `yaml:"initial_interval"`
	FloorInterval   float64 `yaml:"floor_interval"`
}

// ScoringConfig defines point values and starting lives.
type ScoringConfig struct {
	Normal int `yaml:"normal"`
	Golden int `yaml:"golden"`
	Lives  int `yaml:"lives"`
}

// ComboConfig defines the combo multiplier.
type ComboConfig struct {
	Threshold  int     `yaml:"threshold"`
	DurationMs float64 `yaml:"duration_ms"`
	Multiplier int     `yaml:"multiplier"`
}

// EffectsConfig defines screen shake and floating text.
type EffectsConfig struct {
	SmallShake   ShakeConfig `yaml:"small_shake"`
	BombShake    ShakeConfig `yaml:"bomb_shake"`
	TextLife     float64     `yaml:"text_life"`
	TextVelocity float64     `yaml:"text_velocity"` // negative = upward
}

// ShakeConfig is a shake trigger: magnitude in field units and duration in ms.
type ShakeConfig struct {
	Magnitude  float64 `yaml:"magnitude"`
	DurationMs float64 `yaml:"duration_ms"`
}

// ClockConfig controls frame time handling.
type ClockConfig struct {
	MaxStep float64 `yaml:"max_step"` // largest dt fed to the simulation; 0 disables the clamp
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score (or seconds played) at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty input yields an empty preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
