package catcher

import (
	"fmt"

	"github.com/vovakirdan/eggcatch/internal/config"
)

// Kind is the closed set of falling object types.
type Kind uint8

const (
	KindNormal Kind = iota
	KindGolden
	KindRotten
	KindBomb
)

// Kinds lists every kind in declaration order.
var Kinds = [...]Kind{KindNormal, KindGolden, KindRotten, KindBomb}

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindGolden:
		return "golden"
	case KindRotten:
		return "rotten"
	case KindBomb:
		return "bomb"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// MarshalText encodes the kind by name so snapshots stay readable on the wire.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindNormal, KindGolden, KindRotten, KindBomb:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("catcher: unknown kind %d", uint8(k))
	}
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	for _, c := range Kinds {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("catcher: unknown kind %q", text)
}

// Scoring reports whether catching the kind awards points. Only scoring kinds
// build the combo, and only scoring kinds cost a life when missed.
func (k Kind) Scoring() bool {
	switch k {
	case KindNormal, KindGolden:
		return true
	case KindRotten, KindBomb:
		return false
	default:
		panic(fmt.Sprintf("catcher: unhandled kind %d", uint8(k)))
	}
}

// PickKind maps one uniform draw in [0,1) onto a kind through the cumulative
// thresholds.
func PickKind(r float64, w config.KindWeights) Kind {
	switch {
	case r < w.BombBelow:
		return KindBomb
	case r < w.GoldenBelow:
		return KindGolden
	case r < w.RottenBelow:
		return KindRotten
	default:
		return KindNormal
	}
}
