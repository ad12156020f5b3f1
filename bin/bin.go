package bin

import (
	"errors"

	"go.uber.org/zap"
)

// ErrMissingFeature is returned when a Bin references a feature the
// StateReader does not carry.
var ErrMissingFeature = errors.New("bin: missing feature")

// ErrUnknownBinKind is returned for a Bin with an unrecognized Kind.
var ErrUnknownBinKind = errors.New("bin: unknown kind")

// Kind selects which destination feature family a Bin classifies.
type Kind int

const (
	// Distance bins a distance-valued feature.
	Distance Kind = iota
	// Time bins a time-valued feature.
	Time
	// Energy bins an energy-valued feature.
	Energy
	// CustomRange bins an arbitrary named feature against a unit-tagged range.
	CustomRange
	// Boolean reads a bool-valued feature, optionally negated.
	Boolean
)

// boolUnit is the CustomRange.Unit sentinel that signals a bool-valued
// feature cast through {0,1} -> float64 (spec §4.10).
const boolUnit = "bool"

// Bin classifies a destination state into one range. Ranges are half-open:
// [Min, Max) — Min inclusive, Max exclusive (spec invariant, §8.1).
type Bin struct {
	Kind    Kind
	Feature string
	Unit    string // meaningful only for CustomRange
	Min, Max float64
	Negate  bool // meaningful only for Boolean
}

// StateReader abstracts the destination-state feature lookups a Bin needs,
// decoupling this package from a concrete state representation.
type StateReader interface {
	Float(feature string) (float64, bool)
	Bool(feature string) (bool, bool)
}

// WithinBin reports whether s falls inside b. sugar may be nil; when
// non-nil it receives the boolean-cardinality warning spec §4.10 requires
// for a CustomRange over a bool-valued feature (bool's cardinality of 2
// is below the 3 points a half-open range normally distinguishes).
func (b Bin) WithinBin(s StateReader, sugar *zap.SugaredLogger) (bool, error) {
	switch b.Kind {
	case Boolean:
		bv, ok := s.Bool(b.Feature)
		if !ok {
			return false, ErrMissingFeature
		}
		if b.Negate {
			bv = !bv
		}
		return bv, nil

	case CustomRange:
		if b.Unit == boolUnit {
			bv, ok := s.Bool(b.Feature)
			if !ok {
				return false, ErrMissingFeature
			}
			if sugar != nil {
				sugar.Warnf("bin: CustomRange feature %q has boolean cardinality 2, below the 3 points a range normally requires", b.Feature)
			}
			x := 0.0
			if bv {
				x = 1.0
			}
			return b.Min <= x && x < b.Max, nil
		}
		fallthrough
	case Distance, Time, Energy:
		x, ok := s.Float(b.Feature)
		if !ok {
			return false, ErrMissingFeature
		}
		return b.Min <= x && x < b.Max, nil

	default:
		return false, ErrUnknownBinKind
	}
}

// Config describes a family of consecutive half-open bins built from a
// pairwise tuple-window over Values (spec §4.10).
type Config struct {
	Kind    Kind
	Feature string
	Unit    string
	Negate  bool
	Values  []float64
}

// GenerateBins builds len(cfg.Values)-1 consecutive bins [v_i, v_{i+1}).
func GenerateBins(cfg Config) []Bin {
	if len(cfg.Values) < 2 {
		return nil
	}
	bins := make([]Bin, 0, len(cfg.Values)-1)
	for i := 0; i+1 < len(cfg.Values); i++ {
		bins = append(bins, Bin{
			Kind:    cfg.Kind,
			Feature: cfg.Feature,
			Unit:    cfg.Unit,
			Negate:  cfg.Negate,
			Min:     cfg.Values[i],
			Max:     cfg.Values[i+1],
		})
	}
	return bins
}
