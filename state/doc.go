// Package state implements the vectorised, mutable multimodal trip state
// that a single search path carries through traversal.
//
// A State is a flat slice of float64 scratch/accumulator slots addressed by
// name through a Schema built once per search configuration (max trip legs,
// known modes). The layout mirrors routee-compass's StateVariable vector
// (see original_source/rust/bambam-core/src/model/state), but the package
// only exposes typed accessor functions (Get/SetXxx below) - callers never
// index the underlying slice directly.
package state

import "errors"

// Sentinel errors for state accessors.
var (
	// ErrInvalidLegIdx is returned when a leg index is out of [0, MaxLegs).
	ErrInvalidLegIdx = errors.New("state: leg index out of range")
	// ErrUnknownMode is returned when a mode name has no label in the
	// supplied categorical.Mapping.
	ErrUnknownMode = errors.New("state: unknown mode")
	// ErrMaxLegsExceeded is returned by IncrementActiveLeg when the next leg
	// index would reach MaxLegs.
	ErrMaxLegsExceeded = errors.New("state: max trip legs exceeded")
)

// unset is the sentinel value for integer-valued slots (active_leg,
// leg_i_mode, leg_i_route_id) that have not yet been written.
const unset = -1
