package traversal

import (
	"github.com/bambam/bambam/categorical"
	"github.com/bambam/bambam/state"
)

// Apply performs the C7 per-edge update on s for an edge whose edge-list
// mode is mode (looked up through modeMapping). routeID, when non-empty, is
// written onto the active leg's route-id slot through routeMapping
// (transit edges carrying a route_id feature); pass "" for non-transit
// edges.
//
// s.EdgeInputs() must already carry the edge's distance/time (set by the
// caller before invoking Apply). Apply treats the whole update as a single
// transaction: on ErrMaxLegsExceeded, s is left exactly as it was on entry
// and must be discarded by the caller rather than reused (spec §9).
func Apply(s *state.State, modeMapping *categorical.Mapping, mode string, routeID string, routeMapping *categorical.Mapping) error {
	legIdx, err := resolveLeg(s, modeMapping, mode)
	if err != nil {
		return err
	}

	distance, time := s.EdgeInputs()
	if err := state.AddLegAccumulators(s, legIdx, mode, distance, time); err != nil {
		return err
	}

	if routeID != "" && routeMapping != nil {
		if err := state.SetLegRouteID(s, legIdx, routeID, routeMapping); err != nil {
			return err
		}
	}
	return nil
}

// resolveLeg implements the mode-switch step of spec §4.7: it returns the
// leg index that the upcoming accumulation should target, opening a new leg
// when the active leg's mode differs from mode (or none is active yet).
func resolveLeg(s *state.State, modeMapping *categorical.Mapping, mode string) (int, error) {
	if idx, ok := state.GetActiveLeg(s); ok {
		name, hasMode, err := state.GetLegModeName(s, idx, modeMapping)
		if err != nil {
			return 0, err
		}
		if hasMode && name == mode {
			return idx, nil
		}
	}

	next, err := state.IncrementActiveLeg(s)
	if err != nil {
		return 0, err
	}
	if err := state.SetLegMode(s, next, mode, modeMapping); err != nil {
		return 0, err
	}
	return next, nil
}

// Estimate is the A*-style heuristic hook. Per spec §4.7 this is a no-op:
// traversal only ever supplies true incremental costs, never an estimate.
func Estimate(*state.State) float64 { return 0 }
