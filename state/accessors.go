package state

import "github.com/bambam/bambam/categorical"

// LegIdx identifies a trip leg by position, 0-indexed.
type LegIdx = int

// GetActiveLeg returns the current active leg index, or (0, false) if no
// leg has been started yet (active_leg == -1).
func GetActiveLeg(s *State) (LegIdx, bool) {
	v := int(s.getRaw(slotActiveLeg))
	if v < 0 {
		return 0, false
	}
	return v, true
}

// GetNLegs returns active_leg+1, or 0 if no leg has been started.
func GetNLegs(s *State) int {
	if idx, ok := GetActiveLeg(s); ok {
		return idx + 1
	}
	return 0
}

// GetLegMode returns the mode label stored for leg i, or (Unset, false) if
// that leg has no mode set yet. Returns ErrInvalidLegIdx if i is out of
// [0, MaxLegs).
func GetLegMode(s *State, i LegIdx) (int64, bool, error) {
	if i < 0 || i >= s.schema.maxLegs {
		return categorical.Unset, false, ErrInvalidLegIdx
	}
	v := int64(s.getRaw(legModeField(i)))
	if v < 0 {
		return categorical.Unset, false, nil
	}
	return v, true, nil
}

// GetLegModeName resolves the leg's mode label through mapping, returning
// ("", false, nil) if leg i has no mode set.
func GetLegModeName(s *State, i LegIdx, mapping *categorical.Mapping) (string, bool, error) {
	label, ok, err := GetLegMode(s, i)
	if err != nil || !ok {
		return "", false, err
	}
	name, found := mapping.Category(label)
	if !found {
		return "", false, nil
	}
	return name, true, nil
}

// GetLegDistance returns the accumulated distance for leg i.
func GetLegDistance(s *State, i LegIdx) (float64, error) {
	if i < 0 || i >= s.schema.maxLegs {
		return 0, ErrInvalidLegIdx
	}
	return s.getRaw(legDistanceField(i)), nil
}

// GetLegTime returns the accumulated time for leg i.
func GetLegTime(s *State, i LegIdx) (float64, error) {
	if i < 0 || i >= s.schema.maxLegs {
		return 0, ErrInvalidLegIdx
	}
	return s.getRaw(legTimeField(i)), nil
}

// GetLegRouteID returns the route-id label stored for leg i, or
// (Unset, false) if unset.
func GetLegRouteID(s *State, i LegIdx) (int64, bool, error) {
	if i < 0 || i >= s.schema.maxLegs {
		return categorical.Unset, false, ErrInvalidLegIdx
	}
	v := int64(s.getRaw(legRouteIDField(i)))
	if v < 0 {
		return categorical.Unset, false, nil
	}
	return v, true, nil
}

// GetModeDistance returns the mode_{name}_distance accumulator.
func GetModeDistance(s *State, mode string) float64 {
	return s.getRaw(modeDistanceField(mode))
}

// GetModeTime returns the mode_{name}_time accumulator.
func GetModeTime(s *State, mode string) float64 {
	return s.getRaw(modeTimeField(mode))
}

// IncrementActiveLeg advances active_leg: from unset it becomes 0, else it
// increments by one. Returns ErrMaxLegsExceeded if the resulting index would
// reach MaxLegs; per spec §9 the whole edge traversal is a transaction, so
// on failure active_leg is left untouched by the caller (traversal rolls
// back, see package traversal).
func IncrementActiveLeg(s *State) (LegIdx, error) {
	next := 0
	if idx, ok := GetActiveLeg(s); ok {
		next = idx + 1
	}
	if next >= s.schema.maxLegs {
		return 0, ErrMaxLegsExceeded
	}
	s.setRaw(slotActiveLeg, float64(next))
	return next, nil
}

// SetLegMode stores mapping's label for name at leg i. Returns ErrUnknownMode
// if name is not present in mapping, or ErrInvalidLegIdx if i is out of range.
func SetLegMode(s *State, i LegIdx, name string, mapping *categorical.Mapping) error {
	if i < 0 || i >= s.schema.maxLegs {
		return ErrInvalidLegIdx
	}
	label, ok := mapping.Label(name)
	if !ok {
		return ErrUnknownMode
	}
	s.setRaw(legModeField(i), float64(label))
	return nil
}

// SetLegRouteID stores mapping's label for routeID at leg i.
func SetLegRouteID(s *State, i LegIdx, routeID string, mapping *categorical.Mapping) error {
	if i < 0 || i >= s.schema.maxLegs {
		return ErrInvalidLegIdx
	}
	label, ok := mapping.Label(routeID)
	if !ok {
		return ErrUnknownMode
	}
	s.setRaw(legRouteIDField(i), float64(label))
	return nil
}

// AddLegAccumulators adds distance/time onto leg i's accumulators and the
// corresponding mode_{mode}_distance/time accumulators. Both additions occur
// together, preserving invariant (d) in spec §3.
func AddLegAccumulators(s *State, i LegIdx, mode string, distance, time float64) error {
	if i < 0 || i >= s.schema.maxLegs {
		return ErrInvalidLegIdx
	}
	s.addRaw(legDistanceField(i), distance)
	s.addRaw(legTimeField(i), time)
	s.addRaw(modeDistanceField(mode), distance)
	s.addRaw(modeTimeField(mode), time)
	return nil
}

// GetModeSequence walks leg_0, leg_1, ... while each has a mode label set,
// returning the resolved mode names. Stops at the first unset leg (spec
// invariant "leg density").
func GetModeSequence(s *State, mapping *categorical.Mapping) ([]string, error) {
	var modes []string
	for i := 0; i < s.schema.maxLegs; i++ {
		label, ok, err := GetLegMode(s, i)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		name, found := mapping.Category(label)
		if !found {
			break
		}
		modes = append(modes, name)
	}
	return modes, nil
}
