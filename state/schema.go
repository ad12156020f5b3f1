package state

import "fmt"

// Schema describes the fixed slot layout of a State vector: how many trip
// legs it can hold and which mode accumulator slots exist. Schema is built
// once per search configuration and shared (read-only) across every State
// instance created from it.
type Schema struct {
	maxLegs int
	modes   []string

	index map[string]int
	size  int
}

// NewSchema builds a Schema for up to maxLegs legs and the given mode names
// (used for the per-mode distance/time accumulator slots). maxLegs must be
// positive.
func NewSchema(maxLegs int, modes []string) (*Schema, error) {
	if maxLegs <= 0 {
		return nil, fmt.Errorf("state: NewSchema: maxLegs must be > 0, got %d", maxLegs)
	}

	s := &Schema{maxLegs: maxLegs, modes: append([]string(nil), modes...)}
	s.index = make(map[string]int)

	addSlot := func(name string) {
		s.index[name] = s.size
		s.size++
	}

	addSlot(slotActiveLeg)
	for i := 0; i < maxLegs; i++ {
		addSlot(legModeField(i))
		addSlot(legDistanceField(i))
		addSlot(legTimeField(i))
		addSlot(legRouteIDField(i))
	}
	for _, m := range modes {
		addSlot(modeDistanceField(m))
		addSlot(modeTimeField(m))
	}
	addSlot(slotEdgeDistance)
	addSlot(slotEdgeTime)
	addSlot(slotTripTime)

	return s, nil
}

// MaxLegs returns the configured maximum leg count for this Schema.
func (s *Schema) MaxLegs() int { return s.maxLegs }

// Size returns the number of scalar slots in a State built from this Schema.
func (s *Schema) Size() int { return s.size }

func (s *Schema) slot(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

const (
	slotActiveLeg    = "active_leg"
	slotEdgeDistance = "edge_distance"
	slotEdgeTime     = "edge_time"
	slotTripTime     = "trip_time"
)

func legModeField(i int) string     { return fmt.Sprintf("leg_%d_mode", i) }
func legDistanceField(i int) string { return fmt.Sprintf("leg_%d_distance", i) }
func legTimeField(i int) string     { return fmt.Sprintf("leg_%d_time", i) }
func legRouteIDField(i int) string  { return fmt.Sprintf("leg_%d_route_id", i) }
func modeDistanceField(m string) string { return fmt.Sprintf("mode_%s_distance", m) }
func modeTimeField(m string) string     { return fmt.Sprintf("mode_%s_time", m) }
