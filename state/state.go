package state

// State is a flat, schema-addressed vector of scalar slots for one ongoing
// search path. Integer-typed slots (active_leg, leg_i_mode, leg_i_route_id)
// are stored as float64 with a reserved -1 meaning "unset"; real-valued
// slots (distances, times) default to 0.
//
// State is owned exclusively by the search path that produced it (spec §5,
// "Shared-resource policy") - it is never shared or mutated concurrently.
type State struct {
	schema *Schema
	slots  []float64
}

// New allocates a zeroed State for the given Schema, with active_leg and
// every leg_i_mode/leg_i_route_id slot initialized to unset (-1).
func New(schema *Schema) *State {
	slots := make([]float64, schema.Size())
	s := &State{schema: schema, slots: slots}

	s.setRaw(slotActiveLeg, unset)
	for i := 0; i < schema.maxLegs; i++ {
		s.setRaw(legModeField(i), unset)
		s.setRaw(legRouteIDField(i), unset)
	}
	return s
}

// Schema returns the Schema this State was built from.
func (s *State) Schema() *Schema { return s.schema }

func (s *State) getRaw(name string) float64 {
	i, ok := s.schema.slot(name)
	if !ok {
		return 0
	}
	return s.slots[i]
}

func (s *State) setRaw(name string, v float64) {
	i, ok := s.schema.slot(name)
	if !ok {
		return
	}
	s.slots[i] = v
}

func (s *State) addRaw(name string, delta float64) {
	i, ok := s.schema.slot(name)
	if !ok {
		return
	}
	s.slots[i] += delta
}

// SetEdgeInputs writes the scratch edge_distance/edge_time slots that
// upstream models (the search engine's edge cost evaluation) populate
// before invoking the traversal model for the current edge.
func (s *State) SetEdgeInputs(distance, time float64) {
	s.setRaw(slotEdgeDistance, distance)
	s.setRaw(slotEdgeTime, time)
}

// EdgeInputs reads back the scratch edge_distance/edge_time slots.
func (s *State) EdgeInputs() (distance, time float64) {
	return s.getRaw(slotEdgeDistance), s.getRaw(slotEdgeTime)
}

// TripTime returns the scratch trip_time slot.
func (s *State) TripTime() float64 { return s.getRaw(slotTripTime) }

// SetTripTime writes the scratch trip_time slot.
func (s *State) SetTripTime(t float64) { s.setRaw(slotTripTime, t) }

// Clone returns a deep copy of s, safe to mutate independently (used when a
// search frontier branches into multiple continuations from the same
// incoming state).
func (s *State) Clone() *State {
	cp := make([]float64, len(s.slots))
	copy(cp, s.slots)
	return &State{schema: s.schema, slots: cp}
}
