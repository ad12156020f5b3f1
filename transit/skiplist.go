package transit

import "math/rand"

const (
	maxSkipListLevel = 16
	skipListP        = 0.5
)

// Departure is one scheduled crossing of an edge: an absolute departure
// time at the edge's source and an absolute arrival time at its
// destination, ordered by SrcDeparture (spec §3).
type Departure struct {
	SrcDeparture Timestamp
	DstArrival   Timestamp
}

// InfiniteDeparture is the Departure sentinel spec §4.6.3 calls
// Departure::infinity(): what TimetableEngine's lookups return when
// LowerBound finds no departure at-or-after the query time.
func InfiniteDeparture() Departure {
	return Departure{SrcDeparture: Infinity(), DstArrival: Infinity()}
}

type skipNode struct {
	departure Departure
	forward   []*skipNode
}

// Schedule is an ordered, probabilistically-balanced skip list of
// Departures (spec §3, §4.6.1): built incrementally via Insert, queried via
// LowerBound in O(log n) expected time. Schedules are built once per edge
// per route, then queried many times by the search (spec §9).
type Schedule struct {
	head  *skipNode
	level int
	size  int
	rnd   *rand.Rand
}

// NewSchedule returns an empty Schedule. seed controls the skip list's
// level randomization only (it never affects query results, only expected
// query cost) — pass a fixed seed for reproducible benchmarks/tests.
func NewSchedule(seed int64) *Schedule {
	return &Schedule{
		head:  &skipNode{forward: make([]*skipNode, maxSkipListLevel)},
		level: 1,
		rnd:   rand.New(rand.NewSource(seed)),
	}
}

func (s *Schedule) randomLevel() int {
	level := 1
	for level < maxSkipListLevel && s.rnd.Float64() < skipListP {
		level++
	}
	return level
}

// Insert adds d to the schedule, maintaining sort order by SrcDeparture.
func (s *Schedule) Insert(d Departure) {
	var update [maxSkipListLevel]*skipNode
	x := s.head
	for i := s.level - 1; i >= 0; i-- {
		for x.forward[i] != nil && x.forward[i].departure.SrcDeparture.Before(d.SrcDeparture) {
			x = x.forward[i]
		}
		update[i] = x
	}

	lvl := s.randomLevel()
	if lvl > s.level {
		for i := s.level; i < lvl; i++ {
			update[i] = s.head
		}
		s.level = lvl
	}

	node := &skipNode{departure: d, forward: make([]*skipNode, lvl)}
	for i := 0; i < lvl; i++ {
		node.forward[i] = update[i].forward[i]
		update[i].forward[i] = node
	}
	s.size++
}

// LowerBound returns the earliest Departure with SrcDeparture >= t, or
// (_, false) if every stored departure is earlier than t.
func (s *Schedule) LowerBound(t Timestamp) (Departure, bool) {
	x := s.head
	for i := s.level - 1; i >= 0; i-- {
		for x.forward[i] != nil && x.forward[i].departure.SrcDeparture.Before(t) {
			x = x.forward[i]
		}
	}
	if x.forward[0] == nil {
		return Departure{}, false
	}
	return x.forward[0].departure, true
}

// Len returns the number of departures stored.
func (s *Schedule) Len() int { return s.size }

// Walk returns every stored Departure in ascending SrcDeparture order
// (spec §8, invariant 4: "skip-list order").
func (s *Schedule) Walk() []Departure {
	out := make([]Departure, 0, s.size)
	for x := s.head.forward[0]; x != nil; x = x.forward[0] {
		out = append(out, x.departure)
	}
	return out
}
