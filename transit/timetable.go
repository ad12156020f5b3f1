package transit

// EdgeKey identifies one directed transit edge: a route plus the (src,dst)
// road-graph vertex pair it crosses. Two trips of the same route
// serving the same src/dst stop pair share a Schedule.
type EdgeKey struct {
	RouteID int64 // categorical label from the route-id mapping
	Src     int   // road-graph vertex id
	Dst     int   // road-graph vertex id
}

// DateMappingRecord is one ledger entry produced when GetNextDeparture
// substitutes a different calendar date than the one queried (spec §4.6.3
// "date-mapping ledger", a supplemental feature for audit/debugging).
type DateMappingRecord struct {
	Edge        EdgeKey
	QueryDate   Date
	PickedDate  Date
	DeltaDays   int
}

// TimetableEngine holds one Schedule per EdgeKey plus the date policy and
// service calendar each route's trips were built against, and answers
// "earliest departure at or after t" queries (spec §4.6.3, component C6).
type TimetableEngine struct {
	schedules map[EdgeKey]*Schedule
	routesOf  map[[2]int][]int64 // (src,dst) -> route ids with a schedule, insertion order
	calendars map[int64]*ServiceCalendar // keyed by route id
	policies  map[int64]DatePolicy
	ledger    []DateMappingRecord
	seed      int64
}

// NewTimetableEngine returns an empty engine. seed is forwarded to every
// Schedule created by AddDeparture for reproducible skip-list structure.
func NewTimetableEngine(seed int64) *TimetableEngine {
	return &TimetableEngine{
		schedules: make(map[EdgeKey]*Schedule),
		routesOf:  make(map[[2]int][]int64),
		calendars: make(map[int64]*ServiceCalendar),
		policies:  make(map[int64]DatePolicy),
		seed:      seed,
	}
}

// SetDateMapping installs the calendar and date policy used to resolve
// queries against routeID's schedules.
func (e *TimetableEngine) SetDateMapping(routeID int64, cal *ServiceCalendar, policy DatePolicy) {
	e.calendars[routeID] = cal
	e.policies[routeID] = policy
}

// AddDeparture registers one scheduled departure on edge, creating its
// Schedule on first use.
func (e *TimetableEngine) AddDeparture(edge EdgeKey, d Departure) {
	s, ok := e.schedules[edge]
	if !ok {
		s = NewSchedule(e.seed)
		e.schedules[edge] = s
		pair := [2]int{edge.Src, edge.Dst}
		e.routesOf[pair] = append(e.routesOf[pair], edge.RouteID)
	}
	s.Insert(d)
}

// GetNextDeparture returns the earliest Departure on edge with an
// absolute departure time at or after now, after remapping now's calendar
// date through edge's route's date policy when the queried date itself
// has no active service (spec §4.6.1-§4.6.3). The returned Departure's
// timestamps are shifted back onto now's date so src_departure - now is
// always >= 0 regardless of which calendar date the underlying schedule
// actually belongs to.
//
// secondsSinceMidnight is the query time's offset from nowDate's
// midnight, used only by the *DateTimeRange policies.
func (e *TimetableEngine) GetNextDeparture(edge EdgeKey, now Timestamp, nowDate Date, secondsSinceMidnight int) (Departure, error) {
	s, ok := e.schedules[edge]
	if !ok {
		return Departure{}, ErrNoScheduleForEdge
	}

	cal, hasCal := e.calendars[edge.RouteID]
	policy, hasPolicy := e.policies[edge.RouteID]
	if !hasCal || !hasPolicy {
		return lowerBoundOrInfinite(s, now), nil
	}

	picked, ok := PickDate(policy, cal, nowDate, secondsSinceMidnight)
	if !ok {
		return InfiniteDeparture(), nil
	}

	deltaDays := nowDate.DiffDays(picked) // >0 if nowDate is later than picked
	if deltaDays == 0 {
		return lowerBoundOrInfinite(s, now), nil
	}

	deltaSeconds := int64(deltaDays) * 86400
	search := now.Add(-deltaSeconds) // shift query onto picked's timeline
	dep := lowerBoundOrInfinite(s, search)
	e.ledger = append(e.ledger, DateMappingRecord{
		Edge:       edge,
		QueryDate:  nowDate,
		PickedDate: picked,
		DeltaDays:  deltaDays,
	})
	if dep.SrcDeparture == Infinity() {
		return dep, nil
	}

	dep.SrcDeparture = dep.SrcDeparture.Add(deltaSeconds)
	dep.DstArrival = dep.DstArrival.Add(deltaSeconds)
	return dep, nil
}

// RouteDeparture pairs a Departure with the route whose schedule produced
// it, the unit GetNextDepartureForEdge compares across routes.
type RouteDeparture struct {
	RouteID   int64
	Departure Departure
}

// GetNextDepartureForEdge implements get_next_departure(edge_id, now) as
// specified in §4.6.3: across every route serving the (src,dst) pair,
// resolve each route's own date mapping independently, then return the
// single departure with minimum dst_arrival_time, ties broken by
// ascending route id. Fails with ErrNoScheduleForEdge if no route serves
// this pair at all.
func (e *TimetableEngine) GetNextDepartureForEdge(src, dst int, now Timestamp, nowDate Date, secondsSinceMidnight int) (RouteDeparture, error) {
	routes, ok := e.routesOf[[2]int{src, dst}]
	if !ok || len(routes) == 0 {
		return RouteDeparture{}, ErrNoScheduleForEdge
	}

	best := RouteDeparture{Departure: InfiniteDeparture()}
	haveBest := false
	for _, routeID := range routes {
		dep, err := e.GetNextDeparture(EdgeKey{RouteID: routeID, Src: src, Dst: dst}, now, nowDate, secondsSinceMidnight)
		if err != nil {
			return RouteDeparture{}, err
		}
		candidate := RouteDeparture{RouteID: routeID, Departure: dep}
		if !haveBest || dep.DstArrival < best.Departure.DstArrival ||
			(dep.DstArrival == best.Departure.DstArrival && routeID < best.RouteID) {
			best = candidate
			haveBest = true
		}
	}
	return best, nil
}

func lowerBoundOrInfinite(s *Schedule, t Timestamp) Departure {
	if d, ok := s.LowerBound(t); ok {
		return d
	}
	return InfiniteDeparture()
}

// DateMappingLedger returns every date-remap substitution performed so
// far, in the order they occurred.
func (e *TimetableEngine) DateMappingLedger() []DateMappingRecord {
	return e.ledger
}
