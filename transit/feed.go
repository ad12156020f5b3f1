package transit

// Stop is the minimal projection of a GTFS stops.txt row this package
// needs: an identity, a location (possibly absent, spec §4.6.2 "missing
// stop location"), and an optional parent station to fall back to.
type Stop struct {
	ID             string
	Lat, Lon       float64
	HasLocation    bool
	ParentStation  string
}

// StopTime is one trips.txt x stop_times.txt join row.
type StopTime struct {
	TripID               string
	StopID               string
	Sequence             int
	ArrivalSeconds       int
	DepartureSeconds     int
}

// Trip ties a sequence of StopTimes to a route and a service calendar.
type Trip struct {
	ID        string
	RouteID   string
	ServiceID string
}

// Route is the minimal routes.txt projection; AgencyID composes with ID
// into the fully-qualified route identifier (spec SUPPLEMENTAL FEATURES,
// "fully-qualified route ids").
type Route struct {
	ID        string
	AgencyID  string
	ShortName string
	LongName  string
}

// Agency is the minimal agency.txt projection.
type Agency struct {
	ID   string
	Name string
}

// Feed is the normalized, library-independent view of a GTFS bundle that
// ImportGTFS consumes. FromGTFSParserFeed builds one from a parsed
// github.com/geops/gtfsparser archive; tests can also construct one
// directly.
type Feed struct {
	Agencies  []Agency
	Stops     []Stop
	Routes    []Route
	Trips     []Trip
	StopTimes map[string][]StopTime // keyed by TripID, ordered by Sequence

	Calendars map[string]*ServiceCalendar // keyed by ServiceID
}
