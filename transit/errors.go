package transit

import "errors"

var (
	// ErrInvalidData covers malformed GTFS input: a date that cannot be
	// mapped against a service calendar, an empty stop-time list, and
	// similar structural problems (spec §7).
	ErrInvalidData = errors.New("transit: invalid data")
	// ErrMissingStopLocation is returned when a stop (and its
	// parent-station fallback) cannot be map-matched to a road vertex and
	// the configured policy is FailOnMissingStop.
	ErrMissingStopLocation = errors.New("transit: missing stop location")
	// ErrNoScheduleForEdge is returned by GetNextDeparture when an edge
	// carries no schedules at all.
	ErrNoScheduleForEdge = errors.New("transit: no schedule for edge")
	// ErrUnknownService is returned when a trip references a service id
	// absent from the feed's calendars.
	ErrUnknownService = errors.New("transit: unknown service")
)
