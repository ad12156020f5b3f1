package transit

import "math"

// Timestamp is a saturating absolute point in time, expressed as seconds
// since the Unix epoch. Infinity/NegInfinity are sticky under Add: adding
// any finite number of seconds to Infinity yields Infinity again (spec
// §8.3, §9 "Saturation arithmetic"), which keeps "no departure found"
// distinguishable from "departure at the max representable time".
type Timestamp int64

const (
	maxTimestamp = Timestamp(math.MaxInt64)
	minTimestamp = Timestamp(math.MinInt64)
)

// Infinity returns the sentinel Timestamp meaning "no departure found".
func Infinity() Timestamp { return maxTimestamp }

// NegInfinity returns the sentinel Timestamp at the opposite bound.
func NegInfinity() Timestamp { return minTimestamp }

// Add returns t shifted by delta seconds (delta may be negative), saturating
// at Infinity/NegInfinity instead of wrapping.
func (t Timestamp) Add(delta int64) Timestamp {
	if t == maxTimestamp || t == minTimestamp {
		return t
	}
	if delta > 0 && int64(t) > math.MaxInt64-delta {
		return maxTimestamp
	}
	if delta < 0 && int64(t) < math.MinInt64-delta {
		return minTimestamp
	}
	return Timestamp(int64(t) + delta)
}

// Sub returns t-other in seconds. Not saturating: callers only ever
// subtract two non-infinite timestamps (the date-remap target/search pair).
func (t Timestamp) Sub(other Timestamp) int64 {
	return int64(t) - int64(other)
}

// Before reports whether t occurs strictly before other.
func (t Timestamp) Before(other Timestamp) bool { return t < other }

// ComposeTimestamp builds the absolute departure/arrival Timestamp for a
// picked calendar date plus GTFS seconds-since-midnight, preserving the GTFS
// convention that seconds may exceed 86400 and roll into later days (spec
// §4.6.2 step 3).
func ComposeTimestamp(d Date, secondsSinceMidnight int) Timestamp {
	return Timestamp(d.Time().Unix() + int64(secondsSinceMidnight))
}
