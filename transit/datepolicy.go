package transit

import "sort"

// ExceptionType mirrors GTFS calendar_dates.txt exception_type (spec
// §4.6.1): 1 adds a date to a service, 2 removes it.
type ExceptionType int

const (
	ExceptionAdded   ExceptionType = 1
	ExceptionRemoved ExceptionType = 2
)

// ServiceCalendar is the resolved set of active dates for one GTFS
// service_id: a weekday-repeating range (calendar.txt) overlaid with
// per-date additions/removals (calendar_dates.txt). Either source may be
// absent; a calendar built from calendar_dates.txt alone has
// HasWeekdayRange == false.
type ServiceCalendar struct {
	HasWeekdayRange bool
	StartDate       Date
	EndDate         Date
	Weekdays        [7]bool // index by time.Weekday

	exceptions map[Date]ExceptionType
}

// NewServiceCalendar returns an empty calendar with no weekday range.
func NewServiceCalendar() *ServiceCalendar {
	return &ServiceCalendar{exceptions: make(map[Date]ExceptionType)}
}

// SetWeekdayRange installs the calendar.txt portion of the calendar.
func (c *ServiceCalendar) SetWeekdayRange(start, end Date, weekdays [7]bool) {
	c.HasWeekdayRange = true
	c.StartDate = start
	c.EndDate = end
	c.Weekdays = weekdays
}

// AddException records a calendar_dates.txt row.
func (c *ServiceCalendar) AddException(d Date, t ExceptionType) {
	c.exceptions[d] = t
}

// IsActive reports whether the service runs on d: the weekday-range rule
// first, then exceptions override it (spec §4.6.1 "exceptions win").
func (c *ServiceCalendar) IsActive(d Date) bool {
	active := false
	if c.HasWeekdayRange && !d.Before(c.StartDate) && !d.After(c.EndDate) {
		active = c.Weekdays[d.Weekday()]
	}
	if ex, ok := c.exceptions[d]; ok {
		switch ex {
		case ExceptionAdded:
			active = true
		case ExceptionRemoved:
			active = false
		}
	}
	return active
}

// DatePolicyKind enumerates the date-mapping strategies a schedule bundle
// may use to find a calendar date to substitute for an out-of-range or
// inactive query date (spec §4.6.1 "date mapping policies").
type DatePolicyKind int

const (
	// ExactDate requires the query date itself to be active; no remap.
	ExactDate DatePolicyKind = iota
	// ExactDateRange accepts any active date within [start,end], no remap.
	ExactDateRange
	// NearestDate searches outward day-by-day up to Tolerance days,
	// optionally requiring the same weekday as the query date.
	NearestDate
	// NearestDateRange is NearestDate but the candidate must itself fall
	// in [RangeStart,RangeEnd].
	NearestDateRange
	// ExactDateTimeRange additionally bounds the seconds-since-midnight of
	// the query to [MinSeconds,MaxSeconds] before accepting an exact match.
	ExactDateTimeRange
	// NearestDateTimeRange combines NearestDate's search with the
	// seconds-since-midnight bound of ExactDateTimeRange.
	NearestDateTimeRange
	// BestCase accepts the query date if active, else the nearest active
	// date within Tolerance sharing the query's weekday, else the nearest
	// active date within Tolerance on any weekday; when none is found it
	// returns the query date itself with ok=true.
	BestCase
)

// DatePolicy configures one of the DatePolicyKind strategies (spec
// §4.6.1). Only the fields relevant to Kind are consulted.
type DatePolicy struct {
	Kind             DatePolicyKind
	Tolerance        int  // NearestDate / NearestDateRange / BestCase: max days to search outward
	MatchWeekday     bool // NearestDate / NearestDateRange: candidate must share the query's weekday
	RangeStart       Date // *DateRange kinds
	RangeEnd         Date
	MinSeconds       int // *DateTimeRange kinds
	MaxSeconds       int
}

// PickDate resolves queryDate (and, for the *DateTimeRange kinds,
// querySeconds) against cal per p, returning the calendar date whose
// schedule should actually be consulted and whether a usable date was
// found at all (spec §4.6.1).
func PickDate(p DatePolicy, cal *ServiceCalendar, queryDate Date, querySeconds int) (Date, bool) {
	switch p.Kind {
	case ExactDate:
		if cal.IsActive(queryDate) {
			return queryDate, true
		}
		return Date{}, false

	case ExactDateRange:
		if !queryDate.Before(p.RangeStart) && !queryDate.After(p.RangeEnd) && cal.IsActive(queryDate) {
			return queryDate, true
		}
		return Date{}, false

	case ExactDateTimeRange:
		if querySeconds < p.MinSeconds || querySeconds > p.MaxSeconds {
			return Date{}, false
		}
		if cal.IsActive(queryDate) {
			return queryDate, true
		}
		return Date{}, false

	case NearestDate:
		return nearestActiveDate(cal, queryDate, p.Tolerance, p.MatchWeekday)

	case NearestDateRange:
		found, ok := nearestActiveDate(cal, queryDate, p.Tolerance, p.MatchWeekday)
		if !ok || found.Before(p.RangeStart) || found.After(p.RangeEnd) {
			return Date{}, false
		}
		return found, true

	case NearestDateTimeRange:
		if querySeconds < p.MinSeconds || querySeconds > p.MaxSeconds {
			return Date{}, false
		}
		return nearestActiveDate(cal, queryDate, p.Tolerance, p.MatchWeekday)

	case BestCase:
		if cal.IsActive(queryDate) {
			return queryDate, true
		}
		if found, ok := nearestActiveDate(cal, queryDate, p.Tolerance, true); ok {
			return found, true
		}
		if found, ok := nearestActiveDate(cal, queryDate, p.Tolerance, false); ok {
			return found, true
		}
		return queryDate, true

	default:
		return Date{}, false
	}
}

// nearestActiveDate searches outward from queryDate by increasing day
// offset (0, -1, +1, -2, +2, ...) up to tolerance days, returning the
// first active date found. Ties at equal distance favor the earlier date,
// matching a stable outward expansion.
func nearestActiveDate(cal *ServiceCalendar, queryDate Date, tolerance int, matchWeekday bool) (Date, bool) {
	type candidate struct {
		offset int
		date   Date
	}
	var candidates []candidate
	for off := 0; off <= tolerance; off++ {
		if off == 0 {
			candidates = append(candidates, candidate{0, queryDate})
			continue
		}
		candidates = append(candidates,
			candidate{off, queryDate.AddDays(-off)},
			candidate{off, queryDate.AddDays(off)},
		)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].offset != candidates[j].offset {
			return candidates[i].offset < candidates[j].offset
		}
		return candidates[i].date.Before(candidates[j].date)
	})
	for _, c := range candidates {
		if matchWeekday && c.date.Weekday() != queryDate.Weekday() {
			continue
		}
		if cal.IsActive(c.date) {
			return c.date, true
		}
	}
	return Date{}, false
}
