package transit

import (
	"github.com/geops/gtfsparser"
	"github.com/geops/gtfsparser/gtfs"
)

// FromGTFSParserFeed converts a parsed github.com/geops/gtfsparser.Feed
// into the library-independent Feed this package's scheduling logic
// consumes, so ImportGTFS and everything downstream of it never touches
// gtfsparser's own types directly.
func FromGTFSParserFeed(src *gtfsparser.Feed) *Feed {
	f := &Feed{
		StopTimes: make(map[string][]StopTime),
		Calendars: make(map[string]*ServiceCalendar),
	}

	for _, a := range src.Agencies {
		f.Agencies = append(f.Agencies, Agency{ID: a.Id, Name: a.Name})
	}

	for _, s := range src.Stops {
		stop := Stop{ID: s.Id, Lat: float64(s.Lat), Lon: float64(s.Lon), HasLocation: true}
		if s.Parent_station != nil {
			stop.ParentStation = s.Parent_station.Id
		}
		f.Stops = append(f.Stops, stop)
	}

	for _, r := range src.Routes {
		route := Route{ID: r.Id, ShortName: r.Short_name, LongName: r.Long_name}
		if r.Agency != nil {
			route.AgencyID = r.Agency.Id
		}
		f.Routes = append(f.Routes, route)
	}

	for _, t := range src.Trips {
		trip := Trip{ID: t.Id}
		if t.Route != nil {
			trip.RouteID = t.Route.Id
		}
		if t.Service != nil {
			trip.ServiceID = t.Service.Id()
			if _, ok := f.Calendars[trip.ServiceID]; !ok {
				f.Calendars[trip.ServiceID] = serviceCalendarFromGTFS(t.Service)
			}
		}
		f.Trips = append(f.Trips, trip)

		stopTimes := make([]StopTime, 0, len(t.StopTimes))
		for _, st := range t.StopTimes {
			stopID := ""
			if st.Stop() != nil {
				stopID = st.Stop().Id
			}
			stopTimes = append(stopTimes, StopTime{
				TripID:           t.Id,
				StopID:           stopID,
				Sequence:         int(st.Sequence()),
				ArrivalSeconds:   st.Arrival_time().SecondsSinceMidnight(),
				DepartureSeconds: st.Departure_time().SecondsSinceMidnight(),
			})
		}
		f.StopTimes[t.Id] = stopTimes
	}

	return f
}

// serviceCalendarFromGTFS folds a gtfs.Service's weekday range and
// exceptions map into our ServiceCalendar shape (spec §4.6.1).
func serviceCalendarFromGTFS(svc *gtfs.Service) *ServiceCalendar {
	cal := NewServiceCalendar()
	cal.SetWeekdayRange(
		dateFromGTFS(svc.Start_date()),
		dateFromGTFS(svc.End_date()),
		svc.Daymap(),
	)
	for d, added := range svc.Exceptions() {
		typ := ExceptionRemoved
		if added {
			typ = ExceptionAdded
		}
		cal.AddException(dateFromGTFS(d), typ)
	}
	return cal
}

func dateFromGTFS(d gtfs.Date) Date {
	return Date{Year: d.Year(), Month: int(d.Month()), Day: d.Day()}
}
