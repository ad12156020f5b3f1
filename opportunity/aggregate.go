package opportunity

// Destination is one entry of the search tree visited by C10/C11: the
// reached row and the reach time used for binning.
type Destination struct {
	Row       RowID
	ReachTime float64
}

// RowOpportunity pairs a RowID with the counts it resolved to and the time
// at which it was reached.
type RowOpportunity struct {
	Row       RowID
	Counts    []float64
	ReachTime float64
}

// CollectTripOpportunities implements spec §4.11's
// collect_trip_opportunities: for every destination reached by the search
// tree, looks up its counts in model and keeps the result, deduplicating
// rows reached via multiple paths by keeping the last-written entry.
// Destinations model does not cover are skipped.
func CollectTripOpportunities(destinations []Destination, model Model) []RowOpportunity {
	index := make(map[RowID]int, len(destinations))
	var result []RowOpportunity

	for _, d := range destinations {
		counts, ok := model.CountsFor(d.Row)
		if !ok {
			continue
		}
		ro := RowOpportunity{Row: d.Row, Counts: counts, ReachTime: d.ReachTime}
		if idx, exists := index[d.Row]; exists {
			result[idx] = ro
		} else {
			index[d.Row] = len(result)
			result = append(result, ro)
		}
	}
	return result
}

// AggregateBin sums opportunity counts per activity type over every row
// whose ReachTime falls in the half-open range [minTime, maxTime) — the
// per-time-bin rollup spec §4.11 describes.
func AggregateBin(rows []RowOpportunity, activityTypes []string, minTime, maxTime float64) map[string]float64 {
	totals := make(map[string]float64, len(activityTypes))
	for _, name := range activityTypes {
		totals[name] = 0
	}
	for _, r := range rows {
		if r.ReachTime < minTime || r.ReachTime >= maxTime {
			continue
		}
		for i, v := range r.Counts {
			if i >= len(activityTypes) {
				break
			}
			totals[activityTypes[i]] += v
		}
	}
	return totals
}
