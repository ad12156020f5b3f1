package overture

// EvaluateAccess implements spec §4.5.1's mode-access evaluation: whether
// query's heading is usable given segment restrictions.
func EvaluateAccess(restrictions []Restriction, query AccessQuery) bool {
	var headingSpecific, general []Restriction
	for _, r := range restrictions {
		if !applies(r, query) {
			continue
		}
		if r.Heading != nil {
			headingSpecific = append(headingSpecific, r)
		} else {
			general = append(general, r)
		}
	}

	hsDenied, hsAllowed := partition(headingSpecific, query.Heading)
	genDenied, genAllowed := partition(general, query.Heading)

	if len(hsDenied) > 0 {
		return len(hsAllowed) > 0
	}
	if len(genDenied) > 0 {
		return len(genAllowed) > 0 || len(hsAllowed) > 0
	}
	return true
}

// applies implements step 1: a restriction applies if its heading is nil
// or matches, and every one of its non-nil mode/using/recognized/vehicle
// constraints is satisfied by the query — except when the query itself is
// fully unconstrained, in which case only a restriction that is itself
// unconstrained on mode/using/recognized applies.
func applies(r Restriction, q AccessQuery) bool {
	if r.Heading != nil && *r.Heading != q.Heading {
		return false
	}

	queryUnconstrained := q.Mode == "" && q.Using == nil && q.Recognized == nil
	if queryUnconstrained {
		return r.Mode == nil && r.Using == nil && r.Recognized == nil
	}

	if r.Mode != nil && *r.Mode != q.Mode {
		return false
	}
	if r.Using != nil && (q.Using == nil || *r.Using != *q.Using) {
		return false
	}
	if r.Recognized != nil && (q.Recognized == nil || *r.Recognized != *q.Recognized) {
		return false
	}
	if r.Vehicle != nil && !vehicleTriggers(r.Vehicle, q.Vehicle) {
		return false
	}
	return true
}

// vehicleTriggers reports whether query's dimensions trigger restriction
// (a "vehicles over X prohibited" style limit: the restriction applies
// once the query vehicle exceeds any dimension restriction names).
func vehicleTriggers(restriction, query *VehicleDims) bool {
	if query == nil {
		return false
	}
	if restriction.MaxLengthMeters != nil {
		if query.MaxLengthMeters != nil && *query.MaxLengthMeters > *restriction.MaxLengthMeters {
			return true
		}
	}
	if restriction.MaxWeightKg != nil {
		if query.MaxWeightKg != nil && *query.MaxWeightKg > *restriction.MaxWeightKg {
			return true
		}
	}
	return false
}

// partition splits restrictions (already filtered to those matching
// query.Heading's applicability) into Denied and Allowed|Designated sets,
// keeping only restrictions with no heading or a heading equal to
// query.Heading (applies already filtered on this, so this only sorts by
// access type).
func partition(restrictions []Restriction, heading Heading) (denied, allowed []Restriction) {
	for _, r := range restrictions {
		switch r.Access {
		case Denied:
			denied = append(denied, r)
		case Allowed, Designated:
			allowed = append(allowed, r)
		}
	}
	return denied, allowed
}
