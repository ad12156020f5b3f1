package transit

// FlexZone is a GTFS-Flex deviated-service area (location_groups.txt /
// booking_rules.txt in the GTFS-Flex extension, spec SUPPLEMENTAL
// FEATURES "GTFS-Flex"): a polygon of stops served on-demand rather than
// at fixed stop locations. Ring is the zone boundary as a closed lon/lat
// polygon.
type FlexZone struct {
	ID   string
	Ring [][2]float64 // [lon, lat] pairs, first == last
}

// Centroid returns the zone's vertex-average centroid, the location at
// which a flex locator's LocateZone creates the zone's vertex.
func (z FlexZone) Centroid() (lon, lat float64) {
	if len(z.Ring) == 0 {
		return 0, 0
	}
	n := len(z.Ring)
	// A closed ring repeats its first point as its last; exclude the
	// duplicate so it isn't double-weighted.
	pts := z.Ring
	if n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	var sumLon, sumLat float64
	for _, p := range pts {
		sumLon += p[0]
		sumLat += p[1]
	}
	count := float64(len(pts))
	return sumLon / count, sumLat / count
}

// flexLocator adapts a set of FlexZones to the VertexLocator interface:
// LocateZone resolves a zone id to one shared vertex at the zone's
// centroid, and Locate delegates every coordinate lookup to the wrapped
// locator. Coordinates are not tested for containment in a zone.
type flexLocator struct {
	zones    map[string]FlexZone
	resolved map[string]int // zone id -> vertex id, assigned lazily
	next     VertexLocator  // delegate for non-flex stops
	create   func(lon, lat float64) int
}

// NewFlexLocator wraps delegate with flex-zone resolution: LocateZone
// resolves the id of a zone in zones to that zone's (lazily created)
// centroid vertex; Locate falls through to delegate for every coordinate.
func NewFlexLocator(zones []FlexZone, delegate VertexLocator, create func(lon, lat float64) int) VertexLocator {
	byID := make(map[string]FlexZone, len(zones))
	for _, z := range zones {
		byID[z.ID] = z
	}
	return &flexLocator{zones: byID, resolved: make(map[string]int), next: delegate, create: create}
}

// Locate implements VertexLocator by delegating to the wrapped locator;
// it does not consult the flex zones, which are reached through LocateZone.
func (f *flexLocator) Locate(lat, lon float64) (int, bool) {
	return f.next.Locate(lat, lon)
}

// LocateZone resolves a flex zone id directly, creating its centroid
// vertex on first use.
func (f *flexLocator) LocateZone(zoneID string) (int, bool) {
	if vid, ok := f.resolved[zoneID]; ok {
		return vid, true
	}
	z, ok := f.zones[zoneID]
	if !ok {
		return 0, false
	}
	lon, lat := z.Centroid()
	vid := f.create(lon, lat)
	f.resolved[zoneID] = vid
	return vid, true
}
