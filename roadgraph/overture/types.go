package overture

// Restriction is one entry of a Segment's access_restrictions list (spec
// §4.5.1): each field is nil when unconstrained on that axis.
type Restriction struct {
	Access    AccessType
	Heading   *Heading
	Mode      *string
	Using     *string
	Recognized *string
	Vehicle   *VehicleDims
}

// AccessType mirrors OvertureMaps' access_restrictions.access enum.
type AccessType int

const (
	Denied AccessType = iota
	Allowed
	Designated
)

// Heading selects which travel direction a Restriction applies to.
type Heading int

const (
	HeadingForward Heading = iota
	HeadingBackward
)

// VehicleDims is a vehicle-dimension constraint, normalized to SI (meters,
// kilograms) before comparison per spec §4.5.1.
type VehicleDims struct {
	MaxLengthMeters *float64
	MaxWeightKg     *float64
}

// AccessQuery is the candidate evaluated against a segment's restrictions:
// (heading, mode, using?, recognized?, vehicle?).
type AccessQuery struct {
	Heading    Heading
	Mode       string
	Using      *string
	Recognized *string
	Vehicle    *VehicleDims
}

// SpeedLimit is one between-bounded speed entry on a Segment.
type SpeedLimit struct {
	Between  [2]float64 // linear-reference range this speed applies to
	MaxSpeed *float64   // km/h; nil means unspecified
}

// SubclassRule assigns a subclass over a linear-reference sub-range when
// the segment's own Subclass field is absent.
type SubclassRule struct {
	Between  [2]float64
	Subclass string
}

// Connector is a shared point linking segments end-to-end (spec GLOSSARY).
type Connector struct {
	ID       string
	Lon, Lat float64
}

// Segment is the minimal OvertureMaps Transportation segment projection
// this package needs.
type Segment struct {
	ID           string
	Subtype      string
	Class        string
	Subclass     string // may be empty; see SubclassRules
	Geometry     [][2]float64
	Connectors   []SegmentConnector
	Restrictions []Restriction
	SpeedLimits  []SpeedLimit
	SubclassRules []SubclassRule
}

// SegmentConnector places a Connector at a linear-reference position
// along a Segment's polyline.
type SegmentConnector struct {
	ConnectorID string
	At          float64 // in [0,1]
}

// FullType is the (subtype, class, subclass?) triple spec §4.5.2 computes
// for each split.
type FullType struct {
	Subtype  string
	Class    string
	Subclass string // empty if absent from both the segment and its rules
}

// Edge is one split of a Segment between consecutive connectors, for one
// valid heading (spec §4.5.2).
type Edge struct {
	SegmentID  string
	FromConn   string
	ToConn     string
	Backward   bool
	Distance   float64
	Geometry   [][2]float64
	Speed      float64
	Type       FullType
}
