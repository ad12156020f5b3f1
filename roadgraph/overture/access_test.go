package overture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scenario 7 (spec §8): Segment with {Denied(backward), Designated(HGV)}.
func TestEvaluateAccess_DeniedBackwardDesignatedHGV(t *testing.T) {
	backward := HeadingBackward
	hgv := "HGV"
	car := "car"

	restrictions := []Restriction{
		{Access: Denied, Heading: &backward},
		{Access: Designated, Mode: &hgv},
	}

	assert.True(t, EvaluateAccess(restrictions, AccessQuery{Heading: HeadingForward, Mode: hgv}))
	assert.False(t, EvaluateAccess(restrictions, AccessQuery{Heading: HeadingBackward, Mode: hgv}))
	assert.True(t, EvaluateAccess(restrictions, AccessQuery{Heading: HeadingForward, Mode: car}))
}

func TestEvaluateAccess_NoRestrictionsAlwaysAllowed(t *testing.T) {
	assert.True(t, EvaluateAccess(nil, AccessQuery{Heading: HeadingForward, Mode: "car"}))
}

func TestEvaluateAccess_GeneralDenialBlocksBothHeadings(t *testing.T) {
	restrictions := []Restriction{{Access: Denied}}
	assert.False(t, EvaluateAccess(restrictions, AccessQuery{Heading: HeadingForward, Mode: "car"}))
	assert.False(t, EvaluateAccess(restrictions, AccessQuery{Heading: HeadingBackward, Mode: "car"}))
}

func TestEvaluateAccess_VehicleDimsOverLimit(t *testing.T) {
	limit := 10.0
	restrictions := []Restriction{{Access: Denied, Vehicle: &VehicleDims{MaxLengthMeters: &limit}}}
	tooLong := 12.0
	ok := 8.0

	assert.False(t, EvaluateAccess(restrictions, AccessQuery{
		Heading: HeadingForward, Mode: "car", Vehicle: &VehicleDims{MaxLengthMeters: &tooLong},
	}))
	assert.True(t, EvaluateAccess(restrictions, AccessQuery{
		Heading: HeadingForward, Mode: "car", Vehicle: &VehicleDims{MaxLengthMeters: &ok},
	}))
}
