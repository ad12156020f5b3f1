package transit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimestamp_Add_SaturatesAtInfinity(t *testing.T) {
	inf := Infinity()
	assert.Equal(t, inf, inf.Add(1))
	assert.Equal(t, inf, inf.Add(1_000_000_000))
	assert.Equal(t, inf, inf.Add(-5)) // Infinity is sticky in both directions
}

func TestTimestamp_Add_SaturatesAtNegInfinity(t *testing.T) {
	negInf := NegInfinity()
	assert.Equal(t, negInf, negInf.Add(-1))
	assert.Equal(t, negInf, negInf.Add(1))
}

func TestTimestamp_Add_SaturatesOnOverflow(t *testing.T) {
	near := Timestamp(math.MaxInt64 - 5)
	assert.Equal(t, Infinity(), near.Add(10))

	nearLow := Timestamp(math.MinInt64 + 5)
	assert.Equal(t, NegInfinity(), nearLow.Add(-10))
}

func TestTimestamp_Add_OrdinaryArithmeticUnaffected(t *testing.T) {
	ts := Timestamp(1_700_000_000)
	assert.EqualValues(t, 1_700_000_100, ts.Add(100))
	assert.EqualValues(t, 1_699_999_900, ts.Add(-100))
}

func TestComposeTimestamp_RollsPastMidnight(t *testing.T) {
	d := Date{Year: 2025, Month: 1, Day: 1}
	// GTFS allows seconds_since_midnight > 86400 (a trip past midnight).
	ts := ComposeTimestamp(d, 25*3600)
	next := ComposeTimestamp(Date{Year: 2025, Month: 1, Day: 2}, 3600)
	assert.Equal(t, next, ts)
}
