package output_test

import (
	"testing"

	"github.com/bambam/bambam/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNested_Found(t *testing.T) {
	doc := output.Document{"bin": output.Document{"900": output.Document{"isochrone": 1.5}}}
	v, err := output.GetNested(doc, "bin", "900", "isochrone")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
}

func TestGetNested_MissingReportsSiblings(t *testing.T) {
	doc := output.Document{"bin": output.Document{"900": output.Document{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6}}}
	_, err := output.GetNested(doc, "bin", "900", "missing")
	require.Error(t, err)

	var knf *output.KeyNotFoundError
	require.ErrorAs(t, err, &knf)
	assert.Equal(t, "missing", knf.Missing)
	assert.Len(t, knf.Siblings, 5, "sibling list truncated at 5")
	require.ErrorIs(t, err, output.ErrKeyNotFound)
}

func TestInsertNested_RespectsOverwriteFlag(t *testing.T) {
	doc := output.Document{"bin": output.Document{}}
	require.NoError(t, output.InsertNested(doc, []string{"bin"}, "isochrone", 1.0, false))
	require.NoError(t, output.InsertNested(doc, []string{"bin"}, "isochrone", 2.0, false))
	assert.Equal(t, 1.0, doc["bin"].(output.Document)["isochrone"])

	require.NoError(t, output.InsertNested(doc, []string{"bin"}, "isochrone", 2.0, true))
	assert.Equal(t, 2.0, doc["bin"].(output.Document)["isochrone"])
}

func TestInsertNestedWithParents_CreatesIntermediateMaps(t *testing.T) {
	doc := output.Document{}
	output.InsertNestedWithParents(doc, []string{"bin", "900", "info"}, "time_bin", "900", false)
	v, err := output.GetNested(doc, "bin", "900", "info", "time_bin")
	require.NoError(t, err)
	assert.Equal(t, "900", v)
}

func TestScaffoldTimeBin(t *testing.T) {
	doc := output.Document{}
	output.ScaffoldTimeBin(doc, "1800")
	v, err := output.GetNested(doc, "bin", "1800", "info", "time_bin")
	require.NoError(t, err)
	assert.Equal(t, "1800", v)
}
