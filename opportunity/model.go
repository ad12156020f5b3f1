package opportunity

import "errors"

// ErrDimensionMismatch is returned when a Tabular's Set call supplies a
// values slice of the wrong width.
var ErrDimensionMismatch = errors.New("opportunity: dimension mismatch")

// ErrRowOutOfRange is returned when a row index falls outside a Tabular's
// backing store.
var ErrRowOutOfRange = errors.New("opportunity: row out of range")

// Model is an opportunity source: a set of named activity types and, for
// any row that it covers, a vector of per-activity counts.
type Model interface {
	ActivityTypes() []string
	Width() int
	Orientation() Orientation
	CountsFor(row RowID) ([]float64, bool)
}

// Tabular is the counts matrix [|V| x K] form of spec §3: one row per
// vertex (or per edge, depending on Orientation), one column per activity
// type.
type Tabular struct {
	activityTypes []string
	orientation   Orientation
	rows          [][]float64
}

// NewTabular allocates a zeroed Tabular with nRows rows (one per vertex or
// edge id, depending on orientation) and len(activityTypes) columns.
func NewTabular(activityTypes []string, orientation Orientation, nRows int) *Tabular {
	rows := make([][]float64, nRows)
	for i := range rows {
		rows[i] = make([]float64, len(activityTypes))
	}
	return &Tabular{
		activityTypes: append([]string(nil), activityTypes...),
		orientation:   orientation,
		rows:          rows,
	}
}

// ActivityTypes implements Model.
func (t *Tabular) ActivityTypes() []string { return t.activityTypes }

// Width implements Model.
func (t *Tabular) Width() int { return len(t.activityTypes) }

// Orientation implements Model.
func (t *Tabular) Orientation() Orientation { return t.orientation }

// Set overwrites the counts row for the given vertex/edge index.
func (t *Tabular) Set(rowIdx int, values []float64) error {
	if rowIdx < 0 || rowIdx >= len(t.rows) {
		return ErrRowOutOfRange
	}
	if len(values) != len(t.activityTypes) {
		return ErrDimensionMismatch
	}
	copy(t.rows[rowIdx], values)
	return nil
}

// Add accumulates values onto the counts row for the given vertex/edge index.
func (t *Tabular) Add(rowIdx int, values []float64) error {
	if rowIdx < 0 || rowIdx >= len(t.rows) {
		return ErrRowOutOfRange
	}
	if len(values) != len(t.activityTypes) {
		return ErrDimensionMismatch
	}
	for i, v := range values {
		t.rows[rowIdx][i] += v
	}
	return nil
}

// rowIndex resolves a RowID to this Tabular's backing row index. Edge
// orientation ignores EdgeListID: a Tabular covers a single edge-list (a
// Combined model is how multiple edge-lists' opportunities are unioned).
func (t *Tabular) rowIndex(row RowID) (int, bool) {
	if row.Orientation != t.orientation {
		return 0, false
	}
	if t.orientation == Edge {
		return row.EdgeID, true
	}
	return row.VertexLabel, true
}

// CountsFor implements Model.
func (t *Tabular) CountsFor(row RowID) ([]float64, bool) {
	idx, ok := t.rowIndex(row)
	if !ok || idx < 0 || idx >= len(t.rows) {
		return nil, false
	}
	return t.rows[idx], true
}

// Combined unions several Model instances over the same row id space,
// concatenating their count vectors with right-padding (spec §4.11,
// invariant 10, §8): a row reached only by model i receives zeros for every
// other model's width.
type Combined struct {
	models []Model
	widths []int
	total  int
}

// NewCombined builds a Combined model over the given inner models, in order.
func NewCombined(models ...Model) *Combined {
	widths := make([]int, len(models))
	total := 0
	for i, m := range models {
		widths[i] = m.Width()
		total += m.Width()
	}
	return &Combined{models: models, widths: widths, total: total}
}

// ActivityTypes implements Model, concatenating every inner model's types.
func (c *Combined) ActivityTypes() []string {
	out := make([]string, 0, c.total)
	for _, m := range c.models {
		out = append(out, m.ActivityTypes()...)
	}
	return out
}

// Width implements Model.
func (c *Combined) Width() int { return c.total }

// Orientation implements Model, reporting the first inner model's
// orientation. Combined is meant to union models that already share an
// orientation (e.g. several per-edge-list Tabular models).
func (c *Combined) Orientation() Orientation {
	if len(c.models) == 0 {
		return OriginVertex
	}
	return c.models[0].Orientation()
}

// CountsFor implements Model. A row absent from every inner model reports
// (nil, false); a row present in at least one gets a full-width vector with
// zeros standing in for the models that did not cover it.
func (c *Combined) CountsFor(row RowID) ([]float64, bool) {
	out := make([]float64, 0, c.total)
	found := false
	for i, m := range c.models {
		if vals, ok := m.CountsFor(row); ok {
			found = true
			out = append(out, vals...)
		} else {
			out = append(out, make([]float64, c.widths[i])...)
		}
	}
	if !found {
		return nil, false
	}
	return out, true
}
