// Package categorical implements a bijective string<->integer label store.
//
// A Mapping packs a deduplicated set of category names (travel modes, GTFS
// route ids, ...) into a dense range [0, n), so that the multimodal state
// vector (see package state) can carry those categories as cheap signed
// integers instead of strings. Once built from a deduplicated category list,
// a Mapping is immutable and safe for concurrent, lock-free reads.
package categorical

import "errors"

// ErrDuplicateCategory is returned by New when the input category list
// contains a repeated value.
var ErrDuplicateCategory = errors.New("categorical: duplicate category")

// Unset is the reserved label value denoting "no category assigned".
const Unset int64 = -1
