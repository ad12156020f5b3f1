package output

import (
	"errors"
	"fmt"
	"sort"
)

// ErrKeyNotFound is the sentinel every *KeyNotFoundError wraps, so callers
// can test with errors.Is regardless of the diagnostic payload.
var ErrKeyNotFound = errors.New("output: key not found")

// maxSiblingKeys bounds the diagnostic sibling-key list spec §4.12 requires
// on a missing-key error.
const maxSiblingKeys = 5

// Document is the nested-map value produced per origin (spec §3): maps of
// string keys to either scalars, further Documents, or slices thereof.
// Path-addressed helpers below only ever descend through map levels — array
// path segments are not supported, per spec §4.12.
type Document = map[string]interface{}

// KeyNotFoundError is returned by GetNested/InsertNested when a path
// component is missing, carrying the path walked so far and (truncated to
// 5) the sibling keys actually present at that level, for diagnostics.
type KeyNotFoundError struct {
	Path     []string
	Missing  string
	Siblings []string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("output: key %q not found at path %v (siblings: %v)", e.Missing, e.Path, e.Siblings)
}

// Unwrap lets errors.Is(err, ErrKeyNotFound) succeed.
func (e *KeyNotFoundError) Unwrap() error { return ErrKeyNotFound }

func siblingKeys(m Document) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > maxSiblingKeys {
		keys = keys[:maxSiblingKeys]
	}
	return keys
}

// GetNested walks path inside doc and returns the value found at its end.
func GetNested(doc Document, path ...string) (interface{}, error) {
	var cur interface{} = doc
	for i, key := range path {
		m, ok := cur.(Document)
		if !ok {
			return nil, &KeyNotFoundError{Path: path[:i], Missing: key}
		}
		v, ok := m[key]
		if !ok {
			return nil, &KeyNotFoundError{Path: path[:i], Missing: key, Siblings: siblingKeys(m)}
		}
		cur = v
	}
	return cur, nil
}

// navigate descends doc through path, requiring every intermediate level to
// already exist as a Document.
func navigate(doc Document, path []string) (Document, error) {
	cur := doc
	for i, key := range path {
		v, ok := cur[key]
		if !ok {
			return nil, &KeyNotFoundError{Path: path[:i], Missing: key, Siblings: siblingKeys(cur)}
		}
		m, ok := v.(Document)
		if !ok {
			return nil, &KeyNotFoundError{Path: path[:i], Missing: key}
		}
		cur = m
	}
	return cur, nil
}

// InsertNested sets doc[path...][key] = value, requiring every intermediate
// map along path to already exist. If overwrite is false and a value is
// already present at key, the existing value is left untouched.
func InsertNested(doc Document, path []string, key string, value interface{}, overwrite bool) error {
	m, err := navigate(doc, path)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, exists := m[key]; exists {
			return nil
		}
	}
	m[key] = value
	return nil
}

// InsertNestedWithParents is like InsertNested but creates any missing
// intermediate maps along path instead of failing.
func InsertNestedWithParents(doc Document, path []string, key string, value interface{}, overwrite bool) {
	cur := doc
	for _, k := range path {
		next, ok := cur[k].(Document)
		if !ok {
			next = make(Document)
			cur[k] = next
		}
		cur = next
	}
	if !overwrite {
		if _, exists := cur[key]; exists {
			return
		}
	}
	cur[key] = value
}

// ScaffoldTimeBin guarantees doc["bin"][maxTime]["info"]["time_bin"] exists,
// creating every intermediate map as needed (spec §4.12).
func ScaffoldTimeBin(doc Document, maxTime string) {
	InsertNestedWithParents(doc, []string{"bin", maxTime, "info"}, "time_bin", maxTime, false)
}
