// Package output implements the canonical output document (spec §3, §4.12,
// component C12): a JSON-like nested map per origin, with helpers to read
// and write named fields by path without supporting array segments.
package output
