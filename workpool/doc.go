// Package workpool implements the single data-parallel primitive spec §5
// assumes is available to every import pass: "map a pure function over a
// slice, possibly in parallel, preserving order where required".
//
// Built on golang.org/x/sync/errgroup rather than hand-rolled goroutine and
// WaitGroup bookkeeping, following the corpus convention observed in
// shivamshaw23-Hintro's go.mod.
package workpool
