// Package ident mints the numeric identifiers used by videos and comments.
package ident

import "sync/atomic"

// Generator issues strictly increasing int64 identifiers, starting at 1.
//
// This is the one piece of state in the system that must tolerate concurrent
// callers: ids have to stay unique even if two goroutines mint at the same
// moment, so the counter is an atomic rather than a plain int64. Everything
// else in the entity graph assumes a single logical caller.
//
// The zero value is ready to use; construct one at process start and inject
// it wherever ids are minted. Ids are never reused — a removed comment's id
// stays retired for the life of the process.
type Generator struct {
	counter atomic.Int64
}

// Next returns an id strictly greater than every id this generator has
// issued before.
func (g *Generator) Next() int64 {
	return g.counter.Add(1)
}
