// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Network.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo when the goal was never discovered.
	ErrUnreachable = errors.New("bfs: station unreachable")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a station. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(uid int, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth (in hops).
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip links by returning false.
	// Called for each link curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// StopAt, if > 0, ends the search as soon as that station is visited.
	StopAt int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op OnVisit hook
//   - no early stop.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(uid int, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithStopAt ends the search once uid has been visited.
// Non-positive ids are rejected with ErrOptionViolation.
func WithStopAt(uid int) Option {
	return func(o *BFSOptions) {
		if uid <= 0 {
			o.err = fmt.Errorf("%w: StopAt must be a positive uid (%d)", ErrOptionViolation, uid)
			return
		}
		o.StopAt = uid
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Start: the station the search was seeded with.
//   - Order: stations visited, in visit sequence.
//   - Depth: map from station uid to its distance (in hops) from the start.
//   - Parent: predecessor map, station uid → uid of the station that discovered it.
type BFSResult struct {
	Start  int
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Reached reports whether uid was discovered by the search.
func (r *BFSResult) Reached(uid int) bool {
	_, ok := r.Depth[uid]

	return ok
}

// PathTo reconstructs the path from the start station to dest by walking the
// predecessor map backward and reversing it.
// Returns ErrUnreachable if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: no path to %d", ErrUnreachable, dest)
	}
	// build reversed path
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
