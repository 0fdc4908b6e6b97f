// Package dfs defines types and options for depth-first traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNetworkNil is returned when a nil *core.Network is passed.
	ErrNetworkNil = errors.New("dfs: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a station is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(uid int) error

	// OnExit, if non-nil, is invoked once all descendants of a station have
	// been explored (post-order). Returning an error aborts traversal.
	OnExit func(uid int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start station. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, decides whether to descend into a neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// FullTraversal restarts from every unvisited station, in uid order.
	FullTraversal bool

	err error
}

// DefaultOptions returns Background context, no hooks, no depth limit,
// no filter and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(uid int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(uid int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth. Negative values other than -1 are
// recorded as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth=%d", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers every component instead of the start's only.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records stations in the sequence they finished (post-order).
	Order []int

	// Depth maps each station to its tree depth from its root.
	Depth map[int]int

	// Parent maps each station to the station it was discovered from.
	// Roots do not appear.
	Parent map[int]int

	// Roots lists the station each tree was started from, in start order.
	Roots []int

	// Visited flags which stations were reached.
	Visited map[int]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
