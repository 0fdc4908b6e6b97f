// Package bfs provides breadth-first search over a core.Network,
// returning unweighted shortest-path distances, predecessor links, and visit order.
//
// BFS explores stations in increasing hop count from a start station,
// with an optional visit hook, depth limiting, neighbor filtering and early stop.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/metro/core"
)

// queueItem pairs a station with its BFS depth.
type queueItem struct {
	station *core.Station
	depth   int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on net starting from startUID,
// applying any number of functional Options.
// Returns ErrNetworkNil for a nil network, an error wrapping core.ErrNotFound
// for an unknown start, ErrOptionViolation for bad options, the context error
// on cancellation, or any user-supplied hook error.
//
// Neighbours are expanded in ascending uid order, so the visit order and the
// chosen shortest path are reproducible.
func BFS(net *core.Network, startUID int, opts ...Option) (*BFSResult, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, err := net.Station(startUID)
	if err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}

	n := net.StationCount()
	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Start:  startUID,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed queue with start station (no parent)
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks st visited at depth d, records its predecessor,
// and adds it to the queue.
func (w *walker) enqueue(st *core.Station, d int, parent *core.Station) {
	w.visited[st.UID] = true
	w.res.Depth[st.UID] = d
	if parent != nil {
		w.res.Parent[st.UID] = parent.UID
	}
	w.queue = append(w.queue, queueItem{station: st, depth: d})
}

// loop processes the queue until empty, early stop, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.StopAt > 0 && item.station.UID == w.opts.StopAt {
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the station in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.station.UID)
	if err := w.opts.OnVisit(item.station.UID, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.station.UID, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range item.station.Neighbors() {
		if !w.opts.FilterNeighbor(item.station.UID, nbr.UID) {
			continue
		}
		// first time seen?
		if !w.visited[nbr.UID] {
			w.enqueue(nbr, nextDepth, item.station)
		}
	}
}

// ShortestPath returns the fewest-hop route from start to goal, both inclusive.
//
//   - start == goal yields the single-station path (zero hops).
//   - An unreachable goal yields an empty, non-nil slice and a nil error;
//     callers must check the length before pricing or rendering.
//   - Unknown stations yield an error wrapping core.ErrNotFound.
//
// The search always runs from the lower uid of the pair and the result is
// reversed when start > goal, so ShortestPath(a, b) and ShortestPath(b, a)
// return the same stations in opposite order. Options therefore see the
// search from the lower uid.
//
// Complexity: O(V + E) per query.
func ShortestPath(net *core.Network, start, goal int, opts ...Option) ([]*core.Station, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	from, err := net.Station(start)
	if err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}
	to, err := net.Station(goal)
	if err != nil {
		return nil, fmt.Errorf("bfs: goal: %w", err)
	}
	if from == to {
		return []*core.Station{from}, nil
	}

	src, dst := start, goal
	if src > dst {
		src, dst = dst, src
	}
	res, err := BFS(net, src, append(opts, WithStopAt(dst))...)
	if err != nil {
		return nil, err
	}
	ids, err := res.PathTo(dst)
	if err != nil {
		return []*core.Station{}, nil
	}
	if src != start {
		for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
			ids[i], ids[j] = ids[j], ids[i]
		}
	}

	path := make([]*core.Station, len(ids))
	for i, uid := range ids {
		if path[i], err = net.Station(uid); err != nil {
			return nil, err
		}
	}

	return path, nil
}
