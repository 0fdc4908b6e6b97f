package dfs

import (
	"fmt"

	"github.com/katalvlaran/metro/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	net  *core.Network
	opts DFSOptions
	res  *DFSResult
}

// DFS performs depth-first search on net. With WithFullTraversal it covers
// every component, starting each tree at the lowest unvisited uid and
// ignoring startUID; otherwise it starts only from startUID.
//
// Errors:
//
//   - ErrNetworkNil if net is nil.
//   - ErrOptionViolation for an invalid option.
//   - an error wrapping core.ErrNotFound if startUID is missing.
//   - context.Canceled if ctx is done.
//   - any error returned by OnVisit or OnExit, in which case Order is nil.
func DFS(net *core.Network, startUID int, opts ...Option) (*DFSResult, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	stations := net.Stations()
	res := &DFSResult{
		Order:   make([]int, 0, len(stations)),
		Depth:   make(map[int]int, len(stations)),
		Parent:  make(map[int]int, len(stations)),
		Visited: make(map[int]bool, len(stations)),
	}
	w := &dfsWalker{net: net, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, st := range stations {
			if res.Visited[st.UID] {
				continue
			}
			res.Roots = append(res.Roots, st.UID)
			if err := w.traverse(st, 0); err != nil {
				return res, err
			}
		}

		return res, nil
	}

	start, err := net.Station(startUID)
	if err != nil {
		return nil, fmt.Errorf("dfs: start: %w", err)
	}
	res.Roots = []int{startUID}
	if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits st at depth, recursing into unvisited neighbors.
func (w *dfsWalker) traverse(st *core.Station, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		w.res.Order = nil
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[st.UID] = true
	w.res.Depth[st.UID] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(st.UID); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", st.UID, err)
		}
	}

	for _, nb := range st.Neighbors() {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(st.UID, nb.UID) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nb.UID] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nb.UID] = st.UID
		if err := w.traverse(nb, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(st.UID); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", st.UID, err)
		}
	}

	w.res.Order = append(w.res.Order, st.UID)

	return nil
}
