// Package bfs provides breadth-first search over a core.Network,
// returning unweighted shortest-path distances, predecessor links, and visit order.
//
// What
//
//   - Explore stations in non-decreasing hop count from a start station.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from station uid → hops from start
//   - Parent: predecessor map, station uid → uid that discovered it
//   - ShortestPath wraps BFS for the common start→goal query and stops as soon
//     as the goal is visited.
//
// Determinism
//
//	core.Station.Neighbors returns neighbours sorted by uid and BFS enqueues them
//	in that order. When several shortest paths of equal hop count exist, the
//	one found through lower uids wins, on every run.
//
// Complexity (V = stations, E = links)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, Depth, Parent and visited set
//
// Usage
//
//	path, err := bfs.ShortestPath(net, 1, 3)
//	if err != nil {
//		// errors.Is(err, core.ErrNotFound) for unknown stations
//	}
//	if len(path) == 0 {
//		// no route: the stations are in different components
//	}
//
// Options
//
//   - WithContext(ctx):        set a custom context for cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):  skip links for which fn(curr,neighbor)==false.
//   - WithOnVisit(fn):         hook during visit; returning error aborts BFS.
//   - WithStopAt(uid):         end the search once uid is visited.
//
// Errors
//
//   - ErrNetworkNil       if the network pointer is nil.
//   - core.ErrNotFound    (wrapped) if the start or goal station does not exist.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrUnreachable      from BFSResult.PathTo for undiscovered stations.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
