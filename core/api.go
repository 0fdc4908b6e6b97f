// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a loaded Network.
package core

// NetworkStats is a snapshot of catalog sizes.
type NetworkStats struct {
	Stations int
	Links    int // undirected neighbour pairs
	Lines    int
	Isolated int // stations without neighbours
}

// Stats produces a deterministic snapshot of the network sizes.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (n *Network) Stats() NetworkStats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	stats := NetworkStats{Stations: len(n.stations), Lines: len(n.lines)}
	degrees := 0
	for _, st := range n.stations {
		degrees += len(st.neighbours)
		if len(st.neighbours) == 0 {
			stats.Isolated++
		}
	}
	stats.Links = degrees / 2

	return stats
}
