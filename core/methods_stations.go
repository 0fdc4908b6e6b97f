// SPDX-License-Identifier: MIT
//
// File: methods_stations.go
// Role: Two-phase station load and station queries.
// Determinism:
//   - Stations() and Station.Neighbors() are sorted by UID ascending.
package core

import (
	"fmt"
	"sort"
	"strings"
)

// LoadStations builds a Network from station records.
//
// Implementation:
//   - Stage 1: instantiate every station by uid/name, rejecting duplicate ids,
//     empty names and names that collide case-insensitively.
//   - Stage 2: resolve each neighbour list by id lookup. Neighbour lists may
//     reference stations that appear later in the data, hence the second pass.
//   - Stage 3: mirror one-sided neighbour declarations so adjacency is symmetric.
//
// Errors:
//   - ErrDataFormat (wrapped with the 1-based record number) on any malformed record,
//     unknown neighbour id, duplicate uid or self reference.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func LoadStations(records []Record, opts ...Option) (*Network, error) {
	n := newNetwork(opts...)

	created := make([]*Station, len(records))
	for i, rec := range records {
		st, err := n.instantiate(rec)
		if err != nil {
			return nil, fmt.Errorf("station record %d: %w", i+1, err)
		}
		created[i] = st
	}

	for i, rec := range records {
		if err := n.resolveNeighbours(created[i], rec); err != nil {
			return nil, fmt.Errorf("station record %d: %w", i+1, err)
		}
	}

	mirrored := 0
	for _, st := range created {
		for _, nb := range st.Neighbors() {
			if _, ok := nb.neighbours[st.UID]; ok {
				continue
			}
			nb.neighbours[st.UID] = st
			mirrored++
			n.log.Debug("mirrored one-sided neighbour link", "from", st.UID, "to", nb.UID)
		}
	}

	n.log.Info("stations loaded", "stations", len(n.stations), "mirrored", mirrored)

	return n, nil
}

// instantiate creates and registers the station described by rec.
func (n *Network) instantiate(rec Record) (*Station, error) {
	rawUID, err := rec.Field(FieldUID)
	if err != nil {
		return nil, err
	}
	uid, err := ParseUID(rawUID)
	if err != nil {
		return nil, err
	}
	name, err := rec.Field(FieldName)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dataFormatf("station %d has an empty name", uid)
	}
	if _, dup := n.stations[uid]; dup {
		return nil, dataFormatf("duplicate station uid %d", uid)
	}
	key := foldName(name)
	if other, dup := n.byName[key]; dup {
		return nil, dataFormatf("station name %q of %d is ambiguous with station %d", name, uid, other.UID)
	}

	st := &Station{
		UID:        uid,
		Name:       name,
		neighbours: make(map[int]*Station),
		lines:      make(map[string]struct{}),
	}
	n.stations[uid] = st
	n.byName[key] = st

	return st, nil
}

// resolveNeighbours links st to every station listed in rec's neighbour field.
func (n *Network) resolveNeighbours(st *Station, rec Record) error {
	raw, err := rec.Field(FieldNeighbours)
	if err != nil {
		return err
	}
	ids, err := SplitUIDs(raw, n.listDelim)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == st.UID {
			return dataFormatf("station %d lists itself as a neighbour", st.UID)
		}
		nb, ok := n.stations[id]
		if !ok {
			return dataFormatf("station %d references unknown neighbour %d", st.UID, id)
		}
		st.neighbours[id] = nb
	}

	return nil
}

// Station returns the station with the given uid.
// Errors: ErrNotFound if no such station exists.
func (n *Network) Station(uid int) (*Station, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	st, ok := n.stations[uid]
	if !ok {
		return nil, fmt.Errorf("%w: station %d", ErrNotFound, uid)
	}

	return st, nil
}

// StationByName returns the station whose name equals name case-insensitively.
// There is no fuzzy matching; ok is false when nothing matches.
func (n *Network) StationByName(name string) (st *Station, ok bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	st, ok = n.byName[foldName(name)]

	return st, ok
}

// HasStation reports whether uid names a loaded station.
func (n *Network) HasStation(uid int) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, ok := n.stations[uid]

	return ok
}

// Stations returns all stations sorted by UID ascending.
func (n *Network) Stations() []*Station {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]*Station, 0, len(n.stations))
	for _, st := range n.stations {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })

	return out
}

// StationCount returns the number of stations.
func (n *Network) StationCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.stations)
}

// Adjacent reports whether stations a and b are directly connected.
// Unknown ids are never adjacent.
func (n *Network) Adjacent(a, b int) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	st, ok := n.stations[a]
	if !ok {
		return false
	}
	_, ok = st.neighbours[b]

	return ok
}
