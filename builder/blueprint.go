// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// blueprint.go - the mutable staging area constructors write into.
//
// Constructors never touch core directly: core.Network is immutable after
// load, so topology is staged here and emitted as records in one go.

package builder

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/metro/core"
)

// lineSpec is a staged line: name and ordered member uids.
type lineSpec struct {
	name string
	uids []int
}

// blueprint accumulates stations, links and lines.
type blueprint struct {
	links     map[int]map[int]struct{} // uid → neighbour uids (symmetric)
	lines     []lineSpec
	lineNames map[string]struct{}
}

func newBlueprint() *blueprint {
	return &blueprint{
		links:     make(map[int]map[int]struct{}),
		lineNames: make(map[string]struct{}),
	}
}

// addStation registers uid if missing (idempotent).
func (bp *blueprint) addStation(uid int) {
	if _, ok := bp.links[uid]; !ok {
		bp.links[uid] = make(map[int]struct{})
	}
}

// link connects a and b symmetrically, registering both stations.
func (bp *blueprint) link(a, b int) {
	bp.addStation(a)
	bp.addStation(b)
	bp.links[a][b] = struct{}{}
	bp.links[b][a] = struct{}{}
}

// addLine stages a line; reports false if the name is taken.
func (bp *blueprint) addLine(name string, uids []int) bool {
	if _, dup := bp.lineNames[name]; dup {
		return false
	}
	bp.lineNames[name] = struct{}{}
	members := make([]int, len(uids))
	copy(members, uids)
	bp.lines = append(bp.lines, lineSpec{name: name, uids: members})

	return true
}

// records emits station records sorted by uid and line records in staging order.
func (bp *blueprint) records(cfg builderConfig) (stations, lines []core.Record) {
	ids := make([]int, 0, len(bp.links))
	for uid := range bp.links {
		ids = append(ids, uid)
	}
	sort.Ints(ids)

	stations = make([]core.Record, 0, len(ids))
	for _, uid := range ids {
		nbrs := make([]int, 0, len(bp.links[uid]))
		for nb := range bp.links[uid] {
			nbrs = append(nbrs, nb)
		}
		sort.Ints(nbrs)
		stations = append(stations, core.Record{
			core.FieldUID:        strconv.Itoa(uid),
			core.FieldName:       cfg.nameOf(uid),
			core.FieldNeighbours: core.JoinUIDs(nbrs, cfg.listDelim),
		})
	}

	lines = make([]core.Record, 0, len(bp.lines))
	for _, l := range bp.lines {
		lines = append(lines, core.Record{
			core.FieldName:     l.name,
			core.FieldStations: core.JoinUIDs(l.uids, cfg.listDelim),
		})
	}

	return stations, lines
}
