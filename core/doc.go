// SPDX-License-Identifier: MIT

// Package core holds the metro network: stations, their symmetric adjacency,
// and the named lines that serve them.
//
// A Network is built in two steps and is read-only afterwards:
//
//	net, err := core.LoadStations(stationRecords, core.WithListDelimiter("$"))
//	if err != nil {
//		// errors.Is(err, core.ErrDataFormat)
//	}
//	if err := net.LoadLines(lineRecords); err != nil {
//		// errors.Is(err, core.ErrDataFormat)
//	}
//
// Station loading is two-phase: every station is instantiated first and only
// then are neighbour ids resolved, because a neighbour list may name a station
// that appears later in the data. One-sided neighbour declarations are mirrored.
//
// Lines do not create links. They only tag stations with line membership,
// which CommonLine uses to tell which line covers a hop between two neighbours.
//
// Lookups:
//
//   - Station(uid)        → *Station or ErrNotFound
//   - StationByName(name) → case-insensitive exact match, no fuzzy matching
//   - CommonLine(a, b)    → one shared line, or ErrNoCommonLine
//
// Determinism:
//
//	Stations(), Station.Neighbors() and Station.Lines() return sorted results,
//	so traversals built on them are reproducible.
package core
