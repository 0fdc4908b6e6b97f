// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/core"
)

// Common station names used across core tests.
const (
	NameAlpha = "Alpha"
	NameBeta  = "Beta"
	NameGamma = "Gamma"
	NameDelta = "Delta"
)

// stationRec builds a station record.
func stationRec(uid, name, neighbours string) core.Record {
	return core.Record{core.FieldUID: uid, core.FieldName: name, core.FieldNeighbours: neighbours}
}

// lineRec builds a line record.
func lineRec(name, stations string) core.Record {
	return core.Record{core.FieldName: name, core.FieldStations: stations}
}

// linearRecords describes the graph 1-2-3 with 4 isolated.
func linearRecords() []core.Record {
	return []core.Record{
		stationRec("1", NameAlpha, "2"),
		stationRec("2", NameBeta, "1$3"),
		stationRec("3", NameGamma, "2"),
		stationRec("4", NameDelta, ""),
	}
}

// mustNetwork loads stations and lines or fails the test.
func mustNetwork(t *testing.T, stations, lines []core.Record) *core.Network {
	t.Helper()
	net, err := core.LoadStations(stations)
	require.NoError(t, err)
	require.NoError(t, net.LoadLines(lines))

	return net
}
