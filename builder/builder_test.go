// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/builder"
	"github.com/katalvlaran/metro/core"
)

func TestBuildRecords_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithNames(map[int]string{2: "Hub"})}
	stations, lines, err := builder.BuildRecords(opts,
		builder.Line("Red", 3, 2, 1),
		builder.Link(3, 4),
	)
	require.NoError(t, err)

	require.Equal(t, []core.Record{
		{core.FieldUID: "1", core.FieldName: "S1", core.FieldNeighbours: "2"},
		{core.FieldUID: "2", core.FieldName: "Hub", core.FieldNeighbours: "1$3"},
		{core.FieldUID: "3", core.FieldName: "S3", core.FieldNeighbours: "2$4"},
		{core.FieldUID: "4", core.FieldName: "S4", core.FieldNeighbours: "3"},
	}, stations)
	require.Equal(t, []core.Record{
		{core.FieldName: "Red", core.FieldStations: "3$2$1"},
	}, lines)
}

func TestBuildNetwork_RingAndTransfers(t *testing.T) {
	net, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithListDelimiter(";")},
		builder.Ring("Circle", 1, 2, 3, 4),
		builder.Line("Spur", 4, 5),
		builder.Stations(9),
	)
	require.NoError(t, err)
	require.Equal(t, ";", net.ListDelimiter())
	require.True(t, net.Adjacent(4, 1), "ring closes the loop")

	four, err := net.Station(4)
	require.NoError(t, err)
	require.Equal(t, []string{"Circle", "Spur"}, four.Lines())

	stats := net.Stats()
	require.Equal(t, core.NetworkStats{Stations: 6, Links: 5, Lines: 2, Isolated: 1}, stats)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		cons []builder.Constructor
		want error
	}{
		{"short line", []builder.Constructor{builder.Line("Red", 1)}, builder.ErrTooFewStations},
		{"short ring", []builder.Constructor{builder.Ring("Circle", 1, 2)}, builder.ErrTooFewStations},
		{"empty name", []builder.Constructor{builder.Line("", 1, 2)}, builder.ErrBadParameter},
		{"repeated member", []builder.Constructor{builder.Line("Red", 1, 2, 1)}, builder.ErrBadParameter},
		{"bad uid", []builder.Constructor{builder.Line("Red", 0, 1)}, builder.ErrBadParameter},
		{"self link", []builder.Constructor{builder.Link(2, 2)}, builder.ErrBadParameter},
		{"bad station", []builder.Constructor{builder.Stations(-1)}, builder.ErrBadParameter},
		{"duplicate line", []builder.Constructor{builder.Line("Red", 1, 2), builder.Line("Red", 3, 4)}, builder.ErrConstructFailed},
		{"nil constructor", []builder.Constructor{nil}, builder.ErrConstructFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.BuildNetwork(nil, tt.cons...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildNetwork_CoreRejection(t *testing.T) {
	// Two generated names that collide case-insensitively are rejected by core.
	_, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithNameScheme(func(int) string { return "Same" })},
		builder.Line("Red", 1, 2),
	)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, core.ErrDataFormat)
}

func TestWithNameScheme_NilPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithNameScheme(nil) })
}
