package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/bfs"
	"github.com/katalvlaran/metro/builder"
	"github.com/katalvlaran/metro/core"
)

// square builds 1-2-3-4-1 plus a detached pair 8-9.
func square(t *testing.T) *core.Network {
	t.Helper()
	net, err := builder.BuildNetwork(nil,
		builder.Ring("Circle", 1, 2, 3, 4),
		builder.Line("Island", 8, 9),
	)
	require.NoError(t, err)

	return net
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 1); !errors.Is(err, bfs.ErrNetworkNil) {
		t.Errorf("nil network: want ErrNetworkNil, got %v", err)
	}
	net := square(t)
	if _, err := bfs.BFS(net, 42); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("missing start: want ErrNotFound, got %v", err)
	}
	if _, err := bfs.BFS(net, 1, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.BFS(net, 1, bfs.WithStopAt(0)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("zero StopAt: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths and order.
func TestBFS_CycleAndDepths(t *testing.T) {
	res, err := bfs.BFS(square(t), 1)
	require.NoError(t, err)

	// neighbours are expanded by ascending uid: 2 before 4
	require.Equal(t, []int{1, 2, 4, 3}, res.Order)
	require.Equal(t, map[int]int{1: 0, 2: 1, 4: 1, 3: 2}, res.Depth)
	require.Equal(t, 2, res.Parent[3], "3 is discovered through the lower uid")
	require.False(t, res.Reached(8), "other component is never explored")
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	net := square(t)

	res, err := bfs.BFS(net, 1, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4}, res.Order)

	res, err = bfs.BFS(net, 1, bfs.WithFilterNeighbor(func(curr, nbr int) bool {
		return !(curr == 1 && nbr == 4)
	}))
	require.NoError(t, err)
	require.Equal(t, 3, res.Depth[4], "1→4 pruned, reached the long way round")
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("enough")
	var seen []int
	_, err := bfs.BFS(square(t), 1, bfs.WithOnVisit(func(uid, depth int) error {
		seen = append(seen, uid)
		if depth == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []int{1, 2}, seen)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(square(t), 1, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_PathTo covers trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	res, err := bfs.BFS(square(t), 1)
	require.NoError(t, err)

	path, err := res.PathTo(1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, path)

	path, err = res.PathTo(3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, path)

	_, err = res.PathTo(9)
	require.ErrorIs(t, err, bfs.ErrUnreachable)
}

func TestShortestPath_Scenarios(t *testing.T) {
	linear := builder.MustBuildNetwork(nil, builder.Line("Red", 1, 2, 3))
	path, err := bfs.ShortestPath(linear, 1, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, core.UIDs(path))

	transfer := builder.MustBuildNetwork(nil, builder.Line("Red", 1, 2), builder.Line("Blue", 2, 3))
	path, err = bfs.ShortestPath(transfer, 1, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, core.UIDs(path))
}

func TestShortestPath_SameStation(t *testing.T) {
	net := square(t)
	for _, st := range net.Stations() {
		path, err := bfs.ShortestPath(net, st.UID, st.UID)
		require.NoError(t, err)
		require.Equal(t, []*core.Station{st}, path)
	}
}

func TestShortestPath_Disconnected(t *testing.T) {
	path, err := bfs.ShortestPath(square(t), 1, 9)
	require.NoError(t, err)
	require.NotNil(t, path)
	require.Empty(t, path)
}

func TestShortestPath_UnknownStations(t *testing.T) {
	net := square(t)
	_, err := bfs.ShortestPath(net, 77, 1)
	require.ErrorIs(t, err, core.ErrNotFound)
	_, err = bfs.ShortestPath(net, 1, 77)
	require.ErrorIs(t, err, core.ErrNotFound)
	_, err = bfs.ShortestPath(nil, 1, 2)
	require.ErrorIs(t, err, bfs.ErrNetworkNil)
}

// TestShortestPath_Symmetric checks that for every reachable pair the reverse
// query has the same length and the same set of intermediate stations.
func TestShortestPath_Symmetric(t *testing.T) {
	net := builder.MustBuildNetwork(nil,
		builder.Line("Red", 1, 2, 3, 4, 5),
		builder.Line("Blue", 6, 3, 7),
		builder.Ring("Loop", 7, 8, 9),
		builder.Link(5, 9),
		builder.Stations(20),
	)
	stations := net.Stations()
	for _, a := range stations {
		for _, b := range stations {
			ab, err := bfs.ShortestPath(net, a.UID, b.UID)
			require.NoError(t, err)
			ba, err := bfs.ShortestPath(net, b.UID, a.UID)
			require.NoError(t, err)
			require.Equal(t, len(ab), len(ba), "%d↔%d", a.UID, b.UID)
			if len(ab) == 0 {
				continue
			}
			require.Equal(t, a, ab[0])
			require.Equal(t, b, ab[len(ab)-1])
			// consecutive stations must be linked
			for i := 1; i < len(ab); i++ {
				require.True(t, ab[i-1].IsNeighbor(ab[i]))
			}
			require.ElementsMatch(t, core.UIDs(ab), core.UIDs(ba), "%d↔%d stations", a.UID, b.UID)
		}
	}
}

// TestShortestPath_Deterministic ensures repeated queries return the same path.
func TestShortestPath_Deterministic(t *testing.T) {
	net := square(t)
	first, err := bfs.ShortestPath(net, 1, 3)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := bfs.ShortestPath(net, 1, 3)
		require.NoError(t, err)
		if !reflect.DeepEqual(core.UIDs(first), core.UIDs(again)) {
			t.Fatalf("run %d: got %v; want %v", i, core.UIDs(again), core.UIDs(first))
		}
	}
}

// TestShortestPath_TieIsDirectionIndependent uses two equal-length routes
// between 1 and 4; both directions must ride the same one.
func TestShortestPath_TieIsDirectionIndependent(t *testing.T) {
	net := builder.MustBuildNetwork(nil,
		builder.Line("A", 1, 2, 6, 4),
		builder.Line("B", 1, 3, 5, 4),
	)

	forward, err := bfs.ShortestPath(net, 1, 4)
	require.NoError(t, err)
	backward, err := bfs.ShortestPath(net, 4, 1)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 6, 4}, core.UIDs(forward))
	require.Equal(t, []int{4, 6, 2, 1}, core.UIDs(backward))
}
