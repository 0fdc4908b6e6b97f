package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/builder"
	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/dfs"
)

// twoIslands is 1-2-3 plus 2-4 on one side, 7-8 on the other and 9 alone.
func twoIslands() *core.Network {
	return builder.MustBuildNetwork(nil,
		builder.Line("Red", 1, 2, 3),
		builder.Line("Spur", 2, 4),
		builder.Line("Ferry", 7, 8),
		builder.Stations(9),
	)
}

func TestDFS_NilNetwork(t *testing.T) {
	res, err := dfs.DFS(nil, 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrNetworkNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(twoIslands(), 42)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDFS_BadOption(t *testing.T) {
	_, err := dfs.DFS(twoIslands(), 1, dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_PostOrderAndParents(t *testing.T) {
	res, err := dfs.DFS(twoIslands(), 1)
	require.NoError(t, err)

	// 1 → 2 → 3 (finish) → 4 (finish) → 2 → 1
	assert.Equal(t, []int{3, 4, 2, 1}, res.Order)
	assert.Equal(t, map[int]int{2: 1, 3: 2, 4: 2}, res.Parent)
	assert.Equal(t, 2, res.Depth[4])
	assert.Equal(t, []int{1}, res.Roots)
	assert.False(t, res.Visited[7])
}

func TestDFS_Hooks(t *testing.T) {
	var pre, post []int
	_, err := dfs.DFS(twoIslands(), 2,
		dfs.WithOnVisit(func(uid int) error { pre = append(pre, uid); return nil }),
		dfs.WithOnExit(func(uid int) error { post = append(post, uid); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3, 4}, pre)
	assert.Equal(t, []int{1, 3, 4, 2}, post)

	stop := errors.New("stop")
	res, err := dfs.DFS(twoIslands(), 2, dfs.WithOnExit(func(uid int) error {
		if uid == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Nil(t, res.Order)
}

func TestDFS_DepthAndFilter(t *testing.T) {
	res, err := dfs.DFS(twoIslands(), 1, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, res.Order)

	res, err = dfs.DFS(twoIslands(), 1, dfs.WithFilterNeighbor(func(_, nb int) bool { return nb != 4 }))
	require.NoError(t, err)
	assert.False(t, res.Visited[4])
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(twoIslands(), 1, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_FullTraversal(t *testing.T) {
	res, err := dfs.DFS(twoIslands(), 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7, 9}, res.Roots)
	assert.Len(t, res.Order, 7)
}

func TestComponents(t *testing.T) {
	comps, err := dfs.Components(twoIslands())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3, 4}, {7, 8}, {9}}, comps)

	connected, err := dfs.Components(builder.MustBuildNetwork(nil, builder.Ring("Loop", 1, 2, 3)))
	require.NoError(t, err)
	assert.Len(t, connected, 1)

	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrNetworkNil)
}
