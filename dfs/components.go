package dfs

import (
	"sort"

	"github.com/katalvlaran/metro/core"
)

// Components partitions the stations of net into connected components.
// Each component is sorted by uid; components are ordered by their lowest
// uid. An empty network yields no components.
func Components(net *core.Network) ([][]int, error) {
	res, err := DFS(net, 0, WithFullTraversal())
	if err != nil {
		return nil, err
	}

	index := make(map[int]int, len(res.Roots))
	comps := make([][]int, len(res.Roots))
	for i, root := range res.Roots {
		index[root] = i
	}
	for uid := range res.Visited {
		root := uid
		for {
			p, ok := res.Parent[root]
			if !ok {
				break
			}
			root = p
		}
		i := index[root]
		comps[i] = append(comps[i], uid)
	}
	for _, c := range comps {
		sort.Ints(c)
	}

	return comps, nil
}
