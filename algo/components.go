// SPDX-License-Identifier: MIT

package algo

import (
	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/dynamic"
	"github.com/vg-lib/seqgraph/internal/bitset"
)

// WeaklyConnectedComponents returns the number of connected
// components when every edge is treated as undirected: two nodes are
// in the same component if a path between them exists ignoring edge
// direction and orientation.
func WeaklyConnectedComponents(g *dynamic.Graph) int {
	n := g.NodeCount()
	var visited bitset.BitSet
	count := 0

	for r := 1; r <= n; r++ {
		rank := core.Rank(r)
		if visited.Test(uint(rank)) {
			continue
		}
		count++
		id, _ := g.IDAt(rank)
		floodFill(g, id, &visited)
	}
	return count
}

// floodFill marks every node reachable from start over undirected
// edges, using an explicit stack to avoid recursion depth limits.
func floodFill(g *dynamic.Graph, start core.ID, visited *bitset.BitSet) {
	startRank, _ := g.RankOf(start)
	visited.Set(uint(startRank))
	stack := []core.ID{start}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit := func(nb core.Side, _ core.LinkType) bool {
			nbRank, _ := g.RankOf(nb.ID)
			if visited.Test(uint(nbRank)) {
				return true
			}
			visited.Set(uint(nbRank))
			stack = append(stack, nb.ID)
			return true
		}
		g.ForEachEdgesOut(id, visit)
		g.ForEachEdgesIn(id, visit)
	}
}
