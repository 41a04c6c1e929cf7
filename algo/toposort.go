// SPDX-License-Identifier: MIT

package algo

import (
	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/dynamic"
)

// TopologicalOrder runs DFS over g and returns the ranks in
// topological order: reverse finishing order by default, or raw
// finishing order if reverse is set. isDAG is false if any back edge
// was encountered.
func TopologicalOrder(g *dynamic.Graph, reverse bool) (order []core.Rank, isDAG bool) {
	finishOrder, isDAG := DFS(g, DFSCallbacks{})

	order = make([]core.Rank, len(finishOrder))
	copy(order, finishOrder)
	if !reverse {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}
	return order, isDAG
}

// TopologicalSort computes the topological order of g and, if g is a
// DAG or force is set, renumbers its ranks to match via
// [dynamic.Graph.SortNodes]. It returns whether g was found to be a
// DAG; the rank renumbering is skipped (and the graph left untouched)
// when it is not, unless force overrides that.
func TopologicalSort(g *dynamic.Graph, force, reverse bool) (isDAG bool, err error) {
	order, isDAG := TopologicalOrder(g, reverse)
	if !isDAG && !force {
		return isDAG, nil
	}

	perm := make([]int, len(order))
	for newRank, oldRank := range order {
		perm[newRank] = int(oldRank) - 1
	}
	return isDAG, g.SortNodes(perm)
}

// RanksInTopologicalOrder reports whether g's current rank assignment
// is already a valid topological order: every edge runs from a lower
// rank to a higher one.
func RanksInTopologicalOrder(g *dynamic.Graph) bool {
	valid := true
	g.ForEachNode(func(id core.ID) bool {
		fromRank, _ := g.RankOf(id)
		g.ForEachEdgesOut(id, func(nb core.Side, _ core.LinkType) bool {
			toRank, _ := g.RankOf(nb.ID)
			if toRank <= fromRank {
				valid = false
				return false
			}
			return true
		})
		return valid
	})
	return valid
}

// IDsInTopologicalOrder returns g's node ids in their current rank
// order; meaningful once [RanksInTopologicalOrder] holds (typically
// right after a successful [TopologicalSort]).
func IDsInTopologicalOrder(g *dynamic.Graph) []core.ID {
	ids := make([]core.ID, 0, g.NodeCount())
	g.ForEachNode(func(id core.ID) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}
