// SPDX-License-Identifier: MIT

// Package algo implements the graph algorithms layered on top of the
// dynamic and succinct representations: depth-first traversal,
// topological sorting (and the Dynamic rank-renumbering it drives),
// the succinct position/id/offset translation helpers, and the
// node/side iteration helpers shared by both.
package algo

import (
	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/dynamic"
	"github.com/vg-lib/seqgraph/internal/bitset"
)

// DFSCallbacks are the three hooks an iterative depth-first traversal
// invokes. Any of them may be nil.
type DFSCallbacks struct {
	OnDiscovery func(rank core.Rank, id core.ID)
	OnFinishing func(rank core.Rank, id core.ID)
	// OnVisited fires for every edge into an already-discovered node;
	// alreadyFinished distinguishes a cross/forward edge from a back
	// edge (alreadyFinished == false means a cycle was found).
	OnVisited func(rank core.Rank, id core.ID, alreadyFinished bool)
}

type dfsFrame struct {
	rank     core.Rank
	id       core.ID
	children []core.ID
	idx      int
}

// DFS runs an iterative depth-first traversal of g, starting from
// nodes with no incoming edge on their start side, then sweeping for
// any node left undiscovered (disconnected components, or components
// whose only entry points are mid-cycle). It returns the ranks in
// finishing order and whether the traversal encountered a back edge
// (a false return here is exactly "not a DAG").
func DFS(g *dynamic.Graph, cb DFSCallbacks) (finishOrder []core.Rank, isDAG bool) {
	n := g.NodeCount()
	var visited bitset.BitSet // bit 2r = discovered, bit 2r-1 = finished
	isDAG = true

	discovered := func(r core.Rank) bool { return visited.Test(uint(2 * r)) }
	finished := func(r core.Rank) bool { return visited.Test(uint(2*r - 1)) }

	var stack []dfsFrame

	discover := func(rank core.Rank, id core.ID) {
		visited.Set(uint(2 * rank))
		if cb.OnDiscovery != nil {
			cb.OnDiscovery(rank, id)
		}
		var children []core.ID
		g.ForEachEdgesOut(id, func(nb core.Side, _ core.LinkType) bool {
			children = append(children, nb.ID)
			return true
		})
		stack = append(stack, dfsFrame{rank: rank, id: id, children: children})
	}

	run := func() {
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.idx < len(top.children) {
				childID := top.children[top.idx]
				top.idx++
				childRank, _ := g.RankOf(childID)
				if !discovered(childRank) {
					discover(childRank, childID)
					continue
				}
				already := finished(childRank)
				if cb.OnVisited != nil {
					cb.OnVisited(childRank, childID, already)
				}
				if !already {
					isDAG = false
				}
				continue
			}

			visited.Set(uint(2*top.rank - 1))
			if cb.OnFinishing != nil {
				cb.OnFinishing(top.rank, top.id)
			}
			finishOrder = append(finishOrder, top.rank)
			stack = stack[:len(stack)-1]
		}
	}

	for r := 1; r <= n; r++ {
		rank := core.Rank(r)
		id, _ := g.IDAt(rank)
		if discovered(rank) {
			continue
		}
		if g.SideIndegree(core.StartSide(id)) != 0 {
			continue
		}
		discover(rank, id)
		run()
	}

	for r := 1; r <= n; r++ {
		rank := core.Rank(r)
		if discovered(rank) {
			continue
		}
		id, _ := g.IDAt(rank)
		discover(rank, id)
		run()
	}

	return finishOrder, isDAG
}
