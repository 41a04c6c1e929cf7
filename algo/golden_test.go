// SPDX-License-Identifier: MIT

package algo

import (
	"math/rand/v2"
	"testing"

	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/internal/golden"
)

func TestTopologicalSortOnRandomScrambledChains(t *testing.T) {
	prng := rand.New(rand.NewPCG(7, 7))

	for trial := 0; trial < 20; trial++ {
		n := 2 + prng.IntN(30)
		g, chainIDs := golden.RandomChain(prng, core.DNA, n, 1, 12)

		isDAG, err := TopologicalSort(g.Graph, false, false)
		if err != nil {
			t.Fatalf("trial %d: TopologicalSort: %v", trial, err)
		}
		if !isDAG {
			t.Fatalf("trial %d: a simple chain must be a DAG", trial)
		}
		if !RanksInTopologicalOrder(g.Graph) {
			t.Fatalf("trial %d: ranks not in topological order after sort", trial)
		}

		var prevRank core.Rank
		for i, id := range chainIDs {
			rank, ok := g.Graph.RankOf(id)
			if !ok {
				t.Fatalf("trial %d: chain node %d missing from graph", trial, id)
			}
			if i > 0 && rank <= prevRank {
				t.Fatalf("trial %d: chain position %d has rank %d, not after previous rank %d", trial, i, rank, prevRank)
			}
			prevRank = rank
		}

		finishOrder, isDAG2 := DFS(g.Graph, DFSCallbacks{})
		if !isDAG2 {
			t.Fatalf("trial %d: DFS disagrees with TopologicalSort about DAG-ness", trial)
		}
		if len(finishOrder) != n {
			t.Fatalf("trial %d: finishOrder len = %d, want %d", trial, len(finishOrder), n)
		}
	}
}
