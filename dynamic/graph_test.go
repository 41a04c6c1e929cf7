// SPDX-License-Identifier: MIT

package dynamic

import (
	"testing"

	"github.com/vg-lib/seqgraph/core"
)

func TestGraphAddNodeAllocatesSequentialIDs(t *testing.T) {
	g := New(core.Bidirected)
	a, err := g.AddNode(0)
	if err != nil || a != 1 {
		t.Fatalf("AddNode(0) = %d, %v; want 1, nil", a, err)
	}
	b, err := g.AddNode(0)
	if err != nil || b != 2 {
		t.Fatalf("AddNode(0) = %d, %v; want 2, nil", b, err)
	}
}

func TestGraphAddNodeDuplicate(t *testing.T) {
	g := New(core.Bidirected)
	if _, err := g.AddNode(5); err != nil {
		t.Fatalf("AddNode(5): %v", err)
	}
	if _, err := g.AddNode(5); err != core.ErrDuplicateID {
		t.Fatalf("AddNode(5) again = %v, want ErrDuplicateID", err)
	}
}

func TestGraphAddEdgeUnknownID(t *testing.T) {
	g := New(core.Bidirected)
	g.AddNode(1)
	link := core.MakeLink(1, 2)
	if err := g.AddEdge(link); err != core.ErrUnknownID {
		t.Fatalf("AddEdge to missing node = %v, want ErrUnknownID", err)
	}
}

func TestGraphAddEdgeSafeDuplicate(t *testing.T) {
	g := New(core.Bidirected)
	g.AddNode(1)
	g.AddNode(2)
	link := core.MakeLink(1, 2)
	if err := g.AddEdgeSafe(link); err != nil {
		t.Fatalf("AddEdgeSafe: %v", err)
	}
	if err := g.AddEdgeSafe(link); err != core.ErrDuplicateID {
		t.Fatalf("AddEdgeSafe duplicate = %v, want ErrDuplicateID", err)
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestGraphHasEdgeAndDegrees(t *testing.T) {
	g := New(core.Bidirected)
	g.AddNode(1)
	g.AddNode(2)
	g.AddNode(3)
	g.AddEdge(core.MakeLink(1, 2))
	g.AddEdge(core.MakeLink(1, 3))

	if !g.HasEdge(core.MakeLink(1, 2)) {
		t.Error("expected edge 1->2")
	}
	if g.HasEdge(core.MakeLink(2, 3)) {
		t.Error("unexpected edge 2->3")
	}
	if got := g.Outdegree(1); got != 2 {
		t.Errorf("Outdegree(1) = %d, want 2", got)
	}
	if got := g.Indegree(2); got != 1 {
		t.Errorf("Indegree(2) = %d, want 1", got)
	}
}

func TestGraphForEachEdgesOutEarlyStop(t *testing.T) {
	g := New(core.Bidirected)
	g.AddNode(1)
	g.AddNode(2)
	g.AddNode(3)
	g.AddEdge(core.MakeLink(1, 2))
	g.AddEdge(core.MakeLink(1, 3))

	count := 0
	complete := g.ForEachEdgesOut(1, func(core.Side, core.LinkType) bool {
		count++
		return false
	})
	if complete {
		t.Error("expected early stop to report incomplete")
	}
	if count != 1 {
		t.Errorf("callback invoked %d times, want 1", count)
	}
}

func TestGraphSortNodes(t *testing.T) {
	g := New(core.Bidirected)
	a, _ := g.AddNode(0)
	b, _ := g.AddNode(0)
	c, _ := g.AddNode(0)

	if err := g.SortNodes([]int{2, 0, 1}); err != nil {
		t.Fatalf("SortNodes: %v", err)
	}

	want := []core.ID{c, a, b}
	for i, id := range want {
		rank, _ := g.RankOf(id)
		if int(rank) != i+1 {
			t.Errorf("RankOf(%d) = %d, want %d", id, rank, i+1)
		}
		got, _ := g.IDAt(core.Rank(i + 1))
		if got != id {
			t.Errorf("IDAt(%d) = %d, want %d", i+1, got, id)
		}
	}
}

func TestGraphSortNodesBadLength(t *testing.T) {
	g := New(core.Bidirected)
	g.AddNode(0)
	if err := g.SortNodes([]int{0, 1}); err != core.ErrIndexOutOfRange {
		t.Fatalf("SortNodes with mismatched length = %v, want ErrIndexOutOfRange", err)
	}
}

func TestGraphClear(t *testing.T) {
	g := New(core.Bidirected)
	g.AddNode(1)
	g.AddNode(2)
	g.AddEdge(core.MakeLink(1, 2))
	g.Clear()

	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("after Clear: NodeCount=%d EdgeCount=%d, want 0, 0", g.NodeCount(), g.EdgeCount())
	}
	if g.HasNode(1) {
		t.Error("HasNode(1) true after Clear")
	}
}

func TestGraphDirectedModeSingleSide(t *testing.T) {
	g := New(core.Directed)
	g.AddNode(1)
	g.AddNode(2)
	g.AddEdge(core.Link{From: core.StartSide(1), To: core.StartSide(2)})

	if got := g.Outdegree(1); got != 1 {
		t.Errorf("Outdegree(1) = %d, want 1", got)
	}
	visited := 0
	g.Mode.ForEachSide(1, func(core.Side) bool { visited++; return true })
	if visited != 1 {
		t.Errorf("ForEachSide visited %d sides in Directed mode, want 1", visited)
	}
}
