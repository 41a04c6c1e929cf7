// SPDX-License-Identifier: MIT

package seqgraph

import (
	"testing"

	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/dynamic"
)

func buildSample(t *testing.T) *dynamic.SeqGraph {
	t.Helper()
	src := dynamic.NewSeqGraph(core.Bidirected)
	a, _ := src.AddNode(0, "ACGT", "a")
	b, _ := src.AddNode(0, "GG", "b")
	c, _ := src.AddNode(0, "TTTAA", "c")
	if err := src.AddEdge(core.MakeLink(a, b), 0); err != nil {
		t.Fatalf("AddEdge a->b: %v", err)
	}
	if err := src.AddEdge(core.MakeLink(b, c), 0); err != nil {
		t.Fatalf("AddEdge b->c: %v", err)
	}
	pathID, err := src.AddPath("x")
	if err != nil {
		t.Fatalf("AddPath: %v", err)
	}
	if err := src.ExtendPath(pathID, []core.ID{a, b, c}, []bool{false, false, false}, false); err != nil {
		t.Fatalf("ExtendPath: %v", err)
	}
	return src
}

func assertGraphContract(t *testing.T, g Graph, a, b, c core.ID, pathID uint64) {
	t.Helper()

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3", g.NodeCount())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}
	if !g.HasNode(a) || !g.HasNode(b) || !g.HasNode(c) {
		t.Error("expected all three nodes present")
	}
	if !g.HasEdge(core.MakeLink(a, b)) {
		t.Error("expected edge a->b")
	}
	if g.HasEdge(core.MakeLink(c, a)) {
		t.Error("did not expect edge c->a")
	}
	if !g.HasPath("x") {
		t.Error("expected path x")
	}

	if seq, ok := g.NodeSequence(a); !ok || seq != "ACGT" {
		t.Errorf("NodeSequence(a) = %q, %v", seq, ok)
	}
	if n := g.NodeLength(c); n != 5 {
		t.Errorf("NodeLength(c) = %d, want 5", n)
	}
	if ov, ok := g.EdgeOverlap(core.MakeLink(a, b)); !ok || ov != 0 {
		t.Errorf("EdgeOverlap(a,b) = %d, %v", ov, ok)
	}

	if n, ok := g.PathName(pathID); !ok || n != "x" {
		t.Errorf("PathName = %q, %v", n, ok)
	}
	if l := g.PathLength(pathID); l != 3 {
		t.Errorf("PathLength = %d, want 3", l)
	}

	var seen []core.ID
	g.ForEachNode(func(id core.ID) bool { seen = append(seen, id); return true })
	if len(seen) != 3 {
		t.Errorf("ForEachNode visited %d nodes, want 3", len(seen))
	}

	var pathNames []string
	g.ForEachPath(func(_ uint64, name string) bool { pathNames = append(pathNames, name); return true })
	if len(pathNames) != 1 || pathNames[0] != "x" {
		t.Errorf("ForEachPath = %v, want [x]", pathNames)
	}
}

func TestDynamicViewSatisfiesGraphContract(t *testing.T) {
	src := buildSample(t)
	a, _ := src.Graph.IDAt(1)
	b, _ := src.Graph.IDAt(2)
	c, _ := src.Graph.IDAt(3)

	view := NewDynamicView(src)
	assertGraphContract(t, view, a, b, c, 1)

	if rank, ok := view.IDToRank(a); !ok || rank != 1 {
		t.Errorf("IDToRank(a) = %d, %v, want 1", rank, ok)
	}
	if view.SuccessorID(a) != b {
		t.Errorf("SuccessorID(a) = %d, want %d", view.SuccessorID(a), b)
	}
	if view.CoordinateID(a) != a {
		t.Error("Dynamic CoordinateID should be the identity")
	}
}

func TestSuccinctViewSatisfiesGraphContract(t *testing.T) {
	src := buildSample(t)
	dynA, _ := src.Graph.IDAt(1)
	dynB, _ := src.Graph.IDAt(2)
	dynC, _ := src.Graph.IDAt(3)

	view, err := Build(src, core.DNA)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var a, b, c core.ID
	view.Graph.ForEachNode(func(id core.ID) bool {
		switch view.Graph.CoordinateID(id) {
		case dynA:
			a = id
		case dynB:
			b = id
		case dynC:
			c = id
		}
		return true
	})

	assertGraphContract(t, view, a, b, c, 1)

	rank, ok := view.IDToRank(a)
	if !ok || rank != 1 {
		t.Errorf("IDToRank(a) = %d, %v, want 1", rank, ok)
	}
	if got, ok := view.RankToID(rank); !ok || got != a {
		t.Errorf("RankToID(1) = %d, %v, want %d", got, ok, a)
	}
	if view.SuccessorID(a) == 0 {
		t.Error("expected a non-zero successor id for a non-final record")
	}
}

func TestDynamicViewEmptyGraph(t *testing.T) {
	src := dynamic.NewSeqGraph(core.Bidirected)
	view := NewDynamicView(src)

	if view.NodeCount() != 0 || view.EdgeCount() != 0 {
		t.Error("expected an empty graph to report zero nodes and edges")
	}
	if view.HasNode(1) {
		t.Error("HasNode on empty graph should be false")
	}
	if !view.ForEachNode(func(core.ID) bool { return false }) {
		t.Error("ForEachNode over an empty graph must return true")
	}
}
