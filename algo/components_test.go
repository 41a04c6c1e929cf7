// SPDX-License-Identifier: MIT

package algo

import (
	"testing"

	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/dynamic"
)

func TestWeaklyConnectedComponentsSingleComponent(t *testing.T) {
	g := dynamic.New(core.Bidirected)
	a, _ := g.AddNode(0)
	b, _ := g.AddNode(0)
	c, _ := g.AddNode(0)
	g.AddEdge(core.MakeLink(a, b))
	g.AddEdge(core.MakeLink(c, b)) // reaches b via an incoming edge, still one component

	if got := WeaklyConnectedComponents(g); got != 1 {
		t.Errorf("WeaklyConnectedComponents = %d, want 1", got)
	}
}

func TestWeaklyConnectedComponentsDisjoint(t *testing.T) {
	g := dynamic.New(core.Bidirected)
	a, _ := g.AddNode(0)
	b, _ := g.AddNode(0)
	c, _ := g.AddNode(0)
	d, _ := g.AddNode(0)
	g.AddEdge(core.MakeLink(a, b))
	g.AddEdge(core.MakeLink(c, d))

	if got := WeaklyConnectedComponents(g); got != 2 {
		t.Errorf("WeaklyConnectedComponents = %d, want 2", got)
	}
}

func TestWeaklyConnectedComponentsEmptyGraph(t *testing.T) {
	g := dynamic.New(core.Bidirected)
	if got := WeaklyConnectedComponents(g); got != 0 {
		t.Errorf("WeaklyConnectedComponents = %d, want 0", got)
	}
}

func TestWeaklyConnectedComponentsIsolatedNode(t *testing.T) {
	g := dynamic.New(core.Bidirected)
	g.AddNode(0)
	g.AddNode(0)

	if got := WeaklyConnectedComponents(g); got != 2 {
		t.Errorf("WeaklyConnectedComponents = %d, want 2", got)
	}
}
