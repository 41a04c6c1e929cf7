// SPDX-License-Identifier: MIT

// Package seqgraph is the facade over the dynamic and succinct
// bidirected sequence graph representations: a uniform read-only
// [Graph] interface implemented by both, and [Build], the
// Dynamic-to-Succinct conversion entry point.
//
// Mutation (add_node, add_edge, add_path, extend_path, update_node)
// is deliberately left off [Graph]: a Dynamic graph is built through
// *dynamic.SeqGraph directly, and a Succinct graph is immutable by
// construction, so there is no call site that needs to invoke a
// mutator through the shared interface. See DESIGN.md.
package seqgraph

import (
	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/dynamic"
	"github.com/vg-lib/seqgraph/succinct"
)

// Graph is the read-only surface shared by a Dynamic graph under
// construction and a built Succinct graph.
type Graph interface {
	HasNode(id core.ID) bool
	HasEdge(link core.Link) bool
	HasPath(name string) bool

	ForEachNode(cb func(core.ID) bool) bool
	ForEachEdgesOut(id core.ID, cb func(neighbor core.Side, lt core.LinkType) bool) bool
	ForEachEdgesIn(id core.ID, cb func(neighbor core.Side, lt core.LinkType) bool) bool
	ForEachPath(cb func(pathID uint64, name string) bool) bool

	NodeSequence(id core.ID) (string, bool)
	NodeLength(id core.ID) int
	EdgeOverlap(link core.Link) (int, bool)
	PathLength(pathID uint64) int
	PathName(pathID uint64) (string, bool)

	IDToRank(id core.ID) (core.Rank, bool)
	RankToID(rank core.Rank) (core.ID, bool)
	SuccessorID(id core.ID) core.ID
	CoordinateID(id core.ID) core.ID

	NodeCount() int
	EdgeCount() int
}

// DynamicView adapts a [dynamic.SeqGraph] to [Graph].
type DynamicView struct {
	*dynamic.SeqGraph
}

// NewDynamicView wraps g as a [Graph].
func NewDynamicView(g *dynamic.SeqGraph) DynamicView { return DynamicView{g} }

// EdgeCount returns the number of edges in the underlying graph.
func (v DynamicView) EdgeCount() int { return v.SeqGraph.Graph.EdgeCount() }

// NodeCount returns the number of nodes in the underlying graph.
func (v DynamicView) NodeCount() int { return v.SeqGraph.Graph.NodeCount() }

// ForEachPath visits every path's id and name.
func (v DynamicView) ForEachPath(cb func(pathID uint64, name string) bool) bool {
	return v.SeqGraph.ForEachPath(func(p *dynamic.Path) bool { return cb(p.ID, p.Name) })
}

// SuccinctView adapts a built [succinct.SeqGraph] to [Graph].
type SuccinctView struct {
	*succinct.SeqGraph
}

// NewSuccinctView wraps g as a [Graph].
func NewSuccinctView(g *succinct.SeqGraph) SuccinctView { return SuccinctView{g} }

func (v SuccinctView) HasNode(id core.ID) bool { return v.Graph.HasNode(id) }

func (v SuccinctView) HasEdge(link core.Link) bool {
	return v.Graph.HasEdge(link.From.ID, link.To.ID, link.Type())
}

func (v SuccinctView) HasPath(name string) bool {
	found := false
	v.ForEachPath(func(_ uint64, n string) bool {
		if n == name {
			found = true
			return false
		}
		return true
	})
	return found
}

func (v SuccinctView) ForEachNode(cb func(core.ID) bool) bool { return v.Graph.ForEachNode(cb) }

func (v SuccinctView) ForEachEdgesOut(id core.ID, cb func(core.Side, core.LinkType) bool) bool {
	return v.Graph.ForEachEdgesOut(id, func(nb core.ID, lt core.LinkType, _ int) bool {
		return cb(sideFromType(nb, lt, false), lt)
	})
}

func (v SuccinctView) ForEachEdgesIn(id core.ID, cb func(core.Side, core.LinkType) bool) bool {
	return v.Graph.ForEachEdgesIn(id, func(nb core.ID, lt core.LinkType, _ int) bool {
		return cb(sideFromType(nb, lt, true), lt)
	})
}

// sideFromType reconstructs the neighbor's side tag from the observed
// link type: for an outgoing edge the neighbor is the `to` side (tag
// = to.End), for an incoming edge it is the `from` side (tag =
// from.End).
func sideFromType(neighbor core.ID, lt core.LinkType, incoming bool) core.Side {
	var end bool
	if incoming {
		end = lt == core.ESLink || lt == core.EELink
	} else {
		end = lt == core.SELink || lt == core.EELink
	}
	return core.Side{ID: neighbor, End: end}
}

func (v SuccinctView) ForEachPath(cb func(pathID uint64, name string) bool) bool {
	n := v.PathProps.Count()
	for rank := 1; rank <= n; rank++ {
		pos, ok := v.PathProps.RankToPosition(rank)
		if !ok {
			continue
		}
		view := v.PathProps.View(pos)
		if !cb(view.ID(), view.Name()) {
			return false
		}
	}
	return true
}

func (v SuccinctView) NodeSequence(id core.ID) (string, bool) {
	if !v.Graph.HasNode(id) {
		return "", false
	}
	return v.NodeProps.Sequence(v.Graph, id), true
}

func (v SuccinctView) NodeLength(id core.ID) int { return v.Graph.SeqLength(id) }

func (v SuccinctView) EdgeOverlap(link core.Link) (int, bool) {
	return v.Graph.EdgeOverlap(link.From.ID, link.To.ID, link.Type())
}

func (v SuccinctView) PathLength(pathID uint64) int {
	pos, ok := v.PathProps.ByPathID(pathID)
	if !ok {
		return 0
	}
	return v.PathProps.View(pos).Size()
}

func (v SuccinctView) PathName(pathID uint64) (string, bool) {
	pos, ok := v.PathProps.ByPathID(pathID)
	if !ok {
		return "", false
	}
	return v.PathProps.View(pos).Name(), true
}

func (v SuccinctView) IDToRank(id core.ID) (core.Rank, bool) { return v.Graph.IDToRank(id) }
func (v SuccinctView) RankToID(rank core.Rank) (core.ID, bool) {
	return v.Graph.RankToID(rank)
}
func (v SuccinctView) SuccessorID(id core.ID) core.ID { return v.Graph.SuccessorID(id) }
func (v SuccinctView) CoordinateID(id core.ID) core.ID { return v.Graph.CoordinateID(id) }
func (v SuccinctView) NodeCount() int                  { return v.Graph.NodeCount() }
func (v SuccinctView) EdgeCount() int {
	total := 0
	v.Graph.ForEachNode(func(id core.ID) bool {
		total += v.Graph.Outdegree(id)
		return true
	})
	return total
}

// Build converts a Dynamic graph under construction into an immutable
// Succinct graph, the assignment operation named by the facade.
func Build(src *dynamic.SeqGraph, seqAlphabet *core.Alphabet) (SuccinctView, error) {
	sg, err := succinct.Build(src, seqAlphabet)
	if err != nil {
		return SuccinctView{}, err
	}
	return NewSuccinctView(sg), nil
}
