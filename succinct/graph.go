// SPDX-License-Identifier: MIT

// Package succinct implements the immutable, bit-packed graph
// representation: [Graph] (a single packed integer vector plus a
// node-boundary bit-vector with rank/select), the node/path property
// stores built on [stringset.StringSet], and the two-pass build
// pipeline that lays out a [dynamic.SeqGraph] into this form.
package succinct

import (
	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/internal/bitset"
	"github.com/vg-lib/seqgraph/internal/packedvec"
)

// Every node record uses a fixed 64-bit element width: the vector's
// own size determines how many bits an offset needs, but an offset
// lives inside the vector it is sizing, so picking the width from
// "max(id_width, offset_width)" at construction time would require
// knowing the final size before the first element is written. A flat
// 64-bit width sidesteps the circularity at a small, constant memory
// cost per slot; see DESIGN.md.
const (
	headerCoreLen = 3 // coordinate id, outdegree, indegree
	npLen         = 2 // sequence start position, sequence length
	headerLen     = headerCoreLen + npLen
)

// edgeEntryLen returns the number of packed-vector slots used by one
// edge entry: [adj_id, link_type, overlap] for bidirected graphs,
// [adj_id, overlap] for directed ones.
func edgeEntryLen(mode core.Mode) int {
	if mode == core.Bidirected {
		return 3
	}
	return 2
}

// Graph is the immutable, bit-packed directed (or bidirected) graph:
// one packed integer vector of node records plus a bit-vector marking
// where each record begins.
type Graph struct {
	Mode  core.Mode
	nodes *packedvec.PackedVector
	idsBV bitset.BitSet
}

// NodeCount returns the number of node records in the graph.
func (g *Graph) NodeCount() int { return g.idsBV.Count() }

// HasNode reports whether id names a valid record boundary.
func (g *Graph) HasNode(id core.ID) bool {
	return id >= 1 && int(id) < g.nodes.Len() && g.idsBV.Test(uint(id-1))
}

// CoordinateID returns the external (Dynamic) id embedded at record
// construction time.
func (g *Graph) CoordinateID(id core.ID) core.ID {
	return core.ID(g.nodes.Get(int(id)))
}

// Outdegree returns the number of outgoing edges recorded for id.
func (g *Graph) Outdegree(id core.ID) int {
	return int(g.nodes.Get(int(id) + 1))
}

// Indegree returns the number of incoming edges recorded for id.
func (g *Graph) Indegree(id core.ID) int {
	return int(g.nodes.Get(int(id) + 2))
}

// SeqStart returns the sequence start offset, in the node StringSet's
// code vector, recorded for id.
func (g *Graph) SeqStart(id core.ID) int {
	return int(g.nodes.Get(int(id) + 3))
}

// SeqLength returns the sequence length recorded for id.
func (g *Graph) SeqLength(id core.ID) int {
	return int(g.nodes.Get(int(id) + 4))
}

// recordLength returns the total number of packed-vector slots used
// by id's record.
func (g *Graph) recordLength(id core.ID) int {
	return headerLen + (g.Outdegree(id)+g.Indegree(id))*edgeEntryLen(g.Mode)
}

// EdgesOutPos returns the absolute position of id's first outgoing
// edge slot.
func (g *Graph) EdgesOutPos(id core.ID) int {
	return int(id) + headerLen
}

// EdgesInPos returns the absolute position of id's first incoming
// edge slot.
func (g *Graph) EdgesInPos(id core.ID) int {
	return g.EdgesOutPos(id) + g.Outdegree(id)*edgeEntryLen(g.Mode)
}

// IDToRank returns id's 1-based rank, requiring id to currently exist.
func (g *Graph) IDToRank(id core.ID) (core.Rank, bool) {
	if !g.HasNode(id) {
		return 0, false
	}
	return core.Rank(g.idsBV.Rank1(uint(id))), true
}

// RankToID returns the id at the given 1-based rank.
func (g *Graph) RankToID(rank core.Rank) (core.ID, bool) {
	pos, ok := g.idsBV.Select1(int(rank))
	if !ok {
		return 0, false
	}
	return core.ID(pos) + 1, true
}

// SuccessorID returns the id of the record immediately following id's,
// or 0 if id's record runs to the end of the vector.
func (g *Graph) SuccessorID(id core.ID) core.ID {
	next := int(id) + g.recordLength(id)
	if next >= g.nodes.Len() {
		return 0
	}
	return core.ID(next)
}

func (g *Graph) edgeAdjID(base int) core.ID    { return core.ID(g.nodes.Get(base)) }
func (g *Graph) edgeOverlap(base int) int      { return int(g.nodes.Get(base + edgeEntryLen(g.Mode) - 1)) }
func (g *Graph) edgeLinkType(base int) core.LinkType {
	if g.Mode == core.Directed {
		return core.SSLink
	}
	return core.LinkType(g.nodes.Get(base + 1))
}

// ForEachEdgesOut visits id's outgoing edges, calling cb with the
// neighbor id, the link type and the overlap length. Stops early and
// returns false if cb does.
func (g *Graph) ForEachEdgesOut(id core.ID, cb func(neighbor core.ID, lt core.LinkType, overlap int) bool) bool {
	entryLen := edgeEntryLen(g.Mode)
	base := g.EdgesOutPos(id)
	for i := 0; i < g.Outdegree(id); i++ {
		slot := base + i*entryLen
		if !cb(g.edgeAdjID(slot), g.edgeLinkType(slot), g.edgeOverlap(slot)) {
			return false
		}
	}
	return true
}

// ForEachEdgesIn visits id's incoming edges, calling cb with the
// neighbor id, the link type and the overlap length.
func (g *Graph) ForEachEdgesIn(id core.ID, cb func(neighbor core.ID, lt core.LinkType, overlap int) bool) bool {
	entryLen := edgeEntryLen(g.Mode)
	base := g.EdgesInPos(id)
	for i := 0; i < g.Indegree(id); i++ {
		slot := base + i*entryLen
		if !cb(g.edgeAdjID(slot), g.edgeLinkType(slot), g.edgeOverlap(slot)) {
			return false
		}
	}
	return true
}

// HasEdge reports whether a link of the given type from `from` to
// `to` exists, scanning whichever side has fewer entries.
func (g *Graph) HasEdge(from, to core.ID, lt core.LinkType) bool {
	found := false
	if g.Outdegree(from) <= g.Indegree(to) {
		g.ForEachEdgesOut(from, func(nb core.ID, t core.LinkType, _ int) bool {
			if nb == to && t == lt {
				found = true
				return false
			}
			return true
		})
	} else {
		g.ForEachEdgesIn(to, func(nb core.ID, t core.LinkType, _ int) bool {
			if nb == from && t == lt {
				found = true
				return false
			}
			return true
		})
	}
	return found
}

// EdgeOverlap resolves the overlap length of the edge from `from` to
// `to` with the given type, mirroring [Graph.HasEdge]'s scan strategy.
func (g *Graph) EdgeOverlap(from, to core.ID, lt core.LinkType) (int, bool) {
	overlap, found := 0, false
	if g.Outdegree(from) <= g.Indegree(to) {
		g.ForEachEdgesOut(from, func(nb core.ID, t core.LinkType, ov int) bool {
			if nb == to && t == lt {
				overlap, found = ov, true
				return false
			}
			return true
		})
	} else {
		g.ForEachEdgesIn(to, func(nb core.ID, t core.LinkType, ov int) bool {
			if nb == from && t == lt {
				overlap, found = ov, true
				return false
			}
			return true
		})
	}
	return overlap, found
}

// ForEachNode visits every node id in rank order.
func (g *Graph) ForEachNode(cb func(core.ID) bool) bool {
	id := core.ID(1)
	for int(id) < g.nodes.Len() {
		if g.idsBV.Test(uint(id - 1)) {
			if !cb(id) {
				return false
			}
			id = core.ID(g.recordLength(id)) + id
			continue
		}
		id++
	}
	return true
}
