// SPDX-License-Identifier: MIT

package succinct

import (
	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/dynamic"
	"github.com/vg-lib/seqgraph/internal/bitset"
	"github.com/vg-lib/seqgraph/internal/packedvec"
	"github.com/vg-lib/seqgraph/internal/stringset"
)

// SeqGraph is the immutable sequence graph: a [Graph] plus the
// sequence/name and path property stores built on top of it.
type SeqGraph struct {
	Graph      *Graph
	NodeProps  *NodeProperty
	PathProps  *GraphProperty
	dynRankSuc map[core.Rank]core.ID // Dynamic rank -> succinct id, retained for Build callers
}

// Build lays a [dynamic.SeqGraph] out into an immutable [SeqGraph]
// over the given sequence alphabet, in the two passes described for
// the succinct node vector: a layout pass that writes every field
// except resolved neighbor ids, followed by an identity pass that
// rewrites each stored Dynamic rank into its succinct id once the
// node bit-vector's rank/select supports are available.
func Build(src *dynamic.SeqGraph, seqAlphabet *core.Alphabet) (*SeqGraph, error) {
	n := src.Graph.NodeCount()

	sequences := make([]string, n)
	names := make([]string, n)
	for r := 1; r <= n; r++ {
		id, _ := src.Graph.IDAt(core.Rank(r))
		seq, _ := src.Nodes.Sequence(id)
		nm, _ := src.Nodes.Name(id)
		sequences[r-1] = seq
		names[r-1] = nm
	}

	seqset := stringset.New(seqAlphabet)
	if err := seqset.Extend(sequences); err != nil {
		return nil, err
	}
	nameset := stringset.New(core.Char)
	if err := nameset.Extend(names); err != nil {
		return nil, err
	}

	nodes := packedvec.New(64)
	var idsBV bitset.BitSet
	nodes.PushN(1) // dummy entry at index 0

	rankToID := make(map[core.Rank]core.ID, n)
	entryLen := edgeEntryLen(src.Graph.Mode)

	for r := 1; r <= n; r++ {
		rank := core.Rank(r)
		dID, _ := src.Graph.IDAt(rank)

		outdegree := src.Graph.Outdegree(dID)
		indegree := src.Graph.Indegree(dID)
		recordLen := headerLen + (outdegree+indegree)*entryLen

		pos := nodes.PushN(recordLen)
		id := core.ID(pos)
		idsBV.Set(uint(pos - 1))
		rankToID[rank] = id

		nodes.Set(pos, uint64(dID))
		nodes.Set(pos+1, uint64(outdegree))
		nodes.Set(pos+2, uint64(indegree))
		nodes.Set(pos+3, uint64(seqset.StartPosition(r-1)))
		nodes.Set(pos+4, uint64(seqset.Length(r-1)))

		outBase := pos + headerLen
		i := 0
		src.Graph.ForEachEdgesOut(dID, func(neighbor core.Side, lt core.LinkType) bool {
			from := core.Side{ID: dID, End: lt == core.ESLink || lt == core.EELink}
			link := core.Link{From: from, To: neighbor}
			neighborRank, _ := src.Graph.RankOf(neighbor.ID)
			writeEdgeSlot(nodes, outBase+i*entryLen, src.Edges, link, neighborRank, lt, src.Graph.Mode)
			i++
			return true
		})

		inBase := outBase + outdegree*entryLen
		j := 0
		src.Graph.ForEachEdgesIn(dID, func(neighbor core.Side, lt core.LinkType) bool {
			to := core.Side{ID: dID, End: lt == core.SELink || lt == core.EELink}
			link := core.Link{From: neighbor, To: to}
			neighborRank, _ := src.Graph.RankOf(neighbor.ID)
			writeEdgeSlot(nodes, inBase+j*entryLen, src.Edges, link, neighborRank, lt, src.Graph.Mode)
			j++
			return true
		})
	}

	// identity pass: rewrite every stored Dynamic rank into its
	// succinct id, now that idsBV's rank/select supports are complete.
	for r := 1; r <= n; r++ {
		id := rankToID[core.Rank(r)]
		outdegree := int(nodes.Get(int(id) + 1))
		indegree := int(nodes.Get(int(id) + 2))
		base := int(id) + headerLen
		for k := 0; k < outdegree+indegree; k++ {
			slot := base + k*entryLen
			dynRank := core.Rank(nodes.Get(slot))
			succID := rankToID[dynRank]
			nodes.Set(slot, uint64(succID))
		}
	}

	g := &Graph{Mode: src.Graph.Mode, nodes: nodes, idsBV: idsBV}

	pathGP, err := buildPaths(src, rankToID)
	if err != nil {
		return nil, err
	}

	return &SeqGraph{
		Graph:      g,
		NodeProps:  &NodeProperty{Seqset: seqset, Nameset: nameset},
		PathProps:  pathGP,
		dynRankSuc: rankToID,
	}, nil
}

// writeEdgeSlot writes one edge entry at slot: the neighbor's Dynamic
// rank (to be rewritten to a succinct id by the identity pass), the
// link type (bidirected only) and the overlap length, looked up under
// the exact link as originally passed to AddEdge.
func writeEdgeSlot(nodes *packedvec.PackedVector, slot int, ep *dynamic.EdgeProperty, link core.Link, neighborRank core.Rank, lt core.LinkType, mode core.Mode) {
	nodes.Set(slot, uint64(neighborRank))

	overlapSlot := slot + 1
	if mode == core.Bidirected {
		nodes.Set(slot+1, uint64(lt))
		overlapSlot = slot + 2
	}

	overlap, _ := ep.Overlap(link)
	nodes.Set(overlapSlot, uint64(overlap))
}

func buildPaths(src *dynamic.SeqGraph, rankToID map[core.Rank]core.ID) (*GraphProperty, error) {
	count := src.Paths.Count()
	names := make([]string, count)
	src.Paths.ForEach(func(p *dynamic.Path) bool {
		rank, _ := src.Paths.Rank(p.ID)
		names[rank-1] = p.Name
		return true
	})

	nameset := stringset.New(core.Char)
	if err := nameset.Extend(names); err != nil {
		return nil, err
	}

	paths := packedvec.New(64)
	var idsBV bitset.BitSet
	paths.PushN(1) // dummy entry at index 0

	src.Paths.ForEach(func(p *dynamic.Path) bool {
		rank, _ := src.Paths.Rank(p.ID)
		recordLen := pathHeaderLen + len(p.Steps)
		pos := paths.PushN(recordLen)
		idsBV.Set(uint(pos - 1))

		paths.Set(pos, p.ID)
		paths.Set(pos+1, uint64(len(p.Steps)))
		paths.Set(pos+2, uint64(nameset.StartPosition(rank-1)))
		paths.Set(pos+3, uint64(nameset.Length(rank-1)))

		for i, step := range p.Steps {
			dID, reversed := core.DecodeStep(step)
			dRank, _ := src.Graph.RankOf(dID)
			succID := rankToID[dRank]
			paths.Set(pos+pathHeaderLen+i, core.EncodeStep(succID, reversed))
		}
		return true
	})

	return &GraphProperty{paths: paths, idsBV: idsBV, names: nameset}, nil
}
