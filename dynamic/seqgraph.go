// SPDX-License-Identifier: MIT

package dynamic

import "github.com/vg-lib/seqgraph/core"

// SeqGraph composes [Graph] with the node, edge and path property
// stores into the uniform sequence-graph surface also implemented by
// the succinct representation. It is the mutable half of the
// Dynamic/Succinct pair: built incrementally, then handed to a build
// pipeline that lays it out into a succinct graph.
type SeqGraph struct {
	Graph *Graph
	Nodes *NodeProperty
	Edges *EdgeProperty
	Paths *GraphProperty
}

// NewSeqGraph returns an empty sequence graph in the given mode.
func NewSeqGraph(mode core.Mode) *SeqGraph {
	return &SeqGraph{
		Graph: New(mode),
		Nodes: NewNodeProperty(),
		Edges: NewEdgeProperty(),
		Paths: NewGraphProperty(),
	}
}

// AddNode inserts a node with the given sequence and name. If extID
// is 0 an id is allocated.
func (g *SeqGraph) AddNode(extID core.ID, sequence, name string) (core.ID, error) {
	id, err := g.Graph.AddNode(extID)
	if err != nil {
		return 0, err
	}
	g.Nodes.Set(id, sequence, name)
	return id, nil
}

// UpdateNode overwrites the sequence and name of an existing node,
// returning [core.ErrUnknownID] if id is not present.
func (g *SeqGraph) UpdateNode(id core.ID, sequence, name string) error {
	if !g.Graph.HasNode(id) {
		return core.ErrUnknownID
	}
	g.Nodes.Set(id, sequence, name)
	return nil
}

// AddEdge inserts link with the given overlap length, rejecting the
// call if either endpoint is missing.
func (g *SeqGraph) AddEdge(link core.Link, overlap int) error {
	if err := g.Graph.AddEdgeSafe(link); err != nil {
		return err
	}
	g.Edges.Set(link, overlap)
	return nil
}

// AddDovetailEdge validates and inserts a GFA-style edge between the
// end (or start, if sourceReverse) of a source node and the start (or
// end, if sinkReverse) of a sink node. The core only accepts simple dovetail overlaps: the sink
// boundary must start at 0 and the source boundary must reach its
// sequence's end, i.e. no internal containment or staggered overlap.
// Anything else fails loudly with [core.ErrNonDovetailBoundary].
func (g *SeqGraph) AddDovetailEdge(source core.ID, sourceReverse bool, sink core.ID, sinkReverse bool, sourceBegin, sourceEnd, sinkBegin, sinkEnd int) error {
	sourceLen := g.Nodes.Length(source)
	if sinkBegin != 0 || sourceEnd != sourceLen || sourceEnd-sourceBegin != sinkEnd {
		return core.ErrNonDovetailBoundary
	}

	from := core.Side{ID: source, End: !sourceReverse}
	to := core.Side{ID: sink, End: sinkReverse}
	return g.AddEdge(core.Link{From: from, To: to}, sinkEnd-sinkBegin)
}

// AddPath creates an empty named path.
func (g *SeqGraph) AddPath(name string) (uint64, error) {
	return g.Paths.AddPath(name)
}

// ExtendPath appends (id, reversed) steps to an existing path,
// requiring every id to currently exist in the graph unless force is
// set.
func (g *SeqGraph) ExtendPath(pathID uint64, ids []core.ID, reversed []bool, force bool) error {
	if !force {
		for _, id := range ids {
			if !g.Graph.HasNode(id) {
				return core.ErrUnknownID
			}
		}
	}

	steps := make([]uint64, len(ids))
	for i, id := range ids {
		r := i < len(reversed) && reversed[i]
		steps[i] = core.EncodeStep(id, r)
	}
	return g.Paths.Extend(pathID, steps)
}

// HasNode reports whether id exists.
func (g *SeqGraph) HasNode(id core.ID) bool { return g.Graph.HasNode(id) }

// HasEdge reports whether link exists.
func (g *SeqGraph) HasEdge(link core.Link) bool { return g.Graph.HasEdge(link) }

// HasPath reports whether a path named name exists.
func (g *SeqGraph) HasPath(name string) bool {
	_, ok := g.Paths.ByName(name)
	return ok
}

// ForEachNode visits every node id in rank order.
func (g *SeqGraph) ForEachNode(cb func(core.ID) bool) bool { return g.Graph.ForEachNode(cb) }

// ForEachEdgesOut visits id's outgoing edges.
func (g *SeqGraph) ForEachEdgesOut(id core.ID, cb func(core.Side, core.LinkType) bool) bool {
	return g.Graph.ForEachEdgesOut(id, cb)
}

// ForEachEdgesIn visits id's incoming edges.
func (g *SeqGraph) ForEachEdgesIn(id core.ID, cb func(core.Side, core.LinkType) bool) bool {
	return g.Graph.ForEachEdgesIn(id, cb)
}

// ForEachPath visits every path.
func (g *SeqGraph) ForEachPath(cb func(*Path) bool) bool { return g.Paths.ForEach(cb) }

// NodeSequence returns id's sequence.
func (g *SeqGraph) NodeSequence(id core.ID) (string, bool) { return g.Nodes.Sequence(id) }

// NodeLength returns the length of id's sequence.
func (g *SeqGraph) NodeLength(id core.ID) int { return g.Nodes.Length(id) }

// EdgeOverlap returns the overlap length recorded for link.
func (g *SeqGraph) EdgeOverlap(link core.Link) (int, bool) { return g.Edges.Overlap(link) }

// PathLength returns the number of steps in a path.
func (g *SeqGraph) PathLength(pathID uint64) int {
	p, ok := g.Paths.ByID(pathID)
	if !ok {
		return 0
	}
	return p.Length()
}

// PathName returns a path's name.
func (g *SeqGraph) PathName(pathID uint64) (string, bool) {
	p, ok := g.Paths.ByID(pathID)
	if !ok {
		return "", false
	}
	return p.Name, true
}

// IDToRank returns id's 1-based rank.
func (g *SeqGraph) IDToRank(id core.ID) (core.Rank, bool) { return g.Graph.RankOf(id) }

// RankToID returns the id at the given rank.
func (g *SeqGraph) RankToID(rank core.Rank) (core.ID, bool) { return g.Graph.IDAt(rank) }

// SuccessorID returns the id occupying the next rank after id, the
// Dynamic analogue of the succinct representation's byte-offset
// successor: "next in iteration order" rather than "next record in
// the packed vector". Returns 0 if id is the last in rank order or
// does not exist.
func (g *SeqGraph) SuccessorID(id core.ID) core.ID {
	rank, ok := g.Graph.RankOf(id)
	if !ok {
		return 0
	}
	next, ok := g.Graph.IDAt(rank + 1)
	if !ok {
		return 0
	}
	return next
}

// CoordinateID returns id unchanged: a Dynamic graph has no separate
// notion of "externally embedded coordinate" distinct from the id
// itself, unlike the succinct representation's frozen layout.
func (g *SeqGraph) CoordinateID(id core.ID) core.ID { return id }

// Clear empties every component.
func (g *SeqGraph) Clear() {
	g.Graph.Clear()
	g.Nodes.Clear()
	g.Edges.Clear()
	g.Paths.Clear()
}
