// SPDX-License-Identifier: MIT

// Package dynamic implements the mutable, incrementally-built graph
// representation: [Graph] (the node list, rank map and per-side
// adjacency), the node/edge/path property stores, and the [SeqGraph]
// facade that composes them into the uniform query surface shared
// with the succinct representation.
package dynamic

import "github.com/vg-lib/seqgraph/core"

// Graph is a mutable bidirected (or plain directed) graph: an ordered
// node list, a rank map, and per-side adjacency lists. It is not safe
// for concurrent mutation, nor for concurrent mutation and reads.
type Graph struct {
	Mode core.Mode

	ids    []core.ID
	rankOf map[core.ID]core.Rank

	adjOut map[core.Side][]core.Side
	adjIn  map[core.Side][]core.Side

	edgeCount int
}

// New returns an empty graph in the given mode.
func New(mode core.Mode) *Graph {
	return &Graph{
		Mode:   mode,
		rankOf: make(map[core.ID]core.Rank),
		adjOut: make(map[core.Side][]core.Side),
		adjIn:  make(map[core.Side][]core.Side),
	}
}

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the number of edges currently in the graph.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// HasNode reports whether id currently exists in the graph.
func (g *Graph) HasNode(id core.ID) bool {
	_, ok := g.rankOf[id]
	return ok
}

// RankOf returns the 1-based rank of id in the iteration order.
func (g *Graph) RankOf(id core.ID) (core.Rank, bool) {
	r, ok := g.rankOf[id]
	return r, ok
}

// IDAt returns the id at the given 1-based rank.
func (g *Graph) IDAt(rank core.Rank) (core.ID, bool) {
	if rank < 1 || int(rank) > len(g.ids) {
		return 0, false
	}
	return g.ids[rank-1], true
}

// AddNode inserts a node. If extID is 0, an id is allocated as
// last_id+1, falling back to max-over-the-node-list only on
// collision. It returns [core.ErrDuplicateID] if extID is already
// present.
func (g *Graph) AddNode(extID core.ID) (core.ID, error) {
	id := extID
	if id == 0 {
		id = g.nextID()
	} else if g.HasNode(id) {
		return 0, core.ErrDuplicateID
	}

	g.ids = append(g.ids, id)
	g.rankOf[id] = core.Rank(len(g.ids))
	return id, nil
}

func (g *Graph) nextID() core.ID {
	if len(g.ids) == 0 {
		return 1
	}
	last := g.ids[len(g.ids)-1] + 1
	if !g.HasNode(last) {
		return last
	}

	var max core.ID
	for _, id := range g.ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// AddNodes appends count freshly-allocated nodes, invoking cb(id) for
// each in order.
func (g *Graph) AddNodes(count int, cb func(core.ID)) {
	for i := 0; i < count; i++ {
		id, _ := g.AddNode(0)
		if cb != nil {
			cb(id)
		}
	}
}

// AddEdge appends link to the adjacency of both endpoints. It admits
// multi-edges: calling AddEdge twice with the same link stores it
// twice. Use [Graph.AddEdgeSafe] to reject duplicates.
func (g *Graph) AddEdge(link core.Link) error {
	if !g.HasNode(link.From.ID) || !g.HasNode(link.To.ID) {
		return core.ErrUnknownID
	}

	g.adjOut[link.From] = append(g.adjOut[link.From], link.To)
	g.adjIn[link.To] = append(g.adjIn[link.To], link.From)
	g.edgeCount++
	return nil
}

// AddEdgeSafe is AddEdge, but first rejects the call with
// [core.ErrDuplicateID] if an identical link is already present.
func (g *Graph) AddEdgeSafe(link core.Link) error {
	if g.HasEdge(link) {
		return core.ErrDuplicateID
	}
	return g.AddEdge(link)
}

// HasEdge reports whether link is present, scanning whichever of
// adj_out[from] or adj_in[to] is shorter.
func (g *Graph) HasEdge(link core.Link) bool {
	out := g.adjOut[link.From]
	in := g.adjIn[link.To]
	if len(out) <= len(in) {
		return containsSide(out, link.To)
	}
	return containsSide(in, link.From)
}

func containsSide(sides []core.Side, s core.Side) bool {
	for _, x := range sides {
		if x == s {
			return true
		}
	}
	return false
}

// ForEachEdgesOut visits every outgoing edge of id across both of its
// sides (one, for [core.Directed]), calling cb with the neighbor side
// and the link type. It stops early and returns false if cb does.
func (g *Graph) ForEachEdgesOut(id core.ID, cb func(neighbor core.Side, lt core.LinkType) bool) bool {
	cont := true
	g.Mode.ForEachSide(id, func(from core.Side) bool {
		for _, to := range g.adjOut[from] {
			if !cb(to, core.Link{From: from, To: to}.Type()) {
				cont = false
				return false
			}
		}
		return true
	})
	return cont
}

// ForEachEdgesIn is the mirror of ForEachEdgesOut over incoming edges.
func (g *Graph) ForEachEdgesIn(id core.ID, cb func(neighbor core.Side, lt core.LinkType) bool) bool {
	cont := true
	g.Mode.ForEachSide(id, func(to core.Side) bool {
		for _, from := range g.adjIn[to] {
			if !cb(from, core.Link{From: from, To: to}.Type()) {
				cont = false
				return false
			}
		}
		return true
	})
	return cont
}

// SideOutdegree returns the number of outgoing edges recorded on a
// single side, without summing across both sides of its node.
func (g *Graph) SideOutdegree(s core.Side) int { return len(g.adjOut[s]) }

// SideIndegree returns the number of incoming edges recorded on a
// single side, without summing across both sides of its node.
func (g *Graph) SideIndegree(s core.Side) int { return len(g.adjIn[s]) }

// Outdegree returns the total number of outgoing edges across all
// sides of id.
func (g *Graph) Outdegree(id core.ID) int {
	n := 0
	g.Mode.ForEachSide(id, func(s core.Side) bool {
		n += len(g.adjOut[s])
		return true
	})
	return n
}

// Indegree returns the total number of incoming edges across all
// sides of id.
func (g *Graph) Indegree(id core.ID) int {
	n := 0
	g.Mode.ForEachSide(id, func(s core.Side) bool {
		n += len(g.adjIn[s])
		return true
	})
	return n
}

// ForEachNode visits every node id in rank order.
func (g *Graph) ForEachNode(cb func(core.ID) bool) bool {
	for _, id := range g.ids {
		if !cb(id) {
			return false
		}
	}
	return true
}

// SortNodes permutes the node list and rebuilds the rank map:
// perm[newRank-1] is the old 0-based rank of the node that should
// occupy newRank. Edge and path data are untouched; only rank/id
// bookkeeping changes.
func (g *Graph) SortNodes(perm []int) error {
	if len(perm) != len(g.ids) {
		return core.ErrIndexOutOfRange
	}

	newIDs := make([]core.ID, len(g.ids))
	for newRank, oldRank := range perm {
		if oldRank < 0 || oldRank >= len(g.ids) {
			return core.ErrIndexOutOfRange
		}
		newIDs[newRank] = g.ids[oldRank]
	}

	g.ids = newIDs
	for i, id := range g.ids {
		g.rankOf[id] = core.Rank(i + 1)
	}
	return nil
}

// Clear wipes the graph back to empty.
func (g *Graph) Clear() {
	g.ids = nil
	g.rankOf = make(map[core.ID]core.Rank)
	g.adjOut = make(map[core.Side][]core.Side)
	g.adjIn = make(map[core.Side][]core.Side)
	g.edgeCount = 0
}
