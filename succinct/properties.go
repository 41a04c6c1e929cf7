// SPDX-License-Identifier: MIT

package succinct

import (
	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/internal/bitset"
	"github.com/vg-lib/seqgraph/internal/packedvec"
	"github.com/vg-lib/seqgraph/internal/stringset"
)

// NodeProperty stores the per-node sequence and name, backed by two
// StringSets extended in rank order: seqset over the sequence
// alphabet, nameset over [core.Char]. A node's sequence span is also
// cached directly in its [Graph] record (SeqStart/SeqLength) so
// reading it needs no rank lookup; its name is found by rank, since
// name offsets are not duplicated into the node record.
type NodeProperty struct {
	Seqset  *stringset.StringSet
	Nameset *stringset.StringSet
}

// Sequence returns id's sequence, read directly from seqset using the
// span cached in the node record.
func (p *NodeProperty) Sequence(g *Graph, id core.ID) string {
	return p.Seqset.Substring(g.SeqStart(id), g.SeqLength(id))
}

// Name returns id's name, found via its rank into nameset.
func (p *NodeProperty) Name(g *Graph, id core.ID) (string, error) {
	rank, ok := g.IDToRank(id)
	if !ok {
		return "", core.ErrUnknownID
	}
	return p.Nameset.At(int(rank) - 1)
}

const pathHeaderLen = 4 // path_id, path_length, name_position, name_length

// GraphProperty stores the set of paths over a succinct graph: one
// packed integer vector of path records, a bit-vector marking record
// starts (mirroring the node graph's id/rank scheme), and a
// concatenated name StringSet over [core.Char].
type GraphProperty struct {
	paths *packedvec.PackedVector
	idsBV bitset.BitSet
	names *stringset.StringSet
}

// Count returns the number of paths stored.
func (p *GraphProperty) Count() int { return p.idsBV.Count() }

// PositionToRank returns the 1-based rank of the path record
// beginning at pos.
func (p *GraphProperty) PositionToRank(pos uint64) (int, bool) {
	if pos < 1 || int(pos) >= p.paths.Len() || !p.idsBV.Test(uint(pos-1)) {
		return 0, false
	}
	return p.idsBV.Rank1(uint(pos)), true
}

// RankToPosition returns the packed-vector position of the path with
// the given 1-based rank.
func (p *GraphProperty) RankToPosition(rank int) (uint64, bool) {
	pos, ok := p.idsBV.Select1(rank)
	if !ok {
		return 0, false
	}
	return uint64(pos) + 1, true
}

// ByPathID resolves a path's numeric id (assigned in insertion order,
// starting at 1, by the Dynamic GraphProperty this graph was built
// from) to its packed-vector position. Paths are never deleted, so
// id and rank coincide.
func (p *GraphProperty) ByPathID(pathID uint64) (uint64, bool) {
	return p.RankToPosition(int(pathID))
}

// View returns a read-only view over the path at pos.
func (p *GraphProperty) View(pos uint64) PathView {
	return PathView{gp: p, pos: pos}
}

// PathView is a read-only window onto one path record.
type PathView struct {
	gp  *GraphProperty
	pos uint64
}

// ID returns the path's numeric id.
func (v PathView) ID() uint64 { return v.gp.paths.Get(int(v.pos)) }

// Size returns the number of steps in the path.
func (v PathView) Size() int { return int(v.gp.paths.Get(int(v.pos) + 1)) }

// Name returns the path's name.
func (v PathView) Name() string {
	namePos := int(v.gp.paths.Get(int(v.pos) + 2))
	nameLen := int(v.gp.paths.Get(int(v.pos) + 3))
	return v.gp.names.Substring(namePos, nameLen)
}

func (v PathView) step(i int) uint64 {
	return v.gp.paths.Get(int(v.pos) + pathHeaderLen + i)
}

// Begin returns the (id, reversed) pair of the first step.
func (v PathView) Begin() (core.ID, bool) { return core.DecodeStep(v.step(0)) }

// Front is an alias for Begin.
func (v PathView) Front() (core.ID, bool) { return v.Begin() }

// Back returns the (id, reversed) pair of the last step.
func (v PathView) Back() (core.ID, bool) { return core.DecodeStep(v.step(v.Size() - 1)) }

// End mirrors Back, the path-view naming used alongside Begin.
func (v PathView) End() (core.ID, bool) { return v.Back() }

// IDOf returns the node id at step i.
func (v PathView) IDOf(i int) core.ID {
	id, _ := core.DecodeStep(v.step(i))
	return id
}

// IsReverse reports whether step i is traversed in reverse.
func (v PathView) IsReverse(i int) bool {
	_, reversed := core.DecodeStep(v.step(i))
	return reversed
}

// ForEachNode visits every (id, reversed) step pair in order. Stops
// early and returns false if cb does.
func (v PathView) ForEachNode(cb func(id core.ID, reversed bool) bool) bool {
	for i := 0; i < v.Size(); i++ {
		id, reversed := core.DecodeStep(v.step(i))
		if !cb(id, reversed) {
			return false
		}
	}
	return true
}
