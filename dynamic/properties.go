// SPDX-License-Identifier: MIT

package dynamic

import "github.com/vg-lib/seqgraph/core"

// NodeProperty stores the sequence and name attached to each node,
// keyed by id. Unlike the succinct representation's rank-aligned
// StringSets, id-keying here lets [Graph.SortNodes] reorder ranks
// without a synchronized permutation step: nothing about
// NodeProperty's storage depends on rank order, only its running
// length totals do, and those are counters maintained independently
// of layout.
type NodeProperty struct {
	seq  map[core.ID]string
	name map[core.ID]string

	seqLenSum  int
	nameLenSum int
}

// NewNodeProperty returns an empty node property store.
func NewNodeProperty() *NodeProperty {
	return &NodeProperty{
		seq:  make(map[core.ID]string),
		name: make(map[core.ID]string),
	}
}

// Set attaches sequence and name to id, overwriting any prior value
// and adjusting the running length totals.
func (p *NodeProperty) Set(id core.ID, sequence, name string) {
	if old, ok := p.seq[id]; ok {
		p.seqLenSum -= len(old)
	}
	if old, ok := p.name[id]; ok {
		p.nameLenSum -= len(old)
	}
	p.seq[id] = sequence
	p.name[id] = name
	p.seqLenSum += len(sequence)
	p.nameLenSum += len(name)
}

// Remove drops id's sequence and name, adjusting the running totals.
func (p *NodeProperty) Remove(id core.ID) {
	if old, ok := p.seq[id]; ok {
		p.seqLenSum -= len(old)
		delete(p.seq, id)
	}
	if old, ok := p.name[id]; ok {
		p.nameLenSum -= len(old)
		delete(p.name, id)
	}
}

// Sequence returns id's sequence.
func (p *NodeProperty) Sequence(id core.ID) (string, bool) {
	s, ok := p.seq[id]
	return s, ok
}

// Name returns id's name.
func (p *NodeProperty) Name(id core.ID) (string, bool) {
	n, ok := p.name[id]
	return n, ok
}

// Length returns the length of id's sequence.
func (p *NodeProperty) Length(id core.ID) int {
	return len(p.seq[id])
}

// LengthSum returns the total sequence length and total name length
// summed across every node currently stored.
func (p *NodeProperty) LengthSum() (seq, name int) {
	return p.seqLenSum, p.nameLenSum
}

// Clear empties the store.
func (p *NodeProperty) Clear() {
	p.seq = make(map[core.ID]string)
	p.name = make(map[core.ID]string)
	p.seqLenSum, p.nameLenSum = 0, 0
}

// EdgeProperty stores the overlap length attached to each edge, keyed
// by the link itself (From/To sides), mirroring the GFA CIGAR-derived
// overlap length once the simple-dovetail requirement has been
// checked at the call boundary.
type EdgeProperty struct {
	overlap map[core.Link]int
}

// NewEdgeProperty returns an empty edge property store.
func NewEdgeProperty() *EdgeProperty {
	return &EdgeProperty{overlap: make(map[core.Link]int)}
}

// Set records the overlap length for link.
func (p *EdgeProperty) Set(link core.Link, overlap int) {
	p.overlap[link] = overlap
}

// Overlap returns the overlap length recorded for link.
func (p *EdgeProperty) Overlap(link core.Link) (int, bool) {
	n, ok := p.overlap[link]
	return n, ok
}

// Remove drops link's overlap.
func (p *EdgeProperty) Remove(link core.Link) {
	delete(p.overlap, link)
}

// Clear empties the store.
func (p *EdgeProperty) Clear() {
	p.overlap = make(map[core.Link]int)
}

// Path is a named, ordered sequence of path-base-encoded steps (see
// [core.EncodeStep]).
type Path struct {
	ID    uint64
	Name  string
	Steps []uint64
}

// Length reports the number of steps in the path.
func (p *Path) Length() int { return len(p.Steps) }

// GraphProperty stores the ordered list of named paths over a graph,
// plus a path rank map (name and id both resolve to the same
// insertion-ordered sequence). Path membership is validated against a
// graph's current node set by the owning [SeqGraph], not by
// GraphProperty itself, since GraphProperty has no reference to node
// existence.
type GraphProperty struct {
	order  []uint64
	byID   map[uint64]*Path
	byName map[string]uint64
	nextID uint64
}

// NewGraphProperty returns an empty path store.
func NewGraphProperty() *GraphProperty {
	return &GraphProperty{
		byID:   make(map[uint64]*Path),
		byName: make(map[string]uint64),
	}
}

// AddPath creates an empty path named name, returning
// [core.ErrDuplicatePath] if the name is already taken.
func (p *GraphProperty) AddPath(name string) (uint64, error) {
	if _, ok := p.byName[name]; ok {
		return 0, core.ErrDuplicatePath
	}
	p.nextID++
	id := p.nextID
	p.byID[id] = &Path{ID: id, Name: name}
	p.byName[name] = id
	p.order = append(p.order, id)
	return id, nil
}

// Rank returns the 1-based insertion rank of the path identified by
// id, the same order [GraphProperty.ForEach] and a succinct build walk.
func (p *GraphProperty) Rank(id uint64) (int, bool) {
	for i, pid := range p.order {
		if pid == id {
			return i + 1, true
		}
	}
	return 0, false
}

// Count returns the number of paths stored.
func (p *GraphProperty) Count() int { return len(p.order) }

// Extend appends steps to the path identified by id, returning
// [core.ErrUnknownID] if the path does not exist.
func (p *GraphProperty) Extend(id uint64, steps []uint64) error {
	path, ok := p.byID[id]
	if !ok {
		return core.ErrUnknownID
	}
	path.Steps = append(path.Steps, steps...)
	return nil
}

// ByID returns the path with the given id.
func (p *GraphProperty) ByID(id uint64) (*Path, bool) {
	path, ok := p.byID[id]
	return path, ok
}

// ByName returns the id of the path named name.
func (p *GraphProperty) ByName(name string) (uint64, bool) {
	id, ok := p.byName[name]
	return id, ok
}

// ForEach visits every path in insertion order. Stops early and
// returns false if cb does.
func (p *GraphProperty) ForEach(cb func(*Path) bool) bool {
	for _, id := range p.order {
		if !cb(p.byID[id]) {
			return false
		}
	}
	return true
}

// Clear empties the store.
func (p *GraphProperty) Clear() {
	p.order = nil
	p.byID = make(map[uint64]*Path)
	p.byName = make(map[string]uint64)
	p.nextID = 0
}
