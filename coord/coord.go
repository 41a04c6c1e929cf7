// SPDX-License-Identifier: MIT

// Package coord implements the pluggable coordinate systems that map
// an external id space (parser-supplied names or numbers) onto the
// graph's internal [core.ID] space. Every variant exposes the same
// two operations: Resolve (query; 0 means unmapped) and Assign
// (update); see [System].
package coord

import "github.com/vg-lib/seqgraph/core"

// System maps an external identifier of type E onto the internal id
// space. Resolve never fails: an unmapped external id resolves to 0,
// the reserved "none" id.
type System[E comparable] interface {
	Resolve(external E) core.ID
	Assign(external E, internal core.ID)
}

// Identity treats the external id as the internal id directly; Assign
// is a no-op.
type Identity struct{}

func (Identity) Resolve(external int64) core.ID { return core.ID(external) }
func (Identity) Assign(int64, core.ID)          {}

// None never resolves anything and ignores every assignment.
type None[E comparable] struct{}

func (None[E]) Resolve(E) core.ID   { return 0 }
func (None[E]) Assign(E, core.ID) {}

// Sparse resolves external ids through a hash map. The zero value is
// ready to use.
type Sparse[E comparable] struct {
	m map[E]core.ID
}

// NewSparse returns an empty Sparse coordinate system.
func NewSparse[E comparable]() *Sparse[E] {
	return &Sparse[E]{m: make(map[E]core.ID)}
}

func (s *Sparse[E]) Resolve(external E) core.ID {
	return s.m[external]
}

func (s *Sparse[E]) Assign(external E, internal core.ID) {
	if s.m == nil {
		s.m = make(map[E]core.ID)
	}
	s.m[external] = internal
}

// Len reports the number of mappings held.
func (s *Sparse[E]) Len() int { return len(s.m) }
