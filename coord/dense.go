// SPDX-License-Identifier: MIT

package coord

import "github.com/vg-lib/seqgraph/core"

// Dense resolves small, densely-packed external integer ids through a
// plain backing array indexed by external-min, growing geometrically
// (capacity rounds up to the next power of two) as the [min,max]
// window widens in either direction. Inserting an external smaller
// than the current min shifts the array right; inserting one larger
// extends it.
type Dense struct {
	min, max int64
	inited   bool
	data     []core.ID
}

// NewDense returns an empty Dense coordinate system.
func NewDense() *Dense { return &Dense{} }

// Resolve returns the internal id mapped to external, or 0 if
// external falls outside the current [min,max] window.
func (d *Dense) Resolve(external int64) core.ID {
	if !d.inited || external < d.min || external > d.max {
		return 0
	}
	return d.data[external-d.min]
}

// Assign maps external to internal, growing the backing array if
// necessary.
func (d *Dense) Assign(external int64, internal core.ID) {
	switch {
	case !d.inited:
		d.min, d.max = external, external
		d.data = make([]core.ID, 1)
		d.inited = true
	case external < d.min:
		d.growLeft(external)
	case external > d.max:
		d.growRight(external)
	}
	d.data[external-d.min] = internal
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// growLeft extends the window to include newMin < d.min, shifting the
// existing contents right within a freshly sized backing array.
func (d *Dense) growLeft(newMin int64) {
	shift := int(d.min - newMin)
	logical := int(d.max-newMin) + 1
	newData := make([]core.ID, nextPow2(logical))
	copy(newData[shift:], d.data)
	d.data = newData
	d.min = newMin
}

// growRight extends the window to include newMax > d.max, reusing the
// existing backing array if its capacity already covers the new span.
func (d *Dense) growRight(newMax int64) {
	logical := int(newMax-d.min) + 1
	if logical <= len(d.data) {
		d.max = newMax
		return
	}
	newData := make([]core.ID, nextPow2(logical))
	copy(newData, d.data)
	d.data = newData
	d.max = newMax
}
