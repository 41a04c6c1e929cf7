// SPDX-License-Identifier: MIT

package dynamic

import (
	"testing"

	"github.com/vg-lib/seqgraph/core"
)

func TestNodePropertyLengthSum(t *testing.T) {
	p := NewNodeProperty()
	p.Set(1, "ACGT", "n1")
	p.Set(2, "AC", "n2")

	seqSum, nameSum := p.LengthSum()
	if seqSum != 6 || nameSum != 4 {
		t.Errorf("LengthSum = %d, %d; want 6, 4", seqSum, nameSum)
	}

	p.Set(1, "A", "x") // overwrite, shrinking both totals
	seqSum, nameSum = p.LengthSum()
	if seqSum != 3 || nameSum != 3 {
		t.Errorf("LengthSum after overwrite = %d, %d; want 3, 3", seqSum, nameSum)
	}

	p.Remove(2)
	seqSum, nameSum = p.LengthSum()
	if seqSum != 1 || nameSum != 1 {
		t.Errorf("LengthSum after remove = %d, %d; want 1, 1", seqSum, nameSum)
	}
}

func TestEdgePropertyRoundTrip(t *testing.T) {
	p := NewEdgeProperty()
	link := core.MakeLink(1, 2)
	if _, ok := p.Overlap(link); ok {
		t.Fatal("expected no overlap before Set")
	}
	p.Set(link, 5)
	if got, ok := p.Overlap(link); !ok || got != 5 {
		t.Errorf("Overlap = %d, %v; want 5, true", got, ok)
	}
	p.Remove(link)
	if _, ok := p.Overlap(link); ok {
		t.Error("expected no overlap after Remove")
	}
}

func TestGraphPropertyAddExtendForEach(t *testing.T) {
	p := NewGraphProperty()
	id, err := p.AddPath("x")
	if err != nil {
		t.Fatalf("AddPath: %v", err)
	}
	steps := []uint64{core.EncodeStep(1, false), core.EncodeStep(2, true)}
	if err := p.Extend(id, steps); err != nil {
		t.Fatalf("Extend: %v", err)
	}

	path, ok := p.ByID(id)
	if !ok || path.Length() != 2 {
		t.Fatalf("ByID = %+v, %v", path, ok)
	}
	decodedID, reversed := core.DecodeStep(path.Steps[1])
	if decodedID != 2 || !reversed {
		t.Errorf("DecodeStep(steps[1]) = %d, %v; want 2, true", decodedID, reversed)
	}

	visited := 0
	p.ForEach(func(*Path) bool { visited++; return true })
	if visited != 1 {
		t.Errorf("ForEach visited %d, want 1", visited)
	}
}

func TestGraphPropertyExtendUnknown(t *testing.T) {
	p := NewGraphProperty()
	if err := p.Extend(999, nil); err != core.ErrUnknownID {
		t.Fatalf("Extend(unknown) = %v, want ErrUnknownID", err)
	}
}
