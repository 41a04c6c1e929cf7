// SPDX-License-Identifier: MIT

package coord

import (
	"testing"

	"github.com/vg-lib/seqgraph/core"
)

func TestIdentity(t *testing.T) {
	var id Identity
	if got := id.Resolve(42); got != 42 {
		t.Errorf("Identity.Resolve(42) = %d, want 42", got)
	}
}

func TestNone(t *testing.T) {
	var n None[string]
	n.Assign("x", 5)
	if got := n.Resolve("x"); got != 0 {
		t.Errorf("None.Resolve = %d, want 0", got)
	}
}

func TestSparse(t *testing.T) {
	s := NewSparse[string]()
	if got := s.Resolve("missing"); got != 0 {
		t.Errorf("Resolve(unmapped) = %d, want 0", got)
	}
	s.Assign("a", 7)
	if got := s.Resolve("a"); got != 7 {
		t.Errorf("Resolve(a) = %d, want 7", got)
	}
}

func TestStoid(t *testing.T) {
	var s Stoid
	if got := s.Resolve("123"); got != core.ID(123) {
		t.Errorf("Resolve(123) = %d, want 123", got)
	}
	if got := s.Resolve("not-a-number"); got != 0 {
		t.Errorf("Resolve(garbage) = %d, want 0", got)
	}
}

func TestDenseGrowRightThenLeft(t *testing.T) {
	d := NewDense()
	d.Assign(10, 100)
	d.Assign(12, 101)
	d.Assign(5, 102) // grows left, shifting 10 and 12 right

	cases := map[int64]core.ID{10: 100, 12: 101, 5: 102}
	for ext, want := range cases {
		if got := d.Resolve(ext); got != want {
			t.Errorf("Resolve(%d) = %d, want %d", ext, got, want)
		}
	}

	if got := d.Resolve(6); got != 0 {
		t.Errorf("Resolve(unassigned 6) = %d, want 0", got)
	}
	if got := d.Resolve(4); got != 0 {
		t.Errorf("Resolve(out of window 4) = %d, want 0", got)
	}
}

func TestDenseUnassignedIsZero(t *testing.T) {
	var d Dense
	if got := d.Resolve(0); got != 0 {
		t.Errorf("Resolve on empty Dense = %d, want 0", got)
	}
}
