// SPDX-License-Identifier: MIT

package bitset

import "testing"

func TestRank1Select1RoundTrip(t *testing.T) {
	var b BitSet
	for _, i := range []uint{0, 3, 4, 8, 63, 64, 130, 255, 256} {
		b.Set(i)
	}

	ones := []uint{0, 3, 4, 8, 63, 64, 130, 255, 256}
	for rank, pos := range ones {
		if got, ok := b.Select1(rank + 1); !ok || got != pos {
			t.Errorf("Select1(%d) = (%d,%v), want (%d,true)", rank+1, got, ok, pos)
		}
	}

	for rank, pos := range ones {
		if got := b.Rank1(pos); got != rank {
			t.Errorf("Rank1(%d) = %d, want %d", pos, got, rank)
		}
		if got := b.Rank1(pos + 1); got != rank+1 {
			t.Errorf("Rank1(%d) = %d, want %d", pos+1, got, rank+1)
		}
	}

	if _, ok := b.Select1(len(ones) + 1); ok {
		t.Errorf("Select1 past the last set bit should report ok=false")
	}

	if got := (BitSet)(nil).Rank1(5); got != 0 {
		t.Errorf("Rank1 on nil bitset = %d, want 0", got)
	}
	if _, ok := (BitSet)(nil).Select1(1); ok {
		t.Errorf("Select1 on nil bitset should report ok=false")
	}
}
