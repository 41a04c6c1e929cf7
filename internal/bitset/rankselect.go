// SPDX-License-Identifier: MIT

package bitset

import "math/bits"

// Rank1 returns the number of set bits in the half-open range [0,i),
// the succinct-literature convention (as opposed to [Rank], which is
// inclusive of i). Rank1(0) is always 0.
func (b BitSet) Rank1(i uint) int {
	if i == 0 {
		return 0
	}
	return b.Rank(i - 1)
}

// Select1 returns the position of the rank-th set bit (1-indexed: rank==1
// is the first set bit). ok is false if the bitset has fewer than rank
// set bits.
func (b BitSet) Select1(rank int) (pos uint, ok bool) {
	if rank <= 0 {
		return 0, false
	}

	remaining := rank
	for wordIdx, word := range b {
		c := bits.OnesCount64(word)
		if remaining > c {
			remaining -= c
			continue
		}

		// the target bit lives in this word; clear set bits one at a
		// time until the remaining-th one is found.
		for word != 0 {
			remaining--
			lsb := word & (-word)
			if remaining == 0 {
				return uint(wordIdx<<log2WordSize) + uint(bits.TrailingZeros64(lsb)), true
			}
			word ^= lsb
		}
	}

	return 0, false
}
