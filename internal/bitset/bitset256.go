// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitset implements bitsets, a mapping
// between non-negative integers and boolean values.
//
// Studied [github.com/bits-and-blooms/bitset] inside out
// and rewrote needed parts from scratch for this project.
//
// This implementation is heavily optimized for this internal use case.
package bitset

import (
	"math/bits"
)

// BitSet256 represents a fixed size bitset from [0..255]. It backs
// [core.Alphabet]'s 256-entry presence vector, which only ever needs
// to record and enumerate valid code points, not the trie-oriented
// set algebra the rest of this type historically supported.
type BitSet256 [4]uint64

// MustSet sets the bit, it panic's if bit is > 255 by intention!
func (b *BitSet256) MustSet(bit uint) {
	b[bit>>6] |= 1 << (bit & 63)
}

// AsSlice returns all set bits as slice of uint without
// heap allocations.
//
// This is faster than All, but also more dangerous,
// it panics if the capacity of buf is less than the number of set bits.
func (b *BitSet256) AsSlice(buf []uint) []uint {
	buf = buf[:cap(buf)] // use cap as max len

	size := 0
	for wIdx, word := range b {
		for ; word != 0; size++ {
			// panics if capacity of buf is exceeded.
			buf[size] = uint(wIdx<<6 + bits.TrailingZeros64(word))

			// clear the rightmost set bit
			word &= word - 1
		}
	}

	buf = buf[:size]
	return buf
}

// All returns all set bits. This has a simpler API but is slower than AsSlice.
func (b *BitSet256) All() []uint {
	return b.AsSlice(make([]uint, 0, 256))
}
