// SPDX-License-Identifier: MIT

package core

import (
	"fmt"

	"github.com/vg-lib/seqgraph/internal/bitset"
)

// Alphabet is a fixed, compressed character set. char2comp and
// comp2char are branch-free lookups backed by rank/select over a
// 256-bit presence vector of valid ASCII code points.
type Alphabet struct {
	name     string
	width    int // bits per symbol: 2, 3 or 8
	present  bitset.BitSet256
	ordered  []uint          // comp -> char, i.e. select_1(present, comp+1)
	char2cmp [256]int8       // char -> comp, -1 if absent
	compl    map[uint8]uint8 // comp -> complement comp, DNA/DNA5 only
}

// NewAlphabet builds an Alphabet from the given set of valid
// characters, in ascending order of their assigned code. width is the
// number of bits needed to store a code (2, 3 or 8).
func NewAlphabet(name string, width int, chars string) *Alphabet {
	a := &Alphabet{name: name, width: width}
	for i := range a.char2cmp {
		a.char2cmp[i] = -1
	}

	for i := 0; i < len(chars); i++ {
		a.present.MustSet(uint(chars[i]))
	}

	a.ordered = a.present.All()
	for comp, ch := range a.ordered {
		a.char2cmp[ch] = int8(comp)
	}

	return a
}

// Name returns the alphabet's identifier, e.g. "dna5".
func (a *Alphabet) Name() string { return a.name }

// Width returns the number of bits needed to encode one symbol.
func (a *Alphabet) Width() int { return a.width }

// Size returns the number of distinct symbols in the alphabet.
func (a *Alphabet) Size() int { return len(a.ordered) }

// Char2Comp maps an ASCII character to its 0-indexed code within the
// alphabet. ok is false if c is not part of the alphabet.
func (a *Alphabet) Char2Comp(c byte) (comp uint8, ok bool) {
	v := a.char2cmp[c]
	if v < 0 {
		return 0, false
	}
	return uint8(v), true
}

// Comp2Char maps a 0-indexed code back to its ASCII character. It
// panics if comp is not a valid code for this alphabet.
func (a *Alphabet) Comp2Char(comp uint8) byte {
	if int(comp) >= len(a.ordered) {
		panic(fmt.Sprintf("%s: comp2char: code %d out of range", a.name, comp))
	}
	return byte(a.ordered[comp])
}

// Encode converts a sequence string into its packed codes.
func (a *Alphabet) Encode(seq string) ([]uint8, error) {
	codes := make([]uint8, len(seq))
	for i := range seq {
		c, ok := a.Char2Comp(seq[i])
		if !ok {
			return nil, fmt.Errorf("%s: character %q not in alphabet", a.name, seq[i])
		}
		codes[i] = c
	}
	return codes, nil
}

// Decode converts packed codes back into a sequence string.
func (a *Alphabet) Decode(codes []uint8) string {
	buf := make([]byte, len(codes))
	for i, c := range codes {
		buf[i] = a.Comp2Char(c)
	}
	return string(buf)
}

// Complement returns the complementary code for DNA/DNA5 alphabets
// (A<->T, C<->G, N->N). ok is false for alphabets without a defined
// complement, such as [Char].
func (a *Alphabet) Complement(comp uint8) (uint8, bool) {
	if a.compl == nil {
		return 0, false
	}
	c, ok := a.compl[comp]
	return c, ok
}

// IsSupersetOf reports whether every symbol of other is also a symbol
// of a, the compile-time is_superset relation made a runtime check.
func (a *Alphabet) IsSupersetOf(other *Alphabet) bool {
	for _, ch := range other.ordered {
		if _, ok := a.Char2Comp(byte(ch)); !ok {
			return false
		}
	}
	return true
}

func withComplement(a *Alphabet, pairs map[byte]byte) *Alphabet {
	a.compl = make(map[uint8]uint8, len(pairs))
	for from, to := range pairs {
		fc, ok1 := a.Char2Comp(from)
		tc, ok2 := a.Char2Comp(to)
		if ok1 && ok2 {
			a.compl[fc] = tc
		}
	}
	return a
}

// Predefined alphabets, process-wide constant read-only data; never
// mutate these.
var (
	// DNA is the 2-bit alphabet {A,C,G,T}.
	DNA = withComplement(NewAlphabet("dna", 2, "ACGT"), map[byte]byte{
		'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C',
	})

	// DNA5 is the 3-bit alphabet {A,C,G,T,N}, a superset of DNA.
	DNA5 = withComplement(NewAlphabet("dna5", 3, "ACGTN"), map[byte]byte{
		'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'N': 'N',
	})

	// Char is the pass-through 8-bit identity alphabet, a superset of
	// every other alphabet.
	Char = func() *Alphabet {
		chars := make([]byte, 256)
		for i := range chars {
			chars[i] = byte(i)
		}
		return NewAlphabet("char", 8, string(chars))
	}()
)
