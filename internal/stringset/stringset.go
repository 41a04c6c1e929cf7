// SPDX-License-Identifier: MIT

// Package stringset implements an ordered set of strings over a fixed
// [core.Alphabet], stored as one packed code vector plus a delimiter
// bit-vector, with rank/select-backed position queries. It backs the
// succinct NodeProperty's sequence and name storage and the succinct
// path names.
package stringset

import (
	"fmt"

	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/internal/bitset"
	"github.com/vg-lib/seqgraph/internal/packedvec"
)

// StringSet stores a sequence of strings over alphabet as one packed
// code vector, with a 1-bit appended after every string to mark its
// terminator slot in the delimiter bit-vector. Extend is the only
// mutator and it is monotonic (append-only).
type StringSet struct {
	alphabet *core.Alphabet
	codes    *packedvec.PackedVector
	breaks   bitset.BitSet
	count    int
}

// New returns an empty StringSet over alphabet.
func New(alphabet *core.Alphabet) *StringSet {
	return &StringSet{alphabet: alphabet, codes: packedvec.New(uint(alphabet.Width()))}
}

// Alphabet returns the alphabet this set encodes strings over.
func (s *StringSet) Alphabet() *core.Alphabet { return s.alphabet }

// Count returns the number of strings stored.
func (s *StringSet) Count() int { return s.count }

// Extend appends strs in order, encoding each over the set's
// alphabet. It is the only mutator; StringSets are append-only.
func (s *StringSet) Extend(strs []string) error {
	total := 0
	for _, str := range strs {
		total += len(str) + 1
	}
	s.codes.Reserve(s.codes.Len() + total)

	for _, str := range strs {
		for i := 0; i < len(str); i++ {
			c, ok := s.alphabet.Char2Comp(str[i])
			if !ok {
				return fmt.Errorf("stringset: character %q not in alphabet %s", str[i], s.alphabet.Name())
			}
			s.codes.Push(uint64(c))
		}

		pos := s.codes.Push(0) // terminator slot, value unused
		s.breaks.Set(uint(pos))
		s.count++
	}

	return nil
}

// StartPosition returns the absolute code-vector position where
// string i begins.
func (s *StringSet) StartPosition(i int) int {
	if i == 0 {
		return 0
	}
	pos, ok := s.breaks.Select1(i)
	if !ok {
		panic("stringset: start_position index out of range")
	}
	return int(pos) + 1
}

// EndPosition returns the absolute code-vector position one past the
// last data character of string i (i.e. the position of its own
// terminator slot).
func (s *StringSet) EndPosition(i int) int {
	pos, ok := s.breaks.Select1(i + 1)
	if !ok {
		panic("stringset: end_position index out of range")
	}
	return int(pos)
}

// Length returns the number of characters in string i.
func (s *StringSet) Length(i int) int {
	return s.EndPosition(i) - s.StartPosition(i)
}

// LengthSum returns the total number of data characters across all
// strings, i.e. the code vector size minus the delimiter count.
func (s *StringSet) LengthSum() int {
	return s.codes.Len() - s.count
}

// Idx returns the index of the string containing absolute code
// position pos. Note this counts delimiters up to and including pos
// (not the exclusive [0,pos) convention used elsewhere for rank): a
// position that lands exactly on a terminator slot is reported as
// belonging to the following string, since a terminator slot carries
// no data of its own.
func (s *StringSet) Idx(pos int) int {
	return s.breaks.Rank(uint(pos))
}

// At decodes and returns string i.
func (s *StringSet) At(i int) (string, error) {
	if i < 0 || i >= s.count {
		return "", core.ErrIndexOutOfRange
	}
	return s.Substring(s.StartPosition(i), s.Length(i)), nil
}

// Substring decodes length codes starting at the absolute position
// pos, without regard to string boundaries; used by the succinct
// node-sequence accessor, which already knows its own span.
func (s *StringSet) Substring(pos, length int) string {
	buf := make([]byte, length)
	for i := 0; i < length; i++ {
		buf[i] = s.alphabet.Comp2Char(uint8(s.codes.Get(pos + i)))
	}
	return string(buf)
}

// Clear resets the set to empty.
func (s *StringSet) Clear() {
	s.codes.Clear()
	s.breaks = nil
	s.count = 0
}
