// SPDX-License-Identifier: MIT

// Package golden generates randomized graph fixtures for
// property-style tests: random sequences over a given alphabet, and
// random chain graphs whose nodes are inserted in a scrambled,
// non-topological order.
package golden

import (
	"math/rand/v2"

	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/dynamic"
)

// RandomSequence returns a random sequence of the given length drawn
// from alphabet's characters.
func RandomSequence(prng *rand.Rand, alphabet *core.Alphabet, length int) string {
	chars := make([]byte, length)
	size := alphabet.Size()
	for i := range chars {
		chars[i] = alphabet.Comp2Char(uint8(prng.IntN(size)))
	}
	return string(chars)
}

// RandomChain builds a bidirected chain of n nodes linked by default
// dovetail edges with zero overlap, each carrying a random sequence
// of length in [minLen,maxLen). Nodes are inserted in a random
// permutation of chain order, so the returned graph's initial rank
// order is usually not topological (the permutation may happen to be
// the identity) — useful for exercising sort_nodes and
// DFS over disconnected discovery order. The returned ids are in
// chain order, not insertion order.
func RandomChain(prng *rand.Rand, alphabet *core.Alphabet, n, minLen, maxLen int) (*dynamic.SeqGraph, []core.ID) {
	g := dynamic.NewSeqGraph(core.Bidirected)

	chainIDs := make([]core.ID, n)
	for _, chainPos := range prng.Perm(n) {
		length := minLen
		if maxLen > minLen {
			length += prng.IntN(maxLen - minLen)
		}
		seq := RandomSequence(prng, alphabet, length)
		id, _ := g.AddNode(0, seq, "")
		chainIDs[chainPos] = id
	}

	for i := 1; i < n; i++ {
		g.AddEdge(core.MakeLink(chainIDs[i-1], chainIDs[i]), 0)
	}

	return g, chainIDs
}
