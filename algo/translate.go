// SPDX-License-Identifier: MIT

package algo

import (
	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/succinct"
)

// PositionToID resolves an absolute position in the concatenated
// sequence StringSet to the id of the node it falls within.
func PositionToID(sg *succinct.SeqGraph, pos int) core.ID {
	idx := sg.NodeProps.Seqset.Idx(pos)
	id, _ := sg.Graph.RankToID(core.Rank(idx + 1))
	return id
}

// PositionToOffset resolves an absolute position to its 0-based
// offset within its node's sequence.
func PositionToOffset(sg *succinct.SeqGraph, pos int) int {
	idx := sg.NodeProps.Seqset.Idx(pos)
	return pos - sg.NodeProps.Seqset.StartPosition(idx)
}

// IDToPosition returns the absolute StringSet position where id's
// sequence begins.
func IDToPosition(sg *succinct.SeqGraph, id core.ID) int {
	rank, ok := sg.Graph.IDToRank(id)
	if !ok {
		return 0
	}
	return sg.NodeProps.Seqset.StartPosition(int(rank) - 1)
}

// IDToCharOrder returns the total number of sequence characters
// preceding id's sequence in the concatenation, delimiters excluded.
func IDToCharOrder(sg *succinct.SeqGraph, id core.ID) int {
	rank, ok := sg.Graph.IDToRank(id)
	if !ok {
		return 0
	}
	idx := int(rank) - 1
	return sg.NodeProps.Seqset.StartPosition(idx) - idx
}

// TotalNofLoci returns the total number of sequence characters across
// every node, i.e. the genome/pangenome size in bases.
func TotalNofLoci(sg *succinct.SeqGraph) int {
	return sg.NodeProps.Seqset.LengthSum()
}
