// SPDX-License-Identifier: MIT

package algo

import (
	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/dynamic"
)

// ForEachStartNode visits every node whose start side has no incoming
// edge, the DFS root set.
func ForEachStartNode(g *dynamic.Graph, cb func(core.ID) bool) bool {
	return g.ForEachNode(func(id core.ID) bool {
		if g.SideIndegree(core.StartSide(id)) != 0 {
			return true
		}
		return cb(id)
	})
}

// ForEachStartSide visits the start side of every node found by
// [ForEachStartNode].
func ForEachStartSide(g *dynamic.Graph, cb func(core.Side) bool) bool {
	return ForEachStartNode(g, func(id core.ID) bool { return cb(core.StartSide(id)) })
}

// ForEachEndNode visits every node whose end side has no outgoing
// edge, the traversal's terminal set.
func ForEachEndNode(g *dynamic.Graph, cb func(core.ID) bool) bool {
	return g.ForEachNode(func(id core.ID) bool {
		if g.SideOutdegree(core.EndSide(id)) != 0 {
			return true
		}
		return cb(id)
	})
}

// ForEachEndSide visits the end side of every node found by
// [ForEachEndNode].
func ForEachEndSide(g *dynamic.Graph, cb func(core.Side) bool) bool {
	return ForEachEndNode(g, func(id core.ID) bool { return cb(core.EndSide(id)) })
}
