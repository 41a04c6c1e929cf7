// SPDX-License-Identifier: MIT

package core

// ID is an internal node identifier. The zero value is reserved for
// "none/dummy"; valid ids are strictly positive.
type ID uint64

// Rank is a node's 1-based position in a graph's iteration order.
type Rank uint64

// Side is one of the two ends of a node in a bidirected graph: the
// "start" (left, tag false) or the "end" (right, tag true). Plain
// directed graphs collapse both sides onto the same tag; see
// [Mode.OppositeSide].
type Side struct {
	ID  ID
	End bool // false = start/left, true = end/right
}

// StartSide returns the start side of id.
func StartSide(id ID) Side { return Side{ID: id, End: false} }

// EndSide returns the end side of id.
func EndSide(id ID) Side { return Side{ID: id, End: true} }

// LinkType enumerates the four ways a bidirected edge can connect two
// sides. The default, dovetail link type is ESLink (end-to-start),
// representing forward concatenation of two sequences.
type LinkType uint8

const (
	SSLink LinkType = iota // start -> start
	SELink                 // start -> end
	ESLink                 // end -> start (default dovetail)
	EELink                 // end -> end
)

// String implements [fmt.Stringer].
func (t LinkType) String() string {
	switch t {
	case SSLink:
		return "S->S"
	case SELink:
		return "S->E"
	case ESLink:
		return "E->S"
	case EELink:
		return "E->E"
	default:
		return "invalid"
	}
}

// Link is an ordered edge between two sides.
type Link struct {
	From Side
	To   Side
}

// MakeLink builds the link connecting the end of `from` to the start
// of `to`, the default forward dovetail orientation.
func MakeLink(from, to ID) Link {
	return Link{From: EndSide(from), To: StartSide(to)}
}

// Type returns the link type of l, encoded as from.End*2 + to.End.
func (l Link) Type() LinkType {
	return linkType(l.From, l.To)
}

func linkType(from, to Side) LinkType {
	t := 0
	if from.End {
		t += 2
	}
	if to.End {
		t++
	}
	return LinkType(t)
}

// Reverse returns the link traversed in the opposite direction, i.e.
// the edge seen from `to` looking back at `from`: the same two sides,
// swapped, each keeping its tag.
func (l Link) Reverse() Link {
	return Link{From: l.To, To: l.From}
}

// Mode selects whether a graph is bidirected (two sides per node) or
// plain directed (one side per node, and opposite_side is identity).
// Implementers are encouraged to use this small value type instead of
// runtime polymorphism: a directed graph is simply a bidirected graph
// whose side tag never varies and whose only link type is [SSLink].
type Mode bool

const (
	Directed   Mode = false
	Bidirected Mode = true
)

// OppositeSide returns the other side of s under m. For [Directed]
// graphs this is the identity function.
func (m Mode) OppositeSide(s Side) Side {
	if m == Directed {
		return s
	}
	return Side{ID: s.ID, End: !s.End}
}

// ForEachSide invokes cb for every side of id under m: both sides for
// [Bidirected], only the (tagless) start side for [Directed]. Stops
// early if cb returns false.
func (m Mode) ForEachSide(id ID, cb func(Side) bool) {
	if !cb(StartSide(id)) {
		return
	}
	if m == Bidirected {
		cb(EndSide(id))
	}
}
