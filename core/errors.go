// SPDX-License-Identifier: MIT

// Package core holds the small, dependency-free types shared by the
// dynamic and succinct graph representations: the side/link algebra,
// the alphabets, the path-step encoding and the sentinel errors raised
// at mutating call boundaries.
package core

import "errors"

// Sentinel errors raised by mutating operations on Dynamic and Succinct
// graphs. Read-only queries never return these; they use the sentinel
// id/rank 0 to mean "not found" instead.
var (
	// ErrDuplicateID is returned by AddNode or AddPath when the
	// requested external id or path name already exists and force
	// was not requested.
	ErrDuplicateID = errors.New("seqgraph: duplicate id")

	// ErrUnknownID is returned by UpdateNode, ExtendPath or a
	// neighborhood query boundary when the id does not exist.
	ErrUnknownID = errors.New("seqgraph: unknown id")

	// ErrUnsupportedOverlap is returned when an edge overlap cannot be
	// represented as a simple dovetail overlap.
	ErrUnsupportedOverlap = errors.New("seqgraph: unsupported overlap")

	// ErrNonDovetailBoundary is returned when a GFA-style edge import
	// does not satisfy sink_begin==0 and source_end==source_length.
	ErrNonDovetailBoundary = errors.New("seqgraph: non-dovetail boundary")

	// ErrDuplicatePath is returned by AddPath for an existing path
	// name without force.
	ErrDuplicatePath = errors.New("seqgraph: duplicate path")

	// ErrPathOrderMismatch is returned when imported mapping ranks are
	// not strictly increasing by one.
	ErrPathOrderMismatch = errors.New("seqgraph: path order mismatch")

	// ErrIndexOutOfRange is returned by StringSet or packed-vector
	// accessors when the requested position is past the end.
	ErrIndexOutOfRange = errors.New("seqgraph: index out of range")

	// ErrIoUnavailable is reserved for collaborators (parsers, CLI
	// tools) that cannot open a file or stream; the core never raises
	// it itself.
	ErrIoUnavailable = errors.New("seqgraph: io unavailable")
)
