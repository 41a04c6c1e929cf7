// SPDX-License-Identifier: MIT

// Command gstats is an illustrative collaborator, not a core
// component: it loads a GFA 1.0 graph, runs the library's algorithms
// over it, and prints a short summary. Non-GFA1 formats are named on
// the command line per the interface they would dispatch to, but
// parsing VG Protobuf, VG HashGraph and GFA 2.0 is out of scope here
// the same way it is out of scope for the core.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vg-lib/seqgraph"
	"github.com/vg-lib/seqgraph/algo"
	"github.com/vg-lib/seqgraph/coord"
	"github.com/vg-lib/seqgraph/core"
	"github.com/vg-lib/seqgraph/dynamic"
)

func main() {
	log.SetFlags(0)

	format := flag.String("f", "", "graph format: gfa, gfa1, gfa2, vg, hg (default: inferred from GRAPH's extension)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: gstats GRAPH [-f gfa|gfa1|gfa2|vg|hg]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	fmtName := *format
	if fmtName == "" {
		fmtName = formatFromExtension(path)
	}

	src, err := loadGraph(path, fmtName)
	if err != nil {
		log.Fatalf("gstats: %v", err)
	}

	if err := report(src); err != nil {
		log.Fatalf("gstats: %v", err)
	}
}

func formatFromExtension(path string) string {
	switch filepath.Ext(path) {
	case ".gfa":
		return "gfa"
	case ".vg":
		return "vg"
	default:
		return ""
	}
}

func loadGraph(path, format string) (*dynamic.SeqGraph, error) {
	switch format {
	case "gfa", "gfa1":
		return loadGFA1(path)
	case "gfa2":
		return nil, fmt.Errorf("GFA 2.0 parsing is a collaborator concern, not implemented by this illustrative tool")
	case "vg":
		return nil, fmt.Errorf("VG Protobuf parsing is a collaborator concern, not implemented by this illustrative tool")
	case "hg":
		return nil, fmt.Errorf("VG HashGraph parsing is a collaborator concern, not implemented by this illustrative tool")
	default:
		return nil, fmt.Errorf("unrecognized format %q, pass -f explicitly", format)
	}
}

// loadGFA1 reads S (segment), L (link) and P (path) records into a
// Dynamic sequence graph, resolving segment names through the Stoid
// coordinate system as the default for GFA names (§6: decimal
// segment names).
func loadGFA1(path string) (*dynamic.SeqGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrIoUnavailable, err)
	}
	defer f.Close()

	g := dynamic.NewSeqGraph(core.Bidirected)
	ids := coord.Stoid{}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		switch fields[0] {
		case "S":
			if len(fields) < 3 {
				return nil, fmt.Errorf("malformed S line: %q", line)
			}
			id := ids.Resolve(fields[1])
			if _, err := g.AddNode(id, fields[2], fields[1]); err != nil {
				return nil, err
			}

		case "L":
			if len(fields) < 6 {
				return nil, fmt.Errorf("malformed L line: %q", line)
			}
			fromID := ids.Resolve(fields[1])
			fromRev := fields[2] == "-"
			toID := ids.Resolve(fields[3])
			toRev := fields[4] == "-"
			overlap, err := cigarMatchLength(fields[5])
			if err != nil {
				return nil, err
			}
			sourceLen := g.NodeLength(fromID)
			if err := g.AddDovetailEdge(fromID, fromRev, toID, toRev, sourceLen-overlap, sourceLen, 0, overlap); err != nil {
				return nil, err
			}

		case "P":
			if len(fields) < 3 {
				return nil, fmt.Errorf("malformed P line: %q", line)
			}
			pathID, err := g.AddPath(fields[1])
			if err != nil {
				return nil, err
			}
			segs := strings.Split(fields[2], ",")
			pathIDs := make([]core.ID, len(segs))
			reversed := make([]bool, len(segs))
			for i, s := range segs {
				if s == "" {
					return nil, fmt.Errorf("malformed path segment in %q", line)
				}
				pathIDs[i] = ids.Resolve(s[:len(s)-1])
				reversed[i] = s[len(s)-1] == '-'
			}
			if err := g.ExtendPath(pathID, pathIDs, reversed, false); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// cigarMatchLength extracts the overlap length from a CIGAR string
// restricted to a single all-match operation, the only shape the core
// dovetail model accepts; "*" (no overlap information) reads as 0, and
// anything else is an unsupported overlap.
func cigarMatchLength(cigar string) (int, error) {
	if cigar == "*" {
		return 0, nil
	}
	if !strings.HasSuffix(cigar, "M") {
		return 0, core.ErrUnsupportedOverlap
	}
	n, err := strconv.Atoi(strings.TrimSuffix(cigar, "M"))
	if err != nil {
		return 0, core.ErrUnsupportedOverlap
	}
	return n, nil
}

func report(src *dynamic.SeqGraph) error {
	isDAG, err := algo.TopologicalSort(src.Graph, false, false)
	if err != nil {
		return fmt.Errorf("topological sort: %w", err)
	}
	wcc := algo.WeaklyConnectedComponents(src.Graph)

	view, err := seqgraph.Build(src, core.DNA5)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	maxLen := 0
	view.Graph.ForEachNode(func(id core.ID) bool {
		if l := view.Graph.SeqLength(id); l > maxLen {
			maxLen = l
		}
		return true
	})

	fmt.Printf("nodes:             %d\n", view.NodeCount())
	fmt.Printf("edges:             %d\n", view.EdgeCount())
	fmt.Printf("paths:             %d\n", view.PathProps.Count())
	fmt.Printf("total loci:        %d\n", algo.TotalNofLoci(view.SeqGraph))
	fmt.Printf("max node length:   %d\n", maxLen)
	fmt.Printf("topological sort:  %t\n", isDAG)
	fmt.Printf("components (wcc):  %d\n", wcc)
	return nil
}
