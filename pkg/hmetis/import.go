package hmetis

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/hypergraph/pkg/hypergraph"
)

// ErrMalformed is returned by [Read] when the input is not valid hMetis.
// The wrapping error carries the 1-based line number.
var ErrMalformed = errors.New("malformed hMetis input")

// maxLineSize bounds a single hyperedge line.
const maxLineSize = 16 << 20

// MaxVertices is the largest vertex count [Read] accepts. Vertices are
// created up front from the header, so the count is checked before any
// allocation depends on it.
const MaxVertices = 1 << 24

// Read decodes an hMetis hypergraph from r.
//
// Comment lines (starting with '%') and blank lines are skipped. Hyperedges
// receive IDs 0..E-1 in file order and vertices receive IDs 1..V, matching
// the format's 1-based vertex numbering. A graph with exactly those IDs
// therefore round-trips through [Write] and Read byte-for-byte.
//
// The weighting flags of the returned graph follow the header's fmt token.
// Read does not close r.
func Read(r io.Reader) (*hypergraph.Hypergraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	next := func() ([]string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "%") {
				continue
			}
			return strings.Fields(line), true
		}
		return nil, false
	}
	malformed := func(format string, args ...any) error {
		return fmt.Errorf("line %d: %w: %s", lineNo, ErrMalformed, fmt.Sprintf(format, args...))
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	if len(header) < 2 || len(header) > 3 {
		return nil, malformed("header has %d fields, want 2 or 3", len(header))
	}
	edgeCount, err := parseCount(header[0])
	if err != nil {
		return nil, malformed("edge count: %v", err)
	}
	nodeCount, err := parseCount(header[1])
	if err != nil {
		return nil, malformed("node count: %v", err)
	}
	if nodeCount > MaxVertices {
		return nil, malformed("node count %d exceeds limit %d", nodeCount, MaxVertices)
	}
	var weightedNodes, weightedEdges bool
	if len(header) == 3 {
		switch header[2] {
		case TagEdgeWeights:
			weightedEdges = true
		case TagNodeWeights:
			weightedNodes = true
		case TagBothWeights:
			weightedNodes, weightedEdges = true, true
		case "0":
		default:
			return nil, malformed("unknown fmt %q", header[2])
		}
	}

	type pendingEdge struct {
		members []int
		weight  int
		line    int
	}
	edges := make([]pendingEdge, 0, min(edgeCount, 4096))
	for id := 0; id < edgeCount; id++ {
		fields, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: got %d of %d hyperedges", ErrMalformed, id, edgeCount)
		}
		weight := 0
		if weightedEdges {
			if weight, err = strconv.Atoi(fields[0]); err != nil {
				return nil, malformed("edge weight: %v", err)
			}
			fields = fields[1:]
		}
		members := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, malformed("vertex: %v", err)
			}
			if v < 1 || v > nodeCount {
				return nil, malformed("vertex %d out of range 1..%d", v, nodeCount)
			}
			members[i] = v
		}
		edges = append(edges, pendingEdge{members: members, weight: weight, line: lineNo})
	}

	var nodeWeights []int
	if weightedNodes {
		nodeWeights = make([]int, 0, min(nodeCount, 4096))
		for i := 0; i < nodeCount; i++ {
			fields, ok := next()
			if !ok {
				if err := sc.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("%w: got %d of %d vertex weights", ErrMalformed, i, nodeCount)
			}
			if len(fields) != 1 {
				return nil, malformed("vertex weight line has %d fields", len(fields))
			}
			w, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, malformed("vertex weight: %v", err)
			}
			nodeWeights = append(nodeWeights, w)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	g := hypergraph.New(weightedNodes, weightedEdges)
	for i := 0; i < nodeCount; i++ {
		w := 0
		if weightedNodes {
			w = nodeWeights[i]
		}
		if err := g.AddNode(i+1, w); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}
	for id, e := range edges {
		if err := g.AddEdge(id, e.members, e.weight); err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", e.line, ErrMalformed, err)
		}
	}
	return g, nil
}

// Import reads an hMetis file at path. See [Read].
func Import(path string) (*hypergraph.Hypergraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}
