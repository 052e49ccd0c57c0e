package hmetis

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/hypergraph/pkg/hypergraph"
)

// Format tags written as the third header token.
const (
	TagEdgeWeights = "1"
	TagNodeWeights = "10"
	TagBothWeights = "11"
)

// FormatTag returns the header fmt token for a weighting configuration.
// The empty string means the token is omitted.
func FormatTag(weightedNodes, weightedEdges bool) string {
	switch {
	case weightedNodes && weightedEdges:
		return TagBothWeights
	case weightedNodes:
		return TagNodeWeights
	case weightedEdges:
		return TagEdgeWeights
	}
	return ""
}

// Write encodes g in hMetis format and writes it to w.
//
// Edges are written in ascending ID order, each member followed by a space
// (so every edge line ends in a trailing space). When g.WeightedEdges is set
// each edge line starts with the edge weight. When g.WeightedNodes is set one
// weight line per node follows, in ascending node ID order. IDs are written
// exactly as stored; no remapping to a dense range takes place.
//
// Write never modifies g. Errors from w are returned unchanged.
func Write(g *hypergraph.Hypergraph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	var num []byte

	writeInt := func(v int) {
		num = strconv.AppendInt(num[:0], int64(v), 10)
		_, _ = bw.Write(num)
	}

	writeInt(g.EdgeCount())
	_ = bw.WriteByte(' ')
	writeInt(g.NodeCount())
	_ = bw.WriteByte(' ')
	_, _ = bw.WriteString(FormatTag(g.WeightedNodes, g.WeightedEdges))
	_ = bw.WriteByte('\n')

	for _, e := range g.Edges() {
		if g.WeightedEdges {
			writeInt(e.Weight)
			_ = bw.WriteByte(' ')
		}
		for _, m := range e.Members {
			writeInt(m)
			_ = bw.WriteByte(' ')
		}
		_ = bw.WriteByte('\n')
	}

	if g.WeightedNodes {
		for _, n := range g.Nodes() {
			writeInt(n.Weight)
			_ = bw.WriteByte('\n')
		}
	}

	// bufio.Writer latches the first write error and reports it here.
	return bw.Flush()
}

// Export writes g in hMetis format to a file at path.
// This is a convenience wrapper around [Write] for file-based output.
func Export(g *hypergraph.Hypergraph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
