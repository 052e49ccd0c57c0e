package nodelink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hypergraph/pkg/hypergraph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Weights appends node and edge weights to labels, following the graph's
	// WeightedNodes and WeightedEdges flags.
	Weights bool
}

// ToDOT converts a hypergraph to Graphviz DOT source using its star
// expansion: every node becomes a circle, every hyperedge a small box, and
// each box is linked to its distinct members. Nodes and edges are emitted in
// ascending ID order, so equal graphs produce identical DOT.
func ToDOT(g *hypergraph.Hypergraph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph H {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		label := fmt.Sprint(n.ID)
		if opts.Weights && g.WeightedNodes {
			label = fmt.Sprintf("%d\nw=%d", n.ID, n.Weight)
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeName(n.ID), label)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		label := fmt.Sprintf("e%d", e.ID)
		if opts.Weights && g.WeightedEdges {
			label = fmt.Sprintf("e%d\nw=%d", e.ID, e.Weight)
		}
		fmt.Fprintf(&buf, "  %q [label=%q, shape=box, fillcolor=lightgrey, fontsize=10];\n", edgeName(e.ID), label)

		seen := make(map[int]bool, len(e.Members))
		for _, m := range e.Members {
			if seen[m] {
				continue
			}
			seen[m] = true
			fmt.Fprintf(&buf, "  %q -- %q;\n", edgeName(e.ID), nodeName(m))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(id int) string { return fmt.Sprintf("n%d", id) }
func edgeName(id int) string { return fmt.Sprintf("e%d", id) }

// RenderSVG renders DOT source to SVG using the embedded Graphviz build.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
