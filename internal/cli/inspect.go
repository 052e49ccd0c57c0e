package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hypergraph/pkg/hmetis"
	"github.com/matzehuels/hypergraph/pkg/hypergraph"
)

// inspectCommand creates the inspect command, which summarizes a hypergraph
// without exporting it.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <input>",
		Short: "Print a summary of a hypergraph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.newRunner().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), args[0], g)
			return nil
		},
	}
}

func printSummary(w io.Writer, name string, g *hypergraph.Hypergraph) {
	printTitle(w, name)

	tag := hmetis.FormatTag(g.WeightedNodes, g.WeightedEdges)
	if tag == "" {
		tag = "none"
	}
	printKeyValue(w, "vertices", StyleNumber.Render(fmt.Sprint(g.NodeCount())))
	printKeyValue(w, "hyperedges", StyleNumber.Render(fmt.Sprint(g.EdgeCount())))
	printKeyValue(w, "pins", StyleNumber.Render(fmt.Sprint(pinCount(g))))
	printKeyValue(w, "fmt", tag)

	maxID, maxDeg := maxDegree(g)
	if maxDeg > 0 {
		printKeyValue(w, "max degree", fmt.Sprintf("%d (vertex %d)", maxDeg, maxID))
	} else {
		printKeyValue(w, "max degree", "0")
	}

	isolated := 0
	for _, id := range g.NodeIDs() {
		if g.Degree(id) == 0 {
			isolated++
		}
	}
	printKeyValue(w, "isolated", fmt.Sprint(isolated))

	for _, grp := range g.DuplicateEdges() {
		printWarning(w, "hyperedges %s share the same members", formatIDs(grp))
	}
}

// pinCount returns the total number of member references over all edges.
func pinCount(g *hypergraph.Hypergraph) int {
	n := 0
	for _, e := range g.Edges() {
		n += len(e.Members)
	}
	return n
}

// maxDegree returns the vertex with the most incident hyperedges; ties go to
// the lowest ID.
func maxDegree(g *hypergraph.Hypergraph) (id, degree int) {
	for _, n := range g.NodeIDs() {
		if d := g.Degree(n); d > degree {
			id, degree = n, d
		}
	}
	return id, degree
}
