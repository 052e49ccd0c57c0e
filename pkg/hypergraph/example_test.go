package hypergraph_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/hypergraph/pkg/hypergraph"
)

func ExampleHypergraph_basic() {
	// Three nodes, one hyperedge spanning all of them
	g := hypergraph.New(false, false)
	_ = g.AddNode(1, 0)
	_ = g.AddNode(2, 0)
	_ = g.AddNode(3, 0)
	_ = g.AddEdge(0, []int{3, 1, 2}, 0)

	e, _ := g.Edge(0)
	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Members:", e.Members)
	// Output:
	// Nodes: 3
	// Edges: 1
	// Members: [3 1 2]
}

func ExampleHypergraph_RemoveNode() {
	g := hypergraph.New(false, false)
	_ = g.AddNode(1, 0)
	_ = g.AddNode(2, 0)
	_ = g.AddEdge(0, []int{1, 2}, 0)

	// A referenced node cannot be removed
	err := g.RemoveNode(1)
	fmt.Println(err)
	fmt.Println(errors.Is(err, hypergraph.ErrEdgeInUse))

	// Once the edge is gone, removal succeeds
	_ = g.RemoveEdge(0)
	fmt.Println(g.RemoveNode(1))
	// Output:
	// node 1: referenced by edge 0
	// true
	// <nil>
}

func ExampleHypergraph_AddEdge_unknownNode() {
	g := hypergraph.New(false, false)
	_ = g.AddNode(1, 0)

	err := g.AddEdge(0, []int{1, 2}, 0)
	fmt.Println(err)
	fmt.Println("Edges:", g.EdgeCount())
	// Output:
	// edge 0: unknown node 2
	// Edges: 0
}

func ExampleHypergraph_DuplicateEdges() {
	g := hypergraph.New(false, false)
	_ = g.AddNode(1, 0)
	_ = g.AddNode(2, 0)
	_ = g.AddEdge(0, []int{1, 2}, 0)
	_ = g.AddEdge(1, []int{2, 1}, 0)

	fmt.Println(g.DuplicateEdges())
	// Output:
	// [[0 1]]
}
