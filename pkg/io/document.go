package io

import (
	"fmt"

	"github.com/matzehuels/hypergraph/pkg/hypergraph"
)

// document is the shared shape of every structured encoding.
type document struct {
	WeightedNodes bool   `json:"weighted_nodes" yaml:"weighted_nodes" toml:"weighted_nodes" msgpack:"weighted_nodes"`
	WeightedEdges bool   `json:"weighted_edges" yaml:"weighted_edges" toml:"weighted_edges" msgpack:"weighted_edges"`
	Nodes         []node `json:"nodes" yaml:"nodes" toml:"nodes" msgpack:"nodes"`
	Edges         []edge `json:"edges" yaml:"edges" toml:"edges" msgpack:"edges"`
}

type node struct {
	ID     int `json:"id" yaml:"id" toml:"id" msgpack:"id"`
	Weight int `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight,omitzero" msgpack:"weight,omitempty"`
}

type edge struct {
	ID      int   `json:"id" yaml:"id" toml:"id" msgpack:"id"`
	Members []int `json:"members" yaml:"members,flow" toml:"members" msgpack:"members"`
	Weight  int   `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight,omitzero" msgpack:"weight,omitempty"`
}

// toDocument snapshots g with nodes and edges in ascending ID order.
func toDocument(g *hypergraph.Hypergraph) document {
	doc := document{
		WeightedNodes: g.WeightedNodes,
		WeightedEdges: g.WeightedEdges,
		Nodes:         make([]node, 0, g.NodeCount()),
		Edges:         make([]edge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, node{ID: n.ID, Weight: n.Weight})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edge{ID: e.ID, Members: e.Members, Weight: e.Weight})
	}
	return doc
}

// fromDocument replays doc through the mutation API so every store
// invariant is enforced on import. Nodes are added before edges.
func fromDocument(doc document) (*hypergraph.Hypergraph, error) {
	g := hypergraph.New(doc.WeightedNodes, doc.WeightedEdges)
	for i, n := range doc.Nodes {
		if err := g.AddNode(n.ID, n.Weight); err != nil {
			return nil, fmt.Errorf("nodes[%d]: %w", i, err)
		}
	}
	for i, e := range doc.Edges {
		if err := g.AddEdge(e.ID, e.Members, e.Weight); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}
	return g, nil
}
