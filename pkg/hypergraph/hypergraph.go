package hypergraph

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrDuplicateID is returned by [Hypergraph.AddNode] and [Hypergraph.AddEdge]
	// when a node or edge with the same ID already exists.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrEmptyMembers is returned by [Hypergraph.AddEdge] when the member list
	// is empty. Every hyperedge must span at least one node.
	ErrEmptyMembers = errors.New("edge has no members")

	// ErrUnknownNode is returned by [Hypergraph.AddEdge] when a member does not
	// name a node in the graph. The wrapping error names the first offending ID.
	ErrUnknownNode = errors.New("unknown node")

	// ErrNotFound is returned by [Hypergraph.RemoveNode] and
	// [Hypergraph.RemoveEdge] when the ID is absent.
	ErrNotFound = errors.New("not found")

	// ErrEdgeInUse is returned by [Hypergraph.RemoveNode] while at least one
	// edge still lists the node as a member.
	ErrEdgeInUse = errors.New("referenced by edge")

	// ErrInconsistentIndex is returned by [Hypergraph.Validate] when the
	// incidence index disagrees with the edge member lists.
	ErrInconsistentIndex = errors.New("inconsistent incidence index")
)

// Node is a vertex of the hypergraph. Weight is only emitted when node
// weighting is enabled on the graph.
type Node struct {
	ID     int
	Weight int
}

// Edge is a hyperedge spanning one or more nodes. Members keeps the order
// supplied by the caller, duplicates included.
type Edge struct {
	ID      int
	Weight  int
	Members []int
}

// Hypergraph stores nodes and hyperedges keyed by integer ID and enforces
// referential integrity between them: every edge member is a live node, and
// a node cannot be removed while an edge references it.
//
// The zero value is not usable - use New. Hypergraph is not safe for
// concurrent use without external synchronization.
type Hypergraph struct {
	// WeightedNodes and WeightedEdges select the export format. They never
	// affect validation and may be changed at any time.
	WeightedNodes bool
	WeightedEdges bool

	nodes    map[int]Node
	edges    map[int]Edge
	incident map[int]map[int]struct{} // nodeID -> referencing edge IDs
}

// New creates an empty hypergraph with the given weighting configuration.
func New(weightedNodes, weightedEdges bool) *Hypergraph {
	return &Hypergraph{
		WeightedNodes: weightedNodes,
		WeightedEdges: weightedEdges,
		nodes:         make(map[int]Node),
		edges:         make(map[int]Edge),
		incident:      make(map[int]map[int]struct{}),
	}
}

// AddNode inserts a node. Returns ErrDuplicateID if the ID is taken.
func (g *Hypergraph) AddNode(id, weight int) error {
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("node %d: %w", id, ErrDuplicateID)
	}
	g.nodes[id] = Node{ID: id, Weight: weight}
	return nil
}

// AddEdge inserts a hyperedge over members. Checks run in a fixed order:
// ErrEmptyMembers, then ErrUnknownNode for the first member that is not a
// node, then ErrDuplicateID. Nothing is inserted on failure.
//
// The members slice is copied. Structurally identical edges with different
// IDs are accepted; use [Hypergraph.DuplicateEdges] to find them.
func (g *Hypergraph) AddEdge(id int, members []int, weight int) error {
	if len(members) == 0 {
		return fmt.Errorf("edge %d: %w", id, ErrEmptyMembers)
	}
	for _, m := range members {
		if _, ok := g.nodes[m]; !ok {
			return fmt.Errorf("edge %d: %w %d", id, ErrUnknownNode, m)
		}
	}
	if _, exists := g.edges[id]; exists {
		return fmt.Errorf("edge %d: %w", id, ErrDuplicateID)
	}

	g.edges[id] = Edge{ID: id, Weight: weight, Members: slices.Clone(members)}
	for _, m := range members {
		set, ok := g.incident[m]
		if !ok {
			set = make(map[int]struct{})
			g.incident[m] = set
		}
		set[id] = struct{}{}
	}
	return nil
}

// RemoveNode deletes a node. Returns ErrNotFound if absent, or ErrEdgeInUse
// naming the lowest referencing edge ID while any edge still contains it.
func (g *Hypergraph) RemoveNode(id int) error {
	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("node %d: %w", id, ErrNotFound)
	}
	if refs := g.incident[id]; len(refs) > 0 {
		return fmt.Errorf("node %d: %w %d", id, ErrEdgeInUse, slices.Min(slices.Collect(maps.Keys(refs))))
	}
	delete(g.nodes, id)
	delete(g.incident, id)
	return nil
}

// RemoveEdge deletes a hyperedge. Returns ErrNotFound if absent. Members that
// are no longer referenced by any edge become removable.
func (g *Hypergraph) RemoveEdge(id int) error {
	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("edge %d: %w", id, ErrNotFound)
	}
	for _, m := range e.Members {
		if set := g.incident[m]; set != nil {
			delete(set, id)
			if len(set) == 0 {
				delete(g.incident, m)
			}
		}
	}
	delete(g.edges, id)
	return nil
}

// Node returns the node with the given ID and true, or the zero Node and false.
func (g *Hypergraph) Node(id int) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge returns a copy of the hyperedge with the given ID and true, or the
// zero Edge and false. The returned Members slice may be modified freely.
func (g *Hypergraph) Edge(id int) (Edge, bool) {
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, false
	}
	e.Members = slices.Clone(e.Members)
	return e, true
}

// NodeIDs returns all node IDs in ascending order.
func (g *Hypergraph) NodeIDs() []int {
	return slices.Sorted(maps.Keys(g.nodes))
}

// EdgeIDs returns all edge IDs in ascending order.
func (g *Hypergraph) EdgeIDs() []int {
	return slices.Sorted(maps.Keys(g.edges))
}

// Nodes returns all nodes in ascending ID order.
func (g *Hypergraph) Nodes() []Node {
	ids := g.NodeIDs()
	nodes := make([]Node, len(ids))
	for i, id := range ids {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// Edges returns copies of all hyperedges in ascending ID order.
// Modifications to the returned edges do not affect the graph.
func (g *Hypergraph) Edges() []Edge {
	ids := g.EdgeIDs()
	edges := make([]Edge, len(ids))
	for i, id := range ids {
		e := g.edges[id]
		e.Members = slices.Clone(e.Members)
		edges[i] = e
	}
	return edges
}

// NodeCount returns the number of nodes in the graph.
func (g *Hypergraph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of hyperedges in the graph.
func (g *Hypergraph) EdgeCount() int { return len(g.edges) }

// IncidentEdges returns the IDs of edges that contain the node, ascending.
// Returns nil if the node is unreferenced or does not exist.
func (g *Hypergraph) IncidentEdges(nodeID int) []int {
	set := g.incident[nodeID]
	if len(set) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(set))
}

// Degree returns the number of distinct edges containing the node.
func (g *Hypergraph) Degree(nodeID int) int { return len(g.incident[nodeID]) }

// Validate checks graph integrity and returns nil if valid:
//
//  1. Every edge has at least one member
//  2. Every member names an existing node
//  3. The incidence index matches the member lists exactly
//
// The mutation API maintains these on its own; Validate exists for tests and
// for callers that want a cheap sanity check after bulk construction.
func (g *Hypergraph) Validate() error {
	want := make(map[int]map[int]struct{})
	for _, id := range g.EdgeIDs() {
		e := g.edges[id]
		if len(e.Members) == 0 {
			return fmt.Errorf("edge %d: %w", id, ErrEmptyMembers)
		}
		for _, m := range e.Members {
			if _, ok := g.nodes[m]; !ok {
				return fmt.Errorf("edge %d: %w %d", id, ErrUnknownNode, m)
			}
			if want[m] == nil {
				want[m] = make(map[int]struct{})
			}
			want[m][id] = struct{}{}
		}
	}
	if len(want) != len(g.incident) {
		return ErrInconsistentIndex
	}
	for n, set := range want {
		if !maps.Equal(set, g.incident[n]) {
			return fmt.Errorf("node %d: %w", n, ErrInconsistentIndex)
		}
	}
	return nil
}
