// Package hypergraph provides an in-memory hypergraph: integer-keyed nodes
// plus hyperedges, each spanning an arbitrary non-empty set of nodes.
//
// # Overview
//
// A [Hypergraph] is built incrementally and then handed to an exporter such
// as [github.com/matzehuels/hypergraph/pkg/hmetis]. The store owns both
// collections and enforces their invariants on every mutation:
//
//  1. Node IDs are unique
//  2. Edge IDs are unique
//  3. Every edge has at least one member
//  4. Every member names a node currently in the store
//  5. A node referenced by an edge cannot be removed
//
// Edges hold node IDs, never node handles, so the two collections stay
// independent and integrity is an explicit check owned by the store.
//
// # Basic Usage
//
//	g := hypergraph.New(false, true)
//	_ = g.AddNode(1, 0)
//	_ = g.AddNode(2, 0)
//	_ = g.AddEdge(0, []int{1, 2}, 3)
//
// Failed mutations leave the graph untouched. Classify failures with
// errors.Is against [ErrDuplicateID], [ErrEmptyMembers], [ErrUnknownNode],
// [ErrNotFound] and [ErrEdgeInUse].
//
// # Ordering
//
// Query methods that return collections ([Hypergraph.Nodes],
// [Hypergraph.Edges], [Hypergraph.NodeIDs], [Hypergraph.EdgeIDs]) sort by ID,
// so anything derived from them is independent of insertion order.
//
// # Incidence
//
// The store keeps a reverse index from node ID to referencing edge IDs,
// updated by AddEdge and RemoveEdge. It makes [Hypergraph.RemoveNode] and
// [Hypergraph.IncidentEdges] constant-time lookups instead of scans over all
// member lists.
//
// # Duplicate Hyperedges
//
// Two edges with the same member set and different IDs are both accepted.
// [Footprint] hashes a member multiset independent of order and
// [Hypergraph.DuplicateEdges] uses it to report such groups.
//
// # Concurrency
//
// A Hypergraph is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package hypergraph
