// Package io imports and exports hypergraphs in structured interchange
// formats (JSON, YAML, TOML, MessagePack) alongside hMetis.
//
// # Overview
//
// The partitioner-facing hMetis format drops information a caller may want
// to keep: edge and node IDs are positional and the weighting flags are only
// implied by the header. The structured formats carry the full store state
// so a graph can be authored by hand, exchanged between tools, and exported
// to hMetis later.
//
// # Document
//
// Every structured encoding shares one shape:
//
//	{
//	  "weighted_nodes": false,
//	  "weighted_edges": true,
//	  "nodes": [{"id": 1}, {"id": 2}],
//	  "edges": [{"id": 0, "members": [1, 2], "weight": 3}]
//	}
//
// Weights are optional and default to 0. Writers emit nodes and edges in
// ascending ID order, so output depends only on the store state.
//
// # Import
//
// Readers rebuild the graph through the [hypergraph.Hypergraph] mutation API,
// nodes first, so the same invariants apply as for hand-built graphs. A
// document listing an edge over an unknown node fails with an error matching
// [hypergraph.ErrUnknownNode].
//
// Use [Import] and [Export] for files; the format follows the extension
// (.json, .yaml/.yml, .toml, .msgpack/.mp, .hgr).
//
// # Concurrency
//
// All functions are safe to call concurrently with other readers of the same
// graph, but not with concurrent modifications to it.
package io
