// Package pkg provides the core libraries for building hypergraphs and
// exporting them for partitioning tools.
//
// # Overview
//
// A hypergraph generalizes a graph: each hyperedge spans any non-empty set
// of nodes instead of exactly two. Partitioners such as hMetis, PaToH and
// KaHyPar read hypergraphs in the hMetis text format. The pkg directory is
// organized into these areas:
//
//  1. [hypergraph] - The in-memory store and its integrity rules
//  2. [hmetis] - hMetis encoding and decoding
//  3. [io] - Structured descriptions (JSON, YAML, TOML, MessagePack)
//  4. [render/nodelink] - Star-expansion diagrams via Graphviz
//  5. [pipeline] - Orchestration (load → export)
//
// Supporting packages: [errors] (coded errors), [observability] (hooks) and
// [buildinfo] (version metadata).
//
// # Architecture
//
//	Description file (.json/.yaml/.toml/.msgpack/.hgr)
//	         ↓
//	    [io] package (decode, replaying the mutation API)
//	         ↓
//	    [hypergraph] package (validated store)
//	         ↓
//	    [hmetis] or [render/nodelink]
//	         ↓
//	    hMetis / DOT / SVG output
//
// # Quick Start
//
//	g := hypergraph.New(false, true)
//	_ = g.AddNode(1, 0)
//	_ = g.AddNode(2, 0)
//	_ = g.AddEdge(0, []int{1, 2}, 4)
//	_ = hmetis.Write(g, os.Stdout)
//	// 1 2 1
//	// 4 1 2
//
// # Error Handling
//
// Library packages return sentinel errors (for example
// [hypergraph.ErrUnknownNode]) wrapped with the offending ID; check them with
// errors.Is. The pipeline and CLI attach codes from [errors] on top.
package pkg
