// Package hmetis reads and writes hypergraphs in the hMetis text format
// consumed by external hypergraph partitioners.
//
// # Format
//
// The first line holds the hyperedge count, the vertex count and an optional
// fmt token describing which weights are present:
//
//	<edges> <nodes> [fmt]
//
// where fmt is "1" (edge weights), "10" (node weights), "11" (both) or
// omitted. One line per hyperedge follows, optionally prefixed by its weight,
// listing member vertex IDs. With node weights enabled, one weight line per
// vertex closes the file.
//
// # Writing
//
// [Write] emits edges and node weights in ascending ID order so the output is
// a pure function of the graph state and its weighting flags. Every edge
// token is followed by a space, and when the fmt token is omitted the header
// keeps its trailing space:
//
//	g := hypergraph.New(false, false)
//	_ = g.AddNode(1, 0)
//	_ = g.AddNode(2, 0)
//	_ = g.AddEdge(0, []int{1, 2}, 0)
//	_ = hmetis.Write(g, os.Stdout) // "1 2 \n1 2 \n"
//
// IDs are written verbatim. The format conventionally numbers vertices
// densely from 1; callers whose IDs are sparse must remap them before
// building the graph if the downstream tool requires it.
//
// # Reading
//
// [Read] parses the same format, skipping '%' comment lines. Vertices are
// numbered 1..V and hyperedges 0..E-1, which is also the numbering under which
// Write and Read round-trip exactly.
package hmetis
