// Package nodelink draws hypergraphs as node-link diagrams.
//
// A hypergraph has no direct node-link form, so [ToDOT] uses the star
// expansion: each hyperedge becomes an auxiliary box connected to every node
// it spans. The result is an ordinary undirected graph that Graphviz can lay
// out.
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Weights: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Diagrams are for inspection only; partitioning input is produced by the
// hmetis package.
//
// # Dependencies
//
// [RenderSVG] uses [github.com/goccy/go-graphviz], which bundles Graphviz as
// WebAssembly, so no system installation is required.
package nodelink
