package io

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hypergraph/pkg/hypergraph"
)

// WriteTOML encodes g as TOML and writes it to w. Nodes and edges become
// arrays of tables:
//
//	weighted_nodes = false
//	weighted_edges = true
//
//	[[nodes]]
//	  id = 1
//
//	[[edges]]
//	  id = 0
//	  members = [1, 2]
//	  weight = 3
func WriteTOML(g *hypergraph.Hypergraph, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(toDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadTOML decodes a TOML hypergraph from r. See [WriteTOML] for the layout.
func ReadTOML(r io.Reader) (*hypergraph.Hypergraph, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromDocument(doc)
}
