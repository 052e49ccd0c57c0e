package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/hypergraph/pkg/hypergraph"
)

// WriteJSON encodes g as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(g *hypergraph.Hypergraph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a JSON hypergraph from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "weighted_edges": true,
//	  "nodes": [{"id": 1}, {"id": 2, "weight": 4}],
//	  "edges": [{"id": 0, "members": [1, 2], "weight": 3}]
//	}
//
// Nodes are added before edges, so edges may reference any node in the
// document regardless of position. Store errors (duplicate IDs, unknown
// members, empty edges) are wrapped with the offending array index; use
// errors.Is with the hypergraph sentinels to classify them.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*hypergraph.Hypergraph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromDocument(doc)
}
