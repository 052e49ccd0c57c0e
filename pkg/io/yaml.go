package io

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/hypergraph/pkg/hypergraph"
)

// WriteYAML encodes g as YAML and writes it to w. Member lists use flow style
// so each edge stays on one line.
func WriteYAML(g *hypergraph.Hypergraph, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// ReadYAML decodes a YAML hypergraph from r. The document uses the same keys
// as [ReadJSON]:
//
//	weighted_nodes: true
//	nodes:
//	  - {id: 1, weight: 5}
//	  - {id: 2, weight: 1}
//	edges:
//	  - {id: 0, members: [1, 2]}
func ReadYAML(r io.Reader) (*hypergraph.Hypergraph, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return hypergraph.New(false, false), nil
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromDocument(doc)
}
