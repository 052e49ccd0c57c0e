package io

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/matzehuels/hypergraph/pkg/hypergraph"
)

// WriteMsgpack encodes g as MessagePack and writes it to w. The encoding is a
// map with the same keys as the JSON document, suited to large graphs that
// are exchanged between tools rather than edited by hand.
func WriteMsgpack(g *hypergraph.Hypergraph, w io.Writer) error {
	if err := msgpack.NewEncoder(w).Encode(toDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadMsgpack decodes a MessagePack hypergraph from r.
func ReadMsgpack(r io.Reader) (*hypergraph.Hypergraph, error) {
	var doc document
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromDocument(doc)
}
