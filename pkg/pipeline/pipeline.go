// Package pipeline provides the load → export pipeline for hypergraph files.
//
// This package implements the steps shared by every command of the CLI:
// read a graph description from disk, optionally override its weighting
// flags, and encode it in one of the output formats. Centralizing this logic
// keeps behavior consistent between commands.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Load: Decode a description file (JSON, YAML, TOML, MessagePack, hMetis)
//  2. Export: Encode the store (hMetis, structured formats, DOT, SVG)
//
// Each stage can be run independently.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	g, err := runner.Load(ctx, "graph.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := runner.Export(ctx, g, pipeline.Options{Format: "hmetis"})
//
// Both stages report to [observability.Pipeline] hooks.
package pipeline

import (
	"github.com/matzehuels/hypergraph/pkg/errors"
	hgio "github.com/matzehuels/hypergraph/pkg/io"
)

// Format constants for output formats.
const (
	FormatHMetis  = hgio.FormatHMetis
	FormatJSON    = hgio.FormatJSON
	FormatYAML    = hgio.FormatYAML
	FormatTOML    = hgio.FormatTOML
	FormatMsgpack = hgio.FormatMsgpack
	FormatDOT     = "dot"
	FormatSVG     = "svg"
)

// DefaultFormat is the output format used when Options.Format is empty.
const DefaultFormat = FormatHMetis

// ValidFormats lists every format accepted by [Runner.Export].
var ValidFormats = []string{
	FormatHMetis,
	FormatJSON,
	FormatYAML,
	FormatTOML,
	FormatMsgpack,
	FormatDOT,
	FormatSVG,
}

// Options configures a single export.
type Options struct {
	// Format is the output format. Empty means DefaultFormat.
	Format string `json:"format,omitempty"`

	// WeightedNodes and WeightedEdges override the store's weighting flags
	// when non-nil. The override is written back to the store.
	WeightedNodes *bool `json:"weighted_nodes,omitempty"`
	WeightedEdges *bool `json:"weighted_edges,omitempty"`

	// Weights adds weights to node and edge labels in DOT and SVG output.
	Weights bool `json:"weights,omitempty"`
}

// ValidateAndSetDefaults checks the format and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	return ValidateFormat(o.Format)
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
}

// IsRender reports whether the format goes through the nodelink renderer.
func (o Options) IsRender() bool {
	return o.Format == FormatDOT || o.Format == FormatSVG
}
