package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hypergraph/pkg/errors"
	"github.com/matzehuels/hypergraph/pkg/hypergraph"
	hgio "github.com/matzehuels/hypergraph/pkg/io"
	"github.com/matzehuels/hypergraph/pkg/observability"
	"github.com/matzehuels/hypergraph/pkg/render/nodelink"
)

// Runner executes pipeline stages with logging and observability hooks.
//
// The Runner holds no per-run state, so one Runner can serve several
// goroutines as long as they do not share a graph.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Load reads a graph description from path, inferring the format from the
// file extension.
//
// Errors carry a code: INVALID_PATH for unusable paths, FILE_NOT_FOUND for
// missing files, INVALID_FORMAT for unknown extensions and INVALID_GRAPH for
// content that fails to decode or violates a store invariant.
func (r *Runner) Load(ctx context.Context, path string) (*hypergraph.Hypergraph, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	g, err := r.load(ctx, path)
	duration := time.Since(start)

	var nodes, edges int
	if g != nil {
		nodes, edges = g.NodeCount(), g.EdgeCount()
	}
	hooks.OnLoadComplete(ctx, path, nodes, edges, duration, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("loaded hypergraph",
		"path", path,
		"nodes", nodes,
		"edges", edges,
		"duration", duration)
	return g, nil
}

func (r *Runner) load(ctx context.Context, path string) (*hypergraph.Hypergraph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	g, err := hgio.Import(path)
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "load %s", path)
	}
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load %s", path)
	}
	if dups := g.DuplicateEdges(); len(dups) > 0 {
		r.Logger.Debug("duplicate hyperedges", "groups", dups)
	}
	return g, nil
}

// Export encodes g in opts.Format and returns the bytes.
//
// Weighting overrides in opts are applied to g before encoding, so the
// output reflects the flags as they stand at export time. Apart from those
// flags g is not modified.
func (r *Runner) Export(ctx context.Context, g *hypergraph.Hypergraph, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "graph is required")
	}
	applyOverrides(g, opts)

	hooks := observability.Pipeline()
	hooks.OnExportStart(ctx, opts.Format, g.NodeCount(), g.EdgeCount())
	start := time.Now()

	data, err := r.export(ctx, g, opts)
	duration := time.Since(start)
	hooks.OnExportComplete(ctx, opts.Format, len(data), duration, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("exported hypergraph",
		"format", opts.Format,
		"weighted_nodes", g.WeightedNodes,
		"weighted_edges", g.WeightedEdges,
		"bytes", len(data),
		"duration", duration)
	return data, nil
}

func (r *Runner) export(ctx context.Context, g *hypergraph.Hypergraph, opts Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.IsRender() {
		dot := nodelink.ToDOT(g, nodelink.Options{Weights: opts.Weights})
		if opts.Format == FormatDOT {
			return []byte(dot), nil
		}
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		return svg, nil
	}

	var buf bytes.Buffer
	if err := hgio.Write(opts.Format, g, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", opts.Format)
	}
	return buf.Bytes(), nil
}

func applyOverrides(g *hypergraph.Hypergraph, opts Options) {
	if opts.WeightedNodes != nil {
		g.WeightedNodes = *opts.WeightedNodes
	}
	if opts.WeightedEdges != nil {
		g.WeightedEdges = *opts.WeightedEdges
	}
}
