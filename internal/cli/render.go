package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hypergraph/pkg/errors"
	"github.com/matzehuels/hypergraph/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path; stdout when empty
	format  string // output format: svg (default) or dot
	weights bool   // show node and edge weights in labels
}

// renderCommand creates the render command for node-link diagrams.
// Each hyperedge is drawn as a small box linked to its member nodes.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: pipeline.FormatSVG}

	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Render a hypergraph as a node-link diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != pipeline.FormatSVG && opts.format != pipeline.FormatDOT {
				return errors.ValidateFormat(opts.format, []string{pipeline.FormatSVG, pipeline.FormatDOT})
			}
			o := pipeline.Options{Format: opts.format, Weights: opts.weights}
			return c.runExport(cmd, args[0], opts.output, o)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.weights, "weights", false, "show weights in labels")

	return cmd
}
