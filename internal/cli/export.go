package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hypergraph/pkg/pipeline"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output        string // output file path; stdout when empty
	format        string // output format: hmetis (default), json, yaml, toml, msgpack
	weightedNodes bool   // force vertex weights on or off
	weightedEdges bool   // force hyperedge weights on or off
}

// exportCommand creates the export command for writing hMetis input files.
//
// The weighting flags stored in the input are used unless --weighted-nodes or
// --weighted-edges is given, or the config/environment sets them.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export <input>",
		Short: "Export a hypergraph to hMetis or another interchange format",
		Long: `Export loads a hypergraph description and writes it in the hMetis input
format used by hMetis, PaToH and KaHyPar. Hyperedges are written in ascending
ID order, followed by vertex weights when vertex weighting is enabled.`,
		Example: `  hypergraph export circuit.yaml -o circuit.hgr
  hypergraph export circuit.json --weighted-edges
  hypergraph export circuit.hgr -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := pipeline.Options{
				Format:        c.stringOption(cmd, "format", opts.format, keyFormat),
				WeightedNodes: c.weightOverride(cmd, "weighted-nodes", opts.weightedNodes, keyWeightedNodes),
				WeightedEdges: c.weightOverride(cmd, "weighted-edges", opts.weightedEdges, keyWeightedEdges),
			}
			if err := pipeline.ValidateFormat(o.Format); err != nil {
				return err
			}
			return c.runExport(cmd, args[0], opts.output, o)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatHMetis, "output format: hmetis, json, yaml, toml, msgpack")
	cmd.Flags().BoolVar(&opts.weightedNodes, "weighted-nodes", false, "write vertex weights")
	cmd.Flags().BoolVar(&opts.weightedEdges, "weighted-edges", false, "write hyperedge weights")

	return cmd
}

// runExport loads input, encodes it and writes the result.
func (c *CLI) runExport(cmd *cobra.Command, input, output string, opts pipeline.Options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := c.newRunner()
	g, err := runner.Load(ctx, input)
	if err != nil {
		return err
	}
	data, err := runner.Export(ctx, g, opts)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, output, data); err != nil {
		return err
	}

	prog.done("Exported " + opts.Format)
	if output != "" {
		printSuccess(cmd.OutOrStdout(), "Wrote %d hyperedges, %d vertices", g.EdgeCount(), g.NodeCount())
		printFile(cmd.OutOrStdout(), output)
	}
	return nil
}
