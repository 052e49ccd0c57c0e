// Command hypergraph loads hypergraph descriptions and exports them in the
// hMetis input format read by hMetis, PaToH and KaHyPar, or renders them as
// node-link diagrams.
//
// Usage:
//
//	hypergraph export circuit.yaml -o circuit.hgr --weighted-edges
//	hypergraph render circuit.yaml -f svg -o circuit.svg
//	hypergraph inspect circuit.hgr
//
// Interrupting a run exits with status 130.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hypergraph/internal/cli"
	"github.com/matzehuels/hypergraph/pkg/buildinfo"
	hgerrors "github.com/matzehuels/hypergraph/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", buildinfo.Name, hgerrors.UserMessage(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The level is only known after flag parsing.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
