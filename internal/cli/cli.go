package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/hypergraph/pkg/buildinfo"
	"github.com/matzehuels/hypergraph/pkg/errors"
	"github.com/matzehuels/hypergraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = buildinfo.Name

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configFile string
	config     *viper.Viper
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: viper.New(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Hypergraph builds hypergraphs and exports them for partitioners",
		Long:         `Hypergraph loads hypergraph descriptions (JSON, YAML, TOML, MessagePack or hMetis), validates them, and exports them in the hMetis input format or as node-link diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configFile)
			if err != nil {
				return err
			}
			c.config = cfg
			if used := cfg.ConfigFileUsed(); used != "" {
				c.Logger.Debug("loaded config", "path", used)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/hypergraph/config.yaml)")

	root.AddCommand(c.exportCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// weightOverride resolves a weighting override. An explicitly set flag wins,
// then the config file or environment; nil keeps the flag stored in the input.
func (c *CLI) weightOverride(cmd *cobra.Command, flag string, value bool, key string) *bool {
	if cmd.Flags().Changed(flag) {
		return &value
	}
	if c.config != nil && c.config.IsSet(key) {
		v := c.config.GetBool(key)
		return &v
	}
	return nil
}

// stringOption returns the flag value when set, else the configured value.
func (c *CLI) stringOption(cmd *cobra.Command, flag, value, key string) string {
	if cmd.Flags().Changed(flag) || c.config == nil {
		return value
	}
	if v := c.config.GetString(key); v != "" {
		return v
	}
	return value
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
