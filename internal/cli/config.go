package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/matzehuels/hypergraph/pkg/errors"
)

// Config keys. Each can also be set through the environment as
// HYPERGRAPH_<KEY>, e.g. HYPERGRAPH_WEIGHTED_EDGES=true.
const (
	keyFormat        = "format"
	keyWeightedNodes = "weighted_nodes"
	keyWeightedEdges = "weighted_edges"
)

const envPrefix = "HYPERGRAPH"

// loadConfig builds the layered configuration: environment over config file.
//
// An explicit path must exist. Without one, the default location is read if
// present and silently skipped otherwise.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{keyFormat, keyWeightedNodes, keyWeightedEdges} {
		_ = v.BindEnv(key)
	}

	if path == "" {
		dir, err := configDir()
		if err != nil {
			return v, nil
		}
		path = filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err != nil {
			return v, nil
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return v, nil
}

// configDir returns the config directory using XDG standard (~/.config/hypergraph/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
