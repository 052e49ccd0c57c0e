// Package buildinfo provides build-time version information for the
// hypergraph CLI.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/hypergraph/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/hypergraph/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/hypergraph/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/hypergraph
package buildinfo

import "fmt"

// Name is the binary name shown by --version and used for config paths.
const Name = "hypergraph"

var (
	// Version is the semantic version (e.g., "v1.2.3"); "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns a one-line summary, e.g. "hypergraph v1.2.0 (abc1234, 2026-01-02)".
func String() string {
	return fmt.Sprintf("%s %s (%s, %s)", Name, Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("%s version %s\ncommit: %s\nbuilt: %s\n", Name, Version, Commit, Date)
}
