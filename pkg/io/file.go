package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/hypergraph/pkg/errors"
	"github.com/matzehuels/hypergraph/pkg/hmetis"
	"github.com/matzehuels/hypergraph/pkg/hypergraph"
)

// Supported interchange formats.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatTOML    = "toml"
	FormatMsgpack = "msgpack"
	FormatHMetis  = "hmetis"
)

// Formats lists every format accepted by [Read] and [Write].
var Formats = []string{FormatHMetis, FormatJSON, FormatYAML, FormatTOML, FormatMsgpack}

var extToFormat = map[string]string{
	".json":    FormatJSON,
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".toml":    FormatTOML,
	".msgpack": FormatMsgpack,
	".mp":      FormatMsgpack,
	".hgr":     FormatHMetis,
}

// FormatFromPath infers the interchange format from a file extension.
// Returns an INVALID_FORMAT coded error for unknown extensions.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extToFormat[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from extension %q of %s", ext, path)
}

// Read decodes a hypergraph from r in the named format.
func Read(format string, r io.Reader) (*hypergraph.Hypergraph, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	case FormatTOML:
		return ReadTOML(r)
	case FormatMsgpack:
		return ReadMsgpack(r)
	case FormatHMetis:
		return hmetis.Read(r)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
}

// Write encodes g to w in the named format.
func Write(format string, g *hypergraph.Hypergraph, w io.Writer) error {
	switch format {
	case FormatJSON:
		return WriteJSON(g, w)
	case FormatYAML:
		return WriteYAML(g, w)
	case FormatTOML:
		return WriteTOML(g, w)
	case FormatMsgpack:
		return WriteMsgpack(g, w)
	case FormatHMetis:
		return hmetis.Write(g, w)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
}

// Import reads the file at path, inferring the format from its extension.
//
// A missing file yields a FILE_NOT_FOUND coded error; an unknown extension
// yields INVALID_FORMAT. Decoding and store errors are returned wrapped with
// the path.
func Import(path string) (*hypergraph.Hypergraph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(format, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Export writes g to a file at path, inferring the format from its extension.
func Export(g *hypergraph.Hypergraph, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(format, g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
