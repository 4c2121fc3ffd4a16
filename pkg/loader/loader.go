// Package loader reads tree definitions from JSON and YAML files.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/treekit/pkg/tree"
)

// document is the on-disk shape of a tree file. A bare top-level array of
// nodes is also accepted.
type document struct {
	Nodes []tree.Node `json:"nodes" yaml:"nodes"`
}

// Load reads a tree definition from path. The format is chosen by
// extension: .json, .yaml, or .yml. The decoded forest is validated before
// it is returned.
func Load(path string) ([]tree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree file: %w", err)
	}

	var nodes []tree.Node
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		nodes, err = decodeJSON(data)
	case ".yaml", ".yml":
		nodes, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported tree file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	if err := tree.Validate(nodes); err != nil {
		return nil, fmt.Errorf("invalid tree in %s: %w", filepath.Base(path), err)
	}
	return nodes, nil
}

// decodeJSON accepts either a {"nodes": [...]} document or a bare array.
func decodeJSON(data []byte) ([]tree.Node, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err == nil && doc.Nodes != nil {
		return doc.Nodes, nil
	}
	var nodes []tree.Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

// decodeYAML accepts either a nodes: document or a bare sequence.
func decodeYAML(data []byte) ([]tree.Node, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err == nil && doc.Nodes != nil {
		return doc.Nodes, nil
	}
	var nodes []tree.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}
