// Package export writes the prebuilt data artifacts the web frontend
// fetches at runtime: the flattened paper list and the collaboration
// graph.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/segmentio/encoding/json"

	"github.com/alps-papers/alpstool/internal/graph"
	"github.com/alps-papers/alpstool/internal/paper"
)

// Artifact filenames, fixed because the frontend fetches them by name.
const (
	PapersFile = "papers.json"
	GraphFile  = "graph.json"
)

// MarshalPapers encodes the paper list as the papers.json payload.
func MarshalPapers(papers []paper.Paper) ([]byte, error) {
	data, err := json.Marshal(papers)
	if err != nil {
		return nil, fmt.Errorf("encoding papers: %w", err)
	}
	return data, nil
}

// MarshalGraph encodes a collaboration graph as the graph.json payload.
func MarshalGraph(g *graph.Graph) ([]byte, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encoding graph: %w", err)
	}
	return data, nil
}

// WriteSiteData writes papers.json and graph.json into dir, creating it if
// needed. The graph is built from the given papers so the two artifacts
// are always consistent with each other.
func WriteSiteData(dir string, papers []paper.Paper) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	paperData, err := MarshalPapers(papers)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, PapersFile), paperData, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", PapersFile, err)
	}

	graphData, err := MarshalGraph(graph.Build(papers))
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, GraphFile), graphData, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", GraphFile, err)
	}

	return nil
}
