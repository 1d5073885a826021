// Package corpus loads the paper collection from its source-of-truth YAML
// directory or from the prebuilt papers.json artifact the site fetches at
// runtime.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/segmentio/encoding/json"
	"gopkg.in/yaml.v3"

	"github.com/alps-papers/alpstool/internal/paper"
)

// Corpus is the loaded paper collection. Papers are ordered by filename
// (directory loads) or array position (JSON loads) so every computation
// over the corpus is reproducible.
type Corpus struct {
	Papers  []paper.Paper
	Skipped []SkippedFile
}

// SkippedFile records a file the loader could not turn into a paper.
// Loading is tolerant; the lint command surfaces these as errors.
type SkippedFile struct {
	Name   string
	Reason string
}

// Load reads a corpus from path: a directory of per-paper YAML files or a
// single prebuilt JSON array.
func Load(path string) (*Corpus, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus path: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// LoadDir reads every .yml/.yaml file in dir, in sorted filename order.
// Files that are not YAML mappings are skipped, not fatal.
func LoadDir(dir string) (*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading papers directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	c := &Corpus{}
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			c.Skipped = append(c.Skipped, SkippedFile{Name: name, Reason: err.Error()})
			continue
		}
		var doc paperDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			c.Skipped = append(c.Skipped, SkippedFile{Name: name, Reason: yamlErrorReason(err)})
			continue
		}
		if doc.isEmpty() {
			c.Skipped = append(c.Skipped, SkippedFile{Name: name, Reason: "file is empty or not a YAML mapping"})
			continue
		}
		p := doc.toPaper()
		p.Filename = name
		c.Papers = append(c.Papers, p)
	}
	return c, nil
}

// LoadFile reads a prebuilt papers.json array.
func LoadFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var docs []paperDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	c := &Corpus{Papers: make([]paper.Paper, 0, len(docs))}
	for _, doc := range docs {
		c.Papers = append(c.Papers, doc.toPaper())
	}
	return c, nil
}

// yamlErrorReason flattens a yaml.v3 error into a single line.
func yamlErrorReason(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
