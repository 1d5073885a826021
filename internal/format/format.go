// Package format rewrites paper YAML files into their canonical shape:
// fixed field order, cleaned string fields, sorted deduplicated labels,
// and publications ordered by venue importance.
package format

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alps-papers/alpstool/internal/corpus"
	"github.com/alps-papers/alpstool/internal/paper"
)

// venueImportance ranks the venues that recur in the corpus. Lower ranks
// sort first within a paper; preprint servers sort last. Venues not listed
// here rank between the named ones and the preprint servers.
var venueImportance = map[string]int{
	// Theory
	"STOC":   1,
	"FOCS":   1,
	"SODA":   2,
	"ICALP":  3,
	"STACS":  4,
	"ESA":    4,
	"APPROX": 4,
	"RANDOM": 4,

	// Machine learning
	"ICML":    1,
	"NeurIPS": 1,
	"NIPS":    1,
	"ICLR":    2,
	"AISTATS": 3,
	"COLT":    3,
	"UAI":     4,

	// Systems
	"OSDI":    1,
	"SOSP":    1,
	"NSDI":    2,
	"SIGCOMM": 2,

	// Journals
	"JACM":         1,
	"SICOMP":       1,
	"Algorithmica": 2,

	// Preprint servers, always last
	"arXiv": 100,
	"CoRR":  100,
}

const defaultImportance = 50

func importance(venue string) int {
	if rank, ok := venueImportance[venue]; ok {
		return rank
	}
	return defaultImportance
}

// stringCleaner undoes the escape sequences that leak into scraped fields.
var stringCleaner = strings.NewReplacer(`\n`, "\n", `\"`, `"`, `\\`, `\`)

func cleanString(s string) string {
	return strings.TrimSpace(stringCleaner.Replace(s))
}

// cleanBibTeX normalizes a BibTeX entry: escape sequences undone, blank
// lines dropped, body lines indented two spaces, closing brace flush left.
func cleanBibTeX(s string) string {
	s = strings.NewReplacer(`\n`, "\n", `\"`, `"`).Replace(s)

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return ""
	}

	out := make([]string, 0, len(lines))
	out = append(out, lines[0])
	for _, line := range lines[1:] {
		if line == "}" {
			out = append(out, line)
		} else {
			out = append(out, "  "+line)
		}
	}
	return strings.Join(out, "\n")
}

// Paper returns the canonical form of p. The input is not modified.
func Paper(p paper.Paper) paper.Paper {
	p.Title = cleanString(p.Title)
	p.Abstract = cleanString(p.Abstract)
	p.Labels = canonicalLabels(p.Labels)

	if len(p.Publications) > 0 {
		pubs := make([]paper.Publication, len(p.Publications))
		copy(pubs, p.Publications)
		for i := range pubs {
			pubs[i].Name = cleanString(pubs[i].Name)
			pubs[i].URL = cleanString(pubs[i].URL)
			pubs[i].DBLPKey = cleanString(pubs[i].DBLPKey)
			pubs[i].BibTeX = cleanBibTeX(pubs[i].BibTeX)
		}
		sortPublications(pubs)
		p.Publications = pubs
	}
	return p
}

// canonicalLabels trims, drops empties, deduplicates, and sorts.
func canonicalLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}

// sortPublications orders by venue importance, then newest first, then
// case-insensitive venue name.
func sortPublications(pubs []paper.Publication) {
	sort.SliceStable(pubs, func(i, j int) bool {
		a, b := pubs[i], pubs[j]
		if ia, ib := importance(a.Name), importance(b.Name); ia != ib {
			return ia < ib
		}
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}

// Marshal renders a paper as canonical YAML with two-space indentation.
func Marshal(p paper.Paper) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", p.Title, err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Result summarizes a formatting run over a directory.
type Result struct {
	Processed int
	Changed   []string
	Skipped   []corpus.SkippedFile
}

// Dir rewrites every paper file under dir into canonical form. With
// dryRun set no file is written; Changed still lists the files whose
// on-disk bytes differ from their canonical rendering.
func Dir(dir string, dryRun bool) (*Result, error) {
	c, err := corpus.LoadDir(dir)
	if err != nil {
		return nil, err
	}

	res := &Result{Processed: len(c.Papers), Skipped: c.Skipped}
	for _, p := range c.Papers {
		path := filepath.Join(dir, p.Filename)
		current, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p.Filename, err)
		}

		canonical, err := Marshal(Paper(p))
		if err != nil {
			return nil, fmt.Errorf("formatting %s: %w", p.Filename, err)
		}
		if bytes.Equal(current, canonical) {
			continue
		}

		res.Changed = append(res.Changed, p.Filename)
		if dryRun {
			continue
		}
		if err := os.WriteFile(path, canonical, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", p.Filename, err)
		}
	}
	return res, nil
}
