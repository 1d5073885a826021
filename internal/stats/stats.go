// Package stats computes corpus-level statistics over canonical author
// identities, labels, and publication years.
package stats

import (
	"sort"

	"github.com/alps-papers/alpstool/internal/authorname"
	"github.com/alps-papers/alpstool/internal/canonical"
	"github.com/alps-papers/alpstool/internal/paper"
)

// AuthorCount is one canonical author with the number of papers they
// appear on.
type AuthorCount struct {
	Name   string `json:"name"`
	Key    string `json:"key"`
	Papers int    `json:"papers"`
}

// LabelCount is one label with the number of papers carrying it.
type LabelCount struct {
	Label  string `json:"label"`
	Papers int    `json:"papers"`
}

// YearCount is one publication year with its paper count.
type YearCount struct {
	Year   int `json:"year"`
	Papers int `json:"papers"`
}

// Bucket is one entry of the papers-per-author distribution: Authors
// authors appear on exactly Papers papers each.
type Bucket struct {
	Papers  int `json:"papers"`
	Authors int `json:"authors"`
}

// Stats summarizes a corpus. Slices are sorted so output is stable.
type Stats struct {
	TotalPapers   int           `json:"totalPapers"`
	UniqueAuthors int           `json:"uniqueAuthors"`
	UniqueLabels  int           `json:"uniqueLabels"`
	Authors       []AuthorCount `json:"authors"`
	Distribution  []Bucket      `json:"distribution"`
	Labels        []LabelCount  `json:"labels"`
	Years         []YearCount   `json:"years"`
}

// Compute derives statistics for the corpus using the given canonicalizer,
// so author counts are over merged identities rather than raw variants.
func Compute(papers []paper.Paper, canon *canonical.Canonicalizer) Stats {
	paperCount := make(map[string]int)
	labelCount := make(map[string]int)
	yearCount := make(map[int]int)

	for _, p := range papers {
		seen := make(map[string]bool)
		for _, name := range authorname.Parse(p.Authors) {
			key := canon.Key(name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			paperCount[key]++
		}
		for _, label := range p.Labels {
			labelCount[label]++
		}
		if year := p.PublicationYear(); year > 0 {
			yearCount[year]++
		}
	}

	s := Stats{
		TotalPapers:   len(papers),
		UniqueAuthors: len(paperCount),
		UniqueLabels:  len(labelCount),
	}

	s.Authors = make([]AuthorCount, 0, len(paperCount))
	distribution := make(map[int]int)
	for key, count := range paperCount {
		s.Authors = append(s.Authors, AuthorCount{
			Name:   canon.DisplayName(key),
			Key:    key,
			Papers: count,
		})
		distribution[count]++
	}
	sort.Slice(s.Authors, func(i, j int) bool {
		if s.Authors[i].Papers != s.Authors[j].Papers {
			return s.Authors[i].Papers > s.Authors[j].Papers
		}
		return s.Authors[i].Name < s.Authors[j].Name
	})

	s.Distribution = make([]Bucket, 0, len(distribution))
	for papers, authors := range distribution {
		s.Distribution = append(s.Distribution, Bucket{Papers: papers, Authors: authors})
	}
	sort.Slice(s.Distribution, func(i, j int) bool {
		return s.Distribution[i].Papers < s.Distribution[j].Papers
	})

	s.Labels = make([]LabelCount, 0, len(labelCount))
	for label, count := range labelCount {
		s.Labels = append(s.Labels, LabelCount{Label: label, Papers: count})
	}
	sort.Slice(s.Labels, func(i, j int) bool {
		if s.Labels[i].Papers != s.Labels[j].Papers {
			return s.Labels[i].Papers > s.Labels[j].Papers
		}
		return s.Labels[i].Label < s.Labels[j].Label
	})

	s.Years = make([]YearCount, 0, len(yearCount))
	for year, count := range yearCount {
		s.Years = append(s.Years, YearCount{Year: year, Papers: count})
	}
	sort.Slice(s.Years, func(i, j int) bool {
		return s.Years[i].Year < s.Years[j].Year
	})

	return s
}
