// Package graph builds the co-authorship graph rendered by the site's
// collaboration view.
package graph

import (
	"github.com/alps-papers/alpstool/internal/authorname"
	"github.com/alps-papers/alpstool/internal/canonical"
	"github.com/alps-papers/alpstool/internal/paper"
)

// Node is one canonical author. IDs form a dense 0..N-1 range assigned in
// the order authors are first discovered while scanning papers in input
// order, so a fixed corpus always yields the same IDs.
type Node struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PaperCount int    `json:"paperCount"`
	Key        string `json:"key"`
}

// Link is one unordered co-author pair. Value counts the papers the two
// authors share.
type Link struct {
	Source int `json:"source"`
	Target int `json:"target"`
	Value  int `json:"value"`
}

// Graph is the node/edge model consumed by the visualization layer.
// MaxCollaboration is the largest link value, floored at 1 so edge-width
// normalization downstream never divides by zero.
type Graph struct {
	Nodes            []Node `json:"nodes"`
	Links            []Link `json:"links"`
	MaxCollaboration int    `json:"maxCollaboration"`
}

// IsEmpty reports whether the graph has no nodes.
func (g *Graph) IsEmpty() bool {
	return len(g.Nodes) == 0
}

// Build constructs the collaboration graph for a corpus, building a fresh
// canonicalizer over it first.
func Build(papers []paper.Paper) *Graph {
	return BuildWith(papers, canonical.Build(papers))
}

// BuildWith constructs the collaboration graph using an already-built
// canonicalizer, for callers that share one across graph and statistics.
func BuildWith(papers []paper.Paper, canon *canonical.Canonicalizer) *Graph {
	idByKey := make(map[string]int)
	var nodes []Node

	type pair struct{ a, b int }
	linkCount := make(map[pair]int)
	var linkOrder []pair

	for _, p := range papers {
		// A paper listing the same author twice contributes one membership.
		seen := make(map[string]bool)
		var members []int
		for _, name := range authorname.Parse(p.Authors) {
			key := canon.Key(name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true

			id, ok := idByKey[key]
			if !ok {
				id = len(nodes)
				idByKey[key] = id
				nodes = append(nodes, Node{
					ID:   id,
					Name: canon.DisplayName(key),
					Key:  key,
				})
			}
			nodes[id].PaperCount++
			members = append(members, id)
		}

		// Full clique: every co-author pair on the paper counts one
		// collaboration, regardless of how many authors the paper has.
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				a, b := members[i], members[j]
				if a > b {
					a, b = b, a
				}
				pr := pair{a, b}
				if _, ok := linkCount[pr]; !ok {
					linkOrder = append(linkOrder, pr)
				}
				linkCount[pr]++
			}
		}
	}

	links := make([]Link, 0, len(linkOrder))
	maxCollab := 1
	for _, pr := range linkOrder {
		value := linkCount[pr]
		links = append(links, Link{Source: pr.a, Target: pr.b, Value: value})
		if value > maxCollab {
			maxCollab = value
		}
	}

	return &Graph{Nodes: nodes, Links: links, MaxCollaboration: maxCollab}
}
