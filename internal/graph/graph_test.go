package graph

import (
	"reflect"
	"testing"

	"github.com/alps-papers/alpstool/internal/paper"
)

func paperWith(title, authors string) paper.Paper {
	return paper.Paper{Title: title, Authors: paper.SingleAuthors(authors)}
}

func TestBuildCliqueCounting(t *testing.T) {
	papers := []paper.Paper{
		paperWith("one", "Alice Foo, Bob Bar, Carol Baz"),
	}

	g := Build(papers)

	if len(g.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(g.Nodes))
	}
	if len(g.Links) != 3 {
		t.Fatalf("got %d links, want 3 pairwise links for a 3-author paper", len(g.Links))
	}
	for _, l := range g.Links {
		if l.Value != 1 {
			t.Errorf("link %d-%d has value %d, want 1", l.Source, l.Target, l.Value)
		}
	}

	// A second paper by the same three authors increments every pair.
	papers = append(papers, paperWith("two", "Alice Foo, Bob Bar, Carol Baz"))
	g = Build(papers)

	if len(g.Links) != 3 {
		t.Fatalf("got %d links after second paper, want 3", len(g.Links))
	}
	for _, l := range g.Links {
		if l.Value != 2 {
			t.Errorf("link %d-%d has value %d, want 2", l.Source, l.Target, l.Value)
		}
	}
	if g.MaxCollaboration != 2 {
		t.Errorf("MaxCollaboration = %d, want 2", g.MaxCollaboration)
	}
	for _, n := range g.Nodes {
		if n.PaperCount != 2 {
			t.Errorf("node %q has paperCount %d, want 2", n.Name, n.PaperCount)
		}
	}
}

func TestBuildNodeIDsFollowDiscoveryOrder(t *testing.T) {
	papers := []paper.Paper{
		paperWith("one", "Alice Foo, Bob Bar"),
		paperWith("two", "Carol Baz, Alice Foo"),
	}

	g := Build(papers)

	wantNames := []string{"Alice Foo", "Bob Bar", "Carol Baz"}
	if len(g.Nodes) != len(wantNames) {
		t.Fatalf("got %d nodes, want %d", len(g.Nodes), len(wantNames))
	}
	for i, want := range wantNames {
		if g.Nodes[i].ID != i {
			t.Errorf("node %d has id %d, want dense ids in discovery order", i, g.Nodes[i].ID)
		}
		if g.Nodes[i].Name != want {
			t.Errorf("node %d is %q, want %q", i, g.Nodes[i].Name, want)
		}
	}
	if g.Nodes[0].PaperCount != 2 {
		t.Errorf("Alice Foo paperCount = %d, want 2", g.Nodes[0].PaperCount)
	}
}

func TestBuildNoCollaborations(t *testing.T) {
	papers := []paper.Paper{
		paperWith("solo one", "Alice Foo"),
		paperWith("solo two", "Bob Bar"),
		{Title: "no authors"},
	}

	g := Build(papers)

	if len(g.Links) != 0 {
		t.Errorf("got %d links, want none for single-author corpus", len(g.Links))
	}
	if g.MaxCollaboration != 1 {
		t.Errorf("MaxCollaboration = %d, want floor of 1", g.MaxCollaboration)
	}
}

func TestBuildDeduplicatesWithinPaper(t *testing.T) {
	papers := []paper.Paper{
		{Title: "dup", Authors: paper.ListAuthors([]string{"John Smith", "Smith, John"})},
	}

	g := Build(papers)

	if len(g.Nodes) != 1 {
		t.Fatalf("got %d nodes, want 1 for variant-duplicated author", len(g.Nodes))
	}
	if g.Nodes[0].PaperCount != 1 {
		t.Errorf("paperCount = %d, want 1", g.Nodes[0].PaperCount)
	}
	if len(g.Links) != 0 {
		t.Errorf("got %d links, want none (an author cannot collaborate with themselves)", len(g.Links))
	}
}

func TestBuildMergesInitialVariants(t *testing.T) {
	papers := []paper.Paper{
		paperWith("full", "Christoph Dürr, Alice Foo"),
		paperWith("initial", "C. Dürr, Alice Foo"),
	}

	g := Build(papers)

	if len(g.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2 (initial form merges into full name)", len(g.Nodes))
	}
	if g.Nodes[0].Name != "Christoph Dürr" {
		t.Errorf("node 0 is %q, want Christoph Dürr", g.Nodes[0].Name)
	}
	if g.Nodes[0].PaperCount != 2 {
		t.Errorf("Christoph Dürr paperCount = %d, want 2", g.Nodes[0].PaperCount)
	}
	if len(g.Links) != 1 || g.Links[0].Value != 2 {
		t.Errorf("links = %+v, want one link with value 2", g.Links)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	papers := []paper.Paper{
		paperWith("one", "Alice Foo, Bob Bar, Carol Baz"),
		paperWith("two", "Bob Bar, Dan Qux"),
		paperWith("three", "Carol Baz, Alice Foo"),
	}

	first := Build(papers)
	second := Build(papers)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two builds over the same corpus differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestIsEmpty(t *testing.T) {
	if g := Build(nil); !g.IsEmpty() {
		t.Error("graph over empty corpus should be empty")
	}
	if g := Build([]paper.Paper{paperWith("p", "Alice Foo")}); g.IsEmpty() {
		t.Error("graph with one author should not be empty")
	}
}
