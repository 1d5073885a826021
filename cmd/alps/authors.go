package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alps-papers/alpstool/internal/canonical"
	"github.com/alps-papers/alpstool/internal/stats"
)

var authorsMinPapers int

func init() {
	authorsCmd.Flags().IntVar(&authorsMinPapers, "min-papers", 1, "Only list authors with at least this many papers")
	rootCmd.AddCommand(authorsCmd)
}

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "List canonical authors with their merged name variants",
	Long: `List every canonical author in the corpus with their paper count and
the raw name variants that merged into them ("C. Dürr", "Christoph Durr",
and "Dürr, Christoph" all fold into one entry).`,
	Args: cobra.NoArgs,
	RunE: runAuthors,
}

// AuthorEntry is one canonical author in the authors listing.
type AuthorEntry struct {
	Name     string   `json:"name"`
	Key      string   `json:"key"`
	Papers   int      `json:"papers"`
	Variants []string `json:"variants,omitempty"`
}

func runAuthors(cmd *cobra.Command, args []string) error {
	c := loadCorpus()
	canon := canonical.Build(c.Papers)
	s := stats.Compute(c.Papers, canon)

	entries := make([]AuthorEntry, 0, len(s.Authors))
	for _, a := range s.Authors {
		if a.Papers < authorsMinPapers {
			continue
		}
		variants := canon.Variants(a.Key)
		// The preferred display name is not interesting as its own variant.
		filtered := make([]string, 0, len(variants))
		for _, v := range variants {
			if v != a.Name {
				filtered = append(filtered, v)
			}
		}
		entries = append(entries, AuthorEntry{
			Name:     a.Name,
			Key:      a.Key,
			Papers:   a.Papers,
			Variants: filtered,
		})
	}

	if !humanOutput {
		return outputJSON(entries)
	}

	for _, e := range entries {
		fmt.Printf("%3d  %s\n", e.Papers, e.Name)
		if len(e.Variants) > 0 {
			fmt.Printf("     also seen as: %s\n", strings.Join(e.Variants, "; "))
		}
	}
	return nil
}
