package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alps-papers/alpstool/internal/canonical"
	"github.com/alps-papers/alpstool/internal/stats"
)

var statsTop int

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", 10, "Number of top authors to show in human output")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics over canonical authors",
	Long: `Compute corpus statistics with author-name variants merged into
canonical identities: paper and author totals, most prolific authors,
papers-per-author distribution, label usage, and papers per year.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	c := loadCorpus()
	canon := canonical.Build(c.Papers)
	s := stats.Compute(c.Papers, canon)

	if !humanOutput {
		return outputJSON(s)
	}

	fmt.Printf("Papers:         %d\n", s.TotalPapers)
	fmt.Printf("Unique authors: %d\n", s.UniqueAuthors)
	fmt.Printf("Unique labels:  %d\n", s.UniqueLabels)

	fmt.Printf("\nTop authors:\n")
	top := s.Authors
	if len(top) > statsTop {
		top = top[:statsTop]
	}
	for _, a := range top {
		fmt.Printf("  %3d  %s\n", a.Papers, a.Name)
	}

	fmt.Printf("\nLabels:\n")
	for _, l := range s.Labels {
		fmt.Printf("  %3d  %s\n", l.Papers, l.Label)
	}

	fmt.Printf("\nPapers per year:\n")
	for _, y := range s.Years {
		fmt.Printf("  %d  %d\n", y.Year, y.Papers)
	}

	return nil
}
