package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alps-papers/alpstool/internal/export"
	"github.com/alps-papers/alpstool/internal/graph"
)

var graphOutput string

func init() {
	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "", "Write graph JSON to this file instead of stdout")
	rootCmd.AddCommand(graphCmd)
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build the co-authorship graph",
	Long: `Build the collaboration graph over canonical authors: one node per
author with their paper count, one link per co-author pair weighted by
the number of shared papers. This is the graph.json payload the site's
collaboration view renders.`,
	Args: cobra.NoArgs,
	RunE: runGraph,
}

func runGraph(cmd *cobra.Command, args []string) error {
	c := loadCorpus()
	g := graph.Build(c.Papers)

	if humanOutput {
		fmt.Printf("Authors:           %d\n", len(g.Nodes))
		fmt.Printf("Collaborations:    %d\n", len(g.Links))
		fmt.Printf("Max collaboration: %d\n", g.MaxCollaboration)
		return nil
	}

	if graphOutput == "" {
		return outputJSON(g)
	}

	data, err := export.MarshalGraph(g)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if err := os.WriteFile(graphOutput, data, 0o644); err != nil {
		exitWithError(ExitError, "writing %s: %v", graphOutput, err)
	}
	return outputJSON(StatusResponse{Status: "written", Path: graphOutput})
}
