package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alps-papers/alpstool/internal/export"
)

var exportDir string

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "output", "o", "data", "Directory to write the site data artifacts into")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the prebuilt site data artifacts",
	Long: `Write the papers.json and graph.json artifacts the site fetches at
runtime. Run this after editing paper files to refresh what the
frontend serves.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	c := loadCorpus()

	if err := export.WriteSiteData(exportDir, c.Papers); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("wrote %s and %s to %s (%d papers)\n",
			export.PapersFile, export.GraphFile, exportDir, len(c.Papers))
		return nil
	}
	return outputJSON(StatusResponse{Status: "written", Path: exportDir})
}
