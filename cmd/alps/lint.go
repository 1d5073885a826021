package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alps-papers/alpstool/internal/lint"
)

func init() {
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate the paper files",
	Long: `Check every paper file for missing required fields, out-of-range
publication dates, malformed URLs, and labels used by only one paper.
Exits with code 3 if any errors are found.`,
	Args: cobra.NoArgs,
	RunE: runLint,
}

// LintResponse is the JSON output of the lint command.
type LintResponse struct {
	Files    int          `json:"files"`
	Errors   int          `json:"errors"`
	Warnings int          `json:"warnings"`
	Issues   []lint.Issue `json:"issues"`
}

func runLint(cmd *cobra.Command, args []string) error {
	c := loadCorpus()
	issues := lint.Check(c)

	errorCount := lint.ErrorCount(issues)
	resp := LintResponse{
		Files:    len(c.Papers) + len(c.Skipped),
		Errors:   errorCount,
		Warnings: len(issues) - errorCount,
		Issues:   issues,
	}

	if humanOutput {
		lastFile := ""
		for _, issue := range issues {
			if issue.File != lastFile {
				fmt.Printf("%s\n", issue.File)
				lastFile = issue.File
			}
			fmt.Printf("  %-5s %s\n", issue.Severity, issue.Message)
		}
		fmt.Printf("\n%d files checked: %d errors, %d warnings\n",
			resp.Files, resp.Errors, resp.Warnings)
	} else {
		if err := outputJSON(resp); err != nil {
			return err
		}
	}

	if errorCount > 0 {
		os.Exit(ExitDataError)
	}
	return nil
}
