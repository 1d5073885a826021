package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alps-papers/alpstool/internal/format"
)

var fmtDryRun bool

func init() {
	fmtCmd.Flags().BoolVarP(&fmtDryRun, "dry-run", "n", false, "List files that need formatting without rewriting them")
	rootCmd.AddCommand(fmtCmd)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite paper files into their canonical shape",
	Long: `Rewrite every paper file with the standard field order, sorted and
deduplicated labels, publications ordered by venue importance, and
cleaned-up string and BibTeX fields. Run before committing edits so
diffs stay limited to real content changes.`,
	Args: cobra.NoArgs,
	RunE: runFmt,
}

// FmtResponse is the JSON output of the fmt command.
type FmtResponse struct {
	Processed int      `json:"processed"`
	Changed   []string `json:"changed"`
	DryRun    bool     `json:"dryRun"`
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := papersPath()
	res, err := format.Dir(path, fmtDryRun)
	if err != nil {
		exitWithError(ExitConfigError, "formatting %s: %v", path, err)
	}
	for _, skipped := range res.Skipped {
		log.WithField("file", skipped.Name).Warn(skipped.Reason)
	}

	if humanOutput {
		verb := "formatted"
		if fmtDryRun {
			verb = "needs formatting:"
		}
		for _, name := range res.Changed {
			fmt.Printf("%s %s\n", verb, name)
		}
		fmt.Printf("%d files checked, %d changed\n", res.Processed, len(res.Changed))
		return nil
	}
	return outputJSON(FmtResponse{
		Processed: res.Processed,
		Changed:   res.Changed,
		DryRun:    fmtDryRun,
	})
}
