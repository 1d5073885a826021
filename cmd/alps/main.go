// Package main provides the alps CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alps-papers/alpstool/internal/corpus"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// papersFlag overrides the papers location from the command line
var papersFlag string

var log = logrus.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "alps",
	Short: "Curated-bibliography author and collaboration toolkit",
	Long: `alps maintains the curated paper bibliography behind the paper-browsing
site. It loads the per-paper YAML files (or the prebuilt papers.json),
canonicalizes author-name variants, and produces the statistics and
collaboration-graph artifacts the site renders.

All commands output JSON by default for easy downstream consumption;
pass --human for readable tables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&papersFlag, "papers", "", "Papers directory or prebuilt papers.json (default $ALPS_PAPERS_DIR or ./papers)")
	rootCmd.Version = Version

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

// papersPath resolves the corpus location: flag, then environment
// (including a .env file if present), then ./papers.
func papersPath() string {
	_ = godotenv.Load()

	if papersFlag != "" {
		return papersFlag
	}
	if env := os.Getenv("ALPS_PAPERS_DIR"); env != "" {
		return env
	}
	return "papers"
}

// loadCorpus loads the corpus or exits with a config error. Files the
// loader skipped are logged; lint reports them as errors.
func loadCorpus() *corpus.Corpus {
	path := papersPath()
	c, err := corpus.Load(path)
	if err != nil {
		exitWithError(ExitConfigError, "loading corpus from %s: %v", path, err)
	}
	for _, skipped := range c.Skipped {
		log.WithField("file", skipped.Name).Warn(skipped.Reason)
	}
	return c
}
