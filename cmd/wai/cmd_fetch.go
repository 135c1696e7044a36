package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wai/internal/fetch"
	"wai/internal/inventory"
	"wai/internal/report"
)

var fetchRefresh bool

// fetchCmd populates the question inventory cache from the source pages.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the framework questions into the local cache",
	Long: `Downloads every pillar's best-practice pages and extracts the
framework questions into the local inventory cache. The cache is kept
until --refresh forces a re-fetch; init reads questions from it so
assessments can be created offline.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchRefresh, "refresh", false, "re-fetch even when a cache exists")
}

func runFetch(cmd *cobra.Command, args []string) error {
	store, err := inventory.Open(cfg.QuestionsDBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	if !fetchRefresh {
		n, err := store.Count()
		if err != nil {
			return err
		}
		if n > 0 {
			fmt.Printf("Cache exists at %s with %d questions. Use --refresh to re-fetch.\n",
				cfg.QuestionsDBPath(), n)
			return nil
		}
	}

	fetcher := fetch.New(cfg.Fetch.BaseURL, cfg.FetchTimeout(), logger)
	questions, err := fetcher.FetchAll(cmd.Context())
	if err != nil {
		return err
	}

	fetchedAt := ""
	if len(questions) > 0 {
		fetchedAt = questions[0].FetchedAt
	}
	if err := store.Replace(questions, fetchedAt); err != nil {
		return fmt.Errorf("failed to store inventory: %w", err)
	}
	logger.Info("inventory updated",
		zap.Int("questions", len(questions)),
		zap.String("license", report.LicenseText))
	fmt.Printf("Wrote %d questions to %s\n", len(questions), cfg.QuestionsDBPath())
	return nil
}
