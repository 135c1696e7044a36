package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wai/internal/assessment"
	"wai/internal/inventory"
	"wai/internal/runner"
	"wai/internal/tracker"
)

var (
	initTargetDir  string
	initAssessment string
)

// initCmd creates a new assessment from the cached inventory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an assessment from the question cache",
	Long: `Creates the assessment directory with one report document per
pillar, then builds the tracker structure (initiative, per-pillar
epics, per-question tasks), persists the id mapping to
tracker-map.json, and links each record to its task.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initTargetDir, "target-dir", "", "repository under assessment (required)")
	initCmd.Flags().StringVar(&initAssessment, "assessment", "", "assessment name (default <target>-<date>)")
	initCmd.MarkFlagRequired("target-dir")
}

func runInit(cmd *cobra.Command, args []string) error {
	info, err := os.Stat(initTargetDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("target-dir not found: %s", initTargetDir)
	}

	store, err := inventory.Open(cfg.QuestionsDBPath())
	if err != nil {
		return err
	}
	defer store.Close()
	questions, err := store.All()
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return fmt.Errorf("questions cache is empty, run wai fetch first")
	}

	name := initAssessment
	if name == "" {
		name = assessment.Slug(initTargetDir, time.Now())
	}
	paths := assessment.Paths{ReportsDir: cfg.ReportsDir, Assessment: name}

	if err := assessment.WriteReports(questions, paths, cfg.Fetch.BaseURL, time.Now()); err != nil {
		return err
	}
	logger.Info("reports written",
		zap.String("assessment", name),
		zap.Int("questions", len(questions)))

	client := newTrackerClient()
	m, err := assessment.BootstrapTracker(cmd.Context(), client, questions, name)
	if err != nil {
		return fmt.Errorf("tracker setup failed: %w", err)
	}
	if err := tracker.SaveMap(paths.TrackerMap(), m); err != nil {
		return err
	}
	if err := assessment.ApplyTaskIDs(paths, m); err != nil {
		return err
	}
	fmt.Printf("Initialized assessment %s under %s\n", name, paths.Base())
	return nil
}

// newTrackerClient wires the tracker CLI client from config.
func newTrackerClient() *tracker.Client {
	run := runner.New(cfg.TrackerTimeout())
	return tracker.NewClient(cfg.Tracker.Binary, run, logger)
}
