package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wai/internal/assessment"
	"wai/internal/tracker"
)

var syncAssessment string

// syncTrackerCmd projects report state onto the issue tracker.
var syncTrackerCmd = &cobra.Command{
	Use:   "sync-tracker",
	Short: "Sync report state to the issue tracker",
	Long: `For every linked record: posts the answer as a comment, closes
the task when answered, blocks it when needs_human. An epic closes
once every question in its pillar is answered. Individual tracker
failures are logged and skipped; the pass is safe to re-run.`,
	RunE: runSyncTracker,
}

func init() {
	syncTrackerCmd.Flags().StringVar(&syncAssessment, "assessment", "", "assessment name (required)")
	syncTrackerCmd.MarkFlagRequired("assessment")
}

func runSyncTracker(cmd *cobra.Command, args []string) error {
	paths := assessment.Paths{ReportsDir: cfg.ReportsDir, Assessment: syncAssessment}
	m, err := tracker.LoadMap(paths.TrackerMap())
	if err != nil {
		return err
	}

	engine := tracker.NewEngine(newTrackerClient(), logger)
	stats := engine.Sync(cmd.Context(), assessment.RecordsByPillar(paths), m)
	logger.Info("sync complete",
		zap.Int("comments", stats.Comments),
		zap.Int("closed", stats.Closed),
		zap.Int("blocked", stats.Blocked),
		zap.Int("epics_closed", stats.EpicsClosed),
		zap.Int("skipped", stats.Skipped))
	return nil
}
