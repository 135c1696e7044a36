package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wai/internal/assessment"
)

var statusAssessment string

// statusCmd prints per-pillar interview progress.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-pillar assessment progress",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusAssessment, "assessment", "", "assessment name (required)")
	statusCmd.MarkFlagRequired("assessment")
}

func runStatus(cmd *cobra.Command, args []string) error {
	paths := assessment.Paths{ReportsDir: cfg.ReportsDir, Assessment: statusAssessment}
	byPillar := assessment.RecordsByPillar(paths)
	if len(byPillar) == 0 {
		return fmt.Errorf("assessment reports not found: %s", paths.Base())
	}
	fmt.Print(assessment.RenderSummary(assessment.Summarize(byPillar)))
	return nil
}
