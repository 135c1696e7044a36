package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wai/internal/assessment"
	"wai/internal/scan"
)

var applyAssessment string

// applyEvidenceCmd reconciles the reports against the latest scan.
var applyEvidenceCmd = &cobra.Command{
	Use:   "apply-evidence",
	Short: "Apply the latest scan evidence to the reports",
	Long: `Builds the evidence summary from evidence.json and reconciles
every record: answered records keep their status, everything else
moves to partial (evidence available) or needs_human (no evidence),
with a templated human question added where none was written by hand.`,
	RunE: runApplyEvidence,
}

func init() {
	applyEvidenceCmd.Flags().StringVar(&applyAssessment, "assessment", "", "assessment name (required)")
	applyEvidenceCmd.MarkFlagRequired("assessment")
}

func runApplyEvidence(cmd *cobra.Command, args []string) error {
	paths := assessment.Paths{ReportsDir: cfg.ReportsDir, Assessment: applyAssessment}
	ev, err := scan.Load(paths.Evidence())
	if err != nil {
		return err
	}
	summary := ev.Summary()
	if err := assessment.ApplyEvidence(paths, summary); err != nil {
		return err
	}
	logger.Info("evidence applied", zap.String("summary", summary))
	fmt.Println("Evidence applied to reports.")
	return nil
}
