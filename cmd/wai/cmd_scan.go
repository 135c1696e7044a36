package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wai/internal/assessment"
	"wai/internal/runner"
	"wai/internal/scan"
)

var (
	scanTargetDir  string
	scanAssessment string
	scanWith       string
)

// scanCmd collects automated evidence about the target repository.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the target repository for evidence",
	Long: `Inventories the target repository (languages, infrastructure as
code, CI systems) and optionally runs security scanners, writing the
result to evidence.json in the assessment directory. Apply the
evidence to the reports with wai apply-evidence.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanTargetDir, "target-dir", "", "repository to scan (required)")
	scanCmd.Flags().StringVar(&scanAssessment, "assessment", "", "assessment name (required)")
	scanCmd.Flags().StringVar(&scanWith, "with", "", "comma-separated optional scanners (semgrep,trivy)")
	scanCmd.MarkFlagRequired("target-dir")
	scanCmd.MarkFlagRequired("assessment")
}

func runScan(cmd *cobra.Command, args []string) error {
	paths := assessment.Paths{ReportsDir: cfg.ReportsDir, Assessment: scanAssessment}
	if _, err := os.Stat(paths.Base()); err != nil {
		return fmt.Errorf("assessment reports not found: %s", paths.Base())
	}

	var scanners []string
	for _, s := range strings.Split(scanWith, ",") {
		if s = strings.TrimSpace(s); s != "" {
			scanners = append(scanners, s)
		}
	}

	run := runner.New(cfg.TrackerTimeout())
	ev, err := scan.Run(cmd.Context(), scanTargetDir, scanners, run, logger)
	if err != nil {
		return err
	}
	if err := scan.Save(paths.Evidence(), ev); err != nil {
		return err
	}
	logger.Info("scan complete",
		zap.String("scan_id", ev.ScanID),
		zap.String("summary", ev.Summary()))
	fmt.Printf("Wrote evidence to %s\n", paths.Evidence())
	return nil
}
