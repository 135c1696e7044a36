package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wai/internal/assessment"
)

var (
	validateAssessment string
	validateWatch      bool
)

// validateCmd checks the reports for structural problems.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the assessment reports",
	Long: `Checks every pillar document for missing files, duplicate
question ids, and out-of-enum status or confidence values. Exits
non-zero when any problem is found. With --watch, re-validates
whenever a report changes.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateAssessment, "assessment", "", "assessment name (required)")
	validateCmd.Flags().BoolVar(&validateWatch, "watch", false, "re-validate on report changes")
	validateCmd.MarkFlagRequired("assessment")
}

func runValidate(cmd *cobra.Command, args []string) error {
	paths := assessment.Paths{ReportsDir: cfg.ReportsDir, Assessment: validateAssessment}

	if validateWatch {
		return assessment.Watch(cmd.Context(), paths, logger, func() {
			printValidation(assessment.Validate(paths))
		})
	}

	errs := assessment.Validate(paths)
	printValidation(errs)
	if len(errs) > 0 {
		return fmt.Errorf("validation failed with %d errors", len(errs))
	}
	return nil
}

func printValidation(errs []string) {
	if len(errs) == 0 {
		fmt.Println("ok")
		return
	}
	for _, e := range errs {
		fmt.Println(e)
	}
}
