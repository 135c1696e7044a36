package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"wai/internal/assessment"
	"wai/internal/report"
)

var (
	listAssessment string

	answerAssessment string
	answerQuestionID string
	answerStatus     string
	answerConfidence string
	answerFile       string
)

// listUnansweredCmd prints the open questions as JSON.
var listUnansweredCmd = &cobra.Command{
	Use:   "list-unanswered",
	Short: "List questions not yet answered",
	RunE:  runListUnanswered,
}

// recordAnswerCmd writes an explicit answer onto one record.
var recordAnswerCmd = &cobra.Command{
	Use:   "record-answer",
	Short: "Record an answer for a question",
	Long: `Sets the answer text, status, confidence, and last-updated
timestamp of one record. Status and confidence must be valid enum
values; the answer text is read from a file and whitespace-collapsed.`,
	RunE: runRecordAnswer,
}

func init() {
	listUnansweredCmd.Flags().StringVar(&listAssessment, "assessment", "", "assessment name (required)")
	listUnansweredCmd.MarkFlagRequired("assessment")

	recordAnswerCmd.Flags().StringVar(&answerAssessment, "assessment", "", "assessment name (required)")
	recordAnswerCmd.Flags().StringVar(&answerQuestionID, "question-id", "", "question id (required)")
	recordAnswerCmd.Flags().StringVar(&answerStatus, "status", "", "status to set (required)")
	recordAnswerCmd.Flags().StringVar(&answerConfidence, "confidence", "n/a", "confidence to set")
	recordAnswerCmd.Flags().StringVar(&answerFile, "answer-file", "", "file holding the answer text (required)")
	recordAnswerCmd.MarkFlagRequired("assessment")
	recordAnswerCmd.MarkFlagRequired("question-id")
	recordAnswerCmd.MarkFlagRequired("status")
	recordAnswerCmd.MarkFlagRequired("answer-file")
}

func runListUnanswered(cmd *cobra.Command, args []string) error {
	paths := assessment.Paths{ReportsDir: cfg.ReportsDir, Assessment: listAssessment}
	items := assessment.ListUnanswered(paths)
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runRecordAnswer(cmd *cobra.Command, args []string) error {
	paths := assessment.Paths{ReportsDir: cfg.ReportsDir, Assessment: answerAssessment}
	raw, err := os.ReadFile(answerFile)
	if err != nil {
		return fmt.Errorf("failed to read answer file: %w", err)
	}
	return assessment.RecordAnswer(paths, answerQuestionID, string(raw),
		report.Status(answerStatus), report.Confidence(answerConfidence), time.Now())
}
