// Package reconcile computes the canonical status of a question record
// from its two input signals: human-entered answer text and the latest
// automated evidence summary. Answers are ground truth and always win;
// evidence is a weaker, overwritable signal that can nudge a record
// toward partial but never toward answered on its own.
package reconcile

import (
	"fmt"
	"time"

	"wai/internal/report"
)

// promptPrefix marks an auto-generated human-questions note. Notes
// carrying this prefix may be regenerated; anything else is treated as
// human-authored and never overwritten.
const promptPrefix = "Please describe how your team addresses:"

// ApplyEvidence reconciles one record block against the latest
// evidence summary and returns the updated block.
//
// Status rules, in order:
//  1. non-empty answer -> answered, unconditionally
//  2. stale answered with no answer text -> partial when evidence is
//     available, else needs_human
//  3. otherwise -> partial when evidence is available, else needs_human
//
// The evidence field always reflects the latest scan only; applying a
// new summary overwrites the previous one. The human-questions prompt
// is templated on the question text, but only onto an empty field or a
// previously auto-generated prompt.
func ApplyEvidence(rec report.Record, summary string) string {
	block := rec.Block
	question := report.NormalizeText(rec.Question)
	if question == "" {
		question = report.NormalizeText(rec.Title)
	}

	var status report.Status
	if rec.Answer() != "" {
		status = report.StatusAnswered
	} else if summary != "" {
		status = report.StatusPartial
	} else {
		status = report.StatusNeedsHuman
	}

	block = report.ReplaceField(block, report.FieldEvidence, summary)
	block = report.ReplaceField(block, report.FieldStatus, string(status))

	if question != "" && status != report.StatusAnswered {
		existing := report.ParseField(block, report.FieldHumanQuestions)
		if existing == "" || hasPromptPrefix(existing) {
			block = report.ReplaceField(block, report.FieldHumanQuestions, promptPrefix+" "+question)
		}
	}

	// Refresh the stored question prose and heading from the
	// normalized text so artifacts do not survive round trips.
	if question != "" {
		block = report.ReplaceField(block, report.FieldQuestion, question)
		block = report.SetHeading(block, rec.ID, report.ShortTitle(question))
	}
	return report.Canonicalize(block)
}

func hasPromptPrefix(s string) bool {
	return len(s) >= len(promptPrefix) && s[:len(promptPrefix)] == promptPrefix
}

// RecordAnswer applies an explicit human decision to a record block:
// answer text, caller-supplied status and confidence, and a fresh
// last-updated timestamp. This is the only path where status may be
// set to a value not derived from the evidence rules, but out-of-enum
// values are still rejected before any mutation.
func RecordAnswer(rec report.Record, answer string, status report.Status, confidence report.Confidence, now time.Time) (string, error) {
	if !status.Valid() {
		return "", fmt.Errorf("invalid status %q", status)
	}
	if !confidence.Valid() {
		return "", fmt.Errorf("invalid confidence %q", confidence)
	}
	block := rec.Block
	block = report.ReplaceField(block, report.FieldStatus, string(status))
	block = report.ReplaceField(block, report.FieldConfidence, string(confidence))
	block = report.ReplaceField(block, report.FieldAnswer, report.NormalizeText(answer))
	block = report.ReplaceField(block, report.FieldLastUpdated, now.UTC().Format(report.TimeFormat))
	return block, nil
}
