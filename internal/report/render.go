package report

import (
	"strings"
	"time"

	"wai/internal/pillar"
)

// LicenseText tags every cached question with its source license.
const LicenseText = "CC BY-SA 4.0"

const attributionTemplate = "AWS Well-Architected Framework (c) Amazon.com, Inc. or its affiliates. " +
	"Licensed under Creative Commons Attribution-ShareAlike 4.0 International (CC BY-SA 4.0). " +
	"Source: "

// TimeFormat is the timestamp layout of the "Last Updated" field.
const TimeFormat = time.RFC3339

// Attribution returns the license attribution line for a source URL.
func Attribution(sourceURL string) string {
	return attributionTemplate + sourceURL
}

// PillarHeader renders the title line and opening attribution block of
// a pillar document.
func PillarHeader(name, sourceURL string) string {
	return "# " + pillar.Title(name) + "\n\n> Attribution: " + Attribution(sourceURL) + "\n\n"
}

// PillarFooter renders the closing attribution block.
func PillarFooter(sourceURL string) string {
	return "\n> Attribution: " + Attribution(sourceURL) + "\n"
}

// ShortTitle truncates question prose to a bounded heading label:
// anything over 80 characters is hard-cut at 77 and ellipsis-suffixed.
func ShortTitle(question string) string {
	title := strings.TrimSpace(question)
	if r := []rune(title); len(r) > 80 {
		title = strings.TrimRight(string(r[:77]), " \t") + "..."
	}
	return title
}

// QuestionBlock renders a fresh record block for one question with
// default state: unanswered, confidence n/a, all free-text fields
// empty and unlinked.
func QuestionBlock(id, questionText string, now time.Time) string {
	q := NormalizeText(questionText)
	var b strings.Builder
	b.WriteString("## " + id + ": " + ShortTitle(q) + "\n")
	b.WriteString(FieldQuestion + ": " + q + "\n")
	b.WriteString(FieldStatus + ": " + string(StatusUnanswered) + "\n")
	b.WriteString(FieldConfidence + ": " + string(ConfidenceNA) + "\n")
	b.WriteString(FieldAnswer + ":\n")
	b.WriteString(FieldEvidence + ":\n")
	b.WriteString(FieldHumanQuestions + ":\n")
	b.WriteString(FieldTrackerTask + ": \n")
	b.WriteString(FieldLastUpdated + ": " + now.UTC().Format(TimeFormat) + "\n\n")
	return b.String()
}

// IndexContent renders the assessment index document linking the six
// pillar reports.
func IndexContent(assessment string) string {
	lines := []string{
		"# Well-Architected Assessment: " + assessment,
		"",
		"## Pillars",
	}
	for _, p := range pillar.All {
		lines = append(lines, "- ["+pillar.Title(p)+"]("+p+".md)")
	}
	return strings.Join(lines, "\n") + "\n"
}
