package report

import (
	"regexp"
	"strings"
)

// Fixed field names used in question blocks. One field per line,
// introduced by "<name>: " at line start, case-sensitive.
const (
	FieldQuestion       = "Question"
	FieldStatus         = "Status"
	FieldConfidence     = "Confidence"
	FieldAnswer         = "Answer"
	FieldEvidence       = "Evidence"
	FieldHumanQuestions = "Human Questions"
	FieldTrackerTask    = "Tracker Task"
	FieldLastUpdated    = "Last Updated"
)

// ParseField extracts the value of a field line from a block. The value
// is the remainder of the line with surrounding whitespace trimmed.
// Returns "" when the field line is absent.
func ParseField(block, field string) string {
	re := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(field) + `:[ \t]*(.*)$`)
	m := re.FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ReplaceField rewrites the value of a field line in place, preserving
// the line's position and everything else in the block. Replacing a
// field with its current value yields an identical block. If the field
// line is absent the block is returned unchanged; callers must not rely
// on field creation.
func ReplaceField(block, field, value string) string {
	re := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(field) + `:.*$`)
	if !re.MatchString(block) {
		return block
	}
	return re.ReplaceAllLiteralString(block, field+": "+value)
}
