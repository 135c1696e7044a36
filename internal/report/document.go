package report

import (
	"fmt"
	"regexp"
	"strings"
)

// headingRE matches a record marker line: "## <id>: <title>". The id is
// everything before the first colon; minor spacing drift is tolerated
// on parse and canonicalized on rewrite.
var headingRE = regexp.MustCompile(`(?m)^##\s+([^:\n]+):\s*(.*)$`)

// looseHeadingRE matches any heading line for canonicalization.
var looseHeadingRE = regexp.MustCompile(`(?m)^##\s+([^:\n]+):\s+`)

// ParseRecords splits a document into its ordered question records.
// Each record's span runs from its marker line to the next marker or
// end of document, so the final record's span carries the document
// footer with it; field mutations never touch non-field lines, which
// keeps the footer intact.
func ParseRecords(content string) []Record {
	var records []Record
	matches := headingRE.FindAllStringSubmatchIndex(content, -1)
	for _, m := range matches {
		start := m[0]
		end := strings.Index(content[m[1]:], "\n## ")
		if end == -1 {
			end = len(content)
		} else {
			end += m[1]
		}
		block := content[start:end]
		records = append(records, parseRecord(block, content[m[2]:m[3]], content[m[4]:m[5]]))
	}
	return records
}

func parseRecord(block, id, title string) Record {
	return Record{
		ID:          strings.TrimSpace(id),
		Title:       strings.TrimSpace(title),
		Question:    ParseField(block, FieldQuestion),
		Status:      Status(ParseField(block, FieldStatus)),
		Confidence:  Confidence(ParseField(block, FieldConfidence)),
		TrackerTask: ParseField(block, FieldTrackerTask),
		Block:       block,
	}
}

// Rewrite splices an updated block into the document in place of the
// record identified by id. The record's current span is located afresh
// at write time rather than trusting the span the record was parsed
// from, so an external edit between parse and rewrite cannot corrupt a
// sibling record. Returns an error when no record with the id exists.
func Rewrite(content, id, block string) (string, error) {
	matches := headingRE.FindAllStringSubmatchIndex(content, -1)
	for _, m := range matches {
		if strings.TrimSpace(content[m[2]:m[3]]) != id {
			continue
		}
		start := m[0]
		end := strings.Index(content[m[1]:], "\n## ")
		if end == -1 {
			end = len(content)
		} else {
			end += m[1]
		}
		return content[:start] + block + content[end:], nil
	}
	return "", fmt.Errorf("record %s not found in document", id)
}

// SetHeading replaces the marker line of a block with a canonical
// "## <id>: <title>" heading.
func SetHeading(block, id, title string) string {
	return headingRE.ReplaceAllLiteralString(block, "## "+id+": "+title)
}

// Canonicalize normalizes heading spacing and strips encoding
// artifacts across a whole document or single block. Applied on every
// rewrite so formatting drift in the source does not accumulate.
func Canonicalize(text string) string {
	text = looseHeadingRE.ReplaceAllString(text, "## $1: ")
	return StripArtifacts(text)
}

// StripArtifacts removes non-breaking spaces and the UTF-8 mojibake
// marker that the source pages leak into extracted text.
func StripArtifacts(text string) string {
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return strings.ReplaceAll(text, "\u00c2", " ")
}

var spaceRE = regexp.MustCompile(`\s+`)

// NormalizeText collapses all whitespace runs to single spaces and
// strips artifacts, yielding one-line prose suitable for field values.
func NormalizeText(text string) string {
	text = StripArtifacts(text)
	return strings.TrimSpace(spaceRE.ReplaceAllString(text, " "))
}
