package assessment

import (
	"fmt"
	"os"

	"wai/internal/pillar"
	"wai/internal/report"
)

// Validate checks every pillar document of an assessment and returns
// the list of problems found: missing documents, duplicate question
// ids within a pillar, and out-of-enum status or confidence values.
// An empty list means the assessment passes.
func Validate(paths Paths) []string {
	var errors []string
	for _, p := range pillar.All {
		data, err := os.ReadFile(paths.Pillar(p))
		if err != nil {
			errors = append(errors, fmt.Sprintf("missing pillar report: %s", p))
			continue
		}
		seen := make(map[string]bool)
		for _, rec := range report.ParseRecords(string(data)) {
			if seen[rec.ID] {
				errors = append(errors, fmt.Sprintf("duplicate question id %s in %s", rec.ID, p))
			}
			seen[rec.ID] = true
			if rec.Status != "" && !rec.Status.Valid() {
				errors = append(errors, fmt.Sprintf("invalid status %s in %s", rec.Status, rec.ID))
			}
			if rec.Confidence != "" && !rec.Confidence.Valid() {
				errors = append(errors, fmt.Sprintf("invalid confidence %s in %s", rec.Confidence, rec.ID))
			}
		}
	}
	return errors
}
