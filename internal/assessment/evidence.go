package assessment

import (
	"fmt"
	"os"

	"wai/internal/pillar"
	"wai/internal/reconcile"
	"wai/internal/report"
)

// ApplyEvidence reconciles every record of every pillar document
// against the latest evidence summary and rewrites the documents in
// place. Missing pillar documents are skipped; the summary may be
// empty, which pushes unanswered records to needs_human.
func ApplyEvidence(paths Paths, summary string) error {
	if _, err := os.Stat(paths.Base()); err != nil {
		return fmt.Errorf("assessment reports not found: %s", paths.Base())
	}
	for _, p := range pillar.All {
		path := paths.Pillar(p)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		content := string(data)
		for _, rec := range report.ParseRecords(content) {
			block := reconcile.ApplyEvidence(rec, summary)
			content, err = report.Rewrite(content, rec.ID, block)
			if err != nil {
				return err
			}
		}
		content = report.Canonicalize(content)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}
