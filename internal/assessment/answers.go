package assessment

import (
	"fmt"
	"os"
	"time"

	"wai/internal/pillar"
	"wai/internal/reconcile"
	"wai/internal/report"
)

// UnansweredItem is one open question in the list-unanswered output.
type UnansweredItem struct {
	Pillar     string `json:"pillar"`
	QuestionID string `json:"question_id"`
	Status     string `json:"status"`
}

// ListUnanswered returns every record not yet answered, in document
// order pillar by pillar.
func ListUnanswered(paths Paths) []UnansweredItem {
	items := []UnansweredItem{}
	for _, p := range pillar.All {
		data, err := os.ReadFile(paths.Pillar(p))
		if err != nil {
			continue
		}
		for _, rec := range report.ParseRecords(string(data)) {
			if rec.Status == report.StatusAnswered {
				continue
			}
			items = append(items, UnansweredItem{
				Pillar:     p,
				QuestionID: rec.ID,
				Status:     string(rec.Status),
			})
		}
	}
	return items
}

// RecordAnswer writes an explicit answer onto the record with the
// given question id, wherever it lives. Errors when the id matches no
// record in any pillar document or when status/confidence are not
// valid enum values.
func RecordAnswer(paths Paths, questionID, answer string, status report.Status, confidence report.Confidence, now time.Time) error {
	updated := false
	for _, p := range pillar.All {
		path := paths.Pillar(p)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		content := string(data)
		changed := false
		for _, rec := range report.ParseRecords(content) {
			if rec.ID != questionID {
				continue
			}
			block, err := reconcile.RecordAnswer(rec, answer, status, confidence, now)
			if err != nil {
				return err
			}
			content, err = report.Rewrite(content, rec.ID, block)
			if err != nil {
				return err
			}
			changed = true
		}
		if changed {
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return err
			}
			updated = true
		}
	}
	if !updated {
		return fmt.Errorf("question id %s not found in reports", questionID)
	}
	return nil
}

// RecordsByPillar parses every pillar document into its records.
// Missing documents simply have no entry in the result.
func RecordsByPillar(paths Paths) map[string][]report.Record {
	byPillar := make(map[string][]report.Record)
	for _, p := range pillar.All {
		data, err := os.ReadFile(paths.Pillar(p))
		if err != nil {
			continue
		}
		byPillar[p] = report.ParseRecords(string(data))
	}
	return byPillar
}
