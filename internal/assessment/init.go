package assessment

import (
	"context"
	"fmt"
	"os"
	"time"

	"wai/internal/inventory"
	"wai/internal/pillar"
	"wai/internal/report"
	"wai/internal/tracker"
)

// WriteReports creates the assessment directory with the index and one
// report document per pillar, each question rendered as a fresh record
// block in default state.
func WriteReports(questions []inventory.Question, paths Paths, baseURL string, now time.Time) error {
	if err := os.MkdirAll(paths.Base(), 0o755); err != nil {
		return fmt.Errorf("failed to create assessment directory: %w", err)
	}
	if err := os.WriteFile(paths.Index(), []byte(report.IndexContent(paths.Assessment)), 0o644); err != nil {
		return err
	}

	if baseURL == "" {
		baseURL = pillar.BaseURL
	}
	grouped := inventory.ByPillar(questions)
	for _, p := range pillar.All {
		url := pillar.PageURL(baseURL, p)
		content := report.PillarHeader(p, url)
		for _, q := range grouped[p] {
			content += report.QuestionBlock(q.ID, q.Text, now)
		}
		content += report.PillarFooter(url)
		if err := os.WriteFile(paths.Pillar(p), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// BootstrapTracker creates the tracker structure for an assessment:
// one initiative, an epic per pillar, and a task per question. Any
// create failure is fatal since the mapping cannot be completed
// without it.
func BootstrapTracker(ctx context.Context, client *tracker.Client, questions []inventory.Question, assessment string) (*tracker.Map, error) {
	initiativeID, err := client.Create(ctx, "Well-Architected Assessment: "+assessment, "initiative", "")
	if err != nil {
		return nil, err
	}
	m := tracker.NewMap(initiativeID)

	grouped := inventory.ByPillar(questions)
	for _, p := range pillar.All {
		epicID, err := client.Create(ctx, pillar.Title(p)+" Pillar", "epic", initiativeID)
		if err != nil {
			return nil, err
		}
		m.Epics[p] = epicID
		for _, q := range grouped[p] {
			title := q.ID + " " + report.ShortTitle(report.NormalizeText(q.Text))
			taskID, err := client.Create(ctx, title, "task", epicID)
			if err != nil {
				return nil, err
			}
			m.Tasks[q.ID] = taskID
		}
	}
	return m, nil
}

// ApplyTaskIDs injects the mapped task id into each record's tracker
// field across all pillar documents.
func ApplyTaskIDs(paths Paths, m *tracker.Map) error {
	for _, p := range pillar.All {
		path := paths.Pillar(p)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		content := string(data)
		changed := false
		for _, rec := range report.ParseRecords(content) {
			taskID, ok := m.Tasks[rec.ID]
			if !ok || taskID == "" {
				continue
			}
			block := report.ReplaceField(rec.Block, report.FieldTrackerTask, taskID)
			if block == rec.Block {
				continue
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
		}
	}
	return nil
}
