package tracker

import (
	"context"

	"go.uber.org/zap"

	"wai/internal/pillar"
	"wai/internal/report"
)

// Tracker-side states this engine transitions entities into.
const (
	stateClosed  = "closed"
	stateBlocked = "blocked"
)

// Stats counts the external actions a sync pass requested. The engine
// keeps no memory of previous passes: re-running sync with unchanged
// local state requests the same actions again and relies on the
// tracker treating identical transitions as no-ops.
type Stats struct {
	Comments    int
	Closed      int
	Blocked     int
	EpicsClosed int
	Skipped     int
}

// Engine projects record state onto the tracker.
type Engine struct {
	client *Client
	log    *zap.Logger
}

// NewEngine builds a sync engine over a tracker client.
func NewEngine(client *Client, log *zap.Logger) *Engine {
	return &Engine{client: client, log: log}
}

// Sync walks every linked record, pillar by pillar in canonical order:
// a non-empty answer is posted as a comment, answered records close
// their task, needs_human records block it, and an epic closes once
// every record in its pillar is answered. Epic completion is
// recomputed from the documents on every call, never cached.
//
// Every external call is independent and best-effort: a failure on one
// record or epic is logged and skipped, never aborting the batch.
func (e *Engine) Sync(ctx context.Context, byPillar map[string][]report.Record, m *Map) Stats {
	issues, err := e.client.Snapshot(ctx)
	if err != nil {
		e.log.Warn("tracker snapshot unavailable, ids stay unresolved", zap.Error(err))
		issues = []Issue{}
	}

	var stats Stats
	for _, p := range pillar.All {
		records, ok := byPillar[p]
		if !ok {
			continue
		}
		for _, rec := range records {
			e.syncRecord(ctx, rec, m, issues, &stats)
		}

		epicID, ok := m.Epics[p]
		if !ok {
			continue
		}
		if !allAnswered(records) {
			continue
		}
		epicID = e.client.Resolve(ctx, epicID, "", "", issues)
		if err := e.client.UpdateStatus(ctx, epicID, stateClosed); err != nil {
			e.log.Warn("epic close failed", zap.String("pillar", p), zap.Error(err))
			stats.Skipped++
			continue
		}
		stats.EpicsClosed++
	}
	return stats
}

func (e *Engine) syncRecord(ctx context.Context, rec report.Record, m *Map, issues []Issue, stats *Stats) {
	taskID, ok := m.Tasks[rec.ID]
	if ok {
		taskID = e.client.Resolve(ctx, taskID, "", "", issues)
	}
	if !ok || taskID == "" {
		return
	}

	if answer := rec.Answer(); answer != "" {
		if err := e.client.Comment(ctx, taskID, "Answer:\n"+answer); err != nil {
			e.log.Warn("answer comment failed", zap.String("question", rec.ID), zap.Error(err))
			stats.Skipped++
			return
		}
		stats.Comments++
	}

	switch rec.Status {
	case report.StatusAnswered:
		if err := e.client.UpdateStatus(ctx, taskID, stateClosed); err != nil {
			e.log.Warn("task close failed", zap.String("question", rec.ID), zap.Error(err))
			stats.Skipped++
			return
		}
		stats.Closed++
	case report.StatusNeedsHuman:
		if err := e.client.UpdateStatus(ctx, taskID, stateBlocked); err != nil {
			e.log.Warn("task block failed", zap.String("question", rec.ID), zap.Error(err))
			stats.Skipped++
			return
		}
		stats.Blocked++
	}
}

func allAnswered(records []report.Record) bool {
	for _, rec := range records {
		if rec.Status != report.StatusAnswered {
			return false
		}
	}
	return true
}
