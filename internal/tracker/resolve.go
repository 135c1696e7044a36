package tracker

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// fullIDSegments is the hyphen count of a fully-qualified entity id.
// Short ids echoed by create have fewer segments.
const fullIDSegments = 5

// IsFullID reports whether id is already fully qualified.
func IsFullID(id string) bool {
	return strings.Count(id, "-") >= fullIDSegments
}

// Resolve upgrades a possibly-short entity id to its unique full form.
//
// Already-full ids are returned unchanged without a lookup. Otherwise
// candidates are taken from issues (or a fresh snapshot when issues is
// nil), filtered by id prefix, then by exact title and parent when
// given. Zero candidates means the id cannot be resolved: the original
// id is returned as a best-effort reference and the degradation is
// logged, since downstream actions may then address the wrong entity.
// Multiple candidates are settled by latest creation time, on the
// assumption that re-creation supersedes older duplicates.
func (c *Client) Resolve(ctx context.Context, id, title, parent string, issues []Issue) string {
	if IsFullID(id) {
		return id
	}
	if issues == nil {
		var err error
		issues, err = c.Snapshot(ctx)
		if err != nil {
			c.log.Warn("tracker snapshot unavailable, leaving id unresolved",
				zap.String("id", id), zap.Error(err))
			return id
		}
	}

	var candidates []Issue
	for _, issue := range issues {
		if !strings.HasPrefix(issue.ID, id) {
			continue
		}
		if title != "" && issue.Title != title {
			continue
		}
		if parent != "" && issue.Parent != parent {
			continue
		}
		candidates = append(candidates, issue)
	}
	if len(candidates) == 0 {
		c.log.Warn("no tracker entity matches short id, leaving unresolved",
			zap.String("id", id))
		return id
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt < candidates[j].CreatedAt
	})
	return candidates[len(candidates)-1].ID
}
