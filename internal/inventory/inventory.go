// Package inventory holds the cached question inventory: the set of
// framework questions fetched from the source pages, persisted locally
// so assessments can be initialized offline.
package inventory

import "wai/internal/pillar"

// Question is one framework question as fetched from its source page.
type Question struct {
	Pillar    string
	ID        string
	Text      string
	SourceURL string
	FetchedAt string
	License   string
}

// ByPillar groups questions by pillar, preserving fetch order within
// each group.
func ByPillar(questions []Question) map[string][]Question {
	groups := make(map[string][]Question, len(pillar.All))
	for _, q := range questions {
		groups[q.Pillar] = append(groups[q.Pillar], q)
	}
	return groups
}
