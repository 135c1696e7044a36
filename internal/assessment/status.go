package assessment

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wai/internal/pillar"
	"wai/internal/report"
)

// PillarSummary counts records per status for one pillar.
type PillarSummary struct {
	Pillar     string
	Answered   int
	Partial    int
	NeedsHuman int
	Unanswered int
}

// Total is the record count for the pillar.
func (s PillarSummary) Total() int {
	return s.Answered + s.Partial + s.NeedsHuman + s.Unanswered
}

// Summarize tallies record statuses per pillar. Pillars whose document
// is missing are omitted.
func Summarize(byPillar map[string][]report.Record) []PillarSummary {
	var summaries []PillarSummary
	for _, p := range pillar.All {
		records, ok := byPillar[p]
		if !ok {
			continue
		}
		s := PillarSummary{Pillar: p}
		for _, rec := range records {
			switch rec.Status {
			case report.StatusAnswered:
				s.Answered++
			case report.StatusPartial:
				s.Partial++
			case report.StatusNeedsHuman:
				s.NeedsHuman++
			default:
				s.Unanswered++
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}

var (
	pillarStyle   = lipgloss.NewStyle().Bold(true).Width(24)
	answeredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	partialStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	blockedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderSummary renders the per-pillar progress table for the status
// command.
func RenderSummary(summaries []PillarSummary) string {
	var b strings.Builder
	for _, s := range summaries {
		b.WriteString(pillarStyle.Render(pillar.Title(s.Pillar)))
		b.WriteString(fmt.Sprintf(" %s  %s  %s  %s  (%d total)\n",
			answeredStyle.Render(fmt.Sprintf("%d answered", s.Answered)),
			partialStyle.Render(fmt.Sprintf("%d partial", s.Partial)),
			blockedStyle.Render(fmt.Sprintf("%d needs_human", s.NeedsHuman)),
			dimStyle.Render(fmt.Sprintf("%d unanswered", s.Unanswered)),
			s.Total()))
	}
	return b.String()
}
