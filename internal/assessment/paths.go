// Package assessment orchestrates the assessment lifecycle over the
// report documents: initialization from the cached inventory, evidence
// application, answer recording, validation, and the summaries the CLI
// prints. All document mutation goes through internal/report so record
// spans are always re-located by id at write time.
package assessment

import (
	"path/filepath"
	"time"
)

// Paths locates every file of one assessment under the reports dir.
type Paths struct {
	ReportsDir string
	Assessment string
}

// Base is the assessment directory.
func (p Paths) Base() string {
	return filepath.Join(p.ReportsDir, p.Assessment)
}

// Index is the assessment index document.
func (p Paths) Index() string {
	return filepath.Join(p.Base(), "index.md")
}

// Pillar is the report document for one pillar.
func (p Paths) Pillar(name string) string {
	return filepath.Join(p.Base(), name+".md")
}

// Evidence is the scan output file.
func (p Paths) Evidence() string {
	return filepath.Join(p.Base(), "evidence.json")
}

// TrackerMap is the tracker entity mapping file.
func (p Paths) TrackerMap() string {
	return filepath.Join(p.Base(), "tracker-map.json")
}

// Slug derives a default assessment name from the target directory and
// date, e.g. "myservice-20260831".
func Slug(targetDir string, now time.Time) string {
	name := filepath.Base(filepath.Clean(targetDir))
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "assessment"
	}
	return name + "-" + now.Format("20060102")
}
