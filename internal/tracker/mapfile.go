package tracker

import (
	"encoding/json"
	"fmt"
	"os"
)

// Map links an assessment to its tracker entities: one initiative, one
// epic per pillar, one task per question. It is written once at init
// and never regenerated; individual ids may be upgraded in place when
// the resolver learns a full id, but entries are never removed.
type Map struct {
	Initiative string            `json:"initiative"`
	Epics      map[string]string `json:"epics"`
	Tasks      map[string]string `json:"tasks"`
}

// NewMap returns an empty mapping with initialized inner maps.
func NewMap(initiative string) *Map {
	return &Map{
		Initiative: initiative,
		Epics:      make(map[string]string),
		Tasks:      make(map[string]string),
	}
}

// LoadMap reads a mapping file written by SaveMap.
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tracker map not found (run wai init first): %w", err)
	}
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("tracker map unparseable: %w", err)
	}
	return &m, nil
}

// SaveMap persists the mapping as indented JSON.
func SaveMap(path string, m *Map) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
