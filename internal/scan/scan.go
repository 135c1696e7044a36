// Package scan collects automated evidence about a target repository:
// a cheap inventory (languages, infrastructure-as-code, CI systems)
// plus optional security scanners invoked as opaque subprocesses.
package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wai/internal/report"
	"wai/internal/runner"
)

// Evidence is the scan output persisted to evidence.json in the
// assessment directory.
type Evidence struct {
	ScanID    string                   `json:"scan_id"`
	ScannedAt string                   `json:"scanned_at"`
	Inventory Inventory                `json:"inventory"`
	Scanners  map[string]ScannerResult `json:"scanners"`
}

// Inventory describes what the target repository is made of.
type Inventory struct {
	Languages []string `json:"languages"`
	Infra     []string `json:"infra"`
	CI        []string `json:"ci"`
}

// ScannerResult captures one optional scanner's outcome. Status is
// "ok", "missing" (binary not installed), or "unknown_scanner".
type ScannerResult struct {
	Status string          `json:"status"`
	Output json.RawMessage `json:"output,omitempty"`
}

var languageExts = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".go": true,
	".java": true, ".rb": true, ".rs": true,
}

// Run scans targetDir and returns fresh evidence. Optional scanners
// are best-effort: a missing binary is recorded, not an error.
func Run(ctx context.Context, targetDir string, scanners []string, run runner.CommandRunner, log *zap.Logger) (*Evidence, error) {
	info, err := os.Stat(targetDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("target-dir not found: %s", targetDir)
	}

	ev := &Evidence{
		ScanID:    uuid.NewString(),
		ScannedAt: time.Now().UTC().Format(report.TimeFormat),
		Inventory: Inventory{
			Languages: detectLanguages(targetDir),
			Infra:     detectInfra(targetDir),
			CI:        detectCI(targetDir),
		},
		Scanners: make(map[string]ScannerResult),
	}

	for _, name := range scanners {
		result := runScanner(ctx, name, targetDir, run)
		ev.Scanners[name] = result
		log.Info("scanner finished", zap.String("scanner", name), zap.String("status", result.Status))
	}
	return ev, nil
}

// Summary renders the inventory as the one-line evidence summary that
// gets written into each record's Evidence field. Empty when the scan
// found nothing.
func (e *Evidence) Summary() string {
	var bits []string
	if len(e.Inventory.Languages) > 0 {
		bits = append(bits, "languages="+strings.Join(e.Inventory.Languages, ","))
	}
	if len(e.Inventory.Infra) > 0 {
		bits = append(bits, "infra="+strings.Join(e.Inventory.Infra, ","))
	}
	if len(e.Inventory.CI) > 0 {
		bits = append(bits, "ci="+strings.Join(e.Inventory.CI, ","))
	}
	return strings.Join(bits, ", ")
}

// Save writes the evidence file as indented JSON.
func Save(path string, ev *Evidence) error {
	data, err := json.MarshalIndent(ev, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Load reads an evidence file written by Save.
func Load(path string) (*Evidence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("evidence not found (run wai scan first): %w", err)
	}
	var ev Evidence
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("evidence unparseable: %w", err)
	}
	return &ev, nil
}

func detectLanguages(targetDir string) []string {
	seen := make(map[string]bool)
	filepath.WalkDir(targetDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if languageExts[ext] {
			seen[ext] = true
		}
		return nil
	})
	return sortedKeys(seen)
}

func detectInfra(targetDir string) []string {
	seen := make(map[string]bool)
	filepath.WalkDir(targetDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		name := d.Name()
		switch {
		case strings.HasSuffix(name, ".tf"):
			seen["terraform"] = true
		case name == "template.yaml" || name == "template.yml":
			seen["sam"] = true
		case name == "serverless.yml":
			seen["serverless"] = true
		case filepath.Base(filepath.Dir(path)) == "helm" && strings.HasSuffix(name, ".yaml"):
			seen["helm"] = true
		}
		return nil
	})
	return sortedKeys(seen)
}

func detectCI(targetDir string) []string {
	seen := make(map[string]bool)
	if info, err := os.Stat(filepath.Join(targetDir, ".github", "workflows")); err == nil && info.IsDir() {
		seen["github-actions"] = true
	}
	if _, err := os.Stat(filepath.Join(targetDir, ".gitlab-ci.yml")); err == nil {
		seen["gitlab"] = true
	}
	if _, err := os.Stat(filepath.Join(targetDir, "Jenkinsfile")); err == nil {
		seen["jenkins"] = true
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func runScanner(ctx context.Context, name, targetDir string, run runner.CommandRunner) ScannerResult {
	var args []string
	switch name {
	case "semgrep":
		args = []string{"--json", "--config", "auto", targetDir}
	case "trivy":
		args = []string{"fs", "--format", "json", targetDir}
	default:
		return ScannerResult{Status: "unknown_scanner"}
	}
	if _, err := exec.LookPath(name); err != nil {
		return ScannerResult{Status: "missing"}
	}
	out, err := run.Run(ctx, name, args...)
	if err != nil {
		return ScannerResult{Status: "error"}
	}
	if !json.Valid([]byte(out)) {
		return ScannerResult{Status: "error"}
	}
	return ScannerResult{Status: "ok", Output: json.RawMessage(out)}
}
