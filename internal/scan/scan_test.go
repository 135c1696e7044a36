package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x\n"), 0o644))
	}
}

func TestRun(t *testing.T) {
	t.Run("detects languages infra and ci", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir,
			"app/main.py",
			"web/index.ts",
			"infra/network.tf",
			".github/workflows/ci.yml",
		)

		ev, err := Run(context.Background(), dir, nil, nil, zap.NewNop())
		require.NoError(t, err)

		assert.Equal(t, []string{".py", ".ts"}, ev.Inventory.Languages)
		assert.Equal(t, []string{"terraform"}, ev.Inventory.Infra)
		assert.Equal(t, []string{"github-actions"}, ev.Inventory.CI)
		assert.NotEmpty(t, ev.ScanID)
		assert.NotEmpty(t, ev.ScannedAt)
	})

	t.Run("empty target yields empty inventory", func(t *testing.T) {
		ev, err := Run(context.Background(), t.TempDir(), nil, nil, zap.NewNop())
		require.NoError(t, err)
		assert.Empty(t, ev.Inventory.Languages)
		assert.Empty(t, ev.Summary())
	})

	t.Run("missing target errors", func(t *testing.T) {
		_, err := Run(context.Background(), filepath.Join(t.TempDir(), "nope"), nil, nil, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("unknown scanner is recorded", func(t *testing.T) {
		ev, err := Run(context.Background(), t.TempDir(), []string{"nonesuch"}, nil, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "unknown_scanner", ev.Scanners["nonesuch"].Status)
	})
}

func TestSummary(t *testing.T) {
	ev := &Evidence{Inventory: Inventory{
		Languages: []string{".py", ".ts"},
		Infra:     []string{"terraform"},
		CI:        []string{"github-actions"},
	}}
	assert.Equal(t, "languages=.py,.ts, infra=terraform, ci=github-actions", ev.Summary())

	ev.Inventory.Infra = nil
	ev.Inventory.CI = nil
	assert.Equal(t, "languages=.py,.ts", ev.Summary())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evidence.json")
	ev := &Evidence{
		ScanID:    "scan-1",
		ScannedAt: "2026-01-02T03:04:05Z",
		Inventory: Inventory{Languages: []string{".go"}},
		Scanners:  map[string]ScannerResult{"semgrep": {Status: "missing"}},
	}
	require.NoError(t, Save(path, ev))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ev, got)

	t.Run("missing file has actionable error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "evidence.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "run wai scan first")
	})

	t.Run("corrupt file errors", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "evidence.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
		_, err := Load(bad)
		assert.Error(t, err)
	})
}
