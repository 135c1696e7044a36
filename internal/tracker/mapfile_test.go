package tracker

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker-map.json")

	m := NewMap("init-1-1-1-1-1")
	m.Epics["security"] = "epic-1-1-1-1-1"
	m.Tasks["SEC-1"] = "task-1-1-1-1-a"

	require.NoError(t, SaveMap(path, m))

	got, err := LoadMap(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	t.Run("missing map has actionable error", func(t *testing.T) {
		_, err := LoadMap(filepath.Join(t.TempDir(), "tracker-map.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "run wai init first")
	})
}
