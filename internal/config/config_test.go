package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "reports", cfg.ReportsDir)
	assert.Equal(t, "kanbus", cfg.Tracker.Binary)
	assert.Equal(t, 30*time.Second, cfg.TrackerTimeout())
	assert.Equal(t, 60*time.Second, cfg.FetchTimeout())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "questions.db", filepath.Base(cfg.QuestionsDBPath()))
}

func TestLoad(t *testing.T) {
	t.Run("yaml overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wai.yaml")
		content := `
reports_dir: /data/reports
tracker:
  binary: mytracker
  timeout: 5s
logging:
  level: debug
  json: true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path, true)
		require.NoError(t, err)
		assert.Equal(t, "/data/reports", cfg.ReportsDir)
		assert.Equal(t, "mytracker", cfg.Tracker.Binary)
		assert.Equal(t, 5*time.Second, cfg.TrackerTimeout())
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.True(t, cfg.Logging.JSON)

		// Fields the file omits keep their defaults.
		assert.Equal(t, 60*time.Second, cfg.FetchTimeout())
	})

	t.Run("missing implicit file is fine", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), ".wai.yaml"), false)
		require.NoError(t, err)
		assert.Equal(t, "kanbus", cfg.Tracker.Binary)
	})

	t.Run("missing explicit file errors", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
		assert.Error(t, err)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wai.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tracker: ["), 0o644))
		_, err := Load(path, true)
		assert.Error(t, err)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WAI_REPORTS_DIR", "/env/reports")
	t.Setenv("WAI_TRACKER_BINARY", "envtracker")
	t.Setenv("WAI_TRACKER_TIMEOUT", "7s")
	t.Setenv("WAI_LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "wai.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reports_dir: /file/reports\n"), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "/env/reports", cfg.ReportsDir)
	assert.Equal(t, "envtracker", cfg.Tracker.Binary)
	assert.Equal(t, 7*time.Second, cfg.TrackerTimeout())
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestTimeoutFallback(t *testing.T) {
	cfg := Default()
	cfg.Tracker.Timeout = "not-a-duration"
	assert.Equal(t, 30*time.Second, cfg.TrackerTimeout())

	cfg.Fetch.Timeout = "-5s"
	assert.Equal(t, 60*time.Second, cfg.FetchTimeout())
}
