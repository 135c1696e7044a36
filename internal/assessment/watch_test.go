package assessment

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func waitChange(t *testing.T, changes <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestWatch(t *testing.T) {
	paths := newTestPaths(t)
	initReports(t, paths)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, paths, zap.NewNop(), func() {
			changes <- struct{}{}
		})
	}()

	waitChange(t, changes, "initial run")

	require.NoError(t, os.WriteFile(paths.Pillar("security"), []byte("# Security\n"), 0o644))
	waitChange(t, changes, "write event")

	// One WriteFile can surface as several events; drain them before
	// asserting quiet.
	time.Sleep(300 * time.Millisecond)
	for {
		select {
		case <-changes:
			continue
		default:
		}
		break
	}

	// Non-report files are ignored. A quiet interval is the only
	// observable assertion available here.
	require.NoError(t, os.WriteFile(paths.Evidence(), []byte("{}\n"), 0o644))
	select {
	case <-changes:
		t.Fatal("evidence.json write should not re-trigger")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop on cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	paths := newTestPaths(t)
	paths.Assessment = "never-created"

	err := Watch(context.Background(), paths, zap.NewNop(), func() {})
	assert.Error(t, err)
}
