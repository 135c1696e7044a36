package tracker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRunner records every invocation and answers from a handler.
type fakeRunner struct {
	calls   [][]string
	handler func(binary string, args []string) (string, error)
}

func (f *fakeRunner) Run(ctx context.Context, binary string, args ...string) (string, error) {
	call := append([]string{binary}, args...)
	f.calls = append(f.calls, call)
	if f.handler == nil {
		return "", nil
	}
	return f.handler(binary, args)
}

func (f *fakeRunner) callsMatching(verb string) [][]string {
	var out [][]string
	for _, c := range f.calls {
		if len(c) > 1 && c[1] == verb {
			out = append(out, c)
		}
	}
	return out
}

func newTestClient(run *fakeRunner) *Client {
	return NewClient("kanbus", run, zap.NewNop())
}

func TestClientCreate(t *testing.T) {
	t.Run("parses the id from create output", func(t *testing.T) {
		run := &fakeRunner{handler: func(binary string, args []string) (string, error) {
			if args[0] == "create" {
				return "Created issue.\nID: kanbus-a1b2\n", nil
			}
			// Snapshot lookup during resolution fails, id stays short.
			return "", errors.New("console unavailable")
		}}
		id, err := newTestClient(run).Create(context.Background(), "My Task", "task", "parent-1")
		require.NoError(t, err)
		assert.Equal(t, "kanbus-a1b2", id)

		require.NotEmpty(t, run.calls)
		assert.Equal(t, []string{"kanbus", "create", "My Task", "--type", "task", "--parent", "parent-1"}, run.calls[0])
	})

	t.Run("omits parent flag when empty", func(t *testing.T) {
		run := &fakeRunner{handler: func(binary string, args []string) (string, error) {
			return "ID: kanbus-xy\n", nil
		}}
		_, err := newTestClient(run).Create(context.Background(), "Initiative", "initiative", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"kanbus", "create", "Initiative", "--type", "initiative"}, run.calls[0])
	})

	t.Run("errors when output has no id", func(t *testing.T) {
		run := &fakeRunner{handler: func(binary string, args []string) (string, error) {
			return "done\n", nil
		}}
		_, err := newTestClient(run).Create(context.Background(), "t", "task", "")
		assert.Error(t, err)
	})

	t.Run("propagates create failure", func(t *testing.T) {
		run := &fakeRunner{handler: func(binary string, args []string) (string, error) {
			return "", errors.New("tracker down")
		}}
		_, err := newTestClient(run).Create(context.Background(), "t", "task", "")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "tracker down"))
	})
}

func TestClientUpdateStatus(t *testing.T) {
	t.Run("no updates requested is success", func(t *testing.T) {
		run := &fakeRunner{handler: func(binary string, args []string) (string, error) {
			return "", errors.New("error: no updates requested")
		}}
		err := newTestClient(run).UpdateStatus(context.Background(), "kanbus-1", "closed")
		assert.NoError(t, err)
	})

	t.Run("other failures propagate", func(t *testing.T) {
		run := &fakeRunner{handler: func(binary string, args []string) (string, error) {
			return "", errors.New("permission denied")
		}}
		err := newTestClient(run).UpdateStatus(context.Background(), "kanbus-1", "closed")
		assert.Error(t, err)
	})
}

func TestClientSnapshot(t *testing.T) {
	t.Run("parses the issue listing", func(t *testing.T) {
		run := &fakeRunner{handler: func(binary string, args []string) (string, error) {
			return `{"issues":[{"id":"a-b-c-d-e-f","title":"T","parent":"p","created_at":"2026-01-01T00:00:00Z"}]}`, nil
		}}
		issues, err := newTestClient(run).Snapshot(context.Background())
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, "a-b-c-d-e-f", issues[0].ID)
		assert.Equal(t, []string{"kanbus", "console", "snapshot"}, run.calls[0])
	})

	t.Run("unparseable output errors", func(t *testing.T) {
		run := &fakeRunner{handler: func(binary string, args []string) (string, error) {
			return "not json", nil
		}}
		_, err := newTestClient(run).Snapshot(context.Background())
		assert.Error(t, err)
	})
}
