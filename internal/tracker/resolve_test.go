package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFullID(t *testing.T) {
	assert.True(t, IsFullID("kanbus-2026-01-02-0001-ab3f"))
	assert.False(t, IsFullID("kanbus-ab3f"))
	assert.False(t, IsFullID("plain"))
}

func TestResolve(t *testing.T) {
	snapshot := []Issue{
		{ID: "kanbus-1-1-1-1-old", Title: "Security Pillar", Parent: "init-1", CreatedAt: "2026-01-01T00:00:00Z"},
		{ID: "kanbus-1-1-1-1-new", Title: "Security Pillar", Parent: "init-1", CreatedAt: "2026-02-01T00:00:00Z"},
		{ID: "kanbus-1-1-1-1-oth", Title: "Other Pillar", Parent: "init-2", CreatedAt: "2026-03-01T00:00:00Z"},
	}
	client := newTestClient(&fakeRunner{})

	t.Run("full id returned unchanged without lookup", func(t *testing.T) {
		run := &fakeRunner{}
		c := newTestClient(run)
		got := c.Resolve(context.Background(), "a-b-c-d-e-f", "", "", nil)
		assert.Equal(t, "a-b-c-d-e-f", got)
		assert.Empty(t, run.calls)
	})

	t.Run("unique prefix and title resolves deterministically", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			got := client.Resolve(context.Background(), "kanbus-1", "Other Pillar", "", snapshot)
			assert.Equal(t, "kanbus-1-1-1-1-oth", got)
		}
	})

	t.Run("parent filter narrows candidates", func(t *testing.T) {
		got := client.Resolve(context.Background(), "kanbus-1", "", "init-2", snapshot)
		assert.Equal(t, "kanbus-1-1-1-1-oth", got)
	})

	t.Run("latest creation wins among duplicates", func(t *testing.T) {
		got := client.Resolve(context.Background(), "kanbus-1", "Security Pillar", "init-1", snapshot)
		assert.Equal(t, "kanbus-1-1-1-1-new", got)
	})

	t.Run("zero matches returns input unchanged", func(t *testing.T) {
		got := client.Resolve(context.Background(), "zz-1", "", "", snapshot)
		assert.Equal(t, "zz-1", got)
	})

	t.Run("snapshot failure degrades to input", func(t *testing.T) {
		run := &fakeRunner{handler: func(binary string, args []string) (string, error) {
			return "", errors.New("tracker down")
		}}
		c := newTestClient(run)
		got := c.Resolve(context.Background(), "kanbus-1", "", "", nil)
		assert.Equal(t, "kanbus-1", got)
	})
}
