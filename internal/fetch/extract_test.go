package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractQuestions(t *testing.T) {
	t.Run("labeled question lines", func(t *testing.T) {
		page := `<html><body>
<h2>SEC 2: How do you manage identities for people and machines?</h2>
<p>Some guidance text.</p>
</body></html>`
		got := ExtractQuestions(page)
		require.Len(t, got, 1)
		assert.Equal(t, "SEC-2", got[0].ID)
		assert.Equal(t, "How do you manage identities for people and machines?", got[0].Text)
	})

	t.Run("question prefix lines", func(t *testing.T) {
		page := `<p>Question 3: How do you reduce defects and ease remediation?</p>`
		got := ExtractQuestions(page)
		require.Len(t, got, 1)
		assert.Empty(t, got[0].ID)
		assert.Equal(t, "How do you reduce defects and ease remediation?", got[0].Text)
	})

	t.Run("bare interrogative prose", func(t *testing.T) {
		page := `<p>How do you select the best performing architecture?</p>`
		got := ExtractQuestions(page)
		require.Len(t, got, 1)
		assert.Equal(t, "How do you select the best performing architecture?", got[0].Text)
	})

	t.Run("short fragments are ignored", func(t *testing.T) {
		page := `<p>Why not?</p><p>Really?</p>`
		assert.Empty(t, ExtractQuestions(page))
	})

	t.Run("script and style content is dropped", func(t *testing.T) {
		page := `<script>var q = "Is this a question that should never appear anywhere?";</script>
<style>.q::before { content: "How do you style your questions properly?"; }</style>
<p>How do you operate your workload securely in production?</p>`
		got := ExtractQuestions(page)
		require.Len(t, got, 1)
		assert.Equal(t, "How do you operate your workload securely in production?", got[0].Text)
	})

	t.Run("duplicates are dropped first wins", func(t *testing.T) {
		page := `<h2>REL 1: How do you manage service quotas and constraints?</h2>
<h2>REL 1: How do you manage service quotas and constraints?</h2>
<p>How do you plan your network topology for the long term?</p>
<p>How do you plan your network topology for the long term?</p>`
		got := ExtractQuestions(page)
		require.Len(t, got, 2)
		assert.Equal(t, "REL-1", got[0].ID)
	})

	t.Run("entities and artifacts are normalized", func(t *testing.T) {
		page := "<p>How do you manage\u00a0your workload health today in production?</p>"
		got := ExtractQuestions(page)
		require.Len(t, got, 1)
		assert.Equal(t, "How do you manage your workload health today in production?", got[0].Text)
	})
}
