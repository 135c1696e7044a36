package pillar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnown(t *testing.T) {
	for _, p := range All {
		assert.True(t, Known(p), p)
	}
	assert.False(t, Known("velocity"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Operational Excellence", Title("operational-excellence"))
	assert.Equal(t, "Security", Title("security"))
}

func TestIDPrefix(t *testing.T) {
	assert.Equal(t, "SECURITY", IDPrefix("security"))
	assert.Equal(t, "OPERATIO", IDPrefix("operational-excellence"))
	assert.Equal(t, "COST_OPT", IDPrefix("cost-optimization"))
}

func TestPageURL(t *testing.T) {
	assert.Equal(t,
		"https://docs.aws.amazon.com/wellarchitected/latest/framework/security.html",
		PageURL(BaseURL, "security"))
}
