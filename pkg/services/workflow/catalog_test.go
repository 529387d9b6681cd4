package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Steps_Ordered(t *testing.T) {
	c := NewCatalog()

	got := c.Steps()

	require.Len(t, got, 6)
	ids := make([]string, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ID)
		assert.NotEmpty(t, s.Bullets, s.ID)
	}
	assert.Equal(t, []string{"lead", "scans", "planning", "kit", "surgery", "lab"}, ids)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := NewCatalog()

	s := c.Steps()
	s[0].Title = "changed"
	s[0].Bullets[0] = "changed"
	inc := c.Included()
	inc[0] = "changed"

	assert.Equal(t, "1. Lead & Case Arrival", c.Steps()[0].Title)
	assert.NotEqual(t, "changed", c.Steps()[0].Bullets[0])
	assert.Equal(t, "CBCT + IOS processing", c.Included()[0])
	assert.Len(t, c.AvoidedCosts(), 6)
}
