package catalog

import (
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesForCoversAllCategories(t *testing.T) {
	for _, c := range Categories() {
		tpls := TemplatesFor(c)
		require.NotEmpty(t, tpls, "category %s has no templates", c)
	}
}

func TestTemplatesHaveAllCostTiers(t *testing.T) {
	tiers := []models.BudgetTier{models.BudgetLow, models.BudgetMedium, models.BudgetHigh}
	for _, c := range Categories() {
		for _, tpl := range TemplatesFor(c) {
			require.Len(t, tpl.Cost, 3, "%s/%s", c, tpl.Name)
			for _, tier := range tiers {
				assert.NotEmpty(t, tpl.Cost[tier], "%s/%s missing %s cost", c, tpl.Name, tier)
			}
			assert.NotEmpty(t, tpl.Neighborhoods, "%s/%s", c, tpl.Name)
			assert.NotEmpty(t, tpl.Duration, "%s/%s", c, tpl.Name)
			assert.NotEmpty(t, tpl.Kind, "%s/%s", c, tpl.Name)
		}
	}
}

func TestTemplatesForUnknownCategory(t *testing.T) {
	assert.Empty(t, TemplatesFor(Category("submarine")))
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("  Culture ")
	require.True(t, ok)
	assert.Equal(t, Culture, c)

	c, ok = ParseCategory("KID-FRIENDLY")
	require.True(t, ok)
	assert.Equal(t, KidFriendly, c)

	_, ok = ParseCategory("spelunking")
	assert.False(t, ok)

	_, ok = ParseCategory("")
	assert.False(t, ok)
}
