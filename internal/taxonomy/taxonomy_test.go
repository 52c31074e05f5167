package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default(5).Validate())
	require.NoError(t, Default(0).Validate())
}

func TestDefaultTotalQuota(t *testing.T) {
	// 56 subcategories across ten categories.
	assert.Equal(t, 56*5, Default(5).TotalQuota())
}

func TestValidateRejectsEmptyTaxonomy(t *testing.T) {
	err := Taxonomy{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no categories")
}

func TestValidateRejectsEmptySubcategories(t *testing.T) {
	tax := Taxonomy{{Category: CategoryFood, Subcategories: nil, Quota: 5}}
	err := tax.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no subcategories")
}

func TestValidateRejectsNegativeQuota(t *testing.T) {
	tax := Taxonomy{{Category: CategoryFood, Subcategories: []string{"cafe"}, Quota: -1}}
	err := tax.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative quota")
}

func TestValidateRejectsDuplicateCategory(t *testing.T) {
	tax := Taxonomy{
		{Category: CategoryFood, Subcategories: []string{"cafe"}, Quota: 1},
		{Category: CategoryFood, Subcategories: []string{"bar"}, Quota: 1},
	}
	require.Error(t, tax.Validate())
}

func TestValidateRejectsDuplicateSubcategory(t *testing.T) {
	tax := Taxonomy{{Category: CategoryFood, Subcategories: []string{"cafe", "cafe"}, Quota: 1}}
	require.Error(t, tax.Validate())
}

func TestContains(t *testing.T) {
	tax := Default(1)

	assert.True(t, tax.Contains("Food", "restaurant"))
	assert.True(t, tax.Contains("Salon", "nail_salon"))
	assert.False(t, tax.Contains("Food", "hair_care"))
	assert.False(t, tax.Contains("Garden", "restaurant"))
}
