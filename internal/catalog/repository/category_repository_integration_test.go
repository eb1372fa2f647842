package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/domain"
	"atelier/internal/testutil"
)

func TestCategoryRepository_ProductCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	ctx := context.Background()
	categories := NewMySQLCategoryRepository(db)
	products := NewMySQLProductRepository(db)

	catID, err := categories.Insert(ctx, domain.Category{Name: "Kaftans", Description: "Men's kaftans"})
	require.NoError(t, err)
	emptyID, err := categories.Insert(ctx, domain.Category{Name: "Dresses"})
	require.NoError(t, err)

	_, err = products.Insert(ctx, domain.Product{
		Name:       "Embroidered Kaftan",
		Price:      299.99,
		CategoryID: catID,
		Gender:     domain.GenderMen,
		Sizes:      []string{"M", "L"},
		InStock:    true,
	})
	require.NoError(t, err)

	list, err := categories.List(ctx)
	require.NoError(t, err)
	counts := make(map[int]int)
	for _, c := range list {
		counts[c.ID] = c.ProductCount
	}
	assert.Equal(t, 1, counts[catID])
	assert.Equal(t, 0, counts[emptyID])

	n, err := products.CountByCategory(ctx, catID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestProductRepository_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	ctx := context.Background()
	categories := NewMySQLCategoryRepository(db)
	products := NewMySQLProductRepository(db)

	catID, err := categories.Insert(ctx, domain.Category{Name: "Dresses"})
	require.NoError(t, err)

	featured := true
	_, err = products.Insert(ctx, domain.Product{
		Name: "Kente Dress", Price: 120.50, CategoryID: catID,
		Gender: domain.GenderWomen, InStock: true, Featured: true,
	})
	require.NoError(t, err)
	_, err = products.Insert(ctx, domain.Product{
		Name: "Plain Dress", Price: 80, CategoryID: catID,
		Gender: domain.GenderWomen, InStock: true,
	})
	require.NoError(t, err)

	list, err := products.List(ctx, ProductFilter{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Kente Dress", list[0].Name)

	gender := domain.GenderWomen
	list, err = products.List(ctx, ProductFilter{Gender: &gender, CategoryID: &catID})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
