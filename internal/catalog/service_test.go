package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/catalog/repository"
	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
)

// Mock implementations

type mockProductRepository struct {
	ListFunc            func(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error)
	FindByIDFunc        func(ctx context.Context, id int) (*domain.Product, error)
	InsertFunc          func(ctx context.Context, p domain.Product) (int, error)
	UpdateFunc          func(ctx context.Context, p domain.Product) error
	DeleteFunc          func(ctx context.Context, id int) error
	CountByCategoryFunc func(ctx context.Context, categoryID int) (int, error)
}

func (m *mockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockProductRepository) Insert(ctx context.Context, p domain.Product) (int, error) {
	return m.InsertFunc(ctx, p)
}

func (m *mockProductRepository) Update(ctx context.Context, p domain.Product) error {
	return m.UpdateFunc(ctx, p)
}

func (m *mockProductRepository) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockProductRepository) CountByCategory(ctx context.Context, categoryID int) (int, error) {
	return m.CountByCategoryFunc(ctx, categoryID)
}

type mockCategoryRepository struct {
	ListFunc     func(ctx context.Context) ([]domain.Category, error)
	FindByIDFunc func(ctx context.Context, id int) (*domain.Category, error)
	InsertFunc   func(ctx context.Context, c domain.Category) (int, error)
	UpdateFunc   func(ctx context.Context, c domain.Category) error
	DeleteFunc   func(ctx context.Context, id int) error
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	return m.ListFunc(ctx)
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id int) (*domain.Category, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockCategoryRepository) Insert(ctx context.Context, c domain.Category) (int, error) {
	return m.InsertFunc(ctx, c)
}

func (m *mockCategoryRepository) Update(ctx context.Context, c domain.Category) error {
	return m.UpdateFunc(ctx, c)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

// Tests

func TestDeleteCategory_BlockedWhileReferenced(t *testing.T) {
	deleted := false
	categories := &mockCategoryRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Category, error) {
			return &domain.Category{ID: id, Name: "Suits"}, nil
		},
		DeleteFunc: func(ctx context.Context, id int) error {
			deleted = true
			return nil
		},
	}
	products := &mockProductRepository{
		CountByCategoryFunc: func(ctx context.Context, categoryID int) (int, error) {
			return 1, nil
		},
	}

	svc := NewService(products, categories)
	err := svc.DeleteCategory(context.Background(), 3)

	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
	assert.False(t, deleted, "category must still exist after a blocked delete")
}

func TestDeleteCategory_AllowedWhenEmpty(t *testing.T) {
	deleted := false
	categories := &mockCategoryRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Category, error) {
			return &domain.Category{ID: id, Name: "Suits"}, nil
		},
		DeleteFunc: func(ctx context.Context, id int) error {
			deleted = true
			return nil
		},
	}
	products := &mockProductRepository{
		CountByCategoryFunc: func(ctx context.Context, categoryID int) (int, error) {
			return 0, nil
		},
	}

	svc := NewService(products, categories)
	err := svc.DeleteCategory(context.Background(), 3)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteCategory_Unknown(t *testing.T) {
	categories := &mockCategoryRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Category, error) {
			return nil, apperrors.NewNotFoundError("category not found")
		},
	}

	svc := NewService(&mockProductRepository{}, categories)
	err := svc.DeleteCategory(context.Background(), 99)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	categories := &mockCategoryRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Category, error) {
			return nil, apperrors.NewNotFoundError("category not found")
		},
	}
	inserted := false
	products := &mockProductRepository{
		InsertFunc: func(ctx context.Context, p domain.Product) (int, error) {
			inserted = true
			return 1, nil
		},
	}

	svc := NewService(products, categories)
	_, err := svc.CreateProduct(context.Background(), domain.Product{Name: "Tux", Price: 499, CategoryID: 42})

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.False(t, inserted)
}

func TestListProducts_PassesFilter(t *testing.T) {
	var gotFilter repository.ProductFilter
	products := &mockProductRepository{
		ListFunc: func(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
			gotFilter = filter
			return []domain.Product{{ID: 1, Name: "Tux"}}, nil
		},
	}

	svc := NewService(products, &mockCategoryRepository{})
	gender := domain.GenderMen
	featured := true
	out, err := svc.ListProducts(context.Background(), repository.ProductFilter{Gender: &gender, Featured: &featured})

	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, gotFilter.Gender)
	assert.Equal(t, domain.GenderMen, *gotFilter.Gender)
	require.NotNil(t, gotFilter.Featured)
	assert.True(t, *gotFilter.Featured)
	assert.Nil(t, gotFilter.CategoryID)
}
