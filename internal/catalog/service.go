package catalog

import (
	"context"
	"fmt"

	"atelier/internal/catalog/repository"
	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
)

type catalogService struct {
	products   ProductRepository
	categories CategoryRepository
}

func NewService(products ProductRepository, categories CategoryRepository) Service {
	return &catalogService{products: products, categories: categories}
}

func (s *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	return s.products.List(ctx, filter)
}

func (s *catalogService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *catalogService) CreateProduct(ctx context.Context, p domain.Product) (int, error) {
	if _, err := s.categories.FindByID(ctx, p.CategoryID); err != nil {
		return 0, err
	}
	return s.products.Insert(ctx, p)
}

func (s *catalogService) UpdateProduct(ctx context.Context, p domain.Product) error {
	if _, err := s.categories.FindByID(ctx, p.CategoryID); err != nil {
		return err
	}
	return s.products.Update(ctx, p)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int) error {
	return s.products.Delete(ctx, id)
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *catalogService) CreateCategory(ctx context.Context, c domain.Category) (int, error) {
	return s.categories.Insert(ctx, c)
}

func (s *catalogService) UpdateCategory(ctx context.Context, c domain.Category) error {
	return s.categories.Update(ctx, c)
}

// DeleteCategory refuses to remove a category while products still reference
// it. No cascading delete, ever.
func (s *catalogService) DeleteCategory(ctx context.Context, id int) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewConflictError(
			fmt.Sprintf("category %d is referenced by %d product(s) and cannot be deleted", id, count))
	}

	return s.categories.Delete(ctx, id)
}
