package catalog

import (
	"context"

	"atelier/internal/catalog/repository"
	"atelier/internal/domain"
)

type Service interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (int, error)
	UpdateProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, id int) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) (int, error)
	UpdateCategory(ctx context.Context, c domain.Category) error
	DeleteCategory(ctx context.Context, id int) error
}

type ProductRepository interface {
	List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (int, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int) error
	CountByCategory(ctx context.Context, categoryID int) (int, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id int) (*domain.Category, error)
	Insert(ctx context.Context, c domain.Category) (int, error)
	Update(ctx context.Context, c domain.Category) error
	Delete(ctx context.Context, id int) error
}
